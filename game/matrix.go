package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

const (
	RowRole    Role = "row"
	ColumnRole Role = "column"
)

type matrixState struct {
	row    Move
	column Move
	played bool
}

func (s matrixState) String() string {
	if !s.played {
		return "(matrix start)"
	}
	return fmt.Sprintf("(matrix %s %s)", s.row, s.column)
}

// Matrix is a one-shot simultaneous game between RowRole and ColumnRole.
type Matrix struct {
	rowMoves    []Move
	columnMoves []Move
	// payoffs[i][j] holds the (row, column) goals when row plays
	// rowMoves[i] and column plays columnMoves[j].
	payoffs [][][2]int
}

func NewMatrix(rowMoves, columnMoves []Move, payoffs [][][2]int) (*Matrix, error) {
	if len(rowMoves) == 0 || len(columnMoves) == 0 {
		return nil, fmt.Errorf("matrix game: %w", ErrNoLegalMoves)
	}
	if len(payoffs) != len(rowMoves) {
		return nil, fmt.Errorf("matrix game: %d payoff rows for %d moves", len(payoffs), len(rowMoves))
	}
	for i, row := range payoffs {
		if len(row) != len(columnMoves) {
			return nil, fmt.Errorf("matrix game: payoff row %d has %d entries for %d moves", i, len(row), len(columnMoves))
		}
		for j, p := range row {
			for _, goal := range p {
				if goal < MinGoal || goal > MaxGoal {
					return nil, fmt.Errorf("matrix game: payoff (%d,%d) goal %d out of range", i, j, goal)
				}
			}
		}
	}
	return &Matrix{rowMoves: rowMoves, columnMoves: columnMoves, payoffs: payoffs}, nil
}

// MatchingPennies: row wins on a match, column wins otherwise.
func MatchingPennies() *Matrix {
	m, _ := NewMatrix(
		[]Move{"heads", "tails"},
		[]Move{"heads", "tails"},
		[][][2]int{
			{{100, 0}, {0, 100}},
			{{0, 100}, {100, 0}},
		},
	)
	return m
}

func (m *Matrix) InitialState() State {
	return matrixState{}
}

func (m *Matrix) Roles() []Role {
	return []Role{RowRole, ColumnRole}
}

func (m *Matrix) LegalMoves(state State, role Role) ([]Move, error) {
	s, ok := state.(matrixState)
	if !ok {
		return nil, modelError("legal moves", fmt.Errorf("unexpected state %v", state))
	}
	if s.played {
		return nil, modelError("legal moves", ErrNoLegalMoves)
	}
	switch role {
	case RowRole:
		return m.rowMoves, nil
	case ColumnRole:
		return m.columnMoves, nil
	default:
		return nil, modelError("legal moves", ErrUnknownRole)
	}
}

func (m *Matrix) LegalJointMoves(state State) ([][]Move, error) {
	return LegalJointMoves(m, state)
}

func (m *Matrix) NextState(state State, moves []Move) (State, error) {
	legal, err := IsLegal(m, state, moves)
	if err != nil {
		return nil, err
	}
	if !legal {
		return nil, modelError("next state", fmt.Errorf("%w: %v", ErrIllegalMove, moves))
	}
	return matrixState{row: moves[0], column: moves[1], played: true}, nil
}

func (m *Matrix) IsTerminal(state State) bool {
	s, ok := state.(matrixState)
	return ok && s.played
}

func (m *Matrix) Goal(state State, role Role) (int, error) {
	s, ok := state.(matrixState)
	if !ok || !s.played {
		return 0, modelError("goal", ErrNotTerminal)
	}
	i, j := indexOf(m.rowMoves, s.row), indexOf(m.columnMoves, s.column)
	switch role {
	case RowRole:
		return m.payoffs[i][j][0], nil
	case ColumnRole:
		return m.payoffs[i][j][1], nil
	default:
		return 0, modelError("goal", ErrUnknownRole)
	}
}

func (m *Matrix) DepthCharge(state State, rng *rand.Rand) (State, int, error) {
	return Rollout(m, state, rng)
}

func indexOf(moves []Move, move Move) int {
	for i, m := range moves {
		if m == move {
			return i
		}
	}
	return -1
}
