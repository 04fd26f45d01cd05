package game

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/rand"
)

const (
	FirstRole  Role = "first"
	SecondRole Role = "second"
)

type nimState struct {
	stones int
	mover  int // index into Nim.Roles()
}

func (s nimState) String() string {
	return fmt.Sprintf("(nim stones=%d mover=%d)", s.stones, s.mover)
}

// Nim is a two-role alternating game over a single pile. The role to move
// takes between 1 and maxTake stones while the other plays Noop; whoever
// takes the last stone wins.
type Nim struct {
	stones  int
	maxTake int
}

func NewNim(stones, maxTake int) (*Nim, error) {
	if stones < 1 || maxTake < 1 {
		return nil, fmt.Errorf("nim: stones (%d) and max take (%d) must be positive", stones, maxTake)
	}
	return &Nim{stones: stones, maxTake: maxTake}, nil
}

// TakeMove names the move removing n stones.
func TakeMove(n int) Move {
	return Move("take" + strconv.Itoa(n))
}

func parseTake(m Move) (int, bool) {
	s, ok := strings.CutPrefix(string(m), "take")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}

func (n *Nim) InitialState() State {
	return nimState{stones: n.stones}
}

func (n *Nim) Roles() []Role {
	return []Role{FirstRole, SecondRole}
}

func roleIndex(roles []Role, role Role) int {
	for i, r := range roles {
		if r == role {
			return i
		}
	}
	return -1
}

func (n *Nim) LegalMoves(state State, role Role) ([]Move, error) {
	s, ok := state.(nimState)
	if !ok {
		return nil, modelError("legal moves", fmt.Errorf("unexpected state %v", state))
	}
	i := roleIndex(n.Roles(), role)
	if i < 0 {
		return nil, modelError("legal moves", ErrUnknownRole)
	}
	if s.stones == 0 {
		return nil, modelError("legal moves", ErrNoLegalMoves)
	}
	if i != s.mover {
		return []Move{Noop}, nil
	}
	moves := make([]Move, 0, n.maxTake)
	for take := 1; take <= min(n.maxTake, s.stones); take++ {
		moves = append(moves, TakeMove(take))
	}
	return moves, nil
}

func (n *Nim) LegalJointMoves(state State) ([][]Move, error) {
	return LegalJointMoves(n, state)
}

func (n *Nim) NextState(state State, moves []Move) (State, error) {
	legal, err := IsLegal(n, state, moves)
	if err != nil {
		return nil, err
	}
	if !legal {
		return nil, modelError("next state", fmt.Errorf("%w: %v", ErrIllegalMove, moves))
	}
	s := state.(nimState)
	take, _ := parseTake(moves[s.mover])
	return nimState{stones: s.stones - take, mover: 1 - s.mover}, nil
}

func (n *Nim) IsTerminal(state State) bool {
	s, ok := state.(nimState)
	return ok && s.stones == 0
}

func (n *Nim) Goal(state State, role Role) (int, error) {
	s, ok := state.(nimState)
	if !ok || s.stones != 0 {
		return 0, modelError("goal", ErrNotTerminal)
	}
	i := roleIndex(n.Roles(), role)
	if i < 0 {
		return 0, modelError("goal", ErrUnknownRole)
	}
	// The mover has already switched, the other role took the last stone.
	if i == s.mover {
		return MinGoal, nil
	}
	return MaxGoal, nil
}

func (n *Nim) DepthCharge(state State, rng *rand.Rand) (State, int, error) {
	return Rollout(n, state, rng)
}
