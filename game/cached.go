package game

import (
	"strings"

	"golang.org/x/exp/rand"
)

type transition struct {
	state State
	moves string
}

type roleQuery struct {
	state State
	role  Role
}

// Cached memoises the answers of a Model per state. It is meant for a single
// decision loop and is not safe for concurrent use.
type Cached struct {
	Model
	jointMoves map[State][][]Move
	legalMoves map[roleQuery][]Move
	next       map[transition]State
	terminal   map[State]bool
	goals      map[roleQuery]int
}

func NewCached(m Model) *Cached {
	return &Cached{
		Model:      m,
		jointMoves: make(map[State][][]Move),
		legalMoves: make(map[roleQuery][]Move),
		next:       make(map[transition]State),
		terminal:   make(map[State]bool),
		goals:      make(map[roleQuery]int),
	}
}

func (c *Cached) LegalJointMoves(state State) ([][]Move, error) {
	if joints, ok := c.jointMoves[state]; ok {
		return joints, nil
	}
	joints, err := c.Model.LegalJointMoves(state)
	if err != nil {
		return nil, err
	}
	c.jointMoves[state] = joints
	return joints, nil
}

func (c *Cached) LegalMoves(state State, role Role) ([]Move, error) {
	q := roleQuery{state: state, role: role}
	if moves, ok := c.legalMoves[q]; ok {
		return moves, nil
	}
	moves, err := c.Model.LegalMoves(state, role)
	if err != nil {
		return nil, err
	}
	c.legalMoves[q] = moves
	return moves, nil
}

func (c *Cached) NextState(state State, moves []Move) (State, error) {
	var sb strings.Builder
	for _, m := range moves {
		writeKeyPart(&sb, string(m))
	}
	t := transition{state: state, moves: sb.String()}
	if next, ok := c.next[t]; ok {
		return next, nil
	}
	next, err := c.Model.NextState(state, moves)
	if err != nil {
		return nil, err
	}
	c.next[t] = next
	return next, nil
}

func (c *Cached) IsTerminal(state State) bool {
	if terminal, ok := c.terminal[state]; ok {
		return terminal
	}
	terminal := c.Model.IsTerminal(state)
	c.terminal[state] = terminal
	return terminal
}

func (c *Cached) Goal(state State, role Role) (int, error) {
	q := roleQuery{state: state, role: role}
	if goal, ok := c.goals[q]; ok {
		return goal, nil
	}
	goal, err := c.Model.Goal(state, role)
	if err != nil {
		return 0, err
	}
	c.goals[q] = goal
	return goal, nil
}

// DepthCharge walks the cached rules so repeated rollouts through the same
// states skip the underlying model.
func (c *Cached) DepthCharge(state State, rng *rand.Rand) (State, int, error) {
	return Rollout(c, state, rng)
}
