package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Role is one participant of a game. Roles move simultaneously every turn.
type Role string

// Move is one role's action for a single turn.
type Move string

// Noop is the conventional move of a role that has nothing to do this turn.
const Noop Move = "noop"

const (
	MinGoal = 0
	MaxGoal = 100
)

// State is an immutable game position. Implementations must be comparable
// with == (the tree locates reached states by equality).
type State interface {
	fmt.Stringer
}

// Model interprets the rules of a game. The searcher never inspects a State
// itself, every question about a position goes through the Model.
type Model interface {
	InitialState() State
	// Roles returns the game-wide role ordering.
	Roles() []Role
	// LegalJointMoves lists every legal combination of moves, each ordered
	// like Roles().
	LegalJointMoves(State) ([][]Move, error)
	// LegalMoves lists the legal moves of a single role.
	LegalMoves(State, Role) ([]Move, error)
	NextState(State, []Move) (State, error)
	IsTerminal(State) bool
	// Goal returns the role's reward in [MinGoal, MaxGoal].
	Goal(State, Role) (int, error)
	// DepthCharge plays uniformly random joint moves until a terminal state
	// and returns it with the number of moves played.
	DepthCharge(State, *rand.Rand) (State, int, error)
}
