package game

import (
	"golang.org/x/exp/rand"
)

type singletonState struct{}

func (singletonState) String() string {
	return "(singleton)"
}

// Singleton is a single-role game whose only state is terminal. Its one
// legal move leads back to the same state.
type Singleton struct {
	role Role
	move Move
	goal int
}

func NewSingleton(role Role, move Move, goal int) *Singleton {
	return &Singleton{role: role, move: move, goal: goal}
}

func (g *Singleton) InitialState() State {
	return singletonState{}
}

func (g *Singleton) Roles() []Role {
	return []Role{g.role}
}

func (g *Singleton) LegalMoves(_ State, role Role) ([]Move, error) {
	if role != g.role {
		return nil, modelError("legal moves", ErrUnknownRole)
	}
	return []Move{g.move}, nil
}

func (g *Singleton) LegalJointMoves(state State) ([][]Move, error) {
	return LegalJointMoves(g, state)
}

func (g *Singleton) NextState(state State, _ []Move) (State, error) {
	return state, nil
}

func (g *Singleton) IsTerminal(State) bool {
	return true
}

func (g *Singleton) Goal(_ State, role Role) (int, error) {
	if role != g.role {
		return 0, modelError("goal", ErrUnknownRole)
	}
	return g.goal, nil
}

func (g *Singleton) DepthCharge(state State, _ *rand.Rand) (State, int, error) {
	return state, 0, nil
}
