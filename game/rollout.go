package game

import (
	"golang.org/x/exp/rand"
)

// CrossProduct expands per-role move lists into every joint combination.
// The first role varies slowest, so the output order is deterministic.
func CrossProduct(perRole [][]Move) [][]Move {
	joints := [][]Move{{}}
	for _, moves := range perRole {
		next := make([][]Move, 0, len(joints)*len(moves))
		for _, prefix := range joints {
			for _, m := range moves {
				joint := make([]Move, len(prefix), len(prefix)+1)
				copy(joint, prefix)
				next = append(next, append(joint, m))
			}
		}
		joints = next
	}
	return joints
}

// LegalJointMoves builds the cross product of every role's legal moves.
func LegalJointMoves(m Model, state State) ([][]Move, error) {
	roles := m.Roles()
	perRole := make([][]Move, len(roles))
	for i, role := range roles {
		moves, err := m.LegalMoves(state, role)
		if err != nil {
			return nil, err
		}
		if len(moves) == 0 {
			return nil, modelError("legal joint moves", ErrNoLegalMoves)
		}
		perRole[i] = moves
	}
	return CrossProduct(perRole), nil
}

// Rollout plays a uniformly random legal move for every role until a
// terminal state is reached.
func Rollout(m Model, state State, rng *rand.Rand) (State, int, error) {
	roles := m.Roles()
	depth := 0
	for !m.IsTerminal(state) {
		joint := make([]Move, len(roles))
		for i, role := range roles {
			moves, err := m.LegalMoves(state, role)
			if err != nil {
				return nil, depth, err
			}
			if len(moves) == 0 {
				return nil, depth, modelError("depth charge", ErrNoLegalMoves)
			}
			joint[i] = moves[rng.Intn(len(moves))]
		}

		next, err := m.NextState(state, joint)
		if err != nil {
			return nil, depth, err
		}
		state = next
		depth++
	}
	return state, depth, nil
}

// Goals collects every role's goal in a terminal state.
func Goals(m Model, state State) (map[Role]int, error) {
	roles := m.Roles()
	goals := make(map[Role]int, len(roles))
	for _, role := range roles {
		goal, err := m.Goal(state, role)
		if err != nil {
			return nil, err
		}
		goals[role] = goal
	}
	return goals, nil
}

// IsLegal reports whether moves is one of the state's legal joint moves.
func IsLegal(m Model, state State, moves []Move) (bool, error) {
	roles := m.Roles()
	if len(moves) != len(roles) {
		return false, nil
	}
	for i, role := range roles {
		legal, err := m.LegalMoves(state, role)
		if err != nil {
			return false, err
		}
		found := false
		for _, l := range legal {
			if l == moves[i] {
				found = true
				break
			}
		}
		if !found {
			return false, nil
		}
	}
	return true, nil
}
