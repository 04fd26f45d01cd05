package searcher

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// playout runs the model's random depth charge from node and collects the
// goal of every role in the reached terminal state.
func playout(node *Node, rng *rand.Rand) (Scores, int, error) {
	final, depth, err := node.model.DepthCharge(node.state, rng)
	if err != nil {
		return nil, depth, fmt.Errorf("depth charge from %v: %w", node.state, err)
	}

	roles := node.model.Roles()
	scores := make(Scores, len(roles))
	for _, role := range roles {
		goal, err := node.model.Goal(final, role)
		if err != nil {
			return nil, depth, fmt.Errorf("goal of %q: %w", role, err)
		}
		scores[role] = float64(goal)
	}

	node.markPlayout()
	return scores, depth, nil
}

// propagate credits the playout to every edge between node and the root:
// each parent records the child's joint move and counts a visit. The root
// itself is never credited as a child. Returns the walked path, node first.
func propagate(node *Node, scores Scores) []*Node {
	path := []*Node{node}
	for !node.IsRoot() {
		parent := node.parent
		parent.stats.UpdateUsedActions(node.preceding, scores)
		parent.stats.IncVisits()
		node = parent
		path = append(path, node)
	}
	return path
}
