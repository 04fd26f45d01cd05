package searcher

import (
	"fmt"

	"ggp/game"

	"golang.org/x/exp/rand"
)

type expansion struct {
	// deferred expands a leaf only once a playout was run from it.
	deferred bool
}

// needsExpansion: the root always, never a terminal node, otherwise a leaf
// that was not simulated yet (or, deferred, one that was).
func (e expansion) needsExpansion(node *Node) bool {
	if node.IsRoot() {
		return true
	}
	if node.IsTerminal() {
		return false
	}
	if e.deferred {
		return node.IsPlayout()
	}
	return !node.IsPlayout()
}

// execute creates one child per legal joint move and returns a random new
// child to simulate from, along with every created child. A node that needs
// no expansion is returned as is. Children created before a failing
// transition stay in the tree.
func (e expansion) execute(node *Node, rng *rand.Rand) (*Node, []*Node, error) {
	if !e.needsExpansion(node) {
		return node, nil, nil
	}

	joints, err := node.model.LegalJointMoves(node.state)
	if err != nil {
		return nil, nil, fmt.Errorf("legal joint moves at %v: %w", node.state, err)
	}

	roles := node.model.Roles()
	created := make([]*Node, 0, len(joints))
	for _, moves := range joints {
		joint := game.JointActionsOf(roles, moves)
		child, err := node.createChild(joint)
		if err != nil {
			return nil, created, err
		}
		node.stats.AddUsedActions(joint)
		created = append(created, child)
	}

	if len(created) == 0 {
		return node, nil, nil
	}
	return randomElement(rng, created), created, nil
}
