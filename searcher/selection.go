package searcher

import (
	"fmt"
	"math"

	"ggp/game"

	"golang.org/x/exp/rand"
)

// selection walks down the tree with decoupled UCT: every role picks its own
// best action and the picks are combined into the edge to follow. This only
// works because expansion creates the full cross product of legal moves.
type selection struct {
	explorationBias  float64
	firstPlayUrgency float64
}

// execute returns the first leaf reached from root and the path leading to
// it, root included.
func (s selection) execute(root *Node, rng *rand.Rand) (*Node, []*Node) {
	path := []*Node{root}
	node := root
	for !node.IsLeaf() {
		joint := s.jointBestActions(node, rng)
		child, ok := node.Child(joint)
		if !ok {
			panic(fmt.Sprintf("selection: no child for joint move %v at state %v", joint, node.state))
		}
		node = child
		path = append(path, node)
	}
	return node, path
}

func (s selection) jointBestActions(node *Node, rng *rand.Rand) *game.JointActions {
	roles := node.model.Roles()
	joint := game.NewJointActions(roles)
	policy := newUCT(s.explorationBias, s.firstPlayUrgency, node.stats.Visits())
	for _, role := range roles {
		joint.Put(role, s.bestAction(node.stats, role, policy, rng))
	}
	return joint
}

func (s selection) bestAction(stats *Statistics, role game.Role, policy *uct, rng *rand.Rand) game.Move {
	actions := stats.UsedActions(role)
	if len(actions) == 0 {
		panic(fmt.Sprintf("selection: role %q has no tracked actions", role))
	}

	var best []game.Move
	bestScore := math.Inf(-1)
	for _, action := range actions {
		score := policy.evaluate(stats.Get(role, action), rng)
		if score > bestScore {
			bestScore = score
			best = append(best[:0], action)
		} else if score == bestScore {
			best = append(best, action)
		}
	}
	return randomElement(rng, best)
}

// bestAction is the decision for a match: the most played action ("robust
// child"), ties broken at random. Reports false when nothing is tracked.
func bestAction(node *Node, role game.Role, rng *rand.Rand) (game.Move, bool) {
	stats := node.stats
	if stats.IsEmpty() {
		return "", false
	}
	actions := stats.UsedActions(role)
	if len(actions) == 0 {
		return "", false
	}

	var best []game.Move
	mostUsed := -1
	for _, action := range actions {
		used := stats.Get(role, action).Used
		if used > mostUsed {
			mostUsed = used
			best = append(best[:0], action)
		} else if used == mostUsed {
			best = append(best, action)
		}
	}
	return randomElement(rng, best), true
}
