package searcher

import (
	"encoding/json"
	"io"

	"ggp/game"
)

type jointMoveJSON struct {
	Role   game.Role `json:"role"`
	Action game.Move `json:"action"`
}

type actionJSON struct {
	Action             game.Move `json:"action"`
	AverageActionScore float64   `json:"averageActionScore"`
	ActionNumUsed      int       `json:"actionNumUsed"`
}

type roleStatisticsJSON struct {
	Role    game.Role    `json:"role"`
	Actions []actionJSON `json:"actions"`
}

type statisticsJSON struct {
	NumVisits            int                  `json:"numVisits"`
	StatisticsForActions []roleStatisticsJSON `json:"statisticsForActions"`
}

type nodeJSON struct {
	PrecedingJointMove []jointMoveJSON `json:"precedingJointMove,omitempty"`
	State              string          `json:"state"`
	Statistics         *statisticsJSON `json:"statistics,omitempty"`
	Children           []*nodeJSON     `json:"children,omitempty"`
}

func toJSON(node *Node) *nodeJSON {
	out := &nodeJSON{State: node.state.String()}
	if node.preceding != nil {
		node.preceding.Each(func(role game.Role, move game.Move) {
			out.PrecedingJointMove = append(out.PrecedingJointMove, jointMoveJSON{Role: role, Action: move})
		})
	}
	if node.IsLeaf() {
		return out
	}

	stats := &statisticsJSON{NumVisits: node.stats.Visits()}
	for _, role := range node.stats.Roles() {
		r := roleStatisticsJSON{Role: role}
		for _, action := range node.stats.UsedActions(role) {
			a := node.stats.Get(role, action)
			r.Actions = append(r.Actions, actionJSON{
				Action:             action,
				AverageActionScore: a.Average(),
				ActionNumUsed:      a.Used,
			})
		}
		stats.StatisticsForActions = append(stats.StatisticsForActions, r)
	}
	out.Statistics = stats
	return out
}

// exportTree converts the subtree under root without recursion.
func exportTree(root *Node) *nodeJSON {
	type item struct {
		node *Node
		out  *nodeJSON
	}
	top := toJSON(root)
	stack := []item{{root, top}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, child := range it.node.children {
			c := toJSON(child)
			it.out.Children = append(it.out.Children, c)
			stack = append(stack, item{child, c})
		}
	}
	return top
}

// MarshalJSON renders the tree from its current root. Statistics and
// children are only present for expanded nodes.
func (t *Tree) MarshalJSON() ([]byte, error) {
	return json.Marshal(exportTree(t.root))
}

// ExportJSON writes the subtree rooted at node to w.
func ExportJSON(w io.Writer, node *Node) error {
	return json.NewEncoder(w).Encode(exportTree(node))
}
