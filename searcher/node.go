package searcher

import (
	"fmt"

	"ggp/game"
)

// Node is a game state reached through a joint move. Children are owned by
// their parent; the parent link is only followed upwards by backpropagation
// and is cleared when the node becomes the root.
type Node struct {
	model     game.Model
	parent    *Node
	state     game.State
	preceding *game.JointActions
	children  []*Node
	index     map[string]*Node
	stats     *Statistics
	playout   bool
}

func newNode(model game.Model, parent *Node, state game.State, preceding *game.JointActions) *Node {
	return &Node{
		model:     model,
		parent:    parent,
		state:     state,
		preceding: preceding,
		index:     make(map[string]*Node),
		stats:     newStatistics(),
	}
}

func (n *Node) State() game.State {
	return n.state
}

// PrecedingJointMove is the edge from the parent, nil for the root.
func (n *Node) PrecedingJointMove() *game.JointActions {
	return n.preceding
}

func (n *Node) Parent() *Node {
	return n.parent
}

func (n *Node) Statistics() *Statistics {
	return n.stats
}

// Children returns the children in creation order.
func (n *Node) Children() []*Node {
	children := make([]*Node, len(n.children))
	copy(children, n.children)
	return children
}

func (n *Node) IsLeaf() bool {
	return len(n.children) == 0
}

func (n *Node) IsRoot() bool {
	return n.parent == nil
}

func (n *Node) IsTerminal() bool {
	return n.model.IsTerminal(n.state)
}

// IsPlayout reports whether a simulation was started from this node.
func (n *Node) IsPlayout() bool {
	return n.playout
}

func (n *Node) markPlayout() {
	n.playout = true
}

// Child looks a child up by its edge label.
func (n *Node) Child(joint *game.JointActions) (*Node, bool) {
	child, ok := n.index[joint.Key()]
	return child, ok
}

// createChild applies the joint move and links the resulting node. Legality
// is not checked again, only a failing transition is reported.
func (n *Node) createChild(joint *game.JointActions) (*Node, error) {
	next, err := n.model.NextState(n.state, joint.Moves())
	if err != nil {
		return nil, fmt.Errorf("create child %v: %w", joint, err)
	}

	key := joint.Key()
	if _, ok := n.index[key]; ok {
		panic(fmt.Sprintf("node already has a child for joint move %v", joint))
	}
	child := newNode(n.model, n, next, joint)
	n.children = append(n.children, child)
	n.index[key] = child
	return child, nil
}

func (n *Node) becomeRoot() {
	n.parent = nil
}

// FindNodeInSubTree returns the first node, in depth-first pre-order starting
// with n itself, whose state equals state.
func (n *Node) FindNodeInSubTree(state game.State) (*Node, bool) {
	stack := []*Node{n}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if node.state == state {
			return node, true
		}
		// Push in reverse so the first child is visited first
		for i := len(node.children) - 1; i >= 0; i-- {
			stack = append(stack, node.children[i])
		}
	}
	return nil, false
}

// Depth counts the edges between n and the root.
func (n *Node) Depth() int {
	depth := 0
	for node := n; node.parent != nil; node = node.parent {
		depth++
	}
	return depth
}

// Size counts the nodes of the subtree rooted at n.
func (n *Node) Size() int {
	size := 0
	stack := []*Node{n}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		size++
		stack = append(stack, node.children...)
	}
	return size
}
