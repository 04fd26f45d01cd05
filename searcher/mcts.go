package searcher

import (
	"fmt"
	"time"

	"ggp/experiments/metrics"
	"ggp/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(t *Tree)

// WithSeed makes the tree's random choices reproducible.
func WithSeed(seed uint64) Option {
	return func(t *Tree) {
		t.rng = rand.New(rand.NewSource(seed))
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(t *Tree) {
		if rng != nil {
			t.rng = rng
		}
	}
}

func WithExplorationBias(bias float64) Option {
	return func(t *Tree) {
		if bias >= 0 {
			t.selection.explorationBias = bias
		}
	}
}

func WithFirstPlayUrgency(urgency float64) Option {
	return func(t *Tree) {
		if urgency > 0 {
			t.selection.firstPlayUrgency = urgency
		}
	}
}

// WithDeferredExpansion expands a leaf on the visit after its first playout
// instead of before it.
func WithDeferredExpansion() Option {
	return func(t *Tree) {
		t.expansion.deferred = true
	}
}

func WithListener(listener Listener) Option {
	return func(t *Tree) {
		if listener != nil {
			t.listener = listener
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(t *Tree) {
		if collector != nil {
			t.metrics = collector
		}
	}
}

// Tree is an anytime MCTS search tree for one game. It is grown one
// iteration at a time by a single decision loop and is not safe for
// concurrent use.
type Tree struct {
	model     game.Model
	root      *Node
	rng       *rand.Rand
	selection selection
	expansion expansion
	listener  Listener
	metrics   metrics.Collector
	iteration int
	turn      int
}

// NewTree roots a tree at the model's initial state.
func NewTree(model game.Model, options ...Option) *Tree {
	return NewTreeAt(model, model.InitialState(), options...)
}

// NewTreeAt roots a tree at an arbitrary state.
func NewTreeAt(model game.Model, state game.State, options ...Option) *Tree {
	t := &Tree{ // Default values
		model: model,
		rng:   rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		selection: selection{
			explorationBias:  ExplorationBias,
			firstPlayUrgency: FirstPlayUrgency,
		},
		listener: noopListener,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(t)
	}
	t.root = newNode(model, nil, state, nil)
	return t
}

func (t *Tree) Root() *Node {
	return t.root
}

func (t *Tree) Model() game.Model {
	return t.model
}

// FindNode searches the current tree for a node holding state.
func (t *Tree) FindNode(state game.State) (*Node, bool) {
	return t.root.FindNodeInSubTree(state)
}

// Cut re-roots the tree at node, keeping its subtree and statistics. Every
// other branch becomes unreachable.
func (t *Tree) Cut(node *Node) {
	if node == nil {
		panic("cannot cut tree at nil node")
	}
	t.root = node
	node.becomeRoot()
}

// Reset discards the whole tree and starts over from state.
func (t *Tree) Reset(state game.State) {
	t.root = newNode(t.model, nil, state, nil)
}

// SetTurn records the turn being searched and restarts iteration numbering.
func (t *Tree) SetTurn(turn int) {
	t.turn = turn
	t.iteration = 0
}

func (t *Tree) Turn() int {
	return t.turn
}

// Iterations started since the last SetTurn.
func (t *Tree) Iterations() int {
	return t.iteration
}

// Size counts the live nodes.
func (t *Tree) Size() int {
	return t.root.Size()
}

// BestAction returns role's most played action at the root. It reports false
// while the root has no statistics for role.
func (t *Tree) BestAction(role game.Role) (game.Move, bool) {
	return bestAction(t.root, role, t.rng)
}

// Grow runs one MCTS iteration. A model error aborts the iteration and is
// returned wrapped; nodes created before the error are kept.
func (t *Tree) Grow() error {
	event := Event{Iteration: t.iteration, Turn: t.turn}
	t.iteration++

	// Selection
	leaf, path := t.selection.execute(t.root, t.rng)
	event.Phase, event.Selected, event.Path = PhaseSelection, leaf, path
	log.Debug().Int("iteration", event.Iteration).Int("depth", len(path)-1).Msg("selection")
	t.listener(event)

	// Expansion
	node, expanded, err := t.expansion.execute(leaf, t.rng)
	t.metrics.AddExpansion(len(expanded))
	if err != nil {
		log.Debug().Err(err).Int("iteration", event.Iteration).Int("created", len(expanded)).Msg("expansion failed")
		return fmt.Errorf("expansion: %w", err)
	}
	event.Phase, event.Expanded, event.Simulated = PhaseExpansion, expanded, node
	log.Debug().Int("iteration", event.Iteration).Int("created", len(expanded)).Msg("expansion")
	t.listener(event)

	// Playout
	scores, depth, err := playout(node, t.rng)
	if err != nil {
		log.Debug().Err(err).Int("iteration", event.Iteration).Msg("playout failed")
		return fmt.Errorf("playout: %w", err)
	}
	t.metrics.AddPlayout(depth)
	event.Phase, event.Depth, event.Scores = PhasePlayout, depth, scores
	log.Debug().Int("iteration", event.Iteration).Int("depth", depth).Interface("scores", scores).Msg("playout")
	t.listener(event)

	// Backpropagation
	event.Phase, event.Backup = PhaseBackpropagation, propagate(node, scores)
	log.Debug().Int("iteration", event.Iteration).Int("length", len(event.Backup)).Msg("backpropagation")
	t.listener(event)

	t.metrics.AddIteration()
	event.Phase = PhaseCompleted
	t.listener(event)
	return nil
}
