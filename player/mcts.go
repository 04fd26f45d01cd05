package player

import (
	"time"

	"ggp/experiments/metrics"
	"ggp/game"
	"ggp/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const DefaultSafetyMargin = 2 * time.Second

type Option func(p *MCTS)

// WithSafetyMargin stops starting iterations this long before the deadline.
// An iteration in progress always completes, so the margin must cover one.
func WithSafetyMargin(margin time.Duration) Option {
	return func(p *MCTS) {
		if margin >= 0 {
			p.safetyMargin = margin
		}
	}
}

// WithIterations caps the iterations per move in addition to the deadline.
func WithIterations(iterations int) Option {
	return func(p *MCTS) {
		if iterations > 0 {
			p.iterations = iterations
		}
	}
}

// WithSeed seeds both the tree and the fallback move picker.
func WithSeed(seed uint64) Option {
	return func(p *MCTS) {
		p.rng = rand.New(rand.NewSource(seed))
		p.treeOptions = append(p.treeOptions, searcher.WithSeed(seed))
	}
}

func WithTreeOptions(options ...searcher.Option) Option {
	return func(p *MCTS) {
		p.treeOptions = append(p.treeOptions, options...)
	}
}

func WithMetrics() Option {
	return func(p *MCTS) {
		p.metrics = metrics.NewCollector()
	}
}

// MCTS searches a tree it keeps across turns: each move re-roots the tree at
// the reached state and grows it until the deadline.
type MCTS struct {
	model        game.Model
	role         game.Role
	tree         *searcher.Tree
	treeOptions  []searcher.Option
	safetyMargin time.Duration
	iterations   int
	rng          *rand.Rand
	metrics      metrics.Collector
	turn         int
}

func NewMCTS(options ...Option) *MCTS {
	p := &MCTS{ // Default values
		safetyMargin: DefaultSafetyMargin,
		rng:          rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		metrics:      metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(p)
	}
	return p
}

func (p *MCTS) Name() string {
	return "mcts"
}

func (p *MCTS) Tree() *searcher.Tree {
	return p.tree
}

func (p *MCTS) MetaGame(model game.Model, role game.Role) error {
	p.model = model
	p.role = role
	p.turn = 0
	options := append([]searcher.Option{searcher.WithMetrics(p.metrics)}, p.treeOptions...)
	p.tree = searcher.NewTree(model, options...)
	return nil
}

func (p *MCTS) SelectMove(state game.State, deadline time.Time) (game.Move, metrics.SearchMetric, error) {
	if p.tree == nil {
		return "", metrics.SearchMetric{}, ErrNoGame
	}

	p.metrics.Start()
	p.findRoot(state)
	p.tree.SetTurn(p.turn)
	p.turn++

	finishBy := deadline.Add(-p.safetyMargin)
	for time.Now().Before(finishBy) && (p.iterations == 0 || p.tree.Iterations() < p.iterations) {
		if err := p.tree.Grow(); err != nil {
			log.Error().Err(err).Str("role", string(p.role)).Int("turn", p.tree.Turn()).
				Msg("search aborted, playing a random legal move")
			return p.complete(p.fallback(state))
		}
	}

	move, ok := p.tree.BestAction(p.role)
	if !ok {
		log.Warn().Str("role", string(p.role)).Int("turn", p.tree.Turn()).
			Msg("no iteration completed, playing a random legal move")
		return p.complete(p.fallback(state))
	}
	return p.complete(move, nil)
}

// findRoot reuses the explored subtree matching state, or starts over.
func (p *MCTS) findRoot(state game.State) {
	node, ok := p.tree.FindNode(state)
	if !ok {
		log.Debug().Str("role", string(p.role)).Msg("state not in tree, resetting")
		p.tree.Reset(state)
		p.metrics.SetTreeReset(true)
		return
	}
	p.tree.Cut(node)
	p.metrics.SetTreeReset(false)
}

func (p *MCTS) fallback(state game.State) (game.Move, error) {
	return randomLegalMove(p.model, state, p.role, p.rng)
}

func (p *MCTS) complete(move game.Move, err error) (game.Move, metrics.SearchMetric, error) {
	p.metrics.SetTreeSize(p.tree.Size())
	return move, p.metrics.Complete(), err
}
