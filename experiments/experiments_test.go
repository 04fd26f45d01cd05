package experiments

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"ggp/experiments/metrics"
	"ggp/game"
	"ggp/player"
	"ggp/searcher"

	"github.com/stretchr/testify/require"
)

func TestNewGamer(t *testing.T) {
	require.IsType(t, &player.Random{}, NewGamer(metrics.AgentConfig{Kind: "random"}, 0))
	require.IsType(t, &player.MCTS{}, NewGamer(metrics.AgentConfig{Kind: "mcts", PlayClock: time.Second}, 0))
}

// search plays the first move of nim with a gamer built from config.
func search(t *testing.T, config metrics.AgentConfig) (*player.MCTS, metrics.SearchMetric) {
	t.Helper()
	nim, err := game.NewNim(9, 3)
	require.NoError(t, err)

	p, ok := NewGamer(config, 0).(*player.MCTS)
	require.True(t, ok)
	require.NoError(t, p.MetaGame(nim, game.FirstRole))

	_, metric, err := p.SelectMove(nim.InitialState(), time.Now().Add(config.PlayClock))
	require.NoError(t, err)
	return p, metric
}

// expandedNodes lists the non-root nodes that have children.
func expandedNodes(root *searcher.Node) []*searcher.Node {
	nodes := []*searcher.Node{}
	stack := append([]*searcher.Node{}, root.Children()...)
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !node.IsLeaf() {
			nodes = append(nodes, node)
		}
		stack = append(stack, node.Children()...)
	}
	return nodes
}

func TestNewGamerAppliesSettings(t *testing.T) {
	base := metrics.AgentConfig{Kind: "mcts", PlayClock: 5 * time.Second, Iterations: 300, ExplorationBias: 0.4, FirstPlayUrgency: 10, Seed: 4}

	t.Run("deferred expansion", func(t *testing.T) {
		deferred := base
		deferred.DeferExpansion = true

		p, metric := search(t, deferred)
		require.Equal(t, 300, metric.Iterations)

		expanded := expandedNodes(p.Tree().Root())
		require.NotEmpty(t, expanded, "Simulated leaves below the root get expanded")
		for _, node := range expanded {
			require.True(t, node.IsPlayout(), "Only simulated leaves are expanded at %v", node.State())
		}
	})

	t.Run("immediate expansion", func(t *testing.T) {
		p, metric := search(t, base)
		require.Equal(t, 300, metric.Iterations)

		for _, node := range expandedNodes(p.Tree().Root()) {
			require.False(t, node.IsPlayout(), "Only fresh leaves are expanded at %v", node.State())
		}
	})

	t.Run("safety margin", func(t *testing.T) {
		cautious := base
		cautious.Iterations = 0
		cautious.PlayClock = time.Second
		cautious.SafetyMargin = time.Hour

		_, metric := search(t, cautious)
		require.Zero(t, metric.Iterations, "The margin exceeds the clock")
	})
}

func TestRun(t *testing.T) {
	nim, err := game.NewNim(5, 3)
	require.NoError(t, err)

	mcts := metrics.AgentConfig{ID: 1, Kind: "mcts", PlayClock: 5 * time.Second, Iterations: 100, ExplorationBias: 0.4, FirstPlayUrgency: 10, Seed: 1}
	random := metrics.AgentConfig{ID: 2, Kind: "random", PlayClock: 5 * time.Second, Seed: 2}

	summary, err := Run(Experiment{
		Name:      "nim",
		OutputDir: t.TempDir(),
		Model:     nim,
		Configs:   []metrics.AgentConfig{mcts, random},
		MatchUps:  [][]metrics.AgentConfig{{mcts, random}, {random, mcts}},
		Games:     2,
		MaxTurns:  50,
	})
	require.NoError(t, err)

	require.Equal(t, 4, summary.Games)
	require.Equal(t, 4, summary.Wins[1]+summary.Wins[2], "Every nim match has one winner")

	for _, file := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
		data, err := os.ReadFile(filepath.Join(summary.Dir, file))
		require.NoError(t, err, "Missing %s", file)
		require.NotEmpty(t, strings.TrimSpace(string(data)))
	}

	data, err := os.ReadFile(filepath.Join(summary.Dir, "game_records.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1+4, "Header plus one line per game")
}

func TestRunThroughput(t *testing.T) {
	root := t.TempDir()
	records, err := RunThroughput("pennies", root, game.MatchingPennies(), []time.Duration{5 * time.Millisecond, 10 * time.Millisecond}, 2)
	require.NoError(t, err)

	require.Len(t, records, 4)
	for _, record := range records {
		require.Positive(t, record.Iterations, "At least one iteration starts before the budget runs out")
		require.Equal(t, record.Iterations, record.Playouts)
		require.GreaterOrEqual(t, record.Duration, record.Budget)
	}

	matches, err := filepath.Glob(filepath.Join(root, "pennies-throughput", "*", "throughput_records.csv"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
}
