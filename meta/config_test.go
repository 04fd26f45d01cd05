package meta

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"ggp/engine"
	"ggp/player"
	"ggp/searcher"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	config := Default()
	require.NoError(t, config.Validate())
	require.Equal(t, PLAY_CLOCK, config.PlayClock)
	require.Len(t, config.Players, 2)
	require.Equal(t, "mcts", config.Players[0].Kind)
	require.Equal(t, EXPLORATION_BIAS, config.Players[0].ExplorationBias)
}

func TestDefaultsMatchPackages(t *testing.T) {
	config := Default()
	require.Equal(t, engine.MaxTurns, config.MaxTurns)
	require.Equal(t, engine.DefaultPlayClock, config.PlayClock)

	mcts := config.Players[0]
	require.Equal(t, player.DefaultSafetyMargin, mcts.SafetyMargin)
	require.Equal(t, searcher.ExplorationBias, mcts.ExplorationBias)
	require.Equal(t, searcher.FirstPlayUrgency, mcts.FirstPlayUrgency)
}

func TestLoad(t *testing.T) {
	t.Run("overrides defaults", func(t *testing.T) {
		path := writeConfig(t, `
game:
  name: pennies
play_clock: 5s
players:
  - kind: mcts
    iterations: 1000
    safety_margin: 1s
    seed: 3
  - kind: random
`)
		config, err := Load(path)
		require.NoError(t, err)

		require.Equal(t, "pennies", config.Game.Name)
		require.Equal(t, 5*time.Second, config.PlayClock)
		require.Equal(t, MAX_TURNS, config.MaxTurns, "Missing keys keep their default")

		mcts := config.Players[0]
		require.Equal(t, 1000, mcts.Iterations)
		require.Equal(t, time.Second, mcts.SafetyMargin)
		require.Equal(t, uint64(3), mcts.Seed)
		require.Equal(t, EXPLORATION_BIAS, mcts.ExplorationBias, "Missing player keys keep their default")
		require.Equal(t, FIRST_PLAY_URGENCY, mcts.FirstPlayUrgency)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "players: [unclosed"))
		require.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := Load(writeConfig(t, `
game:
  name: chess
play_clock: 1s
`))
		require.ErrorContains(t, err, "unknown game")
		require.ErrorContains(t, err, "safety_margin", "Default margin exceeds a 1s clock")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"nim without stones", func(c *Config) { c.Game.Stones = 0 }, "positive stones"},
		{"non positive clock", func(c *Config) { c.PlayClock = 0 }, "play_clock"},
		{"single player", func(c *Config) { c.Players = c.Players[:1] }, "expected 2 players"},
		{"unknown kind", func(c *Config) { c.Players[1].Kind = "human" }, "unknown kind"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := Default()
			tt.modify(&config)
			require.ErrorContains(t, config.Validate(), tt.want)
		})
	}
}
