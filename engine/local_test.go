package engine

import (
	"bytes"
	"testing"
	"time"

	"ggp/experiments/metrics"
	"ggp/game"
	"ggp/player"

	"github.com/stretchr/testify/require"
)

// fixedGamer always plays the same move.
type fixedGamer struct {
	move game.Move
}

func (g *fixedGamer) Name() string {
	return "fixed"
}

func (g *fixedGamer) MetaGame(game.Model, game.Role) error {
	return nil
}

func (g *fixedGamer) SelectMove(game.State, time.Time) (game.Move, metrics.SearchMetric, error) {
	return g.move, metrics.SearchMetric{}, nil
}

func TestLocalEngine(t *testing.T) {
	nim, err := game.NewNim(7, 3)
	require.NoError(t, err)

	t.Run("gamer count must match roles", func(t *testing.T) {
		_, err := LocalEngine(nim, []player.Gamer{player.NewRandom(1)})
		require.Error(t, err)
	})

	t.Run("plays a match to the end", func(t *testing.T) {
		mcts := player.NewMCTS(player.WithSeed(1), player.WithIterations(200), player.WithSafetyMargin(0), player.WithMetrics())
		e, err := LocalEngine(nim, []player.Gamer{mcts, player.NewRandom(2)}, WithPlayClock(5*time.Second))
		require.NoError(t, err)

		result, err := e.Run()
		require.NoError(t, err)

		require.NotNil(t, result.Goals, "Nim always ends before the turn limit")
		require.Positive(t, result.Turns)
		require.Len(t, result.History, result.Turns)
		require.Len(t, result.MoveMetrics, 2*result.Turns, "One move per role per turn")
		require.Len(t, result.Winners(), 1, "Nim has a single winner")
		require.Equal(t, result.Turns, result.GameMetric.Turns)
		require.Len(t, result.GameMetric.Goals, 2)

		total := 0
		for _, goal := range result.Goals {
			total += goal
		}
		require.Equal(t, game.MaxGoal, total)
	})

	t.Run("illegal move aborts the match", func(t *testing.T) {
		e, err := LocalEngine(nim, []player.Gamer{&fixedGamer{move: game.TakeMove(9)}, &fixedGamer{move: game.Noop}})
		require.NoError(t, err)

		_, err = e.Run()
		require.ErrorIs(t, err, game.ErrIllegalMove)
	})

	t.Run("turn limit leaves no result", func(t *testing.T) {
		single := game.NewSingleton("player", game.Noop, 100)
		e, err := LocalEngine(&endless{Singleton: single}, []player.Gamer{player.NewRandom(3)}, WithMaxTurns(5))
		require.NoError(t, err)

		result, err := e.Run()
		require.NoError(t, err)
		require.Nil(t, result.Goals)
		require.Nil(t, result.Winners())
		require.Equal(t, 5, result.Turns)
	})
}

// endless never reaches a terminal state.
type endless struct {
	*game.Singleton
}

func (e *endless) IsTerminal(game.State) bool {
	return false
}

func TestWinners(t *testing.T) {
	roles := []game.Role{"a", "b", "c"}
	result := Result{Roles: roles, Goals: map[game.Role]int{"a": 50, "b": 100, "c": 100}}
	require.Equal(t, []game.Role{"b", "c"}, result.Winners())
}

func TestPrintSummary(t *testing.T) {
	roles := []game.Role{game.FirstRole, game.SecondRole}
	result := Result{
		Roles:   roles,
		Goals:   map[game.Role]int{game.FirstRole: 100, game.SecondRole: 0},
		Turns:   1,
		History: []*game.JointActions{game.JointActionsOf(roles, []game.Move{game.TakeMove(3), game.Noop})},
	}

	var buf bytes.Buffer
	PrintSummary(&buf, result)

	out := buf.String()
	require.Contains(t, out, "Match over after 1 turns")
	require.Contains(t, out, "(first:take3 second:noop)")
	require.Contains(t, out, "first")
	require.Contains(t, out, "100")

	buf.Reset()
	PrintSummary(&buf, Result{Roles: roles, Turns: 5})
	require.Contains(t, buf.String(), "turn limit")
}
