package searcher

import (
	"testing"

	"ggp/game"

	"github.com/stretchr/testify/require"
)

func TestStatistics(t *testing.T) {
	roles := []game.Role{game.RowRole, game.ColumnRole}
	hh := game.JointActionsOf(roles, []game.Move{"heads", "heads"})
	ht := game.JointActionsOf(roles, []game.Move{"heads", "tails"})

	t.Run("new statistics are empty", func(t *testing.T) {
		stats := newStatistics()
		require.True(t, stats.IsEmpty())
		require.Zero(t, stats.Visits())
		require.Empty(t, stats.UsedActions(game.RowRole))
		require.Equal(t, ActionStatistics{}, stats.Get(game.RowRole, "heads"))
	})

	t.Run("add used actions tracks zero statistics", func(t *testing.T) {
		stats := newStatistics()
		stats.AddUsedActions(hh)
		stats.AddUsedActions(ht)
		stats.AddUsedActions(hh)

		require.False(t, stats.IsEmpty())
		require.Equal(t, roles, stats.Roles())
		require.Equal(t, []game.Move{"heads"}, stats.UsedActions(game.RowRole))
		require.Equal(t, []game.Move{"heads", "tails"}, stats.UsedActions(game.ColumnRole))
		require.Equal(t, ActionStatistics{}, stats.Get(game.ColumnRole, "tails"))
		require.Zero(t, stats.Visits(), "Tracking actions should not count visits")
	})

	t.Run("update credits every role", func(t *testing.T) {
		stats := newStatistics()
		stats.AddUsedActions(hh)
		stats.UpdateUsedActions(hh, Scores{game.RowRole: 100, game.ColumnRole: 0})
		stats.UpdateUsedActions(ht, Scores{game.RowRole: 0, game.ColumnRole: 100})
		stats.IncVisits()
		stats.IncVisits()

		require.Equal(t, ActionStatistics{Score: 100, Used: 2}, stats.Get(game.RowRole, "heads"))
		require.Equal(t, ActionStatistics{Score: 0, Used: 1}, stats.Get(game.ColumnRole, "heads"))
		require.Equal(t, ActionStatistics{Score: 100, Used: 1}, stats.Get(game.ColumnRole, "tails"))
		require.Equal(t, 2, stats.Visits())
		require.InDelta(t, 50.0, stats.Get(game.RowRole, "heads").Average(), 1e-9)
	})

	t.Run("used actions returns a copy", func(t *testing.T) {
		stats := newStatistics()
		stats.AddUsedActions(hh)
		actions := stats.UsedActions(game.RowRole)
		actions[0] = "changed"

		require.Equal(t, []game.Move{"heads"}, stats.UsedActions(game.RowRole))
	})

	t.Run("average of an unused action", func(t *testing.T) {
		require.Zero(t, ActionStatistics{}.Average())
	})
}
