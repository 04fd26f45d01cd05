package searcher

import (
	"bytes"
	"encoding/json"
	"testing"

	"ggp/game"

	"github.com/stretchr/testify/require"
)

func TestExportJSON(t *testing.T) {
	tree := NewTree(game.MatchingPennies(), WithSeed(1))
	require.NoError(t, tree.Grow())

	data, err := tree.MarshalJSON()
	require.NoError(t, err)

	var root nodeJSON
	require.NoError(t, json.Unmarshal(data, &root))

	t.Run("root layout", func(t *testing.T) {
		require.Empty(t, root.PrecedingJointMove, "Root has no preceding joint move")
		require.Equal(t, "(matrix start)", root.State)
		require.NotNil(t, root.Statistics)
		require.Equal(t, 1, root.Statistics.NumVisits)
		require.Len(t, root.Children, 4)

		require.Len(t, root.Statistics.StatisticsForActions, 2)
		row := root.Statistics.StatisticsForActions[0]
		require.Equal(t, game.RowRole, row.Role)
		require.Len(t, row.Actions, 2)
		require.Equal(t, game.Move("heads"), row.Actions[0].Action)
		require.Equal(t, game.Move("tails"), row.Actions[1].Action)
	})

	t.Run("leaves carry no statistics", func(t *testing.T) {
		child := root.Children[0]
		require.Nil(t, child.Statistics)
		require.Empty(t, child.Children)
		require.Equal(t, []jointMoveJSON{
			{Role: game.RowRole, Action: "heads"},
			{Role: game.ColumnRole, Action: "heads"},
		}, child.PrecedingJointMove)
	})

	t.Run("field names", func(t *testing.T) {
		var raw map[string]any
		require.NoError(t, json.Unmarshal(data, &raw))
		require.Contains(t, raw, "state")
		require.Contains(t, raw, "statistics")
		require.Contains(t, raw, "children")
		require.NotContains(t, raw, "precedingJointMove")

		stats := raw["statistics"].(map[string]any)
		require.Contains(t, stats, "numVisits")
		actions := stats["statisticsForActions"].([]any)[0].(map[string]any)["actions"].([]any)
		action := actions[0].(map[string]any)
		require.Contains(t, action, "averageActionScore")
		require.Contains(t, action, "actionNumUsed")
	})

	t.Run("subtree export", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, ExportJSON(&buf, tree.Root().Children()[1]))

		var child nodeJSON
		require.NoError(t, json.Unmarshal(buf.Bytes(), &child))
		require.Equal(t, "(matrix heads tails)", child.State)
	})
}
