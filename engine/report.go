package engine

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintSummary renders a finished match, highlighting the winners.
func PrintSummary(w io.Writer, result Result) {
	out := termenv.NewOutput(w)

	fmt.Fprintln(w, out.String(fmt.Sprintf("Match over after %d turns (%s)", result.Turns, result.GameMetric.Duration)).Bold())
	for i, joint := range result.History {
		fmt.Fprintf(w, "  %3d %s\n", i+1, joint)
	}

	if result.Goals == nil {
		fmt.Fprintln(w, out.String("No result: turn limit reached").Foreground(out.Color("3")))
		return
	}

	winners := make(map[string]bool)
	for _, role := range result.Winners() {
		winners[string(role)] = true
	}
	for _, role := range result.Roles {
		line := fmt.Sprintf("  %-10s %3d", role, result.Goals[role])
		if winners[string(role)] {
			fmt.Fprintln(w, out.String(line).Foreground(out.Color("2")).Bold())
		} else {
			fmt.Fprintln(w, out.String(line).Foreground(out.Color("1")))
		}
	}
}
