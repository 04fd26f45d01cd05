package experiments

import (
	"fmt"
	"time"

	"ggp/experiments/metrics"
	"ggp/game"
	"ggp/searcher"

	"github.com/rs/zerolog/log"
)

// RunThroughput measures how many iterations a tree completes from the
// initial state within each time budget, repeats times per budget.
func RunThroughput(name, root string, model game.Model, budgets []time.Duration, repeats int) ([]metrics.ThroughputRecord, error) {
	records := []metrics.ThroughputRecord{}

	log.Info().Msgf("starting %s throughput experiment...", name)

	for _, budget := range budgets {
		for i := 0; i < repeats; i++ {
			collector := metrics.NewCollector()
			tree := searcher.NewTree(model, searcher.WithSeed(uint64(i)), searcher.WithMetrics(collector))

			collector.Start()
			deadline := time.Now().Add(budget)
			for time.Now().Before(deadline) {
				if err := tree.Grow(); err != nil {
					return records, fmt.Errorf("budget %s run %d: %w", budget, i+1, err)
				}
			}
			collector.SetTreeSize(tree.Size())
			metric := collector.Complete()

			records = append(records, metrics.ThroughputRecord{
				Budget:       budget,
				Run:          i + 1,
				SearchMetric: metric,
			})
			log.Debug().Dur("budget", budget).Int("run", i+1).Int("iterations", metric.Iterations).Msg("throughput run")
		}
		log.Info().Msgf("completed budget %s", budget)
	}

	log.Info().Msgf("completed %s throughput experiment", name)

	writer, err := metrics.NewWriter(root, name+"-throughput")
	if err != nil {
		return records, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteThroughputRecords(records); err != nil {
		return records, fmt.Errorf("failed to write throughput records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored throughput records")

	return records, nil
}
