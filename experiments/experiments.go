package experiments

import (
	"fmt"
	"time"

	"ggp/engine"
	"ggp/experiments/metrics"
	"ggp/game"
	"ggp/player"
	"ggp/searcher"

	"github.com/rs/zerolog/log"
)

// Experiment plays every match up a number of times on one game. Each match
// up lists one agent per role.
type Experiment struct {
	Name      string
	OutputDir string
	Model     game.Model
	Configs   []metrics.AgentConfig
	MatchUps  [][]metrics.AgentConfig
	Games     int
	MaxTurns  int
}

// Summary counts, per agent, the matches in which it reached the top goal.
type Summary struct {
	Games int
	Wins  map[int]int
	Dir   string
}

func Run(x Experiment) (Summary, error) {
	summary := Summary{Wins: make(map[int]int)}
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", x.Name)

	for mi, matchup := range x.MatchUps {
		log.Info().Msgf("starting matchup %d of %d: %+v", mi+1, len(x.MatchUps), matchup)

		for i := 0; i < x.Games; i++ {
			result, err := runGame(x.Model, matchup, x.MaxTurns, uint64(count))
			if err != nil {
				return summary, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++

			agents := make([]int, len(matchup))
			for ai, config := range matchup {
				agents[ai] = config.ID
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agents:     agents,
				GameMetric: result.GameMetric,
			})
			for _, mm := range result.MoveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					Agent:      agentOf(result.Roles, matchup, mm.Role),
					MoveMetric: mm,
				})
			}
			for _, role := range result.Winners() {
				summary.Wins[agentOf(result.Roles, matchup, string(role))]++
			}

			log.Info().Msgf("completed matchup %d of %d game %d with goals: %v", mi+1, len(x.MatchUps), i+1, result.Goals)
		}
	}
	summary.Games = count

	log.Info().Msgf("completed %s experiment", x.Name)

	writer, err := metrics.NewWriter(x.OutputDir, x.Name)
	if err != nil {
		return summary, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	summary.Dir = writer.Dir()

	if err := writer.WriteAgentConfigs(x.Configs); err != nil {
		return summary, fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return summary, fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return summary, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Str("dir", summary.Dir).Msg("stored experiment records")

	return summary, nil
}

func agentOf(roles []game.Role, matchup []metrics.AgentConfig, role string) int {
	for i, r := range roles {
		if string(r) == role && i < len(matchup) {
			return matchup[i].ID
		}
	}
	return -1
}

// runGame executes a single match; offset varies the seeds between games.
func runGame(model game.Model, matchup []metrics.AgentConfig, maxTurns int, offset uint64) (engine.Result, error) {
	gamers := make([]player.Gamer, len(matchup))
	clock := time.Duration(0)
	for i, config := range matchup {
		gamers[i] = NewGamer(config, offset)
		clock = max(clock, config.PlayClock)
	}

	e, err := engine.LocalEngine(model, gamers, engine.WithPlayClock(clock), engine.WithMaxTurns(maxTurns))
	if err != nil {
		return engine.Result{}, err
	}
	return e.Run()
}

// NewGamer builds the player described by config.
func NewGamer(config metrics.AgentConfig, offset uint64) player.Gamer {
	seed := config.Seed + offset
	if config.Kind == "random" {
		return player.NewRandom(seed)
	}

	treeOptions := []searcher.Option{
		searcher.WithExplorationBias(config.ExplorationBias),
		searcher.WithFirstPlayUrgency(config.FirstPlayUrgency),
	}
	if config.DeferExpansion {
		treeOptions = append(treeOptions, searcher.WithDeferredExpansion())
	}
	options := []player.Option{
		player.WithSeed(seed),
		player.WithMetrics(),
		player.WithSafetyMargin(config.SafetyMargin),
		player.WithTreeOptions(treeOptions...),
	}
	if config.Iterations > 0 {
		options = append(options, player.WithIterations(config.Iterations))
	}
	return player.NewMCTS(options...)
}
