package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"ggp/engine"
	"ggp/experiments"
	"ggp/experiments/metrics"
	"ggp/game"
	"ggp/meta"
	"ggp/player"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML match config")
	gameName := flag.String("game", "", "Game to play: nim or pennies")
	experiment := flag.Bool("experiment", false, "Play the configured number of games and store records")
	throughput := flag.Duration("throughput", 0, "Measure search throughput up to this time budget")
	logLevel := flag.String("log", "", "Log level: debug, info, warn or error")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	config := meta.Default()
	if *configPath != "" {
		loaded, err := meta.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *configPath).Msg("invalid config")
		}
		config = loaded
	}
	if *gameName != "" {
		config.Game.Name = *gameName
	}
	if *logLevel != "" {
		config.LogLevel = *logLevel
	}
	if err := config.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	model, err := newModel(config.Game)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create game")
	}

	if *throughput > 0 {
		budgets := []time.Duration{*throughput / 4, *throughput / 2, *throughput}
		if _, err := experiments.RunThroughput(config.Game.Name, config.OutputDir, model, budgets, config.Games); err != nil {
			log.Fatal().Err(err).Msg("throughput experiment failed")
		}
		return
	}
	if *experiment {
		runExperiment(config, model)
		return
	}

	gamers := make([]player.Gamer, len(config.Players))
	for i, p := range config.Players {
		gamers[i] = experiments.NewGamer(agentConfig(i+1, p, config.PlayClock), 0)
	}
	e, err := engine.LocalEngine(model, gamers, engine.WithPlayClock(config.PlayClock), engine.WithMaxTurns(config.MaxTurns))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create engine")
	}
	result, err := e.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("match aborted")
	}
	engine.PrintSummary(os.Stdout, result)
}

func newModel(config meta.GameConfig) (game.Model, error) {
	switch config.Name {
	case "nim":
		nim, err := game.NewNim(config.Stones, config.MaxTake)
		if err != nil {
			return nil, err
		}
		return game.NewCached(nim), nil
	case "pennies":
		return game.NewCached(game.MatchingPennies()), nil
	}
	return nil, fmt.Errorf("unknown game %q", config.Name)
}

// agentConfig describes the player with the given id. A player without a
// seed draws one from the clock, whatever its kind.
func agentConfig(id int, p meta.PlayerConfig, playClock time.Duration) metrics.AgentConfig {
	seed := p.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano()) + uint64(id)
	}
	return metrics.AgentConfig{
		ID:               id,
		Kind:             p.Kind,
		PlayClock:        playClock,
		SafetyMargin:     p.SafetyMargin,
		Iterations:       p.Iterations,
		ExplorationBias:  p.ExplorationBias,
		FirstPlayUrgency: p.FirstPlayUrgency,
		DeferExpansion:   p.DeferExpansion,
		Seed:             seed,
	}
}

func runExperiment(config meta.Config, model game.Model) {
	agents := make([]metrics.AgentConfig, len(config.Players))
	for i, p := range config.Players {
		agents[i] = agentConfig(i+1, p, config.PlayClock)
	}
	// Each agent plays every role once per round.
	reversed := []metrics.AgentConfig{agents[1], agents[0]}

	summary, err := experiments.Run(experiments.Experiment{
		Name:      config.Game.Name,
		OutputDir: config.OutputDir,
		Model:     model,
		Configs:   agents,
		MatchUps:  [][]metrics.AgentConfig{agents, reversed},
		Games:     config.Games,
		MaxTurns:  config.MaxTurns,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
	for _, agent := range agents {
		fmt.Printf("agent %d (%s): %d wins out of %d games\n", agent.ID, agent.Kind, summary.Wins[agent.ID], summary.Games)
	}
	fmt.Printf("records stored in %s\n", summary.Dir)
}
