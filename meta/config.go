package meta

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type PlayerConfig struct {
	Kind             string        `yaml:"kind"` // mcts or random
	Iterations       int           `yaml:"iterations"`
	SafetyMargin     time.Duration `yaml:"safety_margin"`
	ExplorationBias  float64       `yaml:"exploration_bias"`
	FirstPlayUrgency float64       `yaml:"first_play_urgency"`
	DeferExpansion   bool          `yaml:"defer_expansion"`
	Seed             uint64        `yaml:"seed"`
}

type GameConfig struct {
	Name    string `yaml:"name"` // nim or pennies
	Stones  int    `yaml:"stones"`
	MaxTake int    `yaml:"max_take"`
}

type Config struct {
	Game      GameConfig     `yaml:"game"`
	PlayClock time.Duration  `yaml:"play_clock"`
	MaxTurns  int            `yaml:"max_turns"`
	Games     int            `yaml:"games"`
	LogLevel  string         `yaml:"log_level"`
	OutputDir string         `yaml:"output_dir"`
	Players   []PlayerConfig `yaml:"players"`
}

func DefaultPlayer(kind string) PlayerConfig {
	return PlayerConfig{
		Kind:             kind,
		SafetyMargin:     SAFETY_MARGIN,
		ExplorationBias:  EXPLORATION_BIAS,
		FirstPlayUrgency: FIRST_PLAY_URGENCY,
	}
}

func Default() Config {
	return Config{
		Game:      GameConfig{Name: "nim", Stones: 15, MaxTake: 3},
		PlayClock: PLAY_CLOCK,
		MaxTurns:  MAX_TURNS,
		Games:     GAMES,
		LogLevel:  "info",
		OutputDir: "experiments",
		Players:   []PlayerConfig{DefaultPlayer("mcts"), DefaultPlayer("random")},
	}
}

// UnmarshalYAML fills the fields missing from a player entry with defaults.
func (p *PlayerConfig) UnmarshalYAML(value *yaml.Node) error {
	type plain PlayerConfig
	player := plain(DefaultPlayer(""))
	if err := value.Decode(&player); err != nil {
		return err
	}
	*p = PlayerConfig(player)
	return nil
}

// Load reads a YAML file over the defaults. A players list replaces the
// default players.
func Load(path string) (Config, error) {
	config := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse config: %w", err)
	}
	return config, config.Validate()
}

func (c Config) Validate() error {
	var errs []error
	switch c.Game.Name {
	case "nim":
		if c.Game.Stones < 1 || c.Game.MaxTake < 1 {
			errs = append(errs, fmt.Errorf("nim needs positive stones and max_take"))
		}
	case "pennies":
	default:
		errs = append(errs, fmt.Errorf("unknown game %q", c.Game.Name))
	}
	if c.PlayClock <= 0 {
		errs = append(errs, fmt.Errorf("play_clock must be positive"))
	}
	if len(c.Players) != 2 {
		errs = append(errs, fmt.Errorf("expected 2 players, got %d", len(c.Players)))
	}
	for i, p := range c.Players {
		if p.Kind != "mcts" && p.Kind != "random" {
			errs = append(errs, fmt.Errorf("player %d: unknown kind %q", i, p.Kind))
		}
		if p.Kind == "mcts" && p.SafetyMargin >= c.PlayClock {
			errs = append(errs, fmt.Errorf("player %d: safety_margin %s leaves no search time", i, p.SafetyMargin))
		}
	}
	return errors.Join(errs...)
}
