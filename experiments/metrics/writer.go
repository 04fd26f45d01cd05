package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
)

// AgentConfig describes one player configuration taking part in experiments.
type AgentConfig struct {
	ID               int
	Kind             string // "mcts" or "random"
	PlayClock        time.Duration
	SafetyMargin     time.Duration
	Iterations       int // Iteration cap per move, 0 for clock only
	ExplorationBias  float64
	FirstPlayUrgency float64
	DeferExpansion   bool
	Seed             uint64
}

type GameRecord struct {
	ID     int
	Agents []int // AgentConfig.ID per role
	GameMetric
}

type MoveRecord struct {
	Game  int // GameRecord.ID
	Agent int // AgentConfig.ID
	MoveMetric
}

// ThroughputRecord is one timed search from a fresh tree.
type ThroughputRecord struct {
	Budget time.Duration
	Run    int
	SearchMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates root/name/<timestamp> to hold the experiment's files.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405.000000000")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) write(file string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", file, err)
	}
	for _, row := range rows {
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", file, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "kind", "play_clock", "safety_margin", "iterations", "exploration_bias", "first_play_urgency", "defer_expansion", "seed"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Kind,
			config.PlayClock.String(),
			config.SafetyMargin.String(),
			strconv.Itoa(config.Iterations),
			strconv.FormatFloat(config.ExplorationBias, 'f', -1, 64),
			strconv.FormatFloat(config.FirstPlayUrgency, 'f', -1, 64),
			strconv.FormatBool(config.DeferExpansion),
			strconv.FormatUint(config.Seed, 10),
		})
	}
	return w.write("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agents", "goals", "turns", "start_time", "end_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		agents := make([]string, len(record.Agents))
		for i, a := range record.Agents {
			agents[i] = strconv.Itoa(a)
		}
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strings.Join(agents, ";"),
			formatGoals(record.Goals),
			strconv.Itoa(record.Turns),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "agent", "role", "move", "duration", "iterations", "expansions", "playouts", "max_depth", "tree_size", "is_tree_reset"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Agent),
			record.Role,
			record.Move,
			record.Duration.String(),
			strconv.Itoa(record.Iterations),
			strconv.Itoa(record.Expansions),
			strconv.Itoa(record.Playouts),
			strconv.Itoa(record.MaxDepth),
			strconv.Itoa(record.TreeSize),
			strconv.FormatBool(record.IsTreeReset),
		})
	}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) WriteThroughputRecords(records []ThroughputRecord) error {
	header := []string{"budget", "run", "duration", "iterations", "expansions", "playouts", "max_depth", "tree_size", "iterations_per_second"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rate := 0.0
		if record.Duration > 0 {
			rate = float64(record.Iterations) / record.Duration.Seconds()
		}
		rows = append(rows, []string{
			record.Budget.String(),
			strconv.Itoa(record.Run),
			record.Duration.String(),
			strconv.Itoa(record.Iterations),
			strconv.Itoa(record.Expansions),
			strconv.Itoa(record.Playouts),
			strconv.Itoa(record.MaxDepth),
			strconv.Itoa(record.TreeSize),
			strconv.FormatFloat(rate, 'f', 1, 64),
		})
	}
	return w.write("throughput_records.csv", header, rows)
}

func formatGoals(goals map[string]int) string {
	roles := make([]string, 0, len(goals))
	for role := range goals {
		roles = append(roles, role)
	}
	sort.Strings(roles)

	parts := make([]string, len(roles))
	for i, role := range roles {
		parts[i] = fmt.Sprintf("%s=%d", role, goals[role])
	}
	return strings.Join(parts, ";")
}
