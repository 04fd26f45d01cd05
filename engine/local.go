package engine

import (
	"fmt"
	"time"

	"ggp/experiments/metrics"
	"ggp/game"
	"ggp/player"

	"github.com/rs/zerolog/log"
)

const DefaultPlayClock = 10 * time.Second

type Option func(e *Local)

func WithPlayClock(clock time.Duration) Option {
	return func(e *Local) {
		if clock > 0 {
			e.playClock = clock
		}
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *Local) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// Local runs a match in process, one gamer per role.
type Local struct {
	model     game.Model
	gamers    []player.Gamer
	playClock time.Duration
	maxTurns  int
}

// LocalEngine pairs gamers with the model's roles positionally.
func LocalEngine(model game.Model, gamers []player.Gamer, options ...Option) (*Local, error) {
	roles := model.Roles()
	if len(roles) != len(gamers) {
		return nil, fmt.Errorf("number of gamers (%d) does not match number of roles (%d)", len(gamers), len(roles))
	}

	e := &Local{
		model:     model,
		gamers:    gamers,
		playClock: DefaultPlayClock,
		maxTurns:  MaxTurns,
	}
	for _, option := range options {
		option(e)
	}
	return e, nil
}

// Run executes the entire match. Every gamer decides on its own play clock
// and the moves are applied together as one joint move.
func (e *Local) Run() (Result, error) {
	roles := e.model.Roles()
	result := Result{Roles: roles}
	start := time.Now()

	for i, gamer := range e.gamers {
		if err := gamer.MetaGame(e.model, roles[i]); err != nil {
			return result, fmt.Errorf("meta game for %q: %w", roles[i], err)
		}
	}

	state := e.model.InitialState()
	for !e.model.IsTerminal(state) && result.Turns < e.maxTurns {
		joint := game.NewJointActions(roles)
		for i, gamer := range e.gamers {
			deadline := time.Now().Add(e.playClock)
			move, metric, err := gamer.SelectMove(state, deadline)
			if err != nil {
				return result, fmt.Errorf("turn %d: %s gamer for %q: %w", result.Turns, gamer.Name(), roles[i], err)
			}
			joint.Put(roles[i], move)
			result.MoveMetrics = append(result.MoveMetrics, metrics.MoveMetric{
				Step:         result.Turns,
				Role:         string(roles[i]),
				Move:         string(move),
				SearchMetric: metric,
			})
		}

		legal, err := game.IsLegal(e.model, state, joint.Moves())
		if err != nil {
			return result, fmt.Errorf("turn %d: %w", result.Turns, err)
		}
		if !legal {
			return result, fmt.Errorf("turn %d: %w: %v", result.Turns, game.ErrIllegalMove, joint)
		}

		next, err := e.model.NextState(state, joint.Moves())
		if err != nil {
			return result, fmt.Errorf("turn %d: %w", result.Turns, err)
		}
		log.Debug().Int("turn", result.Turns).Stringer("moves", joint).Stringer("state", next).Msg("joint move played")

		state = next
		result.History = append(result.History, joint)
		result.Turns++
	}

	result.GameMetric = metrics.GameMetric{
		StartTime: start,
		EndTime:   time.Now(),
		Duration:  time.Since(start),
		Turns:     result.Turns,
	}

	if !e.model.IsTerminal(state) {
		log.Warn().Int("turns", result.Turns).Msg("stopped at the turn limit without a result")
		return result, nil
	}

	goals, err := game.Goals(e.model, state)
	if err != nil {
		return result, fmt.Errorf("goals: %w", err)
	}
	result.Goals = goals
	result.GameMetric.Goals = make(map[string]int, len(goals))
	for role, goal := range goals {
		result.GameMetric.Goals[string(role)] = goal
	}
	log.Info().Int("turns", result.Turns).Interface("goals", goals).Msg("match over")
	return result, nil
}
