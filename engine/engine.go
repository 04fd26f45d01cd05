package engine

import (
	"ggp/experiments/metrics"
	"ggp/game"
)

const MaxTurns = 300

type Engine interface {
	// Run plays a match till a terminal state or a max number of turns is reached
	Run() (Result, error)
}

type Result struct {
	Roles       []game.Role
	Goals       map[game.Role]int // nil when the turn limit stopped the match
	Turns       int
	History     []*game.JointActions
	GameMetric  metrics.GameMetric
	MoveMetrics []metrics.MoveMetric
}

// Winners lists the roles with the highest goal.
func (r Result) Winners() []game.Role {
	if r.Goals == nil {
		return nil
	}
	best := -1
	var winners []game.Role
	for _, role := range r.Roles {
		goal := r.Goals[role]
		if goal > best {
			best = goal
			winners = append(winners[:0], role)
		} else if goal == best {
			winners = append(winners, role)
		}
	}
	return winners
}
