// meta/meta.go
package meta

import (
	"ggp/engine"
	"ggp/player"
	"ggp/searcher"
)

// PLAY_CLOCK defines the time budget of one move.
const PLAY_CLOCK = engine.DefaultPlayClock

// SAFETY_MARGIN defines how long before the deadline the search stops.
const SAFETY_MARGIN = player.DefaultSafetyMargin

// EXPLORATION_BIAS defines the weight of the UCT exploration term.
const EXPLORATION_BIAS = searcher.ExplorationBias

// FIRST_PLAY_URGENCY defines the score of an action never tried at a node.
const FIRST_PLAY_URGENCY = searcher.FirstPlayUrgency

// MAX_TURNS defines the turn limit of a match.
const MAX_TURNS = engine.MaxTurns

// GAMES defines the number of matches per match up in experiments.
const GAMES = 10
