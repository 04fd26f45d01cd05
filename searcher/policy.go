package searcher

import (
	"fmt"
	"math"

	"ggp/game"

	"golang.org/x/exp/rand"
)

// Hyperparameters for MCTS

const ExplorationBias = 0.4   // Weight of the exploration term
const FirstPlayUrgency = 10.0 // Score floor of an action never played at a node

// Goal range used to normalize rewards into [0, 1]
const MinScore = float64(game.MinGoal)
const MaxScore = float64(game.MaxGoal)

func normalize(score float64) float64 {
	return (score - MinScore) / (MaxScore - MinScore)
}

type uct struct {
	bias      float64
	urgency   float64
	numerator float64
	visits    int
}

func newUCT(bias, urgency float64, visits int) *uct {
	return &uct{
		bias:      bias,
		urgency:   urgency,
		numerator: 2 * math.Log(float64(visits)),
		visits:    visits,
	}
}

// evaluate scores one role's action at a node:
// UCT = bias*sqrt(2*ln(N)/n) + normalize(q)/n, or urgency + U[0,1) when n = 0
func (u *uct) evaluate(a ActionStatistics, rng *rand.Rand) float64 {
	if a.Used == 0 {
		return u.urgency + rng.Float64()
	}
	if u.visits == 0 {
		panic(fmt.Sprintf("cannot compute UCT: action used %d times at a node without visits", a.Used))
	}
	n := float64(a.Used)
	return u.bias*math.Sqrt(u.numerator/n) + normalize(a.Score)/n
}

func randomElement[T any](rng *rand.Rand, elements []T) T {
	return elements[rng.Intn(len(elements))]
}
