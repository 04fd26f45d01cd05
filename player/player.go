package player

import (
	"errors"
	"fmt"
	"time"

	"ggp/experiments/metrics"
	"ggp/game"

	"golang.org/x/exp/rand"
)

var ErrNoGame = errors.New("select move before meta game")

// Gamer plays one role of a match.
type Gamer interface {
	Name() string
	// MetaGame prepares for a new match.
	MetaGame(model game.Model, role game.Role) error
	// SelectMove returns the role's move in state, deciding before deadline.
	SelectMove(state game.State, deadline time.Time) (game.Move, metrics.SearchMetric, error)
}

// Random picks uniformly among the legal moves.
type Random struct {
	model game.Model
	role  game.Role
	rng   *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (p *Random) Name() string {
	return "random"
}

func (p *Random) MetaGame(model game.Model, role game.Role) error {
	p.model = model
	p.role = role
	return nil
}

func (p *Random) SelectMove(state game.State, _ time.Time) (game.Move, metrics.SearchMetric, error) {
	if p.model == nil {
		return "", metrics.SearchMetric{}, ErrNoGame
	}
	move, err := randomLegalMove(p.model, state, p.role, p.rng)
	return move, metrics.SearchMetric{}, err
}

func randomLegalMove(model game.Model, state game.State, role game.Role, rng *rand.Rand) (game.Move, error) {
	moves, err := model.LegalMoves(state, role)
	if err != nil {
		return "", fmt.Errorf("legal moves of %q: %w", role, err)
	}
	if len(moves) == 0 {
		return "", fmt.Errorf("legal moves of %q: %w", role, game.ErrNoLegalMoves)
	}
	return moves[rng.Intn(len(moves))], nil
}
