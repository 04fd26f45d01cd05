package searcher

import (
	"ggp/game"
)

// Scores holds one playout's reward per role.
type Scores map[game.Role]float64

// ActionStatistics accumulates the playouts in which a role chose an action.
type ActionStatistics struct {
	Score float64 // sum of rewards
	Used  int     // number of playouts
}

// Average returns Score/Used, or 0 for an unused action.
func (a ActionStatistics) Average() float64 {
	if a.Used == 0 {
		return 0
	}
	return a.Score / float64(a.Used)
}

type actionTable struct {
	order []game.Move // insertion order keeps iteration deterministic
	stats map[game.Move]*ActionStatistics
}

func newActionTable() *actionTable {
	return &actionTable{stats: make(map[game.Move]*ActionStatistics)}
}

func (t *actionTable) ensure(move game.Move) *ActionStatistics {
	if s, ok := t.stats[move]; ok {
		return s
	}
	s := &ActionStatistics{}
	t.stats[move] = s
	t.order = append(t.order, move)
	return s
}

// Statistics is the per-node table of per-role action statistics plus the
// number of times the node was stepped through as a parent during
// backpropagation.
type Statistics struct {
	visits  int
	roles   []game.Role
	actions map[game.Role]*actionTable
}

func newStatistics() *Statistics {
	return &Statistics{actions: make(map[game.Role]*actionTable)}
}

func (s *Statistics) table(role game.Role) *actionTable {
	t, ok := s.actions[role]
	if !ok {
		t = newActionTable()
		s.actions[role] = t
		s.roles = append(s.roles, role)
	}
	return t
}

// AddUsedActions makes every action of the joint move visible to selection,
// starting from zero statistics if it was not tracked yet.
func (s *Statistics) AddUsedActions(joint *game.JointActions) {
	joint.Each(func(role game.Role, move game.Move) {
		s.table(role).ensure(move)
	})
}

// UpdateUsedActions credits each role's action with that role's score.
func (s *Statistics) UpdateUsedActions(joint *game.JointActions, scores Scores) {
	joint.Each(func(role game.Role, move game.Move) {
		a := s.table(role).ensure(move)
		a.Score += scores[role]
		a.Used++
	})
}

func (s *Statistics) IncVisits() {
	s.visits++
}

func (s *Statistics) Visits() int {
	return s.visits
}

// Get returns the statistics of a tracked action, or zero statistics.
func (s *Statistics) Get(role game.Role, move game.Move) ActionStatistics {
	t, ok := s.actions[role]
	if !ok {
		return ActionStatistics{}
	}
	a, ok := t.stats[move]
	if !ok {
		return ActionStatistics{}
	}
	return *a
}

// UsedActions lists the role's tracked actions in the order they were added.
func (s *Statistics) UsedActions(role game.Role) []game.Move {
	t, ok := s.actions[role]
	if !ok {
		return nil
	}
	moves := make([]game.Move, len(t.order))
	copy(moves, t.order)
	return moves
}

// Roles lists the roles with tracked actions in the order they were added.
func (s *Statistics) Roles() []game.Role {
	roles := make([]game.Role, len(s.roles))
	copy(roles, s.roles)
	return roles
}

func (s *Statistics) IsEmpty() bool {
	return len(s.roles) == 0
}
