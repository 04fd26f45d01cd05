package game

import (
	"fmt"
	"strconv"
	"strings"
)

// writeKeyPart appends part to sb prefixed by its length, so that no choice
// of names makes two different part lists encode alike.
func writeKeyPart(sb *strings.Builder, part string) {
	sb.WriteString(strconv.Itoa(len(part)))
	sb.WriteByte(':')
	sb.WriteString(part)
}

// JointActions assigns one move to every role of a game. It is filled once,
// either role by role with Put or directly from an ordered move list, and is
// treated as an immutable value afterwards.
type JointActions struct {
	roles []Role
	moves []Move
}

// NewJointActions returns an empty assignment over roles, to be filled with Put.
func NewJointActions(roles []Role) *JointActions {
	return &JointActions{
		roles: roles,
		moves: make([]Move, len(roles)),
	}
}

// JointActionsOf pairs roles with moves positionally.
func JointActionsOf(roles []Role, moves []Move) *JointActions {
	if len(roles) != len(moves) {
		panic(fmt.Sprintf("joint actions: %d roles but %d moves", len(roles), len(moves)))
	}
	j := NewJointActions(roles)
	copy(j.moves, moves)
	return j
}

func (j *JointActions) index(role Role) int {
	for i, r := range j.roles {
		if r == role {
			return i
		}
	}
	return -1
}

// Put assigns a move to a role. Panics for a role outside the game.
func (j *JointActions) Put(role Role, move Move) {
	i := j.index(role)
	if i < 0 {
		panic(fmt.Sprintf("joint actions: %v: %q", ErrUnknownRole, role))
	}
	j.moves[i] = move
}

// Get returns the move assigned to role.
func (j *JointActions) Get(role Role) (Move, bool) {
	i := j.index(role)
	if i < 0 || j.moves[i] == "" {
		return "", false
	}
	return j.moves[i], true
}

func (j *JointActions) Roles() []Role {
	return j.roles
}

// Moves returns the moves in role order, the form Model.NextState expects.
func (j *JointActions) Moves() []Move {
	moves := make([]Move, len(j.moves))
	copy(moves, j.moves)
	return moves
}

// Each visits the (role, move) pairs in role order.
func (j *JointActions) Each(fn func(Role, Move)) {
	for i, r := range j.roles {
		fn(r, j.moves[i])
	}
}

// Key identifies the assignment. Two joint actions over the same roles are
// Equal iff their keys match.
func (j *JointActions) Key() string {
	var sb strings.Builder
	for i, m := range j.moves {
		writeKeyPart(&sb, string(j.roles[i]))
		writeKeyPart(&sb, string(m))
	}
	return sb.String()
}

func (j *JointActions) Equal(other *JointActions) bool {
	if j == nil || other == nil {
		return j == other
	}
	if len(j.roles) != len(other.roles) {
		return false
	}
	for i := range j.roles {
		if j.roles[i] != other.roles[i] || j.moves[i] != other.moves[i] {
			return false
		}
	}
	return true
}

// Compare orders joint actions move by move following the role ordering.
func (j *JointActions) Compare(other *JointActions) int {
	n := min(len(j.moves), len(other.moves))
	for i := 0; i < n; i++ {
		if c := strings.Compare(string(j.moves[i]), string(other.moves[i])); c != 0 {
			return c
		}
	}
	return len(j.moves) - len(other.moves)
}

func (j *JointActions) String() string {
	parts := make([]string, len(j.roles))
	for i, r := range j.roles {
		parts[i] = fmt.Sprintf("%s:%s", r, j.moves[i])
	}
	return "(" + strings.Join(parts, " ") + ")"
}
