package game

import (
	"errors"
	"fmt"
)

var (
	ErrNoLegalMoves = errors.New("no legal moves")
	ErrUnknownRole  = errors.New("unknown role")
	ErrIllegalMove  = errors.New("illegal move")
	ErrNotTerminal  = errors.New("state is not terminal")
)

// ModelError is returned by a Model when a rule query cannot be answered.
type ModelError struct {
	Op  string
	Err error
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("game model: %s: %v", e.Op, e.Err)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

func modelError(op string, err error) error {
	return &ModelError{Op: op, Err: err}
}
