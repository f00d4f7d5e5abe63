package statemachine

import (
	"errors"
	"fmt"
)

// ErrNoTransitionAvailable indicates that no transition is registered for the
// current state and event.
type ErrNoTransitionAvailable struct {
	State string
	Event string
}

func (e *ErrNoTransitionAvailable) Error() string {
	return fmt.Sprintf("no transition available from state '%s' for event '%s'", e.State, e.Event)
}

// ErrTransitionRejected indicates that every candidate transition was blocked by a guard.
type ErrTransitionRejected struct {
	State string
	Event string
}

func (e *ErrTransitionRejected) Error() string {
	return fmt.Sprintf("transition from state '%s' for event '%s' was rejected by guards", e.State, e.Event)
}

func IsNoTransitionAvailableError(err error) bool {
	var e *ErrNoTransitionAvailable
	return errors.As(err, &e)
}

func IsTransitionRejectedError(err error) bool {
	var e *ErrTransitionRejected
	return errors.As(err, &e)
}
