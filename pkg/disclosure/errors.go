package disclosure

import (
	"errors"
	"fmt"
)

var (
	// ErrInvariantViolation is the base of every error that indicates a
	// wiring bug rather than bad input.
	ErrInvariantViolation = errors.New("disclosure: invariant violation")

	ErrUnknownItem        = fmt.Errorf("%w: unknown item", ErrInvariantViolation)
	ErrTransitionRejected = fmt.Errorf("%w: transition rejected", ErrInvariantViolation)
	ErrNoTransition       = fmt.Errorf("%w: no transition available", ErrInvariantViolation)
	ErrInvalidSize        = errors.New("disclosure: list size must be positive")
)

// TransitionError describes a transition of one item that could not be applied.
type TransitionError struct {
	ID    ID
	State ItemState
	Event Event
	err   error
}

func (e *TransitionError) Error() string {
	if e.State == "" {
		return fmt.Sprintf("%v: item %d", e.err, e.ID)
	}
	return fmt.Sprintf("%v: item %d in state %q on event %q", e.err, e.ID, e.State, e.Event)
}

func (e *TransitionError) Unwrap() error {
	return e.err
}
