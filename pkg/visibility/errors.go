package visibility

import (
	"errors"
	"fmt"

	"github.com/creemers/site/pkg/disclosure"
)

var (
	// ErrUnknownTarget is returned for entries and ids that were never observed.
	ErrUnknownTarget = fmt.Errorf("%w: unknown visibility target", disclosure.ErrInvariantViolation)

	ErrObserverClosed   = errors.New("visibility: observer closed")
	ErrAlreadyStarted   = errors.New("visibility: observer already started")
	ErrInvalidThreshold = errors.New("visibility: threshold must be within (0, 1]")
	ErrNilMarker        = errors.New("visibility: marker is nil")
)
