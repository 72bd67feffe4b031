package disclosure

import (
	"log/slog"
)

// Option configures a Controller.
type Option func(*Controller)

// WithStrict makes invariant violations return errors. Without it they are
// logged and the state is left unchanged.
func WithStrict(strict bool) Option {
	return func(c *Controller) {
		c.strict = strict
	}
}

// WithLogger sets the logger used to report invariant violations.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithSubscriberBuffer sets how many pending snapshots a slow subscriber
// may hold before the oldest is dropped.
func WithSubscriberBuffer(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.bufferSize = n
		}
	}
}
