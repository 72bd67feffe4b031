package visibility

import (
	"log/slog"
)

// DefaultThreshold is the share of an item that must be on screen before it
// counts as visible.
const DefaultThreshold = 0.1

// Option configures an Observer.
type Option func(*Observer)

// WithThreshold sets the minimum intersection ratio. New fails for values
// outside (0, 1].
func WithThreshold(ratio float64) Option {
	return func(o *Observer) {
		o.threshold = ratio
	}
}

// WithSubscriberBuffer sets how many delivered ids a slow subscriber may
// hold before the oldest is dropped.
func WithSubscriberBuffer(n int) Option {
	return func(o *Observer) {
		if n > 0 {
			o.bufferSize = n
		}
	}
}

// WithLogger sets the observer logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Observer) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithStrict makes Notify and Observe return invariant violations instead
// of logging them.
func WithStrict(strict bool) Option {
	return func(o *Observer) {
		o.strict = strict
	}
}
