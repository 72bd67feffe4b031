package i18n

import (
	"log/slog"
)

// Option is a function that configures a Store instance.
type Option func(*Store)

// WithDefaultLanguage sets the language active right after NewStore.
// NewStore fails if lang is not supported.
func WithDefaultLanguage(lang Language) Option {
	return func(s *Store) {
		if lang != "" {
			s.defaultLang = lang
		}
	}
}

// WithLogger provides a customizable logger for the store.
// If not specified, a discard logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithSubscriberBuffer sets how many pending language changes a slow
// subscriber may hold before the oldest is dropped.
func WithSubscriberBuffer(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.bufferSize = n
		}
	}
}

// WithNoLogging is a convenience option that disables all logging.
func WithNoLogging() Option {
	return func(s *Store) {
		s.logger = slog.New(slog.DiscardHandler)
	}
}
