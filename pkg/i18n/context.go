package i18n

import (
	"context"
)

// storeContextKey is the key for storing the Store in context
type storeContextKey struct{}

// WithStore returns a context carrying s. Components that translate take
// the store from here instead of from package state.
func WithStore(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, storeContextKey{}, s)
}

// StoreFromContext returns the store set by WithStore, or ErrNoStore.
// There is no default store.
func StoreFromContext(ctx context.Context) (*Store, error) {
	if ctx == nil {
		return nil, ErrNoStore
	}
	s, ok := ctx.Value(storeContextKey{}).(*Store)
	if !ok || s == nil {
		return nil, ErrNoStore
	}
	return s, nil
}

// MustStore is like StoreFromContext but panics when no store is present.
// Reaching for translations outside the composition root is a programming
// error.
func MustStore(ctx context.Context) *Store {
	s, err := StoreFromContext(ctx)
	if err != nil {
		panic(err)
	}
	return s
}
