package i18n

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/creemers/site/pkg/broadcast"
)

// Store holds the active language and resolves keys against the matching
// table of an immutable Dictionary.
//
// Readers always observe a complete (language, table) pair: SetLanguage
// swaps a single pointer. Writers are serialised so subscribers receive
// changes in the order they were applied.
type Store struct {
	dict        *Dictionary
	active      atomic.Pointer[Table]
	changes     *broadcast.MemoryBroadcaster[Language]
	defaultLang Language
	bufferSize  int
	logger      *slog.Logger
	mu          sync.Mutex
}

// NewStore creates a store over dict with DefaultLanguage active unless
// WithDefaultLanguage says otherwise.
func NewStore(dict *Dictionary, opts ...Option) (*Store, error) {
	if dict == nil {
		return nil, errors.New("i18n: dictionary is nil")
	}

	s := &Store{
		dict:        dict,
		defaultLang: DefaultLanguage,
		bufferSize:  4,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}

	table, err := dict.Table(s.defaultLang)
	if err != nil {
		return nil, err
	}
	s.active.Store(&table)
	s.changes = broadcast.NewMemoryBroadcaster[Language](s.bufferSize)

	return s, nil
}

// Language returns the active language.
func (s *Store) Language() Language {
	return s.active.Load().Language()
}

// Table returns the table of the active language.
func (s *Store) Table() Table {
	return *s.active.Load()
}

// Dictionary returns the dictionary the store reads from.
func (s *Store) Dictionary() *Dictionary {
	return s.dict
}

// SetLanguage makes lang the active language and notifies subscribers.
// Languages outside the supported set are rejected with a
// *LanguageNotSupportedError and leave the active language unchanged.
// Selecting the active language again is a no-op.
func (s *Store) SetLanguage(ctx context.Context, lang Language) error {
	table, err := s.dict.Table(lang)
	if err != nil {
		s.logger.WarnContext(ctx, "Language rejected", "lang", string(lang), "error", err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.Language()
	if prev == lang {
		return nil
	}

	s.active.Store(&table)
	s.logger.DebugContext(ctx, "Language changed", "from", string(prev), "to", string(lang))

	return s.changes.Broadcast(ctx, broadcast.Message[Language]{Data: lang})
}

// T returns the value of key in the active language.
// A missing key yields a *MissingKeyError; values of other languages are
// never substituted.
func (s *Store) T(key string) (string, error) {
	v, err := s.active.Load().Lookup(key)
	if err != nil {
		s.logger.Error("Translation not found", "lang", string(s.Language()), "key", key)
		return "", err
	}
	return v, nil
}

// Subscribe streams every language change applied after the call.
func (s *Store) Subscribe(ctx context.Context) broadcast.Subscriber[Language] {
	return s.changes.Subscribe(ctx)
}

// Close ends all subscriptions. Lookups keep working.
func (s *Store) Close() error {
	return s.changes.Close()
}
