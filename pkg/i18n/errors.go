package i18n

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrConfiguration is the base of every error caused by bad language tags or
// bad dictionary data. Such errors are fatal to the operation that raised
// them and are never replaced by a default value.
var ErrConfiguration = errors.New("i18n: configuration error")

// ErrNoStore is returned when a store is requested from a context that was
// never passed through WithStore.
var ErrNoStore = errors.New("i18n: no translation store in context")

var (
	// JSON operations
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")
	ErrFailedToMarshalJSON  = errors.New("failed to marshal translations to JSON")

	// YAML operations
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	// Source operations
	ErrNilParser             = errors.New("parser is nil")
	ErrLoadingCancelled      = errors.New("loading translations cancelled")
	ErrFailedToReadFile      = errors.New("failed to read translation file")
	ErrFailedToParseFile     = errors.New("failed to parse translation file")
	ErrFailedToReadDirectory = errors.New("failed to read translation directory")
	ErrNoTranslationFiles    = errors.New("no translation files found")
)

// LanguageNotSupportedError reports a language tag outside the supported set.
type LanguageNotSupportedError struct {
	Lang string
}

func (e *LanguageNotSupportedError) Error() string {
	return fmt.Sprintf("i18n: language not supported: %q", e.Lang)
}

func (e *LanguageNotSupportedError) Is(target error) bool {
	return target == ErrConfiguration
}

// MissingKeyError reports a lookup of a key the active table does not define.
type MissingKeyError struct {
	Lang Language
	Key  string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("i18n: missing key %q for language %q", e.Key, e.Lang)
}

func (e *MissingKeyError) Is(target error) bool {
	return target == ErrConfiguration
}

// IncompleteDictionaryError reports languages whose key set differs from the
// union of all keys. Missing holds the absent keys per language, sorted.
type IncompleteDictionaryError struct {
	Missing map[Language][]string
}

func (e *IncompleteDictionaryError) Error() string {
	langs := make([]string, 0, len(e.Missing))
	for l := range e.Missing {
		langs = append(langs, string(l))
	}
	slices.Sort(langs)

	parts := make([]string, 0, len(langs))
	for _, l := range langs {
		keys := e.Missing[Language(l)]
		if len(keys) > 3 {
			parts = append(parts, fmt.Sprintf("%s: %s and %d more", l, strings.Join(keys[:3], ", "), len(keys)-3))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", l, strings.Join(keys, ", ")))
	}
	return "i18n: incomplete dictionary, missing keys (" + strings.Join(parts, "; ") + ")"
}

func (e *IncompleteDictionaryError) Is(target error) bool {
	return target == ErrConfiguration
}

// InvalidValueError reports a dictionary entry that is not a string.
type InvalidValueError struct {
	Lang  string
	Key   string
	Value any
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("i18n: value of %q for language %q is %T, want string", e.Key, e.Lang, e.Value)
}

func (e *InvalidValueError) Is(target error) bool {
	return target == ErrConfiguration
}
