package i18n

import (
	"errors"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// Language is one of the page languages. The set is closed: only the
// constants below are valid.
type Language string

const (
	Dutch   Language = "nl"
	English Language = "en"
	German  Language = "de"
)

// DefaultLanguage is active when a store is created without WithDefaultLanguage.
const DefaultLanguage = Dutch

// supported keeps the display order of the language switcher.
var supported = []Language{Dutch, English, German}

// Languages returns the supported languages in display order.
func Languages() []Language {
	return slices.Clone(supported)
}

func (l Language) String() string {
	return string(l)
}

// Valid reports whether l belongs to the supported set.
func (l Language) Valid() bool {
	return slices.Contains(supported, l)
}

// Tag returns the BCP 47 tag of l, or language.Und for unsupported values.
func (l Language) Tag() language.Tag {
	switch l {
	case Dutch:
		return language.Dutch
	case English:
		return language.English
	case German:
		return language.German
	default:
		return language.Und
	}
}

// ParseLanguage normalises a language identifier to a supported Language.
// Region and script subtags are dropped and matching is case-insensitive,
// so "nl", "NL", "nl-BE" and "de_CH" are all accepted.
// Anything outside the supported set yields a *LanguageNotSupportedError.
func ParseLanguage(s string) (Language, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return "", &LanguageNotSupportedError{Lang: s}
	}

	tag, err := language.Parse(strings.ReplaceAll(raw, "_", "-"))
	if err != nil {
		return "", errors.Join(&LanguageNotSupportedError{Lang: s}, err)
	}

	base, _ := tag.Base()
	l := Language(base.String())
	if !l.Valid() {
		return "", &LanguageNotSupportedError{Lang: s}
	}
	return l, nil
}
