package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
)

// Table is the flat key/value view of a single language.
// It is read-only; the zero value has no keys.
type Table struct {
	lang   Language
	values map[string]string
}

// Language returns the language the table belongs to.
func (t Table) Language() Language {
	return t.lang
}

// Lookup returns the value stored under key.
// Unknown keys yield a *MissingKeyError; there is no fallback.
func (t Table) Lookup(key string) (string, error) {
	v, ok := t.values[key]
	if !ok {
		return "", &MissingKeyError{Lang: t.lang, Key: key}
	}
	return v, nil
}

// Has reports whether key is defined.
func (t Table) Has(key string) bool {
	_, ok := t.values[key]
	return ok
}

// Len returns the number of keys.
func (t Table) Len() int {
	return len(t.values)
}

// Dictionary maps every supported language to its Table.
// A Dictionary is immutable once built and safe for concurrent use.
type Dictionary struct {
	tables map[Language]Table
	keys   []string
}

// NewDictionary loads translations from the adapter and validates them.
//
// Nested maps are flattened into dot-separated keys ("faq.title").
// Loading fails with an error matching ErrConfiguration when a supported
// language is absent, when an unsupported language is present, when a value is
// not a string, or when languages do not share the same key set.
func NewDictionary(ctx context.Context, adapter TranslationAdapter) (*Dictionary, error) {
	if adapter == nil {
		return nil, fmt.Errorf("adapter is nil")
	}

	raw, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}

	tables := make(map[Language]Table, len(supported))
	for tag, entries := range raw {
		lang, err := ParseLanguage(tag)
		if err != nil {
			return nil, err
		}
		if string(lang) != tag {
			// Source files must use the canonical tag.
			return nil, fmt.Errorf("%w: language %q must be written as %q", ErrConfiguration, tag, lang)
		}

		values := make(map[string]string)
		if err := flatten(tag, "", entries, values); err != nil {
			return nil, err
		}
		tables[lang] = Table{lang: lang, values: values}
	}

	for _, lang := range supported {
		if _, ok := tables[lang]; !ok {
			return nil, fmt.Errorf("%w: no translations for language %q", ErrConfiguration, lang)
		}
	}

	keys, err := sharedKeys(tables)
	if err != nil {
		return nil, err
	}

	return &Dictionary{tables: tables, keys: keys}, nil
}

// Table returns the table of lang.
func (d *Dictionary) Table(lang Language) (Table, error) {
	t, ok := d.tables[lang]
	if !ok {
		return Table{}, &LanguageNotSupportedError{Lang: string(lang)}
	}
	return t, nil
}

// Lookup is shorthand for Table(lang) followed by Lookup(key).
func (d *Dictionary) Lookup(lang Language, key string) (string, error) {
	t, err := d.Table(lang)
	if err != nil {
		return "", err
	}
	return t.Lookup(key)
}

// Keys returns the sorted key set shared by all languages.
func (d *Dictionary) Keys() []string {
	return slices.Clone(d.keys)
}

// ExportJSON returns the flat table of lang as a JSON object,
// for client-side consumption next to the rendered page.
func (d *Dictionary) ExportJSON(lang Language) ([]byte, error) {
	t, err := d.Table(lang)
	if err != nil {
		return nil, err
	}

	b, err := json.Marshal(t.values)
	if err != nil {
		return nil, errors.Join(ErrFailedToMarshalJSON, err)
	}
	return b, nil
}

// flatten copies the nested entries of one language into out.
func flatten(lang, prefix string, entries map[string]any, out map[string]string) error {
	for k, v := range entries {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			out[key] = val
		case map[string]any:
			if err := flatten(lang, key, val, out); err != nil {
				return err
			}
		case map[any]any:
			nested := make(map[string]any, len(val))
			for nk, nv := range val {
				ks, ok := nk.(string)
				if !ok {
					return &InvalidValueError{Lang: lang, Key: key, Value: val}
				}
				nested[ks] = nv
			}
			if err := flatten(lang, key, nested, out); err != nil {
				return err
			}
		case fmt.Stringer:
			out[key] = val.String()
		default:
			return &InvalidValueError{Lang: lang, Key: key, Value: v}
		}
	}
	return nil
}

// sharedKeys checks that every table defines the union of all keys.
func sharedKeys(tables map[Language]Table) ([]string, error) {
	union := make(map[string]struct{})
	for _, t := range tables {
		for k := range t.values {
			union[k] = struct{}{}
		}
	}

	missing := make(map[Language][]string)
	for lang, t := range tables {
		for k := range union {
			if !t.Has(k) {
				missing[lang] = append(missing[lang], k)
			}
		}
		slices.Sort(missing[lang])
	}
	maps.DeleteFunc(missing, func(_ Language, keys []string) bool { return len(keys) == 0 })

	if len(missing) > 0 {
		return nil, &IncompleteDictionaryError{Missing: missing}
	}
	return slices.Sorted(maps.Keys(union)), nil
}
