package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/creemers/site/pkg/i18n"
)

func testData() map[string]map[string]any {
	return map[string]map[string]any{
		"nl": {
			"servicesTitle": "Mijn Diensten",
			"greeting":      "Hallo, %{name}!",
			"faq": map[string]any{
				"title": "Antwoorden Op Uw Vragen",
			},
		},
		"en": {
			"servicesTitle": "My Services",
			"greeting":      "Hello, %{name}!",
			"faq": map[string]any{
				"title": "Answers to Your Questions",
			},
		},
		"de": {
			"servicesTitle": "Meine Dienstleistungen",
			"greeting":      "Hallo, %{name}!",
			"faq": map[string]any{
				"title": "Antworten auf Ihre Fragen",
			},
		},
	}
}

func newTestDictionary(t *testing.T) *i18n.Dictionary {
	t.Helper()

	dict, err := i18n.NewDictionary(context.Background(), &i18n.MapAdapter{Data: testData()})
	require.NoError(t, err)
	return dict
}

func newTestStore(t *testing.T, opts ...i18n.Option) *i18n.Store {
	t.Helper()

	store, err := i18n.NewStore(newTestDictionary(t), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}
