package i18n_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/creemers/site/pkg/i18n"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want i18n.Language
	}{
		{name: "dutch", in: "nl", want: i18n.Dutch},
		{name: "upper case", in: "EN", want: i18n.English},
		{name: "region subtag", in: "nl-BE", want: i18n.Dutch},
		{name: "underscore separator", in: "de_CH", want: i18n.German},
		{name: "surrounding spaces", in: "  de ", want: i18n.German},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := i18n.ParseLanguage(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLanguage_Unsupported(t *testing.T) {
	for _, in := range []string{"", "fr", "xx-invalid-tag-!!", "english"} {
		t.Run(in, func(t *testing.T) {
			_, err := i18n.ParseLanguage(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, i18n.ErrConfiguration)

			var notSupported *i18n.LanguageNotSupportedError
			assert.True(t, errors.As(err, &notSupported))
		})
	}
}

func TestLanguage(t *testing.T) {
	assert.Equal(t, []i18n.Language{i18n.Dutch, i18n.English, i18n.German}, i18n.Languages())
	assert.Equal(t, i18n.Dutch, i18n.DefaultLanguage)

	assert.True(t, i18n.German.Valid())
	assert.False(t, i18n.Language("fr").Valid())

	assert.Equal(t, language.Dutch, i18n.Dutch.Tag())
	assert.Equal(t, language.Und, i18n.Language("fr").Tag())
	assert.Equal(t, "en", i18n.English.String())

	langs := i18n.Languages()
	langs[0] = "xx"
	assert.Equal(t, i18n.Dutch, i18n.Languages()[0], "Languages returns a copy")
}
