// Package locales embeds the page dictionaries, one YAML file per language.
package locales

import (
	"embed"

	"github.com/creemers/site/pkg/i18n"
)

//go:embed *.yaml
var FS embed.FS

// Adapter returns a translation adapter over the embedded files.
func Adapter() i18n.TranslationAdapter {
	return i18n.NewFSAdapter(i18n.NewYAMLParser(), FS, ".")
}
