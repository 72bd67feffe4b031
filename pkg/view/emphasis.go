package view

import (
	"regexp"

	"github.com/a-h/templ"
)

var emphasisRegex = regexp.MustCompile(`\*\*(.*?)\*\*`)

const emphasisOpen = `<span class="font-medium text-creemers-gray-800">`

// Emphasize escapes s and turns **bold** runs into highlighted spans.
func Emphasize(s string) string {
	return emphasisRegex.ReplaceAllString(templ.EscapeString(s), emphasisOpen+"$1</span>")
}
