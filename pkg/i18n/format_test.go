package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/creemers/site/pkg/i18n"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		tmpl string
		args []string
		want string
	}{
		{name: "single placeholder", tmpl: "%{count} items", args: []string{"count", "4"}, want: "4 items"},
		{name: "two placeholders", tmpl: "%{a} & %{b}", args: []string{"a", "1", "b", "2"}, want: "1 & 2"},
		{name: "unknown placeholder kept", tmpl: "%{a} %{b}", args: []string{"a", "1"}, want: "1 %{b}"},
		{name: "odd argument ignored", tmpl: "%{a}", args: []string{"a", "1", "b"}, want: "1"},
		{name: "no arguments", tmpl: "plain %{a}", want: "plain %{a}"},
		{name: "emphasis untouched", tmpl: "**%{name}**", args: []string{"name", "Tom"}, want: "**Tom**"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, i18n.Format(tt.tmpl, tt.args...))
		})
	}
}
