package view

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/creemers/site/pkg/i18n"
)

// html writes markup and resolves translations, keeping the first error.
// After an error every call is a no-op, so a component can write
// straight-line markup and return h.err at the end.
type html struct {
	w     io.Writer
	table i18n.Table
	err   error
}

func newHTML(w io.Writer, table i18n.Table) *html {
	return &html{w: w, table: table}
}

func (h *html) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *html) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *html) attr(name, value string) {
	h.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

func (h *html) url(name string, u templ.SafeURL) {
	h.attr(name, string(u))
}

func (h *html) classes(classes ...any) {
	h.attr("class", templ.Classes(classes...).String())
}

func (h *html) tr(key string) string {
	if h.err != nil {
		return ""
	}
	v, err := h.table.Lookup(key)
	if err != nil {
		h.err = err
		return ""
	}
	return v
}

func (h *html) trf(key string, args ...string) string {
	if h.err != nil {
		return ""
	}
	v, err := h.table.Format(key, args...)
	if err != nil {
		h.err = err
		return ""
	}
	return v
}

func (h *html) component(ctx context.Context, c templ.Component) {
	if h.err != nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}
