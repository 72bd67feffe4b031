package view

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/creemers/site/pkg/i18n"
)

// FAQ renders the questions section introduction.
func FAQ(table i18n.Table) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTML(w, table)

		h.raw(`<section id="faq" class="section-padding bg-creemers-gray-50"><div class="container-custom text-center"><h2 class="text-3xl sm:text-4xl font-light mb-4">`)
		h.text(h.tr("faqTitle"))
		h.raw(`</h2><p class="text-lg text-creemers-gray-600 max-w-2xl mx-auto">`)
		h.text(h.tr("faqSubtitle"))
		h.raw(`</p></div></section>`)
		return h.err
	})
}
