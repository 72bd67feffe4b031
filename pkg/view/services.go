package view

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/creemers/site/pkg/content"
	"github.com/creemers/site/pkg/disclosure"
	"github.com/creemers/site/pkg/i18n"
)

// ServicesData is the input of the services section.
type ServicesData struct {
	Table    i18n.Table
	Services []content.ServiceRecord
	State    disclosure.State
}

// Services renders the services accordion with its call to action.
func Services(d ServicesData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTML(w, d.Table)

		h.raw(`<section id="services" class="section-padding bg-creemers-white"><div class="container-custom">`)
		h.raw(`<div class="text-center mb-16"><h2 class="text-3xl sm:text-4xl font-light text-creemers-black mb-4">`)
		h.text(h.tr("servicesTitle"))
		h.raw(`</h2><p class="text-base sm:text-lg text-creemers-gray-600 max-w-2xl mx-auto px-4">`)
		h.text(h.tr("servicesSubtitle"))
		h.raw(`</p></div>`)

		h.raw(`<div class="max-w-4xl mx-auto space-y-3 sm:space-y-4 mb-12 px-4">`)
		for _, s := range d.Services {
			serviceItem(h, s, d.State)
		}
		h.raw(`</div>`)

		summary := content.Summarize(d.Services)
		h.raw(`<div class="text-center relative"><h3 class="text-xl font-light text-creemers-black mb-3">`)
		h.text(h.tr("servicesCtaTitle"))
		h.raw(`<span class="block text-sm font-normal text-creemers-gray-600 mt-2">`)
		h.text(h.trf("servicesCtaCount", "count", strconv.Itoa(summary.Total)))
		h.raw(`</span></h3><a href="#contact" class="inline-flex items-center px-6 py-3 bg-creemers-black text-creemers-white font-light tracking-wide"`)
		h.attr("title", h.trf("servicesCtaHint",
			"culinary", strconv.Itoa(summary.Culinary),
			"service", strconv.Itoa(summary.Service),
		))
		h.raw(`>`)
		h.text(h.tr("servicesCtaButton"))
		h.raw(`</a></div></div></section>`)

		return h.err
	})
}

func serviceItem(h *html, s content.ServiceRecord, st disclosure.State) {
	id := disclosure.ID(s.ID)
	expanded := st.IsExpanded(id)
	hovered := st.IsHovered(id)
	panel := fmt.Sprintf("service-panel-%d", s.ID)

	h.raw(`<div`)
	h.attr("data-index", strconv.Itoa(s.ID))
	h.attr("data-complexity", string(s.Complexity))
	h.attr("data-category", string(s.Category))
	h.classes(
		"border transition-all duration-300 relative overflow-hidden",
		templ.KV("border-creemers-black shadow-lg", hovered),
		templ.KV("border-creemers-gray-200", !hovered),
	)
	h.raw(`>`)

	h.raw(`<div`)
	h.classes(
		"absolute top-4 right-4 w-2 h-2 rounded-full",
		templ.KV("bg-creemers-black", s.Complexity == content.ComplexityHigh),
		templ.KV("bg-creemers-gray-400", s.Complexity != content.ComplexityHigh),
	)
	h.raw(`></div>`)

	h.raw(`<button type="button" class="w-full p-6 flex items-center justify-between"`)
	h.attr("aria-expanded", strconv.FormatBool(expanded))
	h.attr("aria-controls", panel)
	h.raw(`><div class="text-left"><h3 class="text-xl font-medium text-creemers-black mb-1 flex items-center gap-2">`)
	h.text(s.Title)
	h.raw(`<span`)
	h.classes(
		"text-xs px-2 py-1 rounded-full",
		templ.KV("bg-creemers-black text-creemers-white", s.Category == content.CategoryCulinary),
		templ.KV("bg-creemers-gray-200 text-creemers-gray-700", s.Category != content.CategoryCulinary),
	)
	h.raw(`>`)
	h.text(string(s.Category))
	h.raw(`</span></h3><p class="text-creemers-gray-600 text-sm">`)
	h.text(s.ShortDescription)
	h.raw(`</p></div></button>`)

	h.raw(`<div`)
	h.attr("id", panel)
	h.attr("role", "region")
	if !expanded {
		h.raw(` hidden`)
	}
	h.raw(` class="px-6 pb-6 border-t border-creemers-gray-100 relative">`)
	if st.HasVisited(id) {
		h.raw(`<div class="absolute top-2 right-2 w-1 h-1 bg-green-500 rounded-full animate-pulse" data-visible="true"></div>`)
	}
	h.raw(`<div class="pt-6"><p class="text-creemers-gray-700 leading-relaxed">`)
	h.text(s.LongDescription)
	h.raw(`</p></div></div></div>`)
}
