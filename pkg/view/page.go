package view

import (
	"context"
	"io"
	"strconv"
	"time"

	"github.com/a-h/templ"
	"golang.org/x/text/language/display"

	"github.com/creemers/site/pkg/content"
	"github.com/creemers/site/pkg/disclosure"
	"github.com/creemers/site/pkg/i18n"
)

// PageData is everything the home page renders.
type PageData struct {
	Table        i18n.Table
	Services     []content.ServiceRecord
	Achievements []content.Achievement
	State        disclosure.State
	Phone        string
	// LanguageHref maps a language to the link of its page.
	LanguageHref func(i18n.Language) string
	Year         int
}

// navKeys are the header links. Each key is also the anchor of its section.
var navKeys = [...]string{"about", "services", "contact", "faq"}

// Page renders the complete home page document.
func Page(d PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTML(w, d.Table)
		lang := d.Table.Language()

		h.raw(`<!DOCTYPE html><html`)
		h.attr("lang", lang.String())
		h.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		h.text(h.tr("heroTitle") + " | " + h.tr("heroTagline"))
		h.raw(`</title></head><body><main class="min-h-screen">`)

		h.component(ctx, Header(d.Table, d.LanguageHref))

		h.raw(`<section id="home" class="min-h-screen flex flex-col items-center justify-center text-center"><h1 class="text-6xl font-light tracking-widest">`)
		h.text(h.tr("heroTitle"))
		h.raw(`</h1><p class="text-sm tracking-[0.3em] mt-4">`)
		h.text(h.tr("heroSubtitle"))
		h.raw(`</p><p class="text-xs tracking-[0.4em] mt-2">`)
		h.text(h.tr("heroTagline"))
		h.raw(`</p></section>`)

		h.component(ctx, About(d.Table, d.Achievements))
		h.component(ctx, Services(ServicesData{Table: d.Table, Services: d.Services, State: d.State}))
		h.component(ctx, Contact(d.Table, d.Phone))
		h.component(ctx, FAQ(d.Table))
		h.component(ctx, Footer(d.Table, d.Year))
		h.component(ctx, ChatButton(d.Table, d.Phone))

		h.raw(`</main></body></html>`)
		return h.err
	})
}

// Header renders the navigation and the language switch. Languages are
// labelled in their own language.
func Header(table i18n.Table, href func(i18n.Language) string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTML(w, table)
		active := table.Language()

		h.raw(`<header class="fixed top-0 w-full z-40 bg-creemers-white/90"><nav class="container-custom flex items-center justify-between h-16"><a href="#home" class="text-xl font-light tracking-widest">`)
		h.text(h.tr("heroTitle"))
		h.raw(`</a><ul class="hidden md:flex space-x-8">`)
		for _, nav := range navKeys {
			h.raw(`<li><a`)
			h.attr("href", "#"+nav)
			h.raw(`>`)
			h.text(h.tr(nav))
			h.raw(`</a></li>`)
		}
		h.raw(`</ul><ul class="flex space-x-2">`)
		for _, l := range i18n.Languages() {
			h.raw(`<li><a`)
			if href != nil {
				h.attr("href", href(l))
			}
			h.attr("hreflang", l.String())
			h.attr("title", display.Self.Name(l.Tag()))
			h.classes("text-sm uppercase", templ.KV("font-medium underline", l == active))
			if l == active {
				h.raw(` aria-current="true"`)
			}
			h.raw(`>`)
			h.text(l.String())
			h.raw(`</a></li>`)
		}
		h.raw(`</ul></nav></header>`)

		return h.err
	})
}

// Footer renders the footer. A zero year means the current one.
func Footer(table i18n.Table, year int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTML(w, table)
		if year == 0 {
			year = time.Now().Year()
		}

		h.raw(`<footer class="bg-creemers-black text-creemers-gray-400 py-12"><div class="container-custom"><p class="mb-6">`)
		h.text(h.tr("footerDescription"))
		h.raw(`</p><p class="text-sm">&copy; `)
		h.text(strconv.Itoa(year) + " " + h.tr("heroTitle") + ". " + h.tr("copyright"))
		h.raw(`</p></div></footer>`)

		return h.err
	})
}
