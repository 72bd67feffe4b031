package view

import (
	"context"
	"io"
	"net/url"
	"strings"

	"github.com/a-h/templ"

	"github.com/creemers/site/pkg/i18n"
)

// ChatURL returns the WhatsApp link opening a chat with phone, prefilled
// with message. Spaces are encoded as %20.
func ChatURL(phone, message string) templ.SafeURL {
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return templ.URL("https://wa.me/" + phone + "?text=" + text)
}

// CallURL returns the tel: link of phone, given in international format
// without the leading plus.
func CallURL(phone string) templ.SafeURL {
	return templ.SafeURL("tel:+" + phone)
}

// Contact renders the direct call and WhatsApp options.
func Contact(table i18n.Table, phone string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTML(w, table)

		h.raw(`<section id="contact" class="section-padding bg-creemers-black text-creemers-white"><div class="container-custom">`)
		h.raw(`<div class="text-center mb-16"><h2 class="text-3xl sm:text-4xl font-light mb-4">`)
		h.text(h.tr("contactTitle"))
		h.raw(`</h2><p class="text-lg text-creemers-gray-300 max-w-2xl mx-auto">`)
		h.text(h.tr("contactSubtitle"))
		h.raw(`</p></div><div class="grid md:grid-cols-2 gap-8">`)

		option(h, "directCall", "directCallDesc", "directCallAction", CallURL(phone))
		option(h, "whatsapp", "whatsappDesc", "whatsappAction", ChatURL(phone, h.tr("chatMessage")))

		h.raw(`</div></div></section>`)
		return h.err
	})
}

func option(h *html, titleKey, descKey, actionKey string, href templ.SafeURL) {
	h.raw(`<div class="p-8 border border-creemers-gray-700"><h3 class="text-xl font-medium mb-2">`)
	h.text(h.tr(titleKey))
	h.raw(`</h3><p class="text-creemers-gray-400 mb-6">`)
	h.text(h.tr(descKey))
	h.raw(`</p><a class="inline-block px-6 py-3 bg-creemers-white text-creemers-black"`)
	h.url("href", href)
	h.raw(`>`)
	h.text(h.tr(actionKey))
	h.raw(`</a></div>`)
}

// ChatButton renders the floating WhatsApp button.
func ChatButton(table i18n.Table, phone string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTML(w, table)

		h.raw(`<a class="fixed bottom-6 right-6 z-50 bg-green-500 text-white p-4 rounded-full shadow-lg group" target="_blank" rel="noopener" aria-label="Start WhatsApp chat"`)
		h.url("href", ChatURL(phone, h.tr("chatMessage")))
		h.raw(`><span class="hidden sm:block absolute bottom-full right-0 mb-2 px-3 py-2 bg-creemers-black text-creemers-white text-sm rounded-lg whitespace-nowrap">`)
		h.text(h.tr("chatTooltip"))
		h.raw(`</span></a>`)

		return h.err
	})
}
