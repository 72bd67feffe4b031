package view

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/creemers/site/pkg/content"
	"github.com/creemers/site/pkg/i18n"
)

// storyKeys are the paragraphs of the about story, in order.
var storyKeys = [...]string{"aboutStory1", "aboutStory2", "aboutStory3", "aboutNetwork", "aboutCollaboration"}

// About renders the about section. Story paragraphs support **emphasis**.
func About(table i18n.Table, achievements []content.Achievement) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTML(w, table)

		h.raw(`<section id="about" class="section-padding bg-creemers-gray-50"><div class="container-custom">`)
		h.raw(`<div class="text-center mb-16"><h2 class="text-3xl sm:text-4xl font-light text-creemers-black mb-4">`)
		h.text(h.tr("aboutTitle"))
		h.raw(`</h2><p class="text-lg text-creemers-gray-600 max-w-2xl mx-auto">`)
		h.text(h.tr("aboutSubtitle"))
		h.raw(`</p></div>`)

		h.raw(`<div class="grid lg:grid-cols-2 gap-12"><div><h3 class="text-2xl font-light text-creemers-black mb-6">`)
		h.text(h.tr("aboutStoryTitle"))
		h.raw(`</h3>`)
		for _, key := range storyKeys {
			h.raw(`<p class="text-creemers-gray-600 leading-relaxed mb-4">`)
			h.raw(Emphasize(h.tr(key)))
			h.raw(`</p>`)
		}
		h.raw(`</div>`)

		h.raw(`<div><h4 class="text-xl font-medium text-creemers-black mb-4">`)
		h.text(h.tr("whatDistinguishesUs"))
		h.raw(`</h4><ul class="grid sm:grid-cols-2 gap-6">`)
		for _, a := range achievements {
			h.raw(`<li class="text-center p-6 bg-creemers-white"`)
			h.attr("data-achievement", a.Key)
			h.raw(`><h5 class="text-lg font-medium text-creemers-black mb-2">`)
			h.text(a.Title)
			h.raw(`</h5><p class="text-sm text-creemers-gray-600">`)
			h.text(a.Description)
			h.raw(`</p></li>`)
		}
		h.raw(`</ul></div></div></div></section>`)

		return h.err
	})
}
