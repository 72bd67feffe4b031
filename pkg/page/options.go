package page

import (
	"log/slog"

	"github.com/creemers/site/pkg/i18n"
)

// DefaultPhone is the number behind the call and chat links.
const DefaultPhone = "31624572572"

// Option configures a Page.
type Option func(*Page)

// WithLanguage sets the language the page starts in.
func WithLanguage(lang i18n.Language) Option {
	return func(p *Page) {
		if lang != "" {
			p.lang = lang
		}
	}
}

// WithPhone sets the contact number in international format without "+".
func WithPhone(phone string) Option {
	return func(p *Page) {
		if phone != "" {
			p.phone = phone
		}
	}
}

// WithLogger sets the logger shared by all components of the page.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Page) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithLanguageHref sets how language switch links are built.
func WithLanguageHref(fn func(i18n.Language) string) Option {
	return func(p *Page) {
		if fn != nil {
			p.href = fn
		}
	}
}

// WithYear fixes the copyright year. Zero means the current year.
func WithYear(year int) Option {
	return func(p *Page) {
		p.year = year
	}
}

// LanguageHref returns a link builder that serves root at the site root and
// every other language from its own directory.
func LanguageHref(root i18n.Language) func(i18n.Language) string {
	return func(lang i18n.Language) string {
		if lang == root {
			return "/"
		}
		return "/" + lang.String() + "/"
	}
}
