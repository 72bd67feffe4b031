package content

import (
	"slices"

	"github.com/creemers/site/pkg/cache"
	"github.com/creemers/site/pkg/i18n"
)

// TableSource provides the table of a language. *i18n.Dictionary implements it.
type TableSource interface {
	Table(lang i18n.Language) (i18n.Table, error)
}

// Projector memoizes projections per language. Because the dictionary is
// immutable, switching language is the only invalidation there is, and the
// language is the cache key.
type Projector struct {
	source       TableSource
	services     *cache.LRUCache[i18n.Language, []ServiceRecord]
	achievements *cache.LRUCache[i18n.Language, []Achievement]
}

// NewProjector creates a projector reading from source.
func NewProjector(source TableSource) *Projector {
	n := len(i18n.Languages())
	return &Projector{
		source:       source,
		services:     cache.NewLRUCache[i18n.Language, []ServiceRecord](n),
		achievements: cache.NewLRUCache[i18n.Language, []Achievement](n),
	}
}

// Services returns the service records of lang. The returned slice is a
// copy and may be modified by the caller.
func (p *Projector) Services(lang i18n.Language) ([]ServiceRecord, error) {
	records, err := p.services.GetOrLoad(lang, func() ([]ServiceRecord, error) {
		table, err := p.source.Table(lang)
		if err != nil {
			return nil, err
		}
		return ProjectServices(table)
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(records), nil
}

// Achievements returns the about-section highlights of lang as a copy.
func (p *Projector) Achievements(lang i18n.Language) ([]Achievement, error) {
	items, err := p.achievements.GetOrLoad(lang, func() ([]Achievement, error) {
		table, err := p.source.Table(lang)
		if err != nil {
			return nil, err
		}
		return ProjectAchievements(table)
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(items), nil
}
