package page

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/creemers/site/pkg/content"
	"github.com/creemers/site/pkg/disclosure"
	"github.com/creemers/site/pkg/environment"
	"github.com/creemers/site/pkg/i18n"
	"github.com/creemers/site/pkg/logger"
	"github.com/creemers/site/pkg/view"
	"github.com/creemers/site/pkg/visibility"
)

// ErrForeignContext is returned when a context built by another page is used.
var ErrForeignContext = errors.New("page: context belongs to another page")

// Page is one instance of the home page: a translation store, the services
// disclosure list and its visibility observer, wired together.
type Page struct {
	id        uuid.UUID
	store     *i18n.Store
	projector *content.Projector
	list      *disclosure.Controller
	observer  *visibility.Observer

	lang   i18n.Language
	phone  string
	href   func(i18n.Language) string
	year   int
	logger *slog.Logger
}

// New builds a page over dict. Whether invariant violations are returned or
// only logged follows the environment stored in ctx.
func New(ctx context.Context, dict *i18n.Dictionary, opts ...Option) (*Page, error) {
	p := &Page{
		id:     uuid.New(),
		lang:   i18n.DefaultLanguage,
		phone:  DefaultPhone,
		href:   LanguageHref(i18n.DefaultLanguage),
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With(logger.PageID(p.id.String()))
	strict := environment.Strict(ctx)

	store, err := i18n.NewStore(dict,
		i18n.WithDefaultLanguage(p.lang),
		i18n.WithLogger(p.logger.With(logger.Component("i18n"))),
	)
	if err != nil {
		return nil, fmt.Errorf("page: create store: %w", err)
	}
	p.store = store
	p.projector = content.NewProjector(dict)

	size := len(content.ServiceKeys())
	list, err := disclosure.NewController(size,
		disclosure.WithStrict(strict),
		disclosure.WithLogger(p.logger),
	)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("page: create disclosure list: %w", err)
	}
	p.list = list

	observer, err := visibility.New(list,
		visibility.WithStrict(strict),
		visibility.WithLogger(p.logger),
	)
	if err != nil {
		_ = list.Close()
		_ = store.Close()
		return nil, fmt.Errorf("page: create visibility observer: %w", err)
	}
	p.observer = observer

	return p, nil
}

// ID returns the page instance id.
func (p *Page) ID() uuid.UUID {
	return p.id
}

// Context returns parent extended with the page store and id. Render only
// works with such a context.
func (p *Page) Context(parent context.Context) context.Context {
	return WithID(i18n.WithStore(parent, p.store), p.id)
}

// Store returns the translation store of the page.
func (p *Page) Store() *i18n.Store {
	return p.store
}

// List returns the disclosure controller of the services accordion.
func (p *Page) List() *disclosure.Controller {
	return p.list
}

// Observer returns the visibility observer feeding the list.
func (p *Page) Observer() *visibility.Observer {
	return p.observer
}

// Start watches every service item and starts delivering visibility events.
// Cancelling ctx tears the observer down.
func (p *Page) Start(ctx context.Context) error {
	ids := make([]disclosure.ID, p.list.Size())
	for i := range ids {
		ids[i] = disclosure.ID(i)
	}
	if err := p.observer.Observe(ctx, ids...); err != nil {
		return err
	}
	return p.observer.Start(ctx)
}

// SelectLanguage switches the page language. The disclosure state is kept.
func (p *Page) SelectLanguage(ctx context.Context, lang i18n.Language) error {
	return p.store.SetLanguage(ctx, lang)
}

// Services returns the service records in the active language.
func (p *Page) Services(ctx context.Context) ([]content.ServiceRecord, error) {
	store, err := p.storeFrom(ctx)
	if err != nil {
		return nil, err
	}
	return p.projector.Services(store.Language())
}

// Data collects everything the page view needs. ctx must come from
// p.Context.
func (p *Page) Data(ctx context.Context) (view.PageData, error) {
	store, err := p.storeFrom(ctx)
	if err != nil {
		return view.PageData{}, err
	}
	// One load, so texts and records always share a language.
	table := store.Table()
	lang := table.Language()

	services, err := p.projector.Services(lang)
	if err != nil {
		return view.PageData{}, err
	}
	achievements, err := p.projector.Achievements(lang)
	if err != nil {
		return view.PageData{}, err
	}

	return view.PageData{
		Table:        table,
		Services:     services,
		Achievements: achievements,
		State:        p.list.State(),
		Phone:        p.phone,
		LanguageHref: p.href,
		Year:         p.year,
	}, nil
}

// storeFrom returns the page store once ctx is known to carry it.
func (p *Page) storeFrom(ctx context.Context) (*i18n.Store, error) {
	store, err := i18n.StoreFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if store != p.store {
		return nil, ErrForeignContext
	}
	return p.store, nil
}

// Render renders the full page in the active language. Nothing is returned
// if any text is missing.
func (p *Page) Render(ctx context.Context) ([]byte, error) {
	start := time.Now()

	data, err := p.Data(ctx)
	if err != nil {
		p.logger.ErrorContext(ctx, "Page data unavailable", logger.Error(err))
		return nil, err
	}
	out, err := view.Render(ctx, view.Page(data))
	if err != nil {
		p.logger.ErrorContext(ctx, "Page render failed", logger.Language(data.Table.Language()), logger.Error(err))
		return nil, err
	}

	p.logger.DebugContext(ctx, "Page rendered",
		logger.Language(data.Table.Language()),
		logger.Duration(time.Since(start)),
		slog.Int("bytes", len(out)),
	)
	return out, nil
}

// Close tears the page down. The observer stops first so no visibility
// event reaches the list afterwards.
func (p *Page) Close() error {
	return errors.Join(
		p.observer.Close(),
		p.list.Close(),
		p.store.Close(),
	)
}
