// Package page is the composition root of the home page.
//
// A Page owns one translation store, one disclosure controller for the
// services accordion and the visibility observer that marks its items as
// seen. Components receive what they need explicitly; the store reaches
// rendering code only through the context returned by Page.Context, and
// rendering without it fails with i18n.ErrNoStore.
//
//	p, err := page.New(ctx, dict, page.WithLogger(log))
//	if err != nil {
//	    return err
//	}
//	defer p.Close()
//
//	ctx = p.Context(ctx)
//	html, err := p.Render(ctx)
package page
