// Package search resolves the target listing site indirectly: it drives
// a real search engine session and takes the first organic result that
// names the target brand. The engine's ranking and markup are outside
// our control, so resolution is best-effort first match by contract.
package search

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/proto"
	"github.com/listhound/listhound/browser"
	"github.com/listhound/listhound/config"
	"github.com/listhound/listhound/models"
)

// Resolver turns a free-text query into a concrete target page URL via a
// third-party search engine.
type Resolver struct {
	cfg     config.SearchConfig
	scraper config.ScraperConfig
}

// NewResolver creates a Resolver.
func NewResolver(cfg config.SearchConfig, scraper config.ScraperConfig) *Resolver {
	return &Resolver{cfg: cfg, scraper: scraper}
}

// ResolveTargetURL submits query to the search engine on the session's
// page and returns the href of the first result heading anchor whose
// visible text contains the target brand. It returns "" with a nil
// error when no result matches; the caller decides what absence means.
//
// The query is typed one character at a time with a fixed delay to
// better emulate human input.
func (r *Resolver) ResolveTargetURL(ctx context.Context, s *browser.Session, query string) (string, error) {
	if err := s.Navigate(ctx, r.cfg.EngineURL); err != nil {
		return "", err
	}

	// Fixed settle delay: engine home pages re-render the search box
	// client-side and typing into the pre-hydration input gets lost.
	select {
	case <-time.After(r.scraper.SettleDelay):
	case <-ctx.Done():
		return "", models.NewScrapeError(models.ErrCodeTimeout, "settle delay interrupted", ctx.Err())
	}

	p := s.Page().Context(ctx)

	el, err := p.Timeout(r.scraper.InputWait).Element(r.cfg.InputSelector)
	if err != nil {
		return "", models.NewScrapeError(
			models.ErrCodeInputNotFound,
			"search input did not appear within wait budget",
			err,
		)
	}
	if err := el.Focus(); err != nil {
		return "", models.NewScrapeError(
			models.ErrCodeInputNotFound,
			"search input could not be focused",
			err,
		)
	}

	for _, ch := range query {
		if err := p.InsertText(string(ch)); err != nil {
			return "", models.NewScrapeError(models.ErrCodeNavigation, "typing query failed", err)
		}
		select {
		case <-time.After(r.scraper.TypeDelay):
		case <-ctx.Done():
			return "", models.NewScrapeError(models.ErrCodeTimeout, "typing interrupted", ctx.Err())
		}
	}

	// Register the navigation waiter before pressing Enter, or the
	// lifecycle event can fire before we start listening. The wait is
	// bounded by the navigation timeout: the request context has no
	// deadline of its own, and a submit the engine swallows must not
	// hold a session slot forever.
	navCtx, cancel := context.WithTimeout(ctx, r.scraper.NavigationTimeout)
	defer cancel()
	np := s.Page().Context(navCtx)

	wait := np.WaitNavigation(proto.PageLifecycleEventNameDOMContentLoaded)
	if err := np.Keyboard.Press(input.Enter); err != nil {
		return "", models.NewScrapeError(models.ErrCodeNavigation, "search submit failed", err)
	}
	if err := awaitResults(navCtx, wait); err != nil {
		return "", err
	}

	html, err := s.HTML()
	if err != nil {
		return "", err
	}

	target := FirstBrandResult(html, r.cfg.ResultSelector, r.cfg.TargetBrand, s.CurrentURL())
	if target == "" {
		slog.Info("no search result matched target brand",
			"brand", r.cfg.TargetBrand, "query", query)
	}
	return target, nil
}

// awaitResults blocks on a registered navigation waiter and tells a
// real arrival apart from the waiter giving up because ctx expired.
func awaitResults(ctx context.Context, wait func()) error {
	wait()
	if err := ctx.Err(); err != nil {
		return models.NewScrapeError(models.ErrCodeTimeout, "search results did not load in time", err)
	}
	return nil
}
