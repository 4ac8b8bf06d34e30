// Package scrape composes the browser session, search resolution,
// pagination, and extraction into one request-scoped operation.
package scrape

import (
	"context"
	"log/slog"
	"time"

	"github.com/listhound/listhound/models"
)

// Session is the slice of browser session behavior the pipeline needs.
// *browser.Session satisfies it.
type Session interface {
	Navigate(ctx context.Context, url string) error
	Scroll(ctx context.Context) error
	HTML() (string, error)
}

// SessionManager hands out exclusively-owned sessions. Release must be
// called exactly once per successful Acquire. *browser.Manager satisfies it.
type SessionManager[S Session] interface {
	Acquire(ctx context.Context) (S, error)
	Release(s S)
}

// Resolver turns a query into a target page URL, "" when nothing matched.
type Resolver[S Session] interface {
	ResolveTargetURL(ctx context.Context, s S, query string) (string, error)
}

// Extractor parses rendered markup into listings.
type Extractor interface {
	ExtractPage(html, baseURL string) []models.Listing
}

// Service is the scrape orchestrator. One call to Scrape is one
// sequential chain of browser steps on one exclusively-owned session.
type Service[S Session] struct {
	sessions  SessionManager[S]
	resolver  Resolver[S]
	extractor Extractor
	maxPages  int
}

// NewService creates a Service. maxPages bounds pagination per operation.
func NewService[S Session](sessions SessionManager[S], resolver Resolver[S], extractor Extractor, maxPages int) *Service[S] {
	if maxPages < 1 {
		maxPages = 1
	}
	return &Service[S]{
		sessions:  sessions,
		resolver:  resolver,
		extractor: extractor,
		maxPages:  maxPages,
	}
}

// Scrape resolves the target page for query+city, paginates through it,
// and returns the aggregated listings. The session is released on every
// exit path before any error surfaces; there is no silent recovery and
// no retry anywhere in the pipeline.
func (svc *Service[S]) Scrape(ctx context.Context, query, city string) (*models.ScrapeResponse, error) {
	start := time.Now()

	session, err := svc.sessions.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer svc.sessions.Release(session)

	searchTerm := query + " " + city
	targetURL, err := svc.resolver.ResolveTargetURL(ctx, session, searchTerm)
	if err != nil {
		return nil, err
	}
	if targetURL == "" {
		return nil, models.NewScrapeError(
			models.ErrCodeTargetNotFound,
			"no search result matched the target site",
			nil,
		)
	}

	if err := session.Navigate(ctx, targetURL); err != nil {
		return nil, err
	}

	listings, err := svc.collectPages(ctx, session, targetURL)
	if err != nil {
		return nil, err
	}
	if listings == nil {
		listings = []models.Listing{}
	}

	slog.Info("scrape completed",
		"query", query,
		"city", city,
		"target", targetURL,
		"listings", len(listings),
		"duration", time.Since(start).Round(time.Millisecond),
	)

	return &models.ScrapeResponse{
		SearchQuery: query,
		City:        city,
		Listings:    listings,
	}, nil
}
