package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/listhound/listhound/models"
)

// collectPages walks up to maxPages result pages starting from the page
// the session is already on. Per page it scrolls to force lazy content,
// extracts listings, and appends them in page order. A page yielding
// zero records is treated as end-of-results and halts pagination. A
// failed navigation mid-pagination is fatal for the whole operation; no
// partial result is kept.
func (svc *Service[S]) collectPages(ctx context.Context, session S, baseURL string) ([]models.Listing, error) {
	base := normalizeBase(baseURL)

	var all []models.Listing
	for cursor := 1; cursor <= svc.maxPages; cursor++ {
		if err := session.Scroll(ctx); err != nil {
			return nil, err
		}

		html, err := session.HTML()
		if err != nil {
			return nil, err
		}

		pageListings := svc.extractor.ExtractPage(html, base)
		if len(pageListings) == 0 {
			slog.Debug("page yielded no listings, stopping pagination", "page", cursor)
			break
		}
		all = append(all, pageListings...)

		if cursor == svc.maxPages {
			break
		}

		next := nextPageURL(base, cursor+1)
		if err := session.Navigate(ctx, next); err != nil {
			return nil, err
		}
	}
	return all, nil
}

// normalizeBase ensures exactly one trailing path separator so suffixes
// append cleanly.
func normalizeBase(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + "/"
}

// nextPageURL computes the address of result page n from the normalized base.
func nextPageURL(base string, n int) string {
	return fmt.Sprintf("%s%d_p/", base, n)
}
