package browser

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Scroll walks the page to the bottom in fixed increments so lazy-loaded
// content materializes. Each tick advances the scroll position by
// scrollStep pixels and re-reads the page's content height, so height
// growth during scrolling correctly extends the loop. The loop is
// bounded: it stops once the accumulated distance reaches the current
// height, the tick cap is hit, or ctx is done. Hitting the cap is a
// partial-load outcome, not an error.
func (s *Session) Scroll(ctx context.Context) error {
	p := s.page.Context(ctx)

	distance := 0
	for tick := 0; tick < s.maxTicks; tick++ {
		res, err := p.Eval(fmt.Sprintf(`() => {
			window.scrollBy(0, %d);
			return document.body.scrollHeight;
		}`, s.scrollStep))
		if err != nil {
			return categorizeError(err, "scroll step failed")
		}
		distance += s.scrollStep

		if height := res.Value.Int(); distance >= height {
			return nil
		}

		select {
		case <-time.After(s.scrollTick):
		case <-ctx.Done():
			return categorizeError(ctx.Err(), "scroll interrupted")
		}
	}

	slog.Debug("scroll tick cap reached, proceeding with partially loaded page",
		"maxTicks", s.maxTicks,
	)
	return nil
}
