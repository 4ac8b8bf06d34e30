package browser

import (
	"context"
	"log/slog"

	"github.com/listhound/listhound/config"
	"github.com/listhound/listhound/models"
)

// Manager hands out browser sessions under an admission limit. Every
// scrape owns a full browser process, so unbounded concurrency would
// exhaust the host; Acquire blocks until a slot frees up.
// It is safe for concurrent use.
type Manager struct {
	browserCfg config.BrowserConfig
	scraperCfg config.ScraperConfig
	slots      chan struct{}
}

// NewManager creates a Manager with cfg.MaxSessions admission slots.
func NewManager(browserCfg config.BrowserConfig, scraperCfg config.ScraperConfig) *Manager {
	max := browserCfg.MaxSessions
	if max < 1 {
		max = 1
	}
	return &Manager{
		browserCfg: browserCfg,
		scraperCfg: scraperCfg,
		slots:      make(chan struct{}, max),
	}
}

// Acquire launches a dedicated browser process with one page and returns
// the session. It blocks while all slots are taken. The caller must call
// Release exactly once on every exit path, or the process leaks.
func (m *Manager) Acquire(ctx context.Context) (*Session, error) {
	select {
	case m.slots <- struct{}{}:
	case <-ctx.Done():
		return nil, models.NewScrapeError(models.ErrCodeLaunch,
			"context done while waiting for a session slot", ctx.Err())
	}

	s, err := launchSession(m.browserCfg, m.scraperCfg)
	if err != nil {
		<-m.slots
		return nil, err
	}
	return s, nil
}

// Release terminates the session's browser process and frees its slot.
func (m *Manager) Release(s *Session) {
	if s == nil {
		return
	}
	s.close()
	<-m.slots
}

// Stats returns a snapshot of slot usage.
func (m *Manager) Stats() models.SessionStats {
	return models.SessionStats{
		MaxSessions:    cap(m.slots),
		ActiveSessions: len(m.slots),
	}
}

// Shutdown waits for no active sessions. Sessions are per-request and
// closed by their owners; there is nothing pooled to drain.
func (m *Manager) Shutdown() {
	slog.Info("session manager shutting down", "active", len(m.slots))
}
