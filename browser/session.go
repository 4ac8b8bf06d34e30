package browser

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/launcher/flags"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
	"github.com/listhound/listhound/config"
	"github.com/listhound/listhound/models"
	"github.com/ysmood/gson"
)

// Session is one live browser process plus one page, exclusively owned
// by a single scrape operation from Acquire to Release.
type Session struct {
	browser    *rod.Browser
	page       *rod.Page
	router     *rod.HijackRouter
	navTimeout time.Duration
	scrollStep int
	scrollTick time.Duration
	maxTicks   int
}

// launchSession starts a browser process, connects, and prepares one page:
// stealth JS and the resource-blocking router are installed before any
// navigation, then the user-agent override is applied.
func launchSession(browserCfg config.BrowserConfig, scraperCfg config.ScraperConfig) (*Session, error) {
	l := launcher.New().
		Headless(browserCfg.Headless).
		NoSandbox(browserCfg.NoSandbox)

	if browserCfg.BrowserBin != "" {
		l = l.Bin(browserCfg.BrowserBin)
	}

	// ── Stealth flags ────────────────────────────────────────────────
	l.Set(flags.Flag("disable-blink-features"), "AutomationControlled")
	l.Delete(flags.Flag("enable-automation"))
	l.Set(flags.Flag("disable-features"), "AudioServiceOutOfProcess,TranslateUI")
	l.Set(flags.Flag("disable-popup-blocking"))
	l.Set(flags.Flag("disable-renderer-backgrounding"))
	l.Set(flags.Flag("disable-background-timer-throttling"))
	l.Set(flags.Flag("disable-backgrounding-occluded-windows"))
	l.Set(flags.Flag("disable-component-update"))
	l.Set(flags.Flag("disable-default-apps"))
	l.Set(flags.Flag("disable-dev-shm-usage"))
	l.Set(flags.Flag("disable-extensions"))
	l.Set(flags.Flag("no-first-run"))

	controlURL, err := l.Launch()
	if err != nil {
		return nil, models.NewScrapeError(
			models.ErrCodeLaunch,
			"failed to launch browser",
			err,
		)
	}

	b := rod.New().ControlURL(controlURL)
	if err := b.Connect(); err != nil {
		l.Kill()
		return nil, models.NewScrapeError(
			models.ErrCodeLaunch,
			"failed to connect to browser",
			err,
		)
	}

	page, err := b.Page(proto.TargetCreateTarget{})
	if err != nil {
		_ = b.Close()
		l.Kill()
		return nil, models.NewScrapeError(
			models.ErrCodeLaunch,
			"failed to create page",
			err,
		)
	}

	// Stealth JS must be installed before the first navigation to take effect.
	if _, evalErr := page.EvalOnNewDocument(stealth.JS); evalErr != nil {
		slog.Warn("stealth injection failed, proceeding without stealth",
			"error", evalErr,
		)
	}

	// A realistic desktop user-agent reduces trivial bot fingerprinting.
	if browserCfg.UserAgent != "" {
		if uaErr := (proto.NetworkSetUserAgentOverride{
			UserAgent: browserCfg.UserAgent,
		}).Call(page); uaErr != nil {
			slog.Warn("user-agent override failed", "error", uaErr)
		}
	}

	router := setupHijack(page, browserCfg.BlockedResourceTypes)

	slog.Debug("session launched", "controlURL", controlURL)

	return &Session{
		browser:    b,
		page:       page,
		router:     router,
		navTimeout: scraperCfg.NavigationTimeout,
		scrollStep: scraperCfg.ScrollStep,
		scrollTick: scraperCfg.ScrollInterval,
		maxTicks:   scraperCfg.MaxScrollTicks,
	}, nil
}

// Page exposes the underlying rod page for components that need richer
// interaction than Navigate/HTML (the search resolver types and presses keys).
func (s *Session) Page() *rod.Page {
	return s.page
}

// Navigate drives the page to url and waits for the DOM to settle, under
// the session's navigation timeout. A Google-search Referer for the
// target host is attached, matching how a human would arrive.
func (s *Session) Navigate(ctx context.Context, target string) error {
	ctx, cancel := context.WithTimeout(ctx, s.navTimeout)
	defer cancel()
	p := s.page.Context(ctx)

	if u, parseErr := url.Parse(target); parseErr == nil && u.Hostname() != "" {
		_ = proto.NetworkSetExtraHTTPHeaders{
			Headers: toHeadersMap(map[string]string{
				"Referer": "https://www.google.com/search?q=" + url.QueryEscape(u.Hostname()),
			}),
		}.Call(p)
	}

	if err := p.Navigate(target); err != nil {
		return categorizeError(err, "navigation failed")
	}
	if stableErr := p.WaitDOMStable(300*time.Millisecond, 0.1); stableErr != nil {
		// A busy page that never converges is still usable; a dead
		// context means the navigation budget is gone and the page is not.
		if stabilityFatal(stableErr) {
			return categorizeError(stableErr, "page did not settle within navigation timeout")
		}
		slog.Debug("WaitDOMStable did not converge, proceeding with current DOM",
			"error", stableErr,
		)
	}
	return nil
}

// stabilityFatal reports whether a DOM-stability failure is a context
// expiry rather than mere non-convergence.
func stabilityFatal(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// HTML returns the current rendered markup.
func (s *Session) HTML() (string, error) {
	html, err := s.page.HTML()
	if err != nil {
		return "", categorizeError(err, "failed to extract page HTML")
	}
	return html, nil
}

// CurrentURL returns the page's current location, best-effort.
func (s *Session) CurrentURL() string {
	res, err := s.page.Eval(`() => window.location.href`)
	if err != nil {
		return ""
	}
	return res.Value.Str()
}

// close stops the hijack router and kills the browser process. Called by
// Manager.Release; never call the browser again afterwards.
func (s *Session) close() {
	if s.router != nil {
		_ = s.router.Stop()
	}
	if err := s.browser.Close(); err != nil {
		slog.Warn("browser close failed", "error", err)
	}
}

// toHeadersMap converts a plain string map to the proto.NetworkHeaders type
// (map[string]gson.JSON) required by NetworkSetExtraHTTPHeaders.
func toHeadersMap(headers map[string]string) proto.NetworkHeaders {
	m := make(proto.NetworkHeaders, len(headers))
	for k, v := range headers {
		m[k] = gson.New(v)
	}
	return m
}

// categorizeError wraps raw errors into typed ScrapeErrors so the API layer
// can map them to appropriate HTTP status codes.
func categorizeError(err error, msg string) *models.ScrapeError {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return models.NewScrapeError(models.ErrCodeTimeout, msg, err)
	case errors.Is(err, context.Canceled):
		return models.NewScrapeError(models.ErrCodeTimeout, "operation canceled", err)
	default:
		return models.NewScrapeError(models.ErrCodeNavigation, msg, err)
	}
}
