package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Browser   BrowserConfig
	Scraper   ScraperConfig
	Search    SearchConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
	Cache     CacheConfig
	Log       LogConfig
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Host string // default: "0.0.0.0"
	Port int    // default: 3000
	Mode string // "debug", "release", "test"; default: "release"
}

// BrowserConfig controls the per-session browser processes.
type BrowserConfig struct {
	// Headless controls whether browsers run headless.
	Headless bool // default: true

	// NoSandbox disables Chrome's sandbox (needed in Docker).
	NoSandbox bool // default: true

	// BrowserBin overrides the Chromium binary path.
	BrowserBin string

	// UserAgent is the desktop user-agent applied to every page.
	UserAgent string

	// MaxSessions caps concurrent browser sessions. Each scrape owns one
	// full browser process, so this is the admission limit.
	MaxSessions int // default: 4

	// BlockedResourceTypes lists resource types to block during navigation.
	// default: ["Image", "Font", "Media"]
	BlockedResourceTypes []string
}

// ScraperConfig controls the scrape pipeline timing and bounds.
type ScraperConfig struct {
	// NavigationTimeout is the deadline for any single page navigation.
	NavigationTimeout time.Duration // default: 60s

	// SettleDelay is the fixed wait after the search engine home loads,
	// to tolerate client-side rendering races.
	SettleDelay time.Duration // default: 3s

	// InputWait is the maximum wait for the search input to appear.
	InputWait time.Duration // default: 15s

	// TypeDelay is the per-character delay while typing the query.
	TypeDelay time.Duration // default: 100ms

	// MaxPages bounds how many result pages one scrape may visit.
	MaxPages int // default: 4

	// ScrollStep is the per-tick scroll distance in pixels.
	ScrollStep int // default: 100

	// ScrollInterval is the delay between scroll ticks.
	ScrollInterval time.Duration // default: 300ms

	// MaxScrollTicks caps the scroll convergence loop so a page whose
	// content height grows without bound cannot hang a session.
	MaxScrollTicks int // default: 600
}

// SearchConfig controls indirect URL resolution through a search engine.
type SearchConfig struct {
	// EngineURL is the search engine home page.
	EngineURL string // default: "https://www.bing.com"

	// InputSelector locates the search input element.
	InputSelector string // default: `input[name="q"]`

	// ResultSelector locates result heading anchors on the results page.
	ResultSelector string // default: "h2 a, h3 a"

	// TargetBrand is the brand name a result's visible text must contain
	// (case-sensitive) for its href to be taken as the target URL.
	TargetBrand string // default: "Trulia"
}

// AuthConfig controls API key authentication.
type AuthConfig struct {
	// APIKeys is the list of valid API keys. Empty disables auth.
	APIKeys []string
}

// RateLimitConfig controls per-key rate limiting.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate per API key.
	RequestsPerSecond float64 // default: 1

	// Burst is the maximum burst size per API key.
	Burst int // default: 2
}

// CacheConfig controls the scrape response cache.
type CacheConfig struct {
	// MaxEntries is the maximum number of cached responses. 0 disables caching.
	MaxEntries int // default: 256

	// TTL is how long a cached response stays valid. 0 disables caching.
	TTL time.Duration // default: 10m
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string // default: "info"
	Format string // "json" or "text"; default: "json"
}

// Load reads configuration from a .env file (if present) and environment
// variables, with sane defaults.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Host: envOr("LISTHOUND_HOST", "0.0.0.0"),
			Port: envIntOr("LISTHOUND_PORT", 3000),
			Mode: envOr("LISTHOUND_MODE", "release"),
		},
		Browser: BrowserConfig{
			Headless:    envBoolOr("LISTHOUND_HEADLESS", true),
			NoSandbox:   envBoolOr("LISTHOUND_NO_SANDBOX", true),
			BrowserBin:  os.Getenv("LISTHOUND_BROWSER_BIN"),
			UserAgent: envOr("LISTHOUND_USER_AGENT",
				"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 "+
					"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
			MaxSessions: envIntOr("LISTHOUND_MAX_SESSIONS", 4),
			BlockedResourceTypes: envSliceOr("LISTHOUND_BLOCKED_RESOURCES", []string{
				"Image", "Font", "Media",
			}),
		},
		Scraper: ScraperConfig{
			NavigationTimeout: envDurationOr("LISTHOUND_NAV_TIMEOUT", 60*time.Second),
			SettleDelay:       envDurationOr("LISTHOUND_SETTLE_DELAY", 3*time.Second),
			InputWait:         envDurationOr("LISTHOUND_INPUT_WAIT", 15*time.Second),
			TypeDelay:         envDurationOr("LISTHOUND_TYPE_DELAY", 100*time.Millisecond),
			MaxPages:          envIntOr("LISTHOUND_MAX_PAGES", 4),
			ScrollStep:        envIntOr("LISTHOUND_SCROLL_STEP", 100),
			ScrollInterval:    envDurationOr("LISTHOUND_SCROLL_INTERVAL", 300*time.Millisecond),
			MaxScrollTicks:    envIntOr("LISTHOUND_MAX_SCROLL_TICKS", 600),
		},
		Search: SearchConfig{
			EngineURL:      envOr("LISTHOUND_SEARCH_ENGINE", "https://www.bing.com"),
			InputSelector:  envOr("LISTHOUND_SEARCH_INPUT", `input[name="q"]`),
			ResultSelector: envOr("LISTHOUND_SEARCH_RESULTS", "h2 a, h3 a"),
			TargetBrand:    envOr("LISTHOUND_TARGET_BRAND", "Trulia"),
		},
		Auth: AuthConfig{
			APIKeys: envSliceOr("LISTHOUND_API_KEYS", nil),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: envFloatOr("LISTHOUND_RATE_RPS", 1.0),
			Burst:             envIntOr("LISTHOUND_RATE_BURST", 2),
		},
		Cache: CacheConfig{
			MaxEntries: envIntOr("LISTHOUND_CACHE_ENTRIES", 256),
			TTL:        envDurationOr("LISTHOUND_CACHE_TTL", 10*time.Minute),
		},
		Log: LogConfig{
			Level:  envOr("LISTHOUND_LOG_LEVEL", "info"),
			Format: envOr("LISTHOUND_LOG_FORMAT", "json"),
		},
	}
}

// --- helper functions ---

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envBoolOr(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envFloatOr(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envSliceOr(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		return result
	}
	return fallback
}
