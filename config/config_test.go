package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Server.Port != 3000 {
		t.Errorf("default port = %d, want 3000", cfg.Server.Port)
	}
	if cfg.Scraper.NavigationTimeout != 60*time.Second {
		t.Errorf("navigation timeout = %v, want 60s", cfg.Scraper.NavigationTimeout)
	}
	if cfg.Scraper.SettleDelay != 3*time.Second {
		t.Errorf("settle delay = %v, want 3s", cfg.Scraper.SettleDelay)
	}
	if cfg.Scraper.InputWait != 15*time.Second {
		t.Errorf("input wait = %v, want 15s", cfg.Scraper.InputWait)
	}
	if cfg.Scraper.TypeDelay != 100*time.Millisecond {
		t.Errorf("type delay = %v, want 100ms", cfg.Scraper.TypeDelay)
	}
	if cfg.Scraper.MaxPages != 4 {
		t.Errorf("max pages = %d, want 4", cfg.Scraper.MaxPages)
	}
	if cfg.Scraper.ScrollStep != 100 || cfg.Scraper.ScrollInterval != 300*time.Millisecond {
		t.Errorf("scroll = %d px / %v, want 100 px / 300ms", cfg.Scraper.ScrollStep, cfg.Scraper.ScrollInterval)
	}
	if cfg.Scraper.MaxScrollTicks <= 0 {
		t.Error("scroll loop must be bounded by default")
	}
	if !cfg.Browser.NoSandbox {
		t.Error("sandbox-disabling flags are on by default for containerized runs")
	}
	if cfg.Browser.MaxSessions != 4 {
		t.Errorf("max sessions = %d, want 4", cfg.Browser.MaxSessions)
	}
	if cfg.Search.TargetBrand == "" || cfg.Search.InputSelector == "" {
		t.Error("search defaults must be populated")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LISTHOUND_PORT", "8081")
	t.Setenv("LISTHOUND_MAX_PAGES", "2")
	t.Setenv("LISTHOUND_TYPE_DELAY", "50ms")
	t.Setenv("LISTHOUND_BLOCKED_RESOURCES", "Image, Stylesheet")
	t.Setenv("LISTHOUND_TARGET_BRAND", "Redfin")

	cfg := Load()

	if cfg.Server.Port != 8081 {
		t.Errorf("port = %d, want 8081", cfg.Server.Port)
	}
	if cfg.Scraper.MaxPages != 2 {
		t.Errorf("max pages = %d, want 2", cfg.Scraper.MaxPages)
	}
	if cfg.Scraper.TypeDelay != 50*time.Millisecond {
		t.Errorf("type delay = %v, want 50ms", cfg.Scraper.TypeDelay)
	}
	if len(cfg.Browser.BlockedResourceTypes) != 2 || cfg.Browser.BlockedResourceTypes[1] != "Stylesheet" {
		t.Errorf("blocked resources = %v", cfg.Browser.BlockedResourceTypes)
	}
	if cfg.Search.TargetBrand != "Redfin" {
		t.Errorf("target brand = %q, want Redfin", cfg.Search.TargetBrand)
	}
}

func TestLoad_MalformedEnvFallsBack(t *testing.T) {
	t.Setenv("LISTHOUND_PORT", "not-a-number")
	t.Setenv("LISTHOUND_NAV_TIMEOUT", "soon")

	cfg := Load()
	if cfg.Server.Port != 3000 {
		t.Errorf("port = %d, want fallback 3000", cfg.Server.Port)
	}
	if cfg.Scraper.NavigationTimeout != 60*time.Second {
		t.Errorf("navigation timeout = %v, want fallback 60s", cfg.Scraper.NavigationTimeout)
	}
}
