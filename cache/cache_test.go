package cache

import (
	"testing"
	"time"

	"github.com/listhound/listhound/models"
)

func TestCache_HitAndExpiry(t *testing.T) {
	c := New(4, 50*time.Millisecond)
	key := Key("top home listings", "New York")

	if _, hit := c.Get(key); hit {
		t.Fatal("empty cache must miss")
	}

	resp := &models.ScrapeResponse{SearchQuery: "top home listings", City: "New York"}
	c.Set(key, resp)

	got, hit := c.Get(key)
	if !hit || got.City != "New York" {
		t.Fatalf("expected hit with stored response, got hit=%v resp=%+v", hit, got)
	}

	time.Sleep(60 * time.Millisecond)
	if _, hit := c.Get(key); hit {
		t.Error("entry older than the TTL must miss")
	}
}

func TestCache_KeyDistinguishesQueryAndCity(t *testing.T) {
	if Key("a", "b") == Key("ab", "") || Key("a", "b") == Key("b", "a") {
		t.Error("key must separate query and city")
	}
}

func TestCache_CapacityEviction(t *testing.T) {
	c := New(2, time.Minute)
	c.Set("k1", &models.ScrapeResponse{})
	c.Set("k2", &models.ScrapeResponse{})
	c.Set("k3", &models.ScrapeResponse{})

	c.mu.RLock()
	n := len(c.store)
	c.mu.RUnlock()
	if n > 2 {
		t.Errorf("store holds %d entries, capacity is 2", n)
	}
}

func TestCache_DisabledIsSafe(t *testing.T) {
	var c *Cache // New returns nil when disabled
	c.Set("k", &models.ScrapeResponse{})
	if _, hit := c.Get("k"); hit {
		t.Error("disabled cache must always miss")
	}
}

func TestNew_DisabledByZeroBounds(t *testing.T) {
	if New(0, time.Minute) != nil {
		t.Error("zero capacity must disable caching")
	}
	if New(10, 0) != nil {
		t.Error("zero TTL must disable caching")
	}
}
