package models

// ScrapeResponse is the success response for POST /api/v1/scrape.
// Listings are the concatenation of per-page extraction results in page
// order; no reordering or deduplication is performed.
type ScrapeResponse struct {
	SearchQuery string    `json:"searchQuery"`
	City        string    `json:"city"`
	Listings    []Listing `json:"listings"`
}

// ErrorResponse is the failure payload for every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MissingFieldsMessage is the exact validation message returned when the
// request body lacks "query" or "city".
const MissingFieldsMessage = `Please provide both "query" and "city".`

// HealthResponse is the response for GET /api/v1/health.
type HealthResponse struct {
	Status   string       `json:"status"` // "healthy" or "degraded"
	Uptime   string       `json:"uptime"`
	Sessions SessionStats `json:"sessions"`
	Version  string       `json:"version"`
}

// SessionStats reports browser session slot usage.
type SessionStats struct {
	MaxSessions    int `json:"max_sessions"`
	ActiveSessions int `json:"active_sessions"`
}
