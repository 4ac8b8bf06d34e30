package models

// ScrapeRequest is the payload for POST /api/v1/scrape.
type ScrapeRequest struct {
	// Query is the free-text search query, e.g. "top home listings". Required.
	Query string `json:"query" binding:"required"`

	// City is the locality appended to the query. Required.
	City string `json:"city" binding:"required"`
}
