package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/listhound/listhound/cache"
	"github.com/listhound/listhound/models"
)

// ScrapeService is the core operation the handler fronts. Implemented by
// *scrape.Service; faked in tests.
type ScrapeService interface {
	Scrape(ctx context.Context, query, city string) (*models.ScrapeResponse, error)
}

// Scrape returns a handler for POST /api/v1/scrape.
//
// Orchestration flow:
//  1. Parse & validate request; missing fields never reach the core.
//  2. Cache lookup by (query, city).
//  3. Service.Scrape → aggregated listings.
//  4. Return 200 with the listing set, or map the failure to a status.
func Scrape(svc ScrapeService, cc *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		var req models.ScrapeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.MissingFieldsMessage,
			})
			return
		}

		cacheKey := cache.Key(req.Query, req.City)
		if cached, hit := cc.Get(cacheKey); hit {
			c.JSON(http.StatusOK, cached)
			return
		}

		resp, err := svc.Scrape(c.Request.Context(), req.Query, req.City)
		if err != nil {
			slog.Warn("scrape failed",
				"query", req.Query,
				"city", req.City,
				"error", err,
				"duration", time.Since(start).Round(time.Millisecond),
			)
			c.JSON(statusFor(err), models.ErrorResponse{Error: err.Error()})
			return
		}

		cc.Set(cacheKey, resp)
		c.JSON(http.StatusOK, resp)
	}
}

// statusFor translates error codes to HTTP status codes. Everything the
// pipeline surfaces is a server-side failure; only validation is 4xx,
// and that never reaches here.
func statusFor(err error) int {
	scrapeErr, ok := err.(*models.ScrapeError)
	if !ok {
		return http.StatusInternalServerError
	}
	switch scrapeErr.Code {
	case models.ErrCodeTimeout:
		return http.StatusGatewayTimeout // 504
	case models.ErrCodeNavigation, models.ErrCodeInputNotFound:
		return http.StatusBadGateway // 502
	case models.ErrCodeLaunch:
		return http.StatusServiceUnavailable // 503
	default:
		return http.StatusInternalServerError // 500
	}
}
