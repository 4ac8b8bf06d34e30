package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/listhound/listhound/models"
)

// SessionStats reports browser session slot usage. Implemented by
// *browser.Manager.
type SessionStats interface {
	Stats() models.SessionStats
}

// Health returns a handler for GET /api/v1/health.
//
// Reports slot utilisation and degrades status when > 80% of session
// slots are taken.
func Health(mgr SessionStats, startTime time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats := mgr.Stats()

		status := "healthy"
		if stats.MaxSessions > 0 && stats.ActiveSessions > int(float64(stats.MaxSessions)*0.8) {
			status = "degraded"
		}

		c.JSON(http.StatusOK, models.HealthResponse{
			Status:   status,
			Uptime:   time.Since(startTime).Round(time.Second).String(),
			Sessions: stats,
			Version:  "0.1.0",
		})
	}
}
