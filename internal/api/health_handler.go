package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/flamtime/SomeNerts/internal/database"
)

// HealthChecker is the part of the database the health endpoint needs
type HealthChecker interface {
	HealthCheck() error
	GetStats() database.Stats
}

// HealthHandler reports service health
type HealthHandler struct {
	db HealthChecker
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db HealthChecker) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health checks the database connection
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.db.HealthCheck(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "unhealthy",
			"database":  err.Error(),
			"timestamp": time.Now().UTC(),
		})
		return
	}

	stats := h.db.GetStats()
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
		"connections": gin.H{
			"open":   stats.OpenConnections,
			"in_use": stats.InUse,
			"idle":   stats.Idle,
		},
		"timestamp": time.Now().UTC(),
	})
}
