package handler

import (
	"context"
	"net/http"

	coreport "github.com/amirhossein-jamali/currency-detector/internal/domain/port/core"
	"github.com/amirhossein-jamali/currency-detector/internal/infrastructure/adapter/database"
	"github.com/gin-gonic/gin"
)

// DatabaseProbe reports whether the database is reachable and how its pool is doing
type DatabaseProbe interface {
	Ping(ctx context.Context) error
	PoolMetrics() database.ConnectionPoolMetrics
}

// HealthHandler serves liveness endpoints
type HealthHandler struct {
	db     DatabaseProbe
	logger coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(db DatabaseProbe, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{db: db, logger: logger}
}

// Root handles the GET / endpoint
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Currency Recognition API running"})
}

// Health handles the GET /health endpoint
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		h.logger.Error("Health check failed", map[string]any{"error": err.Error()})
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": "down"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": "up",
		"pool":     h.db.PoolMetrics(),
	})
}
