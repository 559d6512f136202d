package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aditya/universe/internal/app/models/dto"
)

// Pinger reports whether the store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController serves the liveness probe
type HealthController struct {
	store Pinger
}

// NewHealthController creates a new HealthController
func NewHealthController(store Pinger) *HealthController {
	return &HealthController{store: store}
}

// Health handles GET /health
func (c *HealthController) Health(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	dbHealthy := c.store != nil && c.store.Ping(pingCtx) == nil

	ctx.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "OK",
		Message:   "UniVerse API is running",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Database:  dbHealthy,
	})
}
