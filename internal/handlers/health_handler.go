package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Root(c *gin.Context) {
	c.String(http.StatusOK, "Clinic API is running")
}

// Health pings the document store.
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.Stores.Health.Ping(ctx); err != nil {
		h.Logger.Warn().Err(err).Msg("health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "DOWN", "error": "database unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "UP"})
}
