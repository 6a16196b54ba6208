package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthHandler reporta el estado del servicio. El ping a la base es opcional.
type HealthHandler struct {
	logger *zap.Logger
	ping   func(ctx context.Context) error
}

func NewHealthHandler(logger *zap.Logger, ping func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{logger: logger, ping: ping}
}

// Health maneja GET /healthz.
func (h *HealthHandler) Health(c *gin.Context) {
	if h.ping == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := h.ping(ctx); err != nil {
		h.logger.Warn("health db ping failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "ok"})
}
