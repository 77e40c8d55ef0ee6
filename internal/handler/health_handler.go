package handler

import (
	"context"
	"net/http"
	"time"

	"starwars-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HealthHandler struct {
	ping func(context.Context) error
}

func NewHealthHandler(ping func(context.Context) error) *HealthHandler {
	return &HealthHandler{ping: ping}
}

// Check always answers 200; the database ping result is reported in the body.
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	dbStatus := "up"
	if err := h.ping(ctx); err != nil {
		logger.FromGin(c).Warn("database ping failed", zap.Error(err))
		dbStatus = "down"
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": dbStatus})
}
