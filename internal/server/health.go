package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	app "github.com/advier-web/parkmanager-tool-new-sub001"
	"github.com/advier-web/parkmanager-tool-new-sub001/pkg/api"
	"github.com/advier-web/parkmanager-tool-new-sub001/pkg/log"
)

const (
	HealthHealthy   = "healthy"
	HealthUnhealthy = "unhealthy"

	healthCheckTimeout = 3 * time.Second
)

func (s *Server) handleHealth(c *gin.Context) {
	res := api.HealthResponse{
		Service: app.Name,
		Version: app.Version,
		Status:  HealthHealthy,
	}
	if s.redis == nil {
		c.JSON(http.StatusOK, res)
		return
	}

	ctx, cancel := context.WithTimeout(
		c.Request.Context(), healthCheckTimeout,
	)
	defer cancel()
	if err := s.redis.Ping(ctx).Err(); err != nil {
		slog.Error("Health check failed",
			log.Error(err))
		res.Status = HealthUnhealthy
		res.Error = err.Error()
		c.JSON(http.StatusServiceUnavailable, res)
		return
	}
	c.JSON(http.StatusOK, res)
}
