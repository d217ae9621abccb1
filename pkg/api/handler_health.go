package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/vibecheck/vibecheck/pkg/database"
	"github.com/vibecheck/vibecheck/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusUnhealthy = "unhealthy"
)

// HealthCheck is one named component check.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is the GET /v1/health payload.
type HealthResponse struct {
	Status        string                 `json:"status"`
	Version       string                 `json:"version"`
	ActiveTunnels int                    `json:"active_tunnels"`
	Checks        map[string]HealthCheck `json:"checks"`
}

// healthHandler handles GET /v1/health. Only the service's own components
// (database, worker pool, tunnel registry) are reported; external LLM vendors
// are excluded so an upstream outage does not restart the service.
func (s *Server) healthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]HealthCheck)
	status := healthStatusHealthy

	if _, err := database.Health(reqCtx, s.dbClient.DB()); err != nil {
		status = healthStatusUnhealthy
		checks["database"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
	} else {
		checks["database"] = HealthCheck{Status: healthStatusHealthy}
	}

	if s.pool != nil {
		poolHealth := s.pool.Health()
		if poolHealth.TotalWorkers == 0 {
			checks["worker_pool"] = HealthCheck{Status: healthStatusUnhealthy, Message: "no workers running"}
			status = healthStatusUnhealthy
		} else {
			checks["worker_pool"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	activeTunnels := 0
	if s.tunnelManager != nil {
		activeTunnels = s.tunnelManager.ActiveSessions()
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, &HealthResponse{
		Status:        status,
		Version:       version.GitCommit,
		ActiveTunnels: activeTunnels,
		Checks:        checks,
	})
}
