// Package api exposes the REST and websocket surface of the service.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/vibecheck/vibecheck/pkg/database"
	"github.com/vibecheck/vibecheck/pkg/queue"
	"github.com/vibecheck/vibecheck/pkg/services"
	"github.com/vibecheck/vibecheck/pkg/tunnel"
)

// Server wires the HTTP handlers over the service layer.
type Server struct {
	dbClient *database.Client

	assessments    *services.AssessmentService
	findings       *services.FindingService
	logs           *services.LogService
	tunnelSessions *services.TunnelService

	tunnelManager *tunnel.Manager
	pool          *queue.Pool
	logger        *slog.Logger

	echo       *echo.Echo
	httpServer *http.Server
}

// NewServer creates the API server and registers all routes.
func NewServer(
	dbClient *database.Client,
	assessments *services.AssessmentService,
	findings *services.FindingService,
	logs *services.LogService,
	tunnelSessions *services.TunnelService,
	tunnelManager *tunnel.Manager,
	pool *queue.Pool,
	logger *slog.Logger,
) *Server {
	s := &Server{
		dbClient:       dbClient,
		assessments:    assessments,
		findings:       findings,
		logs:           logs,
		tunnelSessions: tunnelSessions,
		tunnelManager:  tunnelManager,
		pool:           pool,
		logger:         logger,
	}

	e := echo.New()
	e.Use(requestID())
	e.Use(securityHeaders())
	e.HTTPErrorHandler = s.errorHandler

	s.registerRoutes(e)
	s.echo = e
	return s
}

func (s *Server) registerRoutes(e *echo.Echo) {
	e.GET("/v1/health", s.healthHandler)

	e.GET("/v1/agents", s.listAgentsHandler)
	e.GET("/v1/agents/:name", s.getAgentHandler)

	e.POST("/v1/assessments", s.createAssessmentHandler)
	e.GET("/v1/assessments", s.listAssessmentsHandler)
	e.GET("/v1/assessments/:id", s.getAssessmentHandler)
	e.DELETE("/v1/assessments/:id", s.deleteAssessmentHandler)
	e.POST("/v1/assessments/:id/rerun", s.rerunAssessmentHandler)

	e.GET("/v1/assessments/:id/findings", s.listFindingsHandler)
	e.GET("/v1/assessments/:id/findings/:fid", s.getFindingHandler)
	e.GET("/v1/assessments/:id/logs", s.listLogsHandler)

	e.GET("/v1/tunnel/sessions", s.listTunnelSessionsHandler)
	e.GET("/v1/tunnel/sessions/:id", s.getTunnelSessionHandler)
	e.GET("/v1/tunnel", s.tunnelHandler)
}

// Handler exposes the routed handler, used by tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start serves HTTP on addr, blocking until the server stops.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
