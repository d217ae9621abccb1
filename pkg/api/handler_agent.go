package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/vibecheck/vibecheck/pkg/scan/robust"
	"github.com/vibecheck/vibecheck/pkg/services"
)

// AgentListResponse wraps the agent catalog.
type AgentListResponse struct {
	Data []robust.AgentInfo `json:"data"`
}

// listAgentsHandler handles GET /v1/agents.
func (s *Server) listAgentsHandler(c *echo.Context) error {
	return c.JSON(http.StatusOK, &AgentListResponse{Data: robust.Catalog})
}

// getAgentHandler handles GET /v1/agents/:name.
func (s *Server) getAgentHandler(c *echo.Context) error {
	name := c.Param("name")
	info, ok := robust.LookupAgent(name)
	if !ok {
		return services.NotFound("Agent", name)
	}
	return c.JSON(http.StatusOK, info)
}
