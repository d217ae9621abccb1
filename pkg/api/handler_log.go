package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/vibecheck/vibecheck/pkg/models"
)

// listLogsHandler handles GET /v1/assessments/:id/logs. Step logs exist only
// for robust assessments.
func (s *Server) listLogsHandler(c *echo.Context) error {
	params := models.AgentLogListParams{
		Agent:   c.QueryParam("agent"),
		Page:    queryInt(c, "page", models.DefaultPage),
		PerPage: queryInt(c, "per_page", models.DefaultPerPage),
	}

	items, total, err := s.logs.List(c.Request().Context(), c.Param("id"), params)
	if err != nil {
		return err
	}

	data := make([]*AgentLogResponse, len(items))
	for i, l := range items {
		data[i] = toAgentLogResponse(l)
	}
	page, perPage := models.ClampPage(params.Page, params.PerPage)
	return c.JSON(http.StatusOK, &AgentLogListResponse{
		Data:       data,
		Pagination: models.NewPageMeta(page, perPage, total),
	})
}
