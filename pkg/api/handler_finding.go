package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/vibecheck/vibecheck/pkg/models"
)

// listFindingsHandler handles GET /v1/assessments/:id/findings. Default sort
// is severity rank, critical first.
func (s *Server) listFindingsHandler(c *echo.Context) error {
	assessmentID := c.Param("id")
	if _, err := s.assessments.Get(c.Request().Context(), assessmentID); err != nil {
		return err
	}

	params := models.FindingListParams{
		Severity: c.QueryParam("severity"),
		Category: c.QueryParam("category"),
		Agent:    c.QueryParam("agent"),
		Sort:     c.QueryParam("sort"),
		Page:     queryInt(c, "page", models.DefaultPage),
		PerPage:  queryInt(c, "per_page", models.DefaultPerPage),
	}
	if params.Sort == "" {
		params.Sort = "severity"
	}

	items, total, err := s.findings.List(c.Request().Context(), assessmentID, params)
	if err != nil {
		return err
	}

	data := make([]*FindingResponse, len(items))
	for i, f := range items {
		data[i] = toFindingResponse(f)
	}
	page, perPage := models.ClampPage(params.Page, params.PerPage)
	return c.JSON(http.StatusOK, &FindingListResponse{
		Data:       data,
		Pagination: models.NewPageMeta(page, perPage, total),
	})
}

// getFindingHandler handles GET /v1/assessments/:id/findings/:fid.
func (s *Server) getFindingHandler(c *echo.Context) error {
	assessmentID := c.Param("id")
	if _, err := s.assessments.Get(c.Request().Context(), assessmentID); err != nil {
		return err
	}

	f, err := s.findings.Get(c.Request().Context(), assessmentID, c.Param("fid"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toFindingResponse(f))
}
