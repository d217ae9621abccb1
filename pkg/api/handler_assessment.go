package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/vibecheck/vibecheck/pkg/models"
)

// createAssessmentHandler handles POST /v1/assessments. Returns 202 with the
// queued assessment, or 200 when an idempotency key matched a prior one.
func (s *Server) createAssessmentHandler(c *echo.Context) error {
	var req CreateAssessmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	a, reused, err := s.assessments.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}

	if reused {
		return c.JSON(http.StatusOK, toAssessmentResponse(a))
	}

	// Inline uploads are not persisted; park them for the claiming worker.
	if req.RepoURL == "" && len(req.Files) > 0 && s.pool != nil {
		s.pool.RegisterFiles(a.ID, req.Files)
	}

	s.logger.Info("assessment queued",
		"assessment_id", a.ID, "mode", a.Mode, "depth", a.Depth)
	return c.JSON(http.StatusAccepted, toAssessmentResponse(a))
}

// listAssessmentsHandler handles GET /v1/assessments.
func (s *Server) listAssessmentsHandler(c *echo.Context) error {
	params := models.AssessmentListParams{
		Mode:    c.QueryParam("mode"),
		Status:  c.QueryParam("status"),
		Sort:    c.QueryParam("sort"),
		Page:    queryInt(c, "page", models.DefaultPage),
		PerPage: queryInt(c, "per_page", models.DefaultPerPage),
	}

	items, total, err := s.assessments.List(c.Request().Context(), params)
	if err != nil {
		return err
	}

	data := make([]*AssessmentResponse, len(items))
	for i, a := range items {
		data[i] = toAssessmentResponse(a)
	}
	page, perPage := models.ClampPage(params.Page, params.PerPage)
	return c.JSON(http.StatusOK, &AssessmentListResponse{
		Data:       data,
		Pagination: models.NewPageMeta(page, perPage, total),
	})
}

// getAssessmentHandler handles GET /v1/assessments/:id.
func (s *Server) getAssessmentHandler(c *echo.Context) error {
	a, err := s.assessments.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAssessmentResponse(a))
}

// deleteAssessmentHandler handles DELETE /v1/assessments/:id.
func (s *Server) deleteAssessmentHandler(c *echo.Context) error {
	id := c.Param("id")
	if err := s.assessments.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	if s.pool != nil {
		s.pool.DropFiles(id)
	}
	return c.NoContent(http.StatusNoContent)
}

// rerunAssessmentHandler handles POST /v1/assessments/:id/rerun. The body is
// optional; supplied fields override the stored roster and idempotency key.
func (s *Server) rerunAssessmentHandler(c *echo.Context) error {
	var input models.RerunAssessmentInput
	if c.Request().ContentLength != 0 {
		var req RerunAssessmentRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
		}
		input.Agents = req.Agents
		input.IdempotencyKey = req.IdempotencyKey
	}

	a, err := s.assessments.Rerun(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}

	s.logger.Info("assessment re-queued", "assessment_id", a.ID)
	return c.JSON(http.StatusAccepted, toAssessmentResponse(a))
}

// queryInt parses a positive integer query parameter, falling back on absence
// or garbage.
func queryInt(c *echo.Context, name string, fallback int) int {
	v := c.QueryParam(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
