package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	echo "github.com/labstack/echo/v5"

	"github.com/vibecheck/vibecheck/pkg/services"
)

func serveError(t *testing.T, err error) (*httptest.ResponseRecorder, ErrorResponse) {
	t.Helper()

	s := &Server{logger: slog.Default()}
	e := echo.New()
	e.HTTPErrorHandler = s.errorHandler
	e.GET("/boom", func(c *echo.Context) error { return err })

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestErrorHandlerServiceError(t *testing.T) {
	rec, body := serveError(t, services.NotFound("Assessment", "asm_missing"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", body.Error.Type)
	assert.Equal(t, "ASSESSMENT_NOT_FOUND", body.Error.Code)
	assert.Contains(t, body.Error.Message, "asm_missing")
}

func TestErrorHandlerValidationParam(t *testing.T) {
	rec, body := serveError(t, services.InvalidMode())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation_error", body.Error.Type)
	assert.Equal(t, "INVALID_MODE", body.Error.Code)
	assert.Equal(t, "mode", body.Error.Param)
}

func TestErrorHandlerEchoHTTPError(t *testing.T) {
	rec, body := serveError(t, echo.NewHTTPError(http.StatusBadRequest, "invalid request body"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation_error", body.Error.Type)
	assert.Equal(t, "INVALID_REQUEST", body.Error.Code)
	assert.Equal(t, "invalid request body", body.Error.Message)
}

func TestErrorHandlerUnknownError(t *testing.T) {
	rec, body := serveError(t, errors.New("database exploded"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal_error", body.Error.Type)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.NotContains(t, body.Error.Message, "exploded", "internal details stay out of responses")
}
