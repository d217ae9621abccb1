package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	echo "github.com/labstack/echo/v5"
)

func agentTestServer() *echo.Echo {
	s := &Server{logger: slog.Default()}
	e := echo.New()
	e.HTTPErrorHandler = s.errorHandler
	e.GET("/v1/agents", s.listAgentsHandler)
	e.GET("/v1/agents/:name", s.getAgentHandler)
	return e
}

func TestListAgents(t *testing.T) {
	e := agentTestServer()

	req := httptest.NewRequest(http.MethodGet, "/v1/agents", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body AgentListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 5)

	names := make([]string, len(body.Data))
	for i, a := range body.Data {
		names[i] = a.Name
	}
	assert.Equal(t, []string{"recon", "auth", "injection", "config", "static"}, names)
}

func TestGetAgent(t *testing.T) {
	e := agentTestServer()

	req := httptest.NewRequest(http.MethodGet, "/v1/agents/injection", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Injection Agent", body["display_name"])
	assert.Equal(t, "robust", body["mode"])
}

func TestGetAgentUnknown(t *testing.T) {
	e := agentTestServer()

	req := httptest.NewRequest(http.MethodGet, "/v1/agents/nmap", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "AGENT_NOT_FOUND", body.Error.Code)
}
