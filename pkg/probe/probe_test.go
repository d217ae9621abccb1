package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/users", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("X-Test", "yes")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	p := New(0)
	result, perr := p.Do(context.Background(), srv.URL, "POST", "/api/users",
		map[string]string{"Content-Type": "application/json"}, `{"name":"a"}`)
	require.Nil(t, perr)
	assert.Equal(t, http.StatusCreated, result.StatusCode)
	assert.Equal(t, `{"ok":true}`, result.BodyPreview)
	assert.Equal(t, "yes", result.Headers["X-Test"])
	assert.Equal(t, srv.URL+"/api/users", result.URL)
}

func TestDoTruncatesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 10000)))
	}))
	defer srv.Close()

	p := New(0)
	result, perr := p.Do(context.Background(), srv.URL, "GET", "/", nil, "")
	require.Nil(t, perr)
	assert.Len(t, result.BodyPreview, 2000)
}

func TestDoConnectionFailed(t *testing.T) {
	p := New(0)
	result, perr := p.Do(context.Background(), "http://127.0.0.1:1", "GET", "/", nil, "")
	assert.Nil(t, result)
	require.NotNil(t, perr)
	assert.Equal(t, ErrKindConnectionFailed, perr.Kind)
	assert.Contains(t, perr.Message, "Could not connect")
}

func TestDoTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	p := New(50 * time.Millisecond)
	result, perr := p.Do(context.Background(), srv.URL, "GET", "/slow", nil, "")
	assert.Nil(t, result)
	require.NotNil(t, perr)
	assert.Equal(t, ErrKindTimeout, perr.Kind)
}

func TestDoStripsTrailingSlash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
	}))
	defer srv.Close()

	p := New(0)
	_, perr := p.Do(context.Background(), srv.URL+"/", "GET", "/health", nil, "")
	assert.Nil(t, perr)
}

func TestCheckSecurityHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "HEAD", r.Method)
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("X-Powered-By", "Express")
		w.Header().Set("Server", "nginx/1.25")
	}))
	defer srv.Close()

	p := New(0)
	report, perr := CheckSecurityHeaders(context.Background(), p, srv.URL, "")
	require.Nil(t, perr)

	assert.NotContains(t, report.Missing, "x-content-type-options")
	assert.Contains(t, report.Missing, "content-security-policy")
	assert.Contains(t, report.Missing, "x-frame-options")

	joined := strings.Join(report.Issues, "\n")
	assert.Contains(t, joined, "CORS allows all origins")
	assert.Contains(t, joined, "X-Powered-By exposes technology: Express")
	assert.Contains(t, joined, "Server header discloses software")
	assert.Contains(t, joined, "Missing security headers:")
}

func TestToolResponseShapes(t *testing.T) {
	r := &Result{StatusCode: 200, Headers: map[string]string{"A": "b"}, BodyPreview: "ok", URL: "http://t/x"}
	m := r.ToolResponse()
	assert.Equal(t, 200, m["status_code"])
	assert.Equal(t, "ok", m["body_preview"])

	e := &ErrorResult{Kind: ErrKindTimeout, URL: "http://t/x", Message: "Timed out after 10s"}
	em := e.ToolResponse()
	assert.Equal(t, "timeout", em["error"])
}
