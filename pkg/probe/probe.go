// Package probe implements the single-request HTTP primitive shared by the
// robust agents and the coverage builder.
package probe

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// Error kinds returned in place of a response.
const (
	ErrKindTimeout          = "timeout"
	ErrKindConnectionFailed = "connection_failed"
	ErrKindRequestFailed    = "request_failed"
)

// bodyPreviewLimit bounds the body excerpt returned to callers.
const bodyPreviewLimit = 2000

// DefaultTimeout is the per-request deadline for agent probes.
const DefaultTimeout = 10 * time.Second

// Result is a successful probe response.
type Result struct {
	StatusCode  int
	Headers     map[string]string
	BodyPreview string
	URL         string
}

// ToolResponse renders the result in the shape handed back to the LLM.
func (r *Result) ToolResponse() map[string]any {
	headers := make(map[string]any, len(r.Headers))
	for k, v := range r.Headers {
		headers[k] = v
	}
	return map[string]any{
		"status_code":  r.StatusCode,
		"headers":      headers,
		"body_preview": r.BodyPreview,
		"url":          r.URL,
	}
}

// ErrorResult is a typed probe failure. Probes never return Go errors; the
// failure is data handed back to the caller (and ultimately the model).
type ErrorResult struct {
	Kind    string
	URL     string
	Message string
}

// ToolResponse renders the failure in the shape handed back to the LLM.
func (e *ErrorResult) ToolResponse() map[string]any {
	return map[string]any{
		"error":   e.Kind,
		"url":     e.URL,
		"message": e.Message,
	}
}

// Prober issues single bounded outbound requests. Certificate verification is
// disabled: scan targets are routinely dev servers with self-signed certs.
type Prober struct {
	client  *http.Client
	timeout time.Duration
}

// New creates a Prober with the given per-request timeout (0 means
// DefaultTimeout).
func New(timeout time.Duration) *Prober {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Prober{
		client: &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		},
		timeout: timeout,
	}
}

// Do issues method against targetURL+path and returns either a Result or an
// ErrorResult, never both.
func (p *Prober) Do(ctx context.Context, targetURL, method, path string, headers map[string]string, body string) (*Result, *ErrorResult) {
	url := strings.TrimRight(targetURL, "/") + path

	reqCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	var reqBody io.Reader
	if body != "" {
		reqBody = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(reqCtx, method, url, reqBody)
	if err != nil {
		return nil, &ErrorResult{Kind: ErrKindRequestFailed, URL: url, Message: err.Error()}
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, classify(err, url, p.timeout)
	}
	defer resp.Body.Close()

	preview, err := io.ReadAll(io.LimitReader(resp.Body, bodyPreviewLimit))
	if err != nil {
		return nil, classify(err, url, p.timeout)
	}

	return &Result{
		StatusCode:  resp.StatusCode,
		Headers:     flattenHeaders(resp.Header),
		BodyPreview: string(preview),
		URL:         url,
	}, nil
}

func classify(err error, url string, timeout time.Duration) *ErrorResult {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		return &ErrorResult{
			Kind:    ErrKindTimeout,
			URL:     url,
			Message: fmt.Sprintf("Timed out after %s", timeout),
		}
	case isConnectionRefused(err):
		return &ErrorResult{
			Kind:    ErrKindConnectionFailed,
			URL:     url,
			Message: fmt.Sprintf("Could not connect to %s", url),
		}
	default:
		return &ErrorResult{Kind: ErrKindRequestFailed, URL: url, Message: err.Error()}
	}
}

func isConnectionRefused(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

func flattenHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k, vs := range h {
		if len(vs) > 0 {
			out[k] = vs[0]
		}
	}
	return out
}
