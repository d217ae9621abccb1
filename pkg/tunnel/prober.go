package tunnel

import (
	"context"

	"github.com/vibecheck/vibecheck/pkg/probe"
	"github.com/vibecheck/vibecheck/pkg/services"
)

// previewLimit matches the direct prober's body excerpt bound.
const previewLimit = 2000

// Prober routes probes through a tunnel session instead of dialing the
// target directly. Satisfies probe.Doer.
type Prober struct {
	manager   *Manager
	sessionID string
}

// NewProber builds a tunnel-backed prober for one session.
func NewProber(manager *Manager, sessionID string) *Prober {
	return &Prober{manager: manager, sessionID: sessionID}
}

// Do relays the request over the tunnel. The targetURL argument is unused;
// the client on the far end dials its own localhost port.
func (p *Prober) Do(ctx context.Context, _, method, path string, headers map[string]string, body string) (*probe.Result, *probe.ErrorResult) {
	resp, err := p.manager.ProxyRequest(ctx, p.sessionID, method, path, headers, body)
	if err != nil {
		return nil, classifyProxyError(err, path)
	}

	preview := resp.Body
	if len(preview) > previewLimit {
		preview = preview[:previewLimit]
	}
	return &probe.Result{
		StatusCode:  resp.StatusCode,
		Headers:     resp.Headers,
		BodyPreview: preview,
		URL:         path,
	}, nil
}

func classifyProxyError(err error, path string) *probe.ErrorResult {
	if svcErr, ok := services.AsError(err); ok {
		switch svcErr.Code {
		case "TUNNEL_NOT_CONNECTED":
			return &probe.ErrorResult{
				Kind:    probe.ErrKindConnectionFailed,
				URL:     path,
				Message: svcErr.Message,
			}
		case "TARGET_UNREACHABLE":
			return &probe.ErrorResult{
				Kind:    probe.ErrKindTimeout,
				URL:     path,
				Message: svcErr.Message,
			}
		}
	}
	return &probe.ErrorResult{
		Kind:    probe.ErrKindRequestFailed,
		URL:     path,
		Message: err.Error(),
	}
}
