package tunnel

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vibecheck/vibecheck/pkg/models"
	"github.com/vibecheck/vibecheck/pkg/probe"
	"github.com/vibecheck/vibecheck/pkg/services"
)

// setupSession wires a manager with one registered session whose channel is
// served over httptest, without touching the session store.
func setupSession(t *testing.T, sessionID string) (*Manager, *websocket.Conn) {
	t.Helper()

	m := NewManager(nil, slog.Default())

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		ctx, cancel := context.WithCancel(r.Context())
		s := &session{id: sessionID, conn: conn, ctx: ctx, cancel: cancel}
		m.register(s)
		defer func() {
			m.mu.Lock()
			delete(m.sessions, sessionID)
			m.mu.Unlock()
			cancel()
		}()
		for {
			msg, err := readMessage(ctx, conn)
			if err != nil {
				return
			}
			m.handleMessage(ctx, s, msg)
		}
	}))
	t.Cleanup(server.Close)

	dialCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client, _, err := websocket.Dial(dialCtx, "ws"+server.URL[len("http"):], nil)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close(websocket.StatusNormalClosure, "") })

	require.Eventually(t, func() bool { return m.Live(sessionID) },
		2*time.Second, 10*time.Millisecond)
	return m, client
}

func readWire(t *testing.T, conn *websocket.Conn) models.TunnelMessage {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, data, err := conn.Read(ctx)
	require.NoError(t, err)
	var msg models.TunnelMessage
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func writeWire(t *testing.T, conn *websocket.Conn, msg models.TunnelMessage) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	data, err := json.Marshal(msg)
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

func TestProxyRequestNotConnected(t *testing.T) {
	m := NewManager(nil, slog.Default())
	_, err := m.ProxyRequest(context.Background(), "tun_missing", "GET", "/", nil, "")
	svcErr, ok := services.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "TUNNEL_NOT_CONNECTED", svcErr.Code)
}

func TestProxyRequestRoundTrip(t *testing.T) {
	m, client := setupSession(t, "tun_abc")

	go func() {
		msg := readWire(t, client)
		assert.Equal(t, models.TunnelMsgHTTPRequest, msg.Type)
		assert.Equal(t, "GET", msg.Method)
		assert.Equal(t, "/health", msg.Path)
		assert.NotEmpty(t, msg.RequestID)
		writeWire(t, client, models.TunnelMessage{
			Type:       models.TunnelMsgHTTPResponse,
			RequestID:  msg.RequestID,
			StatusCode: 200,
			Headers:    map[string]string{"Content-Type": "text/plain"},
			Body:       "ok",
		})
	}()

	resp, err := m.ProxyRequest(context.Background(), "tun_abc", "GET", "/health", nil, "")
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "ok", resp.Body)
	assert.Equal(t, "text/plain", resp.Headers["Content-Type"])
}

func TestProxyRequestTimeout(t *testing.T) {
	m, _ := setupSession(t, "tun_slow")
	m.proxyWait = 50 * time.Millisecond

	_, err := m.ProxyRequest(context.Background(), "tun_slow", "GET", "/", nil, "")
	svcErr, ok := services.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "TARGET_UNREACHABLE", svcErr.Code)

	m.pendingMu.Lock()
	defer m.pendingMu.Unlock()
	assert.Empty(t, m.pending, "awaiter is deregistered after timeout")
}

func TestProxyRequestUnknownRequestIDIgnored(t *testing.T) {
	m, client := setupSession(t, "tun_x")
	m.proxyWait = 100 * time.Millisecond

	go func() {
		msg := readWire(t, client)
		writeWire(t, client, models.TunnelMessage{
			Type:       models.TunnelMsgHTTPResponse,
			RequestID:  "req_not_this_one",
			StatusCode: 200,
		})
		writeWire(t, client, models.TunnelMessage{
			Type:       models.TunnelMsgHTTPResponse,
			RequestID:  msg.RequestID,
			StatusCode: 201,
		})
	}()

	resp, err := m.ProxyRequest(context.Background(), "tun_x", "GET", "/", nil, "")
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)
}

func TestTunnelProberTruncatesBody(t *testing.T) {
	m, client := setupSession(t, "tun_big")

	go func() {
		msg := readWire(t, client)
		writeWire(t, client, models.TunnelMessage{
			Type:       models.TunnelMsgHTTPResponse,
			RequestID:  msg.RequestID,
			StatusCode: 200,
			Body:       strings.Repeat("x", 5000),
		})
	}()

	p := NewProber(m, "tun_big")
	result, perr := p.Do(context.Background(), "", "GET", "/big", nil, "")
	require.Nil(t, perr)
	assert.Len(t, result.BodyPreview, previewLimit)
	assert.Equal(t, "/big", result.URL)
}

func TestTunnelProberErrorMapping(t *testing.T) {
	m := NewManager(nil, slog.Default())
	p := NewProber(m, "tun_gone")

	result, perr := p.Do(context.Background(), "", "GET", "/", nil, "")
	assert.Nil(t, result)
	require.NotNil(t, perr)
	assert.Equal(t, probe.ErrKindConnectionFailed, perr.Kind)
}

func TestLiveAndActiveSessions(t *testing.T) {
	m, _ := setupSession(t, "tun_live")
	assert.True(t, m.Live("tun_live"))
	assert.False(t, m.Live("tun_other"))
	assert.Equal(t, 1, m.ActiveSessions())
}
