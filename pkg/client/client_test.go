package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibecheck/vibecheck/pkg/models"
)

// fakeServer runs a scripted tunnel endpoint and hands the accepted channel
// to script.
func fakeServer(t *testing.T, script func(ctx context.Context, conn *websocket.Conn)) string {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		script(r.Context(), conn)
	}))
	t.Cleanup(server.Close)
	return "ws" + server.URL[len("http"):]
}

func readMsg(ctx context.Context, t *testing.T, conn *websocket.Conn) models.TunnelMessage {
	t.Helper()
	_, data, err := conn.Read(ctx)
	require.NoError(t, err)
	var msg models.TunnelMessage
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func sendMsg(ctx context.Context, t *testing.T, conn *websocket.Conn, msg models.TunnelMessage) {
	t.Helper()
	data, err := json.Marshal(msg)
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

// localPort extracts the port of an httptest server bound to localhost.
func localPort(t *testing.T, url string) int {
	t.Helper()
	_, portStr, err := net.SplitHostPort(strings.TrimPrefix(url, "http://"))
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)
	return port
}

func TestClientProxiesRequest(t *testing.T) {
	local := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		assert.Equal(t, "probe", r.Header.Get("X-Scanner"))
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, `{"q":1}`, string(body))
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}))
	defer local.Close()

	got := make(chan models.TunnelMessage, 1)
	serverURL := fakeServer(t, func(ctx context.Context, conn *websocket.Conn) {
		connect := readMsg(ctx, t, conn)
		assert.Equal(t, models.TunnelMsgConnect, connect.Type)
		assert.NotZero(t, connect.TargetPort)
		sendMsg(ctx, t, conn, models.TunnelMessage{
			Type:      models.TunnelMsgSessionCreated,
			SessionID: "tun_test",
		})
		sendMsg(ctx, t, conn, models.TunnelMessage{
			Type:      models.TunnelMsgHTTPRequest,
			RequestID: "req_1",
			Method:    "POST",
			Path:      "/health",
			Headers:   map[string]string{"X-Scanner": "probe"},
			Body:      `{"q":1}`,
		})
		got <- readMsg(ctx, t, conn)
		conn.Close(websocket.StatusNormalClosure, "")
	})

	var out bytes.Buffer
	c := New(localPort(t, local.URL), serverURL, &out)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, c.Run(ctx))

	reply := <-got
	assert.Equal(t, models.TunnelMsgHTTPResponse, reply.Type)
	assert.Equal(t, "req_1", reply.RequestID)
	assert.Equal(t, 200, reply.StatusCode)
	assert.Equal(t, "ok", reply.Body)
	assert.Equal(t, "text/plain", reply.Headers["Content-Type"])

	assert.Contains(t, out.String(), "Tunnel session: tun_test")
	assert.Contains(t, out.String(), "-> POST /health")
}

func TestClientAnswersPing(t *testing.T) {
	got := make(chan models.TunnelMessage, 1)
	serverURL := fakeServer(t, func(ctx context.Context, conn *websocket.Conn) {
		readMsg(ctx, t, conn)
		sendMsg(ctx, t, conn, models.TunnelMessage{
			Type:      models.TunnelMsgSessionCreated,
			SessionID: "tun_ping",
		})
		sendMsg(ctx, t, conn, models.TunnelMessage{Type: models.TunnelMsgPing})
		got <- readMsg(ctx, t, conn)
		conn.Close(websocket.StatusNormalClosure, "")
	})

	c := New(1, serverURL, io.Discard)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, c.Run(ctx))

	assert.Equal(t, models.TunnelMsgPong, (<-got).Type)
}

func TestClientLocalFailureBecomes502(t *testing.T) {
	// Grab a port with nothing listening on it.
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	deadPort := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())

	got := make(chan models.TunnelMessage, 1)
	serverURL := fakeServer(t, func(ctx context.Context, conn *websocket.Conn) {
		readMsg(ctx, t, conn)
		sendMsg(ctx, t, conn, models.TunnelMessage{
			Type:      models.TunnelMsgSessionCreated,
			SessionID: "tun_dead",
		})
		sendMsg(ctx, t, conn, models.TunnelMessage{
			Type:      models.TunnelMsgHTTPRequest,
			RequestID: "req_dead",
			Method:    "GET",
			Path:      "/",
		})
		got <- readMsg(ctx, t, conn)
		conn.Close(websocket.StatusNormalClosure, "")
	})

	c := New(deadPort, serverURL, io.Discard)
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	require.NoError(t, c.Run(ctx))

	reply := <-got
	assert.Equal(t, 502, reply.StatusCode)
	assert.Contains(t, reply.Body, "Tunnel client error:")
}

func TestClientRejectsBadHandshake(t *testing.T) {
	serverURL := fakeServer(t, func(ctx context.Context, conn *websocket.Conn) {
		readMsg(ctx, t, conn)
		sendMsg(ctx, t, conn, models.TunnelMessage{Type: models.TunnelMsgPing})
	})

	c := New(1, serverURL, io.Discard)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := c.Run(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected handshake reply")
}
