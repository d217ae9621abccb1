// Package client implements the tunnel side of the CLI: it holds the duplex
// channel open and forwards proxied requests to the local application.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/coder/websocket"

	"github.com/vibecheck/vibecheck/pkg/models"
)

// bodyLimit caps the response body relayed back through the tunnel.
const bodyLimit = 5000

// localTimeout bounds each request to the local application.
const localTimeout = 10 * time.Second

// writeTimeout bounds each websocket send.
const writeTimeout = 10 * time.Second

// DefaultServerURL is the tunnel endpoint of a locally running server.
const DefaultServerURL = "ws://localhost:8000/v1/tunnel"

// Client proxies tunnel requests to a local port.
type Client struct {
	port      int
	serverURL string
	local     *http.Client
	out       io.Writer
}

// New creates a tunnel client forwarding to localhost:port. Progress is
// written to out.
func New(port int, serverURL string, out io.Writer) *Client {
	return &Client{
		port:      port,
		serverURL: serverURL,
		local:     &http.Client{Timeout: localTimeout},
		out:       out,
	}
}

// Run connects to the server, performs the connect handshake, and serves
// proxied requests until the channel closes or ctx is cancelled.
func (c *Client) Run(ctx context.Context) error {
	conn, _, err := websocket.Dial(ctx, c.serverURL, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", c.serverURL, err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	if err := c.send(ctx, conn, &models.TunnelMessage{
		Type:       models.TunnelMsgConnect,
		TargetPort: c.port,
	}); err != nil {
		return fmt.Errorf("failed to send connect: %w", err)
	}

	first, err := c.read(ctx, conn)
	if err != nil {
		return fmt.Errorf("handshake failed: %w", err)
	}
	if first.Type != models.TunnelMsgSessionCreated {
		return fmt.Errorf("unexpected handshake reply: %s", first.Type)
	}

	fmt.Fprintln(c.out, "Connected to VibeCheck API")
	fmt.Fprintf(c.out, "Tunnel session: %s\n", first.SessionID)
	fmt.Fprintf(c.out, "Proxying to localhost:%d\n", c.port)
	fmt.Fprintln(c.out, "Ready for robust scanning.")
	fmt.Fprintln(c.out)

	for {
		msg, err := c.read(ctx, conn)
		if err != nil {
			// Channel closed; a normal closure is a clean exit.
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure {
				return nil
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}

		switch msg.Type {
		case models.TunnelMsgPing:
			if err := c.send(ctx, conn, &models.TunnelMessage{Type: models.TunnelMsgPong}); err != nil {
				return err
			}
		case models.TunnelMsgHTTPRequest:
			reply := c.handleRequest(ctx, msg)
			if err := c.send(ctx, conn, reply); err != nil {
				return err
			}
		}
	}
}

// handleRequest performs the proxied call against the local application and
// builds the correlated response. Local failures become a 502 reply rather
// than an error, so the scan on the far side sees an unreachable target.
func (c *Client) handleRequest(ctx context.Context, msg *models.TunnelMessage) *models.TunnelMessage {
	url := fmt.Sprintf("http://localhost:%d%s", c.port, msg.Path)
	fmt.Fprintf(c.out, "  -> %s %s\n", msg.Method, msg.Path)

	req, err := http.NewRequestWithContext(ctx, msg.Method, url, strings.NewReader(msg.Body))
	if err != nil {
		return c.errorReply(msg.RequestID, err)
	}
	for k, v := range msg.Headers {
		req.Header.Set(k, v)
	}

	resp, err := c.local.Do(req)
	if err != nil {
		return c.errorReply(msg.RequestID, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, bodyLimit))
	if err != nil {
		return c.errorReply(msg.RequestID, err)
	}

	headers := make(map[string]string, len(resp.Header))
	for k := range resp.Header {
		headers[k] = resp.Header.Get(k)
	}

	fmt.Fprintf(c.out, "  <- %d\n", resp.StatusCode)
	return &models.TunnelMessage{
		Type:       models.TunnelMsgHTTPResponse,
		RequestID:  msg.RequestID,
		StatusCode: resp.StatusCode,
		Headers:    headers,
		Body:       string(raw),
	}
}

func (c *Client) errorReply(requestID string, cause error) *models.TunnelMessage {
	fmt.Fprintf(c.out, "  <- ERROR: %v\n", cause)
	return &models.TunnelMessage{
		Type:       models.TunnelMsgHTTPResponse,
		RequestID:  requestID,
		StatusCode: http.StatusBadGateway,
		Headers:    map[string]string{},
		Body:       fmt.Sprintf("Tunnel client error: %v", cause),
	}
}

func (c *Client) send(ctx context.Context, conn *websocket.Conn, msg *models.TunnelMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	sendCtx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return conn.Write(sendCtx, websocket.MessageText, data)
}

func (c *Client) read(ctx context.Context, conn *websocket.Conn) (*models.TunnelMessage, error) {
	_, data, err := conn.Read(ctx)
	if err != nil {
		return nil, err
	}
	var msg models.TunnelMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
