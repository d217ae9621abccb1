package models

// Tunnel wire message types. The client initiates with "connect"; the server
// answers with "session_created" and thereafter relays "http_request" /
// "http_response" pairs correlated by request_id. "ping"/"pong" keep the
// session's heartbeat fresh.
const (
	TunnelMsgConnect        = "connect"
	TunnelMsgSessionCreated = "session_created"
	TunnelMsgHTTPRequest    = "http_request"
	TunnelMsgHTTPResponse   = "http_response"
	TunnelMsgPing           = "ping"
	TunnelMsgPong           = "pong"
)

// Tunnel session statuses.
const (
	TunnelStatusConnected    = "connected"
	TunnelStatusDisconnected = "disconnected"
)

// TunnelMessage is the single JSON envelope for every message on the tunnel
// channel, in both directions. Fields are populated per Type.
type TunnelMessage struct {
	Type       string            `json:"type"`
	TargetPort int               `json:"target_port,omitempty"`
	SessionID  string            `json:"session_id,omitempty"`
	RequestID  string            `json:"request_id,omitempty"`
	Method     string            `json:"method,omitempty"`
	Path       string            `json:"path,omitempty"`
	Headers    map[string]string `json:"headers,omitempty"`
	Body       string            `json:"body,omitempty"`
	StatusCode int               `json:"status_code,omitempty"`
}

// TunnelHTTPResponse is the correlated reply delivered to a ProxyRequest
// caller.
type TunnelHTTPResponse struct {
	StatusCode int
	Headers    map[string]string
	Body       string
}
