// Package tunnel multiplexes HTTP probes over client-initiated websocket
// channels, so robust scans can reach targets on private networks.
package tunnel

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/vibecheck/vibecheck/pkg/ident"
	"github.com/vibecheck/vibecheck/pkg/models"
	"github.com/vibecheck/vibecheck/pkg/services"
)

// proxyTimeout bounds how long a ProxyRequest waits for the client's
// correlated http_response.
const proxyTimeout = 15 * time.Second

// pingInterval is how often the server pings a connected client; the
// client's pong refreshes the session heartbeat.
const pingInterval = 30 * time.Second

// defaultWriteTimeout bounds each websocket send.
const defaultWriteTimeout = 10 * time.Second

// connectTimeout bounds the wait for the initial connect message.
const connectTimeout = 10 * time.Second

// session is one live tunnel channel.
type session struct {
	id     string
	conn   *websocket.Conn
	ctx    context.Context
	cancel context.CancelFunc
}

// Manager is the process-wide tunnel registry: live channels by session id
// and pending awaiters by request id. Implements services.TunnelChecker.
type Manager struct {
	sessions map[string]*session
	mu       sync.RWMutex

	pending   map[string]chan *models.TunnelHTTPResponse
	pendingMu sync.Mutex

	store        *services.TunnelService
	writeTimeout time.Duration
	proxyWait    time.Duration
	logger       *slog.Logger
}

// NewManager wires a tunnel manager over the session store.
func NewManager(store *services.TunnelService, logger *slog.Logger) *Manager {
	return &Manager{
		sessions:     make(map[string]*session),
		pending:      make(map[string]chan *models.TunnelHTTPResponse),
		store:        store,
		writeTimeout: defaultWriteTimeout,
		proxyWait:    proxyTimeout,
		logger:       logger,
	}
}

// Live reports whether the session currently holds an open channel.
func (m *Manager) Live(sessionID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.sessions[sessionID]
	return ok
}

// ActiveSessions returns the number of live tunnel channels.
func (m *Manager) ActiveSessions() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// HandleConnection manages one tunnel channel after upgrade. The first
// message must be connect{target_port}; the session record is created, the
// client gets session_created, and the read loop then correlates responses
// and heartbeats until the channel closes. Blocks until done.
func (m *Manager) HandleConnection(parentCtx context.Context, conn *websocket.Conn) {
	connectCtx, connectCancel := context.WithTimeout(parentCtx, connectTimeout)
	first, err := readMessage(connectCtx, conn)
	connectCancel()
	if err != nil {
		_ = conn.Close(websocket.StatusPolicyViolation, "expected connect message")
		return
	}
	if first.Type != models.TunnelMsgConnect || first.TargetPort == 0 {
		_ = conn.Close(websocket.StatusPolicyViolation, "Expected connect message with target_port")
		return
	}

	record, err := m.store.Create(parentCtx, first.TargetPort)
	if err != nil {
		m.logger.Error("failed to create tunnel session", "error", err)
		_ = conn.Close(websocket.StatusInternalError, "session creation failed")
		return
	}

	ctx, cancel := context.WithCancel(parentCtx)
	s := &session{id: record.ID, conn: conn, ctx: ctx, cancel: cancel}

	m.register(s)
	defer m.unregister(s)

	if err := m.send(s, &models.TunnelMessage{
		Type:      models.TunnelMsgSessionCreated,
		SessionID: s.id,
	}); err != nil {
		return
	}

	m.logger.Info("tunnel connected", "session_id", s.id, "target_port", first.TargetPort)

	go m.pingLoop(s)

	for {
		msg, err := readMessage(ctx, conn)
		if err != nil {
			return
		}
		m.handleMessage(ctx, s, msg)
	}
}

// ProxyRequest relays one HTTP request over the session's channel and waits
// for the correlated response.
func (m *Manager) ProxyRequest(ctx context.Context, sessionID, method, path string, headers map[string]string, body string) (*models.TunnelHTTPResponse, error) {
	m.mu.RLock()
	s, ok := m.sessions[sessionID]
	m.mu.RUnlock()
	if !ok {
		return nil, services.TunnelNotConnected()
	}

	requestID := ident.New(ident.PrefixProxyRequest)
	waiter := make(chan *models.TunnelHTTPResponse, 1)

	m.pendingMu.Lock()
	m.pending[requestID] = waiter
	m.pendingMu.Unlock()
	defer func() {
		m.pendingMu.Lock()
		delete(m.pending, requestID)
		m.pendingMu.Unlock()
	}()

	if headers == nil {
		headers = map[string]string{}
	}
	err := m.send(s, &models.TunnelMessage{
		Type:      models.TunnelMsgHTTPRequest,
		RequestID: requestID,
		Method:    method,
		Path:      path,
		Headers:   headers,
		Body:      body,
	})
	if err != nil {
		return nil, services.TunnelNotConnected()
	}

	select {
	case resp := <-waiter:
		return resp, nil
	case <-time.After(m.proxyWait):
		return nil, services.TargetUnreachable()
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (m *Manager) handleMessage(ctx context.Context, s *session, msg *models.TunnelMessage) {
	switch msg.Type {
	case models.TunnelMsgHTTPResponse:
		m.pendingMu.Lock()
		waiter, ok := m.pending[msg.RequestID]
		if ok {
			delete(m.pending, msg.RequestID)
		}
		m.pendingMu.Unlock()
		if ok {
			waiter <- &models.TunnelHTTPResponse{
				StatusCode: msg.StatusCode,
				Headers:    msg.Headers,
				Body:       msg.Body,
			}
		}
	case models.TunnelMsgPong:
		if err := m.store.Heartbeat(ctx, s.id); err != nil {
			m.logger.Warn("heartbeat update failed", "session_id", s.id, "error", err)
		}
	default:
		m.logger.Warn("unexpected tunnel message", "session_id", s.id, "type", msg.Type)
	}
}

// pingLoop pings the client until the session context ends.
func (m *Manager) pingLoop(s *session) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			if err := m.send(s, &models.TunnelMessage{Type: models.TunnelMsgPing}); err != nil {
				return
			}
		}
	}
}

func (m *Manager) register(s *session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.id] = s
}

// unregister drops the live channel and flips the record to disconnected.
// Pending awaiters for this session are left to time out.
func (m *Manager) unregister(s *session) {
	m.mu.Lock()
	delete(m.sessions, s.id)
	m.mu.Unlock()

	s.cancel()
	_ = s.conn.Close(websocket.StatusNormalClosure, "")

	if err := m.store.MarkDisconnected(context.Background(), s.id); err != nil {
		m.logger.Warn("failed to mark tunnel disconnected", "session_id", s.id, "error", err)
	}
	m.logger.Info("tunnel disconnected", "session_id", s.id)
}

func (m *Manager) send(s *session, msg *models.TunnelMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	writeCtx, cancel := context.WithTimeout(s.ctx, m.writeTimeout)
	defer cancel()
	return s.conn.Write(writeCtx, websocket.MessageText, data)
}

func readMessage(ctx context.Context, conn *websocket.Conn) (*models.TunnelMessage, error) {
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
