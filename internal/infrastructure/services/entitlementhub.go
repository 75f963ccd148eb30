// Package services provides infrastructure services.
package services

import (
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/doramashorts/backend/internal/domain/entitlement"
	"github.com/doramashorts/backend/internal/shared/biztime"
	"github.com/doramashorts/backend/internal/shared/logger"
)

// EntitlementEventType is the SSE event name sent to browsers.
const EntitlementEventType = "entitlement:changed"

// SSEConn is one open entitlement stream of a signed-in user.
type SSEConn struct {
	ID          string
	UserID      uint
	Send        chan []byte
	ConnectedAt time.Time
	closed      atomic.Bool
}

// TrySend returns false if the channel is closed or full.
func (c *SSEConn) TrySend(data []byte) (sent bool) {
	if c.closed.Load() {
		return false
	}

	defer func() {
		if r := recover(); r != nil {
			sent = false
		}
	}()

	select {
	case c.Send <- data:
		return true
	default:
		return false
	}
}

func (c *SSEConn) Close() {
	if c.closed.CompareAndSwap(false, true) {
		close(c.Send)
	}
}

// EntitlementHub routes entitlement change notices to the owning user's open
// streams on this instance.
type EntitlementHub struct {
	conns   map[string]*SSEConn
	byUser  map[uint]map[string]*SSEConn
	connsMu sync.RWMutex

	maxConnsPerUser int
	shutdown        atomic.Bool

	logger logger.Interface
}

type EntitlementHubConfig struct {
	MaxConnsPerUser int // default: 5
}

func NewEntitlementHub(log logger.Interface, config *EntitlementHubConfig) *EntitlementHub {
	maxConns := 5
	if config != nil && config.MaxConnsPerUser > 0 {
		maxConns = config.MaxConnsPerUser
	}

	return &EntitlementHub{
		conns:           make(map[string]*SSEConn),
		byUser:          make(map[uint]map[string]*SSEConn),
		maxConnsPerUser: maxConns,
		logger:          log,
	}
}

// Shutdown closes every stream. Safe to call multiple times.
func (h *EntitlementHub) Shutdown() {
	if !h.shutdown.CompareAndSwap(false, true) {
		return
	}

	h.connsMu.Lock()
	for _, conn := range h.conns {
		conn.Close()
	}
	h.conns = make(map[string]*SSEConn)
	h.byUser = make(map[uint]map[string]*SSEConn)
	h.connsMu.Unlock()
}

// RegisterConn returns nil when the user is at the connection limit or the
// hub is shut down.
func (h *EntitlementHub) RegisterConn(connID string, userID uint) *SSEConn {
	if h.shutdown.Load() {
		return nil
	}

	conn := &SSEConn{
		ID:          connID,
		UserID:      userID,
		Send:        make(chan []byte, 16),
		ConnectedAt: biztime.NowUTC(),
	}

	h.connsMu.Lock()
	defer h.connsMu.Unlock()

	// Shutdown may have cleared the maps while we waited for the lock.
	if h.shutdown.Load() {
		return nil
	}

	userConns := h.byUser[userID]
	if len(userConns) >= h.maxConnsPerUser {
		h.logger.Warnw("SSE connection limit exceeded",
			"user_id", userID,
			"limit", h.maxConnsPerUser,
		)
		return nil
	}
	if userConns == nil {
		userConns = make(map[string]*SSEConn)
		h.byUser[userID] = userConns
	}

	h.conns[connID] = conn
	userConns[connID] = conn

	h.logger.Debugw("SSE connection registered", "conn_id", connID, "user_id", userID)
	return conn
}

func (h *EntitlementHub) UnregisterConn(connID string) {
	h.connsMu.Lock()
	conn, ok := h.conns[connID]
	if ok {
		delete(h.conns, connID)
		if userConns := h.byUser[conn.UserID]; userConns != nil {
			delete(userConns, connID)
			if len(userConns) == 0 {
				delete(h.byUser, conn.UserID)
			}
		}
	}
	h.connsMu.Unlock()

	if ok {
		conn.Close()
		h.logger.Debugw("SSE connection unregistered", "conn_id", connID, "user_id", conn.UserID)
	}
}

// Broadcast delivers event to the streams of event.UserID only.
func (h *EntitlementHub) Broadcast(event entitlement.ChangedEvent) {
	data, err := FormatSSEEvent(EntitlementEventType, event)
	if err != nil {
		h.logger.Errorw("failed to format SSE event", "user_id", event.UserID, "error", err)
		return
	}

	h.connsMu.RLock()
	defer h.connsMu.RUnlock()

	for _, conn := range h.byUser[event.UserID] {
		if !conn.TrySend(data) {
			h.logger.Warnw("failed to send SSE event, channel full",
				"conn_id", conn.ID,
				"user_id", event.UserID,
			)
		}
	}
}

func (h *EntitlementHub) ConnCount() int {
	h.connsMu.RLock()
	defer h.connsMu.RUnlock()
	return len(h.conns)
}

// FormatSSEEvent renders "event: <name>\ndata: <json>\n\n".
func FormatSSEEvent(name string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []byte(fmt.Sprintf("event: %s\ndata: %s\n\n", name, data)), nil
}
