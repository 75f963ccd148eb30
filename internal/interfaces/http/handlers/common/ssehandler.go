// Package common provides shared HTTP handler utilities.
package common

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/doramashorts/backend/internal/infrastructure/services"
	"github.com/doramashorts/backend/internal/shared/logger"
)

const (
	// SSEKeepaliveInterval is the interval for sending keepalive messages.
	SSEKeepaliveInterval = 30 * time.Second

	SSEContentType = "text/event-stream"
)

// ConnRegistry is the part of the hub an SSE handler drives.
type ConnRegistry interface {
	RegisterConn(connID string, userID uint) *services.SSEConn
	UnregisterConn(connID string)
}

// SSEHandlerBase provides the stream plumbing shared by SSE endpoints.
type SSEHandlerBase struct {
	registry          ConnRegistry
	keepaliveInterval time.Duration
	logger            logger.Interface
}

func NewSSEHandlerBase(registry ConnRegistry, log logger.Interface) *SSEHandlerBase {
	return &SSEHandlerBase{
		registry:          registry,
		keepaliveInterval: SSEKeepaliveInterval,
		logger:            log,
	}
}

// SetKeepaliveInterval overrides the keepalive period.
func (h *SSEHandlerBase) SetKeepaliveInterval(d time.Duration) {
	if d > 0 {
		h.keepaliveInterval = d
	}
}

// SetupSSEResponse sets common SSE response headers.
// CORS headers are handled by the global CORS middleware.
func (h *SSEHandlerBase) SetupSSEResponse(c *gin.Context) {
	c.Header("Content-Type", SSEContentType)
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no") // Disable Nginx buffering
}

func (h *SSEHandlerBase) GenerateConnID() string {
	return uuid.New().String()
}

// Register opens a hub connection for userID. nil means the per-user limit
// was reached or the hub is shutting down.
func (h *SSEHandlerBase) Register(userID uint) (string, *services.SSEConn) {
	connID := h.GenerateConnID()
	return connID, h.registry.RegisterConn(connID, userID)
}

// SendInitialConnection writes the opening comment and optional first event.
func (h *SSEHandlerBase) SendInitialConnection(c *gin.Context, initial []byte) bool {
	if _, err := c.Writer.WriteString(": connected\n\n"); err != nil {
		return false
	}
	if len(initial) > 0 {
		if _, err := c.Writer.Write(initial); err != nil {
			return false
		}
	}
	c.Writer.Flush()
	return true
}

// RunEventLoop blocks until the client disconnects, the hub closes the
// connection or a write fails.
func (h *SSEHandlerBase) RunEventLoop(c *gin.Context, conn *services.SSEConn, connID string, userID uint) {
	keepAliveTicker := time.NewTicker(h.keepaliveInterval)
	defer keepAliveTicker.Stop()
	defer h.registry.UnregisterConn(connID)

	ctx := c.Request.Context()

	for {
		select {
		case <-ctx.Done():
			h.logger.Debugw("entitlement stream closed by client",
				"conn_id", connID,
				"user_id", userID,
			)
			return

		case data, ok := <-conn.Send:
			if !ok {
				return
			}
			if _, err := c.Writer.Write(data); err != nil {
				h.logger.Warnw("entitlement stream write error",
					"conn_id", connID,
					"error", err,
				)
				return
			}
			c.Writer.Flush()

		case <-keepAliveTicker.C:
			if _, err := c.Writer.WriteString(": keepalive\n\n"); err != nil {
				h.logger.Warnw("entitlement stream keepalive error",
					"conn_id", connID,
					"error", err,
				)
				return
			}
			c.Writer.Flush()
		}
	}
}

// HandleInitialWriteError releases a connection whose first write failed.
func (h *SSEHandlerBase) HandleInitialWriteError(connID string) {
	h.registry.UnregisterConn(connID)
	h.logger.Warnw("SSE initial write error", "conn_id", connID)
}
