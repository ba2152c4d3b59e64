package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mdm/backend/internal/domain/jobs"
	"github.com/mdm/backend/internal/domain/mdm"
	"github.com/mdm/backend/internal/domain/shared"
	"github.com/mdm/backend/internal/infrastructure/config"
)

const (
	defaultStreamHeartbeat  = 30 * time.Second
	defaultStreamBuffer     = 100
	defaultStreamMaxClients = 1000
)

// Named SSE events exposed to browser clients
const (
	StreamEventProductUpdated  = "product-updated"
	StreamEventProductLaunched = "product-launched"
	StreamEventJobComplete     = "JobComplete"
)

// StreamClient is a single connected SSE consumer
type StreamClient struct {
	ID       string
	UserID   string
	TenantID string
	Chan     chan StreamMessage
	Done     chan struct{}
}

// StreamMessage is one event written to the SSE stream
type StreamMessage struct {
	Event string
	Data  any
	ID    string
}

// EventStreamHandler fans domain events out to connected SSE clients. It
// implements shared.EventHandler and is subscribed to the in-process bus, so
// events reach clients only after the outbox processor has published them.
type EventStreamHandler struct {
	BaseHandler
	clients           sync.Map
	clientCount       int64
	countMu           sync.Mutex
	logger            *zap.Logger
	heartbeatInterval time.Duration
	clientBuffer      int
	maxClients        int64
	ctx               context.Context
	cancel            context.CancelFunc
}

// EventStreamOption configures the EventStreamHandler
type EventStreamOption func(*EventStreamHandler)

// WithStreamLogger sets the logger
func WithStreamLogger(logger *zap.Logger) EventStreamOption {
	return func(h *EventStreamHandler) {
		h.logger = logger
	}
}

// WithStreamMaxClients caps the number of concurrent connections
func WithStreamMaxClients(maxClients int64) EventStreamOption {
	return func(h *EventStreamHandler) {
		h.maxClients = maxClients
	}
}

// NewEventStreamHandler creates a new EventStreamHandler
func NewEventStreamHandler(cfg config.SSEConfig, opts ...EventStreamOption) *EventStreamHandler {
	ctx, cancel := context.WithCancel(context.Background())
	h := &EventStreamHandler{
		logger:            zap.NewNop(),
		heartbeatInterval: cfg.HeartbeatInterval,
		clientBuffer:      cfg.ClientBuffer,
		maxClients:        defaultStreamMaxClients,
		ctx:               ctx,
		cancel:            cancel,
	}
	if h.heartbeatInterval <= 0 {
		h.heartbeatInterval = defaultStreamHeartbeat
	}
	if h.clientBuffer <= 0 {
		h.clientBuffer = defaultStreamBuffer
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Stop disconnects all clients and stops accepting new ones
func (h *EventStreamHandler) Stop() {
	h.cancel()
}

// EventTypes implements shared.EventHandler
func (h *EventStreamHandler) EventTypes() []string {
	return []string{
		mdm.EventTypeProductUpdated,
		mdm.EventTypeProductStatusChanged,
		mdm.EventTypeProductLaunched,
		jobs.EventTypeJobCompleted,
	}
}

// Handle implements shared.EventHandler. Events are relayed to every client
// of the same tenant under the stream's named-event vocabulary.
func (h *EventStreamHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	name, ok := streamEventName(event.EventType())
	if !ok {
		return nil
	}

	msg := StreamMessage{
		Event: name,
		Data:  event,
		ID:    event.EventID().String(),
	}
	h.broadcast(event.TenantID().String(), msg)
	return nil
}

func streamEventName(eventType string) (string, bool) {
	switch eventType {
	case mdm.EventTypeProductUpdated, mdm.EventTypeProductStatusChanged:
		return StreamEventProductUpdated, true
	case mdm.EventTypeProductLaunched:
		return StreamEventProductLaunched, true
	case jobs.EventTypeJobCompleted:
		return StreamEventJobComplete, true
	default:
		return "", false
	}
}

// broadcast delivers a message to every client of the tenant. A client whose
// buffer is full is disconnected rather than allowed to stall the stream.
func (h *EventStreamHandler) broadcast(tenantID string, msg StreamMessage) {
	h.clients.Range(func(_, value any) bool {
		client, ok := value.(*StreamClient)
		if !ok || client.TenantID != tenantID {
			return true
		}
		select {
		case client.Chan <- msg:
		default:
			h.logger.Warn("dropping slow SSE client",
				zap.String("client_id", client.ID),
				zap.String("tenant_id", client.TenantID))
			h.removeClient(client)
		}
		return true
	})
}

func (h *EventStreamHandler) addClient(client *StreamClient) bool {
	h.countMu.Lock()
	defer h.countMu.Unlock()
	if h.clientCount >= h.maxClients {
		return false
	}
	h.clients.Store(client.ID, client)
	h.clientCount++
	return true
}

func (h *EventStreamHandler) removeClient(client *StreamClient) {
	h.countMu.Lock()
	defer h.countMu.Unlock()
	if _, loaded := h.clients.LoadAndDelete(client.ID); loaded {
		h.clientCount--
		close(client.Done)
	}
}

// ClientCount returns the number of connected clients
func (h *EventStreamHandler) ClientCount() int64 {
	h.countMu.Lock()
	defer h.countMu.Unlock()
	return h.clientCount
}

// Stream godoc
// @Summary      Subscribe to the server-sent-events stream
// @Description  Emits product-updated, product-launched and JobComplete
// @Description  events for the caller's tenant, with periodic heartbeats.
// @Tags         events
// @Produce      text/event-stream
// @Success      200 {string} string "SSE stream"
// @Failure      503 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /events/stream [get]
func (h *EventStreamHandler) Stream(c *gin.Context) {
	select {
	case <-h.ctx.Done():
		h.Error(c, http.StatusServiceUnavailable, "UNAVAILABLE", "Event stream is shutting down")
		return
	default:
	}

	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	userID := ""
	if id, err := getUserID(c); err == nil && id != uuid.Nil {
		userID = id.String()
	}

	client := &StreamClient{
		ID:       uuid.New().String(),
		UserID:   userID,
		TenantID: tenantID.String(),
		Chan:     make(chan StreamMessage, h.clientBuffer),
		Done:     make(chan struct{}),
	}

	if !h.addClient(client) {
		h.Error(c, http.StatusServiceUnavailable, "MAX_CONNECTIONS_REACHED", "Too many stream connections")
		return
	}
	defer h.removeClient(client)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	h.sendEvent(c, StreamMessage{
		Event: "connected",
		Data:  gin.H{"client_id": client.ID},
		ID:    client.ID,
	})
	c.Writer.Flush()

	h.logger.Debug("SSE client connected",
		zap.String("client_id", client.ID),
		zap.String("tenant_id", client.TenantID))

	heartbeat := time.NewTicker(h.heartbeatInterval)
	defer heartbeat.Stop()

	reqCtx := c.Request.Context()
	for {
		select {
		case <-reqCtx.Done():
			return
		case <-client.Done:
			return
		case <-h.ctx.Done():
			return
		case <-heartbeat.C:
			fmt.Fprint(c.Writer, ": heartbeat\n\n")
			c.Writer.Flush()
		case msg := <-client.Chan:
			h.sendEvent(c, msg)
			c.Writer.Flush()
		}
	}
}

func (h *EventStreamHandler) sendEvent(c *gin.Context, msg StreamMessage) {
	data, err := json.Marshal(msg.Data)
	if err != nil {
		h.logger.Error("failed to marshal SSE event", zap.Error(err))
		return
	}
	if msg.ID != "" {
		fmt.Fprintf(c.Writer, "id: %s\n", msg.ID)
	}
	fmt.Fprintf(c.Writer, "event: %s\n", msg.Event)
	fmt.Fprintf(c.Writer, "data: %s\n\n", data)
}
