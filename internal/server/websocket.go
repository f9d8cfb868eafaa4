package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/kode4food/timebox"

	"github.com/advier-web/parkmanager-tool-new-sub001/internal/wizard"
	"github.com/advier-web/parkmanager-tool-new-sub001/pkg/api"
	"github.com/advier-web/parkmanager-tool-new-sub001/pkg/events"
	"github.com/advier-web/parkmanager-tool-new-sub001/pkg/log"
)

// Client represents a WebSocket connection watching one session. It
// consumes the session's events from the timebox EventHub and pushes the
// rehydrated state after each one
type Client struct {
	server   *Server
	conn     *websocket.Conn
	consumer *timebox.Consumer
	id       api.SessionID
	once     sync.Once
}

const (
	writeWait          = 10 * time.Second
	pongWait           = 60 * time.Second
	pingPeriod         = (pongWait * 9) / 10
	maxMessageSize     = 512
	wsBufferSize       = 1024
	incomingBufferSize = 16

	EventTypeState   = "state"
	EventTypeRefresh = "refresh"
)

func (s *Server) upgrader() *websocket.Upgrader {
	return &websocket.Upgrader{
		ReadBufferSize:  wsBufferSize,
		WriteBufferSize: wsBufferSize,
		CheckOrigin:     s.checkOrigin,
	}
}

func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || s.config.AllowsAllOrigins() {
		return true
	}
	return slices.Contains(s.config.AllowedOrigins, origin)
}

func (s *Server) handleWebSocket(c *gin.Context) {
	id, ok := pathID[api.SessionID](c, "sessionID")
	if !ok {
		return
	}

	// The consumer exists before the read, so every later event reaches it
	consumer := s.hub.NewAggregateConsumer(events.SessionKey(id))
	st, err := s.sessions.Get(c.Request.Context(), id)
	if err != nil {
		consumer.Close()
		sessionError(c, id, err)
		return
	}

	conn, err := s.upgrader().Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		consumer.Close()
		slog.Error("WebSocket upgrade failed",
			log.SessionID(id),
			log.Error(err))
		return
	}

	client := &Client{
		server:   s,
		conn:     conn,
		consumer: consumer,
		id:       id,
	}
	s.registerWebSocket(client)
	go client.run(st)
}

// Close terminates the connection and its event consumer
func (c *Client) Close() {
	c.once.Do(func() {
		c.consumer.Close()
		_ = c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
			time.Now().Add(writeWait),
		)
		_ = c.conn.Close()
	})
}

func (c *Client) run(initial *api.WizardState) {
	defer func() {
		c.server.unregisterWebSocket(c)
		c.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	incoming := make(chan []byte, incomingBufferSize)
	go c.readMessages(incoming)

	if !c.sendState(initial) {
		return
	}

	for {
		select {
		case message, ok := <-incoming:
			if !ok {
				return
			}
			if !c.handleRequest(message) {
				return
			}

		case ev, ok := <-c.consumer.Receive():
			if !ok {
				return
			}
			if !events.IsSessionEvent(ev) {
				continue
			}
			if !c.sendCurrentState() {
				return
			}

		case <-ticker.C:
			if !c.sendPing() {
				return
			}
		}
	}
}

func (c *Client) readMessages(incoming chan []byte) {
	defer close(incoming)
	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		incoming <- message
	}
}

func (c *Client) handleRequest(message []byte) bool {
	var req api.SubscribeRequest
	if err := json.Unmarshal(message, &req); err != nil {
		slog.Error("Failed to parse WebSocket message",
			log.SessionID(c.id),
			log.Error(err))
		return true
	}
	if req.Type != EventTypeRefresh {
		return true
	}
	return c.sendCurrentState()
}

// sendCurrentState rehydrates the session and pushes it. A failed read is
// logged and keeps the connection open
func (c *Client) sendCurrentState() bool {
	ctx, cancel := context.WithTimeout(context.Background(), writeWait)
	defer cancel()
	st, err := c.server.sessions.Get(ctx, c.id)
	if err != nil {
		slog.Error("Failed to read session",
			log.SessionID(c.id),
			log.Error(err))
		return true
	}
	return c.sendState(st)
}

func (c *Client) sendState(st *api.WizardState) bool {
	ev := api.SessionEvent{
		Type:      EventTypeState,
		State:     st,
		Progress:  wizard.Progress(st),
		Timestamp: time.Now().UnixMilli(),
	}
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := c.conn.WriteJSON(ev); err != nil {
		slog.Error("WebSocket write failed",
			log.SessionID(c.id),
			log.Error(err))
		return false
	}
	return true
}

func (c *Client) sendPing() bool {
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	err := c.conn.WriteMessage(websocket.PingMessage, nil)
	return err == nil
}
