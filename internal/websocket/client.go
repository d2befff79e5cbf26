package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"smartfinance-ai-be/internal/dto"
	"smartfinance-ai-be/internal/pkg/logger"
	"smartfinance-ai-be/pkg/ai/stream"

	"github.com/gofiber/websocket/v2"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 16 * 1024
)

var errInvalidFrame = errors.New("invalid chat request")

// ChatStreamer produces and paces the events for one question
type ChatStreamer interface {
	Stream(ctx context.Context, req *dto.ChatRequest) (string, []stream.Event)
	Emit(ctx context.Context, events []stream.Event, send func(stream.Event) error) error
}

// Client serves one websocket connection. Each inbound text frame is a
// chat request, each outbound frame one streaming event.
type Client struct {
	Conn     *websocket.Conn
	Streamer ChatStreamer
	Logger   logger.ILogger

	// Buffered channel of outbound messages.
	Send chan []byte

	ctx    context.Context
	cancel context.CancelFunc
}

// readPump handles requests one at a time and owns the Send channel.
func (c *Client) readPump() {
	defer func() {
		c.cancel()
		close(c.Send)
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.Logger.Warn("WebSocket", "Unexpected close", map[string]interface{}{"error": err.Error()})
			}
			return
		}

		if err := c.handle(data); err != nil {
			return
		}
		// a long generation must not trip the idle deadline
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	}
}

func (c *Client) handle(data []byte) error {
	var req dto.ChatRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return c.enqueue(stream.ErrorEvent(errInvalidFrame))
	}
	if err := req.Normalize(); err != nil {
		return c.enqueue(stream.ErrorEvent(err))
	}

	sessionID, events := c.Streamer.Stream(c.ctx, &req)
	c.Logger.Info("WebSocket", "Streaming answer", map[string]interface{}{
		"session_id": sessionID,
		"events":     len(events),
	})

	return c.Streamer.Emit(c.ctx, events, c.enqueue)
}

func (c *Client) enqueue(ev stream.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	select {
	case c.Send <- payload:
		return nil
	case <-c.ctx.Done():
		return c.ctx.Err()
	}
}

// writePump pumps messages from Send to the websocket connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.cancel()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			// events are framed one per message so clients can parse each
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				c.Logger.Warn("WebSocket", "Write failed", map[string]interface{}{"error": err.Error()})
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
