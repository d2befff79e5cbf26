package handler

import (
	"smartfinance-ai-be/internal/pkg/logger"
	internalWS "smartfinance-ai-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// ChatStreamHandler exposes the streaming chat over a websocket
type ChatStreamHandler struct {
	streamer internalWS.ChatStreamer
	logger   logger.ILogger
}

func NewChatStreamHandler(streamer internalWS.ChatStreamer, log logger.ILogger) *ChatStreamHandler {
	return &ChatStreamHandler{
		streamer: streamer,
		logger:   log,
	}
}

func (h *ChatStreamHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/chat/ws", h.ServeWs)
}

// ServeWs upgrades the request and serves chat frames until the peer leaves.
func (h *ChatStreamHandler) ServeWs(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	return websocket.New(func(conn *websocket.Conn) {
		h.logger.Info("ChatStreamHandler", "Starting WebSocket session", map[string]interface{}{"remote": conn.RemoteAddr().String()})
		internalWS.ServeWs(h.streamer, conn, h.logger)
		h.logger.Info("ChatStreamHandler", "WebSocket session ended", nil)
	})(c)
}
