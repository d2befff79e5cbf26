package websocket

import (
	"context"

	"smartfinance-ai-be/internal/pkg/logger"

	"github.com/gofiber/websocket/v2"
)

// ServeWs runs the connection until the peer goes away.
func ServeWs(streamer ChatStreamer, conn *websocket.Conn, log logger.ILogger) {
	ctx, cancel := context.WithCancel(context.Background())
	client := &Client{
		Conn:     conn,
		Streamer: streamer,
		Logger:   log,
		Send:     make(chan []byte, 256),
		ctx:      ctx,
		cancel:   cancel,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		client.writePump()
	}()
	client.readPump() // Run readPump in current goroutine (handler)
	<-done
}
