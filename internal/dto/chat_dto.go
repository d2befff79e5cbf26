package dto

import (
	"errors"
	"strings"
	"time"
)

var ErrEmptyMessage = errors.New("message cannot be empty")

type ChatRequest struct {
	Message     string `json:"message" validate:"required"`
	SessionID   string `json:"session_id,omitempty" validate:"max=128"`
	UserID      string `json:"user_id,omitempty"` // accepted, not used for dispatch
	UserContext string `json:"user_context,omitempty"`
}

// Normalize trims the message and rejects requests with nothing left to route
func (r *ChatRequest) Normalize() error {
	r.Message = strings.TrimSpace(r.Message)
	r.SessionID = strings.TrimSpace(r.SessionID)
	if r.Message == "" {
		return ErrEmptyMessage
	}
	return nil
}

type ChatResponse struct {
	Message   string    `json:"message"`
	AgentUsed string    `json:"agent_used"`
	SessionID string    `json:"session_id"`
	Timestamp time.Time `json:"timestamp"`
}

type ClearSessionCacheResponse struct {
	SessionID string `json:"session_id"`
	Cleared   bool   `json:"cleared"`
}

// PublishChatAnsweredEvent is the payload sent on the event bus after a
// synchronous answer
type PublishChatAnsweredEvent struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id,omitempty"`
	Agent     string `json:"agent"`
	Length    int    `json:"response_length"`
	Streamed  bool   `json:"streamed"`
}
