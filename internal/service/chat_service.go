package service

import (
	"context"
	"strings"
	"time"

	"smartfinance-ai-be/internal/dto"
	"smartfinance-ai-be/internal/pkg/logger"
	"smartfinance-ai-be/internal/pkg/metrics"
	"smartfinance-ai-be/pkg/ai/pipeline"
	"smartfinance-ai-be/pkg/ai/stream"
	"smartfinance-ai-be/pkg/worker"

	"github.com/google/uuid"
)

// Dispatcher is the routing core the chat service drives
type Dispatcher interface {
	Run(ctx context.Context, message, sessionID, userProfile string) (*pipeline.State, error)
	ProcessMessage(ctx context.Context, message, sessionID, userProfile string) pipeline.Result
}

// SessionCacheClearer drops the passages cached for a session
type SessionCacheClearer interface {
	ClearCache(ctx context.Context, sessionID string) error
}

type IChatService interface {
	Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
	Stream(ctx context.Context, req *dto.ChatRequest) (string, []stream.Event)
	Emit(ctx context.Context, events []stream.Event, send func(stream.Event) error) error
	ClearSessionCache(ctx context.Context, sessionID string) error
}

type chatService struct {
	dispatcher  Dispatcher
	pool        *worker.Pool
	cache       SessionCacheClearer
	publisher   *EventPublisher
	metrics     *metrics.Metrics
	logger      logger.ILogger
	streamDelay time.Duration
}

func NewChatService(
	dispatcher Dispatcher,
	pool *worker.Pool,
	cache SessionCacheClearer,
	publisher *EventPublisher,
	m *metrics.Metrics,
	log logger.ILogger,
	streamDelay time.Duration,
) IChatService {
	return &chatService{
		dispatcher:  dispatcher,
		pool:        pool,
		cache:       cache,
		publisher:   publisher,
		metrics:     m,
		logger:      log,
		streamDelay: streamDelay,
	}
}

// Chat answers in one response. Dispatch failures come back inside the
// response with the error agent label; the only error returned is the
// caller giving up while waiting for a worker.
func (s *chatService) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	if err := req.Normalize(); err != nil {
		return nil, err
	}

	var result pipeline.Result
	err := s.pool.Do(ctx, func(ctx context.Context) error {
		result = s.dispatcher.ProcessMessage(ctx, req.Message, req.SessionID, req.UserContext)
		return nil
	})
	if err != nil {
		s.logger.Warn("CHAT", "Request abandoned before dispatch", map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	s.publisher.PublishChatAnswered(ctx, dto.PublishChatAnsweredEvent{
		SessionID: result.SessionID,
		UserID:    req.UserID,
		Agent:     result.Agent,
		Length:    len(result.Answer),
	})

	return &dto.ChatResponse{
		Message:   result.Answer,
		AgentUsed: result.Agent,
		SessionID: result.SessionID,
		Timestamp: time.Now().UTC(),
	}, nil
}

// Stream runs the dispatch to completion and returns the events to send.
// A failure anywhere yields exactly one terminal error event.
func (s *chatService) Stream(ctx context.Context, req *dto.ChatRequest) (string, []stream.Event) {
	sessionID := strings.TrimSpace(req.SessionID)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	var state *pipeline.State
	err := s.pool.Do(ctx, func(ctx context.Context) error {
		var runErr error
		state, runErr = s.dispatcher.Run(ctx, strings.TrimSpace(req.Message), sessionID, req.UserContext)
		return runErr
	})
	if err != nil {
		s.logger.Error("CHAT", "Streaming dispatch failed", map[string]interface{}{
			"error":      err.Error(),
			"session_id": sessionID,
		})
		return sessionID, []stream.Event{stream.ErrorEvent(err)}
	}

	agent := state.Responder.Label()
	s.publisher.PublishChatAnswered(ctx, dto.PublishChatAnsweredEvent{
		SessionID: sessionID,
		UserID:    req.UserID,
		Agent:     agent,
		Length:    len(state.FinalResponse),
		Streamed:  true,
	})

	return sessionID, stream.Chunk(state.FinalResponse, agent)
}

// Emit writes events with the configured pause between chunks
func (s *chatService) Emit(ctx context.Context, events []stream.Event, send func(stream.Event) error) error {
	return stream.Emit(ctx, events, s.streamDelay, func(ev stream.Event) error {
		if err := send(ev); err != nil {
			return err
		}
		s.metrics.StreamEvents.WithLabelValues(ev.Agent).Inc()
		return nil
	})
}

func (s *chatService) ClearSessionCache(ctx context.Context, sessionID string) error {
	if err := s.cache.ClearCache(ctx, sessionID); err != nil {
		return err
	}
	s.logger.Info("CHAT", "Cleared session cache", map[string]interface{}{"session_id": sessionID})
	return nil
}
