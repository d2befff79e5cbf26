package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"smartfinance-ai-be/internal/pkg/logger"
	"smartfinance-ai-be/internal/pkg/metrics"
	"smartfinance-ai-be/pkg/ai/router"
	"smartfinance-ai-be/pkg/llm"
)

type Stage int

const (
	StageStart Stage = iota
	StageRouted
	StageAnswered
)

func (s Stage) String() string {
	switch s {
	case StageStart:
		return "start"
	case StageRouted:
		return "routed"
	case StageAnswered:
		return "answered"
	default:
		return "unknown"
	}
}

// State is created fresh for every request and only advanced by Run
type State struct {
	Messages      []llm.Message
	Responder     router.ResponderID
	SessionID     string
	UserProfile   string
	FinalResponse string

	stage Stage
}

func (s *State) Stage() Stage {
	return s.stage
}

// latestUserMessage is the question the stages act on
func (s *State) latestUserMessage() string {
	for i := len(s.Messages) - 1; i >= 0; i-- {
		if s.Messages[i].Role == llm.RoleUser {
			return s.Messages[i].Content
		}
	}
	return ""
}

// Classifier picks a responder
type Classifier interface {
	Route(ctx context.Context, question string) (router.ResponderID, error)
}

// Answerer produces the final answer for a question
type Answerer interface {
	Answer(ctx context.Context, query, sessionID, userProfile string) (string, error)
}

// Result is what callers outside the core see
type Result struct {
	Answer    string
	Agent     string
	SessionID string
}

// Graph is the two stage dispatch: route, then answer with exactly one
// responder. There are no cycles and no other branches.
type Graph struct {
	classifier Classifier
	responders map[router.ResponderID]Answerer
	logger     logger.ILogger
	metrics    *metrics.Metrics
}

func NewGraph(
	classifier Classifier,
	responders map[router.ResponderID]Answerer,
	log logger.ILogger,
	m *metrics.Metrics,
) *Graph {
	return &Graph{
		classifier: classifier,
		responders: responders,
		logger:     log,
		metrics:    m,
	}
}

// Run drives a fresh state from START to ANSWERED and reports any failure
func (g *Graph) Run(ctx context.Context, message, sessionID, userProfile string) (*State, error) {
	state := &State{
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: message}},
		SessionID:   sessionID,
		UserProfile: userProfile,
		stage:       StageStart,
	}

	for state.stage != StageAnswered {
		switch state.stage {
		case StageStart:
			id, err := g.classifier.Route(ctx, state.latestUserMessage())
			if err != nil {
				g.recordFailure("route")
				return state, err
			}
			state.Responder = id
			state.stage = StageRouted

			if g.metrics != nil {
				g.metrics.RouterDecisions.WithLabelValues(id.Label()).Inc()
			}

		case StageRouted:
			responder, ok := g.responders[state.Responder]
			if !ok {
				g.recordFailure("answer")
				return state, fmt.Errorf("%w: %s", router.ErrUnknownResponder, state.Responder)
			}

			start := time.Now()
			answer, err := responder.Answer(ctx, state.latestUserMessage(), state.SessionID, state.UserProfile)
			if g.metrics != nil {
				g.metrics.ResponderLatency.WithLabelValues(state.Responder.Label()).Observe(time.Since(start).Seconds())
			}
			if err != nil {
				g.recordFailure("answer")
				return state, err
			}

			state.Messages = append(state.Messages, llm.Message{Role: llm.RoleAssistant, Content: answer})
			state.FinalResponse = answer
			state.stage = StageAnswered

		default:
			return state, fmt.Errorf("invalid stage %d", state.stage)
		}
	}

	return state, nil
}

// ProcessMessage never fails: errors and panics come back as an apology
// with the error agent label.
func (g *Graph) ProcessMessage(ctx context.Context, message, sessionID, userProfile string) (result Result) {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	defer func() {
		if r := recover(); r != nil {
			g.recordFailure("panic")
			g.logger.Error("Pipeline", "Recovered panic while processing message", map[string]interface{}{
				"error":      fmt.Sprint(r),
				"session_id": sessionID,
			})
			result = errorResult(fmt.Errorf("%v", r), sessionID)
		}
	}()

	g.logger.Info("Pipeline", "Processing message", map[string]interface{}{
		"session_id": sessionID,
		"message":    truncate(message, 100),
	})

	state, err := g.Run(ctx, message, sessionID, userProfile)
	if err != nil {
		g.logger.Error("Pipeline", "Dispatch failed", map[string]interface{}{
			"error":      err.Error(),
			"session_id": sessionID,
		})
		return errorResult(err, sessionID)
	}

	g.logger.Info("Pipeline", "Dispatch complete", map[string]interface{}{
		"session_id":      sessionID,
		"agent":           state.Responder.Label(),
		"response_length": len(state.FinalResponse),
	})

	return Result{
		Answer:    state.FinalResponse,
		Agent:     state.Responder.Label(),
		SessionID: sessionID,
	}
}

func errorResult(err error, sessionID string) Result {
	return Result{
		Answer:    fmt.Sprintf("I apologize, but I encountered an error processing your request: %v", err),
		Agent:     router.LabelError,
		SessionID: sessionID,
	}
}

func (g *Graph) recordFailure(stage string) {
	if g.metrics != nil {
		g.metrics.DispatchFailures.WithLabelValues(stage).Inc()
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
