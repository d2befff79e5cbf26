package router

import (
	"context"
	"fmt"

	"smartfinance-ai-be/internal/constant"
	"smartfinance-ai-be/internal/pkg/logger"
	"smartfinance-ai-be/pkg/llm"
)

const (
	routerTemperature = 0.1
	routerMaxTokens   = 200
)

// Router picks the responder for a question with one classification call
type Router struct {
	llm    llm.LLMProvider
	model  string
	logger logger.ILogger
}

func NewRouter(provider llm.LLMProvider, model string, log logger.ILogger) *Router {
	return &Router{
		llm:    provider,
		model:  model,
		logger: log,
	}
}

// Route never fails on an ambiguous answer, only when the call itself fails
func (r *Router) Route(ctx context.Context, question string) (ResponderID, error) {
	opts := []llm.Option{
		llm.WithTemperature(routerTemperature),
		llm.WithMaxTokens(routerMaxTokens),
	}
	if r.model != "" {
		opts = append(opts, llm.WithModel(r.model))
	}

	raw, err := r.llm.Chat(ctx, []llm.Message{
		{Role: llm.RoleUser, Content: BuildPrompt(question)},
	}, opts...)
	if err != nil {
		r.logger.Error("Router", "Classification call failed", map[string]interface{}{
			"error":    err.Error(),
			"provider": r.llm.Name(),
		})
		return "", err
	}

	id := ParseDecision(raw)
	r.logger.Info("Router", "Routing decision", map[string]interface{}{
		"agent":    id.Label(),
		"raw":      truncateLog(raw, 50),
		"question": truncateLog(question, 50),
	})

	return id, nil
}

func BuildPrompt(question string) string {
	return fmt.Sprintf(constant.RoutingPrompt, question)
}

// truncateLog truncates string for logging
func truncateLog(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
