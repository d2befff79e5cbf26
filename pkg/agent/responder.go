package agent

import (
	"context"
	"fmt"

	"smartfinance-ai-be/pkg/llm"
	"smartfinance-ai-be/pkg/rag/strategy"
)

// Config describes one specialised responder
type Config struct {
	Name           string
	Preamble       string
	ContextHeading string
	Directive      string
	DefaultProfile string
	Options        []llm.Option
}

// Responder turns a question plus assembled context into one generation call
type Responder struct {
	cfg      Config
	llm      llm.LLMProvider
	strategy strategy.Strategy
}

func NewResponder(cfg Config, provider llm.LLMProvider, s strategy.Strategy) *Responder {
	return &Responder{
		cfg:      cfg,
		llm:      provider,
		strategy: s,
	}
}

func (r *Responder) Name() string {
	return r.cfg.Name
}

func (r *Responder) Strategy() strategy.Strategy {
	return r.strategy
}

// Answer assembles context and asks the model once. Errors from retrieval or
// generation are returned as is; the caller decides what the user sees.
func (r *Responder) Answer(ctx context.Context, query, sessionID, userProfile string) (string, error) {
	profile := userProfile
	if profile == "" {
		profile = r.cfg.DefaultProfile
	}

	assembled, err := r.strategy.ProduceContext(ctx, query, sessionID)
	if err != nil {
		return "", err
	}

	messages := r.BuildMessages(query, assembled, profile)

	return r.llm.Chat(ctx, messages, r.cfg.Options...)
}

// BuildMessages lays out the system preamble and the single user turn
func (r *Responder) BuildMessages(query, assembled, profile string) []llm.Message {
	content := fmt.Sprintf("%s:\n%s\n\n%s\n\nUser Question: %s\n\n%s",
		r.cfg.ContextHeading,
		assembled,
		profile,
		query,
		r.cfg.Directive,
	)

	return []llm.Message{
		{Role: llm.RoleSystem, Content: r.cfg.Preamble},
		{Role: llm.RoleUser, Content: content},
	}
}
