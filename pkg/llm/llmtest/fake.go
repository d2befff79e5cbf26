// Package llmtest provides a scriptable LLMProvider for tests.
package llmtest

import (
	"context"
	"sync"

	"smartfinance-ai-be/pkg/llm"
)

type Call struct {
	History []llm.Message
	Options llm.Options
}

// Fake records every call and answers through Reply. A nil Reply echoes
// "ok".
type Fake struct {
	Reply func(history []llm.Message) (string, error)

	mu    sync.Mutex
	calls []Call
}

var _ llm.LLMProvider = &Fake{}

// Returning answers every call with the same text
func Returning(text string) *Fake {
	return &Fake{Reply: func([]llm.Message) (string, error) { return text, nil }}
}

// Failing answers every call with err
func Failing(err error) *Fake {
	return &Fake{Reply: func([]llm.Message) (string, error) { return "", err }}
}

func (f *Fake) Name() string {
	return "fake"
}

func (f *Fake) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, Call{
		History: append([]llm.Message(nil), history...),
		Options: llm.NewOptions(llm.Options{}, opts...),
	})
	f.mu.Unlock()

	if f.Reply == nil {
		return "ok", nil
	}
	return f.Reply(history)
}

func (f *Fake) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}}, opts...)
}

func (f *Fake) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}
