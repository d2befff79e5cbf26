package mock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartfinance-ai-be/pkg/llm"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     Category
	}{
		{name: "billing keyword", question: "Why was I charged a fee?", want: CategoryBilling},
		{name: "billing wins tie with policy", question: "What is my account balance?", want: CategoryBilling},
		{name: "technical keyword", question: "I cannot reset my password", want: CategoryTechnical},
		{name: "policy keywords", question: "What is your privacy policy?", want: CategoryPolicy},
		{name: "greeting", question: "Hello there", want: CategoryGeneral},
		{name: "greeting beats keywords", question: "Hi, what is my balance?", want: CategoryGeneral},
		{name: "hi inside word is not a greeting", question: "Is this fee refundable?", want: CategoryBilling},
		{name: "no keywords", question: "Tell me something nice", want: CategoryGeneral},
		{name: "case insensitive", question: "LOGIN FAILS", want: CategoryTechnical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.question))
		})
	}
}

func TestMockProvider_Chat(t *testing.T) {
	p := NewMockProvider()
	ctx := context.Background()

	tests := []struct {
		name   string
		prompt string
		want   string
	}{
		{
			name:   "routing prompt billing",
			prompt: "Pick an agent.\n\nUSER QUESTION: What is my account balance?\n\nRespond with ONLY the agent name (billing_agent, technical_agent, or policy_agent).",
			want:   "billing_agent",
		},
		{
			name:   "routing prompt technical",
			prompt: "USER QUESTION: The app shows an error\n\nRespond with ONLY the agent name (billing_agent, technical_agent, or policy_agent).",
			want:   "technical_agent",
		},
		{
			name:   "routing prompt policy",
			prompt: "USER QUESTION: Explain the privacy policy\n\nRespond with ONLY the agent name (billing_agent, technical_agent, or policy_agent).",
			want:   "policy_agent",
		},
		{
			name:   "routing prompt greeting has no agent token",
			prompt: "USER QUESTION: hello\n\nRespond with ONLY the agent name (billing_agent, technical_agent, or policy_agent).",
			want:   "general",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Generate(ctx, tt.prompt)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMockProvider_AnswerIsStable(t *testing.T) {
	p := NewMockProvider()
	history := []llm.Message{
		{Role: llm.RoleSystem, Content: "You are a billing specialist."},
		{Role: llm.RoleUser, Content: "Context:\nsome passages\n\nprofile\n\nUser Question: What fees do you charge?\n\nAnswer briefly."},
	}

	first, err := p.Chat(context.Background(), history)
	require.NoError(t, err)
	second, err := p.Chat(context.Background(), history)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, responses[CategoryBilling], first)
}

func TestMockProvider_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMockProvider().Generate(ctx, "anything")
	assert.ErrorIs(t, err, context.Canceled)
}
