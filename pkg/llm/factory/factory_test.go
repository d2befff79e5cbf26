package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		requested string
		override  string
		creds     Credentials
		want      Selection
	}{
		{
			name:  "no keys falls back to mock",
			creds: Credentials{},
			want:  Selection{Router: ProviderMock, Responder: ProviderMock},
		},
		{
			name:      "both keys route on anthropic answer on openai",
			requested: ProviderAuto,
			creds:     Credentials{OpenAIKey: "sk", AnthropicKey: "ak"},
			want:      Selection{Router: ProviderAnthropic, Responder: ProviderOpenAI},
		},
		{
			name:  "anthropic only",
			creds: Credentials{AnthropicKey: "ak"},
			want:  Selection{Router: ProviderAnthropic, Responder: ProviderAnthropic},
		},
		{
			name:  "openai only",
			creds: Credentials{OpenAIKey: "sk"},
			want:  Selection{Router: ProviderOpenAI, Responder: ProviderOpenAI},
		},
		{
			name:      "explicit provider",
			requested: ProviderOllama,
			want:      Selection{Router: ProviderOllama, Responder: ProviderOllama},
		},
		{
			name:      "router override",
			requested: ProviderOpenAI,
			override:  ProviderMock,
			creds:     Credentials{OpenAIKey: "sk"},
			want:      Selection{Router: ProviderMock, Responder: ProviderOpenAI},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.requested, tt.override, tt.creds))
		})
	}
}

func TestNewLLMProvider(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		provider string
		creds    Credentials
		wantName string
		wantErr  bool
	}{
		{name: "mock", provider: ProviderMock, wantName: "mock"},
		{name: "ollama default url", provider: ProviderOllama, wantName: "ollama"},
		{name: "openai with key", provider: ProviderOpenAI, creds: Credentials{OpenAIKey: "sk"}, wantName: "openai"},
		{name: "anthropic with key", provider: ProviderAnthropic, creds: Credentials{AnthropicKey: "ak"}, wantName: "anthropic"},
		{name: "openai without key", provider: ProviderOpenAI, wantErr: true},
		{name: "anthropic without key", provider: ProviderAnthropic, wantErr: true},
		{name: "gemini without key", provider: ProviderGemini, wantErr: true},
		{name: "unknown", provider: "bedrock", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewLLMProvider(ctx, tt.provider, "", tt.creds)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, p.Name())
		})
	}
}
