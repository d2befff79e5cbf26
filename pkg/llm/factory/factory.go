package factory

import (
	"context"
	"fmt"

	"smartfinance-ai-be/pkg/llm"
	"smartfinance-ai-be/pkg/llm/anthropic"
	"smartfinance-ai-be/pkg/llm/gemini"
	"smartfinance-ai-be/pkg/llm/mock"
	"smartfinance-ai-be/pkg/llm/ollama"
	"smartfinance-ai-be/pkg/llm/openai"
)

const (
	ProviderAuto      = "auto"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
	ProviderOllama    = "ollama"
	ProviderMock      = "mock"
)

type Credentials struct {
	OpenAIKey     string
	OpenAIBaseURL string
	AnthropicKey  string
	GeminiKey     string
	OllamaURL     string
	MaxRetries    int
}

// Selection is the backend pair chosen at startup: one for the router's
// classification call, one shared by the responders.
type Selection struct {
	Router    string
	Responder string
}

// Resolve turns the configured provider names into concrete backends.
// "auto" prefers Anthropic for routing, OpenAI for answering, and falls
// back to the mock backend when no key is present. An explicit router
// override wins over the auto choice.
func Resolve(requested, routerOverride string, creds Credentials) Selection {
	var sel Selection

	switch requested {
	case "", ProviderAuto:
		switch {
		case creds.AnthropicKey != "" && creds.OpenAIKey != "":
			sel = Selection{Router: ProviderAnthropic, Responder: ProviderOpenAI}
		case creds.AnthropicKey != "":
			sel = Selection{Router: ProviderAnthropic, Responder: ProviderAnthropic}
		case creds.OpenAIKey != "":
			sel = Selection{Router: ProviderOpenAI, Responder: ProviderOpenAI}
		default:
			sel = Selection{Router: ProviderMock, Responder: ProviderMock}
		}
	default:
		sel = Selection{Router: requested, Responder: requested}
	}

	if routerOverride != "" && routerOverride != ProviderAuto {
		sel.Router = routerOverride
	}

	return sel
}

func NewLLMProvider(ctx context.Context, providerType, modelName string, creds Credentials) (llm.LLMProvider, error) {
	switch providerType {
	case ProviderOpenAI:
		if creds.OpenAIKey == "" {
			return nil, fmt.Errorf("provider %s requires OPENAI_API_KEY", providerType)
		}
		return openai.NewOpenAIProvider(creds.OpenAIKey, creds.OpenAIBaseURL, modelName), nil
	case ProviderAnthropic:
		if creds.AnthropicKey == "" {
			return nil, fmt.Errorf("provider %s requires ANTHROPIC_API_KEY", providerType)
		}
		return anthropic.NewAnthropicProvider(creds.AnthropicKey, modelName, creds.MaxRetries), nil
	case ProviderGemini:
		if creds.GeminiKey == "" {
			return nil, fmt.Errorf("provider %s requires GOOGLE_GEMINI_API_KEY", providerType)
		}
		return gemini.NewGeminiProvider(ctx, creds.GeminiKey, modelName)
	case ProviderOllama:
		return ollama.NewOllamaProvider(creds.OllamaURL, modelName), nil
	case ProviderMock:
		return mock.NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
