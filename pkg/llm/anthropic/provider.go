package anthropic

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"smartfinance-ai-be/pkg/llm"
)

const defaultMaxTokens = 1024

// AnthropicProvider implements LLMProvider using the Anthropic Messages API.
type AnthropicProvider struct {
	model  string
	client anthropic.Client
}

var _ llm.LLMProvider = &AnthropicProvider{}

// NewAnthropicProvider builds a client with an explicit key. maxRetries is
// handed to the SDK, which owns the retry policy for transient failures.
func NewAnthropicProvider(apiKey, model string, maxRetries int) *AnthropicProvider {
	if model == "" {
		model = "claude-3-5-haiku-latest"
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if maxRetries >= 0 {
		opts = append(opts, option.WithMaxRetries(maxRetries))
	}

	return &AnthropicProvider{
		model:  model,
		client: anthropic.NewClient(opts...),
	}
}

func (p *AnthropicProvider) Name() string {
	return "anthropic"
}

func (p *AnthropicProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := llm.NewOptions(llm.Options{Model: p.model, MaxTokens: defaultMaxTokens}, opts...)
	if options.MaxTokens <= 0 {
		options.MaxTokens = defaultMaxTokens
	}

	ctx, cancel := options.WithDeadline(ctx)
	defer cancel()

	system, turns := llm.SplitSystem(history)

	messages := make([]anthropic.MessageParam, 0, len(turns))
	for _, msg := range turns {
		block := anthropic.NewTextBlock(msg.Content)
		if msg.Role == llm.RoleAssistant {
			messages = append(messages, anthropic.NewAssistantMessage(block))
			continue
		}
		messages = append(messages, anthropic.NewUserMessage(block))
	}

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(options.Model),
		MaxTokens:   int64(options.MaxTokens),
		Messages:    messages,
		Temperature: anthropic.Float(options.Temperature),
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{
			{Text: system},
		}
	}

	rsp, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("anthropic API call failed: %w", err)
	}

	var b strings.Builder
	for _, content := range rsp.Content {
		if text, ok := content.AsAny().(anthropic.TextBlock); ok {
			b.WriteString(text.Text)
		}
	}

	result := b.String()
	if len(result) == 0 {
		return "", errors.New("no response from Anthropic")
	}

	return result, nil
}

func (p *AnthropicProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}}, opts...)
}
