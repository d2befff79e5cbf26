package embedding

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

type OpenAIProvider struct {
	model  openai.EmbeddingModel
	client *openai.Client
}

func NewOpenAIProvider(apiKey, baseURL, model string) EmbeddingProvider {
	if model == "" {
		model = string(openai.SmallEmbedding3)
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &OpenAIProvider{
		model:  openai.EmbeddingModel(model),
		client: openai.NewClientWithConfig(cfg),
	}
}

func (p *OpenAIProvider) Generate(ctx context.Context, text string, taskType string) (*EmbeddingResponse, error) {
	rsp, err := p.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: p.model,
	})
	if err != nil {
		return nil, fmt.Errorf("openai embeddings: %w", err)
	}

	if len(rsp.Data) == 0 {
		return nil, errors.New("no embedding returned from OpenAI")
	}

	return newResponse(rsp.Data[0].Embedding), nil
}
