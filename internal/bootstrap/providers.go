package bootstrap

import (
	"context"
	"fmt"
	"log"

	"smartfinance-ai-be/internal/config"
	"smartfinance-ai-be/internal/pkg/logger"
	"smartfinance-ai-be/internal/repository/memory"
	redisRepo "smartfinance-ai-be/internal/repository/redis"
	"smartfinance-ai-be/pkg/database"
	"smartfinance-ai-be/pkg/embedding"
	"smartfinance-ai-be/pkg/embedding/jina"
	"smartfinance-ai-be/pkg/llm"
	"smartfinance-ai-be/pkg/llm/factory"
	"smartfinance-ai-be/pkg/rag/strategy"
	"smartfinance-ai-be/pkg/store"
	memstore "smartfinance-ai-be/pkg/store/memory"
	"smartfinance-ai-be/pkg/store/pgvector"

	"github.com/redis/go-redis/v9"
)

func credentials(cfg *config.Config) factory.Credentials {
	return factory.Credentials{
		OpenAIKey:     cfg.Keys.OpenAI,
		OpenAIBaseURL: cfg.Keys.OpenAIBase,
		AnthropicKey:  cfg.Keys.Anthropic,
		GeminiKey:     cfg.Keys.GoogleGemini,
		OllamaURL:     cfg.Ai.OllamaBaseURL,
		MaxRetries:    cfg.Ai.MaxRetries,
	}
}

// NewLLMProviders builds the router and responder backends
func NewLLMProviders(ctx context.Context, cfg *config.Config) (factory.Selection, llm.LLMProvider, llm.LLMProvider, error) {
	creds := credentials(cfg)
	sel := factory.Resolve(cfg.Ai.LLMProvider, cfg.Ai.RouterProvider, creds)

	routerLLM, err := factory.NewLLMProvider(ctx, sel.Router, "", creds)
	if err != nil {
		return sel, nil, nil, fmt.Errorf("router provider: %w", err)
	}
	if sel.Router == sel.Responder {
		return sel, routerLLM, routerLLM, nil
	}

	responderLLM, err := factory.NewLLMProvider(ctx, sel.Responder, "", creds)
	if err != nil {
		return sel, nil, nil, fmt.Errorf("responder provider: %w", err)
	}
	return sel, routerLLM, responderLLM, nil
}

// NewEmbeddingProvider picks the embedder used by the context store.
// The hashing embedder needs no network and is the default.
func NewEmbeddingProvider(cfg *config.Config) (embedding.EmbeddingProvider, error) {
	switch cfg.Ai.EmbeddingProvider {
	case "", "hashing":
		return embedding.NewHashingProvider(cfg.Store.EmbeddingDimensions), nil
	case "openai":
		if cfg.Keys.OpenAI == "" {
			return nil, fmt.Errorf("embedding provider openai requires OPENAI_API_KEY")
		}
		return embedding.NewOpenAIProvider(cfg.Keys.OpenAI, cfg.Keys.OpenAIBase, cfg.Ai.EmbeddingModel), nil
	case "ollama":
		return embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.EmbeddingModel), nil
	case "gemini":
		if cfg.Keys.GoogleGemini == "" {
			return nil, fmt.Errorf("embedding provider gemini requires GOOGLE_GEMINI_API_KEY")
		}
		return embedding.NewGeminiProvider(cfg.Keys.GoogleGemini, cfg.Ai.EmbeddingModel), nil
	case "jina":
		if cfg.Ai.JinaAPIKey == "" {
			return nil, fmt.Errorf("embedding provider jina requires JINA_API_KEY")
		}
		return jina.NewJinaProvider(cfg.Ai.JinaAPIKey, cfg.Ai.EmbeddingModel), nil
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", cfg.Ai.EmbeddingProvider)
	}
}

// NewContextStore returns the store and whether it starts empty and should
// be seeded from the documents directory
func NewContextStore(ctx context.Context, cfg *config.Config, embedder embedding.EmbeddingProvider) (store.ContextStore, bool, func(), error) {
	switch cfg.Store.Backend {
	case "", "memory":
		return memstore.NewStore(embedder), true, func() {}, nil
	case "pgvector":
		db, err := database.NewGormDBFromDSN(cfg.Store.Connection, cfg.IsProduction())
		if err != nil {
			return nil, false, nil, fmt.Errorf("connect pgvector store: %w", err)
		}
		s := pgvector.NewStore(db, embedder)
		if err := s.Migrate(ctx); err != nil {
			return nil, false, nil, err
		}
		closeDB := func() {
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.Close()
			}
		}
		return s, false, closeDB, nil
	default:
		return nil, false, nil, fmt.Errorf("unsupported store backend: %s", cfg.Store.Backend)
	}
}

// NewPassageCache falls back to memory when redis is unreachable, the
// cache only saves retrieval calls
func NewPassageCache(ctx context.Context, cfg *config.Config, sysLogger logger.ILogger) (strategy.PassageCache, func()) {
	if cfg.Cache.Backend != "redis" {
		return memory.NewPassageCache(), func() {}
	}

	opt, err := redis.ParseURL(cfg.Cache.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.Cache.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		sysLogger.Warn("BOOTSTRAP", "Failed to connect to Redis, using in-memory session cache", map[string]interface{}{"error": err.Error()})
		rdb.Close()
		return memory.NewPassageCache(), func() {}
	}

	return redisRepo.NewPassageCache(rdb, "billing"), func() { rdb.Close() }
}
