package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartfinance-ai-be/internal/config"
	"smartfinance-ai-be/internal/pkg/logger"
	"smartfinance-ai-be/pkg/embedding"
	"smartfinance-ai-be/pkg/llm/factory"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		App: config.AppConfig{
			Environment:      "test",
			LogFilePath:      filepath.Join(dir, "app.log"),
			AuditLogFilePath: filepath.Join(dir, "audit.log"),
			WorkerPoolSize:   2,
		},
		Ai:    config.AIConfig{LLMProvider: factory.ProviderAuto, EmbeddingProvider: "hashing"},
		Store: config.StoreConfig{Backend: "memory", EmbeddingDimensions: 32, DocumentsDir: dir},
		Cache: config.CacheConfig{Backend: "memory"},
	}
}

func TestNewContainer_MockMode(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Store.DocumentsDir, "billing_policies.txt"), []byte("Overdraft fee is $35."), 0o644))

	c, err := NewContainer(context.Background(), cfg)
	require.NoError(t, err)
	defer c.Close()

	assert.NotNil(t, c.ChatController)
	assert.NotNil(t, c.DocumentController)
	assert.NotNil(t, c.HealthController)
	assert.NotNil(t, c.ChatStreamHandler)
	assert.Nil(t, c.AuditService)
	assert.True(t, c.SeedStore)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	assert.NoError(t, c.Start(ctx, cfg.Store.DocumentsDir))
}

func TestNewContainer_BadProvider(t *testing.T) {
	cfg := testConfig(t)
	cfg.Ai.LLMProvider = factory.ProviderOpenAI

	_, err := NewContainer(context.Background(), cfg)
	assert.Error(t, err)
}

func TestNewEmbeddingProvider(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		keys     config.APIKeys
		wantErr  bool
	}{
		{name: "default hashing", provider: ""},
		{name: "ollama", provider: "ollama"},
		{name: "openai with key", provider: "openai", keys: config.APIKeys{OpenAI: "sk"}},
		{name: "openai without key", provider: "openai", wantErr: true},
		{name: "gemini without key", provider: "gemini", wantErr: true},
		{name: "jina without key", provider: "jina", wantErr: true},
		{name: "unknown", provider: "word2vec", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.Ai.EmbeddingProvider = tt.provider
			cfg.Keys = tt.keys

			p, err := NewEmbeddingProvider(cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, p)
		})
	}
}

func TestNewEmbeddingProvider_HashingDimensions(t *testing.T) {
	cfg := testConfig(t)
	p, err := NewEmbeddingProvider(cfg)
	require.NoError(t, err)

	rsp, err := p.Generate(context.Background(), "fees", embedding.TaskRetrievalQuery)
	require.NoError(t, err)
	assert.Len(t, rsp.Embedding.Values, 32)
}

func TestNewPassageCache_FallsBackWhenRedisDown(t *testing.T) {
	cfg := testConfig(t)
	cfg.Cache = config.CacheConfig{Backend: "redis", RedisURL: "redis://127.0.0.1:1"}

	c, closeCache := NewPassageCache(context.Background(), cfg, logger.NewNop())
	defer closeCache()
	require.NoError(t, c.Set(context.Background(), "s", []string{"p"}))
	got, ok, err := c.Get(context.Background(), "s")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"p"}, got)
}
