package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Keys      APIKeys
	Ai        AIConfig
	Store     StoreConfig
	Cache     CacheConfig
	Events    EventsConfig
	Telemetry TelemetryConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	AuditLogFilePath   string
	CorsAllowedOrigins string
	WorkerPoolSize     int
	StreamChunkDelay   time.Duration
}

type APIKeys struct {
	OpenAI       string
	OpenAIBase   string
	Anthropic    string
	GoogleGemini string
}

type AIConfig struct {
	LLMProvider       string // "auto", "openai", "anthropic", "gemini", "ollama", "mock"
	RouterProvider    string // overrides the router backend only
	RouterModel       string
	BillingModel      string
	TechnicalModel    string
	PolicyModel       string
	OllamaBaseURL     string
	EmbeddingProvider string // "hashing", "openai", "ollama", "gemini", "jina"
	EmbeddingModel    string
	JinaAPIKey        string
	MaxRetries        int
}

type StoreConfig struct {
	Backend             string // "memory" or "pgvector"
	Connection          string
	EmbeddingDimensions int
	DocumentsDir        string
}

type CacheConfig struct {
	Backend  string // "memory" or "redis"
	RedisURL string
}

type EventsConfig struct {
	NatsEnabled bool
	NatsURL     string
}

type TelemetryConfig struct {
	OtelEnabled  bool
	OtelEndpoint string
	ServiceName  string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			AuditLogFilePath:   getEnv("AUDIT_LOG_FILE_PATH", "logs/audit.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173"),
			WorkerPoolSize:     getEnvAsInt("WORKER_POOL_SIZE", 4),
			StreamChunkDelay:   getEnvAsDuration("STREAM_CHUNK_DELAY", 10*time.Millisecond),
		},
		Keys: APIKeys{
			OpenAI:       getEnv("OPENAI_API_KEY", ""),
			OpenAIBase:   getEnv("OPENAI_BASE_URL", ""),
			Anthropic:    getEnv("ANTHROPIC_API_KEY", ""),
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
		},
		Ai: AIConfig{
			LLMProvider:       strings.ToLower(getEnv("LLM_PROVIDER", "auto")),
			RouterProvider:    strings.ToLower(getEnv("ROUTER_PROVIDER", "")),
			RouterModel:       getEnv("ROUTER_MODEL", ""),
			BillingModel:      getEnv("BILLING_MODEL", ""),
			TechnicalModel:    getEnv("TECHNICAL_MODEL", ""),
			PolicyModel:       getEnv("POLICY_MODEL", ""),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			EmbeddingProvider: strings.ToLower(getEnv("EMBEDDING_PROVIDER", "hashing")),
			EmbeddingModel:    getEnv("EMBEDDING_MODEL", ""),
			JinaAPIKey:        getEnv("JINA_API_KEY", ""),
			MaxRetries:        getEnvAsInt("LLM_MAX_RETRIES", 2),
		},
		Store: StoreConfig{
			Backend:             strings.ToLower(getEnv("STORE_BACKEND", "memory")),
			Connection:          getEnv("DB_CONNECTION_STRING", ""),
			EmbeddingDimensions: getEnvAsInt("EMBEDDING_DIMENSIONS", 256),
			DocumentsDir:        getEnv("DOCUMENTS_DIR", "data/mock_documents"),
		},
		Cache: CacheConfig{
			Backend:  strings.ToLower(getEnv("SESSION_CACHE_BACKEND", "memory")),
			RedisURL: getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Events: EventsConfig{
			NatsEnabled: getEnvAsBool("NATS_ENABLED", false),
			NatsURL:     getEnv("NATS_URL", "nats://localhost:4222"),
		},
		Telemetry: TelemetryConfig{
			OtelEnabled:  getEnvAsBool("OTEL_ENABLED", false),
			OtelEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
			ServiceName:  getEnv("OTEL_SERVICE_NAME", "smartfinance-ai-be"),
		},
	}
}

// IsProduction switches logging to production encoders
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// MockMode reports that no generation credentials are configured, so the
// auto provider falls back to the offline mock backend
func (c *Config) MockMode() bool {
	switch c.Ai.LLMProvider {
	case "mock":
		return true
	case "", "auto":
		return c.Keys.OpenAI == "" && c.Keys.Anthropic == ""
	default:
		return false
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
