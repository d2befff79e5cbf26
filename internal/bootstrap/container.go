package bootstrap

import (
	"context"
	"fmt"

	"smartfinance-ai-be/internal/config"
	"smartfinance-ai-be/internal/constant"
	"smartfinance-ai-be/internal/controller"
	"smartfinance-ai-be/internal/handler"
	"smartfinance-ai-be/internal/pkg/logger"
	"smartfinance-ai-be/internal/pkg/metrics"
	"smartfinance-ai-be/internal/service"
	"smartfinance-ai-be/pkg/ai/assistant"
	"smartfinance-ai-be/pkg/events"
	pktNats "smartfinance-ai-be/pkg/nats"
	"smartfinance-ai-be/pkg/utils"
	"smartfinance-ai-be/pkg/worker"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Container struct {
	// Controllers
	ChatController     controller.IChatController
	DocumentController controller.IDocumentController
	HealthController   controller.IHealthController
	ChatStreamHandler  *handler.ChatStreamHandler

	// Background Services (Exposed for main.go to run)
	IngestionService service.IIngestionService
	AuditService     *service.AuditService

	Logger   logger.ILogger
	Registry *prometheus.Registry

	// SeedStore is set when the context store starts empty
	SeedStore bool

	closers []func()
}

func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewMetrics(registry)

	c := &Container{Logger: sysLogger, Registry: registry}

	// 2. Retrieval
	embedder, err := NewEmbeddingProvider(cfg)
	if err != nil {
		return nil, err
	}
	contextStore, seed, closeStore, err := NewContextStore(ctx, cfg, embedder)
	if err != nil {
		return nil, err
	}
	c.SeedStore = seed
	c.closers = append(c.closers, closeStore)

	passageCache, closeCache := NewPassageCache(ctx, cfg, sysLogger)
	c.closers = append(c.closers, closeCache)

	// 3. Generation backends
	sel, routerLLM, responderLLM, err := NewLLMProviders(ctx, cfg)
	if err != nil {
		c.Close()
		return nil, err
	}
	sysLogger.Info("BOOTSTRAP", "LLM providers selected", map[string]interface{}{
		"router":    sel.Router,
		"responder": sel.Responder,
		"mock_mode": cfg.MockMode(),
	})

	// 4. Event Bus
	var publisher events.Publisher
	if cfg.Events.NatsEnabled {
		natsPub, err := pktNats.NewPublisher(cfg.Events.NatsURL)
		if err != nil {
			sysLogger.Warn("BOOTSTRAP", "Failed to connect to NATS Publisher", map[string]interface{}{"error": err.Error()})
		} else {
			publisher = natsPub
			c.closers = append(c.closers, natsPub.Close)
		}

		natsSub, err := pktNats.NewSubscriber(cfg.Events.NatsURL)
		if err != nil {
			sysLogger.Warn("BOOTSTRAP", "Failed to connect to NATS Subscriber", map[string]interface{}{"error": err.Error()})
		} else {
			c.AuditService = service.NewAuditService(natsSub, logger.NewIsolatedLogger(cfg.App.AuditLogFilePath))
			c.closers = append(c.closers, natsSub.Close)
		}
	}
	eventPublisher := service.NewEventPublisher(publisher, sysLogger)

	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermillLogger,
	)
	c.closers = append(c.closers, func() { pubSub.Close() })

	// 5. Services
	core := assistant.New(assistant.Config{
		RouterLLM:    routerLLM,
		ResponderLLM: responderLLM,
		Store:        contextStore,
		Cache:        passageCache,
		Models: assistant.Models{
			Router:    cfg.Ai.RouterModel,
			Billing:   cfg.Ai.BillingModel,
			Technical: cfg.Ai.TechnicalModel,
			Policy:    cfg.Ai.PolicyModel,
		},
		Logger:  sysLogger,
		Metrics: m,
	})

	pool := worker.NewPool(cfg.App.WorkerPoolSize, m.WorkerInFlight)
	chatService := service.NewChatService(core.Graph, pool, core.BillingCache, eventPublisher, m, sysLogger, cfg.App.StreamChunkDelay)

	c.IngestionService = service.NewIngestionService(
		pubSub,
		pubSub,
		constant.IngestDocumentTopic,
		contextStore,
		utils.NewTextSplitter(utils.DefaultChunkSize, utils.DefaultChunkOverlap),
		eventPublisher,
		sysLogger,
	)

	// 6. Controllers
	c.ChatController = controller.NewChatController(chatService, sysLogger)
	c.DocumentController = controller.NewDocumentController(c.IngestionService)
	c.HealthController = controller.NewHealthController(controller.HealthInfo{
		Environment: cfg.App.Environment,
		MockMode:    cfg.MockMode(),
		AIProvider:  responderLLM.Name(),
	}, registry)
	c.ChatStreamHandler = handler.NewChatStreamHandler(chatService, sysLogger)

	return c, nil
}

// Start runs the background consumers and seeds an empty store
func (c *Container) Start(ctx context.Context, documentsDir string) error {
	if err := c.IngestionService.Consume(ctx); err != nil {
		return fmt.Errorf("start ingestion consumer: %w", err)
	}

	if c.AuditService != nil {
		if err := c.AuditService.Start(ctx); err != nil {
			c.Logger.Warn("BOOTSTRAP", "Audit trail disabled", map[string]interface{}{"error": err.Error()})
		}
	}

	if c.SeedStore {
		report, err := c.IngestionService.SeedDirectory(ctx, documentsDir)
		if err != nil {
			return fmt.Errorf("seed context store: %w", err)
		}
		c.Logger.Info("BOOTSTRAP", "Context store seeded", map[string]interface{}{
			"files":  report.Files,
			"chunks": report.Total,
			"missed": report.Missed,
		})
	}

	return nil
}

// Close releases connections in reverse order of creation
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
}
