package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"smartfinance-ai-be/internal/constant"
	"smartfinance-ai-be/internal/dto"
	"smartfinance-ai-be/internal/pkg/logger"
	"smartfinance-ai-be/pkg/store"
	"smartfinance-ai-be/pkg/utils"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const seedConcurrency = 4

// SeedReport is the chunk count written per source file
type SeedReport struct {
	Files  map[string]int
	Total  int
	Missed []string
}

type IIngestionService interface {
	Enqueue(ctx context.Context, req *dto.IngestDocumentRequest) (*dto.IngestDocumentResponse, error)
	Consume(ctx context.Context) error
	IngestDocument(ctx context.Context, doc dto.PublishIngestDocumentMessage) (int, error)
	SeedDirectory(ctx context.Context, dir string) (*SeedReport, error)
}

type ingestionService struct {
	publisher  message.Publisher
	subscriber message.Subscriber
	topicName  string
	store      store.ContextStore
	splitter   *utils.TextSplitter
	events     *EventPublisher
	logger     logger.ILogger
}

func NewIngestionService(
	publisher message.Publisher,
	subscriber message.Subscriber,
	topicName string,
	contextStore store.ContextStore,
	splitter *utils.TextSplitter,
	events *EventPublisher,
	log logger.ILogger,
) IIngestionService {
	return &ingestionService{
		publisher:  publisher,
		subscriber: subscriber,
		topicName:  topicName,
		store:      contextStore,
		splitter:   splitter,
		events:     events,
		logger:     log,
	}
}

// Enqueue hands the document to the consumer and returns immediately
func (s *ingestionService) Enqueue(ctx context.Context, req *dto.IngestDocumentRequest) (*dto.IngestDocumentResponse, error) {
	payload := dto.PublishIngestDocumentMessage{
		Id:         uuid.New(),
		Collection: req.Collection,
		Source:     req.Source,
		Type:       req.Type,
		Content:    req.Content,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal ingest message: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.SetContext(context.WithoutCancel(ctx))
	if err := s.publisher.Publish(s.topicName, msg); err != nil {
		return nil, fmt.Errorf("publish ingest message: %w", err)
	}

	s.logger.Info("INGEST", "Document queued", map[string]interface{}{
		"id":         payload.Id.String(),
		"collection": payload.Collection,
		"source":     payload.Source,
	})

	return &dto.IngestDocumentResponse{
		Id:         payload.Id,
		Collection: payload.Collection,
		Source:     payload.Source,
	}, nil
}

func (s *ingestionService) Consume(ctx context.Context) error {
	messages, err := s.subscriber.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (s *ingestionService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishIngestDocumentMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		s.logger.Error("INGEST", "Failed to unmarshal message", map[string]interface{}{"error": err.Error()})
		msg.Ack() // poison message, retrying cannot help
		return
	}

	chunks, err := s.IngestDocument(ctx, payload)
	if err != nil {
		s.logger.Error("INGEST", "Failed to ingest document", map[string]interface{}{
			"id":    payload.Id.String(),
			"error": err.Error(),
		})
		msg.Nack()
		return
	}

	s.events.PublishDocumentIngested(ctx, payload, chunks)
	msg.Ack()
}

// IngestDocument splits the content and writes every chunk with its
// {source, type, chunk_index} metadata
func (s *ingestionService) IngestDocument(ctx context.Context, doc dto.PublishIngestDocumentMessage) (int, error) {
	chunks := s.splitter.SplitText(doc.Content)
	if len(chunks) == 0 {
		s.logger.Warn("INGEST", "Document produced no chunks", map[string]interface{}{"source": doc.Source})
		return 0, nil
	}

	metadatas := make([]map[string]any, len(chunks))
	for i := range chunks {
		metadatas[i] = map[string]any{
			"source":      doc.Source,
			"type":        doc.Type,
			"chunk_index": i,
		}
	}

	if err := s.store.Add(ctx, doc.Collection, chunks, metadatas); err != nil {
		return 0, fmt.Errorf("store %s chunks: %w", doc.Source, err)
	}

	s.logger.Info("INGEST", "Document ingested", map[string]interface{}{
		"source":     doc.Source,
		"collection": doc.Collection,
		"chunks":     len(chunks),
	})

	return len(chunks), nil
}

// SeedDirectory ingests every known knowledge-base file found in dir.
// Missing files are reported, not treated as errors.
func (s *ingestionService) SeedDirectory(ctx context.Context, dir string) (*SeedReport, error) {
	report := &SeedReport{Files: map[string]int{}}

	names := make([]string, 0, len(constant.DocumentSources))
	for name := range constant.DocumentSources {
		names = append(names, name)
	}
	sort.Strings(names)

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(seedConcurrency)

	for _, name := range names {
		source := constant.DocumentSources[name]
		path := filepath.Join(dir, name)

		g.Go(func() error {
			content, err := os.ReadFile(path)
			if errors.Is(err, os.ErrNotExist) {
				s.logger.Warn("INGEST", "Seed file not found", map[string]interface{}{"path": path})
				mu.Lock()
				report.Missed = append(report.Missed, name)
				mu.Unlock()
				return nil
			}
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			n, err := s.IngestDocument(gctx, dto.PublishIngestDocumentMessage{
				Id:         uuid.New(),
				Collection: source.Collection,
				Source:     name,
				Type:       source.Type,
				Content:    string(content),
			})
			if err != nil {
				return err
			}

			mu.Lock()
			report.Files[name] = n
			report.Total += n
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return report, err
	}

	sort.Strings(report.Missed)
	return report, nil
}
