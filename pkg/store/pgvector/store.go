package pgvector

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"smartfinance-ai-be/pkg/embedding"
	"smartfinance-ai-be/pkg/store"
)

const insertBatchSize = 100

// Store persists passages in Postgres and ranks them with pgvector's cosine
// distance operator.
type Store struct {
	db       *gorm.DB
	embedder embedding.EmbeddingProvider
}

var _ store.ContextStore = &Store{}

func NewStore(db *gorm.DB, embedder embedding.EmbeddingProvider) *Store {
	return &Store{
		db:       db,
		embedder: embedder,
	}
}

// Migrate enables the vector extension and creates the chunk table
func (s *Store) Migrate(ctx context.Context) error {
	db := s.db.WithContext(ctx)
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		return fmt.Errorf("enable pgvector: %w", err)
	}
	if err := db.AutoMigrate(&DocumentChunk{}); err != nil {
		return fmt.Errorf("migrate document_chunks: %w", err)
	}
	return nil
}

func (s *Store) Add(ctx context.Context, collection string, texts []string, metadatas []map[string]any) error {
	if err := store.CheckMetadatas(texts, metadatas); err != nil {
		return err
	}
	if len(texts) == 0 {
		return nil
	}

	models := make([]*DocumentChunk, len(texts))
	for i, text := range texts {
		rsp, err := s.embedder.Generate(ctx, text, embedding.TaskRetrievalDocument)
		if err != nil {
			return fmt.Errorf("embed passage %d: %w", i, err)
		}

		meta := datatypes.JSONMap{}
		if metadatas != nil {
			for k, v := range metadatas[i] {
				meta[k] = v
			}
		}

		models[i] = &DocumentChunk{
			Id:         uuid.New(),
			Collection: collection,
			Content:    text,
			Metadata:   meta,
			Embedding:  pgvector.NewVector(rsp.Embedding.Values),
		}
	}

	if err := s.db.WithContext(ctx).CreateInBatches(models, insertBatchSize).Error; err != nil {
		return fmt.Errorf("insert document chunks: %w", err)
	}
	return nil
}

func (s *Store) Query(ctx context.Context, collection, text string, k int, filter map[string]any) ([]string, error) {
	if k <= 0 {
		return []string{}, nil
	}

	rsp, err := s.embedder.Generate(ctx, text, embedding.TaskRetrievalQuery)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	query := s.db.WithContext(ctx).
		Model(&DocumentChunk{}).
		Where("collection = ?", collection)

	for key, value := range filter {
		query = query.Where(datatypes.JSONQuery("metadata").Equals(value, key))
	}

	var passages []string
	err = query.
		Order(gorm.Expr("embedding <=> ?", pgvector.NewVector(rsp.Embedding.Values))).
		Limit(k).
		Pluck("content", &passages).Error
	if err != nil {
		return nil, fmt.Errorf("similarity search on %s: %w", collection, err)
	}

	if passages == nil {
		passages = []string{}
	}
	return passages, nil
}

// Count reports how many chunks a collection holds
func (s *Store) Count(ctx context.Context, collection string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&DocumentChunk{}).
		Where("collection = ?", collection).
		Count(&count).Error
	return count, err
}
