package memory

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/google/uuid"

	"smartfinance-ai-be/pkg/embedding"
	"smartfinance-ai-be/pkg/store"
)

type record struct {
	doc    store.Document
	vector []float32
}

// Store keeps embedded passages in process memory and ranks them by cosine
// similarity. Contents are lost on restart; bootstrap reseeds it from the
// documents directory.
type Store struct {
	mu          sync.RWMutex
	embedder    embedding.EmbeddingProvider
	collections map[string][]record
}

var _ store.ContextStore = &Store{}

func NewStore(embedder embedding.EmbeddingProvider) *Store {
	return &Store{
		embedder:    embedder,
		collections: make(map[string][]record),
	}
}

func (s *Store) Add(ctx context.Context, collection string, texts []string, metadatas []map[string]any) error {
	if err := store.CheckMetadatas(texts, metadatas); err != nil {
		return err
	}

	records := make([]record, 0, len(texts))
	for i, text := range texts {
		rsp, err := s.embedder.Generate(ctx, text, embedding.TaskRetrievalDocument)
		if err != nil {
			return fmt.Errorf("embed passage %d: %w", i, err)
		}

		var meta map[string]any
		if metadatas != nil {
			meta = metadatas[i]
		}

		records = append(records, record{
			doc: store.Document{
				ID:       uuid.NewString(),
				Content:  text,
				Metadata: meta,
			},
			vector: rsp.Embedding.Values,
		})
	}

	s.mu.Lock()
	s.collections[collection] = append(s.collections[collection], records...)
	s.mu.Unlock()

	return nil
}

func (s *Store) Query(ctx context.Context, collection, text string, k int, filter map[string]any) ([]string, error) {
	docs, err := s.Search(ctx, collection, text, k, filter)
	if err != nil {
		return nil, err
	}

	passages := make([]string, len(docs))
	for i, d := range docs {
		passages[i] = d.Content
	}
	return passages, nil
}

// Search is Query with scores attached
func (s *Store) Search(ctx context.Context, collection, text string, k int, filter map[string]any) ([]store.Document, error) {
	if k <= 0 {
		return []store.Document{}, nil
	}

	rsp, err := s.embedder.Generate(ctx, text, embedding.TaskRetrievalQuery)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	query := rsp.Embedding.Values

	s.mu.RLock()
	candidates := make([]store.Document, 0, len(s.collections[collection]))
	for _, r := range s.collections[collection] {
		if !store.Matches(r.doc.Metadata, filter) {
			continue
		}
		doc := r.doc
		doc.Score = cosineSimilarity(query, r.vector)
		candidates = append(candidates, doc)
	}
	s.mu.RUnlock()

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if len(candidates) > k {
		candidates = candidates[:k]
	}
	return candidates, nil
}

// Len reports how many passages a collection holds
func (s *Store) Len(collection string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.collections[collection])
}

func cosineSimilarity(a, b []float32) float32 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}
