package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartfinance-ai-be/pkg/embedding"
	"smartfinance-ai-be/pkg/store"
)

type failingEmbedder struct{}

func (failingEmbedder) Generate(ctx context.Context, text string, taskType string) (*embedding.EmbeddingResponse, error) {
	return nil, errors.New("embedder down")
}

func seeded(t *testing.T) *Store {
	t.Helper()

	s := NewStore(embedding.NewHashingProvider(256))
	err := s.Add(context.Background(), store.CollectionTechnical,
		[]string{
			"To reset your password open Settings and tap Reset Password.",
			"Enable two-factor authentication under Security settings.",
			"The mobile app supports iOS and Android devices.",
		},
		[]map[string]any{
			{"source": "technical_faqs.txt", "type": "technical", "chunk_index": 0},
			{"source": "technical_faqs.txt", "type": "technical", "chunk_index": 1},
			{"source": "savings_and_goals.txt", "type": "financial_planning", "chunk_index": 0},
		},
	)
	require.NoError(t, err)
	return s
}

func TestStore_Query(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	tests := []struct {
		name       string
		collection string
		query      string
		k          int
		filter     map[string]any
		wantLen    int
		wantFirst  string
	}{
		{
			name:       "best match first",
			collection: store.CollectionTechnical,
			query:      "how do I reset my password",
			k:          2,
			wantLen:    2,
			wantFirst:  "To reset your password open Settings and tap Reset Password.",
		},
		{
			name:       "k larger than collection",
			collection: store.CollectionTechnical,
			query:      "anything",
			k:          10,
			wantLen:    3,
		},
		{
			name:       "metadata filter",
			collection: store.CollectionTechnical,
			query:      "password",
			k:          4,
			filter:     map[string]any{"type": "financial_planning"},
			wantLen:    1,
			wantFirst:  "The mobile app supports iOS and Android devices.",
		},
		{
			name:       "numeric filter",
			collection: store.CollectionTechnical,
			query:      "security",
			k:          4,
			filter:     map[string]any{"source": "technical_faqs.txt", "chunk_index": 1.0},
			wantLen:    1,
			wantFirst:  "Enable two-factor authentication under Security settings.",
		},
		{
			name:       "unknown collection is empty",
			collection: "missing",
			query:      "password",
			k:          3,
			wantLen:    0,
		},
		{
			name:       "zero k",
			collection: store.CollectionTechnical,
			query:      "password",
			k:          0,
			wantLen:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Query(ctx, tt.collection, tt.query, tt.k, tt.filter)
			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
			if tt.wantFirst != "" {
				assert.Equal(t, tt.wantFirst, got[0])
			}
		})
	}
}

func TestStore_Add(t *testing.T) {
	s := NewStore(embedding.NewHashingProvider(64))
	ctx := context.Background()

	err := s.Add(ctx, store.CollectionBilling, []string{"a", "b"}, []map[string]any{{"source": "x"}})
	assert.ErrorIs(t, err, store.ErrMetadataLength)

	require.NoError(t, s.Add(ctx, store.CollectionBilling, []string{"a", "b"}, nil))
	assert.Equal(t, 2, s.Len(store.CollectionBilling))
}

func TestStore_EmbedderFailure(t *testing.T) {
	s := NewStore(failingEmbedder{})

	err := s.Add(context.Background(), store.CollectionBilling, []string{"a"}, nil)
	assert.ErrorContains(t, err, "embedder down")

	_, err = s.Query(context.Background(), store.CollectionBilling, "a", 3, nil)
	assert.ErrorContains(t, err, "embedder down")
}
