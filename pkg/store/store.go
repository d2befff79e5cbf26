package store

import (
	"context"
	"errors"
	"reflect"
)

// Collections populated by ingestion, one per responder domain
const (
	CollectionBilling   = "billing_documents"
	CollectionTechnical = "technical_documents"
	CollectionPolicy    = "policy_documents"
)

var ErrMetadataLength = errors.New("metadatas length does not match texts")

// Document is one stored passage with the similarity it scored for a query
type Document struct {
	ID       string                 `json:"id"`
	Content  string                 `json:"content"`
	Score    float32                `json:"score"`
	Metadata map[string]interface{} `json:"metadata"`
}

// ContextStore is the similarity-search collaborator used by retrieval
// strategies. Query returns passage texts ordered by decreasing similarity;
// filter, when non-empty, restricts results to passages whose metadata
// equals every given key/value.
type ContextStore interface {
	Query(ctx context.Context, collection, text string, k int, filter map[string]any) ([]string, error)
	Add(ctx context.Context, collection string, texts []string, metadatas []map[string]any) error
}

// CheckMetadatas validates the optional per-text metadata slice
func CheckMetadatas(texts []string, metadatas []map[string]any) error {
	if metadatas != nil && len(metadatas) != len(texts) {
		return ErrMetadataLength
	}
	return nil
}

// Matches reports whether metadata satisfies an equality filter
func Matches(metadata, filter map[string]any) bool {
	for k, want := range filter {
		got, ok := metadata[k]
		if !ok || !equalValue(got, want) {
			return false
		}
	}
	return true
}

// JSON round trips turn ints into float64, so numbers compare by value
func equalValue(a, b any) bool {
	fa, aNum := toFloat(a)
	fb, bNum := toFloat(b)
	if aNum && bNum {
		return fa == fb
	}
	return reflect.DeepEqual(a, b)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
