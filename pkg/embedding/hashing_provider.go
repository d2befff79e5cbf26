package embedding

import (
	"context"
	"hash/fnv"
	"strings"
	"unicode"
)

const DefaultHashingDimensions = 256

// HashingProvider builds bag-of-words vectors by feature hashing. It needs
// no model or network, so demo mode and tests can still run similarity
// search over real documents.
type HashingProvider struct {
	Dimensions int
}

func NewHashingProvider(dimensions int) EmbeddingProvider {
	if dimensions <= 0 {
		dimensions = DefaultHashingDimensions
	}
	return &HashingProvider{Dimensions: dimensions}
}

func (p *HashingProvider) Generate(ctx context.Context, text string, taskType string) (*EmbeddingResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	values := make([]float32, p.Dimensions)
	tokens := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	for _, tok := range tokens {
		h := fnv.New32a()
		h.Write([]byte(tok))
		sum := h.Sum32()

		// the top bit picks the sign so unrelated collisions tend to cancel
		sign := float32(1)
		if sum&(1<<31) != 0 {
			sign = -1
		}
		values[int(sum%uint32(p.Dimensions))] += sign
	}

	return newResponse(normalizeVector(values)), nil
}
