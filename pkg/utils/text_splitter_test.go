package utils

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitText(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		chunkSize int
		overlap   int
		want      []string
	}{
		{
			name:      "short text is one chunk",
			text:      "Monthly maintenance fee is waived above $500.",
			chunkSize: 1000,
			overlap:   200,
			want:      []string{"Monthly maintenance fee is waived above $500."},
		},
		{
			name:      "empty text",
			text:      "",
			chunkSize: 100,
			overlap:   10,
			want:      []string{},
		},
		{
			name:      "paragraph boundaries",
			text:      "aaaa bbbb\n\ncccc dddd\n\neeee",
			chunkSize: 20,
			overlap:   0,
			want:      []string{"aaaa bbbb\n\ncccc dddd", "eeee"},
		},
		{
			name:      "falls through to characters",
			text:      "abcdefghij",
			chunkSize: 4,
			overlap:   0,
			want:      []string{"abcd", "efgh", "ij"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitText(tt.text, tt.chunkSize, tt.overlap))
		})
	}
}

func TestSplitText_SizeAndOverlap(t *testing.T) {
	words := make([]string, 30)
	for i := range words {
		words[i] = fmt.Sprintf("w%02d", i)
	}
	text := strings.Join(words, " ")

	chunks := SplitText(text, 20, 8)
	require.Greater(t, len(chunks), 1)

	for i, chunk := range chunks {
		assert.LessOrEqual(t, utf8.RuneCountInString(chunk), 20, "chunk %d too long", i)
		if i == 0 {
			continue
		}
		first := strings.Fields(chunk)[0]
		assert.Contains(t, chunks[i-1], first, "chunk %d does not overlap the previous one", i)
	}

	assert.True(t, strings.HasPrefix(chunks[0], "w00"))
	assert.True(t, strings.HasSuffix(chunks[len(chunks)-1], "w29"))
}

func TestNewTextSplitter_Defaults(t *testing.T) {
	s := NewTextSplitter(0, -1)
	assert.Equal(t, DefaultChunkSize, s.ChunkSize)
	assert.Equal(t, 0, s.ChunkOverlap)
	assert.Equal(t, DefaultSeparators, s.Separators)
}
