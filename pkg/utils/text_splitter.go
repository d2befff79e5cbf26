package utils

import (
	"strings"
	"unicode/utf8"
)

const (
	DefaultChunkSize    = 1000
	DefaultChunkOverlap = 200
)

// DefaultSeparators are tried in order: paragraphs, lines, words, characters
var DefaultSeparators = []string{"\n\n", "\n", " ", ""}

// TextSplitter splits text recursively on a list of separators so chunks
// break on the largest natural boundary that keeps them under ChunkSize.
// Consecutive chunks share up to ChunkOverlap characters.
type TextSplitter struct {
	ChunkSize    int
	ChunkOverlap int
	Separators   []string
}

func NewTextSplitter(chunkSize, overlap int) *TextSplitter {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if overlap < 0 || overlap >= chunkSize {
		overlap = 0
	}
	return &TextSplitter{
		ChunkSize:    chunkSize,
		ChunkOverlap: overlap,
		Separators:   DefaultSeparators,
	}
}

// SplitText splits with the default separators
func SplitText(text string, chunkSize int, overlap int) []string {
	return NewTextSplitter(chunkSize, overlap).SplitText(text)
}

func (s *TextSplitter) SplitText(text string) []string {
	chunks := s.split(text, s.Separators)
	if chunks == nil {
		return []string{}
	}
	return chunks
}

func (s *TextSplitter) split(text string, separators []string) []string {
	separator := ""
	var rest []string
	for i, sep := range separators {
		if sep == "" || strings.Contains(text, sep) {
			separator = sep
			rest = separators[i+1:]
			break
		}
	}

	var pieces []string
	if separator == "" {
		pieces = strings.Split(text, "")
	} else {
		pieces = strings.Split(text, separator)
	}

	var (
		chunks []string
		good   []string
	)
	for _, piece := range pieces {
		if piece == "" {
			continue
		}
		if utf8.RuneCountInString(piece) < s.ChunkSize {
			good = append(good, piece)
			continue
		}

		if len(good) > 0 {
			chunks = append(chunks, s.merge(good, separator)...)
			good = nil
		}
		if len(rest) == 0 {
			chunks = append(chunks, piece)
			continue
		}
		chunks = append(chunks, s.split(piece, rest)...)
	}

	if len(good) > 0 {
		chunks = append(chunks, s.merge(good, separator)...)
	}
	return chunks
}

// merge packs small pieces into chunks, carrying a tail of up to
// ChunkOverlap characters into the next chunk
func (s *TextSplitter) merge(pieces []string, separator string) []string {
	sepLen := utf8.RuneCountInString(separator)

	var (
		chunks  []string
		current []string
		total   int
	)

	joined := func(n int) int {
		if n > 0 {
			return sepLen
		}
		return 0
	}

	for _, piece := range pieces {
		l := utf8.RuneCountInString(piece)

		if len(current) > 0 && total+l+joined(len(current)) > s.ChunkSize {
			if chunk := strings.TrimSpace(strings.Join(current, separator)); chunk != "" {
				chunks = append(chunks, chunk)
			}

			for total > s.ChunkOverlap || (total > 0 && total+l+joined(len(current)) > s.ChunkSize) {
				total -= utf8.RuneCountInString(current[0]) + joined(len(current)-1)
				current = current[1:]
			}
		}

		current = append(current, piece)
		total += l + joined(len(current)-1)
	}

	if chunk := strings.TrimSpace(strings.Join(current, separator)); chunk != "" {
		chunks = append(chunks, chunk)
	}
	return chunks
}
