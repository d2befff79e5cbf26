package stream

import (
	"context"
	"fmt"
	"strings"
	"time"

	"smartfinance-ai-be/pkg/ai/router"
)

const (
	WordsPerChunk = 3
	DefaultDelay  = 10 * time.Millisecond
)

// Event is one frame of a streamed answer. Only the last event of a stream
// has Done set.
type Event struct {
	Content string `json:"content"`
	Agent   string `json:"agent"`
	Done    bool   `json:"done"`
}

// Chunk splits a finished answer into groups of three words. Every chunk but
// the last carries one trailing space, so the contents concatenate back to
// the whitespace-normalised answer. A terminal empty event closes the list.
func Chunk(answer, agent string) []Event {
	words := strings.Fields(answer)
	events := make([]Event, 0, len(words)/WordsPerChunk+2)

	for i := 0; i < len(words); i += WordsPerChunk {
		end := i + WordsPerChunk
		if end > len(words) {
			end = len(words)
		}

		content := strings.Join(words[i:end], " ")
		if end < len(words) {
			content += " "
		}
		events = append(events, Event{Content: content, Agent: agent})
	}

	return append(events, Event{Content: "", Agent: agent, Done: true})
}

// ErrorEvent is the single event sent when no answer could be produced
func ErrorEvent(err error) Event {
	return Event{
		Content: fmt.Sprintf("I apologize, but I encountered an error: %v. Please try again.", err),
		Agent:   router.LabelError,
		Done:    true,
	}
}

// Emit sends events in order, pausing delay after each content chunk.
// It stops at the first send error or when ctx is done.
func Emit(ctx context.Context, events []Event, delay time.Duration, send func(Event) error) error {
	for _, ev := range events {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := send(ev); err != nil {
			return err
		}
		if ev.Done || delay <= 0 {
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return nil
}
