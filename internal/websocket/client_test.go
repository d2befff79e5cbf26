package websocket

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartfinance-ai-be/internal/dto"
	"smartfinance-ai-be/internal/pkg/logger"
	"smartfinance-ai-be/pkg/ai/stream"
)

type fakeStreamer struct {
	answer string
	agent  string
	got    []dto.ChatRequest
}

func (f *fakeStreamer) Stream(ctx context.Context, req *dto.ChatRequest) (string, []stream.Event) {
	f.got = append(f.got, *req)
	return "session-1", stream.Chunk(f.answer, f.agent)
}

func (f *fakeStreamer) Emit(ctx context.Context, events []stream.Event, send func(stream.Event) error) error {
	for _, ev := range events {
		if err := send(ev); err != nil {
			return err
		}
	}
	return nil
}

func newTestClient(t *testing.T, streamer ChatStreamer) *Client {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return &Client{
		Streamer: streamer,
		Logger:   logger.NewNop(),
		Send:     make(chan []byte, 64),
		ctx:      ctx,
		cancel:   cancel,
	}
}

func drain(t *testing.T, c *Client) []stream.Event {
	t.Helper()
	var events []stream.Event
	for {
		select {
		case payload := <-c.Send:
			var ev stream.Event
			require.NoError(t, json.Unmarshal(payload, &ev))
			events = append(events, ev)
		default:
			return events
		}
	}
}

func TestClient_Handle(t *testing.T) {
	tests := []struct {
		name        string
		frame       string
		wantEvents  []stream.Event
		wantStreams int
	}{
		{
			name:  "request streams ordered chunks",
			frame: `{"message":"  What is my balance?  ","session_id":"s1"}`,
			wantEvents: []stream.Event{
				{Content: "one two three ", Agent: "billing_agent"},
				{Content: "four", Agent: "billing_agent"},
				{Content: "", Agent: "billing_agent", Done: true},
			},
			wantStreams: 1,
		},
		{
			name:        "malformed frame yields one error event",
			frame:       `{"message":`,
			wantEvents:  []stream.Event{stream.ErrorEvent(errInvalidFrame)},
			wantStreams: 0,
		},
		{
			name:        "empty message yields one error event",
			frame:       `{"message":"   "}`,
			wantEvents:  []stream.Event{stream.ErrorEvent(dto.ErrEmptyMessage)},
			wantStreams: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			streamer := &fakeStreamer{answer: "one two three four", agent: "billing_agent"}
			c := newTestClient(t, streamer)

			require.NoError(t, c.handle([]byte(tt.frame)))

			assert.Equal(t, tt.wantEvents, drain(t, c))
			assert.Len(t, streamer.got, tt.wantStreams)
		})
	}
}

func TestClient_HandleTrimsRequest(t *testing.T) {
	streamer := &fakeStreamer{answer: "ok", agent: "technical_agent"}
	c := newTestClient(t, streamer)

	require.NoError(t, c.handle([]byte(`{"message":" login fails ","session_id":" s9 "}`)))

	require.Len(t, streamer.got, 1)
	assert.Equal(t, "login fails", streamer.got[0].Message)
	assert.Equal(t, "s9", streamer.got[0].SessionID)
}

func TestClient_FramesInOrderEndWithOneDone(t *testing.T) {
	streamer := &fakeStreamer{answer: "a b c d e f g h", agent: "policy_agent"}
	c := newTestClient(t, streamer)

	require.NoError(t, c.handle([]byte(`{"message":"first"}`)))
	require.NoError(t, c.handle([]byte(`{"message":"second"}`)))

	events := drain(t, c)
	require.Len(t, events, 8)

	for _, request := range [][]stream.Event{events[:4], events[4:]} {
		var text string
		for i, ev := range request {
			assert.Equal(t, i == len(request)-1, ev.Done)
			text += ev.Content
		}
		assert.Equal(t, "a b c d e f g h", text)
	}
}

func TestClient_EnqueueStopsWhenClosed(t *testing.T) {
	c := newTestClient(t, &fakeStreamer{})
	c.Send = make(chan []byte) // unbuffered, nobody reading
	c.cancel()

	assert.ErrorIs(t, c.enqueue(stream.Event{Content: "x"}), context.Canceled)
}
