package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartfinance-ai-be/internal/pkg/logger"
	"smartfinance-ai-be/pkg/events"
	pktNats "smartfinance-ai-be/pkg/nats"
)

type fakeSubscriber struct {
	subject string
	durable string
	err     error
}

func (f *fakeSubscriber) Subscribe(ctx context.Context, subject, durableName string, handler pktNats.EventHandler) error {
	f.subject, f.durable = subject, durableName
	return f.err
}

func TestAuditService_Start(t *testing.T) {
	sub := &fakeSubscriber{}
	svc := NewAuditService(sub, logger.NewNop())

	require.NoError(t, svc.Start(context.Background()))
	assert.Equal(t, "events.>", sub.subject)
	assert.Equal(t, auditDurable, sub.durable)

	sub.err = errors.New("no jetstream")
	assert.Error(t, svc.Start(context.Background()))
}

func TestAuditService_HandleEvent(t *testing.T) {
	svc := NewAuditService(&fakeSubscriber{}, logger.NewNop())
	ctx := context.Background()

	for _, ev := range []events.Event{
		events.NewEvent(events.TypeChatAnswered, map[string]interface{}{"agent": "billing_agent"}),
		events.NewEvent(events.TypeChatAnswered, map[string]interface{}{"agent": "billing_agent"}),
		events.NewEvent(events.TypeChatAnswered, map[string]interface{}{"agent": "error"}),
		events.NewEvent(events.TypeDocumentIngested, map[string]interface{}{"chunks": 3}),
	} {
		require.NoError(t, svc.HandleEvent(ctx, ev))
	}

	assert.Equal(t, map[string]int{
		"CHAT_ANSWERED:billing_agent": 2,
		"CHAT_ANSWERED:error":         1,
		"DOCUMENT_INGESTED":           1,
	}, svc.Counts())
}
