package service

import (
	"context"
	"time"

	"smartfinance-ai-be/internal/dto"
	"smartfinance-ai-be/internal/pkg/logger"
	"smartfinance-ai-be/pkg/events"
)

const publishTimeout = 3 * time.Second

// EventPublisher emits domain events. A nil bus turns every call into a
// no-op so the service runs without NATS.
type EventPublisher struct {
	publisher events.Publisher
	logger    logger.ILogger
}

func NewEventPublisher(publisher events.Publisher, log logger.ILogger) *EventPublisher {
	return &EventPublisher{
		publisher: publisher,
		logger:    log,
	}
}

func (p *EventPublisher) PublishChatAnswered(ctx context.Context, payload dto.PublishChatAnsweredEvent) {
	p.publish(ctx, events.NewEvent(events.TypeChatAnswered, map[string]interface{}{
		"session_id":      payload.SessionID,
		"user_id":         payload.UserID,
		"agent":           payload.Agent,
		"response_length": payload.Length,
		"streamed":        payload.Streamed,
	}))
}

func (p *EventPublisher) PublishDocumentIngested(ctx context.Context, msg dto.PublishIngestDocumentMessage, chunks int) {
	p.publish(ctx, events.NewEvent(events.TypeDocumentIngested, map[string]interface{}{
		"document_id": msg.Id.String(),
		"collection":  msg.Collection,
		"source":      msg.Source,
		"chunks":      chunks,
	}))
}

func (p *EventPublisher) publish(ctx context.Context, evt events.Event) {
	if p == nil || p.publisher == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("EVENTS", "Failed to publish "+evt.EventType()+" event", map[string]interface{}{"error": err.Error()})
	}
}
