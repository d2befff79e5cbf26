package service

import (
	"context"
	"sync"

	"smartfinance-ai-be/internal/pkg/logger"
	"smartfinance-ai-be/pkg/events"
	pktNats "smartfinance-ai-be/pkg/nats"
)

const auditDurable = "smartfinance-audit-worker"

// EventSubscriber is the subset of the NATS subscriber the audit trail needs
type EventSubscriber interface {
	Subscribe(ctx context.Context, subject, durableName string, handler pktNats.EventHandler) error
}

// AuditService writes every bus event to the audit log and keeps running
// totals per event type and agent
type AuditService struct {
	subscriber EventSubscriber
	logger     logger.ILogger

	mu     sync.Mutex
	counts map[string]int
}

func NewAuditService(sub EventSubscriber, log logger.ILogger) *AuditService {
	return &AuditService{
		subscriber: sub,
		logger:     log,
		counts:     map[string]int{},
	}
}

// Start begins listening to the event bus.
func (s *AuditService) Start(ctx context.Context) error {
	if err := s.subscriber.Subscribe(ctx, pktNats.SubjectPrefix+">", auditDurable, s.HandleEvent); err != nil {
		s.logger.Error("AuditService", "Failed to start audit subscriber", map[string]interface{}{"error": err.Error()})
		return err
	}
	s.logger.Info("AuditService", "Audit service started", nil)
	return nil
}

func (s *AuditService) HandleEvent(ctx context.Context, event events.Event) error {
	key := event.EventType()
	if agent, ok := event.Payload()["agent"].(string); ok && agent != "" {
		key += ":" + agent
	}

	s.mu.Lock()
	s.counts[key]++
	total := s.counts[key]
	s.mu.Unlock()

	details := map[string]interface{}{
		"occurred_at": event.Timestamp(),
		"total":       total,
	}
	for k, v := range event.Payload() {
		details[k] = v
	}
	s.logger.Info("AuditService", event.EventType(), details)

	return nil
}

// Counts returns a copy of the running totals keyed by type or type:agent
func (s *AuditService) Counts() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]int, len(s.counts))
	for k, v := range s.counts {
		out[k] = v
	}
	return out
}
