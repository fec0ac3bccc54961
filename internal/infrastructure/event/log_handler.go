package event

import (
	"context"

	"github.com/loja/backend/internal/domain/shared"
	"github.com/loja/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// LogHandler writes one structured log line per domain event
type LogHandler struct {
	logger *zap.Logger
}

// NewLogHandler creates a wildcard handler that logs every event
func NewLogHandler(logger *zap.Logger) *LogHandler {
	return &LogHandler{logger: logger}
}

// Handle logs the event with its aggregate and the originating request
func (h *LogHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	logger.WithLogger(ctx, h.logger).Info("domain event",
		zap.String("event_type", event.EventType()),
		zap.String("event_id", event.EventID().String()),
		zap.String("aggregate_type", event.AggregateType()),
		zap.String("aggregate_id", event.AggregateID().String()),
		zap.Time("occurred_at", event.OccurredAt()),
	)
	return nil
}

// EventTypes returns nil: the handler receives every event
func (h *LogHandler) EventTypes() []string {
	return nil
}
