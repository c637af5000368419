package event

import (
	"context"

	"github.com/ims/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// LoggingHandler records every published domain event, giving the
// deployment an audit trail of order lifecycle changes.
type LoggingHandler struct {
	log *zap.Logger
}

// NewLoggingHandler creates a handler that logs all events
func NewLoggingHandler(log *zap.Logger) *LoggingHandler {
	return &LoggingHandler{log: log}
}

// Handle implements shared.EventHandler
func (h *LoggingHandler) Handle(_ context.Context, evt shared.DomainEvent) error {
	h.log.Info("domain event",
		zap.String("event_type", evt.EventType()),
		zap.String("aggregate_type", evt.AggregateType()),
		zap.String("aggregate_id", evt.AggregateID().String()),
		zap.Time("occurred_at", evt.OccurredAt()),
	)
	return nil
}

// EventTypes implements shared.EventHandler; empty means all events
func (h *LoggingHandler) EventTypes() []string {
	return nil
}
