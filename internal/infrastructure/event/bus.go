// Package event provides the in-process event bus the application
// services publish domain events through.
package event

import (
	"context"
	"sync"

	"github.com/ims/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// InMemoryBus dispatches domain events synchronously to subscribed
// handlers. Handler errors are logged and do not stop delivery to the
// remaining handlers; publishing is best effort by contract.
type InMemoryBus struct {
	mu       sync.RWMutex
	handlers map[string][]shared.EventHandler // event type -> handlers; "" catches all
	log      *zap.Logger
}

// NewInMemoryBus creates a new in-memory event bus
func NewInMemoryBus(log *zap.Logger) *InMemoryBus {
	return &InMemoryBus{
		handlers: make(map[string][]shared.EventHandler),
		log:      log,
	}
}

// Subscribe implements shared.EventSubscriber
func (b *InMemoryBus) Subscribe(handler shared.EventHandler, eventTypes ...string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(eventTypes) == 0 {
		eventTypes = handler.EventTypes()
	}
	if len(eventTypes) == 0 {
		b.handlers[""] = append(b.handlers[""], handler)
		return
	}
	for _, eventType := range eventTypes {
		b.handlers[eventType] = append(b.handlers[eventType], handler)
	}
}

// Publish implements shared.EventPublisher
func (b *InMemoryBus) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	for _, evt := range events {
		b.dispatch(ctx, evt)
	}
	return nil
}

func (b *InMemoryBus) dispatch(ctx context.Context, evt shared.DomainEvent) {
	b.mu.RLock()
	handlers := make([]shared.EventHandler, 0, len(b.handlers[evt.EventType()])+len(b.handlers[""]))
	handlers = append(handlers, b.handlers[evt.EventType()]...)
	handlers = append(handlers, b.handlers[""]...)
	b.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler.Handle(ctx, evt); err != nil {
			b.log.Error("event handler failed",
				zap.String("event_type", evt.EventType()),
				zap.String("aggregate_id", evt.AggregateID().String()),
				zap.Error(err),
			)
		}
	}
}
