package eventbus

import (
	"sync"

	"homenotify/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler consumes one published event.
type Handler func(event domain.Event)

// Bus routes decoded events to the handlers registered for their type.
// It decouples the bus-listener loop from notification dispatch: the
// listener publishes, the dispatcher subscribes.
//
// Delivery is synchronous and in registration order. A panicking handler is
// isolated and logged; later handlers and later events are unaffected.
type Bus struct {
	logger *zap.Logger

	mu       sync.RWMutex
	handlers map[domain.EventType][]Handler
}

// New creates an empty bus
func New(logger *zap.Logger) *Bus {
	return &Bus{
		logger:   logger,
		handlers: make(map[domain.EventType][]Handler),
	}
}

// Subscribe registers a handler for one event type. Handlers are expected to
// be registered at startup, before routing begins.
func (b *Bus) Subscribe(eventType domain.EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Publish delivers the event to every handler registered for its type
func (b *Bus) Publish(event domain.Event) {
	b.mu.RLock()
	handlers := b.handlers[event.Type()]
	b.mu.RUnlock()

	// Delivery id ties one physical event to all resulting handler and
	// send log lines.
	deliveryID := uuid.NewString()

	b.logger.Debug("Publishing event",
		zap.String("type", string(event.Type())),
		zap.String("delivery_id", deliveryID),
		zap.Int("handlers", len(handlers)),
	)

	for _, handler := range handlers {
		b.invoke(handler, event, deliveryID)
	}
}

func (b *Bus) invoke(handler Handler, event domain.Event, deliveryID string) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Event handler panicked",
				zap.String("type", string(event.Type())),
				zap.String("delivery_id", deliveryID),
				zap.Any("panic", r),
			)
		}
	}()

	handler(event)
}
