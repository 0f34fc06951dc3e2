package events

import (
	"sync"

	"github.com/kcaldas/microshell/pkg/logging"
)

// EventHandler is a function that handles an event
type EventHandler func(event interface{})

// Publisher allows publishing events
type Publisher interface {
	Publish(eventType string, event interface{})
}

// Subscriber allows subscribing to events
type Subscriber interface {
	Subscribe(eventType string, handler EventHandler)
}

// EventBus provides both publishing and subscribing
type EventBus interface {
	Publisher
	Subscriber
}

// InMemoryBus delivers events synchronously on the publishing goroutine, in
// subscription order. A shell engine publishes from inside its tick, so a
// handler must not block.
type InMemoryBus struct {
	mu          sync.RWMutex
	subscribers map[string][]EventHandler
	logger      logging.Logger
}

// NewEventBus creates a new, empty event bus.
func NewEventBus() EventBus {
	return NewEventBusWithLogger(logging.NewComponentLogger("events"))
}

// NewEventBusWithLogger creates a bus that reports handler panics to logger.
func NewEventBusWithLogger(logger logging.Logger) *InMemoryBus {
	return &InMemoryBus{
		subscribers: make(map[string][]EventHandler),
		logger:      logger,
	}
}

// Subscribe adds a handler for a specific event type.
func (b *InMemoryBus) Subscribe(eventType string, handler EventHandler) {
	if handler == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	b.subscribers[eventType] = append(b.subscribers[eventType], handler)
}

// Publish calls every handler subscribed to eventType before returning. A
// panicking handler is logged and does not stop the others.
func (b *InMemoryBus) Publish(eventType string, event interface{}) {
	for _, h := range b.handlersFor(eventType) {
		b.deliver(eventType, h, event)
	}
}

// HandlerCount returns how many handlers are subscribed to eventType.
func (b *InMemoryBus) HandlerCount(eventType string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers[eventType])
}

// handlersFor snapshots handlers so a handler may subscribe without
// deadlocking.
func (b *InMemoryBus) handlersFor(eventType string) []EventHandler {
	b.mu.RLock()
	defer b.mu.RUnlock()
	handlers := make([]EventHandler, len(b.subscribers[eventType]))
	copy(handlers, b.subscribers[eventType])
	return handlers
}

func (b *InMemoryBus) deliver(eventType string, h EventHandler, event interface{}) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panicked", "topic", eventType, "panic", r)
		}
	}()
	h(event)
}
