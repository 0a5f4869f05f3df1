package eventbus

import (
	"context"
	"log/slog"
	"sync"

	"github.com/fortizbank/fortiz/pkg/domain/events"
	"github.com/fortizbank/fortiz/pkg/eventbus"
)

// MemoryEventBus dispatches events synchronously to the handlers registered in
// this process. It records every emitted event, which tests rely on.
type MemoryEventBus struct {
	handlers  map[events.EventType][]eventbus.HandlerFunc
	mu        sync.RWMutex
	logger    *slog.Logger
	published []events.Event
}

// NewWithMemory creates a synchronous in-memory event bus.
func NewWithMemory(logger *slog.Logger) *MemoryEventBus {
	return &MemoryEventBus{
		handlers: make(map[events.EventType][]eventbus.HandlerFunc),
		logger:   logger.With("bus", "memory"),
	}
}

// Register registers a handler for a specific event type.
func (b *MemoryEventBus) Register(eventType events.EventType, handler eventbus.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Emit dispatches the event to all registered handlers for its type.
// Handler errors are logged and never returned to the emitter.
func (b *MemoryEventBus) Emit(ctx context.Context, event events.Event) error {
	b.mu.Lock()
	b.published = append(b.published, event)
	handlers := append([]eventbus.HandlerFunc(nil), b.handlers[events.EventType(event.Type())]...)
	b.mu.Unlock()

	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			b.logger.Error("failed to process event", "type", event.Type(), "error", err)
		}
	}
	return nil
}

// Published returns the events emitted so far.
func (b *MemoryEventBus) Published() []events.Event {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]events.Event(nil), b.published...)
}

var _ eventbus.Bus = (*MemoryEventBus)(nil)

type queuedEvent struct {
	ctx   context.Context
	event events.Event
}

// MemoryAsyncEventBus queues events on a buffered channel and runs handlers
// on background goroutines, so Emit never waits for delivery.
type MemoryAsyncEventBus struct {
	handlers map[events.EventType][]eventbus.HandlerFunc
	mu       sync.RWMutex
	eventCh  chan queuedEvent
	wg       sync.WaitGroup
	log      *slog.Logger
}

// NewWithMemoryAsync creates an asynchronous in-memory event bus.
func NewWithMemoryAsync(logger *slog.Logger) *MemoryAsyncEventBus {
	b := &MemoryAsyncEventBus{
		handlers: make(map[events.EventType][]eventbus.HandlerFunc),
		eventCh:  make(chan queuedEvent, 100),
		log:      logger.With("bus", "memory-async"),
	}
	go b.process()
	return b
}

func (b *MemoryAsyncEventBus) Register(eventType events.EventType, handler eventbus.HandlerFunc) {
	b.mu.Lock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
	b.mu.Unlock()
}

// Emit enqueues the event. The handler context is detached from the request
// so a finished request does not cancel delivery.
func (b *MemoryAsyncEventBus) Emit(ctx context.Context, event events.Event) error {
	b.wg.Add(1)
	select {
	case b.eventCh <- queuedEvent{ctx: context.WithoutCancel(ctx), event: event}:
		return nil
	case <-ctx.Done():
		b.wg.Done()
		return ctx.Err()
	}
}

// Wait blocks until every emitted event has been handled.
func (b *MemoryAsyncEventBus) Wait() {
	b.wg.Wait()
}

func (b *MemoryAsyncEventBus) process() {
	for w := range b.eventCh {
		go func(w queuedEvent) {
			defer b.wg.Done()
			b.mu.RLock()
			handlers := append([]eventbus.HandlerFunc(nil), b.handlers[events.EventType(w.event.Type())]...)
			b.mu.RUnlock()
			executeHandlers(w.ctx, b.log, w.event, handlers, "")
		}(w)
	}
}

var _ eventbus.Bus = (*MemoryAsyncEventBus)(nil)
