package eventbus

import (
	"context"

	"github.com/fortizbank/fortiz/pkg/domain/events"
)

// HandlerFunc processes one event. A returned error is logged by the bus and,
// for durable transports, routes the message to the dead-letter queue.
type HandlerFunc func(ctx context.Context, event events.Event) error

// Bus defines the contract for emitting and consuming domain events.
type Bus interface {
	Emit(ctx context.Context, event events.Event) error
	Register(eventType events.EventType, handler HandlerFunc)
}
