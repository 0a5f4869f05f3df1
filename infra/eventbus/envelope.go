package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/fortizbank/fortiz/pkg/domain/events"
	"github.com/fortizbank/fortiz/pkg/eventbus"
)

type envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func encodeEnvelope(event events.Event) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("event bus: marshal failed: %w", err)
	}
	envBytes, err := json.Marshal(envelope{Type: event.Type(), Payload: data})
	if err != nil {
		return nil, fmt.Errorf("event bus: envelope marshal failed: %w", err)
	}
	return envBytes, nil
}

// decodeEnvelope rebuilds a typed event from its wire form using events.EventTypes.
func decodeEnvelope(raw []byte) (events.Event, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("event bus: unmarshal envelope: %w", err)
	}
	constructor, ok := events.EventTypes[events.EventType(env.Type)]
	if !ok {
		return nil, fmt.Errorf("event bus: unknown event type %q", env.Type)
	}
	evt := constructor()
	if err := json.Unmarshal(env.Payload, evt); err != nil {
		return nil, fmt.Errorf("event bus: unmarshal payload %q: %w", env.Type, err)
	}
	return evt, nil
}

// executeHandlers runs every handler concurrently and reports whether all succeeded.
func executeHandlers(
	ctx context.Context,
	logger *slog.Logger,
	evt events.Event,
	handlers []eventbus.HandlerFunc,
	msgID string,
) bool {
	var wg sync.WaitGroup
	var mu sync.Mutex
	success := true

	for _, handler := range handlers {
		wg.Add(1)
		go func(h eventbus.HandlerFunc) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					mu.Lock()
					success = false
					mu.Unlock()
					logger.Error("handler panic recovered", "panic", r, "event_type", evt.Type(), "msg_id", msgID)
				}
			}()
			if err := h(ctx, evt); err != nil {
				mu.Lock()
				success = false
				mu.Unlock()
				logger.Error("handler error", "error", err, "event_type", evt.Type(), "msg_id", msgID)
			}
		}(handler)
	}

	wg.Wait()
	return success
}
