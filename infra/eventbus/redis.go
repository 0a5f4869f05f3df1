package eventbus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fortizbank/fortiz/pkg/domain/events"
	"github.com/fortizbank/fortiz/pkg/eventbus"
	"github.com/redis/go-redis/v9"
)

// RedisEventBus persists events in one Redis stream per event type and
// consumes them through a consumer group. Failed deliveries go to a DLQ stream.
type RedisEventBus struct {
	client    *redis.Client
	keyPrefix string
	consumer  string
	logger    *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWithRedis creates a Redis-backed event bus over an existing client.
func NewWithRedis(client *redis.Client, keyPrefix string, logger *slog.Logger) (*RedisEventBus, error) {
	if client == nil {
		return nil, errors.New("redis event bus: client is required")
	}
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis event bus: connection failed: %w", err)
	}

	host, _ := os.Hostname()
	ctx, cancel := context.WithCancel(context.Background())
	return &RedisEventBus{
		client:    client,
		keyPrefix: keyPrefix,
		consumer:  fmt.Sprintf("%s-%d", host, os.Getpid()),
		logger:    logger.With("bus", "redis"),
		ctx:       ctx,
		cancel:    cancel,
	}, nil
}

// Emit appends the event to its stream.
func (b *RedisEventBus) Emit(ctx context.Context, event events.Event) error {
	envBytes, err := encodeEnvelope(event)
	if err != nil {
		return err
	}

	stream := streamNameFor(b.keyPrefix, events.EventType(event.Type()))
	if err := b.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]any{"event": string(envBytes)},
	}).Err(); err != nil {
		return fmt.Errorf("redis event bus: emit failed: %w", err)
	}
	b.logger.Debug("event emitted", "type", event.Type(), "stream", stream)
	return nil
}

// Register creates the consumer group if needed and starts a consumer loop.
func (b *RedisEventBus) Register(eventType events.EventType, handler eventbus.HandlerFunc) {
	stream := streamNameFor(b.keyPrefix, eventType)
	group := groupNameFor(eventType)

	err := b.client.XGroupCreateMkStream(b.ctx, stream, group, "0").Err()
	if err != nil && !isBusyGroup(err) {
		b.logger.Error("failed to create consumer group", "error", err, "stream", stream)
	}

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		b.consume(stream, group, eventType, handler)
	}()
	b.logger.Info("handler registered", "event_type", eventType, "stream", stream, "consumer", b.consumer)
}

func (b *RedisEventBus) consume(stream, group string, eventType events.EventType, handler eventbus.HandlerFunc) {
	for {
		res, err := b.client.XReadGroup(b.ctx, &redis.XReadGroupArgs{
			Group:    group,
			Consumer: b.consumer,
			Streams:  []string{stream, ">"},
			Count:    10,
			Block:    5 * time.Second,
		}).Result()
		if err != nil {
			if b.ctx.Err() != nil {
				return
			}
			if !errors.Is(err, redis.Nil) {
				b.logger.Error("error reading from stream", "error", err, "stream", stream)
				time.Sleep(time.Second)
			}
			continue
		}

		for _, s := range res {
			for _, msg := range s.Messages {
				b.handleMessage(stream, group, eventType, handler, msg)
			}
		}
	}
}

func (b *RedisEventBus) handleMessage(
	stream, group string,
	eventType events.EventType,
	handler eventbus.HandlerFunc,
	msg redis.XMessage,
) {
	defer func() {
		if err := b.client.XAck(b.ctx, stream, group, msg.ID).Err(); err != nil {
			b.logger.Error("failed to acknowledge message", "error", err, "msg_id", msg.ID)
		}
	}()

	raw, ok := msg.Values["event"].(string)
	if !ok {
		b.pushToDLQ(eventType, msg.Values)
		return
	}
	evt, err := decodeEnvelope([]byte(raw))
	if err != nil {
		b.logger.Error("failed to decode event", "error", err, "msg_id", msg.ID)
		b.pushToDLQ(eventType, msg.Values)
		return
	}
	if !executeHandlers(b.ctx, b.logger, evt, []eventbus.HandlerFunc{handler}, msg.ID) {
		b.pushToDLQ(eventType, msg.Values)
	}
}

// pushToDLQ keeps the raw message for inspection or manual replay.
func (b *RedisEventBus) pushToDLQ(eventType events.EventType, values map[string]any) {
	dlq := dlqStreamName(b.keyPrefix, eventType)
	if err := b.client.XAdd(b.ctx, &redis.XAddArgs{Stream: dlq, Values: values}).Err(); err != nil {
		b.logger.Error("failed to push to DLQ", "error", err, "stream", dlq)
		return
	}
	b.logger.Warn("event pushed to DLQ", "stream", dlq)
}

// Close stops the consumer loops. The client is owned by the caller.
func (b *RedisEventBus) Close() error {
	b.cancel()
	b.wg.Wait()
	return nil
}

func isBusyGroup(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), "BUSYGROUP")
}

var _ eventbus.Bus = (*RedisEventBus)(nil)
