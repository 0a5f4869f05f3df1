//go:build integration

package eventbus

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/fortizbank/fortiz/pkg/domain/events"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRedisClient(tb testing.TB) *redis.Client {
	tb.Helper()
	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7.0.5",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(tb, err)
	tb.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(tb, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(tb, err)

	client := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
	tb.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisEventBus_EmitAndConsume(t *testing.T) {
	client := setupRedisClient(t)
	bus, err := NewWithRedis(client, "test:", discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = bus.Close() })

	received := make(chan *events.NotificationRequested, 1)
	bus.Register(events.EventTypeNotificationRequested, func(_ context.Context, e events.Event) error {
		received <- e.(*events.NotificationRequested)
		return nil
	})

	sent := events.NewNotificationRequested(uuid.New(), events.TemplateTransferCompleted, nil)
	require.NoError(t, bus.Emit(context.Background(), sent))

	select {
	case got := <-received:
		require.Equal(t, sent.ID, got.ID)
	case <-time.After(10 * time.Second):
		t.Fatal("event not delivered")
	}
}

func TestRedisEventBus_FailedHandlerGoesToDLQ(t *testing.T) {
	client := setupRedisClient(t)
	bus, err := NewWithRedis(client, "test:", discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = bus.Close() })

	bus.Register(events.EventTypeNotificationRequested, func(context.Context, events.Event) error {
		return fmt.Errorf("provider rejected")
	})
	require.NoError(t, bus.Emit(context.Background(), events.NewNotificationRequested(uuid.New(), "x", nil)))

	dlq := dlqStreamName("test:", events.EventTypeNotificationRequested)
	require.Eventually(t, func() bool {
		n, err := client.XLen(context.Background(), dlq).Result()
		return err == nil && n == 1
	}, 10*time.Second, 100*time.Millisecond)
}
