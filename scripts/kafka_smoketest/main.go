package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"time"

	infra_eventbus "github.com/fortizbank/fortiz/infra/eventbus"
	"github.com/fortizbank/fortiz/pkg/domain/events"
	"github.com/google/uuid"
)

// RunSmokeTest round-trips a notification request through the Kafka event
// bus to verify a local cluster is usable by the server.
func RunSmokeTest() error {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	brokers := strings.TrimSpace(os.Getenv("BROKERS"))
	if brokers == "" {
		brokers = "localhost:9093,localhost:9092"
	}
	groupID := strings.TrimSpace(os.Getenv("GROUP_ID"))
	if groupID == "" {
		groupID = "fortiz-smoketest"
	}

	bus, err := infra_eventbus.NewWithKafka(brokers, infra_eventbus.KafkaEventBusConfig{
		GroupID:     groupID,
		TopicPrefix: "fortiz.smoketest",
	}, logger)
	if err != nil {
		logger.Error("kafka bus init failed", "error", err)
		return err
	}
	defer func() { _ = bus.Close() }()

	want := events.NewNotificationRequested(uuid.New(), events.TemplateTransferCompleted, map[string]string{
		"reference": "SMOKE",
	})
	received := make(chan struct{}, 1)
	bus.Register(events.EventTypeNotificationRequested, func(ctx context.Context, evt events.Event) error {
		if n, ok := evt.(*events.NotificationRequested); ok && n.ID == want.ID {
			select {
			case received <- struct{}{}:
			default:
			}
		}
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := bus.Emit(ctx, want); err != nil {
		logger.Error("emit failed", "error", err)
		return err
	}
	logger.Info("produced", "event_id", want.ID)

	select {
	case <-received:
		logger.Info("consumed", "event_id", want.ID)
	case <-ctx.Done():
		logger.Error("timed out waiting for event", "event_id", want.ID)
		return errors.New("kafka smoke test timed out")
	}

	logger.Info("kafka smoke test passed")
	return nil
}

// main runs the smoke test and exits non-zero on failure.
func main() {
	if err := RunSmokeTest(); err != nil {
		os.Exit(1)
	}
}
