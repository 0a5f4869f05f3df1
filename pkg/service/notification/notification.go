// Package notification turns NotificationRequested events into emails.
package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fortizbank/fortiz/pkg/domain/events"
	"github.com/fortizbank/fortiz/pkg/eventbus"
	"github.com/fortizbank/fortiz/pkg/repository"
)

// Sender delivers one templated email.
type Sender interface {
	Send(ctx context.Context, to, template string, params map[string]string) error
}

var ErrUnexpectedEvent = errors.New("unexpected event type")

type Service struct {
	uow    repository.UnitOfWork
	sender Sender
	logger *slog.Logger
}

func New(uow repository.UnitOfWork, sender Sender, logger *slog.Logger) *Service {
	return &Service{uow: uow, sender: sender, logger: logger.With("service", "notification")}
}

// Handle is the event bus handler for events.EventTypeNotificationRequested.
// When the event carries no email the recipient is looked up by user id.
func (s *Service) Handle(ctx context.Context, e events.Event) error {
	evt, ok := e.(*events.NotificationRequested)
	if !ok {
		s.logger.Error("unexpected event", "type", e.Type())
		return ErrUnexpectedEvent
	}
	log := s.logger.With("event_id", evt.ID, "template", evt.Template, "user_id", evt.UserID)

	to := evt.Email
	if to == "" {
		repo, err := s.uow.UserRepository()
		if err != nil {
			return fmt.Errorf("failed to get user repository: %w", err)
		}
		u, err := repo.Get(ctx, evt.UserID)
		if err != nil {
			log.Error("failed to resolve recipient", "error", err)
			return fmt.Errorf("failed to resolve recipient: %w", err)
		}
		to = u.Email
	}

	if err := s.sender.Send(ctx, to, evt.Template, evt.Params); err != nil {
		log.Error("failed to send notification", "error", err)
		return err
	}
	log.Debug("notification sent")
	return nil
}

// Register subscribes the service to notification requests on bus.
func (s *Service) Register(bus eventbus.Bus) {
	bus.Register(events.EventTypeNotificationRequested, s.Handle)
}
