// Package transfer implements the money movement flows: the internal
// transfer between two accounts of one user, the extended transfer
// initiation with holds, and the detail and lifecycle actions of an
// extended transfer.
//
// Writes are issued as independent round trips against the repositories.
// Unless config.Transfer.Atomic is set, no database transaction surrounds
// them and concurrent transfers from one account can overwrite each other's
// balance.
package transfer

import (
	"context"
	"log/slog"
	"time"

	"github.com/fortizbank/fortiz/pkg/config"
	"github.com/fortizbank/fortiz/pkg/domain/events"
	"github.com/fortizbank/fortiz/pkg/eventbus"
	"github.com/fortizbank/fortiz/pkg/repository"
	"github.com/google/uuid"
)

// CacheInvalidator drops cached read models of a user after their balances change.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, userID uuid.UUID)
}

type Service struct {
	uow    repository.UnitOfWork
	bus    eventbus.Bus
	cache  CacheInvalidator
	cfg    *config.Transfer
	logger *slog.Logger
	now    func() time.Time
}

// New creates a transfer service. cache may be nil.
func New(
	uow repository.UnitOfWork,
	bus eventbus.Bus,
	cache CacheInvalidator,
	cfg *config.Transfer,
	logger *slog.Logger,
) *Service {
	if cfg == nil {
		cfg = &config.Transfer{}
	}
	return &Service{
		uow:    uow,
		bus:    bus,
		cache:  cache,
		cfg:    cfg,
		logger: logger.With("service", "transfer"),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// notify emits a notification request. Failures are logged and reported
// to the caller as false, never as an error.
func (s *Service) notify(ctx context.Context, log *slog.Logger, userID uuid.UUID, template string, params map[string]string) bool {
	if s.bus == nil {
		return false
	}
	if err := s.bus.Emit(ctx, events.NewNotificationRequested(userID, template, params)); err != nil {
		log.Error("failed to request notification", "template", template, "error", err)
		return false
	}
	return true
}

func (s *Service) invalidate(ctx context.Context, userID uuid.UUID) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, userID)
	}
}
