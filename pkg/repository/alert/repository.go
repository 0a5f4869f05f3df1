package alert

import (
	"context"

	"github.com/fortizbank/fortiz/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines data access for user alerts.
type Repository interface {
	Create(ctx context.Context, create dto.AlertCreate) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.AlertRead, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)

	// MarkRead flags an alert owned by userID as read.
	// It returns domain.ErrNotFound when no such alert exists.
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
}
