package transfer

import (
	"context"
	"time"

	"github.com/fortizbank/fortiz/pkg/dto"
	"github.com/google/uuid"
)

// Repository covers the extended transfer aggregate: the transfer row and
// its holds, ledger entries and status-change events.
type Repository interface {
	Create(ctx context.Context, create dto.TransferCreate) error

	// Get returns the transfer only when it is owned by userID.
	Get(ctx context.Context, userID, id uuid.UUID) (*dto.TransferRead, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error

	// MarkMfaVerified sets mfa_verified and moves the transfer to status.
	MarkMfaVerified(ctx context.Context, id uuid.UUID, status string) error

	CreateHold(ctx context.Context, create dto.HoldCreate) error
	ListHolds(ctx context.Context, transferID uuid.UUID) ([]*dto.HoldRead, error)
	ListActiveHolds(ctx context.Context, transferID uuid.UUID) ([]*dto.HoldRead, error)

	// ReleaseHolds marks every active hold of the transfer released at the given time.
	ReleaseHolds(ctx context.Context, transferID uuid.UUID, at time.Time) error

	CreateLedgerEntry(ctx context.Context, create dto.LedgerEntryCreate) error
	ListLedgerEntries(ctx context.Context, transferID uuid.UUID) ([]*dto.LedgerEntryRead, error)

	CreateEvent(ctx context.Context, create dto.TransferEventCreate) error
	ListEvents(ctx context.Context, transferID uuid.UUID) ([]*dto.TransferEventRead, error)
}
