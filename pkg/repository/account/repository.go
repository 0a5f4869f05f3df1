package account

import (
	"context"

	"github.com/fortizbank/fortiz/pkg/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Repository defines the interface for account data access operations with support for CQRS (Command/Query Responsibility Segregation).
type Repository interface {
	// Create inserts a new account record from a DTO.
	Create(ctx context.Context, create dto.AccountCreate) error

	// Get retrieves an account by its ID as a read-optimized DTO.
	Get(ctx context.Context, id uuid.UUID) (*dto.AccountRead, error)

	// GetOwned retrieves an account by its ID only if it belongs to userID.
	GetOwned(ctx context.Context, userID, id uuid.UUID) (*dto.AccountRead, error)

	// GetOwnedPair returns the rows among ids that belong to userID.
	// Callers compare the length of the result to detect foreign or missing accounts.
	GetOwnedPair(ctx context.Context, userID uuid.UUID, ids ...uuid.UUID) ([]*dto.AccountRead, error)

	// GetForUpdate reads an account holding a row lock until the surrounding transaction ends.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*dto.AccountRead, error)

	// ListByUser lists all accounts for a given user as read-optimized DTOs.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.AccountRead, error)

	// UpdateBalance writes both balance columns of an account in one statement.
	UpdateBalance(ctx context.Context, id uuid.UUID, update dto.BalanceUpdate) error

	// UpdateAvailableBalance writes only the available balance of an account.
	UpdateAvailableBalance(ctx context.Context, id uuid.UUID, available decimal.Decimal) error
}
