package transaction

import (
	"context"

	"github.com/fortizbank/fortiz/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines the interface for transaction data
// access operations with support for CQRS (Command/Query Responsibility Segregation).
type Repository interface {
	// Create inserts a new transaction record from a DTO.
	Create(ctx context.Context, create dto.TransactionCreate) error

	// ListByAccount lists the transactions of an account newest first.
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*dto.TransactionRead, error)

	// ListByUser lists at most limit transactions of a user newest first.
	// A non-positive limit returns every row.
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*dto.TransactionRead, error)
}
