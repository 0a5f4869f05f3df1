package user

import (
	"context"

	"github.com/fortizbank/fortiz/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines the interface for user data access operations with
// support for CQRS (Command/Query Responsibility Segregation).
type Repository interface {
	// Create inserts a new user record from a DTO.
	Create(ctx context.Context, create *dto.UserCreate) error

	// Get retrieves a user by its ID as a read-optimized DTO.
	Get(ctx context.Context, id uuid.UUID) (*dto.UserRead, error)

	// GetByEmail retrieves a user by email as a read-optimized DTO.
	GetByEmail(ctx context.Context, email string) (*dto.UserRead, error)

	// List retrieves users newest first with pagination support.
	List(ctx context.Context, page, pageSize int) ([]*dto.UserRead, error)

	// UpdateRole sets the role of a user.
	UpdateRole(ctx context.Context, id uuid.UUID, role string) error

	// UpdateKycStatus sets the onboarding status of a user.
	UpdateKycStatus(ctx context.Context, id uuid.UUID, status string) error
}
