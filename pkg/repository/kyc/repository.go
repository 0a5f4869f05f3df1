package kyc

import (
	"context"

	"github.com/fortizbank/fortiz/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines data access for KYC submissions.
type Repository interface {
	Create(ctx context.Context, create dto.KycCreate) error
	Get(ctx context.Context, id uuid.UUID) (*dto.KycRead, error)

	// GetLatestByUser returns the most recent submission of a user.
	GetLatestByUser(ctx context.Context, userID uuid.UUID) (*dto.KycRead, error)

	// List returns submissions newest first, filtered by status when it is not empty.
	List(ctx context.Context, status string) ([]*dto.KycRead, error)

	Review(ctx context.Context, id uuid.UUID, review dto.KycReview) error
}
