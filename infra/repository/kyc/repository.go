package kyc

import (
	"context"

	"github.com/fortizbank/fortiz/infra/repository/common"
	"github.com/fortizbank/fortiz/pkg/dto"
	repo "github.com/fortizbank/fortiz/pkg/repository/kyc"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a KYC submission repository using the provided *gorm.DB.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, create dto.KycCreate) error {
	s := Submission{
		ID:             create.ID,
		UserID:         create.UserID,
		FullName:       create.FullName,
		DateOfBirth:    create.DateOfBirth,
		Address:        create.Address,
		DocumentType:   create.DocumentType,
		DocumentNumber: create.DocumentNumber,
		Status:         create.Status,
	}
	return common.WrapError(func() error {
		return r.db.WithContext(ctx).Create(&s).Error
	})
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*dto.KycRead, error) {
	var s Submission
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, common.MapGormErrorToDomain(err)
	}
	return mapModelToDTO(&s), nil
}

func (r *repository) GetLatestByUser(ctx context.Context, userID uuid.UUID) (*dto.KycRead, error) {
	var s Submission
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&s).Error; err != nil {
		return nil, common.MapGormErrorToDomain(err)
	}
	return mapModelToDTO(&s), nil
}

func (r *repository) List(ctx context.Context, status string) ([]*dto.KycRead, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var subs []Submission
	if err := q.Find(&subs).Error; err != nil {
		return nil, common.MapGormErrorToDomain(err)
	}
	result := make([]*dto.KycRead, 0, len(subs))
	for i := range subs {
		result = append(result, mapModelToDTO(&subs[i]))
	}
	return result, nil
}

func (r *repository) Review(ctx context.Context, id uuid.UUID, review dto.KycReview) error {
	return common.RequireAffected(r.db.WithContext(ctx).Model(&Submission{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":       review.Status,
			"reviewer_id":  review.ReviewerID,
			"review_notes": review.Notes,
			"reviewed_at":  review.ReviewedAt,
		}))
}

func mapModelToDTO(s *Submission) *dto.KycRead {
	return &dto.KycRead{
		ID:             s.ID,
		UserID:         s.UserID,
		FullName:       s.FullName,
		DateOfBirth:    s.DateOfBirth,
		Address:        s.Address,
		DocumentType:   s.DocumentType,
		DocumentNumber: s.DocumentNumber,
		Status:         s.Status,
		ReviewerID:     s.ReviewerID,
		ReviewNotes:    s.ReviewNotes,
		ReviewedAt:     s.ReviewedAt,
		CreatedAt:      s.CreatedAt,
	}
}
