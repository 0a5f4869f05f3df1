package alert

import (
	"context"

	"github.com/fortizbank/fortiz/infra/repository/common"
	"github.com/fortizbank/fortiz/pkg/dto"
	repo "github.com/fortizbank/fortiz/pkg/repository/alert"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates an alert repository using the provided *gorm.DB.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, create dto.AlertCreate) error {
	a := Alert{
		ID:       create.ID,
		UserID:   create.UserID,
		Type:     create.Type,
		Title:    create.Title,
		Message:  create.Message,
		Severity: create.Severity,
	}
	return common.WrapError(func() error {
		return r.db.WithContext(ctx).Create(&a).Error
	})
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.AlertRead, error) {
	var alerts []Alert
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&alerts).Error; err != nil {
		return nil, common.MapGormErrorToDomain(err)
	}
	result := make([]*dto.AlertRead, 0, len(alerts))
	for i := range alerts {
		a := &alerts[i]
		result = append(result, &dto.AlertRead{
			ID:        a.ID,
			UserID:    a.UserID,
			Type:      a.Type,
			Title:     a.Title,
			Message:   a.Message,
			Severity:  a.Severity,
			IsRead:    a.IsRead,
			CreatedAt: a.CreatedAt,
		})
	}
	return result, nil
}

func (r *repository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Alert{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&n).Error
	return n, common.MapGormErrorToDomain(err)
}

func (r *repository) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	return common.RequireAffected(r.db.WithContext(ctx).Model(&Alert{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true))
}
