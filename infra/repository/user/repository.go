package user

import (
	"context"

	"github.com/fortizbank/fortiz/infra/repository/common"
	"github.com/fortizbank/fortiz/pkg/dto"
	"github.com/fortizbank/fortiz/pkg/repository/user"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a CQRS-style user repository using the provided *gorm.DB.
func New(db *gorm.DB) user.Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, create *dto.UserCreate) error {
	u := &User{
		ID:           create.ID,
		Email:        create.Email,
		FullName:     create.FullName,
		PasswordHash: create.PasswordHash,
		Role:         create.Role,
		KycStatus:    create.KycStatus,
	}
	return common.WrapError(func() error {
		return r.db.WithContext(ctx).Create(u).Error
	})
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*dto.UserRead, error) {
	var u User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, common.MapGormErrorToDomain(err)
	}
	return mapModelToDTO(&u), nil
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*dto.UserRead, error) {
	var u User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, common.MapGormErrorToDomain(err)
	}
	return mapModelToDTO(&u), nil
}

func (r *repository) List(ctx context.Context, page, pageSize int) ([]*dto.UserRead, error) {
	if page < 1 {
		page = 1
	}
	var users []User
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&users).Error; err != nil {
		return nil, common.MapGormErrorToDomain(err)
	}

	result := make([]*dto.UserRead, 0, len(users))
	for i := range users {
		result = append(result, mapModelToDTO(&users[i]))
	}
	return result, nil
}

func (r *repository) UpdateRole(ctx context.Context, id uuid.UUID, role string) error {
	return common.RequireAffected(r.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", id).
		Update("role", role))
}

func (r *repository) UpdateKycStatus(ctx context.Context, id uuid.UUID, status string) error {
	return common.RequireAffected(r.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", id).
		Update("kyc_status", status))
}

func mapModelToDTO(u *User) *dto.UserRead {
	return &dto.UserRead{
		ID:           u.ID,
		Email:        u.Email,
		FullName:     u.FullName,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		KycStatus:    u.KycStatus,
		CreatedAt:    u.CreatedAt,
	}
}
