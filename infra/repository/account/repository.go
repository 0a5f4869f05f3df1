package account

import (
	"context"

	"github.com/fortizbank/fortiz/infra/repository/common"
	"github.com/fortizbank/fortiz/pkg/dto"
	repo "github.com/fortizbank/fortiz/pkg/repository/account"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repository struct {
	db *gorm.DB
}

// New creates a new CQRS-style account repository using the provided *gorm.DB.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Create implements account.Repository.
func (r *repository) Create(ctx context.Context, create dto.AccountCreate) error {
	acct := mapCreateDTOToModel(create)
	return common.WrapError(func() error {
		return r.db.WithContext(ctx).Create(&acct).Error
	})
}

// Get implements account.Repository.
func (r *repository) Get(ctx context.Context, id uuid.UUID) (*dto.AccountRead, error) {
	var acct Account
	if err := r.db.WithContext(ctx).First(&acct, "id = ?", id).Error; err != nil {
		return nil, common.MapGormErrorToDomain(err)
	}
	return mapModelToDTO(&acct), nil
}

// GetOwned implements account.Repository.
func (r *repository) GetOwned(ctx context.Context, userID, id uuid.UUID) (*dto.AccountRead, error) {
	var acct Account
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&acct).Error; err != nil {
		return nil, common.MapGormErrorToDomain(err)
	}
	return mapModelToDTO(&acct), nil
}

// GetOwnedPair implements account.Repository.
func (r *repository) GetOwnedPair(
	ctx context.Context,
	userID uuid.UUID,
	ids ...uuid.UUID,
) ([]*dto.AccountRead, error) {
	var accts []Account
	if err := r.db.WithContext(ctx).
		Where("id IN ? AND user_id = ?", ids, userID).
		Find(&accts).Error; err != nil {
		return nil, common.MapGormErrorToDomain(err)
	}
	return mapModelsToDTOs(accts), nil
}

// GetForUpdate implements account.Repository.
func (r *repository) GetForUpdate(ctx context.Context, id uuid.UUID) (*dto.AccountRead, error) {
	var acct Account
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&acct, "id = ?", id).Error; err != nil {
		return nil, common.MapGormErrorToDomain(err)
	}
	return mapModelToDTO(&acct), nil
}

// ListByUser implements account.Repository.
func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.AccountRead, error) {
	var accts []Account
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&accts).Error; err != nil {
		return nil, common.MapGormErrorToDomain(err)
	}
	return mapModelsToDTOs(accts), nil
}

// UpdateBalance implements account.Repository.
func (r *repository) UpdateBalance(ctx context.Context, id uuid.UUID, update dto.BalanceUpdate) error {
	return common.RequireAffected(r.db.WithContext(ctx).Model(&Account{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"balance":           update.Balance,
			"available_balance": update.AvailableBalance,
		}))
}

// UpdateAvailableBalance implements account.Repository.
func (r *repository) UpdateAvailableBalance(ctx context.Context, id uuid.UUID, available decimal.Decimal) error {
	return common.RequireAffected(r.db.WithContext(ctx).Model(&Account{}).
		Where("id = ?", id).
		Update("available_balance", available))
}

// mapCreateDTOToModel maps AccountCreate DTO to GORM model.
// A new account starts with its whole balance available.
func mapCreateDTOToModel(create dto.AccountCreate) Account {
	return Account{
		ID:               create.ID,
		UserID:           create.UserID,
		AccountNumber:    create.AccountNumber,
		AccountType:      create.AccountType,
		Currency:         create.Currency,
		Balance:          create.Balance,
		AvailableBalance: create.Balance,
		Status:           create.Status,
	}
}

func mapModelsToDTOs(accts []Account) []*dto.AccountRead {
	result := make([]*dto.AccountRead, 0, len(accts))
	for i := range accts {
		result = append(result, mapModelToDTO(&accts[i]))
	}
	return result
}

// mapModelToDTO maps a GORM model to a read-optimized DTO.
func mapModelToDTO(acct *Account) *dto.AccountRead {
	return &dto.AccountRead{
		ID:               acct.ID,
		UserID:           acct.UserID,
		AccountNumber:    acct.AccountNumber,
		AccountType:      acct.AccountType,
		Currency:         acct.Currency,
		Balance:          acct.Balance,
		AvailableBalance: acct.AvailableBalance,
		Status:           acct.Status,
		CreatedAt:        acct.CreatedAt,
	}
}
