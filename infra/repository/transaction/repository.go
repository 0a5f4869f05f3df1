package transaction

import (
	"context"

	"github.com/fortizbank/fortiz/infra/repository/common"
	"github.com/fortizbank/fortiz/pkg/dto"
	repo "github.com/fortizbank/fortiz/pkg/repository/transaction"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a new CQRS-style transaction repository using the provided *gorm.DB.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Create implements transaction.Repository.
func (r *repository) Create(ctx context.Context, create dto.TransactionCreate) error {
	tx := Transaction{
		ID:              create.ID,
		UserID:          create.UserID,
		AccountID:       create.AccountID,
		TransactionType: create.TransactionType,
		Direction:       create.Direction,
		Amount:          create.Amount,
		Currency:        create.Currency,
		Status:          create.Status,
		Description:     create.Description,
		Reference:       create.Reference,
		BalanceAfter:    create.BalanceAfter,
		Metadata:        Metadata(create.Metadata),
	}
	return common.WrapError(func() error {
		return r.db.WithContext(ctx).Create(&tx).Error
	})
}

// ListByAccount implements transaction.Repository.
func (r *repository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*dto.TransactionRead, error) {
	var txs []Transaction
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&txs).Error; err != nil {
		return nil, common.MapGormErrorToDomain(err)
	}
	return mapModelsToDTOs(txs), nil
}

// ListByUser implements transaction.Repository.
func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*dto.TransactionRead, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var txs []Transaction
	if err := q.Find(&txs).Error; err != nil {
		return nil, common.MapGormErrorToDomain(err)
	}
	return mapModelsToDTOs(txs), nil
}

func mapModelsToDTOs(txs []Transaction) []*dto.TransactionRead {
	result := make([]*dto.TransactionRead, 0, len(txs))
	for i := range txs {
		t := &txs[i]
		result = append(result, &dto.TransactionRead{
			ID:              t.ID,
			UserID:          t.UserID,
			AccountID:       t.AccountID,
			TransactionType: t.TransactionType,
			Direction:       t.Direction,
			Amount:          t.Amount,
			Currency:        t.Currency,
			Status:          t.Status,
			Description:     t.Description,
			Reference:       t.Reference,
			BalanceAfter:    t.BalanceAfter,
			Metadata:        t.Metadata,
			CreatedAt:       t.CreatedAt,
		})
	}
	return result
}
