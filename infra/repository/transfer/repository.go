package transfer

import (
	"context"
	"time"

	"github.com/fortizbank/fortiz/infra/repository/common"
	"github.com/fortizbank/fortiz/pkg/domain/transfer"
	"github.com/fortizbank/fortiz/pkg/dto"
	repo "github.com/fortizbank/fortiz/pkg/repository/transfer"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a transfer repository using the provided *gorm.DB.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, create dto.TransferCreate) error {
	t := Transfer{
		ID:            create.ID,
		UserID:        create.UserID,
		FromAccountID: create.FromAccountID,
		ToAccountID:   create.ToAccountID,
		Amount:        create.Amount,
		Currency:      create.Currency,
		Status:        create.Status,
		RequiresMfa:   create.RequiresMfa,
		Reference:     create.Reference,
		Description:   create.Description,
		RecipientName: create.RecipientName,
	}
	return common.WrapError(func() error {
		return r.db.WithContext(ctx).Create(&t).Error
	})
}

func (r *repository) Get(ctx context.Context, userID, id uuid.UUID) (*dto.TransferRead, error) {
	var t Transfer
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&t).Error; err != nil {
		return nil, common.MapGormErrorToDomain(err)
	}
	return &dto.TransferRead{
		ID:            t.ID,
		UserID:        t.UserID,
		FromAccountID: t.FromAccountID,
		ToAccountID:   t.ToAccountID,
		Amount:        t.Amount,
		Currency:      t.Currency,
		Status:        t.Status,
		RequiresMfa:   t.RequiresMfa,
		MfaVerified:   t.MfaVerified,
		Reference:     t.Reference,
		Description:   t.Description,
		RecipientName: t.RecipientName,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return common.RequireAffected(r.db.WithContext(ctx).Model(&Transfer{}).
		Where("id = ?", id).
		Update("status", status))
}

func (r *repository) MarkMfaVerified(ctx context.Context, id uuid.UUID, status string) error {
	return common.RequireAffected(r.db.WithContext(ctx).Model(&Transfer{}).
		Where("id = ?", id).
		Updates(map[string]any{"mfa_verified": true, "status": status}))
}

func (r *repository) CreateHold(ctx context.Context, create dto.HoldCreate) error {
	h := Hold{
		ID:         create.ID,
		TransferID: create.TransferID,
		AccountID:  create.AccountID,
		HoldType:   create.HoldType,
		Amount:     create.Amount,
		Status:     string(transfer.HoldActive),
	}
	return common.WrapError(func() error {
		return r.db.WithContext(ctx).Create(&h).Error
	})
}

func (r *repository) ListHolds(ctx context.Context, transferID uuid.UUID) ([]*dto.HoldRead, error) {
	return listHolds(r.db.WithContext(ctx).Where("transfer_id = ?", transferID))
}

func (r *repository) ListActiveHolds(ctx context.Context, transferID uuid.UUID) ([]*dto.HoldRead, error) {
	return listHolds(r.db.WithContext(ctx).
		Where("transfer_id = ? AND status = ?", transferID, string(transfer.HoldActive)))
}

func listHolds(q *gorm.DB) ([]*dto.HoldRead, error) {
	var holds []Hold
	if err := q.Order("created_at DESC").Find(&holds).Error; err != nil {
		return nil, common.MapGormErrorToDomain(err)
	}
	result := make([]*dto.HoldRead, 0, len(holds))
	for i := range holds {
		h := &holds[i]
		result = append(result, &dto.HoldRead{
			ID:         h.ID,
			TransferID: h.TransferID,
			AccountID:  h.AccountID,
			HoldType:   h.HoldType,
			Amount:     h.Amount,
			Status:     h.Status,
			ReleasedAt: h.ReleasedAt,
			CreatedAt:  h.CreatedAt,
		})
	}
	return result, nil
}

func (r *repository) ReleaseHolds(ctx context.Context, transferID uuid.UUID, at time.Time) error {
	return common.WrapError(func() error {
		return r.db.WithContext(ctx).Model(&Hold{}).
			Where("transfer_id = ? AND status = ?", transferID, string(transfer.HoldActive)).
			Updates(map[string]any{
				"status":      string(transfer.HoldReleased),
				"released_at": at,
			}).Error
	})
}

func (r *repository) CreateLedgerEntry(ctx context.Context, create dto.LedgerEntryCreate) error {
	e := LedgerEntry{
		ID:           create.ID,
		TransferID:   create.TransferID,
		AccountID:    create.AccountID,
		UserID:       create.UserID,
		EntryType:    create.EntryType,
		Amount:       create.Amount,
		BalanceAfter: create.BalanceAfter,
		Category:     create.Category,
		Description:  create.Description,
		Reference:    create.Reference,
	}
	return common.WrapError(func() error {
		return r.db.WithContext(ctx).Create(&e).Error
	})
}

func (r *repository) ListLedgerEntries(ctx context.Context, transferID uuid.UUID) ([]*dto.LedgerEntryRead, error) {
	var entries []LedgerEntry
	if err := r.db.WithContext(ctx).
		Where("transfer_id = ?", transferID).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, common.MapGormErrorToDomain(err)
	}
	result := make([]*dto.LedgerEntryRead, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		result = append(result, &dto.LedgerEntryRead{
			ID:           e.ID,
			TransferID:   e.TransferID,
			AccountID:    e.AccountID,
			UserID:       e.UserID,
			EntryType:    e.EntryType,
			Amount:       e.Amount,
			BalanceAfter: e.BalanceAfter,
			Category:     e.Category,
			Description:  e.Description,
			Reference:    e.Reference,
			CreatedAt:    e.CreatedAt,
		})
	}
	return result, nil
}

func (r *repository) CreateEvent(ctx context.Context, create dto.TransferEventCreate) error {
	e := Event{
		ID:          create.ID,
		TransferID:  create.TransferID,
		EventType:   create.EventType,
		FromStatus:  create.FromStatus,
		ToStatus:    create.ToStatus,
		Description: create.Description,
	}
	return common.WrapError(func() error {
		return r.db.WithContext(ctx).Create(&e).Error
	})
}

func (r *repository) ListEvents(ctx context.Context, transferID uuid.UUID) ([]*dto.TransferEventRead, error) {
	var events []Event
	if err := r.db.WithContext(ctx).
		Where("transfer_id = ?", transferID).
		Order("created_at DESC").
		Find(&events).Error; err != nil {
		return nil, common.MapGormErrorToDomain(err)
	}
	result := make([]*dto.TransferEventRead, 0, len(events))
	for i := range events {
		e := &events[i]
		result = append(result, &dto.TransferEventRead{
			ID:          e.ID,
			TransferID:  e.TransferID,
			EventType:   e.EventType,
			FromStatus:  e.FromStatus,
			ToStatus:    e.ToStatus,
			Description: e.Description,
			CreatedAt:   e.CreatedAt,
		})
	}
	return result, nil
}
