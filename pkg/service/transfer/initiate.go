package transfer

import (
	"context"
	"errors"
	"fmt"

	"github.com/fortizbank/fortiz/pkg/domain"
	domaccount "github.com/fortizbank/fortiz/pkg/domain/account"
	domtransfer "github.com/fortizbank/fortiz/pkg/domain/transfer"
	"github.com/fortizbank/fortiz/pkg/dto"
	"github.com/fortizbank/fortiz/pkg/repository/account"
	"github.com/fortizbank/fortiz/pkg/utils"
	"github.com/google/uuid"
)

// Initiate creates an extended transfer and reserves its amount with an
// outgoing hold on the source account. Transfers at or above the configured
// MFA threshold start in initiated and wait for verify_mfa; the others start
// in pending. A nil ToAccountID denotes an external beneficiary.
func (s *Service) Initiate(
	ctx context.Context,
	userID uuid.UUID,
	req dto.TransferInitiateRequest,
) (*dto.TransferRead, error) {
	log := s.logger.With("context", "Initiate", "user_id", userID)

	if req.FromAccountID == "" || req.Amount == nil {
		return nil, domtransfer.ErrMissingFields
	}
	if req.ToAccountID == nil && req.RecipientName == "" {
		return nil, domtransfer.ErrMissingFields
	}
	amount := *req.Amount
	if !amount.IsPositive() {
		return nil, domtransfer.ErrInvalidAmount
	}
	if req.ToAccountID != nil && *req.ToAccountID == req.FromAccountID {
		return nil, domtransfer.ErrSameAccount
	}

	accounts, err := s.uow.AccountRepository()
	if err != nil {
		return nil, domain.Dependency("Failed to fetch accounts", err)
	}
	from, err := ownedAccount(ctx, accounts, userID, req.FromAccountID)
	if err != nil {
		return nil, err
	}
	var toID *uuid.UUID
	if req.ToAccountID != nil {
		to, err := ownedAccount(ctx, accounts, userID, *req.ToAccountID)
		if err != nil {
			return nil, err
		}
		toID = &to.ID
	}
	if from.AvailableBalance.LessThan(amount) {
		return nil, domtransfer.ErrInsufficientBalance
	}

	transfers, err := s.uow.TransferRepository()
	if err != nil {
		return nil, domain.Dependency("Failed to create transfer", err)
	}

	now := s.now()
	requiresMfa := amount.GreaterThanOrEqual(s.cfg.MfaThreshold)
	status := domtransfer.StatusPending
	if requiresMfa {
		status = domtransfer.StatusInitiated
	}
	create := dto.TransferCreate{
		ID:            uuid.New(),
		UserID:        userID,
		FromAccountID: from.ID,
		ToAccountID:   toID,
		Amount:        amount,
		Currency:      from.Currency,
		Status:        string(status),
		RequiresMfa:   requiresMfa,
		Reference:     utils.Reference(domtransfer.ReferencePrefixExtended, now),
		Description:   req.Description,
		RecipientName: req.RecipientName,
	}
	if err := transfers.Create(ctx, create); err != nil {
		return nil, domain.Dependency("Failed to create transfer", err)
	}
	if err := transfers.CreateHold(ctx, dto.HoldCreate{
		ID:         uuid.New(),
		TransferID: create.ID,
		AccountID:  from.ID,
		HoldType:   string(domtransfer.HoldOutgoing),
		Amount:     amount,
	}); err != nil {
		return nil, domain.Dependency("Failed to place hold", err)
	}
	available := from.AvailableBalance.Sub(amount)
	if err := accounts.UpdateAvailableBalance(ctx, from.ID, available); err != nil {
		return nil, domain.Dependency("Failed to update available balance", err)
	}

	if err := transfers.CreateLedgerEntry(ctx, dto.LedgerEntryCreate{
		ID:           uuid.New(),
		TransferID:   create.ID,
		AccountID:    from.ID,
		UserID:       userID,
		EntryType:    domtransfer.EntryHold,
		Amount:       amount,
		BalanceAfter: available,
		Category:     domtransfer.LedgerCategory,
		Description:  "Funds reserved for transfer",
		Reference:    create.Reference,
	}); err != nil {
		log.Error("failed to record hold ledger entry", "transfer_id", create.ID, "error", err)
	}
	s.recordEvent(ctx, transfers, log, create.ID, domtransfer.EventInitiated, "", status,
		fmt.Sprintf("Transfer of %s %s initiated", amount.StringFixed(2), from.Currency))
	s.invalidate(ctx, userID)

	log.Info("transfer initiated", "transfer_id", create.ID, "requires_mfa", requiresMfa)
	return &dto.TransferRead{
		ID:            create.ID,
		UserID:        userID,
		FromAccountID: from.ID,
		ToAccountID:   toID,
		Amount:        amount,
		Currency:      create.Currency,
		Status:        create.Status,
		RequiresMfa:   requiresMfa,
		Reference:     create.Reference,
		Description:   create.Description,
		RecipientName: create.RecipientName,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// ownedAccount resolves a raw account id owned by userID. Malformed, missing
// and foreign ids all resolve to ErrInvalidAccounts.
func ownedAccount(ctx context.Context, accounts account.Repository, userID uuid.UUID, raw string) (*dto.AccountRead, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, domtransfer.ErrInvalidAccounts
	}
	a, err := accounts.GetOwned(ctx, userID, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domtransfer.ErrInvalidAccounts
	}
	if err != nil {
		return nil, domain.Dependency("Failed to fetch accounts", err)
	}
	if a.Status != string(domaccount.StatusActive) {
		return nil, domtransfer.ErrInvalidAccounts
	}
	return a, nil
}
