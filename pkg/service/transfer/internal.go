package transfer

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/fortizbank/fortiz/pkg/domain"
	domaccount "github.com/fortizbank/fortiz/pkg/domain/account"
	domalert "github.com/fortizbank/fortiz/pkg/domain/alert"
	"github.com/fortizbank/fortiz/pkg/domain/events"
	domtransfer "github.com/fortizbank/fortiz/pkg/domain/transfer"
	"github.com/fortizbank/fortiz/pkg/dto"
	"github.com/fortizbank/fortiz/pkg/repository"
	"github.com/fortizbank/fortiz/pkg/repository/account"
	"github.com/fortizbank/fortiz/pkg/repository/transaction"
	"github.com/fortizbank/fortiz/pkg/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transfer moves amount between two accounts owned by userID and records a
// debit and a credit transaction sharing one reference.
//
// Validation runs in a fixed order and the first violation is returned.
// The balance writes, the two transaction rows, the alert and the
// notification follow as separate steps. Only a failed credit is
// compensated, by writing the source balances back; any other step that
// fails leaves the earlier ones in place.
func (s *Service) Transfer(
	ctx context.Context,
	userID uuid.UUID,
	req dto.InternalTransferRequest,
) (*dto.InternalTransferResult, error) {
	log := s.logger.With("context", "Transfer", "user_id", userID)

	if req.FromAccountID == "" || req.ToAccountID == "" || req.Amount == nil {
		return nil, domtransfer.ErrMissingFields
	}
	amount := *req.Amount
	if !amount.IsPositive() {
		return nil, domtransfer.ErrInvalidAmount
	}
	if req.FromAccountID == req.ToAccountID {
		return nil, domtransfer.ErrSameAccount
	}
	fromID, err := uuid.Parse(req.FromAccountID)
	if err != nil {
		return nil, domtransfer.ErrInvalidAccounts
	}
	toID, err := uuid.Parse(req.ToAccountID)
	if err != nil {
		return nil, domtransfer.ErrInvalidAccounts
	}
	// Same id spelled in a different case.
	if fromID == toID {
		return nil, domtransfer.ErrSameAccount
	}

	var (
		res      *dto.InternalTransferResult
		from, to *dto.AccountRead
	)
	if s.cfg.Atomic {
		err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
			accounts, txs, err := repositories(uow)
			if err != nil {
				return err
			}
			from, to, err = lockPair(ctx, accounts, userID, fromID, toID)
			if err != nil {
				return err
			}
			if from.Balance.LessThan(amount) {
				return domtransfer.ErrInsufficientBalance
			}
			res, err = s.move(ctx, log, accounts, txs, userID, from, to, amount, req.Description, false)
			return err
		})
	} else {
		var (
			accounts account.Repository
			txs      transaction.Repository
		)
		accounts, txs, err = repositories(s.uow)
		if err != nil {
			return nil, err
		}
		from, to, err = ownedPair(ctx, accounts, userID, fromID, toID)
		if err != nil {
			return nil, err
		}
		if from.Balance.LessThan(amount) {
			return nil, domtransfer.ErrInsufficientBalance
		}
		res, err = s.move(ctx, log, accounts, txs, userID, from, to, amount, req.Description, true)
	}
	if err != nil {
		log.Error("transfer failed", "from", fromID, "to", toID, "error", err)
		return nil, err
	}

	s.alert(ctx, log, userID, "Transfer Completed",
		fmt.Sprintf("%s %s transferred from your %s account to your %s account",
			amount.StringFixed(2), from.Currency, from.AccountType, to.AccountType),
		domalert.SeverityInfo)
	res.NotificationOK = s.notify(ctx, log, userID, events.TemplateTransferCompleted, map[string]string{
		"amount":       amount.StringFixed(2),
		"currency":     from.Currency,
		"from_account": from.AccountNumber,
		"to_account":   to.AccountNumber,
		"reference":    res.Reference,
	})
	s.invalidate(ctx, userID)

	log.Info("transfer completed", "reference", res.Reference, "amount", amount)
	return res, nil
}

func repositories(uow repository.UnitOfWork) (account.Repository, transaction.Repository, error) {
	accounts, err := uow.AccountRepository()
	if err != nil {
		return nil, nil, domain.Dependency("Failed to fetch accounts", err)
	}
	txs, err := uow.TransactionRepository()
	if err != nil {
		return nil, nil, domain.Dependency("Failed to record transactions", err)
	}
	return accounts, txs, nil
}

// ownedPair resolves the two accounts with a single query and requires that
// both rows come back for userID.
func ownedPair(
	ctx context.Context,
	accounts account.Repository,
	userID, fromID, toID uuid.UUID,
) (from, to *dto.AccountRead, err error) {
	rows, err := accounts.GetOwnedPair(ctx, userID, fromID, toID)
	if err != nil {
		return nil, nil, domain.Dependency("Failed to fetch accounts", err)
	}
	if len(rows) != 2 {
		return nil, nil, domtransfer.ErrInvalidAccounts
	}
	for _, a := range rows {
		switch a.ID {
		case fromID:
			from = a
		case toID:
			to = a
		}
	}
	if from == nil || to == nil {
		return nil, nil, domtransfer.ErrInvalidAccounts
	}
	return from, to, nil
}

// lockPair checks ownership and then re-reads both rows under FOR UPDATE,
// always locking the lower id first.
func lockPair(
	ctx context.Context,
	accounts account.Repository,
	userID, fromID, toID uuid.UUID,
) (from, to *dto.AccountRead, err error) {
	if _, _, err = ownedPair(ctx, accounts, userID, fromID, toID); err != nil {
		return nil, nil, err
	}
	first, second := fromID, toID
	if bytes.Compare(toID[:], fromID[:]) < 0 {
		first, second = toID, fromID
	}
	locked := make(map[uuid.UUID]*dto.AccountRead, 2)
	for _, id := range []uuid.UUID{first, second} {
		a, err := accounts.GetForUpdate(ctx, id)
		if err != nil {
			return nil, nil, domain.Dependency("Failed to fetch accounts", err)
		}
		locked[id] = a
	}
	return locked[fromID], locked[toID], nil
}

// move performs execution steps 1 to 4 with balances computed from the
// values read during validation.
func (s *Service) move(
	ctx context.Context,
	log *slog.Logger,
	accounts account.Repository,
	txs transaction.Repository,
	userID uuid.UUID,
	from, to *dto.AccountRead,
	amount decimal.Decimal,
	description string,
	compensate bool,
) (*dto.InternalTransferResult, error) {
	fromAfter := dto.BalanceUpdate{
		Balance:          from.Balance.Sub(amount),
		AvailableBalance: from.AvailableBalance.Sub(amount),
	}
	toAfter := dto.BalanceUpdate{
		Balance:          to.Balance.Add(amount),
		AvailableBalance: to.AvailableBalance.Add(amount),
	}

	if err := accounts.UpdateBalance(ctx, from.ID, fromAfter); err != nil {
		return nil, domain.Dependency("Failed to debit source account", err)
	}
	if err := accounts.UpdateBalance(ctx, to.ID, toAfter); err != nil {
		if compensate {
			restore := dto.BalanceUpdate{Balance: from.Balance, AvailableBalance: from.AvailableBalance}
			if cerr := accounts.UpdateBalance(ctx, from.ID, restore); cerr != nil {
				log.Error("failed to restore source balance", "account_id", from.ID, "error", cerr)
			}
		}
		return nil, domain.Dependency("Failed to credit destination account", err)
	}

	reference := utils.Reference(domtransfer.ReferencePrefixInternal, s.now())
	debitDesc, creditDesc := description, description
	if debitDesc == "" {
		debitDesc = fmt.Sprintf("Transfer to %s account", to.AccountType)
		creditDesc = fmt.Sprintf("Transfer from %s account", from.AccountType)
	}

	debit := dto.TransactionCreate{
		ID:              uuid.New(),
		UserID:          userID,
		AccountID:       from.ID,
		TransactionType: string(domaccount.TransactionTransfer),
		Direction:       string(domaccount.Debit),
		Amount:          amount,
		Currency:        from.Currency,
		Status:          domaccount.TransactionStatusPosted,
		Description:     debitDesc,
		Reference:       reference,
		BalanceAfter:    fromAfter.Balance,
		Metadata:        map[string]any{"to_account_id": to.ID.String()},
	}
	if err := txs.Create(ctx, debit); err != nil {
		return nil, domain.Dependency("Failed to record debit transaction", err)
	}

	credit := dto.TransactionCreate{
		ID:              uuid.New(),
		UserID:          userID,
		AccountID:       to.ID,
		TransactionType: string(domaccount.TransactionTransfer),
		Direction:       string(domaccount.Credit),
		Amount:          amount,
		Currency:        to.Currency,
		Status:          domaccount.TransactionStatusPosted,
		Description:     creditDesc,
		Reference:       reference,
		BalanceAfter:    toAfter.Balance,
		Metadata:        map[string]any{"from_account_id": from.ID.String()},
	}
	if err := txs.Create(ctx, credit); err != nil {
		return nil, domain.Dependency("Failed to record credit transaction", err)
	}

	return &dto.InternalTransferResult{
		Reference:   reference,
		DebitID:     debit.ID,
		CreditID:    credit.ID,
		FromBalance: fromAfter.Balance,
		ToBalance:   toAfter.Balance,
	}, nil
}
