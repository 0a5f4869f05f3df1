package transfer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fortizbank/fortiz/pkg/domain"
	domalert "github.com/fortizbank/fortiz/pkg/domain/alert"
	"github.com/fortizbank/fortiz/pkg/domain/events"
	domtransfer "github.com/fortizbank/fortiz/pkg/domain/transfer"
	"github.com/fortizbank/fortiz/pkg/dto"
	"github.com/fortizbank/fortiz/pkg/repository/account"
	"github.com/fortizbank/fortiz/pkg/repository/transfer"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GetDetail returns a transfer owned by userID with its account summaries,
// holds, ledger entries and events, each newest first.
func (s *Service) GetDetail(ctx context.Context, userID, id uuid.UUID) (*dto.TransferDetail, error) {
	transfers, err := s.uow.TransferRepository()
	if err != nil {
		return nil, domain.Dependency("Failed to fetch transfer", err)
	}
	t, err := s.load(ctx, transfers, userID, id)
	if err != nil {
		return nil, err
	}
	accounts, err := s.uow.AccountRepository()
	if err != nil {
		return nil, domain.Dependency("Failed to fetch accounts", err)
	}

	detail := &dto.TransferDetail{
		Transfer: t,
		Progress: domtransfer.Progress(domtransfer.Status(t.Status)),
	}
	if detail.FromAccount, err = summary(ctx, accounts, userID, &t.FromAccountID); err != nil {
		return nil, err
	}
	if detail.ToAccount, err = summary(ctx, accounts, userID, t.ToAccountID); err != nil {
		return nil, err
	}
	if detail.Holds, err = transfers.ListHolds(ctx, id); err != nil {
		return nil, domain.Dependency("Failed to fetch holds", err)
	}
	if detail.LedgerEntries, err = transfers.ListLedgerEntries(ctx, id); err != nil {
		return nil, domain.Dependency("Failed to fetch ledger entries", err)
	}
	if detail.Events, err = transfers.ListEvents(ctx, id); err != nil {
		return nil, domain.Dependency("Failed to fetch transfer events", err)
	}
	if detail.Holds == nil {
		detail.Holds = []*dto.HoldRead{}
	}
	if detail.LedgerEntries == nil {
		detail.LedgerEntries = []*dto.LedgerEntryRead{}
	}
	if detail.Events == nil {
		detail.Events = []*dto.TransferEventRead{}
	}
	return detail, nil
}

// Act applies a lifecycle action to a transfer owned by userID.
// The transfer is loaded before the action is checked, so an unknown id is
// reported as not found whatever the action.
func (s *Service) Act(
	ctx context.Context,
	userID, id uuid.UUID,
	req dto.TransferActionRequest,
) (*dto.TransferActionResult, error) {
	log := s.logger.With("context", "Act", "user_id", userID, "transfer_id", id, "action", req.Action)

	transfers, err := s.uow.TransferRepository()
	if err != nil {
		return nil, domain.Dependency("Failed to fetch transfer", err)
	}
	t, err := s.load(ctx, transfers, userID, id)
	if err != nil {
		return nil, err
	}

	switch domtransfer.Action(req.Action) {
	case domtransfer.ActionCancel:
		return s.cancel(ctx, log, transfers, userID, t)
	case domtransfer.ActionVerifyMfa:
		return s.verifyMfa(ctx, log, transfers, userID, t, req.MfaCode)
	default:
		return nil, domtransfer.ErrInvalidAction
	}
}

func (s *Service) cancel(
	ctx context.Context,
	log *slog.Logger,
	transfers transfer.Repository,
	userID uuid.UUID,
	t *dto.TransferRead,
) (*dto.TransferActionResult, error) {
	from := domtransfer.Status(t.Status)
	if !domtransfer.CanCancel(from) {
		return nil, domtransfer.ErrNotCancellable
	}
	if err := transfers.UpdateStatus(ctx, t.ID, string(domtransfer.StatusCancelled)); err != nil {
		return nil, domain.Dependency("Failed to cancel transfer", err)
	}

	holds, err := transfers.ListActiveHolds(ctx, t.ID)
	if err != nil {
		return nil, domain.Dependency("Failed to release holds", err)
	}
	if err := transfers.ReleaseHolds(ctx, t.ID, s.now()); err != nil {
		return nil, domain.Dependency("Failed to release holds", err)
	}

	for _, h := range holds {
		if h.HoldType != string(domtransfer.HoldOutgoing) {
			continue
		}
		// The snapshot balance of a release entry is always zero.
		if err := transfers.CreateLedgerEntry(ctx, dto.LedgerEntryCreate{
			ID:           uuid.New(),
			TransferID:   t.ID,
			AccountID:    h.AccountID,
			UserID:       userID,
			EntryType:    domtransfer.EntryRelease,
			Amount:       h.Amount,
			BalanceAfter: decimal.Zero,
			Category:     domtransfer.LedgerCategory,
			Description:  "Hold released for cancelled transfer",
			Reference:    t.Reference,
		}); err != nil {
			log.Error("failed to record release ledger entry", "hold_id", h.ID, "error", err)
		}
		s.restoreAvailable(ctx, log, userID, h)
	}

	s.recordEvent(ctx, transfers, log, t.ID, domtransfer.EventCancelled, from, domtransfer.StatusCancelled,
		"Transfer cancelled by customer")
	s.alert(ctx, log, userID, "Transfer Cancelled",
		fmt.Sprintf("Your transfer %s of %s %s was cancelled", t.Reference, t.Amount.StringFixed(2), t.Currency),
		domalert.SeverityWarning)
	s.notify(ctx, log, userID, events.TemplateTransferCancelled, map[string]string{
		"amount":    t.Amount.StringFixed(2),
		"currency":  t.Currency,
		"reference": t.Reference,
	})
	s.invalidate(ctx, userID)

	t.Status = string(domtransfer.StatusCancelled)
	t.UpdatedAt = s.now()
	log.Info("transfer cancelled")
	return &dto.TransferActionResult{Message: "Transfer cancelled successfully", Transfer: t}, nil
}

func (s *Service) verifyMfa(
	ctx context.Context,
	log *slog.Logger,
	transfers transfer.Repository,
	userID uuid.UUID,
	t *dto.TransferRead,
	code string,
) (*dto.TransferActionResult, error) {
	if domtransfer.IsTerminal(domtransfer.Status(t.Status)) {
		return nil, domtransfer.ErrMfaNotAllowed
	}
	if !t.RequiresMfa {
		return nil, domtransfer.ErrMfaNotRequired
	}
	if t.MfaVerified {
		return nil, domtransfer.ErrMfaAlreadyVerified
	}
	// Format check only, no provider is consulted.
	if len(code) < domtransfer.MinMfaCodeLength {
		return nil, domtransfer.ErrInvalidMfaCode
	}
	if err := transfers.MarkMfaVerified(ctx, t.ID, string(domtransfer.StatusPending)); err != nil {
		return nil, domain.Dependency("Failed to verify MFA", err)
	}

	s.recordEvent(ctx, transfers, log, t.ID, domtransfer.EventMfaVerified, domtransfer.Status(t.Status),
		domtransfer.StatusPending, "MFA verification completed")
	s.invalidate(ctx, userID)

	t.MfaVerified = true
	t.Status = string(domtransfer.StatusPending)
	t.UpdatedAt = s.now()
	log.Info("transfer MFA verified")
	return &dto.TransferActionResult{Message: "MFA verified successfully", Transfer: t}, nil
}

func (s *Service) load(ctx context.Context, transfers transfer.Repository, userID, id uuid.UUID) (*dto.TransferRead, error) {
	t, err := transfers.Get(ctx, userID, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domtransfer.ErrTransferNotFound
	}
	if err != nil {
		return nil, domain.Dependency("Failed to fetch transfer", err)
	}
	return t, nil
}

func summary(ctx context.Context, accounts account.Repository, userID uuid.UUID, id *uuid.UUID) (*dto.AccountRead, error) {
	if id == nil {
		return nil, nil
	}
	a, err := accounts.GetOwned(ctx, userID, *id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.Dependency("Failed to fetch accounts", err)
	}
	return a, nil
}

// restoreAvailable adds a released hold back to the available balance of
// its account. It is best effort: failures are logged and skipped.
func (s *Service) restoreAvailable(ctx context.Context, log *slog.Logger, userID uuid.UUID, h *dto.HoldRead) {
	accounts, err := s.uow.AccountRepository()
	if err != nil {
		log.Error("failed to restore available balance", "account_id", h.AccountID, "error", err)
		return
	}
	a, err := accounts.GetOwned(ctx, userID, h.AccountID)
	if err != nil {
		log.Error("failed to restore available balance", "account_id", h.AccountID, "error", err)
		return
	}
	if err := accounts.UpdateAvailableBalance(ctx, a.ID, a.AvailableBalance.Add(h.Amount)); err != nil {
		log.Error("failed to restore available balance", "account_id", h.AccountID, "error", err)
	}
}

func (s *Service) recordEvent(
	ctx context.Context,
	transfers transfer.Repository,
	log *slog.Logger,
	transferID uuid.UUID,
	eventType string,
	from, to domtransfer.Status,
	description string,
) {
	if err := transfers.CreateEvent(ctx, dto.TransferEventCreate{
		ID:          uuid.New(),
		TransferID:  transferID,
		EventType:   eventType,
		FromStatus:  string(from),
		ToStatus:    string(to),
		Description: description,
	}); err != nil {
		log.Error("failed to record transfer event", "event_type", eventType, "error", err)
	}
}

func (s *Service) alert(ctx context.Context, log *slog.Logger, userID uuid.UUID, title, message string, severity domalert.Severity) {
	alerts, err := s.uow.AlertRepository()
	if err == nil {
		err = alerts.Create(ctx, dto.AlertCreate{
			ID:       uuid.New(),
			UserID:   userID,
			Type:     string(domalert.TypeTransfer),
			Title:    title,
			Message:  message,
			Severity: string(severity),
		})
	}
	if err != nil {
		log.Error("failed to create alert", "title", title, "error", err)
	}
}
