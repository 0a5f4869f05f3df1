// Package admin implements the back-office operations: user and KYC
// listings, KYC review and role management.
package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fortizbank/fortiz/pkg/domain"
	domaccount "github.com/fortizbank/fortiz/pkg/domain/account"
	domalert "github.com/fortizbank/fortiz/pkg/domain/alert"
	"github.com/fortizbank/fortiz/pkg/domain/events"
	domkyc "github.com/fortizbank/fortiz/pkg/domain/kyc"
	"github.com/fortizbank/fortiz/pkg/domain/user"
	"github.com/fortizbank/fortiz/pkg/dto"
	"github.com/fortizbank/fortiz/pkg/eventbus"
	"github.com/fortizbank/fortiz/pkg/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const DefaultPageSize = 50

type Service struct {
	uow    repository.UnitOfWork
	bus    eventbus.Bus
	logger *slog.Logger
	now    func() time.Time
}

func New(uow repository.UnitOfWork, bus eventbus.Bus, logger *slog.Logger) *Service {
	return &Service{
		uow:    uow,
		bus:    bus,
		logger: logger.With("service", "admin"),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) ListUsers(ctx context.Context, page, pageSize int) ([]*dto.UserRead, error) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	repo, err := s.uow.UserRepository()
	if err != nil {
		return nil, domain.Dependency("Failed to fetch users", err)
	}
	users, err := repo.List(ctx, page, pageSize)
	if err != nil {
		return nil, domain.Dependency("Failed to fetch users", err)
	}
	if users == nil {
		users = []*dto.UserRead{}
	}
	return users, nil
}

// ListKyc returns submissions newest first; an empty status lists all of them.
func (s *Service) ListKyc(ctx context.Context, status string) ([]*dto.KycRead, error) {
	if status != "" {
		switch domkyc.Status(status) {
		case domkyc.StatusPending, domkyc.StatusApproved, domkyc.StatusRejected:
		default:
			return nil, domain.NewError(domain.ErrValidation, "Invalid status")
		}
	}
	repo, err := s.uow.KycRepository()
	if err != nil {
		return nil, domain.Dependency("Failed to fetch KYC submissions", err)
	}
	list, err := repo.List(ctx, status)
	if err != nil {
		return nil, domain.Dependency("Failed to fetch KYC submissions", err)
	}
	if list == nil {
		list = []*dto.KycRead{}
	}
	return list, nil
}

// ReviewKyc approves or rejects a pending submission. Approval verifies the
// user and opens a checking and a savings account when the user has none.
func (s *Service) ReviewKyc(
	ctx context.Context,
	reviewerID, id uuid.UUID,
	action, notes string,
) (*dto.KycRead, error) {
	log := s.logger.With("context", "ReviewKyc", "submission_id", id, "reviewer_id", reviewerID)

	var status domkyc.Status
	var userStatus user.KycStatus
	switch domkyc.ReviewAction(action) {
	case domkyc.ActionApprove:
		status, userStatus = domkyc.StatusApproved, user.KycVerified
	case domkyc.ActionReject:
		status, userStatus = domkyc.StatusRejected, user.KycRejected
	default:
		return nil, domkyc.ErrInvalidAction
	}

	var sub *dto.KycRead
	review := dto.KycReview{
		Status:     string(status),
		ReviewerID: reviewerID,
		Notes:      strings.TrimSpace(notes),
		ReviewedAt: s.now(),
	}
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		submissions, err := uow.KycRepository()
		if err != nil {
			return domain.Dependency("Failed to review KYC", err)
		}
		sub, err = submissions.Get(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			return domkyc.ErrSubmissionNotFound
		}
		if err != nil {
			return domain.Dependency("Failed to review KYC", err)
		}
		if sub.Status != string(domkyc.StatusPending) {
			return domkyc.ErrAlreadyReviewed
		}
		if err := submissions.Review(ctx, id, review); err != nil {
			return domain.Dependency("Failed to review KYC", err)
		}
		users, err := uow.UserRepository()
		if err != nil {
			return domain.Dependency("Failed to review KYC", err)
		}
		if err := users.UpdateKycStatus(ctx, sub.UserID, string(userStatus)); err != nil {
			return domain.Dependency("Failed to review KYC", err)
		}
		if status == domkyc.StatusApproved {
			return openDefaultAccounts(ctx, uow, sub.UserID)
		}
		return nil
	})
	if err != nil {
		log.Error("KYC review failed", "error", err)
		return nil, err
	}

	sub.Status = review.Status
	sub.ReviewerID = &reviewerID
	sub.ReviewNotes = review.Notes
	sub.ReviewedAt = &review.ReviewedAt
	s.announce(ctx, log, sub)
	log.Info("KYC reviewed", "status", sub.Status)
	return sub, nil
}

func openDefaultAccounts(ctx context.Context, uow repository.UnitOfWork, userID uuid.UUID) error {
	accounts, err := uow.AccountRepository()
	if err != nil {
		return domain.Dependency("Failed to open accounts", err)
	}
	existing, err := accounts.ListByUser(ctx, userID)
	if err != nil {
		return domain.Dependency("Failed to open accounts", err)
	}
	if len(existing) > 0 {
		return nil
	}
	for _, t := range []domaccount.Type{domaccount.TypeChecking, domaccount.TypeSavings} {
		number, err := domaccount.NewAccountNumber()
		if err != nil {
			return fmt.Errorf("failed to generate account number: %w", err)
		}
		if err := accounts.Create(ctx, dto.AccountCreate{
			ID:            uuid.New(),
			UserID:        userID,
			AccountNumber: number,
			AccountType:   string(t),
			Currency:      domaccount.DefaultCurrency,
			Balance:       decimal.Zero,
			Status:        string(domaccount.StatusActive),
		}); err != nil {
			return domain.Dependency("Failed to open accounts", err)
		}
	}
	return nil
}

// announce raises the review alert and the notification email. Both are best effort.
func (s *Service) announce(ctx context.Context, log *slog.Logger, sub *dto.KycRead) {
	title, message, severity, template := "KYC Rejected",
		"Your identity verification was rejected. Please review the notes and submit again.",
		domalert.SeverityWarning, events.TemplateKycRejected
	if sub.Status == string(domkyc.StatusApproved) {
		title, message, severity, template = "KYC Approved",
			"Your identity has been verified. Your checking and savings accounts are ready.",
			domalert.SeveritySuccess, events.TemplateKycApproved
	}

	alerts, err := s.uow.AlertRepository()
	if err == nil {
		err = alerts.Create(ctx, dto.AlertCreate{
			ID:       uuid.New(),
			UserID:   sub.UserID,
			Type:     string(domalert.TypeKyc),
			Title:    title,
			Message:  message,
			Severity: string(severity),
		})
	}
	if err != nil {
		log.Error("failed to create KYC alert", "error", err)
	}

	if s.bus == nil {
		return
	}
	evt := events.NewNotificationRequested(sub.UserID, template, map[string]string{
		"full_name": sub.FullName,
		"notes":     sub.ReviewNotes,
	})
	if err := s.bus.Emit(ctx, evt); err != nil {
		log.Error("failed to request notification", "template", template, "error", err)
	}
}

// UpdateRole sets the role of a user.
func (s *Service) UpdateRole(ctx context.Context, id uuid.UUID, role string) error {
	if !user.Role(role).Valid() {
		return user.ErrInvalidRole
	}
	repo, err := s.uow.UserRepository()
	if err != nil {
		return domain.Dependency("Failed to update role", err)
	}
	if err := repo.UpdateRole(ctx, id, role); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return user.ErrUserNotFound
		}
		return domain.Dependency("Failed to update role", err)
	}
	s.logger.Info("role updated", "user_id", id, "role", role)
	return nil
}

// UserAccounts resolves a user by email and lists their accounts.
func (s *Service) UserAccounts(ctx context.Context, email string) (*dto.UserRead, []*dto.AccountRead, error) {
	users, err := s.uow.UserRepository()
	if err != nil {
		return nil, nil, domain.Dependency("Failed to fetch user", err)
	}
	u, err := users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil, user.ErrUserNotFound
	}
	if err != nil {
		return nil, nil, domain.Dependency("Failed to fetch user", err)
	}
	accounts, err := s.uow.AccountRepository()
	if err != nil {
		return nil, nil, domain.Dependency("Failed to fetch accounts", err)
	}
	list, err := accounts.ListByUser(ctx, u.ID)
	if err != nil {
		return nil, nil, domain.Dependency("Failed to fetch accounts", err)
	}
	return u, list, nil
}
