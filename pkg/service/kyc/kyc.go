// Package kyc handles customer identity verification submissions.
package kyc

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/fortizbank/fortiz/pkg/domain"
	domkyc "github.com/fortizbank/fortiz/pkg/domain/kyc"
	"github.com/fortizbank/fortiz/pkg/domain/user"
	"github.com/fortizbank/fortiz/pkg/dto"
	"github.com/fortizbank/fortiz/pkg/repository"
	"github.com/google/uuid"
)

type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
	now    func() time.Time
}

func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{
		uow:    uow,
		logger: logger.With("service", "kyc"),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Submit records a pending submission for userID and marks the user pending.
// A user with a pending or approved submission cannot submit again.
func (s *Service) Submit(ctx context.Context, userID uuid.UUID, in dto.KycSubmit) (*dto.KycRead, error) {
	log := s.logger.With("context", "Submit", "user_id", userID)
	dob, err := domkyc.ParseBirthDate(in.DateOfBirth, s.now())
	if err != nil {
		return nil, err
	}

	create := dto.KycCreate{
		ID:             uuid.New(),
		UserID:         userID,
		FullName:       strings.TrimSpace(in.FullName),
		DateOfBirth:    dob,
		Address:        strings.TrimSpace(in.Address),
		DocumentType:   in.DocumentType,
		DocumentNumber: strings.TrimSpace(in.DocumentNumber),
		Status:         string(domkyc.StatusPending),
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		submissions, err := uow.KycRepository()
		if err != nil {
			return domain.Dependency("Failed to submit KYC", err)
		}
		latest, err := submissions.GetLatestByUser(ctx, userID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
		case err != nil:
			return domain.Dependency("Failed to submit KYC", err)
		case latest.Status == string(domkyc.StatusPending), latest.Status == string(domkyc.StatusApproved):
			return domkyc.ErrAlreadySubmitted
		}
		if err := submissions.Create(ctx, create); err != nil {
			return domain.Dependency("Failed to submit KYC", err)
		}
		users, err := uow.UserRepository()
		if err != nil {
			return domain.Dependency("Failed to submit KYC", err)
		}
		if err := users.UpdateKycStatus(ctx, userID, string(user.KycPending)); err != nil {
			return domain.Dependency("Failed to submit KYC", err)
		}
		return nil
	})
	if err != nil {
		log.Error("KYC submission failed", "error", err)
		return nil, err
	}

	log.Info("KYC submitted", "submission_id", create.ID)
	return &dto.KycRead{
		ID:             create.ID,
		UserID:         userID,
		FullName:       create.FullName,
		DateOfBirth:    dob,
		Address:        create.Address,
		DocumentType:   create.DocumentType,
		DocumentNumber: create.DocumentNumber,
		Status:         create.Status,
		CreatedAt:      s.now(),
	}, nil
}

// GetLatest returns the most recent submission of userID.
func (s *Service) GetLatest(ctx context.Context, userID uuid.UUID) (*dto.KycRead, error) {
	submissions, err := s.uow.KycRepository()
	if err != nil {
		return nil, domain.Dependency("Failed to fetch KYC submission", err)
	}
	sub, err := submissions.GetLatestByUser(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domkyc.ErrSubmissionNotFound
	}
	if err != nil {
		return nil, domain.Dependency("Failed to fetch KYC submission", err)
	}
	return sub, nil
}
