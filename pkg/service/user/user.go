// Package user provides business logic for customer registration and profile lookup.
package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/fortizbank/fortiz/pkg/domain"
	"github.com/fortizbank/fortiz/pkg/domain/user"
	"github.com/fortizbank/fortiz/pkg/dto"
	"github.com/fortizbank/fortiz/pkg/repository"
	userrepo "github.com/fortizbank/fortiz/pkg/repository/user"
	"github.com/google/uuid"
)

// Service provides business logic for user operations.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a new Service with a UnitOfWork and logger.
func New(
	uow repository.UnitOfWork,
	logger *slog.Logger,
) *Service {
	return &Service{
		uow:    uow,
		logger: logger,
	}
}

// CreateUser registers a new customer in a transaction.
func (s *Service) CreateUser(
	ctx context.Context,
	email, fullName, password string,
) (u *dto.UserRead, err error) {
	log := s.logger.With("context", "CreateUser")
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repoAny, err := uow.GetRepository(reflect.TypeOf((*userrepo.Repository)(nil)).Elem())
		if err != nil {
			return err
		}
		repo, ok := repoAny.(userrepo.Repository)
		if !ok {
			return fmt.Errorf("unexpected repository type")
		}
		nu, err := user.NewUser(email, fullName, password)
		if err != nil {
			return err
		}
		if err := repo.Create(ctx, &dto.UserCreate{
			ID:           nu.ID,
			Email:        nu.Email,
			FullName:     nu.FullName,
			PasswordHash: nu.PasswordHash,
			Role:         string(nu.Role),
			KycStatus:    string(nu.KycStatus),
		}); err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return user.ErrEmailTaken
			}
			return domain.Dependency("Failed to create user", err)
		}
		u = &dto.UserRead{
			ID:        nu.ID,
			Email:     nu.Email,
			FullName:  nu.FullName,
			Role:      string(nu.Role),
			KycStatus: string(nu.KycStatus),
			CreatedAt: nu.CreatedAt,
		}
		return nil
	})
	if err != nil {
		log.Error("CreateUser failed", "error", err)
		return nil, err
	}
	log.Info("user registered", "userID", u.ID)
	return u, nil
}

// GetUser retrieves a user by ID.
func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*dto.UserRead, error) {
	repo, err := s.uow.UserRepository()
	if err != nil {
		return nil, domain.Dependency("Failed to fetch user", err)
	}
	u, err := repo.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, user.ErrUserNotFound
	}
	if err != nil {
		return nil, domain.Dependency("Failed to fetch user", err)
	}
	return u, nil
}

// GetUserByEmail retrieves a user by email.
func (s *Service) GetUserByEmail(ctx context.Context, email string) (*dto.UserRead, error) {
	repo, err := s.uow.UserRepository()
	if err != nil {
		return nil, domain.Dependency("Failed to fetch user", err)
	}
	u, err := repo.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, user.ErrUserNotFound
	}
	if err != nil {
		return nil, domain.Dependency("Failed to fetch user", err)
	}
	return u, nil
}
