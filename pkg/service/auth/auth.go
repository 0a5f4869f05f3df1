package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/fortizbank/fortiz/pkg/config"
	"github.com/fortizbank/fortiz/pkg/domain"
	"github.com/fortizbank/fortiz/pkg/domain/user"
	"github.com/fortizbank/fortiz/pkg/dto"
	"github.com/fortizbank/fortiz/pkg/repository"
	"github.com/fortizbank/fortiz/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey string

const userContextKey contextKey = "user"

// dummyHash is compared against when the user does not exist so that both
// paths spend the same bcrypt time.
const dummyHash = "$2a$12$C6UzMDM.H6dfI/f/IKcEeO5PjK2qzYDBN7x.wLjbo4oYVpIdfMxbi"

type Strategy interface {
	Login(ctx context.Context, identity, password string) (*dto.UserRead, error)
	GetCurrentUserID(ctx context.Context) (uuid.UUID, error)
	GenerateToken(ctx context.Context, u *dto.UserRead) (string, error)
}

type Service struct {
	uow      repository.UnitOfWork
	strategy Strategy
	logger   *slog.Logger
}

func New(
	uow repository.UnitOfWork,
	strategy Strategy,
	logger *slog.Logger,
) *Service {
	return &Service{uow: uow, strategy: strategy, logger: logger}
}

func NewWithBasic(
	uow repository.UnitOfWork,
	logger *slog.Logger,
) *Service {
	return New(uow, &BasicAuthStrategy{uow: uow, logger: logger}, logger)
}

func NewWithJWT(
	uow repository.UnitOfWork,
	cfg *config.Jwt,
	logger *slog.Logger,
) *Service {
	return New(uow, &JWTStrategy{uow: uow, cfg: cfg, logger: logger}, logger)
}

func (s *Service) GetCurrentUserId(
	token *jwt.Token,
) (userID uuid.UUID, err error) {
	log := s.logger.With("context", "GetCurrentUserId")
	userID, err = s.strategy.GetCurrentUserID(
		context.WithValue(
			context.Background(),
			userContextKey,
			token,
		),
	)
	if err != nil {
		log.Error("GetCurrentUserId failed", "error", err)
		return
	}
	log.Debug("GetCurrentUserId successful", "userID", userID)
	return
}

func (s *Service) Login(
	ctx context.Context,
	identity, password string,
) (u *dto.UserRead, err error) {
	log := s.logger.With("context", "Login")
	log.Debug("Login called", "identity", identity)
	u, err = s.strategy.Login(ctx, identity, password)
	if err != nil {
		log.Error("Login failed", "identity", identity, "error", err)
		return
	}
	log.Info("Login successful", "userID", u.ID)
	return
}

func (s *Service) GenerateToken(
	ctx context.Context,
	u *dto.UserRead,
) (string, error) {
	log := s.logger.With("userID", u.ID)
	token, err := s.strategy.GenerateToken(ctx, u)
	if err != nil {
		log.Error("GenerateToken failed", "error", err)
		return "", err
	}
	log.Debug("GenerateToken successful")
	return token, nil
}

// JWTStrategy implements Strategy with HS256 signed session tokens.
type JWTStrategy struct {
	uow    repository.UnitOfWork
	cfg    *config.Jwt
	logger *slog.Logger
}

func NewJWTStrategy(
	uow repository.UnitOfWork,
	cfg *config.Jwt,
	logger *slog.Logger,
) *JWTStrategy {
	return &JWTStrategy{uow: uow, cfg: cfg, logger: logger}
}

func (s *JWTStrategy) GenerateToken(
	ctx context.Context,
	u *dto.UserRead) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["user_id"] = u.ID.String()
	claims["email"] = u.Email
	claims["role"] = u.Role
	claims["exp"] = time.Now().Add(s.cfg.Expiry).Unix()
	tokenString, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		s.logger.Error("GenerateToken failed", "userID", u.ID, "error", err)
		return "", err
	}
	return tokenString, nil
}

func (s *JWTStrategy) Login(
	ctx context.Context,
	identity, password string,
) (*dto.UserRead, error) {
	return checkCredentials(ctx, s.uow, s.logger, identity, password)
}

func (s *JWTStrategy) GetCurrentUserID(
	ctx context.Context,
) (userID uuid.UUID, err error) {
	token, ok := ctx.Value(userContextKey).(*jwt.Token)
	if !ok || token == nil {
		err = domain.ErrUnauthorized
		return
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		err = domain.ErrUnauthorized
		return
	}
	userIDRaw, ok := claims["user_id"].(string)
	if !ok {
		err = domain.ErrUnauthorized
		return
	}
	userID, err = uuid.Parse(userIDRaw)
	if err != nil {
		err = domain.ErrUnauthorized
	}
	return
}

// BasicAuthStrategy implements Strategy for the admin CLI: a password check
// without any token.
type BasicAuthStrategy struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

func NewBasicAuthStrategy(
	uow repository.UnitOfWork,
	logger *slog.Logger,
) *BasicAuthStrategy {
	return &BasicAuthStrategy{uow: uow, logger: logger}
}

func (s *BasicAuthStrategy) Login(
	ctx context.Context,
	identity, password string,
) (*dto.UserRead, error) {
	return checkCredentials(ctx, s.uow, s.logger, identity, password)
}

func (s *BasicAuthStrategy) GetCurrentUserID(ctx context.Context) (uuid.UUID, error) {
	return uuid.Nil, nil
}

func (s *BasicAuthStrategy) GenerateToken(ctx context.Context, u *dto.UserRead) (string, error) {
	return "", nil // No token for basic auth
}

func checkCredentials(
	ctx context.Context,
	uow repository.UnitOfWork,
	logger *slog.Logger,
	identity, password string,
) (*dto.UserRead, error) {
	log := logger.With("context", "checkCredentials")
	identity = strings.ToLower(strings.TrimSpace(identity))
	if !utils.IsEmail(identity) {
		_ = utils.CheckPasswordHash(password, dummyHash)
		return nil, user.ErrUserUnauthorized
	}
	repo, err := uow.UserRepository()
	if err != nil {
		return nil, domain.Dependency("Failed to fetch user", err)
	}
	u, err := repo.GetByEmail(ctx, identity)
	if errors.Is(err, domain.ErrNotFound) {
		// Always check password hash to avoid timing attacks
		_ = utils.CheckPasswordHash(password, dummyHash)
		return nil, user.ErrUserUnauthorized
	}
	if err != nil {
		log.Error("Repository error", "error", err)
		return nil, domain.Dependency("Failed to fetch user", err)
	}
	if !utils.CheckPasswordHash(password, u.PasswordHash) {
		return nil, user.ErrUserUnauthorized
	}
	return u, nil
}
