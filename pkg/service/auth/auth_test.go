package auth_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/fortizbank/fortiz/internal/fixtures/mocks"
	"github.com/fortizbank/fortiz/pkg/config"
	"github.com/fortizbank/fortiz/pkg/domain"
	"github.com/fortizbank/fortiz/pkg/domain/user"
	"github.com/fortizbank/fortiz/pkg/dto"
	authsvc "github.com/fortizbank/fortiz/pkg/service/auth"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var jwtCfg = &config.Jwt{Secret: "test-secret", Expiry: time.Hour}

func storedUser(t *testing.T, password string) *dto.UserRead {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &dto.UserRead{
		ID:           uuid.New(),
		Email:        "jane@example.com",
		FullName:     "Jane Doe",
		PasswordHash: string(hash),
		Role:         "customer",
	}
}

func TestLogin_Success(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	userRepo := mocks.NewMockUserRepository(t)
	u := storedUser(t, "password123")

	uow.On("UserRepository").Return(userRepo, nil).Once()
	userRepo.On("GetByEmail", mock.Anything, "jane@example.com").Return(u, nil).Once()

	svc := authsvc.NewWithJWT(uow, jwtCfg, slog.Default())
	got, err := svc.Login(context.Background(), " Jane@Example.com ", "password123")

	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestLogin_InvalidPassword(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	userRepo := mocks.NewMockUserRepository(t)

	uow.On("UserRepository").Return(userRepo, nil).Once()
	userRepo.On("GetByEmail", mock.Anything, "jane@example.com").Return(storedUser(t, "password123"), nil).Once()

	svc := authsvc.NewWithJWT(uow, jwtCfg, slog.Default())
	got, err := svc.Login(context.Background(), "jane@example.com", "wrong")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, user.ErrUserUnauthorized)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UnknownUser(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	userRepo := mocks.NewMockUserRepository(t)

	uow.On("UserRepository").Return(userRepo, nil).Once()
	userRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, domain.ErrNotFound).Once()

	svc := authsvc.NewWithBasic(uow, slog.Default())
	_, err := svc.Login(context.Background(), "ghost@example.com", "password123")

	assert.ErrorIs(t, err, user.ErrUserUnauthorized)
}

func TestLogin_NotAnEmail(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)

	svc := authsvc.NewWithJWT(uow, jwtCfg, slog.Default())
	_, err := svc.Login(context.Background(), "jane", "password123")

	assert.ErrorIs(t, err, user.ErrUserUnauthorized)
}

func TestLogin_RepositoryFailure(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	userRepo := mocks.NewMockUserRepository(t)

	uow.On("UserRepository").Return(userRepo, nil).Once()
	userRepo.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()

	svc := authsvc.NewWithJWT(uow, jwtCfg, slog.Default())
	_, err := svc.Login(context.Background(), "jane@example.com", "password123")

	var depErr *domain.DependencyError
	assert.ErrorAs(t, err, &depErr)
}

func TestGenerateToken_ClaimsRoundTrip(t *testing.T) {
	svc := authsvc.NewWithJWT(nil, jwtCfg, slog.Default())
	u := &dto.UserRead{ID: uuid.New(), Email: "jane@example.com", Role: "admin"}

	signed, err := svc.GenerateToken(context.Background(), u)
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(*jwt.Token) (any, error) { return []byte(jwtCfg.Secret), nil })
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, u.ID.String(), claims["user_id"])
	assert.Equal(t, "jane@example.com", claims["email"])
	assert.Equal(t, "admin", claims["role"])

	id, err := svc.GetCurrentUserId(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, id)
}

func TestGetCurrentUserId_RejectsBadClaims(t *testing.T) {
	svc := authsvc.NewWithJWT(nil, jwtCfg, slog.Default())

	_, err := svc.GetCurrentUserId(nil)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": "not-a-uuid"})
	_, err = svc.GetCurrentUserId(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestBasicStrategy_IssuesNoToken(t *testing.T) {
	svc := authsvc.NewWithBasic(nil, slog.Default())
	token, err := svc.GenerateToken(context.Background(), &dto.UserRead{ID: uuid.New()})
	require.NoError(t, err)
	assert.Empty(t, token)
}
