package user_test

import (
	"context"
	"log/slog"
	"reflect"
	"testing"

	"github.com/fortizbank/fortiz/internal/fixtures/mocks"
	"github.com/fortizbank/fortiz/pkg/domain"
	"github.com/fortizbank/fortiz/pkg/domain/user"
	"github.com/fortizbank/fortiz/pkg/dto"
	"github.com/fortizbank/fortiz/pkg/repository"
	userrepo "github.com/fortizbank/fortiz/pkg/repository/user"
	usersvc "github.com/fortizbank/fortiz/pkg/service/user"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var userRepoType = reflect.TypeOf((*userrepo.Repository)(nil)).Elem()

func runInTx(uow *mocks.MockUnitOfWork) {
	uow.On("Do", mock.Anything, mock.Anything).Return(
		func(ctx context.Context, fn func(repository.UnitOfWork) error) error { return fn(uow) },
	).Once()
}

func TestCreateUser(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	repo := mocks.NewMockUserRepository(t)
	runInTx(uow)
	uow.On("GetRepository", userRepoType).Return(repo, nil).Once()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *dto.UserCreate) bool {
		return c.Email == "jane@example.com" && c.Role == "customer" && c.KycStatus == "unverified" &&
			c.PasswordHash != "" && c.PasswordHash != "password123"
	})).Return(nil).Once()

	svc := usersvc.New(uow, slog.Default())
	u, err := svc.CreateUser(context.Background(), "Jane@Example.com", "Jane Doe", "password123")

	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", u.Email)
	assert.Equal(t, "customer", u.Role)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	repo := mocks.NewMockUserRepository(t)
	runInTx(uow)
	uow.On("GetRepository", userRepoType).Return(repo, nil).Once()
	repo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrAlreadyExists).Once()

	svc := usersvc.New(uow, slog.Default())
	_, err := svc.CreateUser(context.Background(), "jane@example.com", "Jane Doe", "password123")

	assert.ErrorIs(t, err, user.ErrEmailTaken)
}

func TestCreateUser_ValidatesInput(t *testing.T) {
	cases := map[string][2]string{
		"bad email":      {"jane", "password123"},
		"short password": {"jane@example.com", "short"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			uow := mocks.NewMockUnitOfWork(t)
			repo := mocks.NewMockUserRepository(t)
			runInTx(uow)
			uow.On("GetRepository", userRepoType).Return(repo, nil).Once()

			_, err := usersvc.New(uow, slog.Default()).CreateUser(context.Background(), in[0], "Jane", in[1])
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestGetUser_NotFound(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	repo := mocks.NewMockUserRepository(t)
	id := uuid.New()
	uow.On("UserRepository").Return(repo, nil).Once()
	repo.On("Get", mock.Anything, id).Return(nil, domain.ErrNotFound).Once()

	_, err := usersvc.New(uow, slog.Default()).GetUser(context.Background(), id)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
