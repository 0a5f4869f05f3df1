package auth

import (
	"context"
	"errors"
	"log/slog"
	"reflect"
	"testing"

	"github.com/fortizbank/fortiz/internal/fixtures/mocks"
	"github.com/fortizbank/fortiz/pkg/config"
	"github.com/fortizbank/fortiz/pkg/domain"
	"github.com/fortizbank/fortiz/pkg/dto"
	"github.com/fortizbank/fortiz/pkg/repository"
	userrepo "github.com/fortizbank/fortiz/pkg/repository/user"
	authsvc "github.com/fortizbank/fortiz/pkg/service/auth"
	usersvc "github.com/fortizbank/fortiz/pkg/service/user"
	"github.com/fortizbank/fortiz/pkg/utils"
	"github.com/fortizbank/fortiz/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*fiber.App, *mocks.MockUnitOfWork, *mocks.MockUserRepository) {
	t.Helper()
	uow := mocks.NewMockUnitOfWork(t)
	users := mocks.NewMockUserRepository(t)
	uow.On("UserRepository").Return(users, nil).Maybe()

	cfg := &config.App{Auth: &config.Auth{Jwt: testutils.TestJwt}}
	app := fiber.New()
	Routes(app,
		authsvc.NewWithJWT(uow, cfg.Auth.Jwt, slog.Default()),
		usersvc.New(uow, slog.Default()),
		cfg,
	)
	return app, uow, users
}

func TestRegister(t *testing.T) {
	app, uow, users := setup(t)
	uow.On("Do", mock.Anything, mock.Anything).Return(
		func(ctx context.Context, fn func(repository.UnitOfWork) error) error { return fn(uow) },
	).Once()
	uow.On("GetRepository", reflect.TypeOf((*userrepo.Repository)(nil)).Elem()).Return(users, nil).Once()
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *dto.UserCreate) bool {
		return u.Email == "ana@example.com" && u.Role == "customer" && u.PasswordHash != "secret-pass"
	})).Return(nil).Once()

	resp := testutils.MakeRequestWithApp(app, fiber.MethodPost, "/auth/register",
		`{"email":"Ana@Example.com","password":"secret-pass","full_name":"Ana Lima"}`, "")
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	body := testutils.Decode(t, resp)
	assert.Equal(t, "ana@example.com", body["email"])
	assert.NotContains(t, body, "password_hash")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	app, uow, users := setup(t)
	uow.On("Do", mock.Anything, mock.Anything).Return(
		func(ctx context.Context, fn func(repository.UnitOfWork) error) error { return fn(uow) },
	).Once()
	uow.On("GetRepository", mock.Anything).Return(users, nil).Once()
	users.On("Create", mock.Anything, mock.Anything).Return(domain.ErrAlreadyExists).Once()

	resp := testutils.MakeRequestWithApp(app, fiber.MethodPost, "/auth/register",
		`{"email":"ana@example.com","password":"secret-pass","full_name":"Ana Lima"}`, "")
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Email already registered", testutils.Decode(t, resp)["error"])
}

func TestRegister_ValidationFailed(t *testing.T) {
	app, _, _ := setup(t)
	resp := testutils.MakeRequestWithApp(app, fiber.MethodPost, "/auth/register",
		`{"email":"ana","password":"short"}`, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Validation failed", testutils.Decode(t, resp)["error"])
}

func TestLogin(t *testing.T) {
	app, _, users := setup(t)
	hash, err := utils.HashPassword("secret-pass")
	require.NoError(t, err)
	u := &dto.UserRead{ID: uuid.New(), Email: "ana@example.com", PasswordHash: hash, Role: "customer"}
	users.On("GetByEmail", mock.Anything, "ana@example.com").Return(u, nil).Once()

	resp := testutils.MakeRequestWithApp(app, fiber.MethodPost, "/auth/login",
		`{"email":"ana@example.com","password":"secret-pass"}`, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := testutils.Decode(t, resp)

	raw, _ := body["token"].(string)
	parsed, err := jwt.Parse(raw, func(*jwt.Token) (any, error) { return []byte(testutils.TestJwt.Secret), nil })
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, u.ID.String(), claims["user_id"])
	assert.Equal(t, "customer", claims["role"])
}

func TestLogin_WrongPassword(t *testing.T) {
	app, _, users := setup(t)
	hash, err := utils.HashPassword("secret-pass")
	require.NoError(t, err)
	users.On("GetByEmail", mock.Anything, "ana@example.com").
		Return(&dto.UserRead{ID: uuid.New(), PasswordHash: hash}, nil).Once()

	resp := testutils.MakeRequestWithApp(app, fiber.MethodPost, "/auth/login",
		`{"email":"ana@example.com","password":"wrong-pass"}`, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid credentials", testutils.Decode(t, resp)["error"])
}

func TestLogin_RepositoryFailure(t *testing.T) {
	app, _, users := setup(t)
	users.On("GetByEmail", mock.Anything, "ana@example.com").Return(nil, errors.New("db down")).Once()

	resp := testutils.MakeRequestWithApp(app, fiber.MethodPost, "/auth/login",
		`{"email":"ana@example.com","password":"secret-pass"}`, "")
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestMe(t *testing.T) {
	app, _, users := setup(t)
	id := uuid.New()
	users.On("Get", mock.Anything, id).Return(&dto.UserRead{ID: id, Email: "ana@example.com"}, nil).Once()

	resp := testutils.MakeRequestWithApp(app, fiber.MethodGet, "/auth/me", "", testutils.Token(t, id, "customer"))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, id.String(), testutils.Decode(t, resp)["id"])
}

func TestMe_RequiresToken(t *testing.T) {
	app, _, _ := setup(t)
	resp := testutils.MakeRequestWithApp(app, fiber.MethodGet, "/auth/me", "", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Unauthorized", testutils.Decode(t, resp)["error"])
}
