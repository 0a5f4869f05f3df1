package dashboard

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/fortizbank/fortiz/internal/fixtures/mocks"
	"github.com/fortizbank/fortiz/pkg/config"
	"github.com/fortizbank/fortiz/pkg/domain"
	"github.com/fortizbank/fortiz/pkg/dto"
	authsvc "github.com/fortizbank/fortiz/pkg/service/auth"
	dashboardsvc "github.com/fortizbank/fortiz/pkg/service/dashboard"
	"github.com/fortizbank/fortiz/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type env struct {
	app      *fiber.App
	userID   uuid.UUID
	token    string
	accounts *mocks.MockAccountRepository
	txs      *mocks.MockTransactionRepository
	alerts   *mocks.MockAlertRepository
}

func setup(t *testing.T) *env {
	t.Helper()
	e := &env{
		userID:   uuid.New(),
		accounts: mocks.NewMockAccountRepository(t),
		txs:      mocks.NewMockTransactionRepository(t),
		alerts:   mocks.NewMockAlertRepository(t),
	}
	uow := mocks.NewMockUnitOfWork(t)
	uow.On("AccountRepository").Return(e.accounts, nil).Maybe()
	uow.On("TransactionRepository").Return(e.txs, nil).Maybe()
	uow.On("AlertRepository").Return(e.alerts, nil).Maybe()

	cfg := &config.App{Auth: &config.Auth{Jwt: testutils.TestJwt}}
	e.app = fiber.New()
	Routes(e.app,
		dashboardsvc.New(uow, nil, 0, slog.Default()),
		authsvc.NewWithJWT(uow, cfg.Auth.Jwt, slog.Default()),
		cfg,
	)
	e.token = testutils.Token(t, e.userID, "customer")
	return e
}

func TestListAccounts_EmptyIsArray(t *testing.T) {
	e := setup(t)
	e.accounts.On("ListByUser", mock.Anything, e.userID).Return(nil, nil).Once()

	resp := testutils.MakeRequestWithApp(e.app, fiber.MethodGet, "/accounts", "", e.token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	defer resp.Body.Close() //nolint: errcheck
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestListTransactions_ForeignAccountIsNotFound(t *testing.T) {
	e := setup(t)
	id := uuid.New()
	e.accounts.On("GetOwned", mock.Anything, e.userID, id).Return(nil, domain.ErrNotFound).Once()

	resp := testutils.MakeRequestWithApp(e.app, fiber.MethodGet, "/accounts/"+id.String()+"/transactions", "", e.token)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Account not found", testutils.Decode(t, resp)["error"])
}

func TestSummary(t *testing.T) {
	e := setup(t)
	a := &dto.AccountRead{ID: uuid.New(), Balance: decimal.NewFromInt(70), AvailableBalance: decimal.NewFromInt(50)}
	b := &dto.AccountRead{ID: uuid.New(), Balance: decimal.NewFromInt(30), AvailableBalance: decimal.NewFromInt(30)}
	e.accounts.On("ListByUser", mock.Anything, e.userID).Return([]*dto.AccountRead{a, b}, nil).Once()
	e.txs.On("ListByUser", mock.Anything, e.userID, 0).Return([]*dto.TransactionRead{
		{TransactionType: "transfer", Direction: "debit", Amount: decimal.NewFromInt(12)},
		{TransactionType: "transfer", Direction: "credit", Amount: decimal.NewFromInt(12)},
	}, nil).Once()
	e.alerts.On("CountUnread", mock.Anything, e.userID).Return(int64(3), nil).Once()

	resp := testutils.MakeRequestWithApp(e.app, fiber.MethodGet, "/dashboard/summary", "", e.token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := testutils.Decode(t, resp)
	assert.EqualValues(t, 100, body["total_balance"])
	assert.EqualValues(t, 80, body["total_available"])
	assert.EqualValues(t, 3, body["unread_alerts"])
	assert.Equal(t, map[string]any{"transfer": float64(12)}, body["category_breakdown"])
}

func TestSummary_RepositoryFailure(t *testing.T) {
	e := setup(t)
	e.accounts.On("ListByUser", mock.Anything, e.userID).Return(nil, errors.New("timeout")).Once()

	resp := testutils.MakeRequestWithApp(e.app, fiber.MethodGet, "/dashboard/summary", "", e.token)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Failed to fetch accounts", testutils.Decode(t, resp)["error"])
}

func TestMarkAlertRead(t *testing.T) {
	e := setup(t)
	id := uuid.New()
	e.alerts.On("MarkRead", mock.Anything, e.userID, id).Return(nil).Once()

	resp := testutils.MakeRequestWithApp(e.app, fiber.MethodPatch, "/alerts/"+id.String()+"/read", "", e.token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	other := uuid.New()
	e.alerts.On("MarkRead", mock.Anything, e.userID, other).Return(domain.ErrNotFound).Once()
	resp = testutils.MakeRequestWithApp(e.app, fiber.MethodPatch, "/alerts/"+other.String()+"/read", "", e.token)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRoutes_RequireToken(t *testing.T) {
	e := setup(t)
	resp := testutils.MakeRequestWithApp(e.app, fiber.MethodGet, "/dashboard/summary", "", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
