//go:build integration

package testutils

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/fortizbank/fortiz/infra"
	infra_cache "github.com/fortizbank/fortiz/infra/cache"
	infra_eventbus "github.com/fortizbank/fortiz/infra/eventbus"
	"github.com/fortizbank/fortiz/infra/notifier"
	infrarepo "github.com/fortizbank/fortiz/infra/repository"
	"github.com/fortizbank/fortiz/pkg/app"
	"github.com/fortizbank/fortiz/pkg/config"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// E2ETestSuite provides a test suite with a real Postgres database using Testcontainers.
// Build turns the wired application into the HTTP app under test.
type E2ETestSuite struct {
	suite.Suite
	Build func(*app.App) *fiber.App

	pgContainer *tcpostgres.PostgresContainer
	DB          *gorm.DB
	App         *fiber.App
	Cfg         *config.App
}

// startPostgresContainer starts a Postgres container using Testcontainers
func (s *E2ETestSuite) startPostgresContainer(ctx context.Context) (*tcpostgres.PostgresContainer, error) {
	return tcpostgres.Run(
		ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(30*time.Second),
		),
	)
}

// SetupSuite initializes the test suite with a real Postgres database
func (s *E2ETestSuite) SetupSuite() {
	ctx := context.Background()

	pg, err := s.startPostgresContainer(ctx)
	s.Require().NoError(err)
	s.pgContainer = pg

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	s.Cfg = &config.App{
		Env:       "test",
		DB:        &config.DB{Url: dsn, MigrateOnStart: true},
		Auth:      &config.Auth{Jwt: TestJwt},
		RateLimit: &config.RateLimit{MaxRequests: 10000, Window: time.Minute},
		Transfer:  &config.Transfer{MfaThreshold: decimal.NewFromInt(1000)},
		Dashboard: &config.Dashboard{CacheTTL: 30 * time.Second, CacheDriver: "memory"},
	}

	s.DB, err = infra.NewDBConnection(s.Cfg.DB, s.Cfg.Env)
	s.Require().NoError(err)
	s.Require().NoError(infra.RunMigrations(s.DB))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	deps := &app.Deps{
		Uow:      infrarepo.NewUoW(s.DB),
		EventBus: infra_eventbus.NewWithMemory(logger),
		Cache:    infra_cache.NewMemoryCache(0),
		Sender:   notifier.NewLogSender(logger),
		Logger:   logger,
	}
	s.App = s.Build(app.New(deps, s.Cfg))
}

// TearDownSuite cleans up the test suite resources
func (s *E2ETestSuite) TearDownSuite() {
	if s.pgContainer != nil {
		_ = s.pgContainer.Terminate(context.Background())
	}
}

// MakeRequest is a helper for making HTTP requests in tests
func (s *E2ETestSuite) MakeRequest(method, path, body, token string) *http.Response {
	return MakeRequestWithApp(s.App, method, path, body, token)
}

// RegisterAndLogin signs up a fresh customer and returns the user id and token.
func (s *E2ETestSuite) RegisterAndLogin() (uuid.UUID, string) {
	email := fmt.Sprintf("e2e_%s@example.com", uuid.NewString()[:8])
	body := fmt.Sprintf(`{"email":%q,"password":"password123","full_name":"E2E Customer"}`, email)

	resp := s.MakeRequest(fiber.MethodPost, "/auth/register", body, "")
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	id, err := uuid.Parse(Decode(s.T(), resp)["id"].(string))
	s.Require().NoError(err)

	return id, s.Login(email)
}

// Login returns a session token for email.
func (s *E2ETestSuite) Login(email string) string {
	body := fmt.Sprintf(`{"email":%q,"password":"password123"}`, email)
	resp := s.MakeRequest(fiber.MethodPost, "/auth/login", body, "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	token, _ := Decode(s.T(), resp)["token"].(string)
	s.Require().NotEmpty(token)
	return token
}

// OpenAccount inserts an active account for userID directly in the database.
func (s *E2ETestSuite) OpenAccount(userID uuid.UUID, kind string, balance int64) uuid.UUID {
	id := uuid.New()
	err := s.DB.Exec(
		`INSERT INTO accounts (id, user_id, account_number, account_type, balance, available_balance)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, userID, fmt.Sprintf("%012d", id.ID()), kind, balance, balance,
	).Error
	s.Require().NoError(err)
	return id
}
