package webapi

import (
	"io"
	"log/slog"
	"testing"
	"time"

	infra_eventbus "github.com/fortizbank/fortiz/infra/eventbus"
	"github.com/fortizbank/fortiz/infra/notifier"
	"github.com/fortizbank/fortiz/internal/fixtures/mocks"
	"github.com/fortizbank/fortiz/pkg/app"
	"github.com/fortizbank/fortiz/pkg/config"
	"github.com/fortizbank/fortiz/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type RateLimitTestSuite struct {
	suite.Suite
	app *fiber.App
}

func newTestApp(t *testing.T, maxRequests int) *fiber.App {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	deps := &app.Deps{
		Uow:      mocks.NewMockUnitOfWork(t),
		EventBus: infra_eventbus.NewWithMemory(logger),
		Sender:   notifier.NewLogSender(logger),
		Logger:   logger,
	}
	cfg := &config.App{
		Auth:      &config.Auth{Jwt: testutils.TestJwt},
		RateLimit: &config.RateLimit{MaxRequests: maxRequests, Window: time.Second},
		Transfer:  &config.Transfer{},
		Dashboard: &config.Dashboard{},
	}
	return SetupApp(app.New(deps, cfg))
}

func (s *RateLimitTestSuite) SetupTest() {
	s.app = newTestApp(s.T(), 5)
}

func (s *RateLimitTestSuite) TestRateLimit() {
	for i := range [6]int{} {
		resp := testutils.MakeRequestWithApp(s.app, fiber.MethodGet, "/", "", "")
		_ = resp.Body.Close()

		if i < 5 {
			s.Equal(fiber.StatusOK, resp.StatusCode, "Expected OK for request %d", i+1)
		} else {
			s.Equal(fiber.StatusTooManyRequests, resp.StatusCode, "Expected Too Many Requests for request %d", i+1)
		}
	}

	// Wait for the rate limit window to reset
	time.Sleep(1100 * time.Millisecond)

	resp := testutils.MakeRequestWithApp(s.app, fiber.MethodGet, "/", "", "")
	_ = resp.Body.Close()
	s.Equal(fiber.StatusOK, resp.StatusCode, "Expected OK after rate limit reset")
}

func (s *RateLimitTestSuite) TestLimitIsPerForwardedClient() {
	for range 5 {
		resp := testutils.MakeRequestWithApp(s.app, fiber.MethodGet, "/", "", "")
		_ = resp.Body.Close()
	}
	req := testutils.NewRequest(fiber.MethodGet, "/", "", "")
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	resp, err := s.app.Test(req)
	s.Require().NoError(err)
	s.Equal(fiber.StatusOK, resp.StatusCode)
}

func TestRateLimitTestSuite(t *testing.T) {
	suite.Run(t, new(RateLimitTestSuite))
}

func TestSetupApp_MountsRoutes(t *testing.T) {
	a := newTestApp(t, 100)
	for _, path := range []string{"/transfers/" + uuid.NewString(), "/dashboard/summary", "/kyc", "/admin/users", "/auth/me"} {
		resp := testutils.MakeRequestWithApp(a, fiber.MethodGet, path, "", "")
		_ = resp.Body.Close()
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Errorf("%s: expected 401, got %d", path, resp.StatusCode)
		}
	}

	resp := testutils.MakeRequestWithApp(a, fiber.MethodGet, "/nope", "", "")
	_ = resp.Body.Close()
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("expected 404 for unknown route, got %d", resp.StatusCode)
	}
}
