// Package webapi provides HTTP handlers and API endpoints for Fortiz Bank.
// It is organized into sub-packages for different domains:
// - auth: sign-up, login and the current user
// - dashboard: accounts, transactions, summary and alerts
// - transfer: internal transfers and the transfer lifecycle
// - kyc: identity verification
// - admin: back-office endpoints
package webapi

import (
	"strings"

	"github.com/fortizbank/fortiz/pkg/app"
	adminweb "github.com/fortizbank/fortiz/webapi/admin"
	authweb "github.com/fortizbank/fortiz/webapi/auth"
	"github.com/fortizbank/fortiz/webapi/common"
	dashboardweb "github.com/fortizbank/fortiz/webapi/dashboard"
	kycweb "github.com/fortizbank/fortiz/webapi/kyc"
	transferweb "github.com/fortizbank/fortiz/webapi/transfer"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"

	_ "github.com/fortizbank/fortiz/docs"
)

// SetupApp Initialize Fiber with custom configuration
func SetupApp(a *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return common.ErrorJSON(c, e.Code, e.Message)
			}
			return common.ErrorJSON(c, fiber.StatusInternalServerError, "Internal server error")
		},
	})
	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled:      true,
		PersistAuthorization: true,
	}))

	// Behind a proxy the client address comes from X-Forwarded-For, then X-Real-IP.
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        a.Config.RateLimit.MaxRequests,
		Expiration: a.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ErrorJSON(c, fiber.StatusTooManyRequests, "Too many requests")
		},
	}))
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())

	// Health check endpoint
	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Fortiz Bank API is running")
	})

	authweb.Routes(fiberApp, a.AuthService, a.UserService, a.Config)
	dashboardweb.Routes(fiberApp, a.DashboardService, a.AuthService, a.Config)
	transferweb.Routes(fiberApp, a.TransferService, a.AuthService, a.Config)
	kycweb.Routes(fiberApp, a.KycService, a.AuthService, a.Config)
	adminweb.Routes(fiberApp, a.AdminService, a.AuthService, a.Config)
	return fiberApp
}
