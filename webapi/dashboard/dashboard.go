package dashboard

import (
	"github.com/fortizbank/fortiz/pkg/config"
	"github.com/fortizbank/fortiz/pkg/middleware"
	authsvc "github.com/fortizbank/fortiz/pkg/service/auth"
	dashboardsvc "github.com/fortizbank/fortiz/pkg/service/dashboard"
	"github.com/fortizbank/fortiz/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the read-only customer views.
func Routes(app *fiber.App, svc *dashboardsvc.Service, authSvc *authsvc.Service, cfg *config.App) {
	protected := middleware.JwtProtected(cfg.Auth.Jwt)
	app.Get("/accounts", protected, ListAccounts(svc, authSvc))
	app.Get("/accounts/:id/transactions", protected, ListTransactions(svc, authSvc))
	app.Get("/dashboard/summary", protected, Summary(svc, authSvc))
	app.Get("/alerts", protected, ListAlerts(svc, authSvc))
	app.Patch("/alerts/:id/read", protected, MarkAlertRead(svc, authSvc))
}

// ListAccounts returns the caller's accounts.
// @Summary List accounts
// @Tags dashboard
// @Produce json
// @Success 200 {array} dto.AccountRead
// @Failure 401 {object} common.ErrorResponse
// @Router /accounts [get]
// @Security Bearer
func ListAccounts(svc *dashboardsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.Unauthorized(c)
		}
		accounts, err := svc.ListAccounts(c.Context(), userID)
		if err != nil {
			return common.RespondError(c, err)
		}
		return c.JSON(accounts)
	}
}

// ListTransactions returns the transactions of one of the caller's accounts.
// @Summary List account transactions
// @Tags dashboard
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {array} dto.TransactionRead
// @Failure 401 {object} common.ErrorResponse
// @Failure 404 {object} common.ErrorResponse
// @Router /accounts/{id}/transactions [get]
// @Security Bearer
func ListTransactions(svc *dashboardsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.Unauthorized(c)
		}
		accountID, ok := common.ParamUUID(c, "id")
		if !ok {
			return common.RespondError(c, dashboardsvc.ErrAccountNotFound)
		}
		txs, err := svc.ListTransactions(c.Context(), userID, accountID)
		if err != nil {
			return common.RespondError(c, err)
		}
		return c.JSON(txs)
	}
}

// Summary returns the aggregated dashboard.
// @Summary Dashboard summary
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardSummary
// @Failure 401 {object} common.ErrorResponse
// @Failure 500 {object} common.ErrorResponse
// @Router /dashboard/summary [get]
// @Security Bearer
func Summary(svc *dashboardsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.Unauthorized(c)
		}
		summary, err := svc.Summary(c.Context(), userID)
		if err != nil {
			return common.RespondError(c, err)
		}
		return c.JSON(summary)
	}
}

// ListAlerts returns the caller's alerts, newest first.
// @Summary List alerts
// @Tags alerts
// @Produce json
// @Success 200 {array} dto.AlertRead
// @Failure 401 {object} common.ErrorResponse
// @Router /alerts [get]
// @Security Bearer
func ListAlerts(svc *dashboardsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.Unauthorized(c)
		}
		alerts, err := svc.ListAlerts(c.Context(), userID)
		if err != nil {
			return common.RespondError(c, err)
		}
		return c.JSON(alerts)
	}
}

// MarkAlertRead flags one alert as read.
// @Summary Mark alert read
// @Tags alerts
// @Produce json
// @Param id path string true "Alert ID"
// @Success 200 {object} common.SuccessResponse
// @Failure 401 {object} common.ErrorResponse
// @Failure 404 {object} common.ErrorResponse
// @Router /alerts/{id}/read [patch]
// @Security Bearer
func MarkAlertRead(svc *dashboardsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.Unauthorized(c)
		}
		alertID, ok := common.ParamUUID(c, "id")
		if !ok {
			return common.RespondError(c, dashboardsvc.ErrAlertNotFound)
		}
		if err := svc.MarkAlertRead(c.Context(), userID, alertID); err != nil {
			return common.RespondError(c, err)
		}
		return c.JSON(common.SuccessResponse{Success: true, Message: "Alert marked as read"})
	}
}
