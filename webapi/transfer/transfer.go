package transfer

import (
	"github.com/fortizbank/fortiz/pkg/config"
	domtransfer "github.com/fortizbank/fortiz/pkg/domain/transfer"
	"github.com/fortizbank/fortiz/pkg/dto"
	"github.com/fortizbank/fortiz/pkg/middleware"
	authsvc "github.com/fortizbank/fortiz/pkg/service/auth"
	transfersvc "github.com/fortizbank/fortiz/pkg/service/transfer"
	"github.com/fortizbank/fortiz/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// Routes registers the transfer endpoints. All of them require a session token.
//
//   - POST  /transfers          : internal transfer between two of the caller's accounts
//   - GET   /transfers/:id      : transfer detail with holds, ledger entries and events
//   - PATCH /transfers/:id      : cancel or verify_mfa
//   - POST  /transfers-v2       : initiate a held transfer, internal or external
//   - GET   /transfers-v2/:id   : same as GET /transfers/:id
//   - PATCH /transfers-v2/:id   : same as PATCH /transfers/:id
func Routes(app *fiber.App, transferSvc *transfersvc.Service, authSvc *authsvc.Service, cfg *config.App) {
	protected := middleware.JwtProtected(cfg.Auth.Jwt)
	app.Post("/transfers", protected, Create(transferSvc, authSvc))
	app.Get("/transfers/:id", protected, Detail(transferSvc, authSvc))
	app.Patch("/transfers/:id", protected, Act(transferSvc, authSvc))
	app.Post("/transfers-v2", protected, Initiate(transferSvc, authSvc))
	app.Get("/transfers-v2/:id", protected, Detail(transferSvc, authSvc))
	app.Patch("/transfers-v2/:id", protected, Act(transferSvc, authSvc))
}

// Create moves funds between two accounts of the caller.
// @Summary Internal transfer
// @Tags transfers
// @Accept json
// @Produce json
// @Param request body dto.InternalTransferRequest true "Transfer details"
// @Success 201 {object} common.SuccessResponse
// @Failure 400 {object} common.ErrorResponse
// @Failure 401 {object} common.ErrorResponse
// @Failure 500 {object} common.ErrorResponse
// @Router /transfers [post]
// @Security Bearer
func Create(transferSvc *transfersvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.Unauthorized(c)
		}
		// Presence and format are checked by the service in a fixed order.
		var input dto.InternalTransferRequest
		if err := c.BodyParser(&input); err != nil {
			return common.ErrorJSON(c, fiber.StatusBadRequest, "Invalid request body")
		}
		res, err := transferSvc.Transfer(c.Context(), userID, input)
		if err != nil {
			log.Errorf("Transfer failed for user %s: %v", userID, err)
			return common.RespondError(c, err)
		}
		log.Infof("Transfer %s completed for user %s", res.Reference, userID)
		return c.Status(fiber.StatusCreated).JSON(common.SuccessResponse{
			Success: true,
			Message: "Transfer completed successfully",
		})
	}
}

// Initiate places a hold for a new transfer.
// @Summary Initiate a transfer
// @Tags transfers
// @Accept json
// @Produce json
// @Param request body dto.TransferInitiateRequest true "Transfer details"
// @Success 201 {object} map[string]dto.TransferRead
// @Failure 400 {object} common.ErrorResponse
// @Failure 401 {object} common.ErrorResponse
// @Failure 500 {object} common.ErrorResponse
// @Router /transfers-v2 [post]
// @Security Bearer
func Initiate(transferSvc *transfersvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.Unauthorized(c)
		}
		var input dto.TransferInitiateRequest
		if err := c.BodyParser(&input); err != nil {
			return common.ErrorJSON(c, fiber.StatusBadRequest, "Invalid request body")
		}
		t, err := transferSvc.Initiate(c.Context(), userID, input)
		if err != nil {
			log.Errorf("Initiate failed for user %s: %v", userID, err)
			return common.RespondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"transfer": t})
	}
}

// Detail returns a transfer owned by the caller.
// @Summary Transfer detail
// @Tags transfers
// @Produce json
// @Param id path string true "Transfer ID"
// @Success 200 {object} dto.TransferDetail
// @Failure 401 {object} common.ErrorResponse
// @Failure 404 {object} common.ErrorResponse
// @Failure 500 {object} common.ErrorResponse
// @Router /transfers/{id} [get]
// @Security Bearer
func Detail(transferSvc *transfersvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.Unauthorized(c)
		}
		id, ok := common.ParamUUID(c, "id")
		if !ok {
			return common.RespondError(c, domtransfer.ErrTransferNotFound)
		}
		detail, err := transferSvc.GetDetail(c.Context(), userID, id)
		if err != nil {
			return common.RespondError(c, err)
		}
		return c.JSON(detail)
	}
}

// Act applies a lifecycle action to a transfer owned by the caller.
// @Summary Cancel or verify MFA
// @Tags transfers
// @Accept json
// @Produce json
// @Param id path string true "Transfer ID"
// @Param request body dto.TransferActionRequest true "Action"
// @Success 200 {object} dto.TransferActionResult
// @Failure 400 {object} common.ErrorResponse
// @Failure 401 {object} common.ErrorResponse
// @Failure 404 {object} common.ErrorResponse
// @Failure 500 {object} common.ErrorResponse
// @Router /transfers/{id} [patch]
// @Security Bearer
func Act(transferSvc *transfersvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.Unauthorized(c)
		}
		id, ok := common.ParamUUID(c, "id")
		if !ok {
			return common.RespondError(c, domtransfer.ErrTransferNotFound)
		}
		var input dto.TransferActionRequest
		if err := c.BodyParser(&input); err != nil {
			return common.ErrorJSON(c, fiber.StatusBadRequest, "Invalid request body")
		}
		res, err := transferSvc.Act(c.Context(), userID, id, input)
		if err != nil {
			log.Errorf("Action %q on transfer %s failed: %v", input.Action, id, err)
			return common.RespondError(c, err)
		}
		return c.JSON(res)
	}
}
