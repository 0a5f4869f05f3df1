package admin

import (
	"github.com/fortizbank/fortiz/pkg/config"
	domkyc "github.com/fortizbank/fortiz/pkg/domain/kyc"
	"github.com/fortizbank/fortiz/pkg/domain/user"
	"github.com/fortizbank/fortiz/pkg/middleware"
	adminsvc "github.com/fortizbank/fortiz/pkg/service/admin"
	authsvc "github.com/fortizbank/fortiz/pkg/service/auth"
	"github.com/fortizbank/fortiz/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// Routes registers the back-office endpoints. Every route needs an admin token.
func Routes(app *fiber.App, svc *adminsvc.Service, authSvc *authsvc.Service, cfg *config.App) {
	group := app.Group("/admin", middleware.JwtProtected(cfg.Auth.Jwt), middleware.AdminOnly())
	group.Get("/users", ListUsers(svc))
	group.Patch("/users/:id/role", UpdateRole(svc))
	group.Get("/kyc", ListKyc(svc))
	group.Patch("/kyc/:id", ReviewKyc(svc, authSvc))
}

// ListUsers pages through registered users.
// @Summary List users
// @Tags admin
// @Produce json
// @Param page query int false "Page, from 1"
// @Param page_size query int false "Page size"
// @Success 200 {array} dto.UserRead
// @Failure 401 {object} common.ErrorResponse
// @Failure 403 {object} common.ErrorResponse
// @Router /admin/users [get]
// @Security Bearer
func ListUsers(svc *adminsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := c.QueryInt("page", 1)
		if page < 1 {
			page = 1
		}
		users, err := svc.ListUsers(c.Context(), page, c.QueryInt("page_size", adminsvc.DefaultPageSize))
		if err != nil {
			return common.RespondError(c, err)
		}
		return c.JSON(users)
	}
}

// ListKyc lists submissions, optionally filtered by status.
// @Summary List KYC submissions
// @Tags admin
// @Produce json
// @Param status query string false "pending, approved or rejected"
// @Success 200 {array} dto.KycRead
// @Failure 400 {object} common.ErrorResponse
// @Failure 403 {object} common.ErrorResponse
// @Router /admin/kyc [get]
// @Security Bearer
func ListKyc(svc *adminsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := svc.ListKyc(c.Context(), c.Query("status"))
		if err != nil {
			return common.RespondError(c, err)
		}
		return c.JSON(list)
	}
}

// ReviewKyc approves or rejects a pending submission.
// @Summary Review KYC submission
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Submission ID"
// @Param request body ReviewInput true "Decision"
// @Success 200 {object} dto.KycRead
// @Failure 400 {object} common.ErrorResponse
// @Failure 403 {object} common.ErrorResponse
// @Failure 404 {object} common.ErrorResponse
// @Router /admin/kyc/{id} [patch]
// @Security Bearer
func ReviewKyc(svc *adminsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reviewerID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.Unauthorized(c)
		}
		id, ok := common.ParamUUID(c, "id")
		if !ok {
			return common.RespondError(c, domkyc.ErrSubmissionNotFound)
		}
		input, err := common.BindAndValidate[ReviewInput](c)
		if input == nil {
			return err
		}
		sub, err := svc.ReviewKyc(c.Context(), reviewerID, id, input.Action, input.Notes)
		if err != nil {
			log.Errorf("KYC review of %s failed: %v", id, err)
			return common.RespondError(c, err)
		}
		return c.JSON(sub)
	}
}

// UpdateRole promotes or demotes a user.
// @Summary Update user role
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body RoleInput true "Role"
// @Success 200 {object} common.SuccessResponse
// @Failure 400 {object} common.ErrorResponse
// @Failure 403 {object} common.ErrorResponse
// @Failure 404 {object} common.ErrorResponse
// @Router /admin/users/{id}/role [patch]
// @Security Bearer
func UpdateRole(svc *adminsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := common.ParamUUID(c, "id")
		if !ok {
			return common.RespondError(c, user.ErrUserNotFound)
		}
		input, err := common.BindAndValidate[RoleInput](c)
		if input == nil {
			return err
		}
		if err := svc.UpdateRole(c.Context(), id, input.Role); err != nil {
			return common.RespondError(c, err)
		}
		return c.JSON(common.SuccessResponse{Success: true, Message: "Role updated"})
	}
}
