package kyc

import (
	"github.com/fortizbank/fortiz/pkg/config"
	"github.com/fortizbank/fortiz/pkg/dto"
	"github.com/fortizbank/fortiz/pkg/middleware"
	authsvc "github.com/fortizbank/fortiz/pkg/service/auth"
	kycsvc "github.com/fortizbank/fortiz/pkg/service/kyc"
	"github.com/fortizbank/fortiz/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

func Routes(app *fiber.App, svc *kycsvc.Service, authSvc *authsvc.Service, cfg *config.App) {
	app.Post("/kyc", middleware.JwtProtected(cfg.Auth.Jwt), Submit(svc, authSvc))
	app.Get("/kyc", middleware.JwtProtected(cfg.Auth.Jwt), Latest(svc, authSvc))
}

// Submit records an identity verification request.
// @Summary Submit KYC
// @Tags kyc
// @Accept json
// @Produce json
// @Param request body dto.KycSubmit true "Applicant details"
// @Success 201 {object} dto.KycRead
// @Failure 400 {object} common.ErrorResponse
// @Failure 401 {object} common.ErrorResponse
// @Router /kyc [post]
// @Security Bearer
func Submit(svc *kycsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.Unauthorized(c)
		}
		input, err := common.BindAndValidate[dto.KycSubmit](c)
		if input == nil {
			return err
		}
		sub, err := svc.Submit(c.Context(), userID, *input)
		if err != nil {
			log.Errorf("KYC submission failed for user %s: %v", userID, err)
			return common.RespondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(sub)
	}
}

// Latest returns the caller's most recent submission.
// @Summary Latest KYC submission
// @Tags kyc
// @Produce json
// @Success 200 {object} dto.KycRead
// @Failure 401 {object} common.ErrorResponse
// @Failure 404 {object} common.ErrorResponse
// @Router /kyc [get]
// @Security Bearer
func Latest(svc *kycsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.Unauthorized(c)
		}
		sub, err := svc.GetLatest(c.Context(), userID)
		if err != nil {
			return common.RespondError(c, err)
		}
		return c.JSON(sub)
	}
}
