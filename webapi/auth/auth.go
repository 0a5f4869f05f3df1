package auth

import (
	"github.com/fortizbank/fortiz/pkg/config"
	"github.com/fortizbank/fortiz/pkg/middleware"
	authsvc "github.com/fortizbank/fortiz/pkg/service/auth"
	usersvc "github.com/fortizbank/fortiz/pkg/service/user"
	"github.com/fortizbank/fortiz/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// Routes registers sign-up, login and the current-user endpoint.
func Routes(app *fiber.App, authSvc *authsvc.Service, userSvc *usersvc.Service, cfg *config.App) {
	app.Post("/auth/register", Register(userSvc))
	app.Post("/auth/login", Login(authSvc))
	app.Get("/auth/me", middleware.JwtProtected(cfg.Auth.Jwt), Me(authSvc, userSvc))
}

// Register creates a customer.
// @Summary Register a customer
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterInput true "Sign-up details"
// @Success 201 {object} dto.UserRead
// @Failure 400 {object} common.ErrorResponse
// @Failure 409 {object} common.ErrorResponse
// @Router /auth/register [post]
func Register(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[RegisterInput](c)
		if input == nil {
			return err
		}
		u, err := userSvc.CreateUser(c.Context(), input.Email, input.FullName, input.Password)
		if err != nil {
			log.Errorf("Failed to register user: %v", err)
			return common.RespondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(u)
	}
}

// Login handles user authentication and returns a JWT token.
// @Summary User login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginInput true "Login credentials"
// @Success 200 {object} map[string]any
// @Failure 400 {object} common.ErrorResponse
// @Failure 401 {object} common.ErrorResponse
// @Failure 429 {object} common.ErrorResponse
// @Router /auth/login [post]
func Login(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginInput](c)
		if input == nil {
			return err
		}
		u, err := authSvc.Login(c.Context(), input.Email, input.Password)
		if err != nil {
			return common.RespondError(c, err)
		}
		token, err := authSvc.GenerateToken(c.Context(), u)
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusInternalServerError, "Failed to issue token")
		}
		return c.JSON(fiber.Map{"token": token, "user": u})
	}
}

// Me returns the authenticated user.
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} dto.UserRead
// @Failure 401 {object} common.ErrorResponse
// @Router /auth/me [get]
// @Security Bearer
func Me(authSvc *authsvc.Service, userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.Unauthorized(c)
		}
		u, err := userSvc.GetUser(c.Context(), userID)
		if err != nil {
			return common.RespondError(c, err)
		}
		return c.JSON(u)
	}
}
