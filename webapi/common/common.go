package common

import (
	"errors"

	"github.com/fortizbank/fortiz/pkg/domain"
	"github.com/fortizbank/fortiz/pkg/middleware"
	authsvc "github.com/fortizbank/fortiz/pkg/service/auth"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are JSON numbers on the wire.
	decimal.MarshalJSONWithoutQuotes = true
}

var validate = validator.New()

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// SuccessResponse is returned by write endpoints that carry no resource.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorJSON writes {"error": message} with the given status.
func ErrorJSON(c *fiber.Ctx, status int, message string, details ...any) error {
	resp := ErrorResponse{Error: message}
	if len(details) > 0 {
		resp.Details = details[0]
	}
	return c.Status(status).JSON(resp)
}

// Unauthorized writes the 401 body shared with the JWT middleware.
func Unauthorized(c *fiber.Ctx) error {
	return ErrorJSON(c, fiber.StatusUnauthorized, "Unauthorized")
}

// ErrorToStatusCode maps domain errors to appropriate HTTP status codes.
// Dependency failures win over any kind they might wrap.
func ErrorToStatusCode(err error) int {
	var depErr *domain.DependencyError
	switch {
	case errors.As(err, &depErr):
		return fiber.StatusInternalServerError
	case errors.Is(err, domain.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrBusinessRule):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrAlreadyExists):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorMessage returns the caller-facing text of err. Unknown errors never
// leak their message.
func ErrorMessage(err error) string {
	var depErr *domain.DependencyError
	if errors.As(err, &depErr) {
		return depErr.Op
	}
	var domErr *domain.Error
	if errors.As(err, &domErr) {
		return domErr.Message
	}
	return "Internal server error"
}

// RespondError writes err with its mapped status and message.
func RespondError(c *fiber.Ctx, err error) error {
	return ErrorJSON(c, ErrorToStatusCode(err), ErrorMessage(err))
}

// BindAndValidate parses the request body and validates it using go-playground/validator.
// Returns a pointer to the struct (populated), or writes an error response and returns nil.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ErrorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return nil, ErrorJSON(c, fiber.StatusBadRequest, "Validation failed", fieldErrors(err))
	}
	return &input, nil
}

func fieldErrors(err error) map[string]string {
	out := map[string]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return out
	}
	for _, fe := range verrs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}

// CurrentUserID reads the authenticated user from the verified token.
func CurrentUserID(c *fiber.Ctx, authSvc *authsvc.Service) (uuid.UUID, error) {
	token, ok := c.Locals(middleware.UserContextKey).(*jwt.Token)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return authSvc.GetCurrentUserId(token)
}

// ParamUUID parses a path parameter as a UUID.
func ParamUUID(c *fiber.Ctx, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params(name))
	return id, err == nil
}
