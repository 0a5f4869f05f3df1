package middleware

import (
	"github.com/fortizbank/fortiz/pkg/config"
	"github.com/fortizbank/fortiz/pkg/domain/user"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// UserContextKey is the fiber locals key holding the verified *jwt.Token.
const UserContextKey = "user"

// JwtProtected verifies the bearer token of the request. Any failure,
// missing header included, is answered with 401.
func JwtProtected(cfg *config.Jwt) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   jwtware.SigningKey{JWTAlg: jwt.SigningMethodHS256.Alg(), Key: []byte(cfg.Secret)},
		ContextKey:   UserContextKey,
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, _ error) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
}

// AdminOnly must run after JwtProtected.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals(UserContextKey).(*jwt.Token)
		if !ok {
			return jwtError(c, nil)
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return jwtError(c, nil)
		}
		if role, _ := claims["role"].(string); user.Role(role) != user.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
		}
		return c.Next()
	}
}
