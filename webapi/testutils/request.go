package testutils

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fortizbank/fortiz/pkg/config"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TestJwt is the signing configuration shared by handler tests.
var TestJwt = &config.Jwt{Secret: "test-secret", Expiry: time.Hour}

// Token signs a session token for userID the way the login endpoint does.
func Token(t *testing.T, userID uuid.UUID, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID.String(),
		"email":   "user@example.com",
		"role":    role,
		"exp":     time.Now().Add(TestJwt.Expiry).Unix(),
	})
	s, err := token.SignedString([]byte(TestJwt.Secret))
	require.NoError(t, err)
	return s
}

// NewRequest builds a JSON request carrying an optional bearer token.
func NewRequest(method, path, body, token string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

// MakeRequestWithApp sends a JSON request through app.Test.
func MakeRequestWithApp(app *fiber.App, method, path, body, token string) *http.Response {
	resp, err := app.Test(NewRequest(method, path, body, token), -1)
	if err != nil {
		panic(err)
	}
	return resp
}

// Decode reads a JSON response body into a generic map.
func Decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close() //nolint: errcheck
	out := map[string]any{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
