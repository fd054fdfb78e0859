package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akshit1742/portfolio-api/internal/utils"
)

const secret = "test-secret"

func protectedApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Get("/protected", RequireAuth(secret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"userId": c.Locals("userId"),
			"email":  c.Locals("email"),
			"role":   c.Locals("role"),
		})
	})
	return app
}

func TestRequireAuth_NoToken(t *testing.T) {
	app := protectedApp(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuth_BearerHeader(t *testing.T) {
	app := protectedApp(t)

	token, err := utils.SignJWT(secret, "user-1", "admin@example.com", "admin", 60)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireAuth_CookieFallback(t *testing.T) {
	app := protectedApp(t)

	token, err := utils.SignJWT(secret, "user-1", "admin@example.com", "admin", 60)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: token})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireAuth_HeaderBeatsCookie(t *testing.T) {
	app := protectedApp(t)

	good, err := utils.SignJWT(secret, "user-1", "admin@example.com", "admin", 60)
	require.NoError(t, err)

	// a valid cookie cannot rescue a malformed Authorization header
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: good})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuth_WrongSecret(t *testing.T) {
	app := protectedApp(t)

	token, err := utils.SignJWT("another-secret", "user-1", "admin@example.com", "admin", 60)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
