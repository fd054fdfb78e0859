package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akshit1742/portfolio-api/internal/utils"
)

func TestSetup_OnlyFirstCallSucceeds(t *testing.T) {
	env := newTestEnv(t)

	resp := env.doJSON(t, http.MethodPost, "/api/auth/setup", "", map[string]interface{}{
		"email": "admin@example.com", "password": "s3cret99",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "admin@example.com", body["email"])

	exists, err := env.store.AdminExists(context.Background())
	require.NoError(t, err)
	assert.True(t, exists)

	// second call is rejected and leaves no trace, even with a fresh email
	resp = env.doJSON(t, http.MethodPost, "/api/auth/setup", "", map[string]interface{}{
		"email": "second@example.com", "password": "s3cret99",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	u, err := env.store.UserByEmail(context.Background(), "second@example.com")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestSetup_Validation(t *testing.T) {
	env := newTestEnv(t)

	for name, payload := range map[string]map[string]interface{}{
		"missing email":  {"password": "s3cret99"},
		"bad email":      {"email": "not-an-email", "password": "s3cret99"},
		"short password": {"email": "admin@example.com", "password": "abc"},
	} {
		resp := env.doJSON(t, http.MethodPost, "/api/auth/setup", "", payload)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, name)
		resp.Body.Close()
	}

	exists, err := env.store.AdminExists(context.Background())
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLogin_IssuesVerifiableToken(t *testing.T) {
	env := newTestEnv(t)

	resp := env.doJSON(t, http.MethodPost, "/api/auth/setup", "", map[string]interface{}{
		"email": "admin@example.com", "password": "s3cret99", "name": "Akshit",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = env.doJSON(t, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email": "admin@example.com", "password": "s3cret99",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	cookie := resp.Header.Get("Set-Cookie")
	assert.Contains(t, cookie, "auth-token=")

	body := decodeBody(t, resp)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	claims, err := utils.ParseJWT(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)

	user := body["user"].(map[string]interface{})
	assert.Equal(t, "Akshit", user["name"])
	assert.Equal(t, claims.UserID, user["id"])
}

func TestLogin_WrongPassword(t *testing.T) {
	env := newTestEnv(t)

	resp := env.doJSON(t, http.MethodPost, "/api/auth/setup", "", map[string]interface{}{
		"email": "admin@example.com", "password": "s3cret99",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	for name, payload := range map[string]map[string]interface{}{
		"wrong password": {"email": "admin@example.com", "password": "wrong"},
		"unknown email":  {"email": "nobody@example.com", "password": "s3cret99"},
	} {
		resp := env.doJSON(t, http.MethodPost, "/api/auth/login", "", payload)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, name)
		body := decodeBody(t, resp)
		assert.Equal(t, "Invalid email or password", body["error"], name)
	}
}

func TestMe_RoundTrip(t *testing.T) {
	env := newTestEnv(t)

	resp := env.doJSON(t, http.MethodPost, "/api/auth/setup", "", map[string]interface{}{
		"email": "admin@example.com", "password": "s3cret99",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = env.doJSON(t, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email": "admin@example.com", "password": "s3cret99",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token := decodeBody(t, resp)["token"].(string)

	resp = env.doJSON(t, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	user := decodeBody(t, resp)["user"].(map[string]interface{})
	assert.Equal(t, "admin@example.com", user["email"])
	assert.Equal(t, "Admin User", user["name"], "default name applied at setup")
}

func TestLogout_ClearsCookie(t *testing.T) {
	env := newTestEnv(t)

	resp := env.doJSON(t, http.MethodPost, "/api/auth/logout", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	cookie := resp.Header.Get("Set-Cookie")
	assert.Contains(t, cookie, "auth-token=;")
}
