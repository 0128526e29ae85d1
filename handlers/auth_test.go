package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biosecret/go-taskapi/models"
	"github.com/biosecret/go-taskapi/utils"
)

// testApp routes the auth endpoints against a handler with no store. Every
// case below must be rejected by validation before any query runs.
func testApp() *fiber.App {
	h := New(nil, []byte("test-secret"))
	app := fiber.New()
	app.Post("/register", h.RegisterHandler)
	app.Post("/login", h.LoginHandler)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, utils.ErrorBody) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	var envelope utils.ErrorBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp.StatusCode, envelope
}

func TestRegisterValidation(t *testing.T) {
	app := testApp()

	tests := []struct {
		name        string
		body        string
		wantMessage string
	}{
		{
			name:        "missing email",
			body:        `{"password":"secret1"}`,
			wantMessage: "Email is required",
		},
		{
			name:        "blank email",
			body:        `{"email":"   ","password":"secret1"}`,
			wantMessage: "Email is required",
		},
		{
			name:        "missing password",
			body:        `{"email":"a@x.com"}`,
			wantMessage: "Password is required and must be at least 6 characters",
		},
		{
			name:        "short password",
			body:        `{"email":"a@x.com","password":"12345"}`,
			wantMessage: "Password is required and must be at least 6 characters",
		},
		{
			name:        "email checked before password",
			body:        `{}`,
			wantMessage: "Email is required",
		},
		{
			name:        "malformed json",
			body:        `{"email":`,
			wantMessage: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, envelope := postJSON(t, app, "/register", tt.body)
			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.Equal(t, utils.CodeInvalidInput, envelope.Error.Code)
			assert.Equal(t, tt.wantMessage, envelope.Error.Message)
		})
	}
}

func TestLoginValidation(t *testing.T) {
	app := testApp()

	tests := []struct {
		name        string
		body        string
		wantMessage string
	}{
		{
			name:        "missing email",
			body:        `{"password":"secret1"}`,
			wantMessage: "Email is required",
		},
		{
			name:        "missing password",
			body:        `{"email":"a@x.com"}`,
			wantMessage: "Password is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, envelope := postJSON(t, app, "/login", tt.body)
			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.Equal(t, utils.CodeInvalidInput, envelope.Error.Code)
			assert.Equal(t, tt.wantMessage, envelope.Error.Message)
		})
	}
}

func TestGenerateTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	tokenString, err := GenerateToken(42, secret)
	require.NoError(t, err)

	claims := new(models.Claims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	assert.Equal(t, int64(42), claims.UserID)

	// Validity window is exactly one hour from issue.
	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)
	assert.Equal(t, tokenTTL, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
	assert.WithinDuration(t, time.Now().Add(tokenTTL), claims.ExpiresAt.Time, 5*time.Second)
}

func TestGenerateTokenRejectedWithWrongSecret(t *testing.T) {
	tokenString, err := GenerateToken(42, []byte("test-secret"))
	require.NoError(t, err)

	_, err = jwt.ParseWithClaims(tokenString, new(models.Claims), func(token *jwt.Token) (interface{}, error) {
		return []byte("another-secret"), nil
	})
	assert.Error(t, err)
}
