package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/biosecret/go-taskapi/models"
	"github.com/biosecret/go-taskapi/utils"
)

// UserIDKey is where the authenticated user id lives in the request Locals.
const UserIDKey = "user_id"

// JWTMiddleware verifies the bearer token on protected routes. No credential
// at all is 401; a credential that is malformed, forged or expired is 403.
// The embedded user id is attached to this request only.
func JWTMiddleware(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return utils.Unauthorized(c, "Access token required")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return utils.Forbidden(c, "Invalid or expired token")
		}

		claims := new(models.Claims)
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			return utils.Forbidden(c, "Invalid or expired token")
		}

		c.Locals(UserIDKey, claims.UserID)
		return c.Next()
	}
}

// UserID reads the authenticated user id set by JWTMiddleware.
func UserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(UserIDKey).(int64)
	return id
}
