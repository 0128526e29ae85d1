package handlers

import (
	"database/sql"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"github.com/biosecret/go-taskapi/models"
	"github.com/biosecret/go-taskapi/utils"
	"github.com/biosecret/go-taskapi/validation"
)

// tokenTTL is the validity window of an access token.
const tokenTTL = time.Hour

// uniqueViolation is the PostgreSQL error code for a unique constraint hit.
const uniqueViolation = "23505"

var registerMessages = map[string]string{
	"Email":    "Email is required",
	"Password": "Password is required and must be at least 6 characters",
}

var loginMessages = map[string]string{
	"Email":    "Email is required",
	"Password": "Password is required",
}

// RegisterHandler creates a new user account.
func (h *Handler) RegisterHandler(c *fiber.Ctx) error {
	req := new(models.RegisterRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.InvalidInput(c, "Invalid request body")
	}

	if err := validation.Struct(req); err != nil {
		return utils.InvalidInput(c, registerMessages[validation.FirstFailure(err)])
	}
	req.Email = strings.TrimSpace(req.Email)

	// Fast duplicate check; the UNIQUE constraint below catches the race.
	var existingID int64
	err := h.db.GetContext(c.UserContext(), &existingID, "SELECT id FROM users WHERE email = $1", req.Email)
	if err == nil {
		return utils.InvalidInput(c, "User with this email already exists")
	}
	if !errors.Is(err, sql.ErrNoRows) {
		log.Printf("Registration error: %v", err)
		return utils.InternalError(c, "Failed to register user")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Password hashing error: %v", err)
		return utils.InternalError(c, "Failed to register user")
	}

	var user models.User
	err = h.db.GetContext(c.UserContext(), &user,
		"INSERT INTO users (email, password) VALUES ($1, $2) RETURNING id, email",
		req.Email, string(hashedPassword))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return utils.InvalidInput(c, "User with this email already exists")
		}
		log.Printf("Registration error: %v", err)
		return utils.InternalError(c, "Failed to register user")
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// LoginHandler verifies credentials and issues a one-hour access token.
// Unknown email and wrong password answer identically so accounts cannot be
// enumerated.
func (h *Handler) LoginHandler(c *fiber.Ctx) error {
	req := new(models.LoginRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.InvalidInput(c, "Invalid request body")
	}

	if err := validation.Struct(req); err != nil {
		return utils.InvalidInput(c, loginMessages[validation.FirstFailure(err)])
	}

	var user models.User
	err := h.db.GetContext(c.UserContext(), &user,
		"SELECT id, email, password FROM users WHERE email = $1", req.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return utils.InvalidInput(c, "Invalid email or password")
	}
	if err != nil {
		log.Printf("Login error: %v", err)
		return utils.InternalError(c, "Failed to log in")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return utils.InvalidInput(c, "Invalid email or password")
	}

	token, err := GenerateToken(user.ID, h.jwtSecret)
	if err != nil {
		log.Printf("Login error: %v", err)
		return utils.InternalError(c, "Failed to log in")
	}

	return c.JSON(models.LoginResponse{Token: token, User: user})
}

// GenerateToken signs an HS256 access token embedding the user id.
func GenerateToken(userID int64, secret []byte) (string, error) {
	now := time.Now()
	claims := models.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}
