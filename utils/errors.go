package utils

import "github.com/gofiber/fiber/v2"

// Error codes shared by every non-2xx response.
const (
	CodeInvalidInput  = "INVALID_INPUT"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeForbidden     = "FORBIDDEN"
	CodeNotFound      = "NOT_FOUND"
	CodeInternalError = "INTERNAL_ERROR"
)

// ErrorBody is the envelope of every error response:
// {"error": {"code": "...", "message": "..."}}
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SendError writes the error envelope with the given status.
func SendError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(ErrorBody{Error: ErrorDetail{Code: code, Message: message}})
}

// InvalidInput rejects client-supplied data that fails validation.
func InvalidInput(c *fiber.Ctx, message string) error {
	return SendError(c, fiber.StatusBadRequest, CodeInvalidInput, message)
}

// Unauthorized rejects a request carrying no credential at all.
func Unauthorized(c *fiber.Ctx, message string) error {
	return SendError(c, fiber.StatusUnauthorized, CodeUnauthorized, message)
}

// Forbidden rejects a credential that is present but unusable.
func Forbidden(c *fiber.Ctx, message string) error {
	return SendError(c, fiber.StatusForbidden, CodeForbidden, message)
}

// NotFound covers both "no such resource" and "not yours"; callers must not
// distinguish the two.
func NotFound(c *fiber.Ctx, message string) error {
	return SendError(c, fiber.StatusNotFound, CodeNotFound, message)
}

// InternalError hides the underlying cause from the client; the handler logs it.
func InternalError(c *fiber.Ctx, message string) error {
	return SendError(c, fiber.StatusInternalServerError, CodeInternalError, message)
}
