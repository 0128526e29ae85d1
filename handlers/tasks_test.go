package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biosecret/go-taskapi/middleware"
	"github.com/biosecret/go-taskapi/utils"
)

// taskApp wires the task endpoints behind a stub identity instead of the JWT
// gate. The handler has no store, so every case must fail validation first.
func taskApp() *fiber.App {
	h := New(nil, []byte("test-secret"))
	app := fiber.New()

	asUser := func(c *fiber.Ctx) error {
		c.Locals(middleware.UserIDKey, int64(1))
		return c.Next()
	}

	tasks := app.Group("/tasks", asUser)
	tasks.Post("/", h.HandleCreateTask)
	tasks.Patch("/:id", h.HandleUpdateTask)
	tasks.Delete("/:id", h.HandleDeleteTask)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, utils.ErrorBody) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	var envelope utils.ErrorBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp.StatusCode, envelope
}

func TestCreateTaskValidation(t *testing.T) {
	app := taskApp()

	tests := []struct {
		name string
		body string
	}{
		{name: "missing title", body: `{}`},
		{name: "blank title", body: `{"title":"   "}`},
		{name: "title wrong type", body: `{"title":42}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, envelope := doJSON(t, app, "POST", "/tasks/", tt.body)
			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.Equal(t, utils.CodeInvalidInput, envelope.Error.Code)
			assert.Equal(t, "Title is required and must be a non-empty string", envelope.Error.Message)
		})
	}
}

func TestUpdateTaskIDValidation(t *testing.T) {
	app := taskApp()

	for _, id := range []string{"abc", "0", "-7", "1.5"} {
		t.Run(id, func(t *testing.T) {
			status, envelope := doJSON(t, app, "PATCH", "/tasks/"+id, `{"completed":true}`)
			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.Equal(t, utils.CodeInvalidInput, envelope.Error.Code)
			assert.Equal(t, "Task ID must be a positive integer", envelope.Error.Message)
		})
	}
}

func TestUpdateTaskBodyValidation(t *testing.T) {
	app := taskApp()

	tests := []struct {
		name        string
		body        string
		wantMessage string
	}{
		{
			name:        "no updatable field",
			body:        `{}`,
			wantMessage: `At least one of "title" or "completed" must be provided`,
		},
		{
			name:        "blank title",
			body:        `{"title":"   "}`,
			wantMessage: "Title must be a non-empty string",
		},
		{
			name:        "completed wrong type",
			body:        `{"completed":"yes"}`,
			wantMessage: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, envelope := doJSON(t, app, "PATCH", "/tasks/3", tt.body)
			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.Equal(t, utils.CodeInvalidInput, envelope.Error.Code)
			assert.Equal(t, tt.wantMessage, envelope.Error.Message)
		})
	}
}

func TestDeleteTaskIDValidation(t *testing.T) {
	app := taskApp()

	for _, id := range []string{"abc", "0", "-1"} {
		t.Run(id, func(t *testing.T) {
			status, envelope := doJSON(t, app, "DELETE", "/tasks/"+id, "")
			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.Equal(t, utils.CodeInvalidInput, envelope.Error.Code)
			assert.Equal(t, "Task ID must be a positive integer", envelope.Error.Message)
		})
	}
}
