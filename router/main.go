package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/biosecret/go-taskapi/handlers"
	"github.com/biosecret/go-taskapi/middleware"
)

// SetupRoutes wires every endpoint. Task routes sit behind the bearer gate;
// registration, login and the liveness probe are open.
func SetupRoutes(app *fiber.App, h *handlers.Handler, jwtSecret []byte) {
	app.Get("/health", h.HandleHealthCheck)

	app.Post("/register", h.RegisterHandler)
	app.Post("/login", h.LoginHandler)

	tasks := app.Group("/tasks", middleware.JWTMiddleware(jwtSecret))
	tasks.Post("/", h.HandleCreateTask)
	tasks.Get("/", h.HandleAllTasks)
	tasks.Patch("/:id", h.HandleUpdateTask)
	tasks.Delete("/:id", h.HandleDeleteTask)
}
