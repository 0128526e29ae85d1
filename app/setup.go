package app

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/biosecret/go-taskapi/config"
	"github.com/biosecret/go-taskapi/database"
	"github.com/biosecret/go-taskapi/handlers"
	"github.com/biosecret/go-taskapi/router"
)

// SetupAndRunApp boots the service: configuration, store, middleware, routes.
// Any failure before Listen is fatal; the service never serves traffic
// against a store it cannot reach.
func SetupAndRunApp() error {
	if err := config.LoadENV(); err != nil {
		return err
	}

	uri, err := config.PostgresURI()
	if err != nil {
		return err
	}
	secret, err := config.JWTSecret()
	if err != nil {
		return err
	}

	db, err := database.Connect(context.Background(), uri)
	if err != nil {
		return err
	}
	defer db.Close()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
	}))

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${ip}]:${port} ${status} - ${method} ${path} ${latency}\n",
	}))

	h := handlers.New(db, secret)
	router.SetupRoutes(app, h, secret)

	config.AddSwaggerRoutes(app)

	return app.Listen(":" + config.Port())
}
