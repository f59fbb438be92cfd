// Package api assembles the Fiber application with its middleware, the
// web client routes and the REST/GraphQL analysis API.
package api

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Tsuesun/PoCForgeWeb/client"
	"github.com/Tsuesun/PoCForgeWeb/forge"
	gqlschema "github.com/Tsuesun/PoCForgeWeb/graphql"
	"github.com/Tsuesun/PoCForgeWeb/internal/config"
	"github.com/Tsuesun/PoCForgeWeb/restapi"
	"github.com/Tsuesun/PoCForgeWeb/web"
)

// NewFiberApp creates and configures a Fiber app with the web client and
// the REST and GraphQL analysis routes
func NewFiberApp(cfg *config.Config, engine *forge.Engine, orch *client.Client) (*fiber.App, error) {
	schema, err := gqlschema.CreateSchema(engine)
	if err != nil {
		return nil, fmt.Errorf("failed to create GraphQL schema: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:     "PoCForge Web API v1.0",
		ReadTimeout: 60 * time.Second,
		Views:       web.NewEngine(),
	})

	// Middleware
	app.Use(fiberrecover.New())
	app.Use(compress.New(compress.Config{Level: compress.LevelBestSpeed}))

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, X-Requested-With",
		AllowCredentials: true,
		AllowMethods:     "GET, POST, HEAD, OPTIONS",
	}))

	app.Use(logger.New())

	// REST + GraphQL analysis API
	restapi.SetupRoutes(app, engine, schema)

	// Server-rendered web client
	web.SetupRoutes(app, web.NewHandler(orch))

	return app, nil
}
