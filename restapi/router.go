// Package restapi provides the main router and initialization for REST API endpoints.
package restapi

import (
	"github.com/Tsuesun/PoCForgeWeb/forge"
	"github.com/Tsuesun/PoCForgeWeb/restapi/modules/analyze"
	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"
)

// SetupRoutes configures all REST API routes and the GraphQL endpoint.
func SetupRoutes(app *fiber.App, engine *forge.Engine, schema graphql.Schema) {
	// API Group /api/v1
	api := app.Group("/api/v1")

	// Health check endpoint, also the readiness probe for the web client
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	// Analysis collaborator endpoint
	api.Post("/analyze", analyze.PostAnalyze(engine))

	// GraphQL Route - Mounted within the api group to inherit path prefixes
	api.Post("/graphql", GraphQLHandler(schema))
}
