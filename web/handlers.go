package web

import (
	"strings"

	"github.com/Tsuesun/PoCForgeWeb/client"
	"github.com/Tsuesun/PoCForgeWeb/util"
	"github.com/gofiber/fiber/v2"
)

// Handler serves the web client pages
type Handler struct {
	client *client.Client
}

// NewHandler creates a Handler that submits analyses through c
func NewHandler(c *client.Client) *Handler {
	return &Handler{client: c}
}

// SetupRoutes registers the web client routes
func SetupRoutes(app *fiber.App, h *Handler) {
	app.Get("/", h.Index)
	app.Post("/analyze", h.Submit)
}

// Index renders the empty submission form
func (h *Handler) Index(c *fiber.Ctx) error {
	return c.Render("index", Page{})
}

// Submit runs the validator gate and, for a well-formed id, drives one
// analysis round trip and renders its outcome. Empty input re-renders the
// bare form; a malformed id renders the inline format hint and never
// reaches the network.
func (h *Handler) Submit(c *fiber.Ctx) error {
	raw := c.FormValue("cve_id")
	page := Page{CveInput: strings.TrimSpace(raw)}

	id, ok, msg := util.ValidateCVE(raw)
	if !ok {
		page.FormatHint = msg
		return c.Render("index", page)
	}

	resp := h.client.Analyze(c.UserContext(), id)
	result := BuildResult(resp)
	page.Result = &result

	return c.Render("index", page)
}
