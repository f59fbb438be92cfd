// Package analyze implements the REST API handler for the analyze endpoint.
package analyze

import (
	"github.com/Tsuesun/PoCForgeWeb/forge"
	"github.com/Tsuesun/PoCForgeWeb/model"
	"github.com/Tsuesun/PoCForgeWeb/util"
	"github.com/gofiber/fiber/v2"
)

// PostAnalyze handles POST requests for CVE analysis. The body carries a
// single cve_id; the response is always the discriminated success/failure
// shape, with a 400 status when the id is malformed.
func PostAnalyze(engine *forge.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.AnalyzeRequest

		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(model.FailResponse("Invalid request body: " + err.Error()))
		}

		id, ok, msg := util.ValidateCVE(req.CveID)
		if !ok {
			if msg == "" {
				msg = util.CVEFormatHint
			}
			return c.Status(fiber.StatusBadRequest).JSON(model.FailResponse(msg))
		}

		report, err := engine.Analyze(id)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(model.FailResponse("Analysis failed: " + err.Error()))
		}

		return c.JSON(model.OkResponse(report))
	}
}
