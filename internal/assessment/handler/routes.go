package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the assessment endpoints behind the supplied auth
// guards. All routes require a verified account.
func RegisterRoutes(app *fiber.App, h *AssessmentHandler, guards ...fiber.Handler) {
	assessments := app.Group("/api/v1/assessments", guards...)

	assessments.Post("/", h.Create)
	assessments.Get("/", h.List)
	assessments.Get("/:id", h.Get)
}
