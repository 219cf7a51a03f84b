package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/mohammad-ishtiaque/Agro-clima-api/internal/assessment/dto"
	"github.com/mohammad-ishtiaque/Agro-clima-api/internal/assessment/service"
	authhandler "github.com/mohammad-ishtiaque/Agro-clima-api/internal/auth/handler"
	autherror "github.com/mohammad-ishtiaque/Agro-clima-api/internal/errors"
)

type AssessmentHandler struct {
	assessmentService *service.AssessmentService
}

func NewAssessmentHandler(assessmentService *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentService: assessmentService}
}

func (h *AssessmentHandler) Create(c *fiber.Ctx) error {
	user := authhandler.CurrentUser(c)
	if user == nil {
		return errorResponse(c, autherror.ErrUnauthenticated)
	}

	var input dto.CreateAssessmentInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	output, err := h.assessmentService.Create(c.Context(), user.ID, input)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(output)
}

func (h *AssessmentHandler) Get(c *fiber.Ctx) error {
	user := authhandler.CurrentUser(c)
	if user == nil {
		return errorResponse(c, autherror.ErrUnauthenticated)
	}

	output, err := h.assessmentService.Get(c.Context(), user.ID, c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(output)
}

func (h *AssessmentHandler) List(c *fiber.Ctx) error {
	user := authhandler.CurrentUser(c)
	if user == nil {
		return errorResponse(c, autherror.ErrUnauthenticated)
	}

	outputs, err := h.assessmentService.List(c.Context(), user.ID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(outputs)
}

func errorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, autherror.ErrInvalidAssessment):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, autherror.ErrUnauthenticated):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, autherror.ErrAssessmentNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}
