package handler

import (
	"strings"

	"studykit/internal/domain"
	"studykit/internal/dto"
	"studykit/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GenerateHandler serves the plain generation proxy endpoint. It forwards
// the literal prompt with no system instruction, no schema and no file
// support.
type GenerateHandler struct {
	generator domain.TextGenerator
}

// NewGenerateHandler creates a new GenerateHandler instance
func NewGenerateHandler(generator domain.TextGenerator) *GenerateHandler {
	return &GenerateHandler{generator: generator}
}

// GenerateContent handles POST /api/generate-content
func (h *GenerateHandler) GenerateContent(c *fiber.Ctx) error {
	var req dto.GenerateContentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid request body",
		})
	}

	if strings.TrimSpace(req.Prompt) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Prompt is required",
		})
	}

	text, err := h.generator.GenerateFromPrompt(c.UserContext(), req.Prompt)
	if err != nil {
		logger.Get().Error("Proxy generation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "Failed to generate content",
		})
	}

	return c.JSON(dto.GenerateContentResponse{Text: text})
}
