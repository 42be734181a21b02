package handler

import (
	"studykit/internal/domain"
	"studykit/internal/dto"
	"studykit/internal/service"
	"studykit/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ChatHandler manages document-grounded chat sessions. Sessions live in
// memory only; their ids are ULIDs minted by the registry.
type ChatHandler struct {
	service   service.StudyService
	registry  *service.ChatRegistry
	validator *validation.Validator
}

// NewChatHandler creates a new ChatHandler instance
func NewChatHandler(svc service.StudyService, registry *service.ChatRegistry) *ChatHandler {
	return &ChatHandler{
		service:   svc,
		registry:  registry,
		validator: validation.NewValidator(),
	}
}

// CreateSession handles POST /api/chat
func (h *ChatHandler) CreateSession(c *fiber.Ctx) error {
	content, err := contentFromRequest(c)
	if err != nil {
		return err
	}
	if content.IsEmpty() {
		return domain.NewInvalidInputError("Content is required to start a chat session")
	}

	session, err := h.service.InitChat(c.UserContext(), content)
	if err != nil {
		return domain.NewModelServiceError(err)
	}

	id := h.registry.Add(session)
	return c.Status(fiber.StatusCreated).JSON(dto.CreateChatResponse{SessionID: id})
}

// SendMessage handles POST /api/chat/:id/messages
func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	id := c.Params("id")
	session, ok := h.registry.Get(id)
	if !ok {
		return domain.NewSessionNotFoundError(id)
	}

	var req dto.ChatMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateChatMessage(req.Message); len(errs) > 0 {
		return errs
	}

	reply, err := session.SendMessage(c.UserContext(), req.Message)
	if err != nil {
		return domain.NewModelServiceError(err)
	}

	return c.JSON(dto.ChatMessageResponse{Reply: reply})
}

// DeleteSession handles DELETE /api/chat/:id
func (h *ChatHandler) DeleteSession(c *fiber.Ctx) error {
	h.registry.Remove(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}
