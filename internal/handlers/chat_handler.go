package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/jobpost-assistant/internal/models"
	"alfredoptarigan/jobpost-assistant/internal/services"
)

type ChatHandler struct {
	assistantService services.AssistantService
}

func NewChatHandler(assistantService services.AssistantService) *ChatHandler {
	return &ChatHandler{
		assistantService: assistantService,
	}
}

// HandleAsk handles POST /api/v1/ask-ai
func (h *ChatHandler) HandleAsk(c *fiber.Ctx) error {
	var req models.AskRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.UserInput == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "User input is required.",
		})
	}

	message, err := h.assistantService.Respond(c.Context(), req.UserInput, req.UserName)
	if err != nil {
		log.Printf("❌ Error communicating with OpenAI: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to process your request.",
		})
	}

	return c.Status(fiber.StatusOK).JSON(models.AskResponse{
		Message: message,
	})
}
