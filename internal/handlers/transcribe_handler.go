package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/jobpost-assistant/internal/models"
	"alfredoptarigan/jobpost-assistant/internal/services"
)

type TranscribeHandler struct {
	storageService services.AudioStorageService
	jobPostService services.JobPostService
}

func NewTranscribeHandler(
	storageService services.AudioStorageService,
	jobPostService services.JobPostService,
) *TranscribeHandler {
	return &TranscribeHandler{
		storageService: storageService,
		jobPostService: jobPostService,
	}
}

// HandleTranscribe handles POST /api/v1/transcribe
func (h *TranscribeHandler) HandleTranscribe(c *fiber.Ctx) error {
	file, err := c.FormFile("audio")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file uploaded",
		})
	}

	upload, err := h.storageService.SaveAudio(file)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrUnsupportedMediaType):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Unsupported file format",
			})
		case errors.Is(err, models.ErrPayloadTooLarge):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		default:
			log.Printf("❌ Failed to store upload: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "File upload failed",
			})
		}
	}

	// The temp file never outlives the request, success or failure.
	defer func() {
		if err := h.storageService.DeleteAudio(upload); err != nil {
			log.Printf("⚠️ Failed to remove temp audio %s: %v", upload.Filename, err)
		}
	}()

	jobPost, err := h.jobPostService.GenerateFromAudio(c.Context(), upload.FilePath)
	if err != nil {
		log.Printf("❌ Error processing transcription: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal Server Error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(models.TranscribeResponse{
		JobPost: jobPost,
	})
}
