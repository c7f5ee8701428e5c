package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/cv-tailor/internal/models"
	"alfredoptarigan/cv-tailor/internal/repositories"
	"alfredoptarigan/cv-tailor/internal/services"
)

const tailoredCVDownloadName = "tailored-cv.docx"

type ResultHandler struct {
	tailorService services.TailorService
}

func NewResultHandler(tailorService services.TailorService) *ResultHandler {
	return &ResultHandler{
		tailorService: tailorService,
	}
}

func (h *ResultHandler) HandleGetResult(c *fiber.Ctx) error {
	resultID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid result ID format", "")
	}

	result, err := h.tailorService.GetResult(resultID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "Result not found", "")
		}
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to load result", err.Error())
	}

	return c.JSON(models.NewResultResponse(result))
}

func (h *ResultHandler) HandleListResults(c *fiber.Ctx) error {
	userID := c.Params("userId")

	results, err := h.tailorService.ListResults(userID)
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to load results", err.Error())
	}

	response := make([]models.ResultResponse, 0, len(results))
	for i := range results {
		response = append(response, models.NewResultResponse(&results[i]))
	}

	return c.JSON(fiber.Map{
		"results": response,
		"count":   len(response),
	})
}

// HandleDownload streams the stored DOCX of a result.
func (h *ResultHandler) HandleDownload(c *fiber.Ctx) error {
	resultID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid result ID format", "")
	}

	data, err := h.tailorService.DownloadTailoredCV(c.UserContext(), resultID)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return errorJSON(c, fiber.StatusNotFound, "Result not found", "")
		case errors.Is(err, services.ErrNoTailoredCVFile):
			return errorJSON(c, fiber.StatusNotFound, "Tailored CV document not found", "")
		default:
			return errorJSON(c, fiber.StatusInternalServerError, "Failed to load tailored CV document", err.Error())
		}
	}

	c.Attachment(tailoredCVDownloadName)
	c.Set(fiber.HeaderContentType, services.DocxContentType)
	return c.Send(data)
}
