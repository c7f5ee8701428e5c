package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/cv-tailor/internal/models"
	"alfredoptarigan/cv-tailor/internal/services"
)

type TailorHandler struct {
	tailorService services.TailorService
	splitDefault  bool
}

func NewTailorHandler(tailorService services.TailorService, splitDefault bool) *TailorHandler {
	return &TailorHandler{
		tailorService: tailorService,
		splitDefault:  splitDefault,
	}
}

// HandleTailor handles POST /tailor
func (h *TailorHandler) HandleTailor(c *fiber.Ctx) error {
	var req models.TailorRequest

	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request payload", err.Error())
	}

	if message, details := validateRequest(&req); message != "" {
		return errorJSON(c, fiber.StatusBadRequest, message, details)
	}

	out, err := h.tailorService.Tailor(c.UserContext(), services.TailorInput{
		CV:             req.CV,
		JobDescription: req.JobDescription,
		Prompt:         req.Prompt,
		UserID:         req.UserID,
		SplitSections:  splitSections(req.SplitSections, h.splitDefault),
	})
	if err != nil {
		return tailorErrorResponse(c, err)
	}

	return c.JSON(newTailorResponse(out, nil))
}
