package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/cv-tailor/internal/models"
	"alfredoptarigan/cv-tailor/internal/repositories"
	"alfredoptarigan/cv-tailor/internal/services"
)

type DocumentHandler struct {
	docService services.DocumentService
}

func NewDocumentHandler(docService services.DocumentService) *DocumentHandler {
	return &DocumentHandler{
		docService: docService,
	}
}

func (h *DocumentHandler) HandleGetDocument(c *fiber.Ctx) error {
	docID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid document ID format", "")
	}

	doc, err := h.docService.Get(docID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "Document not found", "")
		}
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to load document", err.Error())
	}

	return c.JSON(models.NewUploadResponse(doc))
}

// HandleDownloadDocument streams an uploaded file back under its original name.
func (h *DocumentHandler) HandleDownloadDocument(c *fiber.Ctx) error {
	docID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid document ID format", "")
	}

	data, doc, err := h.docService.Download(c.UserContext(), docID)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return errorJSON(c, fiber.StatusNotFound, "Document not found", "")
		case errors.Is(err, services.ErrObjectNotFound):
			return errorJSON(c, fiber.StatusNotFound, "Document file not found", "")
		default:
			return errorJSON(c, fiber.StatusInternalServerError, "Failed to load document", err.Error())
		}
	}

	c.Attachment(doc.OriginalFileName)
	if doc.ContentType != "" {
		c.Set(fiber.HeaderContentType, doc.ContentType)
	}
	return c.Send(data)
}
