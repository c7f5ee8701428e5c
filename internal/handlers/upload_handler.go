package handlers

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/cv-tailor/internal/models"
	"alfredoptarigan/cv-tailor/internal/services"
)

type UploadHandler struct {
	tailorService services.TailorService
	docService    services.DocumentService
	parser        services.DocumentParserService
	maxFileSize   int64
	splitDefault  bool
}

func NewUploadHandler(
	tailorService services.TailorService,
	docService services.DocumentService,
	parser services.DocumentParserService,
	maxFileSize int64,
	splitDefault bool,
) *UploadHandler {
	return &UploadHandler{
		tailorService: tailorService,
		docService:    docService,
		parser:        parser,
		maxFileSize:   maxFileSize,
		splitDefault:  splitDefault,
	}
}

// HandleTailorUpload handles POST /tailor/upload. The CV arrives as a file,
// the job description as text or as a second file.
func (h *UploadHandler) HandleTailorUpload(c *fiber.Ctx) error {
	cvFile, err := c.FormFile("cv")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Missing required fields", "upload the CV as the 'cv' form file")
	}

	cvData, status, err := h.readDocument(cvFile)
	if err != nil {
		return errorJSON(c, status, "Invalid CV file", err.Error())
	}

	cvText, err := h.parser.ExtractText(cvFile.Filename, cvData)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Failed to read CV file", err.Error())
	}

	jobDescription := strings.TrimSpace(c.FormValue("job_description"))
	if jobDescription == "" {
		if jdFile, err := c.FormFile("job_description_file"); err == nil {
			jdData, status, err := h.readDocument(jdFile)
			if err != nil {
				return errorJSON(c, status, "Invalid job description file", err.Error())
			}

			jobDescription, err = h.parser.ExtractText(jdFile.Filename, jdData)
			if err != nil {
				return errorJSON(c, fiber.StatusBadRequest, "Failed to read job description file", err.Error())
			}
		}
	}

	split, err := parseOptionalBool(c.FormValue("split_sections"))
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request payload", err.Error())
	}

	req := models.TailorRequest{
		CV:             cvText,
		JobDescription: jobDescription,
		Prompt:         c.FormValue("prompt"),
		UserID:         strings.TrimSpace(c.FormValue("user_id")),
		SplitSections:  split,
	}
	if message, details := validateRequest(&req); message != "" {
		return errorJSON(c, fiber.StatusBadRequest, message, details)
	}

	var cvDocument *models.UploadResponse
	var cvDocumentID *uuid.UUID

	doc, err := h.docService.Save(c.UserContext(), req.UserID, cvFile.Filename, cvData)
	if err != nil {
		log.Printf("⚠️ Failed to store uploaded CV: %v\n", err)
	} else {
		cvDocumentID = &doc.ID
		cvDocument = models.NewUploadResponse(doc)
	}

	out, err := h.tailorService.Tailor(c.UserContext(), services.TailorInput{
		CV:             req.CV,
		JobDescription: req.JobDescription,
		Prompt:         req.Prompt,
		UserID:         req.UserID,
		SplitSections:  splitSections(req.SplitSections, h.splitDefault),
		CVDocumentID:   cvDocumentID,
	})
	if err != nil {
		// No result references the upload now
		if cvDocumentID != nil {
			if rmErr := h.docService.Remove(c.UserContext(), *cvDocumentID); rmErr != nil {
				log.Printf("⚠️ Failed to remove uploaded CV %s: %v\n", cvDocumentID, rmErr)
			}
		}
		return tailorErrorResponse(c, err)
	}

	return c.JSON(newTailorResponse(out, cvDocument))
}

// readDocument checks size and extension before reading fh. The returned
// status goes with a non-nil error.
func (h *UploadHandler) readDocument(fh *multipart.FileHeader) ([]byte, int, error) {
	if fh.Size > h.maxFileSize {
		return nil, fiber.StatusRequestEntityTooLarge, fmt.Errorf("file too large. Max size: %d bytes", h.maxFileSize)
	}

	if !services.IsSupportedDocument(fh.Filename) {
		return nil, fiber.StatusBadRequest, fmt.Errorf("unsupported file type: %s. Upload a PDF, DOCX or TXT file", fh.Filename)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fiber.StatusBadRequest, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fiber.StatusBadRequest, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	return data, 0, nil
}
