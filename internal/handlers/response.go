package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/cv-tailor/internal/models"
	"alfredoptarigan/cv-tailor/internal/services"
)

var validate = validator.New()

func errorJSON(c *fiber.Ctx, status int, message string, details string) error {
	body := fiber.Map{"error": message}
	if details != "" {
		body["details"] = details
	}
	return c.Status(status).JSON(body)
}

// validateRequest reports the first failed rule of req, or "" when req is
// valid.
func validateRequest(req *models.TailorRequest) (message string, details string) {
	err := validate.Struct(req)
	if err == nil {
		return "", ""
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return "Invalid request payload", err.Error()
	}

	for _, fe := range validationErrors {
		if fe.Tag() == "required" {
			return "Missing required fields", "cv and jobDescription are required"
		}
	}

	fe := validationErrors[0]
	return "Invalid request payload", fmt.Sprintf("validation error: %s - %s", fe.Field(), fe.Tag())
}

// tailorErrorResponse maps a TailorService error onto an HTTP response.
func tailorErrorResponse(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrGenerationFailed) {
		return errorJSON(c, fiber.StatusBadGateway, "Failed to process the CV tailoring request", err.Error())
	}
	return errorJSON(c, fiber.StatusInternalServerError, "Failed to process the CV tailoring request", err.Error())
}

func newTailorResponse(out *services.TailorOutput, cvDocument *models.UploadResponse) models.TailorResponse {
	resp := models.TailorResponse{
		ProcessedResponse: out.Response,
		CVDocument:        cvDocument,
	}
	if out.ResultID != nil {
		resp.ID = out.ResultID.String()
	}
	return resp
}

func splitSections(requested *bool, fallback bool) bool {
	if requested == nil {
		return fallback
	}
	return *requested
}

func parseOptionalBool(value string) (*bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return nil, nil
	case "1", "true", "yes", "on":
		b := true
		return &b, nil
	case "0", "false", "no", "off":
		b := false
		return &b, nil
	default:
		return nil, fmt.Errorf("invalid boolean value: %q", value)
	}
}
