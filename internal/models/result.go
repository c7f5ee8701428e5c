package models

import (
	"time"

	"alfredoptarigan/cv-tailor/internal/normalizer"
)

type UploadResponse struct {
	ID           string `json:"id"`
	OriginalName string `json:"original_name"`
	FileType     string `json:"file_type"`
	StoragePath  string `json:"storage_path"`
	ContentType  string `json:"content_type,omitempty"`
	Size         int64  `json:"size,omitempty"`
}

func NewUploadResponse(doc *Document) *UploadResponse {
	return &UploadResponse{
		ID:           doc.ID.String(),
		OriginalName: doc.OriginalFileName,
		FileType:     doc.FileType,
		StoragePath:  doc.StoragePath,
		ContentType:  doc.ContentType,
		Size:         doc.Size,
	}
}

type TailorRequest struct {
	CV             string `json:"cv" validate:"required"`
	JobDescription string `json:"jobDescription" validate:"required"`
	Prompt         string `json:"prompt" validate:"max=4000"`
	UserID         string `json:"userId" validate:"omitempty,max=128"`
	SplitSections  *bool  `json:"splitSections,omitempty"`
}

// TailorResponse is the processed model output plus the id of the saved
// result when it was persisted.
type TailorResponse struct {
	ID string `json:"id,omitempty"`
	normalizer.ProcessedResponse
	CVDocument *UploadResponse `json:"cvDocument,omitempty"`
}

type ResultResponse struct {
	ID                 string                   `json:"id"`
	UserID             string                   `json:"userId"`
	JobDescription     string                   `json:"jobDescription"`
	TailoredCV         string                   `json:"tailoredCV"`
	Improvements       []normalizer.Improvement `json:"improvements"`
	Summary            string                   `json:"summary"`
	TailoredCVFilePath string                   `json:"tailoredCVFilePath,omitempty"`
	CreatedAt          string                   `json:"createdAt"`
}

func NewResultResponse(r *TailoringResult) ResultResponse {
	return ResultResponse{
		ID:                 r.ID.String(),
		UserID:             r.UserID,
		JobDescription:     r.JobDescription,
		TailoredCV:         r.TailoredCV,
		Improvements:       r.Improvements,
		Summary:            r.Summary,
		TailoredCVFilePath: r.TailoredCVFilePath,
		CreatedAt:          r.CreatedAt.Format(time.RFC3339),
	}
}
