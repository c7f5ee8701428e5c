package models

import (
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/cv-tailor/internal/normalizer"
)

type TailoringResult struct {
	ID                 uuid.UUID                `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID             string                   `gorm:"type:text;not null;index" json:"user_id"`
	CVDocumentID       *uuid.UUID               `gorm:"type:uuid" json:"cv_document_id,omitempty"`
	OriginalCV         string                   `gorm:"type:text" json:"original_cv"`
	JobDescription     string                   `gorm:"type:text" json:"job_description"`
	TailoredCV         string                   `gorm:"type:text" json:"tailored_cv"`
	Summary            string                   `gorm:"type:text" json:"summary"`
	Improvements       []normalizer.Improvement `gorm:"type:jsonb;serializer:json" json:"improvements"`
	TailoredCVFilePath string                   `gorm:"type:text" json:"tailored_cv_file_path,omitempty"`
	CreatedAt          time.Time                `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt          time.Time                `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (TailoringResult) TableName() string {
	return "tailoring_results"
}
