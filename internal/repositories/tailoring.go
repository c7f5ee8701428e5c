package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/cv-tailor/internal/models"
)

var ErrNotFound = errors.New("record not found")

type TailoringRepository interface {
	Create(result *models.TailoringResult) error
	FindByID(id uuid.UUID) (*models.TailoringResult, error)
	FindByUserID(userID string, limit int) ([]models.TailoringResult, error)
}

type tailoringRepository struct {
	db *gorm.DB
}

func NewTailoringRepository(db *gorm.DB) TailoringRepository {
	return &tailoringRepository{db: db}
}

func (r *tailoringRepository) Create(result *models.TailoringResult) error {
	if err := r.db.Create(result).Error; err != nil {
		return fmt.Errorf("failed to create tailoring result: %w", err)
	}
	return nil
}

func (r *tailoringRepository) FindByID(id uuid.UUID) (*models.TailoringResult, error) {
	var result models.TailoringResult
	if err := r.db.Where("id = ?", id).First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("tailoring result not found: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find tailoring result: %w", err)
	}
	return &result, nil
}

func (r *tailoringRepository) FindByUserID(userID string, limit int) ([]models.TailoringResult, error) {
	var results []models.TailoringResult
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&results).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find tailoring results: %w", err)
	}

	return results, nil
}
