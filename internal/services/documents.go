package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/cv-tailor/internal/models"
	"alfredoptarigan/cv-tailor/internal/repositories"
)

// DocumentService keeps uploaded files in object storage and records them in
// the documents table.
type DocumentService interface {
	Save(ctx context.Context, userID, originalName string, data []byte) (*models.Document, error)
	Get(id uuid.UUID) (*models.Document, error)
	Download(ctx context.Context, id uuid.UUID) ([]byte, *models.Document, error)
	Remove(ctx context.Context, id uuid.UUID) error
}

type documentService struct {
	docRepo repositories.DocumentRepository
	storage ObjectStorage
	parser  DocumentParserService
}

func NewDocumentService(docRepo repositories.DocumentRepository, storage ObjectStorage, parser DocumentParserService) DocumentService {
	return &documentService{
		docRepo: docRepo,
		storage: storage,
		parser:  parser,
	}
}

func (s *documentService) Save(ctx context.Context, userID, originalName string, data []byte) (*models.Document, error) {
	objectPath := UploadObjectPath(userID, originalName)
	contentType := s.parser.ContentType(originalName)

	if err := s.storage.Put(ctx, objectPath, data, contentType); err != nil {
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	doc := &models.Document{
		ID:               uuid.New(),
		UserID:           userID,
		OriginalFileName: originalName,
		FileType:         strings.TrimPrefix(strings.ToLower(filepath.Ext(originalName)), "."),
		ContentType:      contentType,
		StoragePath:      objectPath,
		Size:             int64(len(data)),
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := s.docRepo.Create(doc); err != nil {
		// Cleanup uploaded file if database insert fails
		if delErr := s.storage.Delete(ctx, objectPath); delErr != nil {
			log.Printf("⚠️ Failed to remove orphaned upload %s: %v\n", objectPath, delErr)
		}
		return nil, fmt.Errorf("failed to save document record: %w", err)
	}

	log.Printf("💾 Uploaded %s stored at %s\n", originalName, objectPath)
	return doc, nil
}

func (s *documentService) Get(id uuid.UUID) (*models.Document, error) {
	doc, err := s.docRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}
	return doc, nil
}

func (s *documentService) Download(ctx context.Context, id uuid.UUID) ([]byte, *models.Document, error) {
	doc, err := s.Get(id)
	if err != nil {
		return nil, nil, err
	}

	data, err := s.storage.Get(ctx, doc.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read document file: %w", err)
	}

	return data, doc, nil
}

// Remove deletes the stored file and then the record. A file that is already
// gone does not stop the record from being deleted.
func (s *documentService) Remove(ctx context.Context, id uuid.UUID) error {
	doc, err := s.Get(id)
	if err != nil {
		return err
	}

	if err := s.storage.Delete(ctx, doc.StoragePath); err != nil && !errors.Is(err, ErrObjectNotFound) {
		return fmt.Errorf("failed to delete document file: %w", err)
	}

	if err := s.docRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete document record: %w", err)
	}

	log.Printf("♻️ Removed document %s (%s)\n", id, doc.StoragePath)
	return nil
}
