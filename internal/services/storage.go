package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const DocxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

var ErrObjectNotFound = errors.New("object not found")

// ObjectStorage stores blobs under slash separated paths.
type ObjectStorage interface {
	Put(ctx context.Context, objectPath string, data []byte, contentType string) error
	Get(ctx context.Context, objectPath string) ([]byte, error)
	Delete(ctx context.Context, objectPath string) error
	EnsureReady(ctx context.Context) error
}

// UploadObjectPath returns a unique path for an uploaded file.
func UploadObjectPath(userID, originalName string) string {
	if userID == "" {
		userID = "anonymous"
	}
	ext := strings.ToLower(filepath.Ext(originalName))
	return path.Join("uploads", userID, uuid.New().String()+ext)
}

// TailoredCVObjectPath returns the path of a generated document.
func TailoredCVObjectPath(userID string, now time.Time) string {
	return path.Join("tailored_cv", userID, fmt.Sprintf("%d_tailored_cv.docx", now.UnixMilli()))
}

type localStorage struct {
	rootPath string
}

func NewLocalStorage(rootPath string) ObjectStorage {
	return &localStorage{
		rootPath: rootPath,
	}
}

func (s *localStorage) EnsureReady(ctx context.Context) error {
	if err := os.MkdirAll(s.rootPath, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	return nil
}

func (s *localStorage) Put(ctx context.Context, objectPath string, data []byte, contentType string) error {
	filePath, err := s.resolve(objectPath)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}

	return nil
}

func (s *localStorage) Get(ctx context.Context, objectPath string) ([]byte, error) {
	filePath, err := s.resolve(objectPath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", objectPath, ErrObjectNotFound)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return data, nil
}

func (s *localStorage) Delete(ctx context.Context, objectPath string) error {
	filePath, err := s.resolve(objectPath)
	if err != nil {
		return err
	}

	if err := os.Remove(filePath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: %w", objectPath, ErrObjectNotFound)
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// resolve maps objectPath below rootPath and rejects paths that escape it.
func (s *localStorage) resolve(objectPath string) (string, error) {
	cleaned := path.Clean(objectPath)
	if cleaned == "." || cleaned == ".." || path.IsAbs(cleaned) || strings.HasPrefix(cleaned, "../") {
		return "", fmt.Errorf("invalid object path: %q", objectPath)
	}

	return filepath.Join(s.rootPath, filepath.FromSlash(cleaned)), nil
}
