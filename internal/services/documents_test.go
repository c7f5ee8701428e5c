package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/cv-tailor/internal/repositories"
)

func TestDocumentService_Save(t *testing.T) {
	t.Run("stores file and record", func(t *testing.T) {
		repo := newFakeDocumentRepo()
		storage := newMemoryStorage()
		svc := NewDocumentService(repo, storage, NewDocumentParserService())

		doc, err := svc.Save(context.Background(), "user-1", "Resume.PDF", []byte("%PDF"))
		require.NoError(t, err)

		assert.Equal(t, "user-1", doc.UserID)
		assert.Equal(t, "Resume.PDF", doc.OriginalFileName)
		assert.Equal(t, "pdf", doc.FileType)
		assert.Equal(t, "application/pdf", doc.ContentType)
		assert.Equal(t, int64(4), doc.Size)
		assert.True(t, strings.HasPrefix(doc.StoragePath, "uploads/user-1/"))
		assert.Equal(t, []byte("%PDF"), storage.objects[doc.StoragePath])
		assert.Contains(t, repo.docs, doc.ID)
	})

	t.Run("record failure removes the stored file", func(t *testing.T) {
		repo := newFakeDocumentRepo()
		repo.createErr = errors.New("db down")
		storage := newMemoryStorage()
		svc := NewDocumentService(repo, storage, NewDocumentParserService())

		_, err := svc.Save(context.Background(), "", "cv.txt", []byte("cv"))
		require.Error(t, err)
		assert.Empty(t, storage.objects)
	})

	t.Run("storage failure", func(t *testing.T) {
		repo := newFakeDocumentRepo()
		storage := newMemoryStorage()
		storage.putErr = errors.New("disk full")
		svc := NewDocumentService(repo, storage, NewDocumentParserService())

		_, err := svc.Save(context.Background(), "", "cv.txt", []byte("cv"))
		require.Error(t, err)
		assert.Empty(t, repo.docs)
	})
}

func TestDocumentService_GetAndDownload(t *testing.T) {
	repo := newFakeDocumentRepo()
	storage := newMemoryStorage()
	svc := NewDocumentService(repo, storage, NewDocumentParserService())

	doc, err := svc.Save(context.Background(), "user-1", "cv.txt", []byte("Jane Doe"))
	require.NoError(t, err)

	t.Run("get", func(t *testing.T) {
		got, err := svc.Get(doc.ID)
		require.NoError(t, err)
		assert.Equal(t, doc.StoragePath, got.StoragePath)
	})

	t.Run("get unknown id", func(t *testing.T) {
		_, err := svc.Get(uuid.New())
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("download", func(t *testing.T) {
		data, got, err := svc.Download(context.Background(), doc.ID)
		require.NoError(t, err)
		assert.Equal(t, []byte("Jane Doe"), data)
		assert.Equal(t, "cv.txt", got.OriginalFileName)
	})

	t.Run("download with missing file", func(t *testing.T) {
		delete(storage.objects, doc.StoragePath)
		_, _, err := svc.Download(context.Background(), doc.ID)
		assert.ErrorIs(t, err, ErrObjectNotFound)
	})
}

func TestDocumentService_Remove(t *testing.T) {
	t.Run("removes file and record", func(t *testing.T) {
		repo := newFakeDocumentRepo()
		storage := newMemoryStorage()
		svc := NewDocumentService(repo, storage, NewDocumentParserService())

		doc, err := svc.Save(context.Background(), "user-1", "cv.txt", []byte("cv"))
		require.NoError(t, err)

		require.NoError(t, svc.Remove(context.Background(), doc.ID))
		assert.Empty(t, storage.objects)
		assert.Empty(t, repo.docs)
	})

	t.Run("record is removed when the file is already gone", func(t *testing.T) {
		repo := newFakeDocumentRepo()
		storage := newMemoryStorage()
		svc := NewDocumentService(repo, storage, NewDocumentParserService())

		doc, err := svc.Save(context.Background(), "user-1", "cv.txt", []byte("cv"))
		require.NoError(t, err)
		delete(storage.objects, doc.StoragePath)

		require.NoError(t, svc.Remove(context.Background(), doc.ID))
		assert.Empty(t, repo.docs)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc := NewDocumentService(newFakeDocumentRepo(), newMemoryStorage(), NewDocumentParserService())
		err := svc.Remove(context.Background(), uuid.New())
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})
}
