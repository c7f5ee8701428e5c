package services

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"alfredoptarigan/cv-tailor/internal/models"
	"alfredoptarigan/cv-tailor/internal/repositories"
)

type fakeLLM struct {
	mu        sync.Mutex
	responses []string
	errs      []error
	calls     int
	lastUser  string
}

func (f *fakeLLM) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	i := f.calls
	f.calls++
	f.lastUser = userPrompt

	if i < len(f.errs) && f.errs[i] != nil {
		return "", f.errs[i]
	}
	if i < len(f.responses) {
		return f.responses[i], nil
	}
	if len(f.responses) > 0 {
		return f.responses[len(f.responses)-1], nil
	}
	return "", nil
}

func (f *fakeLLM) ModelName() string {
	return "fake:model"
}

type memoryCache struct {
	values map[string]string
	getErr error
	sets   int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: map[string]string{}}
}

func (m *memoryCache) Get(ctx context.Context, key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memoryCache) Set(ctx context.Context, key, value string) error {
	m.sets++
	m.values[key] = value
	return nil
}

func (m *memoryCache) Close() error {
	return nil
}

type memoryStorage struct {
	objects map[string][]byte
	putErr  error
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{objects: map[string][]byte{}}
}

func (m *memoryStorage) Put(ctx context.Context, objectPath string, data []byte, contentType string) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.objects[objectPath] = data
	return nil
}

func (m *memoryStorage) Get(ctx context.Context, objectPath string) ([]byte, error) {
	data, ok := m.objects[objectPath]
	if !ok {
		return nil, ErrObjectNotFound
	}
	return data, nil
}

func (m *memoryStorage) Delete(ctx context.Context, objectPath string) error {
	if _, ok := m.objects[objectPath]; !ok {
		return ErrObjectNotFound
	}
	delete(m.objects, objectPath)
	return nil
}

func (m *memoryStorage) EnsureReady(ctx context.Context) error {
	return nil
}

type fakeTailoringRepo struct {
	results   map[uuid.UUID]*models.TailoringResult
	createErr error
}

func newFakeTailoringRepo() *fakeTailoringRepo {
	return &fakeTailoringRepo{results: map[uuid.UUID]*models.TailoringResult{}}
}

func (f *fakeTailoringRepo) Create(result *models.TailoringResult) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.results[result.ID] = result
	return nil
}

func (f *fakeTailoringRepo) FindByID(id uuid.UUID) (*models.TailoringResult, error) {
	r, ok := f.results[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return r, nil
}

func (f *fakeTailoringRepo) FindByUserID(userID string, limit int) ([]models.TailoringResult, error) {
	var out []models.TailoringResult
	for _, r := range f.results {
		if r.UserID == userID && len(out) < limit {
			out = append(out, *r)
		}
	}
	return out, nil
}

type fakeDocumentRepo struct {
	docs      map[uuid.UUID]*models.Document
	createErr error
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{docs: map[uuid.UUID]*models.Document{}}
}

func (f *fakeDocumentRepo) Create(document *models.Document) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.docs[document.ID] = document
	return nil
}

func (f *fakeDocumentRepo) FindByID(id uuid.UUID) (*models.Document, error) {
	d, ok := f.docs[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return d, nil
}

func (f *fakeDocumentRepo) Delete(id uuid.UUID) error {
	if _, ok := f.docs[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.docs, id)
	return nil
}

type failingRenderer struct{}

func (failingRenderer) Render(text string) ([]byte, error) {
	return nil, errors.New("render failed")
}
