package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/cv-tailor/internal/models"
	"alfredoptarigan/cv-tailor/internal/normalizer"
	"alfredoptarigan/cv-tailor/internal/repositories"
)

const resultListLimit = 50

var (
	ErrGenerationFailed = errors.New("failed to generate tailored CV")
	ErrNoTailoredCVFile = errors.New("no tailored CV document stored for this result")
)

type TailorInput struct {
	CV             string
	JobDescription string
	Prompt         string
	UserID         string
	SplitSections  bool
	CVDocumentID   *uuid.UUID
}

type TailorOutput struct {
	// ResultID is set only when the result was saved.
	ResultID *uuid.UUID
	Response normalizer.ProcessedResponse
}

type TailorService interface {
	Tailor(ctx context.Context, in TailorInput) (*TailorOutput, error)
	GetResult(id uuid.UUID) (*models.TailoringResult, error)
	ListResults(userID string) ([]models.TailoringResult, error)
	DownloadTailoredCV(ctx context.Context, id uuid.UUID) ([]byte, error)
}

type tailorService struct {
	llm           LLMService
	resultRepo    repositories.TailoringRepository
	storage       ObjectStorage
	renderer      DocxRenderer
	promptBuilder *PromptBuilder
	maxRetries    int
	timeout       time.Duration
	now           func() time.Time
}

func NewTailorService(
	llm LLMService,
	resultRepo repositories.TailoringRepository,
	storage ObjectStorage,
	renderer DocxRenderer,
	maxRetries int,
	timeout time.Duration,
) TailorService {
	return &tailorService{
		llm:           llm,
		resultRepo:    resultRepo,
		storage:       storage,
		renderer:      renderer,
		promptBuilder: NewPromptBuilder(),
		maxRetries:    maxRetries,
		timeout:       timeout,
		now:           time.Now,
	}
}

func (s *tailorService) Tailor(ctx context.Context, in TailorInput) (*TailorOutput, error) {
	llmCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		llmCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	log.Printf("🤖 Tailoring CV with %s...\n", s.llm.ModelName())

	raw, err := CompleteWithRetry(
		llmCtx,
		s.llm,
		s.promptBuilder.SystemPrompt(),
		s.promptBuilder.BuildTailoringPrompt(in.CV, in.JobDescription, in.Prompt),
		s.maxRetries,
	)
	if err != nil {
		log.Printf("❌ LLM call failed: %v\n", err)
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	processed := normalizer.Normalize(raw)
	if in.SplitSections {
		processed.Improvements = normalizer.SplitEmbeddedSections(processed.Improvements)
	}

	log.Printf("✅ Response processed: %d improvement categories\n", len(processed.Improvements))

	out := &TailorOutput{Response: processed}

	if in.UserID != "" && processed.TailoredCV != "" {
		out.ResultID = s.persist(ctx, in, &out.Response)
	}

	return out, nil
}

// persist stores the rendered document and the result row. Failures are
// logged and leave the response usable; the returned id is nil when the row
// was not written.
func (s *tailorService) persist(ctx context.Context, in TailorInput, resp *normalizer.ProcessedResponse) *uuid.UUID {
	doc, err := s.renderer.Render(resp.TailoredCV)
	if err != nil {
		log.Printf("⚠️ Failed to render tailored CV document: %v\n", err)
	} else {
		objectPath := TailoredCVObjectPath(in.UserID, s.now())
		if err := s.storage.Put(ctx, objectPath, doc, DocxContentType); err != nil {
			log.Printf("⚠️ Failed to store tailored CV document: %v\n", err)
		} else {
			resp.TailoredCVFilePath = objectPath
			log.Printf("💾 Tailored CV stored at %s\n", objectPath)
		}
	}

	result := &models.TailoringResult{
		ID:                 uuid.New(),
		UserID:             in.UserID,
		CVDocumentID:       in.CVDocumentID,
		OriginalCV:         in.CV,
		JobDescription:     in.JobDescription,
		TailoredCV:         resp.TailoredCV,
		Summary:            resp.Summary,
		Improvements:       resp.Improvements,
		TailoredCVFilePath: resp.TailoredCVFilePath,
	}

	if err := s.resultRepo.Create(result); err != nil {
		log.Printf("⚠️ Failed to save tailoring result: %v\n", err)
		return nil
	}

	log.Printf("💾 Tailoring result %s saved\n", result.ID)
	return &result.ID
}

func (s *tailorService) GetResult(id uuid.UUID) (*models.TailoringResult, error) {
	return s.resultRepo.FindByID(id)
}

func (s *tailorService) ListResults(userID string) ([]models.TailoringResult, error) {
	return s.resultRepo.FindByUserID(userID, resultListLimit)
}

func (s *tailorService) DownloadTailoredCV(ctx context.Context, id uuid.UUID) ([]byte, error) {
	result, err := s.resultRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if result.TailoredCVFilePath == "" {
		return nil, ErrNoTailoredCVFile
	}

	data, err := s.storage.Get(ctx, result.TailoredCVFilePath)
	if err != nil {
		if errors.Is(err, ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrNoTailoredCVFile, err)
		}
		return nil, fmt.Errorf("failed to load tailored CV document: %w", err)
	}

	return data, nil
}
