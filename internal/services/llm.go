package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/time/rate"

	"alfredoptarigan/cv-tailor/internal/config"
)

// EmptyCompletionText stands in for a completion without any text so the
// normalizer still has something to fall back on.
const EmptyCompletionText = "Sorry, I couldn't generate a response."

type LLMService interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	ModelName() string
}

// NewLLMService builds the configured provider wrapped with call pacing and,
// when cache is non-nil, completion caching.
func NewLLMService(cfg *config.Config, cache CompletionCache) (LLMService, error) {
	var provider LLMService
	var err error

	switch cfg.LLM.Provider {
	case "claude":
		provider = NewClaudeService(cfg.LLM.AnthropicAPIKey, cfg.LLM.Model, cfg.LLM.MaxTokens, cfg.LLM.Temperature)
	case "gemini":
		provider, err = NewGeminiService(cfg.LLM.GeminiAPIKey, cfg.LLM.Model, cfg.LLM.MaxTokens, cfg.LLM.Temperature)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.LLM.Provider)
	}

	provider = NewRateLimitedLLM(provider, cfg.LLM.RateLimitPerMinute)

	if cache != nil {
		provider = NewCachedLLM(provider, cache)
	}

	return provider, nil
}

// CompleteWithRetry calls llm up to maxRetries times and stops early when ctx
// is done.
func CompleteWithRetry(ctx context.Context, llm LLMService, systemPrompt, userPrompt string, maxRetries int) (string, error) {
	if maxRetries < 1 {
		maxRetries = 1
	}

	var lastErr error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		result, err := llm.Complete(ctx, systemPrompt, userPrompt)
		if err == nil {
			return result, nil
		}

		lastErr = err

		// Check if context is cancelled
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
		}

		if attempt < maxRetries {
			log.Printf("⚠️ Attempt %d failed: %v. Retrying...\n", attempt, err)
		}
	}

	return "", fmt.Errorf("failed after %d attempts: %w", maxRetries, lastErr)
}

type rateLimitedLLM struct {
	next    LLMService
	limiter *rate.Limiter
}

// NewRateLimitedLLM paces calls to next at perMinute requests per minute.
// A non-positive rate disables pacing.
func NewRateLimitedLLM(next LLMService, perMinute int) LLMService {
	if perMinute <= 0 {
		return next
	}

	return &rateLimitedLLM{
		next:    next,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1),
	}
}

func (r *rateLimitedLLM) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("failed to wait for LLM rate limiter: %w", err)
	}
	return r.next.Complete(ctx, systemPrompt, userPrompt)
}

func (r *rateLimitedLLM) ModelName() string {
	return r.next.ModelName()
}
