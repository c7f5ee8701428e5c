package services

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/genai"
)

type geminiService struct {
	client      *genai.Client
	model       string
	maxTokens   int
	temperature float32
}

func NewGeminiService(apiKey, model string, maxTokens int, temperature float64) (LLMService, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:      client,
		model:       model,
		maxTokens:   maxTokens,
		temperature: float32(temperature),
	}, nil
}

// Complete implements LLMService.
func (g *geminiService) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	temperature := g.temperature
	config := &genai.GenerateContentConfig{
		Temperature:       &temperature,
		MaxOutputTokens:   int32(g.maxTokens),
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(userPrompt), config)
	if err != nil {
		log.Printf("❌ Gemini API error: %v\n", err)
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil {
		log.Println("❌ Gemini API returned nil response")
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		log.Println("⚠️ No text content in Gemini response")
		return EmptyCompletionText, nil
	}

	log.Printf("📊 Gemini response received: %d characters\n", len(text))

	return text, nil
}

func (g *geminiService) ModelName() string {
	return "gemini:" + g.model
}
