package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type claudeService struct {
	client      anthropic.Client
	model       string
	maxTokens   int
	temperature float64
}

func NewClaudeService(apiKey, model string, maxTokens int, temperature float64, opts ...option.RequestOption) LLMService {
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)

	return &claudeService{
		client:      anthropic.NewClient(opts...),
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
	}
}

// Complete implements LLMService. The assistant turn is prefilled with the
// analysis tag, which is put back in front of the returned text.
func (c *claudeService) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   int64(c.maxTokens),
		Temperature: anthropic.Float(c.temperature),
		System:      []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
			anthropic.NewAssistantMessage(anthropic.NewTextBlock(AnalysisPrefill)),
		},
	})
	if err != nil {
		log.Printf("❌ Anthropic API error: %v\n", err)
		return "", fmt.Errorf("failed to call Anthropic API: %w", err)
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	if text.Len() == 0 {
		log.Println("⚠️ No text content in Anthropic response")
		return EmptyCompletionText, nil
	}

	log.Printf("📊 Anthropic response received: %d characters (stop reason: %s)\n", text.Len(), resp.StopReason)

	return AnalysisPrefill + text.String(), nil
}

func (c *claudeService) ModelName() string {
	return "claude:" + c.model
}
