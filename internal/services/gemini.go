package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"portfolio-backend/internal/models"
)

// GeminiProvider answers prompts with Gemini and reshapes the reply into the
// [{"generated_text": ...}] form the proxy's clients already understand.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
	slots  slotPool
}

func NewGeminiProvider(ctx context.Context, apiKey, modelName string, concurrency int) (*GeminiProvider, error) {
	p := &GeminiProvider{slots: newSlotPool(concurrency)}
	if apiKey == "" {
		// Reported per request as a configuration error.
		return p, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(Temperature)
	model.SetMaxOutputTokens(MaxNewTokens)

	p.client = client
	p.model = model
	return p, nil
}

func (p *GeminiProvider) Close() {
	if p.client != nil {
		p.client.Close()
	}
}

func (p *GeminiProvider) Name() string { return "gemini" }

func (p *GeminiProvider) HasCredential() bool { return p.model != nil }

func (p *GeminiProvider) Generate(ctx context.Context, prompt string) (*Generation, error) {
	if !p.HasCredential() {
		return nil, &ConfigError{Message: MissingAPIKeyMessage}
	}
	if err := p.slots.acquire(ctx, 0); err != nil {
		return nil, err
	}
	defer p.slots.release()

	resp, err := p.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("Gemini API error: %w", err)
	}

	for i, cand := range resp.Candidates {
		if cand.FinishReason != genai.FinishReasonStop {
			log.Printf("WARNING: Gemini candidate %d stopped due to %s", i, cand.FinishReason)
		}
	}

	body, err := json.Marshal([]models.GeneratedText{{GeneratedText: extractText(resp)}})
	if err != nil {
		return nil, err
	}
	return &Generation{StatusCode: 200, Body: body}, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
