package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"
)

// GeminiProvider implements Provider using the Gemini API with JSON output
// enforced through the response MIME type.
type GeminiProvider struct {
	apiKey   string
	model    string
	attempts int
	limiter  *rate.Limiter
}

// NewGeminiProvider creates a Gemini provider from cfg. The API key is
// required.
func NewGeminiProvider(cfg Config) (*GeminiProvider, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: API key not set")
	}
	return &GeminiProvider{
		apiKey:   apiKey,
		model:    cfg.Model,
		attempts: cfg.attempts(),
		limiter:  cfg.limiter(),
	}, nil
}

// Model returns the model identifier.
func (p *GeminiProvider) Model() string {
	return p.model
}

// Complete sends a prompt and returns the response text.
func (p *GeminiProvider) Complete(ctx context.Context, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(p.apiKey))
	if err != nil {
		return "", err
	}
	defer client.Close()

	temperature := float32(0.2)
	model := client.GenerativeModel(p.model)
	model.GenerationConfig = genai.GenerationConfig{
		Temperature:      &temperature,
		ResponseMIMEType: "application/json",
	}

	var lastErr error
	for attempt := 0; attempt < p.attempts; attempt++ {
		if err := wait(ctx, p.limiter); err != nil {
			return "", err
		}

		resp, err := model.GenerateContent(ctx, genai.Text(prompt))
		if err != nil {
			lastErr = err
			if ctx.Err() != nil {
				break
			}
			continue
		}
		text, err := responseText(resp)
		if err != nil {
			lastErr = err
			continue
		}
		return text, nil
	}
	return "", lastErr
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini: empty response")
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("gemini: no text parts in response")
	}
	return sb.String(), nil
}
