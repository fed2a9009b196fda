// Package llm provides the text-generation providers the segmentation
// gateway runs on: an OpenAI-compatible chat completions client (including
// local Ollama endpoints) and a Gemini client. Providers are configured with
// explicit Config values so nothing reads process environment here.
package llm

import (
	"context"

	"golang.org/x/time/rate"
)

// Provider sends a prompt to a text-generation service and returns the
// response text.
type Provider interface {
	// Complete sends a prompt and returns the raw response text.
	Complete(ctx context.Context, prompt string) (string, error)

	// Model returns the model identifier being used.
	Model() string
}

// Config holds provider settings. Zero values fall back to defaults chosen
// for a local Ollama endpoint.
type Config struct {
	// BaseURL is the OpenAI-compatible API root, e.g. "http://localhost:11434/v1".
	// Ignored by the Gemini provider.
	BaseURL string

	// APIKey authenticates the request. Optional for local endpoints.
	APIKey string

	// Model is the model identifier, e.g. "gpt-oss:120b-cloud".
	Model string

	// MaxRetries is the number of attempts per request. Values below 1 mean
	// a single attempt.
	MaxRetries int

	// RequestsPerSecond paces outgoing requests when positive, so a server
	// handling several documents does not flood the model runtime.
	RequestsPerSecond float64
}

func (c Config) attempts() int {
	if c.MaxRetries < 1 {
		return 1
	}
	return c.MaxRetries
}

func (c Config) limiter() *rate.Limiter {
	if c.RequestsPerSecond <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(c.RequestsPerSecond), 1)
}

func wait(ctx context.Context, l *rate.Limiter) error {
	if l == nil {
		return nil
	}
	return l.Wait(ctx)
}
