package cmd

import (
	"fmt"
	"os"

	"github.com/itsmostafa/segview/internal/llm"
	"github.com/spf13/cobra"
)

// Provider flags shared by the segment, view and serve commands. Defaults
// come from the environment so the flags stay optional.
var (
	providerName string
	modelName    string
	baseURL      string
	maxRetries   int
)

const defaultModel = "gpt-oss:120b-cloud"

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// newProvider builds the configured LLM provider. API keys are read from
// the environment here, at the process edge, and handed to the provider as
// explicit config.
func newProvider(requestsPerSecond float64) (llm.Provider, error) {
	cfg := llm.Config{
		BaseURL:           baseURL,
		Model:             modelName,
		MaxRetries:        maxRetries,
		RequestsPerSecond: requestsPerSecond,
	}

	switch providerName {
	case "openai":
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
		return llm.NewOpenAIProvider(cfg), nil
	case "gemini":
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
		return llm.NewGeminiProvider(cfg)
	default:
		return nil, fmt.Errorf("unknown provider %q (expected openai or gemini)", providerName)
	}
}

// addProviderFlags registers the shared provider flags on a command, with
// environment variable fallbacks for the defaults.
func addProviderFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&providerName, "provider", envDefault("SEGVIEW_PROVIDER", "openai"), "LLM provider to use (openai, gemini)")
	cmd.Flags().StringVar(&modelName, "model", envDefault("SEGVIEW_MODEL", defaultModel), "Model identifier")
	cmd.Flags().StringVar(&baseURL, "base-url", envDefault("SEGVIEW_BASE_URL", ""), "OpenAI-compatible API root (default: local Ollama)")
	cmd.Flags().IntVar(&maxRetries, "max-retries", 1, "Attempts per model request")
}
