package llm

import (
	"context"
	"fmt"

	"github.com/vijayyy-code/question-paper-generator/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with
// middleware: caller → retry → timeout → logging → base. The timeout sits
// below retry so each attempt is bounded independently.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "groq":
		base, err = NewOpenAIProvider(cfg.Groq)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "openrouter":
		base, err = NewOpenAIProvider(cfg.OpenRouter)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "mock":
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	if eventRepo != nil {
		base = WithLogging(base, eventRepo)
	}
	base = WithTimeout(base, cfg.Timeout)
	return WithRetry(base, cfg.Retry), nil
}
