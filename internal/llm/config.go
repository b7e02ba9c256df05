package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds all provider configuration.
type Config struct {
	// Provider selects which backend to use.
	// Values: "groq", "openai", "openrouter", "gemini", "anthropic", "mock"
	Provider string

	Groq       OpenAIConfig
	OpenAI     OpenAIConfig
	OpenRouter OpenAIConfig
	Gemini     GeminiConfig
	Anthropic  AnthropicConfig
	Retry      RetryConfig

	// Timeout is the maximum duration for a single generation request,
	// excluding retry waits. Default: 60s.
	Timeout time.Duration
}

// OpenAIConfig holds configuration for OpenAI-compatible endpoints.
// Groq and OpenRouter both speak this protocol via BaseURL.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string
}

// RetryConfig configures the backoff policy for rate-limited requests.
type RetryConfig struct {
	// MaxRetries is the number of retries after the initial attempt.
	MaxRetries int
	// InitialWait is the nominal wait before the first retry.
	InitialWait time.Duration
	// MaxWait caps every individual wait.
	MaxWait time.Duration
	// Multiplier is the exponential base applied per attempt.
	Multiplier float64
	// Jitter enables multiplicative jitter in [0.5, 1.5).
	Jitter bool
	// Retryable decides whether a failure is worth another attempt.
	// Nil means RateLimitShaped.
	Retryable func(error) bool
}

// DefaultConfig returns a Config with the standard backoff policy:
// up to 5 retries, 2s initial wait doubling per attempt, 60s cap, jitter on.
func DefaultConfig() Config {
	return Config{
		Provider: "groq",
		Groq: OpenAIConfig{
			Model:   "llama-3.1-8b-instant",
			BaseURL: "https://api.groq.com/openai/v1",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		OpenRouter: OpenAIConfig{
			Model:   "google/gemini-2.0-flash-exp",
			BaseURL: "https://openrouter.ai/api/v1",
		},
		Gemini: GeminiConfig{
			Model: "gemini-2.0-flash",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku-4-5-20251001",
		},
		Retry: RetryConfig{
			MaxRetries:  5,
			InitialWait: 2 * time.Second,
			MaxWait:     60 * time.Second,
			Multiplier:  2.0,
			Jitter:      true,
		},
		Timeout: 60 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back to
// defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("QPGEN_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}

	if k := os.Getenv("GROQ_API_KEY"); k != "" {
		cfg.Groq.APIKey = k
	}
	if m := os.Getenv("QPGEN_GROQ_MODEL"); m != "" {
		cfg.Groq.Model = m
	}

	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("QPGEN_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("QPGEN_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	if k := os.Getenv("OPENROUTER_API_KEY"); k != "" {
		cfg.OpenRouter.APIKey = k
	}
	if m := os.Getenv("QPGEN_OPENROUTER_MODEL"); m != "" {
		cfg.OpenRouter.Model = m
	}

	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("QPGEN_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}

	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("QPGEN_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	return cfg
}

// DiscoverConfig probes standard API key env vars in priority order
// (Groq → Gemini → OpenAI → Anthropic → OpenRouter) and returns a Config
// for the first provider whose key is found.
func DiscoverConfig() (Config, bool) {
	cfg := ConfigFromEnv()

	for _, candidate := range []struct {
		name string
		key  string
	}{
		{"groq", cfg.Groq.APIKey},
		{"gemini", cfg.Gemini.APIKey},
		{"openai", cfg.OpenAI.APIKey},
		{"anthropic", cfg.Anthropic.APIKey},
		{"openrouter", cfg.OpenRouter.APIKey},
	} {
		if candidate.key != "" {
			cfg.Provider = candidate.name
			return cfg, true
		}
	}

	return Config{}, false
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "groq":
		if c.Groq.APIKey == "" {
			return fmt.Errorf("GROQ_API_KEY is required for the groq provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for the openai provider")
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required for the gemini provider")
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
