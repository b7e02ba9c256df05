package llm

import "context"

// Provider is the core abstraction for text generation. The question
// pipeline treats the service as (prompt parameters) -> text; parsing the
// returned block into question records happens downstream.
type Provider interface {
	// Generate sends a prompt to the model and returns the generated text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes a single generation call.
type Request struct {
	// System sets the model's role, e.g. "You are an expert university
	// question paper setter."
	System string

	// Prompt is the user message: unit descriptor, difficulty, relevant
	// content excerpt and formatting rules.
	Prompt string

	// MaxTokens bounds the response length.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// Response holds the model's output.
type Response struct {
	// Text is the raw generated text, typically a block of Q-numbered
	// questions.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason is normalized to: "end", "max_tokens".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
