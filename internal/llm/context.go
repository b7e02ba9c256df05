package llm

import "context"

type contextKey string

const (
	purposeKey contextKey = "llm_purpose"
	runKey     contextKey = "llm_run"
)

// WithPurpose attaches a purpose label (e.g. "one-mark", "six-mark") to the
// context for event logging.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label from the context.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}

// WithRun attaches a run identifier to the context so every request in one
// paper generation can be correlated.
func WithRun(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runKey, runID)
}

// RunFrom extracts the run identifier from the context.
func RunFrom(ctx context.Context) string {
	if v, ok := ctx.Value(runKey).(string); ok {
		return v
	}
	return ""
}
