package paper

import (
	"context"
	"fmt"
	"time"

	"github.com/vijayyy-code/question-paper-generator/internal/history"
	"github.com/vijayyy-code/question-paper-generator/internal/llm"
	"github.com/vijayyy-code/question-paper-generator/internal/syllabus"
)

// DefaultPacing is the delay after each unit's generation call, keeping the
// request rate under the provider's limits. Tests set it to zero.
const DefaultPacing = 1500 * time.Millisecond

// tierProfile bundles the per-tier knobs the shared unit pipeline needs.
type tierProfile struct {
	purpose     string
	system      string
	prompt      func(unit syllabus.Unit, difficulty, excerpt string, count, seed int) string
	parse       func(raw string) []string
	maxTokens   int
	temperature float64
}

var (
	oneMarkProfile = tierProfile{
		purpose:     "one-mark",
		system:      oneMarkSystem,
		prompt:      buildOneMarkPrompt,
		parse:       ParseChoiceBlocks,
		maxTokens:   512,
		temperature: 0.7,
	}
	sixMarkProfile = tierProfile{
		purpose:     "six-mark",
		system:      sixMarkSystem,
		prompt:      buildSixMarkPrompt,
		parse:       ParseDescriptive,
		maxTokens:   512,
		temperature: 0.8,
	}
	twelveMarkProfile = tierProfile{
		purpose:     "twelve-mark",
		system:      twelveMarkSystem,
		prompt:      buildTwelveMarkPrompt,
		parse:       ParseDescriptive,
		maxTokens:   600,
		temperature: 0.8,
	}
)

// generateForUnit runs the full per-unit pipeline for one tier: load
// history, extract relevant content, generate, parse, dedup, save history.
// Failures along the way yield a Fatal result; an all-duplicates pass
// yields Empty. The history store is written back only when something was
// accepted, mirroring the one-document-per-tier lifecycle.
func generateForUnit(
	ctx context.Context,
	provider llm.Provider,
	store history.Store,
	extractor *syllabus.Extractor,
	profile tierProfile,
	unit syllabus.Unit,
	reference string,
	difficulty string,
	want int,
) UnitResult {
	unitName := unit.ShortName()

	hist, err := store.Load(ctx)
	if err != nil {
		return UnitResult{Status: StatusFatal, Err: fmt.Errorf("load history for %s: %w", unitName, err)}
	}

	excerpt := extractor.Extract(reference, unit)
	genCtx := llm.WithPurpose(ctx, profile.purpose)

	resp, err := provider.Generate(genCtx, llm.Request{
		System:      profile.system,
		Prompt:      profile.prompt(unit, difficulty, excerpt, want, randSeed()),
		MaxTokens:   profile.maxTokens,
		Temperature: profile.temperature,
	})
	if err != nil {
		return UnitResult{Status: StatusFatal, Err: fmt.Errorf("generate for %s: %w", unitName, err)}
	}

	candidates := profile.parse(resp.Text)
	accepted := Dedup(candidates, hist, unitName, want)

	if len(accepted) > 0 {
		if err := store.Save(ctx, hist); err != nil {
			return UnitResult{Status: StatusFatal, Err: fmt.Errorf("save history for %s: %w", unitName, err)}
		}
	}

	if len(accepted) == 0 {
		return UnitResult{
			Status: StatusEmpty,
			Reason: fmt.Sprintf("no new questions generated for %s; all were duplicates", unitName),
		}
	}

	return UnitResult{Status: StatusAccepted, Questions: accepted}
}

// pace sleeps for the configured inter-unit delay, honoring cancellation.
func pace(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}
