package paper

import (
	"context"
	"strings"
	"time"

	"github.com/vijayyy-code/question-paper-generator/internal/history"
	"github.com/vijayyy-code/question-paper-generator/internal/llm"
	"github.com/vijayyy-code/question-paper-generator/internal/syllabus"
)

// Part C layout: questions Q19-Q28, every unit contributes two questions.
const (
	TwelveMarkStart   = 19
	TwelveMarkTotal   = 10
	twelveMarkPerUnit = 2
)

const twelveMarkPlaceholder = "Discuss in detail the important concepts and applications from this unit with appropriate examples and analysis."

// TwelveMark generates the Part C descriptive questions.
type TwelveMark struct {
	Provider   llm.Provider
	History    history.Store
	Difficulty string
	Pacing     time.Duration

	// Extractor defaults to the descriptive-tier extractor when nil.
	Extractor *syllabus.Extractor
}

// Generate processes every unit in order, two questions each, and returns
// the tier text: always exactly 10 questions numbered contiguously from
// Q19, padded or truncated as needed. Unit failures and duplicate-only
// yields become placeholders without blocking sibling units.
func (g *TwelveMark) Generate(ctx context.Context, reference string, units []syllabus.Unit) (string, []Warning) {
	quotas := make([]int, len(units))
	for i := range quotas {
		quotas[i] = twelveMarkPerUnit
	}

	questions, warnings := generateDescriptiveTier(ctx, descriptiveTierParams{
		provider:    g.Provider,
		history:     g.History,
		extractor:   g.extractor(),
		profile:     twelveMarkProfile,
		difficulty:  g.Difficulty,
		pacing:      g.Pacing,
		start:       TwelveMarkStart,
		total:       TwelveMarkTotal,
		placeholder: twelveMarkPlaceholder,
		quotas:      quotas,
	}, reference, units)
	return strings.Join(questions, "\n\n"), warnings
}

func (g *TwelveMark) extractor() *syllabus.Extractor {
	if g.Extractor != nil {
		return g.Extractor
	}
	return syllabus.NewDescriptiveExtractor()
}
