package paper

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vijayyy-code/question-paper-generator/internal/history"
	"github.com/vijayyy-code/question-paper-generator/internal/llm"
	"github.com/vijayyy-code/question-paper-generator/internal/syllabus"
)

// Part B layout: questions Q11-Q18, first three units contribute two
// questions each, the last two contribute one each.
const (
	SixMarkStart = 11
	SixMarkTotal = 8
)

// sixMarkDistribution maps unit position to question count. Extra units
// are ignored; missing positions are skipped.
var sixMarkDistribution = []int{2, 2, 2, 1, 1}

const sixMarkPlaceholder = "Explain the key concepts covered in this unit with suitable examples."

// SixMark generates the Part B descriptive questions.
type SixMark struct {
	Provider   llm.Provider
	History    history.Store
	Difficulty string
	Pacing     time.Duration

	// Extractor defaults to the descriptive-tier extractor when nil.
	Extractor *syllabus.Extractor
}

// Generate processes the distribution positions in order and returns the
// tier text: always exactly 8 questions numbered contiguously from Q11.
// A unit that fails or yields only duplicates gets its quota as
// placeholders rather than blocking sibling units; any remaining shortfall
// is padded at the end.
func (g *SixMark) Generate(ctx context.Context, reference string, units []syllabus.Unit) (string, []Warning) {
	questions, warnings := generateDescriptiveTier(ctx, descriptiveTierParams{
		provider:    g.Provider,
		history:     g.History,
		extractor:   g.extractor(),
		profile:     sixMarkProfile,
		difficulty:  g.Difficulty,
		pacing:      g.Pacing,
		start:       SixMarkStart,
		total:       SixMarkTotal,
		placeholder: sixMarkPlaceholder,
		quotas:      distributionQuotas(len(units)),
	}, reference, units)
	return strings.Join(questions, "\n\n"), warnings
}

func (g *SixMark) extractor() *syllabus.Extractor {
	if g.Extractor != nil {
		return g.Extractor
	}
	return syllabus.NewDescriptiveExtractor()
}

// distributionQuotas returns the per-unit question counts for n units under
// the fixed 2/2/2/1/1 layout.
func distributionQuotas(n int) []int {
	if n > len(sixMarkDistribution) {
		n = len(sixMarkDistribution)
	}
	return sixMarkDistribution[:n]
}

// descriptiveTierParams bundles what the shared six/twelve-mark loop needs.
type descriptiveTierParams struct {
	provider    llm.Provider
	history     history.Store
	extractor   *syllabus.Extractor
	profile     tierProfile
	difficulty  string
	pacing      time.Duration
	start       int
	total       int
	placeholder string
	quotas      []int // per-unit desired counts, aligned with units
}

// generateDescriptiveTier drives the per-unit pipeline for a descriptive
// tier and enforces the tier's exact total: per-unit failures and
// underflows become placeholders for that unit's quota, the final list is
// padded or truncated to exactly p.total records, numbered contiguously
// from p.start.
func generateDescriptiveTier(ctx context.Context, p descriptiveTierParams, reference string, units []syllabus.Unit) ([]string, []Warning) {
	var questions []string
	var warnings []Warning
	counter := p.start

	emitPlaceholders := func(n int) {
		for i := 0; i < n; i++ {
			questions = append(questions, fmt.Sprintf("Q%d. %s", counter, p.placeholder))
			counter++
		}
	}

	for i, want := range p.quotas {
		if len(questions) >= p.total {
			break
		}
		unit := units[i]

		result := generateForUnit(ctx, p.provider, p.history, p.extractor,
			p.profile, unit, reference, p.difficulty, want)
		pace(ctx, p.pacing)

		switch result.Status {
		case StatusAccepted:
			for _, q := range result.Questions {
				questions = append(questions, RenumberDescriptive(q, counter))
				counter++
			}
			// A short yield still owes the unit's quota.
			if missing := want - len(result.Questions); missing > 0 {
				emitPlaceholders(missing)
			}

		case StatusEmpty:
			warnings = append(warnings, Warning{Unit: unit, Message: result.Reason})
			emitPlaceholders(want)

		case StatusFatal:
			warnings = append(warnings, Warning{
				Unit:    unit,
				Message: fmt.Sprintf("%s generation failed: %v", p.profile.purpose, result.Err),
			})
			emitPlaceholders(want)
		}
	}

	// Fewer units than positions leaves a shortfall to pad.
	if missing := p.total - len(questions); missing > 0 {
		emitPlaceholders(missing)
	}

	return questions[:p.total], warnings
}
