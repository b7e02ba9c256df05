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

// OneMarkStart is the first global question number of the MCQ part.
const OneMarkStart = 1

const oneMarkPlaceholder = "[Question generation failed - please try again]\nA. Option A\nB. Option B\nC. Option C\nD. Option D"

// OneMark generates the Part A multiple-choice questions: a configurable
// quota per unit, units processed strictly in order.
type OneMark struct {
	Provider         llm.Provider
	History          history.Store
	Difficulty       string
	QuestionsPerUnit int
	Pacing           time.Duration

	// Extractor defaults to the choice-tier extractor when nil.
	Extractor *syllabus.Extractor
}

// Generate processes every unit in order and returns the finished unit
// blocks plus any non-fatal warnings. A unit whose generation fails gets a
// full quota of placeholder MCQs; a unit whose candidates were all
// duplicates contributes nothing. The global counter advances by the count
// of records actually emitted, so numbering stays contiguous either way.
func (g *OneMark) Generate(ctx context.Context, reference string, units []syllabus.Unit) ([]UnitBlock, []Warning) {
	extractor := g.Extractor
	if extractor == nil {
		extractor = syllabus.NewChoiceExtractor()
	}

	var blocks []UnitBlock
	var warnings []Warning
	counter := OneMarkStart

	for _, unit := range units {
		result := generateForUnit(ctx, g.Provider, g.History, extractor,
			oneMarkProfile, unit, reference, g.Difficulty, g.QuestionsPerUnit)
		pace(ctx, g.Pacing)

		switch result.Status {
		case StatusAccepted:
			var rendered []string
			for _, q := range result.Questions {
				rendered = append(rendered, RenumberChoiceBlock(q, counter))
				counter++
			}
			blocks = append(blocks, UnitBlock{
				Unit: unit,
				Text: strings.Join(rendered, "\n\n"),
			})

		case StatusEmpty:
			warnings = append(warnings, Warning{Unit: unit, Message: result.Reason})

		case StatusFatal:
			warnings = append(warnings, Warning{
				Unit:    unit,
				Message: fmt.Sprintf("one-mark generation failed: %v", result.Err),
			})
			var rendered []string
			for i := 0; i < g.QuestionsPerUnit; i++ {
				rendered = append(rendered, fmt.Sprintf("Q%d. %s", counter, oneMarkPlaceholder))
				counter++
			}
			blocks = append(blocks, UnitBlock{
				Unit:        unit,
				Text:        strings.Join(rendered, "\n\n"),
				Placeholder: true,
			})
		}
	}

	return blocks, warnings
}
