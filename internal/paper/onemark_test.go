package paper

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/vijayyy-code/question-paper-generator/internal/history"
	"github.com/vijayyy-code/question-paper-generator/internal/llm"
	"github.com/vijayyy-code/question-paper-generator/internal/syllabus"
)

const testReference = "Lexical analysis converts characters to tokens. Parsing builds syntax trees. Code generation emits machine instructions."

func mcqResponse(questions ...string) string {
	var blocks []string
	for i, q := range questions {
		blocks = append(blocks, fmt.Sprintf("Q%d. %s\nA. a\nB. b\nC. c\nD. d", i+1, q))
	}
	return strings.Join(blocks, "\n\n")
}

func TestOneMarkNumbersAcrossUnits(t *testing.T) {
	units := []syllabus.Unit{
		"UNIT I: Lexical Analysis",
		"UNIT II: Syntax Analysis",
	}
	provider := llm.NewMockProvider(
		llm.MockResponse{Text: mcqResponse("What is a token?", "What is a lexeme?")},
		llm.MockResponse{Text: mcqResponse("What is a parse tree?", "What is a grammar?")},
	)

	gen := &OneMark{
		Provider:         provider,
		History:          history.NewMemStore(),
		Difficulty:       "medium",
		QuestionsPerUnit: 2,
	}

	blocks, warnings := gen.Generate(context.Background(), testReference, units)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}

	if !strings.HasPrefix(blocks[0].Text, "Q1.") || !strings.Contains(blocks[0].Text, "\n\nQ2.") {
		t.Errorf("first unit not numbered Q1, Q2: %q", blocks[0].Text)
	}
	if !strings.HasPrefix(blocks[1].Text, "Q3.") || !strings.Contains(blocks[1].Text, "\n\nQ4.") {
		t.Errorf("second unit must continue at Q3: %q", blocks[1].Text)
	}
	if provider.CallCount() != 2 {
		t.Errorf("provider called %d times, want 2", provider.CallCount())
	}
}

func TestOneMarkSkipsAllDuplicateUnit(t *testing.T) {
	units := []syllabus.Unit{
		"UNIT I: Lexical Analysis",
		"UNIT II: Syntax Analysis",
	}
	dupes := mcqResponse("What is a token?", "What is a lexeme?")

	// Pre-seed history with every candidate the first unit will produce.
	store := history.NewMemStore()
	seeded := history.History{}
	for _, c := range ParseChoiceBlocks(dupes) {
		seeded.Add("UNIT I", history.Fingerprint(c))
	}
	if err := store.Save(context.Background(), seeded); err != nil {
		t.Fatal(err)
	}

	provider := llm.NewMockProvider(
		llm.MockResponse{Text: dupes},
		llm.MockResponse{Text: mcqResponse("What is a parse tree?", "What is a grammar?")},
	)
	gen := &OneMark{
		Provider:         provider,
		History:          store,
		Difficulty:       "medium",
		QuestionsPerUnit: 2,
	}

	blocks, warnings := gen.Generate(context.Background(), testReference, units)
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1: %v", len(warnings), warnings)
	}
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1 (duplicate unit contributes nothing)", len(blocks))
	}
	// Numbering starts fresh at Q1 because the skipped unit emitted nothing.
	if !strings.HasPrefix(blocks[0].Text, "Q1.") {
		t.Errorf("numbering must not advance past a skipped unit: %q", blocks[0].Text)
	}
}

func TestOneMarkFailedUnitGetsPlaceholders(t *testing.T) {
	units := []syllabus.Unit{
		"UNIT I: Lexical Analysis",
		"UNIT II: Syntax Analysis",
	}
	provider := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
		llm.MockResponse{Text: mcqResponse("What is a parse tree?", "What is a grammar?")},
	)
	gen := &OneMark{
		Provider:         provider,
		History:          history.NewMemStore(),
		Difficulty:       "medium",
		QuestionsPerUnit: 2,
	}

	blocks, warnings := gen.Generate(context.Background(), testReference, units)
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(warnings))
	}
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}

	if !blocks[0].Placeholder {
		t.Error("failed unit's block must be marked as placeholder")
	}
	if !strings.HasPrefix(blocks[0].Text, "Q1.") || !strings.Contains(blocks[0].Text, "Q2.") {
		t.Errorf("placeholders take the unit's quota of numbers: %q", blocks[0].Text)
	}
	if !strings.HasPrefix(blocks[1].Text, "Q3.") {
		t.Errorf("numbering continues after placeholders: %q", blocks[1].Text)
	}
}

func TestOneMarkSavesHistoryOnlyOnAcceptance(t *testing.T) {
	units := []syllabus.Unit{"UNIT I: Lexical Analysis"}
	provider := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	store := history.NewMemStore()
	gen := &OneMark{
		Provider:         provider,
		History:          store,
		Difficulty:       "medium",
		QuestionsPerUnit: 2,
	}

	gen.Generate(context.Background(), testReference, units)

	h, err := store.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(h) != 0 {
		t.Errorf("history written for a failed unit: %v", h)
	}
}
