package syllabus

import (
	"strings"
	"testing"
)

func TestKeywords_FromDescriptor(t *testing.T) {
	e := NewChoiceExtractor()
	unit := Unit("UNIT II: SORTING Quicksort and mergesort with complexity analysis")

	keywords := e.Keywords(unit)
	if len(keywords) == 0 {
		t.Fatal("expected keywords")
	}
	for _, want := range []string{"sorting", "quicksort", "mergesort", "complexity"} {
		if !contains(keywords, want) {
			t.Errorf("missing keyword %q in %v", want, keywords)
		}
	}
	// Stop words and short tokens are excluded.
	for _, banned := range []string{"with", "and"} {
		if contains(keywords, banned) {
			t.Errorf("unexpected keyword %q", banned)
		}
	}
	// Short name with "unit" stripped is appended.
	if !contains(keywords, "ii") {
		t.Errorf("missing short-name keyword in %v", keywords)
	}
}

func TestKeywords_RespectsCap(t *testing.T) {
	e := NewDescriptiveExtractor()
	unit := Unit("UNIT I: alpha bravo charlie delta echo foxtrot golf hotel india juliett kilo lima")

	keywords := e.Keywords(unit)
	// Cap applies to descriptor tokens; the short name rides on top.
	if len(keywords) > e.MaxKeywords+1 {
		t.Fatalf("got %d keywords, cap is %d+1: %v", len(keywords), e.MaxKeywords, keywords)
	}
}

func TestKeywords_PositionalFallback(t *testing.T) {
	// Force an empty token set so the positional table kicks in.
	e := &Extractor{MaxChars: 4000, MaxKeywords: 8, StopWords: map[string]bool{"unit": true}}

	keywords := e.Keywords(Unit("UNIT III"))
	if !contains(keywords, "clustering") {
		t.Fatalf("expected position III topic keywords, got %v", keywords)
	}

	// Unrecognized position falls back to the short name alone.
	keywords = e.Keywords(Unit("UNIT 9"))
	if len(keywords) != 1 || keywords[0] != "unit 9" {
		t.Fatalf("expected short name alone, got %v", keywords)
	}
}

func TestExtract_KeepsMatchingSentencesInOrder(t *testing.T) {
	e := NewChoiceExtractor()
	unit := Unit("UNIT IV: SORTING Quicksort basics")
	text := "Quicksort partitions the array. Cooking is unrelated. Sorting stability matters. Another stray sentence."

	got := e.Extract(text, unit)
	if !strings.Contains(got, "Quicksort partitions the array") {
		t.Errorf("missing first match: %q", got)
	}
	if !strings.Contains(got, "Sorting stability matters") {
		t.Errorf("missing second match: %q", got)
	}
	if strings.Contains(got, "Cooking") {
		t.Errorf("kept irrelevant sentence: %q", got)
	}
	if strings.Index(got, "Quicksort") > strings.Index(got, "stability") {
		t.Errorf("sentence order not preserved: %q", got)
	}
}

func TestExtract_BudgetCheckedBeforeAppend(t *testing.T) {
	e := &Extractor{MaxChars: 40, MaxKeywords: 10, StopWords: choiceStopWords}
	unit := Unit("UNIT I: GRAPHS graph theory")
	text := "A graph has nodes. A graph also has many edges and further structure beyond the budget."

	got := e.Extract(text, unit)
	if got != "A graph has nodes" {
		t.Errorf("crossing sentence must be excluded, got %q", got)
	}
}

func TestExtract_RawFallbackWhenNothingMatches(t *testing.T) {
	e := NewChoiceExtractor()
	unit := Unit("UNIT XL: ZYZZYVA zyzzyva")
	text := strings.Repeat("Zero relevant matter here. ", 300)

	got := e.Extract(text, unit)
	if len(got) != rawFallbackChars {
		t.Fatalf("expected first %d chars, got %d", rawFallbackChars, len(got))
	}
	if !strings.HasPrefix(text, got) {
		t.Error("fallback must be a prefix of the raw text")
	}
}

func TestExtract_Idempotent(t *testing.T) {
	e := NewDescriptiveExtractor()
	unit := Unit("UNIT III: CLUSTERING k-means and hierarchical clustering")
	text := "Clustering groups similar points. K-means iterates centroids. Irrelevant filler sentence."

	first := e.Extract(text, unit)
	second := e.Extract(text, unit)
	if first != second {
		t.Fatalf("extraction not deterministic:\n%q\n%q", first, second)
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
