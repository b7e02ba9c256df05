package syllabus

import (
	"regexp"
	"strings"
)

// Extractor derives a bounded excerpt of reference text biased toward a
// unit's keywords. Precision is intentionally approximate: substring keyword
// matching, no stemming. For fixed inputs the result is deterministic.
type Extractor struct {
	// MaxChars bounds the excerpt size forwarded to generation.
	MaxChars int

	// MaxKeywords caps how many distinct descriptor tokens are kept.
	MaxKeywords int

	// StopWords are descriptor tokens never used as keywords.
	StopWords map[string]bool
}

const rawFallbackChars = 3000

var keywordToken = regexp.MustCompile(`\b[a-z]{4,}\b`)

// Stop-word lists differ slightly per tier in spirit: the MCQ path filters
// generic function words, the descriptive paths additionally drop the
// course-title words that match every sentence.
var (
	choiceStopWords = map[string]bool{
		"the": true, "and": true, "for": true, "with": true, "this": true,
		"that": true, "from": true, "have": true, "has": true, "are": true,
		"was": true, "were": true,
	}
	descriptiveStopWords = map[string]bool{
		"with": true, "this": true, "that": true, "from": true, "have": true,
		"has": true, "are": true, "was": true, "were": true,
		"learning": true, "machine": true,
	}
)

// positionKeywords maps a unit's roman position to generic topic keywords,
// used when the descriptor itself yields nothing usable.
var positionKeywords = map[string][]string{
	"I":   {"introduction", "basics", "fundamentals", "overview"},
	"II":  {"supervised", "regression", "classification"},
	"III": {"unsupervised", "clustering", "dimensionality"},
	"IV":  {"neural", "network", "kernel", "svm"},
	"V":   {"probabilistic", "bayesian", "markov", "graphical"},
}

// NewChoiceExtractor returns the extractor used for the one-mark MCQ tier.
func NewChoiceExtractor() *Extractor {
	return &Extractor{MaxChars: 4000, MaxKeywords: 10, StopWords: choiceStopWords}
}

// NewDescriptiveExtractor returns the extractor used for the six- and
// twelve-mark tiers.
func NewDescriptiveExtractor() *Extractor {
	return &Extractor{MaxChars: 4000, MaxKeywords: 8, StopWords: descriptiveStopWords}
}

// Extract returns a bounded excerpt of fullText relevant to the unit.
// Sentences are kept in document order when they contain any keyword; the
// sentence that would cross the character budget is not included. If no
// sentence matches, the first 3000 characters of the raw text are returned.
func (e *Extractor) Extract(fullText string, unit Unit) string {
	keywords := e.Keywords(unit)

	var kept []string
	total := 0
	for _, sentence := range strings.Split(fullText, ".") {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		lower := strings.ToLower(sentence)
		if !containsAny(lower, keywords) {
			continue
		}
		if total+len(sentence) > e.MaxChars {
			break
		}
		kept = append(kept, sentence)
		total += len(sentence)
	}

	if len(kept) == 0 {
		if len(fullText) > rawFallbackChars {
			return fullText[:rawFallbackChars]
		}
		return fullText
	}

	out := strings.Join(kept, ". ")
	if len(out) > e.MaxChars {
		out = out[:e.MaxChars]
	}
	return out
}

// Keywords derives the keyword set for a unit: 4+ letter lower-case tokens
// from the descriptor minus stop words, capped at MaxKeywords, plus the
// unit's short name with the leading "unit" word stripped. When the
// descriptor yields no tokens, falls back to the positional keyword table,
// then to the short name alone.
func (e *Extractor) Keywords(unit Unit) []string {
	description := strings.ToLower(string(unit))
	shortName := strings.ToLower(unit.ShortName())

	var keywords []string
	seen := map[string]bool{}
	for _, w := range keywordToken.FindAllString(description, -1) {
		if e.StopWords[w] || seen[w] {
			continue
		}
		keywords = append(keywords, w)
		seen[w] = true
		if len(keywords) == e.MaxKeywords {
			break
		}
	}

	if len(keywords) == 0 {
		if generic, ok := positionKeywords[unit.Position()]; ok {
			return generic
		}
		return []string{shortName}
	}

	if name := strings.TrimSpace(strings.TrimPrefix(shortName, "unit ")); name != "" {
		keywords = append(keywords, name)
	}
	return keywords
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, strings.ToLower(k)) {
			return true
		}
	}
	return false
}
