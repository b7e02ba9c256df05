package paper

import "github.com/vijayyy-code/question-paper-generator/internal/syllabus"

// Status classifies the outcome of one unit's generation pass.
type Status int

const (
	// StatusAccepted means at least one fresh question survived
	// deduplication.
	StatusAccepted Status = iota

	// StatusEmpty means generation succeeded but every candidate was a
	// duplicate of history. Expected and non-fatal; callers substitute
	// placeholders or skip the unit per tier policy.
	StatusEmpty

	// StatusFatal means generation or parsing failed for this unit.
	// Callers substitute placeholders; sibling units are unaffected.
	StatusFatal
)

// UnitResult is the tagged outcome of generating questions for one unit.
// Exactly one of Questions (Accepted), Reason (Empty) or Err (Fatal)
// carries the payload.
type UnitResult struct {
	Status    Status
	Questions []string // accepted raw candidates, pre-renumbering
	Reason    string
	Err       error
}

// UnitBlock is one unit's finished contribution to the one-mark part.
type UnitBlock struct {
	Unit syllabus.Unit

	// Text holds the renumbered question blocks, blank-line separated.
	Text string

	// Placeholder marks synthetic filler emitted after a unit failure.
	Placeholder bool
}

// Warning is a non-fatal condition surfaced to the caller alongside the
// tier result, e.g. a unit that produced no fresh questions.
type Warning struct {
	Unit    syllabus.Unit
	Message string
}
