package syllabus

import "strings"

// Unit is one syllabus topic block: the heading line plus its topic list,
// collapsed to a single whitespace-normalized line. Units are ordered; the
// order drives question numbering and the per-tier distribution policy.
type Unit string

// ShortName returns the text before the first colon, or the whole unit if
// there is none. It is the partition key for question history.
func (u Unit) ShortName() string {
	s := string(u)
	if i := strings.Index(s, ":"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// Position returns the unit's roman-numeral position ("I".."V", upper-cased)
// parsed from the short name, or "" if it is not recognizable.
func (u Unit) Position() string {
	name := strings.ToUpper(u.ShortName())
	name = strings.TrimSpace(strings.TrimPrefix(name, "UNIT"))
	for _, r := range name {
		if !strings.ContainsRune("IVXLCDM", r) {
			return ""
		}
	}
	if name == "" {
		return ""
	}
	return name
}

// DefaultUnits is the fixed fallback set used when segmentation finds no
// unit headings at all. Substituting these is a documented degraded path,
// not an error.
func DefaultUnits() []Unit {
	return []Unit{
		"UNIT I: INTRODUCTION TO COMPILER DESIGN",
		"UNIT II: LEXICAL ANALYSIS AND SYNTAX ANALYSIS",
		"UNIT III: INTERMEDIATE CODE GENERATION",
		"UNIT IV: CODE OPTIMIZATION",
		"UNIT V: CODE GENERATION AND ERROR HANDLING",
	}
}
