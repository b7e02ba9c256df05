package syllabus

import (
	"regexp"
	"strings"
)

var (
	// A heading can appear anywhere in the line, not just as a prefix:
	// extracted syllabus text often carries page furniture before it.
	// The separator is tolerant because extraction mangles headings into
	// forms like "UNIT-I:" or "UNIT:2".
	unitHeading = regexp.MustCompile(`(?i)\bUNIT\b[\s:-]*(?:[IVXLCDM]+|\d+)\b`)

	// Lines that are only an hour-count annotation, e.g. "9 Hrs".
	hoursOnly = regexp.MustCompile(`(?i)^\d+\s*(?:Hrs|Hours)$`)

	spaceRun = regexp.MustCompile(`\s+`)
)

// Segment splits raw syllabus text into an ordered sequence of units.
// A line matching a unit heading closes the current unit and starts a new
// one; other non-blank lines append to the current unit, except hour-count
// annotations, which are dropped. Every unit is whitespace-normalized.
//
// Returns an empty slice when no heading is found; callers are expected to
// substitute DefaultUnits and warn (see SegmentWithFallback).
func Segment(text string) []Unit {
	var units []Unit
	var current strings.Builder

	flush := func() {
		u := normalize(current.String())
		if u != "" {
			units = append(units, Unit(u))
		}
		current.Reset()
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case unitHeading.MatchString(line):
			flush()
			current.WriteString(line)
		case line == "" || current.Len() == 0:
			// Preamble before the first heading is discarded.
		case hoursOnly.MatchString(line):
			// Hour counts carry no topic content.
		default:
			current.WriteString(" ")
			current.WriteString(line)
		}
	}
	flush()

	return units
}

// SegmentWithFallback segments text, substituting the default unit set when
// nothing is detected. The second return reports whether the fallback was
// used so callers can surface a warning.
func SegmentWithFallback(text string) ([]Unit, bool) {
	units := Segment(text)
	if len(units) == 0 {
		return DefaultUnits(), true
	}
	return units, false
}

func normalize(s string) string {
	return strings.TrimSpace(spaceRun.ReplaceAllString(s, " "))
}
