package syllabus

import (
	"strings"
	"testing"
)

func TestSegment_TwoUnitsWithHourLine(t *testing.T) {
	text := "UNIT I: BASICS\nIntro to X\n9 Hrs\nUNIT II: ADVANCED\nMore on Y"

	units := Segment(text)
	if len(units) != 2 {
		t.Fatalf("expected 2 units, got %d: %v", len(units), units)
	}
	if units[0] != "UNIT I: BASICS Intro to X" {
		t.Errorf("unit 1 = %q", units[0])
	}
	if units[1] != "UNIT II: ADVANCED More on Y" {
		t.Errorf("unit 2 = %q", units[1])
	}
}

func TestSegment_ArabicAndMixedCaseHeadings(t *testing.T) {
	text := "Unit 1 - Networks\nTopologies and media\nunit 2 - Protocols\nTCP and UDP"

	units := Segment(text)
	if len(units) != 2 {
		t.Fatalf("expected 2 units, got %d: %v", len(units), units)
	}
	if !strings.HasPrefix(string(units[0]), "Unit 1") {
		t.Errorf("unit 1 = %q", units[0])
	}
}

func TestSegment_HeadingAnywhereInLine(t *testing.T) {
	text := "Page 3   UNIT III: GRAPHS\nTrees and traversals"

	units := Segment(text)
	if len(units) != 1 {
		t.Fatalf("expected 1 unit, got %d", len(units))
	}
}

func TestSegment_CompactSeparators(t *testing.T) {
	text := "UNIT-I: Lexing\nTokens\nUNIT:2 Parsing\nGrammars"

	units := Segment(text)
	if len(units) != 2 {
		t.Fatalf("expected 2 units, got %d: %v", len(units), units)
	}
	if !strings.HasPrefix(string(units[0]), "UNIT-I") {
		t.Errorf("unit 1 = %q", units[0])
	}
	if !strings.HasPrefix(string(units[1]), "UNIT:2") {
		t.Errorf("unit 2 = %q", units[1])
	}
}

func TestSegment_UnitWordAloneIsNotAHeading(t *testing.T) {
	text := "UNIT I: Memory\nthe unit of storage is a byte\nUnits of measure"

	units := Segment(text)
	if len(units) != 1 {
		t.Fatalf("expected 1 unit, got %d: %v", len(units), units)
	}
}

func TestSegment_PreservesOrder(t *testing.T) {
	text := "UNIT I: A\none\nUNIT II: B\ntwo\nUNIT III: C\nthree"

	units := Segment(text)
	want := []string{"UNIT I: A one", "UNIT II: B two", "UNIT III: C three"}
	if len(units) != len(want) {
		t.Fatalf("expected %d units, got %d", len(want), len(units))
	}
	for i, w := range want {
		if string(units[i]) != w {
			t.Errorf("unit %d = %q, want %q", i, units[i], w)
		}
	}
}

func TestSegment_CollapsesWhitespace(t *testing.T) {
	text := "UNIT I:   SEARCHING\nLinear    search\tand   binary search"

	units := Segment(text)
	if len(units) != 1 {
		t.Fatalf("expected 1 unit, got %d", len(units))
	}
	if units[0] != "UNIT I: SEARCHING Linear search and binary search" {
		t.Errorf("unit = %q", units[0])
	}
}

func TestSegment_HoursVariantsDropped(t *testing.T) {
	text := "UNIT I: X\n9 Hrs\n12 Hours\n9Hrs\nactual topic"

	units := Segment(text)
	if len(units) != 1 {
		t.Fatalf("expected 1 unit, got %d", len(units))
	}
	if units[0] != "UNIT I: X actual topic" {
		t.Errorf("unit = %q", units[0])
	}
}

func TestSegment_NoHeadings(t *testing.T) {
	if units := Segment("just some prose\nwith no headings"); len(units) != 0 {
		t.Fatalf("expected no units, got %v", units)
	}
}

func TestSegmentWithFallback_SubstitutesDefaults(t *testing.T) {
	units, degraded := SegmentWithFallback("no headings here")
	if !degraded {
		t.Fatal("expected degraded flag")
	}
	if len(units) != 5 {
		t.Fatalf("expected exactly 5 default units, got %d", len(units))
	}

	units, degraded = SegmentWithFallback("UNIT I: A\ntopic")
	if degraded {
		t.Fatal("unexpected degraded flag")
	}
	if len(units) != 1 {
		t.Fatalf("expected 1 unit, got %d", len(units))
	}
}

func TestUnit_ShortName(t *testing.T) {
	cases := []struct {
		unit Unit
		want string
	}{
		{"UNIT I: BASICS Intro to X", "UNIT I"},
		{"UNIT IV - no colon at all", "UNIT IV - no colon at all"},
		{"  Unit 2 : Protocols", "Unit 2"},
	}
	for _, c := range cases {
		if got := c.unit.ShortName(); got != c.want {
			t.Errorf("ShortName(%q) = %q, want %q", c.unit, got, c.want)
		}
	}
}

func TestUnit_Position(t *testing.T) {
	cases := []struct {
		unit Unit
		want string
	}{
		{"UNIT I: BASICS", "I"},
		{"unit iii: clustering", "III"},
		{"UNIT 2: not roman", ""},
		{"INTRODUCTION", ""},
	}
	for _, c := range cases {
		if got := c.unit.Position(); got != c.want {
			t.Errorf("Position(%q) = %q, want %q", c.unit, got, c.want)
		}
	}
}
