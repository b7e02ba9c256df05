package paper

import (
	"fmt"
	"strings"
)

// Assemble concatenates the three tier blocks into the complete paper:
// Part A (one-mark MCQs, grouped under unit headings), Part B (six-mark)
// and Part C (twelve-mark).
func Assemble(oneMark []UnitBlock, sixMark, twelveMark string) string {
	var b strings.Builder

	mcqCount := countMarkers(oneMark)

	fmt.Fprintf(&b, "**PART A - One Mark Questions (%d x 1 = %d Marks)**\n\n", mcqCount, mcqCount)
	for _, block := range oneMark {
		fmt.Fprintf(&b, "**%s**\n", block.Unit.ShortName())
		b.WriteString(block.Text)
		b.WriteString("\n\n")
	}

	fmt.Fprintf(&b, "\n**PART B - Six Mark Questions (%d x 6 = %d Marks)**\n\n", SixMarkTotal, SixMarkTotal*6)
	b.WriteString(sixMark)
	b.WriteString("\n")

	fmt.Fprintf(&b, "\n**PART C - Twelve Mark Questions (%d x 12 = %d Marks)**\n\n", TwelveMarkTotal, TwelveMarkTotal*12)
	b.WriteString(twelveMark)
	b.WriteString("\n")

	return b.String()
}

// countMarkers counts the question records across the one-mark blocks by
// their leading markers, so option lines are not miscounted.
func countMarkers(blocks []UnitBlock) int {
	n := 0
	for _, block := range blocks {
		for _, line := range strings.Split(block.Text, "\n") {
			if strings.HasPrefix(strings.TrimSpace(line), "Q") {
				n++
			}
		}
	}
	return n
}
