// Package printable reformats an assembled question paper into the
// three-part exam layout used for printing: centered part headings,
// independent per-part numbering and indented MCQ options.
package printable

import (
	"fmt"
	"regexp"
	"strings"
)

// Layout constants of the printed paper.
const (
	lineWidth    = 80
	optionIndent = "    "

	partAStart = 1
	partBStart = 11
	partCStart = 19
)

// symbolSubs maps Unicode symbols the model likes to emit onto printable
// ASCII.
var symbolSubs = strings.NewReplacer(
	"Δ", "Delta", "Σ", "Sigma", "Ω", "Omega", "Θ", "Theta", "π", "pi",
	"α", "alpha", "β", "beta", "γ", "gamma", "λ", "lambda", "μ", "mu",
	"—", "-", "–", "-", "’", "'", "‘", "'", "“", `"`, "”", `"`, "…", "...",
	"±", "+/-", "×", "x", "÷", "/", "≈", "~", "≠", "!=", "≤", "<=", "≥", ">=",
)

var (
	qMarker    = regexp.MustCompile(`^[Qq]\d+[.\s]*`)
	marksNote  = regexp.MustCompile(`(?i)\s*[(\[]\s*\d+\s*(?:marks?\s*)?[)\]]`)
	modelAside = regexp.MustCompile(`(?i)(This question requires|Note:|Expected).*$`)
	spaceRun   = regexp.MustCompile(`\s+`)

	optionLine      = regexp.MustCompile(`^[a-dA-D1-4][.)\s]`)
	parenOptionLine = regexp.MustCompile(`^\([a-dA-D1-4]\)`)
	boldMarkerStrip = regexp.MustCompile(`\*\*`)
)

// Render reparses an assembled paper into the printable layout. Unit
// headings, page furniture and hour totals are dropped; every question is
// renumbered within its part.
func Render(content string) string {
	var out strings.Builder
	pA, pB, pC := partAStart, partBStart, partCStart
	part := ""

	for _, line := range cleanLines(content) {
		upper := strings.ToUpper(line)

		switch {
		case strings.Contains(upper, "PART A") || strings.Contains(upper, "PART - A"):
			part = "A"
			writeHeading(&out, "PART - A (10 x 1 = 10 Marks)", "Answer ALL Questions")
			continue
		case strings.Contains(upper, "PART B") || strings.Contains(upper, "PART - B"):
			part = "B"
			writeHeading(&out, "PART - B (5 x 6 = 30 Marks)", "Answer ANY FIVE Questions")
			continue
		case strings.Contains(upper, "PART C") || strings.Contains(upper, "PART - C"):
			part = "C"
			writeHeading(&out, "PART - C (5 x 12 = 60 Marks)", "Answer ALL Questions")
			continue
		}

		switch part {
		case "A":
			if optionLine.MatchString(line) || parenOptionLine.MatchString(line) {
				out.WriteString(optionIndent)
				out.WriteString(line)
				out.WriteString("\n")
			} else {
				fmt.Fprintf(&out, "\nQ%d. %s\n", pA, line)
				pA++
			}
		case "B":
			fmt.Fprintf(&out, "Q%d. %s\n\n", pB, line)
			pB++
		case "C":
			if strings.Contains(upper, "(OR)") {
				out.WriteString("\n")
				out.WriteString(center("(OR)"))
				out.WriteString("\n\n")
			} else {
				fmt.Fprintf(&out, "Q%d. %s\n\n", pC, line)
				pC++
			}
		}
	}

	return strings.TrimRight(out.String(), "\n") + "\n"
}

// cleanLines strips the assembled paper down to printable content lines:
// symbols substituted, unit and page furniture dropped, question markers
// and marks annotations removed.
func cleanLines(content string) []string {
	var lines []string
	for _, line := range strings.Split(symbolSubs.Replace(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		upper := strings.ToUpper(line)
		if strings.Contains(upper, "UNIT") ||
			strings.Contains(upper, "PAGE") ||
			strings.Contains(upper, "TOTAL HOURS") {
			continue
		}

		line = boldMarkerStrip.ReplaceAllString(line, "")
		line = qMarker.ReplaceAllString(line, "")
		line = marksNote.ReplaceAllString(line, "")
		line = modelAside.ReplaceAllString(line, "")
		line = strings.TrimSpace(spaceRun.ReplaceAllString(line, " "))

		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func writeHeading(out *strings.Builder, title, instruction string) {
	out.WriteString("\n")
	out.WriteString(center(title))
	out.WriteString("\n")
	out.WriteString(center(instruction))
	out.WriteString("\n\n")
}

func center(s string) string {
	pad := (lineWidth - len(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}
