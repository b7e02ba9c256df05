package paper

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/vijayyy-code/question-paper-generator/internal/syllabus"
)

const (
	oneMarkSystem    = "You are an expert university question paper setter."
	sixMarkSystem    = "You are an expert university professor creating six-mark questions."
	twelveMarkSystem = "You are an expert university professor creating twelve-mark questions."
)

// randSeed returns a 4-digit seed embedded in prompts to discourage the
// model from reproducing a cached completion across sessions.
func randSeed() int {
	return 1000 + rand.IntN(9000)
}

func buildOneMarkPrompt(unit syllabus.Unit, difficulty, excerpt string, count, seed int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate EXACTLY %d NEW one-mark MCQs.\n\n", count)
	fmt.Fprintf(&b, "UNIT: %s\n", unit)
	fmt.Fprintf(&b, "DIFFICULTY: %s\n\n", difficulty)
	fmt.Fprintf(&b, "RELEVANT CONTENT (for this unit only):\n%s\n\n", excerpt)

	b.WriteString(`Rules:
- Each question must have 4 options (A-D)
- Only generate the question and options, do NOT include the answers
- Each question should be unique and phrased differently
- Strictly syllabus-based
- Ensure questions are not repeated from previous sessions
- Format strictly:

Q1. Question?
A. Option
B. Option
C. Option
D. Option

Q2. Question?
A. Option
B. Option
C. Option
D. Option
`)

	fmt.Fprintf(&b, "\n[Seed: %d]\n", seed)
	return b.String()
}

func buildSixMarkPrompt(unit syllabus.Unit, difficulty, excerpt string, count, seed int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate EXACTLY %d NEW six-mark descriptive questions.\n\n", count)
	fmt.Fprintf(&b, "UNIT: %s\n", unit)
	fmt.Fprintf(&b, "DIFFICULTY: %s\n", difficulty)
	b.WriteString("MARKS: 6 marks each\n\n")
	fmt.Fprintf(&b, "RELEVANT CONTENT:\n%s\n\n", excerpt)

	fmt.Fprintf(&b, `Rules:
- Each question should require detailed explanation or step-by-step solution
- Questions should test analytical and application skills
- Make questions challenging for %s difficulty
- Each question should be unique and not repeated
- Questions should be suitable for 6 marks (approximately 150-200 words answer)
- Format strictly as:
Q[number]. [Question text]
`, difficulty)

	fmt.Fprintf(&b, "\n[Seed: %d]\n", seed)
	return b.String()
}

func buildTwelveMarkPrompt(unit syllabus.Unit, difficulty, excerpt string, count, seed int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate EXACTLY %d NEW twelve-mark descriptive questions.\n\n", count)
	fmt.Fprintf(&b, "UNIT: %s\n", unit)
	fmt.Fprintf(&b, "DIFFICULTY: %s\n", difficulty)
	b.WriteString("MARKS: 12 marks each\n\n")
	fmt.Fprintf(&b, "RELEVANT CONTENT:\n%s\n\n", excerpt)

	fmt.Fprintf(&b, `Rules:
- Each question should require comprehensive explanation, analysis, and application
- Questions should test in-depth understanding, critical thinking, and problem-solving skills
- Make questions challenging for %s difficulty
- Each question should be unique and not repeated
- Questions should be suitable for 12 marks (approximately 250-300 words answer)
- Questions should cover different aspects/topics of the unit
- Format strictly as:
Q[number]. [Question text]
`, difficulty)

	fmt.Fprintf(&b, "\n[Seed: %d]\n", seed)
	return b.String()
}
