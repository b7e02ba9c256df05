package paper

import (
	"fmt"
	"regexp"
	"strings"
)

// decimalMarker matches a malformed leading marker like "Q17.5017" where the
// model glued stray digits onto the question number. The digit remainder is
// junk to strip, not answer text.
var decimalMarker = regexp.MustCompile(`^Q\d+\.\d+`)

// RenumberDescriptive rewrites a descriptive question's leading marker to
// the given number. Everything after the first "." delimiter is preserved
// verbatim; if there is no delimiter a bare marker is emitted. The
// decimal-looking malformed marker is detected first and its numeric
// remainder stripped.
func RenumberDescriptive(q string, n int) string {
	if m := decimalMarker.FindString(q); m != "" {
		rest := strings.TrimSpace(q[len(m):])
		if rest == "" {
			return fmt.Sprintf("Q%d.", n)
		}
		return fmt.Sprintf("Q%d. %s", n, rest)
	}

	parts := strings.SplitN(q, ".", 2)
	if len(parts) < 2 {
		return fmt.Sprintf("Q%d.", n)
	}
	return fmt.Sprintf("Q%d.%s", n, parts[1])
}

// RenumberChoiceBlock rewrites the Q-marker lines of a one-mark question
// chunk to the given number, leaving option lines untouched.
func RenumberChoiceBlock(block string, n int) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		if !strings.HasPrefix(strings.TrimSpace(line), "Q") {
			continue
		}
		parts := strings.SplitN(line, ".", 2)
		if len(parts) < 2 {
			lines[i] = fmt.Sprintf("Q%d.", n)
			continue
		}
		lines[i] = fmt.Sprintf("Q%d.%s", n, parts[1])
	}
	return strings.Join(lines, "\n")
}
