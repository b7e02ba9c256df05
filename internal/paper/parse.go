package paper

import "strings"

// ParseChoiceBlocks splits a raw one-mark response into candidate question
// chunks on blank-line boundaries. A chunk is a candidate when it is
// non-empty and carries a Q marker within its first 10 characters; stray
// commentary the model emits around the questions is dropped.
func ParseChoiceBlocks(raw string) []string {
	var candidates []string
	for _, chunk := range strings.Split(strings.TrimSpace(raw), "\n\n") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		head := chunk
		if len(head) > 10 {
			head = head[:10]
		}
		if strings.Contains(head, "Q") {
			candidates = append(candidates, chunk)
		}
	}
	return candidates
}

// ParseDescriptive splits a raw six- or twelve-mark response into candidate
// questions by walking lines: a line starting with Q begins a new question,
// flushing the previous one; other non-empty lines append, space-joined,
// to the current question.
func ParseDescriptive(raw string) []string {
	var candidates []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			candidates = append(candidates, current.String())
			current.Reset()
		}
	}

	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "Q"):
			flush()
			current.WriteString(line)
		case line == "" || current.Len() == 0:
			// Preamble before the first marker is dropped.
		default:
			current.WriteString(" ")
			current.WriteString(line)
		}
	}
	flush()

	return candidates
}
