package paper

import (
	"github.com/vijayyy-code/question-paper-generator/internal/history"
)

// Dedup filters candidates against the unit's history, in order, accepting
// at most want fresh questions. A candidate whose fingerprint is already in
// history is discarded silently: it does not count toward the quota and is
// not re-added. Accepted fingerprints are appended to h. Candidates beyond
// the quota are dropped even when unique.
//
// Fingerprints are computed over the raw candidate text, before
// renumbering, so the assigned sequence number never influences identity.
func Dedup(candidates []string, h history.History, unitName string, want int) []string {
	var accepted []string
	for _, candidate := range candidates {
		if len(accepted) == want {
			break
		}
		fp := history.Fingerprint(candidate)
		if h.Contains(unitName, fp) {
			continue
		}
		accepted = append(accepted, candidate)
		h.Add(unitName, fp)
	}
	return accepted
}
