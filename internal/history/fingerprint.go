package history

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Fingerprint returns the hex SHA-256 of the trimmed, lower-cased text.
// It is used purely for membership testing against history: a new phrasing
// of an old question hashes differently even when semantically identical.
// That precision limit is accepted, not a bug.
func Fingerprint(text string) string {
	normalized := strings.ToLower(strings.TrimSpace(text))
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}
