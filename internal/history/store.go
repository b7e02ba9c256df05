package history

import "context"

// History maps a unit short name to the ordered list of question
// fingerprints seen for that unit across all past runs of one tier.
// Growth is unbounded; there is no eviction.
type History map[string][]string

// Contains reports whether the unit's list already holds the fingerprint.
func (h History) Contains(unitName, fingerprint string) bool {
	for _, fp := range h[unitName] {
		if fp == fingerprint {
			return true
		}
	}
	return false
}

// Add appends a fingerprint to the unit's list.
func (h History) Add(unitName, fingerprint string) {
	h[unitName] = append(h[unitName], fingerprint)
}

// Store persists one tier's history. The pipeline loads the full document
// before processing a unit and saves it back after; a single writer is
// assumed. Concurrent unit processing would need mutual exclusion around
// that read-modify-write cycle.
type Store interface {
	// Load reads the full history. A missing backing document is an empty
	// history, not an error.
	Load(ctx context.Context) (History, error)

	// Save writes the full history back.
	Save(ctx context.Context, h History) error
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	history History
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{history: History{}}
}

func (m *MemStore) Load(_ context.Context) (History, error) {
	// Copy so callers can't mutate the stored state without Save.
	out := History{}
	for k, v := range m.history {
		out[k] = append([]string(nil), v...)
	}
	return out, nil
}

func (m *MemStore) Save(_ context.Context, h History) error {
	m.history = h
	return nil
}
