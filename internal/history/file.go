package history

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Default file names, one independent store per tier.
const (
	OneMarkFile    = "question_history.json"
	SixMarkFile    = "six_mark_history.json"
	TwelveMarkFile = "twelve_mark_history.json"
)

// FileStore persists a tier's history as a single JSON document mapping
// unit short names to fingerprint lists. The document is validated against
// a schema on load so a corrupted file fails loudly instead of silently
// resetting history.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the JSON document at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load(_ context.Context) (History, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return History{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read history %s: %w", s.path, err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse history %s: %w", s.path, err)
	}
	if err := documentSchema().Validate(parsed); err != nil {
		return nil, fmt.Errorf("invalid history document %s: %w", s.path, err)
	}

	var h History
	if err := json.Unmarshal(raw, &h); err != nil {
		return nil, fmt.Errorf("decode history %s: %w", s.path, err)
	}
	return h, nil
}

func (s *FileStore) Save(_ context.Context, h History) error {
	raw, err := json.Marshal(h)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("write history %s: %w", s.path, err)
	}
	return nil
}

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
)

// documentSchema compiles the history document schema once: an object whose
// values are arrays of fingerprint strings.
func documentSchema() *jsonschema.Schema {
	schemaOnce.Do(func() {
		def := map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://history.json", def); err != nil {
			panic(fmt.Sprintf("add history schema: %v", err))
		}
		s, err := c.Compile("schema://history.json")
		if err != nil {
			panic(fmt.Sprintf("compile history schema: %v", err))
		}
		compiledSchema = s
	})
	return compiledSchema
}
