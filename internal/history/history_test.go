package history

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFingerprint_Normalizes(t *testing.T) {
	a := Fingerprint("  What is a compiler?  ")
	b := Fingerprint("what is A COMPILER?")
	if a != b {
		t.Fatal("trim+lower variants must hash identically")
	}
	if a == Fingerprint("What is an interpreter?") {
		t.Fatal("different content must hash differently")
	}
	if len(a) != 64 {
		t.Fatalf("expected hex SHA-256, got %d chars", len(a))
	}
}

func TestHistory_ContainsAndAdd(t *testing.T) {
	h := History{}
	fp := Fingerprint("Q1. What is parsing?")

	if h.Contains("UNIT I", fp) {
		t.Fatal("empty history must not contain anything")
	}
	h.Add("UNIT I", fp)
	if !h.Contains("UNIT I", fp) {
		t.Fatal("added fingerprint not found")
	}
	// Partition keys are independent.
	if h.Contains("UNIT II", fp) {
		t.Fatal("fingerprint leaked across units")
	}
}

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), OneMarkFile))

	h, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(h) != 0 {
		t.Fatalf("expected empty history, got %v", h)
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), SixMarkFile)
	s := NewFileStore(path)
	ctx := context.Background()

	h := History{
		"UNIT I":  {Fingerprint("q one"), Fingerprint("q two")},
		"UNIT II": {Fingerprint("q three")},
	}
	if err := s.Save(ctx, h); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 units, got %d", len(got))
	}
	if len(got["UNIT I"]) != 2 || got["UNIT I"][0] != h["UNIT I"][0] {
		t.Errorf("UNIT I list not preserved: %v", got["UNIT I"])
	}
	// Fingerprint order must survive the round trip.
	if got["UNIT I"][1] != h["UNIT I"][1] {
		t.Error("fingerprint order lost")
	}
}

func TestFileStore_RejectsMalformedDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), TwelveMarkFile)
	if err := os.WriteFile(path, []byte(`{"UNIT I": "not-a-list"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewFileStore(path).Load(context.Background()); err == nil {
		t.Fatal("expected schema validation error")
	}
}

func TestMemStore_LoadCopies(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	h, _ := s.Load(ctx)
	h.Add("UNIT I", "fp-1")

	// Mutation without Save must not leak into the store.
	fresh, _ := s.Load(ctx)
	if fresh.Contains("UNIT I", "fp-1") {
		t.Fatal("unsaved mutation visible")
	}

	if err := s.Save(ctx, h); err != nil {
		t.Fatal(err)
	}
	saved, _ := s.Load(ctx)
	if !saved.Contains("UNIT I", "fp-1") {
		t.Fatal("saved fingerprint missing")
	}
}
