package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestEventRepo_AppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{RunID: "run-1", Provider: "groq", Model: "llama-3.1-8b-instant", Purpose: "one-mark", InputTokens: 100, OutputTokens: 50, LatencyMs: 300, Success: true},
		{RunID: "run-1", Provider: "groq", Model: "llama-3.1-8b-instant", Purpose: "six-mark", InputTokens: 200, OutputTokens: 80, LatencyMs: 500, Success: true},
		{RunID: "run-2", Provider: "groq", Model: "llama-3.1-8b-instant", Purpose: "one-mark", Success: false, ErrorMessage: "rate limited"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 events, got %d", len(all))
	}
	// Newest first.
	if all[0].Purpose != "one-mark" || all[0].Success {
		t.Errorf("unexpected first event: %+v", all[0])
	}

	byRun, err := repo.QueryLLMEvents(ctx, QueryOpts{RunID: "run-1"})
	if err != nil {
		t.Fatalf("query by run: %v", err)
	}
	if len(byRun) != 2 {
		t.Fatalf("expected 2 events for run-1, got %d", len(byRun))
	}

	byPurpose, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "six-mark", Limit: 1})
	if err != nil {
		t.Fatalf("query by purpose: %v", err)
	}
	if len(byPurpose) != 1 || byPurpose[0].InputTokens != 200 {
		t.Fatalf("unexpected purpose query result: %+v", byPurpose)
	}
}

func TestEventRepo_GetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "one-mark",
		Success: true, RequestBody: "[system]\nprompt", ResponseBody: "Q1. text",
	}
	if err := repo.AppendLLMRequest(ctx, data); err != nil {
		t.Fatalf("append: %v", err)
	}

	e, err := repo.GetLLMEvent(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil {
		t.Fatal("expected event 1")
	}
	if e.RequestBody != data.RequestBody || e.ResponseBody != data.ResponseBody {
		t.Errorf("bodies not round-tripped: %+v", e)
	}

	missing, err := repo.GetLLMEvent(ctx, 999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing event")
	}
}

func TestEventRepo_UsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "groq", Model: "llama-3.1-8b-instant", Purpose: "twelve-mark",
			InputTokens: 100, OutputTokens: 40, LatencyMs: 200, Success: true,
		})
	}
	repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "one-mark",
		InputTokens: 10, OutputTokens: 5, LatencyMs: 100, Success: true,
	})

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("expected 2 purposes, got %d", len(byPurpose))
	}
	if byPurpose[0].Key != "twelve-mark" || byPurpose[0].Calls != 3 || byPurpose[0].InputTokens != 300 {
		t.Errorf("unexpected top purpose: %+v", byPurpose[0])
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("expected 2 models, got %d", len(byModel))
	}
}
