package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

// hungProvider simulates a peer that never answers: it blocks until the
// request context ends.
type hungProvider struct {
	calls int
}

func (p *hungProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	p.calls++
	<-ctx.Done()
	return nil, ctx.Err()
}

func (p *hungProvider) ModelID() string {
	return "hung"
}

func TestWithTimeoutBoundsHungRequest(t *testing.T) {
	p := WithTimeout(&hungProvider{}, 20*time.Millisecond)

	start := time.Now()
	_, err := p.Generate(context.Background(), Request{Prompt: "x"})

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("got %v, want context.DeadlineExceeded", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("request not bounded, took %s", elapsed)
	}
}

func TestWithTimeoutPassesThroughSuccess(t *testing.T) {
	p := WithTimeout(NewMockProvider(MockResponse{Text: "ok"}), time.Minute)

	resp, err := p.Generate(context.Background(), Request{Prompt: "x"})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Text != "ok" {
		t.Errorf("got %q, want %q", resp.Text, "ok")
	}
}

func TestWithTimeoutZeroDisables(t *testing.T) {
	mock := NewMockProvider()
	if p := WithTimeout(mock, 0); p != Provider(mock) {
		t.Error("zero timeout must return the provider unwrapped")
	}
}

func TestWithTimeoutFreshDeadlinePerAttempt(t *testing.T) {
	inner := &hungProvider{}
	p := WithRetry(WithTimeout(inner, 5*time.Millisecond), RetryConfig{
		MaxRetries:  2,
		InitialWait: time.Millisecond,
		MaxWait:     time.Millisecond,
		Multiplier:  1.0,
		Retryable:   func(error) bool { return true },
	})

	_, err := p.Generate(context.Background(), Request{Prompt: "x"})

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("got %v, want context.DeadlineExceeded", err)
	}
	// Every attempt ran to its own deadline instead of the first one
	// killing the whole sequence.
	if inner.calls != 3 {
		t.Errorf("inner called %d times, want 3", inner.calls)
	}
}
