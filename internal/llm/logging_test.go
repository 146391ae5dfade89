package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/gh1224/kanaflash/internal/store"
)

type fakeEventRepo struct {
	events []store.LLMRequestEventData
	err    error
}

func (f *fakeEventRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, data)
	return nil
}

func (f *fakeEventRepo) QueryLLMEvents(_ context.Context, _ int) ([]store.LLMEvent, error) {
	return nil, nil
}

func TestLogging_RecordsSuccess(t *testing.T) {
	repo := &fakeEventRepo{}
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"mnemonic":"a"}`)},
	)
	p := WithLogging(mock, repo)

	ctx := WithPurpose(context.Background(), "mnemonic")
	ctx = WithSessionID(ctx, "sess-1")

	if _, err := p.Generate(ctx, Request{Prompt: "hello"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if !ev.Success {
		t.Fatal("expected success event")
	}
	if ev.Purpose != "mnemonic" || ev.SessionID != "sess-1" {
		t.Fatalf("context labels not recorded: %+v", ev)
	}
	if ev.InputTokens != 10 || ev.OutputTokens != 20 {
		t.Fatalf("token counts not recorded: %+v", ev)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	repo := &fakeEventRepo{}
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	p := WithLogging(mock, repo)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Success {
		t.Fatal("expected failure event")
	}
	if ev.ErrorMessage == "" {
		t.Fatal("expected error message")
	}
	if ev.Purpose != "unknown" {
		t.Fatalf("expected unknown purpose, got %q", ev.Purpose)
	}
}

func TestLogging_RepoErrorDoesNotFailRequest(t *testing.T) {
	repo := &fakeEventRepo{err: errors.New("disk full")}
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"mnemonic":"a"}`)},
	)
	p := WithLogging(mock, repo)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"mnemonic":"a"}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
}
