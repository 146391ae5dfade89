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
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db handle")
	}
	if s.Mistakes() == nil {
		t.Fatal("expected non-nil mistake repo")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		if err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got); err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i, purpose := range []string{"mnemonic", "mnemonic", "debug"} {
		err := s.EventRepo().AppendLLMRequest(ctx, LLMRequestEventData{
			SessionID:   "sess-1",
			Purpose:     purpose,
			Provider:    "mock",
			Model:       "mock",
			InputTokens: 10 + i,
			Success:     true,
		})
		if err != nil {
			t.Fatalf("append event %d: %v", i, err)
		}
	}

	events, err := s.EventRepo().QueryLLMEvents(ctx, 2)
	if err != nil {
		t.Fatalf("query events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	// Newest first.
	if events[0].Purpose != "debug" {
		t.Errorf("events[0].Purpose = %q, want debug", events[0].Purpose)
	}
	if !events[0].Success {
		t.Error("expected success flag to round-trip")
	}
}
