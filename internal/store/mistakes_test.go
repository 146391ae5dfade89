package store

import (
	"path/filepath"
	"sort"
	"testing"
)

func TestMistakesAddRemoveContains(t *testing.T) {
	m := openTestStore(t).Mistakes()

	if err := m.Add("hiragana_basic_0"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := m.Add("hiragana_basic_0"); err != nil {
		t.Fatalf("duplicate add: %v", err)
	}
	if m.Len() != 1 {
		t.Errorf("len = %d after duplicate add, want 1", m.Len())
	}
	if !m.Contains("hiragana_basic_0") {
		t.Error("Contains = false for added id")
	}

	if err := m.Remove("hiragana_basic_0"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if m.Contains("hiragana_basic_0") || m.Len() != 0 {
		t.Error("id still present after remove")
	}
	if err := m.Remove("hiragana_basic_0"); err != nil {
		t.Fatalf("remove of absent id: %v", err)
	}
}

func TestMistakesRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kana.db")

	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	ids := []string{"katakana_youon_3", "hiragana_basic_12", "hiragana_dakuten_7"}
	for _, id := range ids {
		if err := s.Mistakes().Add(id); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()

	got := s2.Mistakes().All()
	sort.Strings(got)
	want := append([]string(nil), ids...)
	sort.Strings(want)
	if len(got) != len(want) {
		t.Fatalf("reloaded %d ids, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("reloaded[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMistakesCorruptRecordYieldsEmptySet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kana.db")

	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.DB().Exec(
		`INSERT INTO records (name, value) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value`,
		"mistakes", "{not json"); err != nil {
		t.Fatal(err)
	}
	s.Close()

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("open with corrupt record: %v", err)
	}
	defer s2.Close()

	if s2.Mistakes().Len() != 0 {
		t.Errorf("corrupt record produced %d ids, want empty set", s2.Mistakes().Len())
	}

	// The set must be usable (and persistable) after recovery.
	if err := s2.Mistakes().Add("hiragana_basic_1"); err != nil {
		t.Fatalf("add after recovery: %v", err)
	}
}

func TestMistakesClear(t *testing.T) {
	m := openTestStore(t).Mistakes()
	for _, id := range []string{"a", "b", "c"} {
		if err := m.Add(id); err != nil {
			t.Fatal(err)
		}
	}
	if err := m.Clear(); err != nil {
		t.Fatal(err)
	}
	if m.Len() != 0 {
		t.Errorf("len = %d after clear, want 0", m.Len())
	}
}

func TestMistakesInsertionOrder(t *testing.T) {
	m := openTestStore(t).Mistakes()
	ids := []string{"c", "a", "b"}
	for _, id := range ids {
		if err := m.Add(id); err != nil {
			t.Fatal(err)
		}
	}
	got := m.All()
	for i := range ids {
		if got[i] != ids[i] {
			t.Errorf("All()[%d] = %q, want %q (insertion order)", i, got[i], ids[i])
		}
	}
}
