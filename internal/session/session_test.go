package session

import (
	"sort"
	"testing"

	"github.com/gh1224/kanaflash/internal/kana"
)

// memorySet is an in-memory MistakeSet for tests.
type memorySet struct {
	ids map[string]bool
}

func newMemorySet(ids ...string) *memorySet {
	m := &memorySet{ids: make(map[string]bool)}
	for _, id := range ids {
		m.ids[id] = true
	}
	return m
}

func (m *memorySet) Contains(id string) bool { return m.ids[id] }
func (m *memorySet) Add(id string) error     { m.ids[id] = true; return nil }
func (m *memorySet) Remove(id string) error  { delete(m.ids, id); return nil }

func testDeck(n int) []kana.Entry {
	deck := make([]kana.Entry, n)
	for i := range deck {
		deck[i] = kana.Catalog[i]
	}
	return deck
}

func TestStartShufflesSameMultiset(t *testing.T) {
	e := NewEngine(newMemorySet())
	source := testDeck(20)

	if !e.Start(source) {
		t.Fatal("Start rejected a non-empty deck")
	}

	st := e.State()
	if st.Position != 0 || st.Revealed || st.Stats != (Stats{}) {
		t.Errorf("fresh state = %+v, want zeroed", st)
	}

	var wantIDs, gotIDs []string
	for _, en := range source {
		wantIDs = append(wantIDs, en.ID)
	}
	for _, en := range st.Deck {
		gotIDs = append(gotIDs, en.ID)
	}
	sort.Strings(wantIDs)
	sort.Strings(gotIDs)
	if len(wantIDs) != len(gotIDs) {
		t.Fatalf("deck size = %d, want %d", len(gotIDs), len(wantIDs))
	}
	for i := range wantIDs {
		if wantIDs[i] != gotIDs[i] {
			t.Fatalf("deck is not a permutation of the source at %d: %s vs %s", i, gotIDs[i], wantIDs[i])
		}
	}
}

func TestStartDuration(t *testing.T) {
	tests := []struct {
		deckLen int
		want    int
	}{
		{1, 10},
		{2, 10},
		{3, 12},
		{10, 40},
	}
	for _, tt := range tests {
		if got := Duration(tt.deckLen); got != tt.want {
			t.Errorf("Duration(%d) = %d, want %d", tt.deckLen, got, tt.want)
		}
	}

	e := NewEngine(newMemorySet())
	e.Start(testDeck(3))
	if e.Initial() != 12 || e.Remaining() != 12 {
		t.Errorf("timer initial/remaining = %d/%d, want 12/12", e.Initial(), e.Remaining())
	}
}

func TestStartEmptyDeckRejected(t *testing.T) {
	e := NewEngine(newMemorySet())
	if e.Start(nil) {
		t.Fatal("Start accepted an empty deck")
	}
	if e.Active() {
		t.Error("engine active after rejected start")
	}
}

func TestGradeRequiresReveal(t *testing.T) {
	e := NewEngine(newMemorySet())
	e.Start(testDeck(2))

	if _, err := e.Grade(true); err != ErrNotRevealed {
		t.Errorf("Grade before reveal: err = %v, want ErrNotRevealed", err)
	}
}

func TestGradeWithoutSession(t *testing.T) {
	e := NewEngine(newMemorySet())
	if _, err := e.Grade(true); err != ErrNoSession {
		t.Errorf("Grade with no session: err = %v, want ErrNoSession", err)
	}
}

func TestGradeAdvancesAndResetsReveal(t *testing.T) {
	e := NewEngine(newMemorySet())
	e.Start(testDeck(3))

	e.Reveal()
	done, err := e.Grade(true)
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if done {
		t.Fatal("session reported done after first of three cards")
	}

	st := e.State()
	if st.Position != 1 || st.Revealed {
		t.Errorf("position/revealed = %d/%v, want 1/false", st.Position, st.Revealed)
	}
}

func TestCompleteDeckStatsAndMistakes(t *testing.T) {
	set := newMemorySet()
	e := NewEngine(set)
	e.Start(testDeck(4))

	// Miss the first two cards, get the last two right.
	var missed, passed []string
	for i := 0; i < 4; i++ {
		item, _ := e.Current()
		e.Reveal()
		correct := i >= 2
		if correct {
			passed = append(passed, item.ID)
		} else {
			missed = append(missed, item.ID)
		}
		done, err := e.Grade(correct)
		if err != nil {
			t.Fatalf("Grade %d: %v", i, err)
		}
		if done != (i == 3) {
			t.Errorf("Grade %d: done = %v", i, done)
		}
	}

	sum := e.Summary()
	if sum == nil {
		t.Fatal("no summary after completing the deck")
	}
	if sum.Correct != 2 || sum.Incorrect != 2 || sum.Unanswered != 0 {
		t.Errorf("summary = %+v, want 2 correct, 2 incorrect, 0 unanswered", sum)
	}
	if e.Active() {
		t.Error("engine still active after summary")
	}

	for _, id := range missed {
		if !set.Contains(id) {
			t.Errorf("missed id %q not in mistake set", id)
		}
	}
	for _, id := range passed {
		if set.Contains(id) {
			t.Errorf("passed id %q still in mistake set", id)
		}
	}
}

func TestGradeCorrectRemovesFromMistakes(t *testing.T) {
	deck := testDeck(1)
	set := newMemorySet(deck[0].ID)
	e := NewEngine(set)
	e.Start(deck)

	e.Reveal()
	if _, err := e.Grade(true); err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if set.Contains(deck[0].ID) {
		t.Error("correct grade did not remove id from mistake set")
	}
}

func TestGradeCorrectWhenAbsentStaysAbsent(t *testing.T) {
	deck := testDeck(1)
	set := newMemorySet()
	e := NewEngine(set)
	e.Start(deck)

	e.Reveal()
	if _, err := e.Grade(true); err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if set.Contains(deck[0].ID) {
		t.Error("id appeared in mistake set after a correct grade")
	}
}

func TestExpiryMidSession(t *testing.T) {
	e := NewEngine(newMemorySet())
	e.Start(testDeck(3)) // budget 12s

	// Grade two cards correct, then let the clock run out.
	for i := 0; i < 2; i++ {
		e.Reveal()
		if _, err := e.Grade(true); err != nil {
			t.Fatalf("Grade %d: %v", i, err)
		}
		e.Tick()
	}

	expired := false
	for i := 0; i < 20 && !expired; i++ {
		expired = e.Tick()
	}
	if !expired {
		t.Fatal("timer never expired")
	}

	sum := e.Summary()
	if sum == nil {
		t.Fatal("no summary after expiry")
	}
	want := Summary{DeckSize: 3, Correct: 2, Incorrect: 0, Unanswered: 1, TimeTaken: 12}
	if *sum != want {
		t.Errorf("summary = %+v, want %+v", *sum, want)
	}
	if e.Active() {
		t.Error("engine still active after expiry")
	}
}

func TestTickAfterExpiryIsNoop(t *testing.T) {
	e := NewEngine(newMemorySet())
	e.Start(testDeck(1)) // budget 10s

	expirations := 0
	for i := 0; i < 30; i++ {
		if e.Tick() {
			expirations++
		}
	}
	if expirations != 1 {
		t.Errorf("expiry fired %d times, want exactly 1", expirations)
	}
}

func TestAbandonDiscardsEverything(t *testing.T) {
	set := newMemorySet("existing_id")
	e := NewEngine(set)
	e.Start(testDeck(5))
	e.Reveal()

	e.Abandon()

	if e.Active() {
		t.Error("engine still active after abandon")
	}
	if e.Summary() != nil {
		t.Error("abandon produced a summary")
	}
	if !set.Contains("existing_id") || len(set.ids) != 1 {
		t.Error("abandon mutated the mistake set")
	}
	if e.Tick() {
		t.Error("tick after abandon reported expiry")
	}
}

func TestCompletionTimeTaken(t *testing.T) {
	e := NewEngine(newMemorySet())
	e.Start(testDeck(1)) // budget 10s

	e.Tick() // 9s remaining
	e.Tick() // 8s remaining
	e.Reveal()
	done, err := e.Grade(false)
	if err != nil || !done {
		t.Fatalf("Grade: done=%v err=%v", done, err)
	}

	if got := e.Summary().TimeTaken; got != 2 {
		t.Errorf("TimeTaken = %d, want 2", got)
	}
}
