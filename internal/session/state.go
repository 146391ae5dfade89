package session

import "github.com/gh1224/kanaflash/internal/kana"

// Stats counts graded cards within one quiz session.
type Stats struct {
	Correct   int
	Incorrect int
}

// State is the runtime state of one quiz session. It exists only between
// Start and the summary (or abandonment); the engine discards it on every
// exit path.
type State struct {
	// Deck is the shuffled working sequence for this session.
	Deck []kana.Entry

	// Position indexes the current card. Always in [0, len(Deck)) while
	// the session is active.
	Position int

	// Revealed is true once the answer for the current card is shown.
	// Grading requires it.
	Revealed bool

	// Stats holds the grades recorded so far.
	Stats Stats
}

// Current returns the card at the cursor.
func (s *State) Current() kana.Entry {
	return s.Deck[s.Position]
}

// Graded returns the number of cards graded so far.
func (s *State) Graded() int {
	return s.Stats.Correct + s.Stats.Incorrect
}
