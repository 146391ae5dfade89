// Package session implements the quiz state machine: deck construction,
// reveal/grade progression, the countdown coupling, and the writing-practice
// cursor.
package session

import (
	"errors"
	"math/rand/v2"

	"github.com/gh1224/kanaflash/internal/kana"
	"github.com/gh1224/kanaflash/internal/timer"
)

// Precondition violations. These signal caller bugs, not recoverable
// runtime conditions; the screens never trigger them through their own flow.
var (
	ErrNoSession   = errors.New("session: no active quiz")
	ErrNotRevealed = errors.New("session: current card not revealed")
)

// MinDuration is the floor for the quiz time budget in seconds.
const MinDuration = 10

// Duration derives the time budget for a deck of the given length.
func Duration(deckLen int) int {
	d := deckLen * 4
	if d < MinDuration {
		d = MinDuration
	}
	return d
}

// MistakeSet is the durable set of entry ids the learner has missed.
// Implementations must keep membership consistent even when the durable
// write fails; the returned error reports persistence trouble only.
type MistakeSet interface {
	Contains(id string) bool
	Add(id string) error
	Remove(id string) error
}

// Engine drives one quiz session at a time against an injected mistake set.
type Engine struct {
	mistakes MistakeSet
	timer    timer.Controller
	state    *State
	summary  *Summary
}

// NewEngine creates an engine backed by the given mistake set.
func NewEngine(mistakes MistakeSet) *Engine {
	return &Engine{mistakes: mistakes}
}

// Start begins a quiz over a uniformly shuffled permutation of source.
// It returns false, with no state change, when source is empty. Any prior
// session state and summary are discarded.
func (e *Engine) Start(source []kana.Entry) bool {
	if len(source) == 0 {
		return false
	}

	deck := make([]kana.Entry, len(source))
	copy(deck, source)
	rand.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	e.state = &State{Deck: deck}
	e.summary = nil
	e.timer.Start(Duration(len(deck)))
	return true
}

// Active reports whether a quiz session is in progress.
func (e *Engine) Active() bool { return e.state != nil }

// State returns the live session state, or nil when idle.
func (e *Engine) State() *State { return e.state }

// Current returns the card at the cursor.
func (e *Engine) Current() (kana.Entry, bool) {
	if e.state == nil {
		return kana.Entry{}, false
	}
	return e.state.Current(), true
}

// Reveal exposes the answer for the current card. A second call, or a call
// with no active session, is a no-op.
func (e *Engine) Reveal() {
	if e.state == nil {
		return
	}
	e.state.Revealed = true
}

// Grade records the learner's self-assessment for the current card and
// advances the session. Requires an active session with the current card
// revealed. Effects, in order: stats update, mistake-set mutation (remove on
// correct, add on incorrect), then advance or finish. A non-nil error with
// done semantics intact means the durable mistake write failed; membership
// and session state are still consistent.
func (e *Engine) Grade(correct bool) (done bool, err error) {
	if e.state == nil {
		return false, ErrNoSession
	}
	if !e.state.Revealed {
		return false, ErrNotRevealed
	}

	item := e.state.Current()
	if correct {
		e.state.Stats.Correct++
		err = e.mistakes.Remove(item.ID)
	} else {
		e.state.Stats.Incorrect++
		if !e.mistakes.Contains(item.ID) {
			err = e.mistakes.Add(item.ID)
		}
	}

	if e.state.Position == len(e.state.Deck)-1 {
		e.finish(e.timer.Initial() - e.timer.Remaining())
		return true, err
	}

	e.state.Position++
	e.state.Revealed = false
	return false, err
}

// Tick consumes one countdown second. When the budget reaches zero it ends
// the session immediately — ungraded cards count as unanswered and the full
// budget is reported as time taken — and returns true. The underlying
// controller guarantees the expiry transition happens at most once.
func (e *Engine) Tick() bool {
	if e.state == nil {
		return false
	}
	if !e.timer.Tick() {
		return false
	}
	e.finish(e.timer.Initial())
	return true
}

// Abandon discards the session with no grading, no mistake mutation, and no
// summary. Safe to call when idle.
func (e *Engine) Abandon() {
	e.timer.Stop()
	e.state = nil
	e.summary = nil
}

// finish stops the timer, builds the summary, and drops the session state.
func (e *Engine) finish(timeTaken int) {
	s := e.state
	e.timer.Stop()
	e.summary = &Summary{
		DeckSize:   len(s.Deck),
		Correct:    s.Stats.Correct,
		Incorrect:  s.Stats.Incorrect,
		Unanswered: len(s.Deck) - s.Graded(),
		TimeTaken:  timeTaken,
	}
	e.state = nil
}

// Summary returns the result of the last completed or expired session, or
// nil if none finished since the last Start/Abandon.
func (e *Engine) Summary() *Summary { return e.summary }

// Remaining returns the seconds left on the session countdown.
func (e *Engine) Remaining() int { return e.timer.Remaining() }

// Initial returns the countdown budget of the current session.
func (e *Engine) Initial() int { return e.timer.Initial() }
