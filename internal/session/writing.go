package session

import (
	"errors"

	"github.com/gh1224/kanaflash/internal/kana"
)

// ErrIndexOutOfRange reports a rejected cursor jump or start index.
var ErrIndexOutOfRange = errors.New("session: index out of range")

// Cursor walks a deck for free writing practice. Unlike the quiz, there is
// no grading, no timer, and the learner may jump to any entry directly.
type Cursor struct {
	deck     []kana.Entry
	position int
}

// NewCursor creates a cursor over deck starting at start. The deck must be
// non-empty and start in range.
func NewCursor(deck []kana.Entry, start int) (*Cursor, error) {
	if start < 0 || start >= len(deck) {
		return nil, ErrIndexOutOfRange
	}
	return &Cursor{deck: deck, position: start}, nil
}

// Current returns the entry under the cursor.
func (c *Cursor) Current() kana.Entry { return c.deck[c.position] }

// Position returns the cursor index.
func (c *Cursor) Position() int { return c.position }

// Len returns the deck length.
func (c *Cursor) Len() int { return len(c.deck) }

// AtEnd reports whether the cursor sits on the last entry.
func (c *Cursor) AtEnd() bool { return c.position == len(c.deck)-1 }

// Next advances the cursor. It returns false, without moving, when already
// at the last entry — the caller treats that as practice complete.
func (c *Cursor) Next() bool {
	if c.AtEnd() {
		return false
	}
	c.position++
	return true
}

// Prev moves the cursor back. A no-op at index 0.
func (c *Cursor) Prev() bool {
	if c.position == 0 {
		return false
	}
	c.position--
	return true
}

// JumpTo sets the cursor directly. Out-of-range requests are rejected, not
// clamped.
func (c *Cursor) JumpTo(i int) error {
	if i < 0 || i >= len(c.deck) {
		return ErrIndexOutOfRange
	}
	c.position = i
	return nil
}
