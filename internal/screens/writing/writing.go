package writing

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/gh1224/kanaflash/internal/kana"
	"github.com/gh1224/kanaflash/internal/router"
	"github.com/gh1224/kanaflash/internal/screen"
	"github.com/gh1224/kanaflash/internal/session"
	"github.com/gh1224/kanaflash/internal/ui/components"
	"github.com/gh1224/kanaflash/internal/ui/layout"
	"github.com/gh1224/kanaflash/internal/ui/theme"
)

// WritingScreen steps through a deck one large glyph at a time so the
// learner can copy it on paper. No grading, just a cursor.
type WritingScreen struct {
	cursor *session.Cursor

	jumpOpen bool
	jump     components.TextInput
	jumpErr  string
	done     bool
}

var _ screen.Screen = (*WritingScreen)(nil)
var _ screen.KeyHintProvider = (*WritingScreen)(nil)
var _ screen.ModalHost = (*WritingScreen)(nil)

// New creates a WritingScreen over the deck. The deck must be non-empty.
func New(deck []kana.Entry) *WritingScreen {
	cur, _ := session.NewCursor(deck, 0)
	return &WritingScreen{cursor: cur}
}

func (w *WritingScreen) Init() tea.Cmd {
	if w.cursor == nil {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	return nil
}

func (w *WritingScreen) Title() string {
	return "Writing Practice"
}

func (w *WritingScreen) KeyHints() []layout.KeyHint {
	if w.jumpOpen {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Jump"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	if w.done {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Finish"},
		}
	}
	return []layout.KeyHint{
		{Key: "←/→", Description: "Prev/Next"},
		{Key: "G", Description: "Go to"},
		{Key: "Esc", Description: "Back"},
	}
}

// ModalOpen reports whether the jump prompt is showing.
func (w *WritingScreen) ModalOpen() bool {
	return w.jumpOpen
}

// CloseModal dismisses the jump prompt.
func (w *WritingScreen) CloseModal() tea.Cmd {
	w.jumpOpen = false
	w.jumpErr = ""
	return nil
}

func (w *WritingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return w, nil
	}

	if w.jumpOpen {
		return w.updateJump(msg, kmsg)
	}

	if w.done {
		switch kmsg.String() {
		case "enter", "esc", "space":
			return w, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return w, nil
	}

	switch kmsg.String() {
	case "esc":
		return w, func() tea.Msg { return router.PopScreenMsg{} }

	case "left", "h":
		w.cursor.Prev()

	case "right", "l", "space":
		w.cursor.Next()

	case "enter":
		if w.cursor.AtEnd() {
			w.done = true
		} else {
			w.cursor.Next()
		}

	case "g":
		w.jumpOpen = true
		w.jumpErr = ""
		w.jump = components.NewTextInput(fmt.Sprintf("1-%d", w.cursor.Len()), true, 3)
		return w, w.jump.Init()
	}

	return w, nil
}

func (w *WritingScreen) updateJump(msg tea.Msg, kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "enter":
		n, err := w.jump.NumericValue()
		if err != nil {
			w.jumpErr = "Enter a card number."
			return w, nil
		}
		if jumpErr := w.cursor.JumpTo(n - 1); jumpErr != nil {
			w.jumpErr = fmt.Sprintf("No card %d in this deck.", n)
			return w, nil
		}
		w.jumpOpen = false
		w.jumpErr = ""
		return w, nil
	}

	var cmd tea.Cmd
	w.jump, cmd = w.jump.Update(msg)
	return w, cmd
}

func (w *WritingScreen) View(width, height int) string {
	if w.cursor == nil {
		return ""
	}

	if w.done {
		msg := theme.Title.Render("All done!") + "\n\n" +
			theme.Subtitle.Render(fmt.Sprintf("You practiced %d characters.", w.cursor.Len()))
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
	}

	e := w.cursor.Current()

	card := theme.Kana.Render("　"+e.Char+"　") + "\n\n" +
		theme.Romaji.Render(e.Romaji) + "\n\n" +
		theme.Hint.Render("Copy the character, stroke by stroke.")

	body := theme.Card.Width(min(width-8, 48)).Align(lipgloss.Center).Render(card) +
		"\n\n" + theme.Subtitle.Render(fmt.Sprintf("%d / %d", w.cursor.Position()+1, w.cursor.Len()))

	if w.jumpOpen {
		prompt := theme.Body.Render("Go to card: ") + w.jump.View()
		if w.jumpErr != "" {
			prompt += "\n" + theme.Incorrect.Render(w.jumpErr)
		}
		body += "\n\n" + theme.Modal.Render(prompt)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
