package review

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/gh1224/kanaflash/internal/kana"
	"github.com/gh1224/kanaflash/internal/mnemonic"
	"github.com/gh1224/kanaflash/internal/router"
	"github.com/gh1224/kanaflash/internal/screen"
	"github.com/gh1224/kanaflash/internal/screens/quiz"
	"github.com/gh1224/kanaflash/internal/store"
	"github.com/gh1224/kanaflash/internal/ui/layout"
	"github.com/gh1224/kanaflash/internal/ui/theme"
)

// ReviewScreen lists tricky characters and can start a review session
// over them.
type ReviewScreen struct {
	mistakes  *store.MistakeRepo
	mnemonics *mnemonic.Service

	entries []kana.Entry
	cursor  int
	notice  string
}

var _ screen.Screen = (*ReviewScreen)(nil)
var _ screen.KeyHintProvider = (*ReviewScreen)(nil)

// New creates a ReviewScreen over the current tricky-character list.
func New(mistakes *store.MistakeRepo, mnemonics *mnemonic.Service) *ReviewScreen {
	r := &ReviewScreen{
		mistakes:  mistakes,
		mnemonics: mnemonics,
	}
	r.reload()
	return r
}

// reload re-derives the entry list from the store, in catalog order.
func (r *ReviewScreen) reload() {
	r.entries = kana.ByID(kana.Catalog, r.mistakes.All())
	if r.cursor >= len(r.entries) {
		r.cursor = len(r.entries) - 1
	}
	if r.cursor < 0 {
		r.cursor = 0
	}
}

func (r *ReviewScreen) Init() tea.Cmd {
	return nil
}

func (r *ReviewScreen) Title() string {
	return "Review"
}

func (r *ReviewScreen) KeyHints() []layout.KeyHint {
	if len(r.entries) == 0 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start review"},
		{Key: "D", Description: "Remove"},
		{Key: "Esc", Description: "Back"},
	}
}

func (r *ReviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	// A review session may have shrunk the list while we were covered.
	r.reload()

	switch kmsg.String() {
	case "esc":
		return r, func() tea.Msg { return router.PopScreenMsg{} }

	case "up", "k":
		if r.cursor > 0 {
			r.cursor--
		}

	case "down", "j":
		if r.cursor < len(r.entries)-1 {
			r.cursor++
		}

	case "d":
		if r.cursor < len(r.entries) {
			// Membership is updated even when the durable write fails.
			if err := r.mistakes.Remove(r.entries[r.cursor].ID); err != nil {
				r.notice = "Couldn't save your tricky list."
			} else {
				r.notice = ""
			}
			r.reload()
		}

	case "enter":
		if len(r.entries) > 0 {
			deck := r.entries
			return r, func() tea.Msg {
				return router.PushScreenMsg{
					Screen: quiz.New(r.mistakes, r.mnemonics, deck, "Review"),
				}
			}
		}
	}

	return r, nil
}

func (r *ReviewScreen) View(width, height int) string {
	if len(r.entries) == 0 {
		msg := theme.Title.Render("Nothing to review!") + "\n\n" +
			theme.Subtitle.Render("Characters you miss during a quiz will show up here.")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render(fmt.Sprintf("Tricky characters (%d)", len(r.entries))))
	b.WriteString("\n\n")

	for i, e := range r.entries {
		line := fmt.Sprintf("%s  %-4s %s · %s", e.Char, e.Romaji, e.Script, e.Category)
		if i == r.cursor {
			b.WriteString(theme.Selected.Render("  ▸ " + line))
		} else {
			b.WriteString(theme.Unselected.Render("    " + line))
		}
		b.WriteString("\n")
	}

	if r.notice != "" {
		b.WriteString("\n" + theme.Incorrect.Render(r.notice))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
