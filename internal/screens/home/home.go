package home

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
	"github.com/gh1224/kanaflash/internal/screens/review"
	"github.com/gh1224/kanaflash/internal/screens/writing"
	"github.com/gh1224/kanaflash/internal/session"
	"github.com/gh1224/kanaflash/internal/store"
	"github.com/gh1224/kanaflash/internal/ui/components"
	"github.com/gh1224/kanaflash/internal/ui/layout"
	"github.com/gh1224/kanaflash/internal/ui/theme"
)

// pickerMode selects what the kana picker launches on confirm.
type pickerMode int

const (
	pickQuiz pickerMode = iota
	pickWriting
)

// HomeScreen is the main menu: script and category toggles plus actions.
type HomeScreen struct {
	mistakes  *store.MistakeRepo
	mnemonics *mnemonic.Service

	scripts    map[kana.Script]bool
	categories map[kana.Category]bool
	menu       components.Menu
	notice     string

	pickerOpen bool
	pickerKind pickerMode
	pool       []kana.Entry
	grid       components.KanaGrid
	filter     components.TextInput
	filtering  bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.ModalHost = (*HomeScreen)(nil)

// New creates the home screen. Hiragana basic is selected by default.
func New(mistakes *store.MistakeRepo, mnemonics *mnemonic.Service) *HomeScreen {
	h := &HomeScreen{
		mistakes:  mistakes,
		mnemonics: mnemonics,
		scripts: map[kana.Script]bool{
			kana.Hiragana: true,
		},
		categories: map[kana.Category]bool{
			kana.Basic: true,
		},
	}
	h.rebuildMenu(0)
	return h
}

func (h *HomeScreen) rebuildMenu(selected int) {
	items := []components.MenuItem{
		{Label: toggleLabel("Hiragana", h.scripts[kana.Hiragana]), Action: h.toggleScript(kana.Hiragana)},
		{Label: toggleLabel("Katakana", h.scripts[kana.Katakana]), Action: h.toggleScript(kana.Katakana)},
		{Label: toggleLabel("Basic", h.categories[kana.Basic]), Action: h.toggleCategory(kana.Basic)},
		{Label: toggleLabel("Dakuten", h.categories[kana.Dakuten]), Action: h.toggleCategory(kana.Dakuten)},
		{Label: toggleLabel("Yōon", h.categories[kana.Youon]), Action: h.toggleCategory(kana.Youon)},
		{Label: "START QUIZ", Hint: h.poolHint(), Action: h.openPicker(pickQuiz)},
		{Label: "WRITING PRACTICE", Action: h.openPicker(pickWriting)},
		{
			Label:    fmt.Sprintf("REVIEW MISTAKES (%d)", h.mistakes.Len()),
			Disabled: h.mistakes.Len() == 0,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: review.New(h.mistakes, h.mnemonics),
					}
				}
			},
		},
		{Label: "QUIT", Action: func() tea.Cmd { return tea.Quit }},
	}
	h.menu = components.NewMenu(items)
	if selected >= 0 && selected < len(items) && !items[selected].Disabled {
		h.menu.Selected = selected
	}
}

func toggleLabel(name string, on bool) string {
	if on {
		return "[✓] " + name
	}
	return "[ ] " + name
}

func (h *HomeScreen) poolHint() string {
	n := len(kana.SelectPool(kana.Catalog, h.scripts, h.categories))
	return fmt.Sprintf("%d characters", n)
}

func (h *HomeScreen) toggleScript(s kana.Script) func() tea.Cmd {
	return func() tea.Cmd {
		h.scripts[s] = !h.scripts[s]
		h.notice = ""
		h.rebuildMenu(h.menu.Selected)
		return nil
	}
}

func (h *HomeScreen) toggleCategory(c kana.Category) func() tea.Cmd {
	return func() tea.Cmd {
		h.categories[c] = !h.categories[c]
		h.notice = ""
		h.rebuildMenu(h.menu.Selected)
		return nil
	}
}

// openPicker opens the character picker over the current pool.
func (h *HomeScreen) openPicker(kind pickerMode) func() tea.Cmd {
	return func() tea.Cmd {
		pool := kana.SelectPool(kana.Catalog, h.scripts, h.categories)
		if len(pool) == 0 {
			h.notice = "Select at least one script and one category first."
			return nil
		}
		h.pool = pool
		h.pickerKind = kind
		h.pickerOpen = true
		h.filtering = false
		h.grid = components.NewKanaGrid(pool, 8)
		h.filter = components.NewTextInput("romaji filter", false, 4)
		h.filter.Reset()
		h.notice = ""
		return nil
	}
}

// ModalOpen reports whether the picker is showing.
func (h *HomeScreen) ModalOpen() bool {
	return h.pickerOpen
}

// CloseModal dismisses the picker without starting anything.
func (h *HomeScreen) CloseModal() tea.Cmd {
	if h.filtering {
		h.filtering = false
		h.filter.Reset()
		h.grid.SetFilter("")
		return nil
	}
	h.pickerOpen = false
	return nil
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.pickerOpen {
		if h.filtering {
			return []layout.KeyHint{
				{Key: "Enter", Description: "Apply filter"},
				{Key: "Esc", Description: "Clear"},
			}
		}
		return []layout.KeyHint{
			{Key: "Space", Description: "Toggle"},
			{Key: "A/N", Description: "All/None"},
			{Key: "/", Description: "Filter"},
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if h.pickerOpen {
		return h.updatePicker(msg)
	}

	// Refresh the mistake count in case a review just changed it.
	if _, ok := msg.(tea.KeyMsg); ok {
		h.rebuildMenu(h.menu.Selected)
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) updatePicker(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	if h.filtering {
		switch kmsg.String() {
		case "enter":
			h.filtering = false
		default:
			var cmd tea.Cmd
			h.filter, cmd = h.filter.Update(msg)
			h.grid.SetFilter(h.filter.Value())
			return h, cmd
		}
		return h, nil
	}

	switch kmsg.String() {
	case "/":
		h.filtering = true
		return h, h.filter.Init()
	case "enter":
		return h.startFromPicker()
	default:
		var cmd tea.Cmd
		h.grid, cmd = h.grid.Update(msg)
		return h, cmd
	}
}

// startFromPicker launches the quiz or writing screen over the selection.
func (h *HomeScreen) startFromPicker() (screen.Screen, tea.Cmd) {
	deck := kana.ByID(h.pool, h.grid.Selected())
	if len(deck) == 0 {
		return h, nil
	}
	h.pickerOpen = false

	switch h.pickerKind {
	case pickWriting:
		return h, func() tea.Msg {
			return router.PushScreenMsg{Screen: writing.New(deck)}
		}
	default:
		return h, func() tea.Msg {
			return router.PushScreenMsg{
				Screen: quiz.New(h.mistakes, h.mnemonics, deck, "Quiz"),
			}
		}
	}
}

func (h *HomeScreen) View(width, height int) string {
	if h.pickerOpen {
		return h.viewPicker(width, height)
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("あ  KanaFlash  ア"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("Japanese kana flashcards"))
	b.WriteString("\n\n")
	b.WriteString(h.menu.View())

	if h.notice != "" {
		b.WriteString("\n" + theme.Incorrect.Render(h.notice))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (h *HomeScreen) viewPicker(width, height int) string {
	title := "Pick characters for the quiz"
	if h.pickerKind == pickWriting {
		title = "Pick characters to practice writing"
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render(title))
	b.WriteString("\n\n")
	b.WriteString(h.grid.View())
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(
		fmt.Sprintf("%d of %d selected", h.grid.SelectedCount(), len(h.pool))))
	if h.filtering || h.filter.Value() != "" {
		b.WriteString("\n\n" + theme.Body.Render("filter: ") + h.filter.View())
	}

	box := theme.Modal.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

var _ session.MistakeSet = (*store.MistakeRepo)(nil)
