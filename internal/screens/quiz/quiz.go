package quiz

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/google/uuid"

	"github.com/gh1224/kanaflash/internal/kana"
	"github.com/gh1224/kanaflash/internal/llm"
	"github.com/gh1224/kanaflash/internal/mnemonic"
	"github.com/gh1224/kanaflash/internal/router"
	"github.com/gh1224/kanaflash/internal/screen"
	"github.com/gh1224/kanaflash/internal/screens/summary"
	"github.com/gh1224/kanaflash/internal/session"
	"github.com/gh1224/kanaflash/internal/ui/components"
	"github.com/gh1224/kanaflash/internal/ui/layout"
	"github.com/gh1224/kanaflash/internal/ui/theme"
)

// timerTickMsg drives the countdown once per second.
type timerTickMsg time.Time

// mnemonicMsg delivers a generated mnemonic for a specific card.
type mnemonicMsg struct {
	EntryID string
	Text    string
}

// QuizScreen runs a flashcard session over a fixed deck.
type QuizScreen struct {
	engine    *session.Engine
	mnemonics *mnemonic.Service
	deck      []kana.Entry
	label     string
	sessionID string

	mnemonicText string
	notice       string
	quitConfirm  bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen over the given deck. The deck must be non-empty.
func New(mistakes session.MistakeSet, mnemonics *mnemonic.Service, deck []kana.Entry, label string) *QuizScreen {
	return &QuizScreen{
		engine:    session.NewEngine(mistakes),
		mnemonics: mnemonics,
		deck:      deck,
		label:     label,
		sessionID: uuid.New().String(),
	}
}

func (q *QuizScreen) Init() tea.Cmd {
	if !q.engine.Start(q.deck) {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	return tickCmd()
}

func (q *QuizScreen) Title() string {
	return q.label
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	if q.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandon"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if st := q.engine.State(); st != nil && st.Revealed {
		return []layout.KeyHint{
			{Key: "Y", Description: "Got it"},
			{Key: "N", Description: "Missed it"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Space", Description: "Reveal"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return q.handleTick()
	case mnemonicMsg:
		return q.handleMnemonic(msg)
	case tea.KeyMsg:
		return q.handleKey(msg)
	}
	return q, nil
}

func (q *QuizScreen) handleTick() (screen.Screen, tea.Cmd) {
	if !q.engine.Active() {
		return q, nil
	}
	if q.engine.Tick() {
		// Time ran out; the engine has already built the summary.
		return q, q.showSummary()
	}
	return q, tickCmd()
}

func (q *QuizScreen) handleMnemonic(msg mnemonicMsg) (screen.Screen, tea.Cmd) {
	// Discard results for cards we have already moved past.
	if cur, ok := q.engine.Current(); ok && cur.ID == msg.EntryID {
		q.mnemonicText = msg.Text
	}
	return q, nil
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if q.quitConfirm {
		switch key {
		case "y", "Y":
			q.engine.Abandon()
			return q, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			q.quitConfirm = false
		}
		return q, nil
	}

	if !q.engine.Active() {
		return q, nil
	}

	switch key {
	case "esc":
		q.quitConfirm = true
		return q, nil

	case "space", "enter":
		st := q.engine.State()
		if st.Revealed {
			return q, nil
		}
		q.engine.Reveal()
		cur, ok := q.engine.Current()
		if !ok {
			return q, nil
		}
		q.mnemonicText = ""
		return q, q.fetchMnemonic(cur)

	case "y", "Y", "n", "N":
		st := q.engine.State()
		if !st.Revealed {
			return q, nil
		}
		correct := key == "y" || key == "Y"
		// A grade error means only the durable mistake write failed; the
		// session has still advanced (or finished), so act on done either way.
		done, err := q.engine.Grade(correct)
		if err != nil {
			q.notice = "Couldn't save your tricky list."
		} else {
			q.notice = ""
		}
		q.mnemonicText = ""
		if done {
			return q, q.showSummary()
		}
		return q, nil
	}

	return q, nil
}

// fetchMnemonic asks the LLM for a memory aid asynchronously.
func (q *QuizScreen) fetchMnemonic(entry kana.Entry) tea.Cmd {
	svc := q.mnemonics
	sessionID := q.sessionID
	return func() tea.Msg {
		ctx := llm.WithPurpose(context.Background(), "mnemonic")
		ctx = llm.WithSessionID(ctx, sessionID)
		return mnemonicMsg{
			EntryID: entry.ID,
			Text:    svc.Generate(ctx, entry),
		}
	}
}

func (q *QuizScreen) showSummary() tea.Cmd {
	sum := q.engine.Summary()
	return func() tea.Msg {
		// Replace so Esc from the summary goes home, not back into the quiz.
		return router.ReplaceScreenMsg{Screen: summary.New(sum)}
	}
}

func (q *QuizScreen) View(width, height int) string {
	if q.quitConfirm {
		return renderQuitConfirm(width, height)
	}

	st := q.engine.State()
	if st == nil {
		return ""
	}

	cur, ok := q.engine.Current()
	if !ok {
		return ""
	}

	var sections []string

	// Timer bar.
	remaining := q.engine.Remaining()
	initial := q.engine.Initial()
	percent := 0.0
	if initial > 0 {
		percent = float64(remaining) / float64(initial)
	}
	bar := components.ProgressBar{
		Label:   fmt.Sprintf("⏱ %s", session.FormatSeconds(remaining)),
		Percent: percent,
		Width:   min(width-8, 60),
		Low:     initial > 0 && remaining*4 <= initial,
	}
	sections = append(sections, bar.View())

	// Progress and score line.
	sections = append(sections, theme.Subtitle.Render(fmt.Sprintf(
		"Card %d of %d   •   %s %d   %s %d",
		st.Position+1, len(st.Deck),
		theme.Correct.Render("✓"), st.Stats.Correct,
		theme.Incorrect.Render("✗"), st.Stats.Incorrect,
	)))

	if q.notice != "" {
		sections = append(sections, theme.Incorrect.Render(q.notice))
	}

	// The card itself.
	card := theme.Kana.Render(bigGlyph(cur.Char))
	if st.Revealed {
		card += "\n\n" + theme.Romaji.Render(cur.Romaji)
		mn := q.mnemonicText
		if mn == "" {
			mn = "Thinking of a mnemonic..."
		}
		card += "\n\n" + theme.Hint.Width(min(width-16, 56)).Align(lipgloss.Center).Render(mn)
	} else {
		card += "\n\n" + theme.Hint.Render("Press Space to reveal")
	}
	sections = append(sections, theme.Card.Width(min(width-8, 64)).Align(lipgloss.Center).Render(card))

	content := ""
	for i, s := range sections {
		if i > 0 {
			content += "\n\n"
		}
		content += s
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func renderQuitConfirm(width, height int) string {
	box := theme.Modal.Render(
		theme.Body.Render("Abandon this session?") + "\n\n" +
			theme.Hint.Render("Progress and stats will be discarded.") + "\n\n" +
			theme.Selected.Render("  Y ") + theme.Body.Render("yes") + "      " +
			theme.Selected.Render("  N ") + theme.Body.Render("no"),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// bigGlyph pads the kana so it reads as the centerpiece of the card.
func bigGlyph(char string) string {
	return "　" + char + "　"
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
