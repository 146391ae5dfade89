package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/gh1224/kanaflash/internal/router"
	"github.com/gh1224/kanaflash/internal/screen"
	"github.com/gh1224/kanaflash/internal/session"
	"github.com/gh1224/kanaflash/internal/ui/layout"
	"github.com/gh1224/kanaflash/internal/ui/theme"
)

// SummaryScreen displays the end-of-session results.
type SummaryScreen struct {
	summary *session.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *session.Summary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "space":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	headline := "Session complete!"
	if sum.Unanswered > 0 {
		headline = "Time's up!"
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render(headline))
	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.Render(
		fmt.Sprintf("Time taken: %s", session.FormatSeconds(sum.TimeTaken))))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).
		Render(strings.Repeat("─", min(width-12, 44)))
	b.WriteString(divider)
	b.WriteString("\n\n")

	rows := []struct {
		label string
		value string
		style lipgloss.Style
	}{
		{"Cards", fmt.Sprintf("%d", sum.DeckSize), theme.Body},
		{"Correct", fmt.Sprintf("%d", sum.Correct), theme.Correct},
		{"Incorrect", fmt.Sprintf("%d", sum.Incorrect), theme.Incorrect},
		{"Unanswered", fmt.Sprintf("%d", sum.Unanswered), theme.Hint},
	}
	for _, r := range rows {
		label := theme.Hint.Render(fmt.Sprintf("%-12s", r.label))
		b.WriteString(label + r.style.Render(r.value) + "\n")
	}

	if sum.DeckSize > 0 {
		accuracy := float64(sum.Correct) / float64(sum.DeckSize) * 100
		b.WriteString("\n")
		b.WriteString(theme.Body.Render(fmt.Sprintf("Accuracy: %.0f%%", accuracy)))
	}

	card := theme.Card.Align(lipgloss.Center).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
