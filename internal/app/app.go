package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/gh1224/kanaflash/internal/mnemonic"
	"github.com/gh1224/kanaflash/internal/router"
	"github.com/gh1224/kanaflash/internal/screen"
	"github.com/gh1224/kanaflash/internal/screens/home"
	"github.com/gh1224/kanaflash/internal/store"
	"github.com/gh1224/kanaflash/internal/ui/layout"
)

// Options carries the dependencies the TUI needs.
type Options struct {
	Mistakes  *store.MistakeRepo
	Mnemonics *mnemonic.Service
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	mistakes *store.MistakeRepo
	width    int
	height   int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	return AppModel{
		router:   router.New(home.New(opts.Mistakes, opts.Mnemonics)),
		mistakes: opts.Mistakes,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// An open modal swallows Esc before any navigation happens.
			if host, ok := m.router.Active().(screen.ModalHost); ok && host.ModalOpen() {
				return m, host.CloseModal()
			}
			// Otherwise the active screen decides what Esc means.
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	mistakeCount := 0
	if m.mistakes != nil {
		mistakeCount = m.mistakes.Len()
	}
	header := layout.RenderHeader(title, mistakeCount, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hinter, ok := active.(screen.KeyHintProvider); ok {
		if hints := hinter.KeyHints(); len(hints) > 0 {
			footerHints = append(hints, footerHints...)
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
