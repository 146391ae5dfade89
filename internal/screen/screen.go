package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/gh1224/kanaflash/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// ModalHost is an optional interface for screens that show a modal
// overlay. Esc closes an open modal instead of leaving the screen.
type ModalHost interface {
	// ModalOpen reports whether a modal overlay is currently shown.
	ModalOpen() bool

	// CloseModal dismisses the overlay.
	CloseModal() tea.Cmd
}
