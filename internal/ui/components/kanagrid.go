package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/gh1224/kanaflash/internal/kana"
	"github.com/gh1224/kanaflash/internal/ui/theme"
)

// KanaGrid is a multi-select grid of kana characters. Supports cursor
// movement, per-cell toggling, select-all/none, and a romaji filter.
type KanaGrid struct {
	Entries []kana.Entry
	Columns int

	cursor   int             // index into visible
	visible  []int           // indexes into Entries matching the filter
	selected map[string]bool // entry ID -> selected
	filter   string
}

// NewKanaGrid creates a grid over the given entries with everything selected.
func NewKanaGrid(entries []kana.Entry, columns int) KanaGrid {
	if columns < 1 {
		columns = 10
	}
	g := KanaGrid{
		Entries:  entries,
		Columns:  columns,
		selected: make(map[string]bool, len(entries)),
	}
	for _, e := range entries {
		g.selected[e.ID] = true
	}
	g.refilter()
	return g
}

// SetFilter restricts visible cells to entries whose romaji starts with q.
// The cursor resets to the first visible cell.
func (g *KanaGrid) SetFilter(q string) {
	g.filter = strings.ToLower(strings.TrimSpace(q))
	g.refilter()
}

func (g *KanaGrid) refilter() {
	g.visible = g.visible[:0]
	for i, e := range g.Entries {
		if g.filter == "" || strings.HasPrefix(e.Romaji, g.filter) {
			g.visible = append(g.visible, i)
		}
	}
	g.cursor = 0
}

// Update handles cursor movement and selection keys.
func (g KanaGrid) Update(msg tea.Msg) (KanaGrid, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(g.visible) == 0 {
		return g, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if g.cursor > 0 {
			g.cursor--
		}
	case "right", "l":
		if g.cursor < len(g.visible)-1 {
			g.cursor++
		}
	case "up", "k":
		if g.cursor-g.Columns >= 0 {
			g.cursor -= g.Columns
		}
	case "down", "j":
		if g.cursor+g.Columns < len(g.visible) {
			g.cursor += g.Columns
		}
	case "space":
		e := g.Entries[g.visible[g.cursor]]
		g.selected[e.ID] = !g.selected[e.ID]
	case "a":
		for _, i := range g.visible {
			g.selected[g.Entries[i].ID] = true
		}
	case "n":
		for _, i := range g.visible {
			g.selected[g.Entries[i].ID] = false
		}
	}

	return g, nil
}

// Selected returns the IDs of selected entries in grid order.
func (g KanaGrid) Selected() []string {
	ids := make([]string, 0, len(g.Entries))
	for _, e := range g.Entries {
		if g.selected[e.ID] {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

// SelectedCount returns how many entries are selected.
func (g KanaGrid) SelectedCount() int {
	n := 0
	for _, e := range g.Entries {
		if g.selected[e.ID] {
			n++
		}
	}
	return n
}

// VisibleCount returns how many cells pass the current filter.
func (g KanaGrid) VisibleCount() int {
	return len(g.visible)
}

// View renders the grid.
func (g KanaGrid) View() string {
	if len(g.visible) == 0 {
		return theme.Hint.Render("  no characters match the filter")
	}

	var b strings.Builder
	for row := 0; row*g.Columns < len(g.visible); row++ {
		var cells []string
		for col := 0; col < g.Columns; col++ {
			idx := row*g.Columns + col
			if idx >= len(g.visible) {
				break
			}
			e := g.Entries[g.visible[idx]]

			cell := fmt.Sprintf("%s %s", e.Char, e.Romaji)
			style := lipgloss.NewStyle().Foreground(theme.TextDim)
			if g.selected[e.ID] {
				style = theme.Toggled
			}
			if idx == g.cursor {
				style = style.Bold(true).Reverse(true)
			}
			cells = append(cells, style.Width(7).Render(cell))
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteString("\n")
	}
	return b.String()
}
