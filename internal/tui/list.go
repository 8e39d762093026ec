package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// linesPerItem is the number of terminal lines each list entry occupies.
const linesPerItem = 2

// adjustListScroll keeps the cursor inside the visible window.
func (m *model) adjustListScroll() {
	rows := m.panelHeight() / linesPerItem
	if rows < 1 {
		rows = 1
	}
	if m.cursor < m.listOffset {
		m.listOffset = m.cursor
	}
	if m.cursor >= m.listOffset+rows {
		m.listOffset = m.cursor - rows + 1
	}
}

// renderList renders the left panel with scrolling.
func (m model) renderList(width, height int) string {
	if len(m.visible) == 0 {
		return lipgloss.NewStyle().
			Foreground(colorDim).
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render("No chapters")
	}

	var lines []string
	for pos, idx := range m.visible {
		if pos < m.listOffset {
			continue
		}
		if len(lines)+linesPerItem > height {
			break
		}
		lines = append(lines, formatItemLines(m.items[idx], width, pos == m.cursor)...)
	}

	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}

	return strings.Join(lines, "\n")
}

// formatItemLines formats a list entry as two lines:
//
//	line 1: [>] title
//	line 2:     meta (dimmed)
func formatItemLines(item Item, width int, selected bool) []string {
	title := strings.ReplaceAll(item.Title, "\n", " ")
	titleMax := width - 2
	if titleMax < 0 {
		titleMax = 0
	}
	if runewidth.StringWidth(title) > titleMax {
		title = runewidth.Truncate(title, titleMax, "")
	}

	var line1 string
	if selected {
		line1 = styleListSelected.Render("> ") + styleListNormal.Render(title)
	} else {
		line1 = "  " + styleListNormal.Render(title)
	}

	meta := strings.ReplaceAll(item.Meta, "\n", " ")
	metaMax := width - 4
	if metaMax < 0 {
		metaMax = 0
	}
	if runewidth.StringWidth(meta) > metaMax {
		meta = runewidth.Truncate(meta, metaMax, "")
	}
	metaStyle := styleMeta
	if item.Degraded {
		metaStyle = styleDegraded
	}
	line2 := "    " + metaStyle.Render(meta)

	return []string{line1, line2}
}
