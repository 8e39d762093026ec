package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Item is one entry in the left-hand list: a chapter of the current
// run, or a previously processed file in list mode.
type Item struct {
	Title    string // first list line
	Meta     string // second list line, dimmed
	Preview  string // right panel content
	CopyText string // copied to the clipboard on Enter
	Degraded bool
}

type model struct {
	items       []Item
	visible     []int // indices into items that match the filter
	cursor      int
	listOffset  int
	filterInput textinput.Model
	preview     viewport.Model
	previewIdx  int // items index currently rendered, -1 none
	width       int
	height      int
	ready       bool
	quitting    bool
	copyItem    *Item
}

// Run shows the browser and blocks until it exits. When the user
// presses Enter, the selected item's chapter block is copied to the
// clipboard (or printed when no clipboard is available).
func Run(items []Item) error {
	ti := textinput.New()
	ti.Placeholder = "Filter..."
	ti.Focus()
	ti.Prompt = "> "
	ti.PromptStyle = styleInputPrompt
	ti.TextStyle = styleInput
	ti.CharLimit = 256

	m := model{
		items:       items,
		filterInput: ti,
		preview:     viewport.New(0, 0),
		previewIdx:  -1,
	}
	m.applyFilter("")

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	fm := finalModel.(model)
	if fm.copyItem != nil {
		return copyChapters(fm.copyItem)
	}
	return nil
}

func copyChapters(item *Item) error {
	if err := clipboard.WriteAll(item.CopyText); err != nil {
		fmt.Println(item.CopyText)
		return nil
	}
	fmt.Printf("Copied chapters to clipboard (%s)\n", item.Title)
	return nil
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.preview = viewport.New(m.previewWidth(), m.panelHeight())
		m.previewIdx = -1
		m.refreshPreview()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Enter):
			if item := m.selected(); item != nil && item.CopyText != "" {
				m.copyItem = item
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.adjustListScroll()
				m.refreshPreview()
			}
			return m, nil

		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.visible)-1 {
				m.cursor++
				m.adjustListScroll()
				m.refreshPreview()
			}
			return m, nil

		case key.Matches(msg, keys.PreviewUp):
			m.preview.LineUp(m.panelHeight() / 2)
			return m, nil

		case key.Matches(msg, keys.PreviewDn):
			m.preview.LineDown(m.panelHeight() / 2)
			return m, nil
		}

		// remaining keys edit the filter
		var tiCmd tea.Cmd
		m.filterInput, tiCmd = m.filterInput.Update(msg)
		cmds = append(cmds, tiCmd)
		m.applyFilter(m.filterInput.Value())
		m.refreshPreview()
		return m, tea.Batch(cmds...)
	}

	return m, tea.Batch(cmds...)
}

// applyFilter recomputes the visible item set by case-insensitive
// substring match on title and meta.
func (m *model) applyFilter(filter string) {
	filter = strings.ToLower(strings.TrimSpace(filter))
	m.visible = m.visible[:0]
	for i, item := range m.items {
		if filter == "" ||
			strings.Contains(strings.ToLower(item.Title), filter) ||
			strings.Contains(strings.ToLower(item.Meta), filter) {
			m.visible = append(m.visible, i)
		}
	}
	if m.cursor >= len(m.visible) {
		m.cursor = 0
	}
	m.listOffset = 0
}

func (m *model) selected() *Item {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return nil
	}
	return &m.items[m.visible[m.cursor]]
}

func (m *model) refreshPreview() {
	item := m.selected()
	if item == nil {
		m.preview.SetContent("")
		m.previewIdx = -1
		return
	}
	idx := m.visible[m.cursor]
	if idx == m.previewIdx {
		return
	}
	// lipgloss wraps long lines to the panel width
	wrapped := lipgloss.NewStyle().Width(m.previewWidth()).Render(item.Preview)
	m.preview.SetContent(wrapped)
	m.preview.GotoTop()
	m.previewIdx = idx
}

func (m model) View() string {
	if m.quitting || !m.ready {
		return ""
	}

	listW := m.listWidth()
	previewW := m.previewWidth()
	panelH := m.panelHeight()

	inputRow := m.filterInput.View()

	listPanel := stylePanelBorder.
		Width(listW).
		Height(panelH).
		Render(m.renderList(listW, panelH))

	m.preview.Width = previewW
	m.preview.Height = panelH
	previewPanel := styleActiveBorder.
		Width(previewW).
		Height(panelH).
		Render(m.preview.View())

	panels := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, previewPanel)

	return lipgloss.JoinVertical(lipgloss.Left, inputRow, panels, m.statusBar())
}

func (m model) listWidth() int {
	if m.width <= 0 {
		return 40
	}
	w := m.width*40/100 - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m model) previewWidth() int {
	if m.width <= 0 {
		return 60
	}
	w := m.width*60/100 - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m model) panelHeight() int {
	if m.height <= 0 {
		return 20
	}
	// input row (1) + status bar (1) + borders (4)
	h := m.height - 6
	if h < 5 {
		h = 5
	}
	return h
}

func (m model) statusBar() string {
	parts := []string{
		fmt.Sprintf("%d/%d items", len(m.visible), len(m.items)),
		"up/dn navigate",
		"C-u/C-d preview",
		"Enter copy chapters",
		"Esc quit",
	}
	return styleStatusBar.Render(strings.Join(parts, " | "))
}
