package help

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/grovetools/upxgui/tui/keymap"
	"github.com/grovetools/upxgui/tui/theme"
)

// Model is an embeddable help component: a one-line footer, or a full
// sectioned overlay when ShowAll is set.
type Model struct {
	Keys    interface{} // keymap.SectionedKeyMap, or anything with ShortHelp/FullHelp
	ShowAll bool
	Width   int
	Height  int
	Theme   *theme.Theme
	Title   string

	viewport viewport.Model
}

// New creates a help model for keys.
func New(keys interface{}) Model {
	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = false
	return Model{
		Keys:     keys,
		Theme:    theme.DefaultTheme,
		viewport: vp,
	}
}

// Update scrolls the overlay and closes it on ?, q or esc.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if !m.ShowAll {
			return m, nil
		}
		if msg.String() == "?" || msg.String() == "q" || msg.Type == tea.KeyEsc {
			m.Toggle()
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the footer or the overlay.
func (m Model) View() string {
	if m.Theme == nil {
		m.Theme = theme.DefaultTheme
	}
	if m.ShowAll {
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, m.viewport.View())
	}

	var group []key.Binding
	if k, ok := m.Keys.(interface{ ShortHelp() []key.Binding }); ok {
		group = k.ShortHelp()
	}
	return m.viewShort(group)
}

func (m Model) viewShort(group []key.Binding) string {
	var pairs []string
	for _, binding := range group {
		if !binding.Enabled() {
			continue
		}
		h := binding.Help()
		if h.Key == "" || h.Desc == "" {
			continue
		}
		pairs = append(pairs, fmt.Sprintf("%s %s", m.Theme.Highlight.Render(h.Key), m.Theme.Muted.Render(h.Desc)))
	}
	if len(pairs) == 0 {
		return ""
	}
	return strings.Join(pairs, m.Theme.Muted.Render(" • "))
}

// Toggle opens or closes the overlay.
func (m *Model) Toggle() {
	m.ShowAll = !m.ShowAll
	if m.ShowAll {
		m.setViewportContent()
	}
}

// SetSize records the terminal size.
func (m *Model) SetSize(width, height int) {
	m.Width = width
	m.Height = height
	if m.ShowAll {
		m.setViewportContent()
	}
}

func (m *Model) setViewportContent() {
	if m.Theme == nil {
		m.Theme = theme.DefaultTheme
	}

	var sections []keymap.Section
	switch k := m.Keys.(type) {
	case keymap.SectionedKeyMap:
		sections = k.Sections()
	case interface{ FullHelp() [][]key.Binding }:
		for _, group := range k.FullHelp() {
			sections = append(sections, keymap.NewSection("", group...))
		}
	}

	var blocks []string
	for _, s := range sections {
		if block := m.renderSection(s); block != "" {
			blocks = append(blocks, block)
		}
	}

	title := m.Title
	if title == "" {
		title = "Help"
	}
	body := lipgloss.JoinVertical(lipgloss.Left, blocks...)
	// Tall content goes to two columns when they fit; otherwise the viewport
	// scrolls.
	if m.Height > 0 && lipgloss.Height(body) > m.Height-4 && len(blocks) > 1 {
		half := (len(blocks) + 1) / 2
		twoCol := lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.JoinVertical(lipgloss.Left, blocks[:half]...),
			"    ",
			lipgloss.JoinVertical(lipgloss.Left, blocks[half:]...),
		)
		if m.Width == 0 || lipgloss.Width(twoCol) <= m.Width-4 {
			body = twoCol
		}
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.Theme.Colors.Orange).
		MarginBottom(1).
		Align(lipgloss.Center).
		Width(lipgloss.Width(body))
	content := lipgloss.JoinVertical(lipgloss.Center, titleStyle.Render(title), body)

	m.viewport.SetContent(content)
	m.viewport.Width = lipgloss.Width(content)
	m.viewport.Height = max(m.Height-4, 1)
}

func (m *Model) renderSection(s keymap.Section) string {
	keyStyle := lipgloss.NewStyle().Bold(true).Foreground(m.Theme.Colors.Cyan)

	table := ltable.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		})
	rows := 0
	for _, b := range s.FilterEnabled() {
		h := b.Help()
		if h.Key == "" || h.Desc == "" {
			continue
		}
		table = table.Row(keyStyle.Render(h.Key), m.Theme.Muted.Italic(true).Render(h.Desc))
		rows++
	}
	if rows == 0 {
		return ""
	}

	content := table.String()
	if s.Name != "" {
		titleStyle := lipgloss.NewStyle().Foreground(m.Theme.Colors.Orange).Italic(true)
		content = lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(theme.IconBullet+" "+s.Name), content)
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.Theme.Colors.Border).
		Padding(0, 1).
		Render(content)
}
