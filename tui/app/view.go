package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/upxgui/options"
	"github.com/grovetools/upxgui/session"
	"github.com/grovetools/upxgui/tui/components"
	"github.com/grovetools/upxgui/tui/theme"
)

const (
	minResultHeight = 5
	// chromeHeight covers the header, preview pane, footer and pane borders.
	chromeHeight = 12
)

func (m *Model) resizeResult() {
	width := m.width - m.optionsWidth() - 4
	if width < 20 {
		width = 20
	}
	height := m.height - chromeHeight
	if height < minResultHeight {
		height = minResultHeight
	}
	m.result.Width = width
	m.result.Height = height
}

func (m *Model) optionsWidth() int {
	if m.width > 0 && m.width < 90 {
		return m.width
	}
	return 44
}

// View renders the screen.
func (m *Model) View() string {
	if m.help.ShowAll {
		return m.help.View()
	}

	t := theme.DefaultTheme

	header := components.RenderHeader("UPX GUI", "Config: "+m.session.ConfigPath())

	optionsPane := components.RenderPane("Options", m.renderOptions(), m.optionsWidth(), !m.editing)
	resultPane := components.RenderPane("Result", m.result.View(), m.result.Width+4, false)

	var body string
	if m.width > 0 && m.width < 90 {
		body = lipgloss.JoinVertical(lipgloss.Left, optionsPane, resultPane)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, optionsPane, resultPane)
	}

	previewWidth := m.width
	if previewWidth <= 0 {
		previewWidth = 80
	}
	preview := components.RenderPane("Command preview", t.Code.Render(m.session.Preview()), previewWidth, false)

	status := m.status
	if m.running {
		status = theme.IconRunning + " " + status
	}
	statusStyle := t.Info
	if m.isError {
		statusStyle = t.Error
	}
	footer := components.RenderFooter(
		statusStyle.Render(status)+"  "+m.help.View(),
		previewWidth,
	)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, preview, footer)
}

func (m *Model) renderOptions() string {
	t := theme.DefaultTheme
	snap := m.session.Snapshot()

	var levels []string
	var lines []string
	var lastKind itemKind = -1

	for i, it := range m.items {
		cursor := i == m.cursor

		switch it.kind {
		case kindLevel:
			levels = append(levels, components.RenderCheckbox(it.label, m.checked(it, snap), cursor))
			if it.level == options.Level(9) {
				lines = append(lines, t.Bold.Render("Compression level"))
				lines = append(lines, strings.Join(levels[:5], " "), strings.Join(levels[5:], " "))
			}
			lastKind = it.kind
			continue

		case kindMode, kindAux:
			if it.kind != lastKind {
				title := "Commands"
				if it.kind == kindAux {
					title = "Options"
				}
				lines = append(lines, "", t.Bold.Render(title))
			}
			lines = append(lines, components.RenderCheckbox(it.label, m.checked(it, snap), cursor))

		case kindOutputToggle:
			lines = append(lines, "", t.Bold.Render("Files"))
			lines = append(lines, components.RenderCheckbox(it.label, m.checked(it, snap), cursor))

		case kindPath:
			lines = append(lines, m.renderPathField(it, cursor))
			if it.target == session.TargetExecutable {
				lines = append(lines, t.Muted.Render("  Get UPX: "+HomepageURL))
			}
		}
		lastKind = it.kind
	}

	return strings.Join(lines, "\n")
}

func (m *Model) renderPathField(it item, cursor bool) string {
	t := theme.DefaultTheme

	label := components.RenderKeyValue(theme.IconFile+" "+it.label, "")
	if cursor && m.editing {
		return label + m.input.View()
	}

	value := m.pathValue(it.target)
	if value == "" {
		value = t.Placeholder.Render("(none)")
	}
	line := label + value
	if cursor {
		return t.Selected.Render(line)
	}
	return line
}
