package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/upxgui/tui/theme"
)

// RenderHeader creates the title line shown on every screen.
func RenderHeader(title string, subtitle ...string) string {
	t := theme.DefaultTheme

	header := t.Header.Render(fmt.Sprintf("%s %s", theme.IconArchive, title))

	if len(subtitle) > 0 && subtitle[0] != "" {
		sub := t.Muted.Render(subtitle[0])
		return lipgloss.JoinVertical(lipgloss.Left, header, sub)
	}

	return header
}

// RenderFooter creates a centered footer with a rule above it.
func RenderFooter(content string, width int) string {
	t := theme.DefaultTheme
	return lipgloss.NewStyle().
		Foreground(t.Colors.MutedText).
		Width(width).
		Align(lipgloss.Center).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(t.Colors.Border).
		Render(content)
}

// RenderPane renders content in a rounded box with a title line. A focused
// pane gets the accent border.
func RenderPane(title, content string, width int, focused bool) string {
	t := theme.DefaultTheme

	border := t.Colors.Border
	titleStyle := t.Muted.Bold(true)
	if focused {
		border = t.Colors.Orange
		titleStyle = t.Highlight
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
	if width > 2 {
		box = box.Width(width - 2)
	}

	return box.Render(lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(title), content))
}

// RenderCheckbox renders a toggle with its label. The cursor marks the item
// under the selection cursor.
func RenderCheckbox(label string, checked, cursor bool) string {
	t := theme.DefaultTheme

	icon := theme.IconUnchecked
	style := t.Muted
	if checked {
		icon = theme.IconChecked
		style = t.Success
	}
	item := style.Render(icon) + " " + label
	if cursor {
		return t.Selected.Render(item)
	}
	return item
}

// RenderKeyValue creates a key-value display
func RenderKeyValue(key, value string) string {
	t := theme.DefaultTheme
	return fmt.Sprintf("%s %s", t.Muted.Render(key+":"), value)
}
