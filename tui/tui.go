// Package tui holds the shared pieces of the terminal interface.
package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// InitializeTUI forces a true-color profile when CLICOLOR_FORCE=1 or
// COLORTERM=truecolor is set, so output captured outside a real terminal
// keeps its styling. Call it before starting a program.
func InitializeTUI() {
	if os.Getenv("CLICOLOR_FORCE") == "1" || os.Getenv("COLORTERM") == "truecolor" {
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}
