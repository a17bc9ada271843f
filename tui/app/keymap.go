package app

import (
	"os"

	"github.com/charmbracelet/bubbles/key"
	"github.com/grovetools/upxgui/tui/keymap"
)

// KeyMap is the keymap of the main screen.
type KeyMap struct {
	keymap.Base

	Execute   key.Binding
	CancelRun key.Binding
	Reset     key.Binding
	Level     key.Binding
}

// NewKeyMap builds the keymap from UPXGUI_KEYMAP and applies UPXGUI_KEYS
// overrides.
func NewKeyMap() KeyMap {
	km := KeyMap{
		Base: keymap.NewBase(),
		Execute: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "execute"),
		),
		CancelRun: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cancel run"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset options"),
		),
		Level: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "toggle level"),
		),
	}
	keymap.ApplyOverrides(&km, keymap.ParseOverrides(os.Getenv("UPXGUI_KEYS")))
	return km
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Edit, k.Execute, k.Reset, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Select, k.Level, k.Edit, k.Confirm, k.Back},
		{k.Execute, k.CancelRun, k.Reset},
		{k.Help, k.Quit},
	}
}

func (k KeyMap) Sections() []keymap.Section {
	return []keymap.Section{
		keymap.NavigationSection(k.Up, k.Down, k.Top, k.Bottom, k.PageUp, k.PageDown),
		keymap.OptionsSection(k.Select, k.Level, k.Edit, k.Confirm, k.Back),
		keymap.ActionsSection(k.Execute, k.CancelRun, k.Reset),
		keymap.SystemSection(k.Help, k.Quit),
	}
}
