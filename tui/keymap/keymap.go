package keymap

import (
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Base contains the bindings shared by every upxgui screen.
type Base struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding

	// Core actions
	Quit    key.Binding
	Help    key.Binding
	Confirm key.Binding
	Back    key.Binding
	Edit    key.Binding

	// Focus
	FocusNext key.Binding
	FocusPrev key.Binding

	// Selection
	Select key.Binding
}

// NewBase returns the keymap named by UPXGUI_KEYMAP (vim, emacs, arrows),
// defaulting to vim.
func NewBase() Base {
	return ForStyle(os.Getenv("UPXGUI_KEYMAP"))
}

// ForStyle returns the keymap for a named style. Unknown names get vim.
func ForStyle(style string) Base {
	switch strings.ToLower(strings.TrimSpace(style)) {
	case "emacs":
		return DefaultEmacs()
	case "arrows":
		return DefaultArrows()
	default:
		return DefaultVim()
	}
}

// DefaultVim returns the default vim-style keymap
func DefaultVim() Base {
	return Base{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/left", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/right", "right"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("ctrl+u", "pgup"),
			key.WithHelp("C-u", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("ctrl+d", "pgdown"),
			key.WithHelp("C-d", "page down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),

		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),

		FocusNext: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next pane"),
		),
		FocusPrev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev pane"),
		),

		Select: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle"),
		),
	}
}

// DefaultEmacs returns an emacs-style keymap
func DefaultEmacs() Base {
	b := DefaultVim()
	b.Up = key.NewBinding(
		key.WithKeys("ctrl+p", "up"),
		key.WithHelp("C-p", "up"),
	)
	b.Down = key.NewBinding(
		key.WithKeys("ctrl+n", "down"),
		key.WithHelp("C-n", "down"),
	)
	b.Left = key.NewBinding(
		key.WithKeys("ctrl+b", "left"),
		key.WithHelp("C-b", "left"),
	)
	b.Right = key.NewBinding(
		key.WithKeys("ctrl+f", "right"),
		key.WithHelp("C-f", "right"),
	)
	b.PageUp = key.NewBinding(
		key.WithKeys("alt+v", "pgup"),
		key.WithHelp("M-v", "page up"),
	)
	b.PageDown = key.NewBinding(
		key.WithKeys("ctrl+v", "pgdown"),
		key.WithHelp("C-v", "page down"),
	)
	b.Top = key.NewBinding(
		key.WithKeys("alt+<", "home"),
		key.WithHelp("M-<", "top"),
	)
	b.Bottom = key.NewBinding(
		key.WithKeys("alt+>", "end"),
		key.WithHelp("M->", "bottom"),
	)
	return b
}

// DefaultArrows returns a simplified keymap using only arrow keys for
// movement, leaving every letter free for shortcuts.
func DefaultArrows() Base {
	b := DefaultVim()
	b.Up = key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("up", "up"),
	)
	b.Down = key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("down", "down"),
	)
	b.Left = key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("left", "left"),
	)
	b.Right = key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("right", "right"),
	)
	b.PageUp = key.NewBinding(
		key.WithKeys("pgup", "shift+up"),
		key.WithHelp("PgUp", "page up"),
	)
	b.PageDown = key.NewBinding(
		key.WithKeys("pgdown", "shift+down"),
		key.WithHelp("PgDn", "page down"),
	)
	b.Top = key.NewBinding(
		key.WithKeys("home", "ctrl+home"),
		key.WithHelp("Home", "top"),
	)
	b.Bottom = key.NewBinding(
		key.WithKeys("end", "ctrl+end"),
		key.WithHelp("End", "bottom"),
	)
	return b
}

// ShortHelp returns the bindings for the one-line footer.
func (b Base) ShortHelp() []key.Binding {
	return []key.Binding{b.Up, b.Down, b.Select, b.Help, b.Quit}
}

// FullHelp returns the bindings for the expanded help view.
func (b Base) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{b.Up, b.Down, b.Left, b.Right, b.PageUp, b.PageDown, b.Top, b.Bottom},
		{b.Select, b.Confirm, b.Edit, b.Back, b.FocusNext, b.FocusPrev},
		{b.Help, b.Quit},
	}
}

// Sections groups the base bindings for help rendering.
func (b Base) Sections() []Section {
	return []Section{
		NavigationSection(b.Up, b.Down, b.Left, b.Right, b.PageUp, b.PageDown, b.Top, b.Bottom),
		ActionsSection(b.Select, b.Confirm, b.Edit, b.Back),
		ViewSection(b.FocusNext, b.FocusPrev),
		SystemSection(b.Help, b.Quit),
	}
}
