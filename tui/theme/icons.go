package theme

import "os"

// Nerd Font Icons (Private Constants)
const (
	nerdIconArchive   = "󰛫" // md-package_variant_closed (U+F06EB)
	nerdIconSuccess   = "󰄬" // md-check (U+F012C)
	nerdIconError     = "" // cod-error (U+EA87)
	nerdIconWarning   = "" // fa-warning (U+F071)
	nerdIconInfo      = "󰋼" // md-information (U+F02FC)
	nerdIconRunning   = "" // fa-refresh (U+F021)
	nerdIconArrow     = "󰁔" // md-arrow_right (U+F0054)
	nerdIconBullet    = "" // oct-dot_fill (U+F444)
	nerdIconChecked   = "󰄲" // md-checkbox_marked (U+F0132)
	nerdIconUnchecked = "󰄱" // md-checkbox_blank_outline (U+F0131)
	nerdIconFile      = "󰈔" // md-file (U+F0214)
	nerdIconSettings  = "" // fa-cog (U+F013)
)

// ASCII Fallback Icons (Private Constants)
const (
	asciiIconArchive   = "#"
	asciiIconSuccess   = "+"
	asciiIconError     = "x"
	asciiIconWarning   = "!"
	asciiIconInfo      = "i"
	asciiIconRunning   = "~"
	asciiIconArrow     = ">"
	asciiIconBullet    = "*"
	asciiIconChecked   = "[x]"
	asciiIconUnchecked = "[ ]"
	asciiIconFile      = "-"
	asciiIconSettings  = "@"
)

// Public Icon Variables
var (
	IconArchive   string
	IconSuccess   string
	IconError     string
	IconWarning   string
	IconInfo      string
	IconRunning   string
	IconArrow     string
	IconBullet    string
	IconChecked   string
	IconUnchecked string
	IconFile      string
	IconSettings  string
)

func init() {
	UseASCIIIcons(os.Getenv("UPXGUI_ICONS") == "ascii")
}

// UseASCIIIcons switches every Icon* variable between the Nerd Font set and
// plain ASCII.
func UseASCIIIcons(ascii bool) {
	if ascii {
		IconArchive = asciiIconArchive
		IconSuccess = asciiIconSuccess
		IconError = asciiIconError
		IconWarning = asciiIconWarning
		IconInfo = asciiIconInfo
		IconRunning = asciiIconRunning
		IconArrow = asciiIconArrow
		IconBullet = asciiIconBullet
		IconChecked = asciiIconChecked
		IconUnchecked = asciiIconUnchecked
		IconFile = asciiIconFile
		IconSettings = asciiIconSettings
		return
	}
	IconArchive = nerdIconArchive
	IconSuccess = nerdIconSuccess
	IconError = nerdIconError
	IconWarning = nerdIconWarning
	IconInfo = nerdIconInfo
	IconRunning = nerdIconRunning
	IconArrow = nerdIconArrow
	IconBullet = nerdIconBullet
	IconChecked = nerdIconChecked
	IconUnchecked = nerdIconUnchecked
	IconFile = nerdIconFile
	IconSettings = nerdIconSettings
}
