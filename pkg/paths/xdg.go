// Package paths provides XDG-compliant path resolution for upxgui.
//
// Resolution order:
// 1. UPXGUI_HOME (portable root) → $UPXGUI_HOME/{config,state}
// 2. XDG env vars → $XDG_*_HOME/upxgui
// 3. Platform defaults → ~/.config/upxgui, ~/.local/state/upxgui
package paths

import (
	"os"
	"path/filepath"
)

const appName = "upxgui"

// ConfigFileName is the name of the persisted executable-path store.
const ConfigFileName = "upx_config.ini"

// getConfigHome returns the base config home directory.
func getConfigHome() string {
	if home := os.Getenv("UPXGUI_HOME"); home != "" {
		return filepath.Join(home, "config")
	}
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".config")
	}
	return ""
}

// getStateHome returns the base state home directory.
func getStateHome() string {
	if home := os.Getenv("UPXGUI_HOME"); home != "" {
		return filepath.Join(home, "state")
	}
	if xdgStateHome := os.Getenv("XDG_STATE_HOME"); xdgStateHome != "" {
		return xdgStateHome
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".local", "state")
	}
	return ""
}

// ConfigDir returns the upxgui configuration directory.
func ConfigDir() string {
	base := getConfigHome()
	if base == "" || os.Getenv("UPXGUI_HOME") != "" {
		return base
	}
	return filepath.Join(base, appName)
}

// StateDir returns the upxgui state directory.
// Used for logs.
func StateDir() string {
	base := getStateHome()
	if base == "" || os.Getenv("UPXGUI_HOME") != "" {
		return base
	}
	return filepath.Join(base, appName)
}

// LogDir returns the directory log files are written to.
func LogDir() string {
	state := StateDir()
	if state == "" {
		return ""
	}
	return filepath.Join(state, "logs")
}

// ConfigFile returns the path of the executable-path store.
// UPXGUI_CONFIG overrides the location entirely.
func ConfigFile() string {
	if p := os.Getenv("UPXGUI_CONFIG"); p != "" {
		return p
	}
	dir := ConfigDir()
	if dir == "" {
		return ConfigFileName
	}
	return filepath.Join(dir, ConfigFileName)
}
