package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigFileResolution(t *testing.T) {
	t.Run("explicit override", func(t *testing.T) {
		t.Setenv("UPXGUI_CONFIG", "/tmp/custom.ini")
		assert.Equal(t, "/tmp/custom.ini", ConfigFile())
	})

	t.Run("portable home", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("UPXGUI_CONFIG", "")
		t.Setenv("UPXGUI_HOME", home)
		assert.Equal(t, filepath.Join(home, "config", ConfigFileName), ConfigFile())
		assert.Equal(t, filepath.Join(home, "state", "logs"), LogDir())
	})

	t.Run("xdg", func(t *testing.T) {
		xdg := t.TempDir()
		t.Setenv("UPXGUI_CONFIG", "")
		t.Setenv("UPXGUI_HOME", "")
		t.Setenv("XDG_CONFIG_HOME", xdg)
		t.Setenv("XDG_STATE_HOME", xdg)
		assert.Equal(t, filepath.Join(xdg, "upxgui", ConfigFileName), ConfigFile())
		assert.Equal(t, filepath.Join(xdg, "upxgui"), StateDir())
	})
}
