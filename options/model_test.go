package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Level
		wantErr bool
	}{
		{"bare digit", "6", 6, false},
		{"dashed", "-9", 9, false},
		{"padded", " 1 ", 1, false},
		{"zero", "0", 0, true},
		{"too high", "10", 0, true},
		{"word", "best", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFlagLookup(t *testing.T) {
	f, ok := ModeFlagByName("decompress")
	require.True(t, ok)
	assert.Equal(t, "-d", f.Token())
	assert.Equal(t, "Decompress (-d)", f.Label())

	a, ok := AuxFlagByName("keep-backup")
	require.True(t, ok)
	assert.Equal(t, "-k", a.Token())

	_, ok = ModeFlagByName("quiet")
	assert.False(t, ok, "quiet is an auxiliary flag, not a mode flag")
}

func TestModelToggles(t *testing.T) {
	m := NewModel()

	m.ToggleLevel(7)
	m.SetLevel(3, true)
	m.SetLevel(12, true) // ignored
	assert.Equal(t, []Level{3, 7}, m.Snapshot().ActiveLevels())

	m.ToggleLevel(7)
	assert.Equal(t, []Level{3}, m.Snapshot().ActiveLevels())

	m.SetAux(KeepBackup, true)
	m.ToggleAux(Quiet)
	assert.Equal(t, []AuxFlag{Quiet, KeepBackup}, m.Snapshot().ActiveAux())

	m.ToggleMode(License)
	m.SetMode(Decompress, true)
	assert.Equal(t, []ModeFlag{Decompress, License}, m.Snapshot().ActiveModes())
}

func TestSnapshotIsACopy(t *testing.T) {
	m := NewModel()
	m.SetInputFile("a.exe")
	snap := m.Snapshot()

	m.SetInputFile("b.exe")
	m.SetLevel(1, true)

	assert.Equal(t, "a.exe", snap.InputFile)
	assert.False(t, snap.LevelActive(1))
}

func TestReset(t *testing.T) {
	m := NewModel()
	for _, l := range Levels() {
		m.SetLevel(l, true)
	}
	for _, f := range ModeFlags() {
		m.SetMode(f, true)
	}
	for _, f := range AuxFlags() {
		m.SetAux(f, true)
	}
	m.SetOutputEnabled(true)
	m.SetOutputPath("out.exe")
	m.SetInputFile("in.exe")

	require.False(t, m.Snapshot().IsZero())
	m.Reset()
	assert.True(t, m.Snapshot().IsZero())
	assert.Equal(t, NewModel().Snapshot(), m.Snapshot())
}
