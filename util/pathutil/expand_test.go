package pathutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("UPX_DIR", "/opt/upx")

	tests := []struct {
		in   string
		want string
	}{
		{"~/bin/upx", filepath.Join(home, "bin/upx")},
		{"~", home},
		{"$UPX_DIR/upx", "/opt/upx/upx"},
		{"${UPX_DIR}/upx", "/opt/upx/upx"},
		{"relative/app.exe", "relative/app.exe"},
		{"a~b.exe", "a~b.exe"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Expand(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
