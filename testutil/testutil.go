// Package testutil holds helpers shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// FakeUPX is a shell script standing in for the compressor. -t fails with
// exit code 3, -l keeps running for 30s, anything else echoes its arguments.
const FakeUPX = `#!/bin/sh
case "$1" in
  -t) echo "upx: testing failed" >&2; exit 3 ;;
  -l) echo "listing"; sleep 30 ;;
esac
echo "upx-fake $*"
`

// InstallFakeUPX writes FakeUPX to a temp dir and returns its path. The test
// is skipped on windows.
func InstallFakeUPX(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake compressor is a shell script")
	}
	path := filepath.Join(t.TempDir(), "upx")
	require.NoError(t, os.WriteFile(path, []byte(FakeUPX), 0755))
	return path
}

// WriteInputFile creates a small file to compress and returns its path.
func WriteInputFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("MZ"), 0644))
	return path
}

// QuietLogs turns off the log file sink for the duration of the test.
func QuietLogs(t *testing.T) {
	t.Helper()
	t.Setenv("UPXGUI_LOG_FILE", "off")
}
