// Package pathutil cleans up paths typed by the user.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Expand expands a leading home directory (~) and environment variables in
// path. Relative paths stay relative.
func Expand(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not get user home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	return os.ExpandEnv(path), nil
}

// ExpandOrKeep is Expand that returns path unchanged on failure.
func ExpandOrKeep(path string) string {
	expanded, err := Expand(path)
	if err != nil {
		return path
	}
	return expanded
}
