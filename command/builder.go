package command

import (
	"strings"

	"github.com/grovetools/upxgui/options"
)

// Build serializes a selection snapshot into the canonical command string.
//
// Token order is fixed: quoted executable, active levels ascending, mode
// flags, auxiliary flags, -o"<output>", quoted input. Tokens are joined with
// single spaces. Paths are wrapped in double quotes verbatim; embedded quotes
// are not escaped, so the result is only as safe as its paths.
//
// The result is meant for a command interpreter, not for direct exec.
func Build(snap options.Snapshot, executable string) string {
	parts := []string{quote(executable)}

	for _, l := range snap.ActiveLevels() {
		parts = append(parts, l.Token())
	}

	for _, f := range snap.ActiveModes() {
		parts = append(parts, f.Token())
	}

	for _, f := range snap.ActiveAux() {
		parts = append(parts, f.Token())
	}

	if snap.Output.Enabled && snap.Output.Path != "" {
		parts = append(parts, options.OutputTokenPrefix+quote(snap.Output.Path))
	}

	if snap.InputFile != "" {
		parts = append(parts, quote(snap.InputFile))
	}

	return strings.Join(parts, " ")
}

func quote(s string) string {
	return `"` + s + `"`
}

// StripQuotes removes double quotes surrounding a path, the inverse of the
// quoting Build applies. It is used before filesystem existence checks.
func StripQuotes(path string) string {
	return strings.Trim(path, `"`)
}
