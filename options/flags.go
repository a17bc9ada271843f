// Package options holds the selection state that is serialized into a UPX
// command line: compression levels, mode flags, auxiliary flags, the output
// spec and the input path.
package options

import (
	"fmt"
	"strconv"
	"strings"
)

// Level is a UPX compression level in the range 1..9.
type Level int

const (
	MinLevel Level = 1
	MaxLevel Level = 9
)

// Valid reports whether l is within 1..9.
func (l Level) Valid() bool {
	return l >= MinLevel && l <= MaxLevel
}

// Token returns the command-line token for the level, e.g. "-6".
func (l Level) Token() string {
	return "-" + strconv.Itoa(int(l))
}

// Levels returns every level in ascending order.
func Levels() []Level {
	levels := make([]Level, 0, MaxLevel)
	for l := MinLevel; l <= MaxLevel; l++ {
		levels = append(levels, l)
	}
	return levels
}

// ParseLevel accepts "6" or "-6".
func ParseLevel(s string) (Level, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(s), "-"))
	if err != nil {
		return 0, fmt.Errorf("invalid compression level %q", s)
	}
	l := Level(n)
	if !l.Valid() {
		return 0, fmt.Errorf("compression level %d out of range %d..%d", n, MinLevel, MaxLevel)
	}
	return l, nil
}

type flagInfo struct {
	name  string
	token string
	label string
}

// ModeFlag selects what UPX does with the input (decompress, list, ...).
type ModeFlag int

// Declaration order is the order tokens appear in a built command.
const (
	Decompress ModeFlag = iota
	List
	Test
	Version
	Help
	License
	numModeFlags
)

var modeFlags = [numModeFlags]flagInfo{
	Decompress: {"decompress", "-d", "Decompress"},
	List:       {"list", "-l", "List info"},
	Test:       {"test", "-t", "Test file"},
	Version:    {"version", "-V", "Show version"},
	Help:       {"help", "-h", "Show help"},
	License:    {"license", "-L", "License"},
}

// ModeFlags returns all mode flags in declaration order.
func ModeFlags() []ModeFlag {
	flags := make([]ModeFlag, numModeFlags)
	for i := range flags {
		flags[i] = ModeFlag(i)
	}
	return flags
}

func (f ModeFlag) valid() bool   { return f >= 0 && f < numModeFlags }
func (f ModeFlag) Name() string  { return modeFlags[f].name }
func (f ModeFlag) Token() string { return modeFlags[f].token }

// Label is the human readable description including the token.
func (f ModeFlag) Label() string {
	return fmt.Sprintf("%s (%s)", modeFlags[f].label, modeFlags[f].token)
}

// ModeFlagByName looks up a mode flag by its name, e.g. "decompress".
func ModeFlagByName(name string) (ModeFlag, bool) {
	for i, info := range modeFlags {
		if info.name == name {
			return ModeFlag(i), true
		}
	}
	return 0, false
}

// AuxFlag is an auxiliary modifier (quiet, verbose, force, keep-backup).
type AuxFlag int

const (
	Quiet AuxFlag = iota
	Verbose
	Force
	KeepBackup
	numAuxFlags
)

var auxFlags = [numAuxFlags]flagInfo{
	Quiet:      {"quiet", "-q", "Quiet"},
	Verbose:    {"verbose", "-v", "Verbose output"},
	Force:      {"force", "-f", "Force compression"},
	KeepBackup: {"keep-backup", "-k", "Keep backup"},
}

// AuxFlags returns all auxiliary flags in declaration order.
func AuxFlags() []AuxFlag {
	flags := make([]AuxFlag, numAuxFlags)
	for i := range flags {
		flags[i] = AuxFlag(i)
	}
	return flags
}

func (f AuxFlag) valid() bool   { return f >= 0 && f < numAuxFlags }
func (f AuxFlag) Name() string  { return auxFlags[f].name }
func (f AuxFlag) Token() string { return auxFlags[f].token }

func (f AuxFlag) Label() string {
	return fmt.Sprintf("%s (%s)", auxFlags[f].label, auxFlags[f].token)
}

// AuxFlagByName looks up an auxiliary flag by its name, e.g. "keep-backup".
func AuxFlagByName(name string) (AuxFlag, bool) {
	for i, info := range auxFlags {
		if info.name == name {
			return AuxFlag(i), true
		}
	}
	return 0, false
}

// OutputTokenPrefix is concatenated directly with the quoted output path.
const OutputTokenPrefix = "-o"
