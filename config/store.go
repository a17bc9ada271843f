// Package config persists the path of the UPX executable.
//
// The store is a single-section INI file with one recognized key:
//
//	[DEFAULT]
//	upx_path = /usr/local/bin/upx
//
// A missing or malformed file is never an error for callers: Load falls back
// to the platform default and rewrites the file with it.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-ini/ini"
	"github.com/grovetools/upxgui/errors"
	"github.com/grovetools/upxgui/logging"
	"github.com/grovetools/upxgui/pkg/paths"
	"github.com/sirupsen/logrus"
)

// KeyExecutablePath is the only key the store reads or writes.
const KeyExecutablePath = "upx_path"

// loadOptions keep a value byte-for-byte: surrounding quotes are part of a
// path and a trailing backslash is not a line continuation.
var loadOptions = ini.LoadOptions{
	PreserveSurroundedQuote: true,
	IgnoreContinuation:      true,
}

// DefaultExecutablePath returns the platform default executable name.
func DefaultExecutablePath() string {
	return DefaultExecutablePathFor(runtime.GOOS)
}

// DefaultExecutablePathFor returns the default executable name for goos:
// "upx.exe" on windows, "upx" everywhere else.
func DefaultExecutablePathFor(goos string) string {
	if goos == "windows" {
		return "upx.exe"
	}
	return "upx"
}

// Store loads and persists the executable path.
type Store struct {
	path   string
	logger *logrus.Entry
}

// NewStore returns a store backed by the file at path. An empty path
// resolves to the default location (see paths.ConfigFile).
func NewStore(path string) *Store {
	if path == "" {
		path = paths.ConfigFile()
	}
	return &Store{
		path:   path,
		logger: logging.NewLogger("config"),
	}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load returns the persisted executable path. On a missing file, a parse
// failure or an absent/empty key it returns the platform default and
// recreates the file with that default. Recreation failures are logged only.
func (s *Store) Load() string {
	value, err := s.read()
	if err == nil {
		return value
	}

	def := DefaultExecutablePath()
	if os.IsNotExist(err) {
		s.logger.WithField("path", s.path).Debug("No configuration file, creating default")
	} else {
		s.logger.WithError(errors.ConfigCorrupt(s.path, err)).Warn("Configuration unusable, recreating with default")
	}

	if err := s.Save(def); err != nil {
		s.logger.WithError(err).Warn("Failed to recreate configuration")
	}
	return def
}

// Save overwrites the store with path as the single key. The file is
// rewritten in full on every call and always carries the [DEFAULT] header.
func (s *Store) Save(path string) error {
	content := fmt.Sprintf("[%s]\n%s = %s\n", ini.DefaultSection, KeyExecutablePath, encodeValue(path))

	if err := s.write(content); err != nil {
		return errors.ConfigWrite(s.path, err)
	}
	s.logger.WithFields(logrus.Fields{"path": s.path, KeyExecutablePath: path}).Debug("Configuration saved")
	return nil
}

func (s *Store) read() (string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	cfg, err := ini.LoadSources(loadOptions, f)
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", s.path, err)
	}

	key, err := cfg.Section(ini.DefaultSection).GetKey(KeyExecutablePath)
	if err != nil {
		return "", err
	}
	value := key.String()
	if value == "" {
		return "", fmt.Errorf("%s is empty", KeyExecutablePath)
	}
	return value, nil
}

// encodeValue renders v so that reading it back with loadOptions yields v.
// Plain values are written as is; values the parser would trim or cut at an
// inline comment are wrapped in backticks, or in triple quotes when they
// contain a backtick or a newline themselves.
func encodeValue(v string) string {
	switch {
	case strings.ContainsAny(v, "`\n"):
		return `"""` + v + `"""`
	case v == "" || strings.TrimSpace(v) != v || strings.ContainsAny(v, "#;") || strings.HasPrefix(v, `"""`):
		return "`" + v + "`"
	}
	return v
}

func (s *Store) write(content string) (err error) {
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = f.WriteString(content)
	return err
}
