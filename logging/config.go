package logging

import (
	"os"
	"strings"
)

// Config defines the logging configuration. upxgui keeps a single persisted
// key in its config file, so logging is configured from the environment
// (optionally populated from a .env file at startup).
type Config struct {
	// Level is the minimum log level to output (e.g., "debug", "info", "warn", "error").
	// Read from UPXGUI_LOG_LEVEL.
	Level string

	// ReportCaller, if true, includes the file, line, and function name in the log output.
	// Enabled with UPXGUI_LOG_CALLER=true.
	ReportCaller bool

	// File configures logging to a file.
	File FileSinkConfig

	// Format configures the appearance of the log output.
	Format FormatConfig
}

// FileSinkConfig configures the file logging sink.
type FileSinkConfig struct {
	Enabled bool
	// Path is the full path to the log file. Empty means the default
	// <state dir>/logs/<component>-<date>.log.
	Path string
}

// FormatConfig controls the log output format.
type FormatConfig struct {
	// Preset can be "default" (rich text), "simple" (minimal text), or "json".
	Preset string
	// DisableTimestamp disables the timestamp from the "default" and "simple" formats.
	DisableTimestamp bool
	// DisableComponent disables the component name from the "default" and "simple" formats.
	DisableComponent bool
	// StructuredToStderr controls when structured logs are sent to stderr.
	// Can be "auto" (default), "always", or "never".
	StructuredToStderr string
}

// ConfigFromEnv reads the logging configuration from UPXGUI_LOG_* variables.
//
//	UPXGUI_LOG_LEVEL   debug|info|warn|error
//	UPXGUI_LOG_CALLER  true
//	UPXGUI_LOG_FORMAT  default|simple|json
//	UPXGUI_LOG_FILE    off|<path>   (default: on, in the state dir)
//	UPXGUI_LOG_STDERR  auto|always|never
func ConfigFromEnv() Config {
	cfg := Config{
		Level:        os.Getenv("UPXGUI_LOG_LEVEL"),
		ReportCaller: os.Getenv("UPXGUI_LOG_CALLER") == "true",
		File:         FileSinkConfig{Enabled: true},
		Format: FormatConfig{
			Preset:             os.Getenv("UPXGUI_LOG_FORMAT"),
			StructuredToStderr: os.Getenv("UPXGUI_LOG_STDERR"),
		},
	}

	switch file := os.Getenv("UPXGUI_LOG_FILE"); strings.ToLower(file) {
	case "":
	case "off", "false", "0":
		cfg.File.Enabled = false
	default:
		cfg.File.Path = file
	}

	return cfg
}
