package errors

import (
	"fmt"
	"os/exec"
)

// ConfigCorrupt creates an error describing an unusable config file.
// It is only ever logged; the config store recovers from it locally.
func ConfigCorrupt(path string, cause error) *ToolError {
	return Wrap(cause, ErrCodeConfigCorrupt, fmt.Sprintf("configuration file unusable: %s", path)).
		WithDetail("path", path)
}

// ConfigWrite creates an error for a failed config rewrite
func ConfigWrite(path string, cause error) *ToolError {
	return Wrap(cause, ErrCodeConfigWrite, fmt.Sprintf("failed to write configuration: %s", path)).
		WithDetail("path", path)
}

// MissingExecutable creates an error for a compressor path that does not exist
func MissingExecutable(path string) *ToolError {
	return New(ErrCodeMissingExecutable, fmt.Sprintf("UPX executable not found: %s", path)).
		WithDetail("path", path)
}

// MissingInputFile creates an error for an input file that does not exist
func MissingInputFile(path string) *ToolError {
	return New(ErrCodeMissingInputFile, fmt.Sprintf("input file not found: %s", path)).
		WithDetail("path", path)
}

// ExecutionError creates an error for a process that could not be spawned
func ExecutionError(cmd string, err error) *ToolError {
	return Wrap(err, ErrCodeExecutionError, "failed to start command").
		WithDetail("command", cmd)
}

// NonZeroExit creates an error for a command that ran and reported failure
func NonZeroExit(cmd string, err error) *ToolError {
	toolErr := Wrap(err, ErrCodeNonZeroExit, fmt.Sprintf("command failed: %s", cmd)).
		WithDetail("command", cmd)

	// Extract exit code if available
	if exitErr, ok := err.(*exec.ExitError); ok {
		toolErr = toolErr.WithDetail("exitCode", exitErr.ExitCode())
	}

	return toolErr
}

// ExecutionInProgress creates an error for a trigger that arrived while a run is live
func ExecutionInProgress() *ToolError {
	return New(ErrCodeExecutionInProgress, "a command is already executing")
}

// Canceled creates an error for a run that was terminated before completion
func Canceled(cmd string, cause error) *ToolError {
	return Wrap(cause, ErrCodeCanceled, "command canceled").
		WithDetail("command", cmd)
}

// NoCommand creates an error for an empty command preview
func NoCommand() *ToolError {
	return New(ErrCodeInvalidInput, "no command to execute")
}
