package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/grovetools/upxgui/errors"
	"github.com/grovetools/upxgui/tui/theme"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
	Out     io.Writer
}

// NewErrorHandler creates a new error handler writing to stderr
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
		Out:     os.Stderr,
	}
}

// Handle prints a message for err based on its code and returns err unchanged
func (h *ErrorHandler) Handle(err error) error {
	if err == nil {
		return nil
	}
	t := theme.DefaultTheme
	prefix := t.Error.Render(theme.IconError)
	details := func(key string) interface{} {
		if toolErr, ok := err.(*errors.ToolError); ok {
			return toolErr.Details[key]
		}
		return nil
	}

	switch errors.GetCode(err) {
	case errors.ErrCodeMissingExecutable:
		fmt.Fprintf(h.Out, "%s UPX executable not found: %v\n", prefix, details("path"))
		fmt.Fprintf(h.Out, "Install UPX from https://upx.github.io/ and run 'upxgui config set <path>'.\n")

	case errors.ErrCodeMissingInputFile:
		fmt.Fprintf(h.Out, "%s Input file not found: %v\n", prefix, details("path"))

	case errors.ErrCodeConfigWrite:
		fmt.Fprintf(h.Out, "%s Could not save configuration to %v\n", prefix, details("path"))
		fmt.Fprintf(h.Out, "Check permissions or pass --config with a writable location.\n")

	case errors.ErrCodeExecutionInProgress:
		fmt.Fprintf(h.Out, "%s A command is already executing. Wait for it to finish or cancel it.\n", prefix)

	case errors.ErrCodeCanceled:
		fmt.Fprintf(h.Out, "%s Command canceled.\n", prefix)

	case errors.ErrCodeInvalidInput:
		fmt.Fprintf(h.Out, "%s %s\n", prefix, messageOf(err))

	default:
		fmt.Fprintf(h.Out, "%s Error: %v\n", prefix, err)
	}

	if h.Verbose {
		if toolErr, ok := err.(*errors.ToolError); ok {
			fmt.Fprintf(h.Out, "\nError details:\n%s\n", toolErr.ToJSON())
		}
	}
	return err
}

func messageOf(err error) string {
	if toolErr, ok := err.(*errors.ToolError); ok {
		return toolErr.Message
	}
	return err.Error()
}
