package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/grovetools/upxgui/cli"
	"github.com/grovetools/upxgui/logging"
	"github.com/grovetools/upxgui/process"
	"github.com/grovetools/upxgui/session"
	"github.com/spf13/cobra"
)

// ExitError reports a finished run whose status is already on screen.
// main exits with Code without printing anything further.
type ExitError struct {
	Code  int
	State session.State
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command %s (exit code %d)", e.State, e.Code)
}

// exitCodeFor mirrors the child's exit code. Runs that never produced one
// map to 1, cancellation to 130.
func exitCodeFor(out session.Outcome) int {
	switch out.State {
	case session.StateSucceeded:
		return 0
	case session.StateFailed:
		if out.Result != nil && out.Result.ExitCode > 0 {
			return out.Result.ExitCode
		}
		return 1
	case session.StateCanceled:
		return 130
	}
	return 1
}

// printTranscript writes the styled equivalent of process.Transcript.
func printTranscript(w io.Writer, res *process.Result) {
	p := logging.NewPrettyLogger().WithWriter(w)
	p.Field("Executing", res.Command)
	p.Divider(len(process.TranscriptRule))
	p.Raw(res.Output)

	switch res.Status {
	case process.StatusSucceeded:
		p.Success(process.StatusLine(res))
	case process.StatusCanceled:
		p.WarnPretty(process.StatusLine(res))
	default:
		p.ErrorPretty(process.StatusLine(res), nil)
	}
}

func NewRunCmd() *cobra.Command {
	var flags *optionFlags
	cmd := &cobra.Command{
		Use:   "run [input]",
		Short: "Build the command line and execute it",
		Long: `Build the command line from the given options and execute it.

Combined stdout and stderr of UPX are printed after the command, followed by
a status line. upxgui exits with the same code as UPX.`,
		Example: `  upxgui run --level 9 --keep-backup app.exe
  upxgui run -t app.exe --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := cli.GetLogger(cmd)
			sess, _, err := openSession(cmd, flags, args)
			if err != nil {
				return err
			}

			logger.WithField("command", sess.Preview()).Debug("Running")
			out := sess.Run(cmd.Context())
			if out.Err != nil {
				return out.Err
			}

			if cli.GetOptions(cmd).JSONOutput {
				data, err := json.MarshalIndent(out.Result, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal result: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			} else {
				printTranscript(cmd.OutOrStdout(), out.Result)
			}

			if code := exitCodeFor(out); code != 0 {
				return &ExitError{Code: code, State: out.State}
			}
			return nil
		},
	}
	flags = addOptionFlags(cmd)
	return cmd
}
