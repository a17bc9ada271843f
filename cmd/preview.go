package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/grovetools/upxgui/cli"
	"github.com/spf13/cobra"
)

// PreviewOutput is the --json form of the preview command.
type PreviewOutput struct {
	Command    string `json:"command"`
	Executable string `json:"executable"`
	InputFile  string `json:"input_file,omitempty"`
}

func NewPreviewCmd() *cobra.Command {
	var flags *optionFlags
	cmd := &cobra.Command{
		Use:   "preview [input]",
		Short: "Print the command line for the given options",
		Example: `  upxgui preview --level 9 app.exe
  upxgui preview -d -o restored.exe packed.exe --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, _, err := openSession(cmd, flags, args)
			if err != nil {
				return err
			}
			if !cli.GetOptions(cmd).JSONOutput {
				fmt.Fprintln(cmd.OutOrStdout(), sess.Preview())
				return nil
			}

			out := PreviewOutput{
				Command:    sess.Preview(),
				Executable: sess.ExecutablePath(),
				InputFile:  sess.Snapshot().InputFile,
			}
			data, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal preview: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
	flags = addOptionFlags(cmd)
	return cmd
}
