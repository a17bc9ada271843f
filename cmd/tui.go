package cmd

import (
	"github.com/grovetools/upxgui/tui/app"
	"github.com/spf13/cobra"
)

func NewTUICmd() *cobra.Command {
	var flags *optionFlags
	cmd := &cobra.Command{
		Use:   "tui [input]",
		Short: "Open the interactive option screen",
		Long: `Open the interactive option screen.

Option flags and the input argument preselect the corresponding checkboxes
and paths; everything stays editable on screen.`,
		Example: `  # Start with level 9 and force preselected
  upxgui tui --level 9 --force app.exe`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, store, err := openSession(cmd, flags, args)
			if err != nil {
				return err
			}
			return app.Run(cmd.Context(), sess, store)
		},
	}
	flags = addOptionFlags(cmd)
	return cmd
}
