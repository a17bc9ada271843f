// Package cmd contains the upxgui command tree.
package cmd

import (
	"os"

	"github.com/grovetools/upxgui/cli"
	"github.com/grovetools/upxgui/tui/app"
	"github.com/grovetools/upxgui/version"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// NewRootCmd returns the upxgui root command. Without a subcommand it opens
// the interactive screen when attached to a terminal and prints help
// otherwise.
func NewRootCmd() *cobra.Command {
	root := cli.NewStandardCommand("upxgui", "Build, preview and run UPX commands")
	root.Long = `Build, preview and run UPX commands.

Pick compression levels and flags, choose an input file and see the exact
command line before running it. The UPX executable location is stored in
upx_config.ini (see 'upxgui config path').`
	root.Args = cobra.NoArgs
	cli.SetVersionTemplate(root, version.GetInfo())

	root.RunE = func(cmd *cobra.Command, args []string) error {
		if !isTerminal() {
			return cmd.Help()
		}
		sess, store, err := openSession(cmd, nil, nil)
		if err != nil {
			return err
		}
		return app.Run(cmd.Context(), sess, store)
	}

	root.AddCommand(
		NewTUICmd(),
		NewPreviewCmd(),
		NewRunCmd(),
		NewConfigCmd(),
		cli.NewVersionCommand("upxgui"),
	)
	return root
}

var isTerminal = func() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}
