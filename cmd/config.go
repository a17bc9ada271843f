package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/grovetools/upxgui/cli"
	"github.com/grovetools/upxgui/util/pathutil"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// ConfigView is the rendered form of the persisted configuration.
type ConfigView struct {
	Path           string `json:"path" yaml:"path" toml:"path"`
	Exists         bool   `json:"exists" yaml:"exists" toml:"exists"`
	ExecutablePath string `json:"upx_path" yaml:"upx_path" toml:"upx_path"`
}

func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or change the stored UPX executable path",
		Long: `Inspect or change the stored UPX executable path.

The location of upx_config.ini is, in order: --config, $UPXGUI_CONFIG,
then the upxgui directory under the user config directory.`,
	}
	cmd.AddCommand(newConfigGetCmd(), newConfigSetCmd(), newConfigShowCmd(), newConfigPathCmd())
	return cmd
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Print the stored executable path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), openStore(cmd).Load())
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set PATH",
		Short: "Store a new executable path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := cli.GetLogger(cmd)
			store := openStore(cmd)
			path := pathutil.ExpandOrKeep(args[0])
			if err := store.Save(path); err != nil {
				return err
			}
			if _, err := os.Stat(path); err != nil {
				logger.WithField("path", path).Warn("Stored path does not exist yet")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "upx_path = %s\n", path)
			return nil
		},
	}
}

func newConfigShowCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the configuration file and its contents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := openStore(cmd)
			view := ConfigView{Path: store.Path()}
			if _, err := os.Stat(store.Path()); err == nil {
				view.Exists = true
			}
			view.ExecutablePath = store.Load()

			if cli.GetOptions(cmd).JSONOutput {
				format = "json"
			}
			data, err := renderConfig(view, format)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "Output format: yaml, toml or json")
	return cmd
}

func renderConfig(view ConfigView, format string) ([]byte, error) {
	switch format {
	case "yaml", "yml":
		return yaml.Marshal(view)
	case "toml":
		return toml.Marshal(view)
	case "json":
		data, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
	return nil, fmt.Errorf("unknown format %q: use yaml, toml or json", format)
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the location of upx_config.ini",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), openStore(cmd).Path())
			return nil
		},
	}
}
