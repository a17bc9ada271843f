package cmd

import (
	"fmt"
	"time"

	"github.com/grovetools/upxgui/cli"
	"github.com/grovetools/upxgui/config"
	"github.com/grovetools/upxgui/options"
	"github.com/grovetools/upxgui/session"
	"github.com/spf13/cobra"
)

// optionFlags are the command-line equivalents of the interactive option
// checkboxes. They are shared by tui, preview and run.
type optionFlags struct {
	levels     []int
	modes      map[options.ModeFlag]*bool
	aux        map[options.AuxFlag]*bool
	output     string
	executable string
	timeout    time.Duration
}

// modeFlagName maps mode flags to CLI flag names. version and help are
// prefixed so they don't collide with cobra's own flags.
func modeFlagName(f options.ModeFlag) string {
	switch f {
	case options.Version, options.Help:
		return "show-" + f.Name()
	}
	return f.Name()
}

// auxFlagName maps auxiliary flags to CLI flag names. UPX's verbose flag is
// renamed so it doesn't shadow the persistent --verbose.
func auxFlagName(f options.AuxFlag) string {
	if f == options.Verbose {
		return "upx-verbose"
	}
	return f.Name()
}

var flagShorthands = map[string]string{
	"decompress":  "d",
	"list":        "l",
	"test":        "t",
	"quiet":       "q",
	"force":       "f",
	"keep-backup": "k",
}

func addOptionFlags(cmd *cobra.Command) *optionFlags {
	o := &optionFlags{
		modes: make(map[options.ModeFlag]*bool),
		aux:   make(map[options.AuxFlag]*bool),
	}
	fs := cmd.Flags()

	fs.IntSliceVar(&o.levels, "level", nil, "Compression level 1-9 (repeatable)")
	for _, f := range options.ModeFlags() {
		name := modeFlagName(f)
		o.modes[f] = fs.BoolP(name, flagShorthands[name], false, fmt.Sprintf("Add %s", f.Label()))
	}
	for _, f := range options.AuxFlags() {
		name := auxFlagName(f)
		o.aux[f] = fs.BoolP(name, flagShorthands[name], false, fmt.Sprintf("Add %s", f.Label()))
	}
	fs.StringVarP(&o.output, "output", "o", "", "Write the result to this file (-o)")
	fs.StringVar(&o.executable, "upx", "", "UPX executable for this invocation only")
	fs.DurationVar(&o.timeout, "timeout", 0, "Kill the command after this long")

	return o
}

// apply copies the flag values and the optional input argument into sess.
func (o *optionFlags) apply(sess *session.Session, args []string) error {
	for _, n := range o.levels {
		l := options.Level(n)
		if !l.Valid() {
			return fmt.Errorf("invalid --level %d: must be between %d and %d", n, options.MinLevel, options.MaxLevel)
		}
		sess.SetLevel(l, true)
	}
	for f, on := range o.modes {
		if *on {
			sess.SetMode(f, true)
		}
	}
	for f, on := range o.aux {
		if *on {
			sess.SetAux(f, true)
		}
	}
	if o.output != "" {
		sess.SetOutputEnabled(true)
		sess.SetOutputPath(o.output)
	}
	if o.executable != "" {
		sess.ReloadExecutablePath(o.executable)
	}
	if o.timeout > 0 {
		sess.SetTimeout(o.timeout)
	}
	if len(args) > 0 {
		if err := sess.DeliverPath(session.TargetInputFile, args[0]); err != nil {
			return err
		}
	}
	return nil
}

// openStore returns the store selected by --config, or the default one.
func openStore(cmd *cobra.Command) *config.Store {
	return config.NewStore(cli.GetOptions(cmd).ConfigFile)
}

// openSession builds a session from the store and the option flags.
func openSession(cmd *cobra.Command, o *optionFlags, args []string) (*session.Session, *config.Store, error) {
	store := openStore(cmd)
	sess := session.New(store, nil)
	if o != nil {
		if err := o.apply(sess, args); err != nil {
			return nil, nil, err
		}
	}
	return sess, store, nil
}
