// Package cli implements the f5rail command.
//
// Called with host arguments (/KEY:VALUE), f5rail answers a CAD host through
// the exchange file named by /FILE. The plot subcommand lays out a transition
// curve for inspection on the terminal.
package cli

import (
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/f5rail/easement/internal/batargs"
	"github.com/f5rail/easement/internal/config"
	"github.com/f5rail/easement/jwc"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	LogLevel   string
	Format     string // "json" | "text"

	config *config.Config
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command of f5rail.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "f5rail [/KEY:VALUE ...]",
		Short: "f5rail - railway track layout for CAD",
		Long: `Lay out railway transition curves for a CAD host.

Called by the host through its batch file, f5rail reads arguments of the form
/KEY:VALUE and answers through the exchange file given by /FILE:

  /TRANSITION  diminish function, 1 sine half-wave or 2 linear (clothoid)
  /R0 /R1      radius at start and end, negative for left curves; omit for straight
  /TCL         length of the transition curve
  /L0          station of the start, default 0`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runLayout(opts, args)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default "+config.FileName+" next to the executable)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "warn", "log level (trace|debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewPlotCommand(opts))

	return cmd
}

// setup validates the global flags, loads the configuration and sets the
// log level. An explicit --log-level wins over the config file.
func (opts *RootOptions) setup(cmd *cobra.Command) error {
	if !slices.Contains(ValidFormats, opts.Format) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
	}
	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultPath()
	}
	c, err := config.Load(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "cannot load configuration", err)
	}
	opts.config = c
	level := c.Level()
	if cmd.Flags().Changed("log-level") {
		if level, err = logrus.ParseLevel(opts.LogLevel); err != nil {
			return WrapExitError(ExitCommandError, "invalid log level", err)
		}
	}
	logrus.SetLevel(level)
	logrus.Debugf("using config %s", path)
	return nil
}

// settings returns the loaded configuration, or the defaults if the
// command ran without the root's setup.
func (opts *RootOptions) settings() *config.Config {
	if opts.config == nil {
		opts.config = config.Default()
	}
	return opts.config
}

// runLayout answers a host invocation. Errors in the curve parameters are
// reported to the host and are not command errors.
func runLayout(opts *RootOptions, args []string) error {
	tr, err := batargs.Parse(args)
	if err != nil {
		logrus.Errorf("cannot answer host: %v", err)
		return WrapExitError(ExitCommandError, "invalid host arguments", err)
	}
	w, err := jwc.Create(tr.File, opts.settings().WriterOptions()...)
	if err != nil {
		return WrapExitError(ExitFailure, "cannot answer host", err)
	}
	if tr.Err != nil {
		logrus.Warnf("rejecting host arguments: %v", tr.Err)
		err = w.Error(tr.Err)
	} else {
		logrus.Infof("plotting %s transition curve of length %s into %s", tr.Param.Diminish, tr.Param.TCL, tr.File)
		err = w.Plot(tr.Param)
	}
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return WrapExitError(ExitFailure, "cannot answer host", err)
	}
	return nil
}
