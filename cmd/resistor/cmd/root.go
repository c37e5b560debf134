// Package cmd provides the CLI commands for resistor.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oovm/resistor/internal/config"
	"github.com/oovm/resistor/internal/logging"
)

// version is overridden at link time with -ldflags "-X ...cmd.version=...".
var version = "0.1.0"

// options holds the persistent flags shared by every subcommand.
type options struct {
	cfgFile string
	verbose bool
}

// NewRootCmd builds the command tree. Each call returns an independent tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "resistor",
		Short: "Decode resistor color bands",
		Long: `resistor decodes the color bands of four-, five- and six-band axial
resistors into resistance, tolerance and temperature coefficient.

Examples:
  resistor decode brown black red gold
  resistor decode --format json red violet yellow blue green blue
  resistor colors`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(opts)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logging.Sync()
		},
	}

	root.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (.hcl or .json)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")

	root.AddCommand(newDecodeCmd())
	root.AddCommand(newColorsCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the CLI
func Execute() error {
	return NewRootCmd().Execute()
}

func initConfig(opts *options) error {
	cfg := config.Default()
	if opts.cfgFile != "" {
		loaded, err := config.Load(opts.cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}
	config.Set(cfg)

	lc := cfg.Logging()
	if opts.verbose {
		lc.Level = "debug"
	}
	if err := logging.Initialize(lc); err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}

	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "resistor version %s\n", version)
		},
	}
}
