// Package cmd - decode command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/oovm/resistor/builder"
	"github.com/oovm/resistor/color"
	"github.com/oovm/resistor/internal/config"
	"github.com/oovm/resistor/internal/logging"
	"github.com/oovm/resistor/internal/output"
)

type decodeOptions struct {
	format  string
	letters bool
}

func newDecodeCmd() *cobra.Command {
	opts := &decodeOptions{}

	c := &cobra.Command{
		Use:   "decode <color> <color> <color> <color> [color] [color]",
		Short: "Decode a four-, five- or six-band resistor",
		Long: `Decode band colors, given left to right, into a resistor value.

Four bands:  tens, ones, multiplier, tolerance
Five bands:  hundreds, tens, ones, multiplier, tolerance
Six bands:   hundreds, tens, ones, multiplier, tolerance, temperature coefficient

Use "empty" (or "none") for an unpainted tolerance band.`,
		Args: cobra.RangeArgs(builder.FourBandCount, builder.SixBandCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd, opts, args)
		},
	}

	c.Flags().StringVarP(&opts.format, "format", "f", "", "output format (text, json); defaults to the config value")
	c.Flags().BoolVarP(&opts.letters, "letters", "l", false, "include tolerance and temperature coefficient letter codes")

	return c
}

func runDecode(cmd *cobra.Command, opts *decodeOptions, args []string) error {
	cfg := config.Get()

	format := output.Format(cfg.Format)
	if opts.format != "" {
		format = output.Format(opts.format)
	}
	formatter, err := output.Get(format)
	if err != nil {
		return err
	}

	colors := make([]color.Color, len(args))
	for i, a := range args {
		c, err := color.Parse(a)
		if err != nil {
			return fmt.Errorf("band %d: %w", i+1, err)
		}
		colors[i] = c
	}

	bands, err := builder.FromColors(colors...)
	if err != nil {
		return err
	}
	logging.Debug("decoding bands", zap.Stringers("colors", colors))

	r, err := bands.Build()
	if err != nil {
		logging.Warn("invalid band sequence", zap.Error(err))
		return err
	}
	logging.Debug("decoded", zap.Stringer("resistor", r))

	result, err := output.NewResult(bands, r, opts.letters || cfg.Letters)
	if err != nil {
		return err
	}

	return formatter.Render(cmd.OutOrStdout(), result)
}
