// Package cmd - colors command
package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/oovm/resistor/color"
)

func newColorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "colors",
		Short: "Print the color table",
		Long:  "Print every band color with its value in each role; \"-\" marks a color that is invalid in that role.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeColorTable(cmd.OutOrStdout())
		},
	}
}

// writeColorTable renders one row per color in declaration order.
func writeColorTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "COLOR\tDIGIT\tMULTIPLIER\tTOLERANCE\tTEMPCO")
	for _, c := range color.All() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", c, digitCell(c), multiplierCell(c), toleranceCell(c), tempcoCell(c))
	}

	return tw.Flush()
}

const noValue = "-"

func digitCell(c color.Color) string {
	d, err := color.Digit(c)
	if err != nil {
		return noValue
	}

	return fmt.Sprint(d)
}

func multiplierCell(c color.Color) string {
	exp, err := color.MultiplierExponent(c)
	if err != nil {
		return noValue
	}

	return fmt.Sprintf("1e%d", exp)
}

func toleranceCell(c color.Color) string {
	if color.RoleTolerance.Lookup(c) != nil {
		return noValue
	}
	pct, _ := color.Tolerance(c)
	letter, _ := color.ToleranceLetter(c)

	return fmt.Sprintf("%s%% %c", pct, letter)
}

func tempcoCell(c color.Color) string {
	if color.RoleTemperatureCoefficient.Lookup(c) != nil {
		return noValue
	}
	ppm, _ := color.TemperatureCoefficient(c)
	letter, _ := color.TemperatureCoefficientLetter(c)

	return fmt.Sprintf("%dppm/K %c", ppm, letter)
}
