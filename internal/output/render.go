package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

type textFormatter struct{}

func (textFormatter) Format() Format { return FormatText }

// Render writes e.g.
//
//	1000Ω ± 5% (J)
//	  1 brown   tens digit
//	  ...
func (textFormatter) Render(w io.Writer, r *Result) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%sΩ ± %s%%", r.Resistance, r.Tolerance)
	if r.ToleranceLetter != "" {
		fmt.Fprintf(&sb, " (%s)", r.ToleranceLetter)
	}
	if r.TemperatureCoefficient != nil {
		fmt.Fprintf(&sb, ", %d ppm/K", *r.TemperatureCoefficient)
		if r.TemperatureCoefficientLetter != "" {
			fmt.Fprintf(&sb, " (%s)", r.TemperatureCoefficientLetter)
		}
	}
	sb.WriteByte('\n')
	for _, b := range r.Bands {
		fmt.Fprintf(&sb, "  %d %-7s %s\n", b.Position, b.Color, b.Role)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

type jsonFormatter struct{}

func (jsonFormatter) Format() Format { return FormatJSON }

func (jsonFormatter) Render(w io.Writer, r *Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
