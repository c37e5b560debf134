package builder_test

import (
	"testing"

	"github.com/oovm/resistor/builder"
	"github.com/oovm/resistor/color"
)

// benchmarkBuild runs Build on b and fails on unexpected errors.
func benchmarkBuild(b *testing.B, bands builder.Bands) {
	b.ReportAllocs()
	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := bands.Build(); err != nil {
			b.Fatalf("Build failed: %v", err)
		}
	}
}

// BenchmarkBuild_FourBand benchmarks the two-digit layout.
func BenchmarkBuild_FourBand(b *testing.B) {
	benchmarkBuild(b, builder.FourBand{Tens: color.Brown, Ones: color.Black, Multiplier: color.Red, Tolerance: color.Gold})
}

// BenchmarkBuild_SixBand benchmarks the full six-band layout.
func BenchmarkBuild_SixBand(b *testing.B) {
	benchmarkBuild(b, builder.SixBand{
		Hundreds: color.Red, Tens: color.Violet, Ones: color.Yellow,
		Multiplier: color.Blue, Tolerance: color.Green, TemperatureCoefficient: color.Blue,
	})
}
