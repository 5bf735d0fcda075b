package frequency_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-quake/dsp/spectrum"
	"github.com/cwbudde/algo-quake/dsp/window"
	"github.com/cwbudde/algo-quake/stats/frequency"
)

func ExampleCalculate() {
	// A 5 Hz harmonic concentrates all spectral energy in one line.
	accel := make([]float64, 1024)
	for i := range accel {
		accel[i] = math.Sin(2 * math.Pi * 5 * float64(i) / 256)
	}
	s, err := spectrum.Amplitude(accel, 256, spectrum.WithWindow(window.TypeRectangular))
	if err != nil {
		panic(err)
	}

	stats := frequency.Calculate(s)
	fmt.Printf("centroid %.1f Hz, mean period %.2f s\n", stats.Centroid, stats.MeanPeriod)

	// Output:
	// centroid 5.0 Hz, mean period 0.20 s
}
