package response_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-quake/measure/response"
)

func ExampleCalculate() {
	// One second of a 2 Hz harmonic ground motion at 100 Hz.
	accel := make([]float64, 100)
	for i := range accel {
		accel[i] = math.Sin(2 * math.Pi * 2 * float64(i) / 100)
	}

	result, _ := response.Calculate(accel, 100, response.DefaultConfig())
	fmt.Printf("%d periods, dampings %v, first period %.2f s\n",
		len(result.Periods), result.Dampings, result.Periods[0])

	// Output:
	// 201 periods, dampings [0.02 0.03 0.05], first period 0.02 s
}
