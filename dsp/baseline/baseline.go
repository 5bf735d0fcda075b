// Package baseline provides linear baseline correction and trapezoidal
// time integration for uniformly sampled records.
//
// Integrating measured acceleration twice is notoriously drift-prone: any
// constant offset or linear trend in the input grows quadratically in the
// displacement. Each integration pass therefore removes the best-fit line
// from its own input before accumulating, so velocity and displacement are
// corrected independently rather than through one cumulative fix of the
// original acceleration.
package baseline

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Option configures an integration pass.
type Option func(*config)

type config struct {
	detrend bool
}

// WithoutDetrend disables baseline removal before integration.
func WithoutDetrend() Option {
	return func(c *config) {
		c.detrend = false
	}
}

// Remove subtracts the ordinary least-squares line over the sample index
// from x and returns the result as a new slice. Fewer than two samples
// leave nothing to fit; the input is returned as an unmodified copy.
func Remove(x []float64) []float64 {
	out := append([]float64(nil), x...)
	if len(x) < 2 {
		return out
	}

	idx := make([]float64, len(x))
	for i := range idx {
		idx[i] = float64(i)
	}

	intercept, slope := stat.LinearRegression(idx, x, nil, false)
	for i := range out {
		out[i] -= intercept + slope*float64(i)
	}

	return out
}

// Integrate accumulates x with the composite trapezoidal rule at fixed step
// dt, starting from zero. The input is baseline-corrected first unless
// [WithoutDetrend] is given. Fewer than two samples integrate to [0].
func Integrate(x []float64, dt float64, opts ...Option) ([]float64, error) {
	if dt <= 0 {
		return nil, fmt.Errorf("integration step must be > 0: %g", dt)
	}

	if len(x) < 2 {
		return []float64{0}, nil
	}

	cfg := config{detrend: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	src := x
	if cfg.detrend {
		src = Remove(x)
	}

	out := make([]float64, len(src))
	half := dt / 2
	for i := 1; i < len(src); i++ {
		out[i] = out[i-1] + (src[i-1]+src[i])*half
	}

	return out, nil
}

// Velocity integrates a ground-acceleration record once.
func Velocity(accel []float64, dt float64, opts ...Option) ([]float64, error) {
	return Integrate(accel, dt, opts...)
}

// Displacement integrates a ground-acceleration record twice. The second
// pass detrends the integrated velocity on its own, compounding two
// independent linear corrections.
func Displacement(accel []float64, dt float64, opts ...Option) ([]float64, error) {
	vel, err := Integrate(accel, dt, opts...)
	if err != nil {
		return nil, err
	}

	return Integrate(vel, dt, opts...)
}
