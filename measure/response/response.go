package response

import (
	"context"
	"fmt"
	"math"
)

// Default period grid and damping set. 0.02 s to 10 s spans the natural
// periods of ordinary structures; the damping ratios are the conventional
// design values.
const (
	DefaultPeriodMin       = 0.02
	DefaultPeriodMax       = 10.0
	DefaultPeriodDivisions = 200
)

func defaultDampings() []float64 {
	return []float64{0.02, 0.03, 0.05}
}

// Newmark constants for the constant-average-acceleration variant, which
// is unconditionally stable for any period/step ratio.
const (
	newmarkBeta  = 0.25
	newmarkGamma = 0.5
)

// Config selects the period grid and damping ratios of a sweep.
type Config struct {
	// PeriodMin and PeriodMax bound the geometric period grid, seconds.
	PeriodMin float64
	PeriodMax float64
	// PeriodDivisions is the number of grid intervals; the grid has
	// PeriodDivisions+1 points.
	PeriodDivisions int
	// Dampings holds the damping ratios to sweep, each in [0, 1).
	Dampings []float64
}

// DefaultConfig returns the conventional sweep configuration:
// 201 log-spaced periods from 0.02 s to 10 s at 2%, 3%, and 5% damping.
func DefaultConfig() Config {
	return Config{
		PeriodMin:       DefaultPeriodMin,
		PeriodMax:       DefaultPeriodMax,
		PeriodDivisions: DefaultPeriodDivisions,
		Dampings:        defaultDampings(),
	}
}

// Validate checks the configuration eagerly, before any computation.
func (c Config) Validate() error {
	if c.PeriodMin <= 0 {
		return fmt.Errorf("response period minimum must be > 0: %g", c.PeriodMin)
	}
	if c.PeriodMax <= c.PeriodMin {
		return fmt.Errorf("response period maximum must be > minimum: %g <= %g", c.PeriodMax, c.PeriodMin)
	}
	if c.PeriodDivisions < 1 {
		return fmt.Errorf("response period divisions must be >= 1: %d", c.PeriodDivisions)
	}
	if len(c.Dampings) == 0 {
		return fmt.Errorf("response sweep requires at least one damping ratio")
	}
	for i, h := range c.Dampings {
		if h < 0 || h >= 1 {
			return fmt.Errorf("response damping ratio %d must be in [0, 1): %g", i, h)
		}
	}
	return nil
}

// PeriodGrid returns the geometric (log-uniform) period grid of cfg:
// periods[i] = PeriodMin * ratio^i with ratio = (PeriodMax/PeriodMin)^(1/divisions).
// The grid is strictly increasing with PeriodDivisions+1 points.
func PeriodGrid(cfg Config) ([]float64, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return periodGrid(cfg), nil
}

func periodGrid(cfg Config) []float64 {
	ratio := math.Pow(cfg.PeriodMax/cfg.PeriodMin, 1/float64(cfg.PeriodDivisions))

	out := make([]float64, cfg.PeriodDivisions+1)
	for i := range out {
		out[i] = cfg.PeriodMin * math.Pow(ratio, float64(i))
	}
	return out
}

// Result holds peak SDOF responses over the full record.
//
// The response matrices are indexed [dampingIndex][periodIndex], aligned
// with Dampings and Periods. Every value is a running maximum of absolute
// response: spectral acceleration Sa in m/s² (absolute, relative plus
// ground), spectral velocity Sv in m/s, spectral displacement Sd in m.
// None is ever negative.
type Result struct {
	Periods      []float64
	Dampings     []float64
	Acceleration [][]float64
	Velocity     [][]float64
	Displacement [][]float64
}

// Calculate sweeps the Newmark-β SDOF solver over the configured period
// grid and damping set. accel is ground acceleration in m/s² sampled at
// sampleRate Hz; use [Runner] or [CalculateContext] when cancellation is
// needed.
func Calculate(accel []float64, sampleRate float64, cfg Config) (Result, error) {
	return CalculateContext(context.Background(), accel, sampleRate, cfg)
}

// CalculateContext is [Calculate] with cooperative cancellation. The
// context is checked once per period row; a canceled sweep returns the
// context error and no partial result.
func CalculateContext(ctx context.Context, accel []float64, sampleRate float64, cfg Config) (Result, error) {
	if len(accel) < 2 {
		return Result{}, fmt.Errorf("response sweep requires at least 2 samples: %d", len(accel))
	}
	if sampleRate <= 0 {
		return Result{}, fmt.Errorf("response sample rate must be > 0: %g", sampleRate)
	}
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	periods := periodGrid(cfg)
	dampings := append([]float64(nil), cfg.Dampings...)
	dt := 1 / sampleRate

	result := Result{
		Periods:      periods,
		Dampings:     dampings,
		Acceleration: make([][]float64, len(dampings)),
		Velocity:     make([][]float64, len(dampings)),
		Displacement: make([][]float64, len(dampings)),
	}
	for di := range dampings {
		result.Acceleration[di] = make([]float64, len(periods))
		result.Velocity[di] = make([]float64, len(periods))
		result.Displacement[di] = make([]float64, len(periods))
	}

	for pi, period := range periods {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		for di, damping := range dampings {
			sa, sv, sd := newmarkPeaks(accel, dt, period, damping)
			result.Acceleration[di][pi] = sa
			result.Velocity[di][pi] = sv
			result.Displacement[di][pi] = sd
		}
	}

	return result, nil
}

// newmarkPeaks steps one SDOF oscillator through the full record and
// returns the peak absolute acceleration, velocity, and displacement.
//
// The oscillator starts at rest in equilibrium under the first sample:
// zero displacement and velocity, relative acceleration -ground[0]. Each
// step solves the scalar effective-stiffness equation for the next
// displacement and back-substitutes acceleration and velocity.
func newmarkPeaks(ground []float64, dt, period, damping float64) (sa, sv, sd float64) {
	omega := 2 * math.Pi / period
	k := omega * omega
	c := 2 * damping * omega

	a0 := 1 / (newmarkBeta * dt * dt)
	a1 := newmarkGamma / (newmarkBeta * dt)
	a2 := 1 / (newmarkBeta * dt)
	a3 := 1/(2*newmarkBeta) - 1
	a4 := newmarkGamma/newmarkBeta - 1
	a5 := dt * (newmarkGamma/(2*newmarkBeta) - 1)

	khat := k + a0 + a1*c

	d, v := 0.0, 0.0
	a := -ground[0]

	for i := 1; i < len(ground); i++ {
		load := -ground[i]
		phat := load + a0*d + a2*v + a3*a + c*(a1*d+a4*v+a5*a)

		dNext := phat / khat
		aNext := a0*(dNext-d) - a2*v - a3*a
		vNext := v + dt*((1-newmarkGamma)*a+newmarkGamma*aNext)

		if abs := math.Abs(aNext + ground[i]); abs > sa {
			sa = abs
		}
		if abs := math.Abs(vNext); abs > sv {
			sv = abs
		}
		if abs := math.Abs(dNext); abs > sd {
			sd = abs
		}

		d, v, a = dNext, vNext, aNext
	}

	return sa, sv, sd
}
