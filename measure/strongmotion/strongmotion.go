package strongmotion

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-quake/dsp/baseline"
	"github.com/cwbudde/algo-quake/dsp/spectrum"
	"github.com/cwbudde/algo-quake/dsp/unit"
	"github.com/cwbudde/algo-quake/dsp/window"
	"github.com/cwbudde/algo-quake/measure/response"
	"github.com/cwbudde/algo-quake/stats/frequency"
	"github.com/cwbudde/algo-quake/stats/motion"
)

// Husid fractions bounding the significant duration.
const (
	significantLower = 0.05
	significantUpper = 0.75
)

// Config holds analysis parameters.
type Config struct {
	Window           window.Type
	PeakMinFrequency float64
	// Response, when non-nil, additionally runs the SDOF sweep inline.
	// Interactive callers should prefer [response.Runner] instead.
	Response *response.Config
}

// Option configures an analysis.
type Option func(*Config)

// WithWindow selects the spectral taper. The default is Hann.
func WithWindow(t window.Type) Option {
	return func(c *Config) {
		c.Window = t
	}
}

// WithPeakMinFrequency sets the lower bound of the dominant-frequency
// search. The default is [spectrum.DefaultMinFrequency].
func WithPeakMinFrequency(minFreq float64) Option {
	return func(c *Config) {
		c.PeakMinFrequency = minFreq
	}
}

// WithResponseSpectrum runs the SDOF sweep as part of the analysis.
func WithResponseSpectrum(cfg response.Config) Option {
	return func(c *Config) {
		copied := cfg
		copied.Dampings = append([]float64(nil), cfg.Dampings...)
		c.Response = &copied
	}
}

// Analysis bundles everything derived from one ground-motion record.
// All series and scalars are SI: m/s², m/s, m.
type Analysis struct {
	SampleRate float64
	Duration   float64

	Acceleration []float64
	Velocity     []float64
	Displacement []float64

	// Peak ground motion.
	PGA float64
	PGV float64
	PGD float64

	// Intensity measures.
	AriasIntensity      float64 // m/s
	SignificantDuration float64 // seconds, 5-75% of the Husid curve
	CAV                 float64 // m/s, cumulative absolute velocity

	Spectrum          spectrum.Spectrum
	DominantFrequency spectrum.Peak

	Stats    motion.Stats
	Spectral frequency.Stats

	// Response is set only when the sweep was requested.
	Response *response.Result
}

// Analyze normalizes the record to m/s² and derives velocity and
// displacement histories, the Fourier amplitude spectrum with its dominant
// frequency, descriptive statistics, and the standard intensity measures.
func Analyze(samples []float64, sampleRate float64, u unit.Unit, opts ...Option) (Analysis, error) {
	if len(samples) < 2 {
		return Analysis{}, fmt.Errorf("analysis requires at least 2 samples: %d", len(samples))
	}
	if sampleRate <= 0 {
		return Analysis{}, fmt.Errorf("analysis sample rate must be > 0: %g", sampleRate)
	}

	cfg := Config{
		Window:           window.TypeHann,
		PeakMinFrequency: spectrum.DefaultMinFrequency,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	accel := unit.ToSI(samples, u)
	dt := 1 / sampleRate

	velocity, err := baseline.Velocity(accel, dt)
	if err != nil {
		return Analysis{}, err
	}
	displacement, err := baseline.Displacement(accel, dt)
	if err != nil {
		return Analysis{}, err
	}

	spec, err := spectrum.Amplitude(accel, sampleRate, spectrum.WithWindow(cfg.Window))
	if err != nil {
		return Analysis{}, err
	}

	arias, husid := ariasIntensity(accel, dt)

	out := Analysis{
		SampleRate:          sampleRate,
		Duration:            float64(len(accel)) * dt,
		Acceleration:        accel,
		Velocity:            velocity,
		Displacement:        displacement,
		PGA:                 vecmath.MaxAbs(accel),
		PGV:                 vecmath.MaxAbs(velocity),
		PGD:                 vecmath.MaxAbs(displacement),
		AriasIntensity:      arias,
		SignificantDuration: significantDuration(husid, dt),
		CAV:                 cumulativeAbsoluteVelocity(accel, dt),
		Spectrum:            spec,
		DominantFrequency:   spec.Peak(cfg.PeakMinFrequency),
		Stats:               motion.Calculate(accel, sampleRate),
		Spectral:            frequency.Calculate(spec),
	}

	if cfg.Response != nil {
		result, err := response.Calculate(accel, sampleRate, *cfg.Response)
		if err != nil {
			return Analysis{}, err
		}
		out.Response = &result
	}

	return out, nil
}

// ariasIntensity returns Ia = pi/(2g) * integral(a² dt) together with the
// unscaled cumulative energy (Husid) curve used for duration measures.
func ariasIntensity(accel []float64, dt float64) (float64, []float64) {
	husid := make([]float64, len(accel))
	half := dt / 2
	for i := 1; i < len(accel); i++ {
		husid[i] = husid[i-1] + (accel[i-1]*accel[i-1]+accel[i]*accel[i])*half
	}

	scale := math.Pi / (2 * unit.GravityFactor)
	return scale * husid[len(husid)-1], husid
}

// significantDuration returns the time between the 5% and 75% crossings
// of the normalized Husid curve. A record with no accumulated energy has
// zero significant duration.
func significantDuration(husid []float64, dt float64) float64 {
	total := husid[len(husid)-1]
	if total <= 0 {
		return 0
	}

	lower := significantLower * total
	upper := significantUpper * total

	iLower, iUpper := -1, -1
	for i, v := range husid {
		if iLower < 0 && v >= lower {
			iLower = i
		}
		if v >= upper {
			iUpper = i
			break
		}
	}
	if iLower < 0 || iUpper < 0 {
		return 0
	}

	return float64(iUpper-iLower) * dt
}

// cumulativeAbsoluteVelocity returns CAV = integral(|a| dt).
func cumulativeAbsoluteVelocity(accel []float64, dt float64) float64 {
	var cav float64
	half := dt / 2
	for i := 1; i < len(accel); i++ {
		cav += (math.Abs(accel[i-1]) + math.Abs(accel[i])) * half
	}
	return cav
}
