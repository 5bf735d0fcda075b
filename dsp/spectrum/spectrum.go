package spectrum

import (
	"fmt"

	"github.com/cwbudde/algo-quake/dsp/fft"
	"github.com/cwbudde/algo-quake/dsp/window"
	"github.com/cwbudde/algo-vecmath"
)

// DefaultMinFrequency is the default lower bound for peak search.
// Bins below it are dominated by DC leakage and residual baseline drift.
const DefaultMinFrequency = 0.1

// Spectrum holds a one-sided spectrum from DC to Nyquist.
//
// Frequencies[k] = k * SampleRate / FFTSize, with FFTSize the zero-padded
// transform length. Values holds amplitudes for [Amplitude] output and
// squared amplitudes for [Power] output.
type Spectrum struct {
	Frequencies []float64
	Values      []float64
	SampleRate  float64
	FFTSize     int
}

// Option configures spectrum computation.
type Option func(*config)

type config struct {
	window    window.Type
	normalize bool
}

func defaultConfig() config {
	return config{
		window:    window.TypeHann,
		normalize: true,
	}
}

// WithWindow selects the taper applied before the transform.
// The default is Hann.
func WithWindow(t window.Type) Option {
	return func(c *config) {
		c.window = t
	}
}

// WithoutNormalization keeps raw transform magnitudes instead of the
// single-sided amplitude convention.
func WithoutNormalization() Option {
	return func(c *config) {
		c.normalize = false
	}
}

// Amplitude computes the one-sided amplitude spectrum of samples.
//
// The record is windowed, zero-padded to a power of two, transformed, and
// reduced to magnitudes for bins 0..N/2. Under the default normalization
// the DC and Nyquist bins divide by N and every interior bin scales by 2/N,
// so a full-scale sine landing on an exact bin reads its own amplitude.
func Amplitude(samples []float64, sampleRate float64, opts ...Option) (Spectrum, error) {
	if err := validate(samples, sampleRate); err != nil {
		return Spectrum{}, err
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	buf := append([]float64(nil), samples...)
	window.Apply(cfg.window, buf)

	re := fft.ZeroPad(buf)
	n := len(re)
	im := make([]float64, n)

	if err := fft.Transform(re, im); err != nil {
		return Spectrum{}, err
	}

	bins := n/2 + 1
	values := make([]float64, bins)
	vecmath.Magnitude(values, re[:bins], im[:bins])

	if cfg.normalize {
		nf := float64(n)
		vecmath.ScaleBlockInPlace(values[1:bins-1], 2/nf)
		values[0] /= nf
		values[bins-1] /= nf
	}

	return Spectrum{
		Frequencies: frequencies(bins, sampleRate, n),
		Values:      values,
		SampleRate:  sampleRate,
		FFTSize:     n,
	}, nil
}

// Power computes the one-sided power spectrum: the elementwise square of
// the amplitude spectrum on the same frequency axis.
func Power(samples []float64, sampleRate float64, opts ...Option) (Spectrum, error) {
	s, err := Amplitude(samples, sampleRate, opts...)
	if err != nil {
		return Spectrum{}, err
	}

	vecmath.MulBlockInPlace(s.Values, s.Values)

	return s, nil
}

// Peak is the outcome of a spectral peak search.
//
// A Bin of -1 marks the documented no-peak result: no bin at or above the
// minimum frequency existed. Frequency and Amplitude are zero in that case.
type Peak struct {
	Frequency float64
	Amplitude float64
	Bin       int
}

// Found reports whether the search located any qualifying bin.
func (p Peak) Found() bool { return p.Bin >= 0 }

// FindPeak scans for the largest value among bins with freqs >= minFreq.
// Both slices must be index-aligned; the shorter one bounds the scan.
func FindPeak(freqs, values []float64, minFreq float64) Peak {
	n := len(freqs)
	if len(values) < n {
		n = len(values)
	}

	best := Peak{Bin: -1}
	for i := 0; i < n; i++ {
		if freqs[i] < minFreq {
			continue
		}
		if best.Bin < 0 || values[i] > best.Amplitude {
			best = Peak{Frequency: freqs[i], Amplitude: values[i], Bin: i}
		}
	}

	return best
}

// Peak searches the spectrum for its dominant component at or above
// minFreq. Pass [DefaultMinFrequency] unless the record calls for a
// different cutoff.
func (s Spectrum) Peak(minFreq float64) Peak {
	return FindPeak(s.Frequencies, s.Values, minFreq)
}

func frequencies(bins int, sampleRate float64, fftSize int) []float64 {
	out := make([]float64, bins)
	df := sampleRate / float64(fftSize)
	for k := range out {
		out[k] = float64(k) * df
	}
	return out
}

func validate(samples []float64, sampleRate float64) error {
	if len(samples) < 2 {
		return fmt.Errorf("spectrum requires at least 2 samples: %d", len(samples))
	}
	if sampleRate <= 0 {
		return fmt.Errorf("spectrum sample rate must be > 0: %g", sampleRate)
	}
	return nil
}
