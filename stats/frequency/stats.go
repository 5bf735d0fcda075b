// Package frequency computes shape descriptors of a Fourier amplitude
// spectrum. The mean period and predominant period follow the usual
// strong-motion definitions: Tm weights each period by the squared Fourier
// amplitude over the 0.25-20 Hz band, Tp is the inverse of the frequency
// carrying the largest amplitude.
package frequency

import (
	"math"

	"github.com/cwbudde/algo-quake/dsp/spectrum"
)

// Frequency band used for the mean-period integral.
const (
	meanPeriodLowHz  = 0.25
	meanPeriodHighHz = 20.0
)

// Stats holds frequency-domain descriptors of an amplitude spectrum.
type Stats struct {
	BinCount int
	Energy   float64 // sum of squared amplitudes

	Centroid float64 // amplitude-weighted mean frequency, Hz
	Spread   float64 // standard deviation around the centroid, Hz

	MeanPeriod        float64 // Tm, seconds
	PredominantPeriod float64 // Tp = 1/peak frequency, seconds

	Rolloff   float64 // frequency below which 85% of the energy lies, Hz
	Bandwidth float64 // 3 dB width around the spectral peak, Hz
}

// Calculate computes all descriptors from a one-sided amplitude spectrum.
// An empty spectrum yields the zero value.
func Calculate(s spectrum.Spectrum) Stats {
	n := len(s.Values)
	if n < 2 || len(s.Frequencies) != n {
		return Stats{BinCount: n}
	}

	var out Stats
	out.BinCount = n

	var sum float64
	for _, v := range s.Values {
		sum += v
		out.Energy += v * v
	}
	if sum == 0 {
		return out
	}

	out.Centroid = centroid(s, sum)
	out.Spread = spread(s, out.Centroid, sum)
	out.MeanPeriod = meanPeriod(s)
	out.PredominantPeriod = predominantPeriod(s)
	out.Rolloff = rolloff(s, 0.85, out.Energy)
	out.Bandwidth = bandwidth(s)

	return out
}

func centroid(s spectrum.Spectrum, sum float64) float64 {
	var weighted float64
	for i, v := range s.Values {
		weighted += s.Frequencies[i] * v
	}
	return weighted / sum
}

func spread(s spectrum.Spectrum, cent, sum float64) float64 {
	var weighted float64
	for i, v := range s.Values {
		diff := s.Frequencies[i] - cent
		weighted += diff * diff * v
	}
	return math.Sqrt(weighted / sum)
}

// MeanPeriod returns Tm = sum(Ci²/fi) / sum(Ci²) over the 0.25-20 Hz band.
// Zero is returned when the spectrum carries no energy in the band.
func MeanPeriod(s spectrum.Spectrum) float64 {
	return meanPeriod(s)
}

func meanPeriod(s spectrum.Spectrum) float64 {
	var num, den float64
	for i, v := range s.Values {
		f := s.Frequencies[i]
		if f < meanPeriodLowHz || f > meanPeriodHighHz {
			continue
		}
		c2 := v * v
		num += c2 / f
		den += c2
	}
	if den == 0 {
		return 0
	}
	return num / den
}

// PredominantPeriod returns 1/f of the strongest spectral line above the
// default peak-search floor. A silent spectrum, or one with no bin above
// the floor, has no predominant period and yields 0.
func PredominantPeriod(s spectrum.Spectrum) float64 {
	return predominantPeriod(s)
}

func predominantPeriod(s spectrum.Spectrum) float64 {
	p := s.Peak(spectrum.DefaultMinFrequency)
	if !p.Found() || p.Amplitude <= 0 || p.Frequency <= 0 {
		return 0
	}
	return 1 / p.Frequency
}

// Rolloff returns the frequency below which the given fraction (0..1) of
// the spectral energy lies.
func Rolloff(s spectrum.Spectrum, percent float64) float64 {
	var energy float64
	for _, v := range s.Values {
		energy += v * v
	}
	return rolloff(s, percent, energy)
}

func rolloff(s spectrum.Spectrum, percent, totalEnergy float64) float64 {
	n := len(s.Values)
	if n < 2 || totalEnergy == 0 {
		return 0
	}
	threshold := percent * totalEnergy
	var cum float64
	for i, v := range s.Values {
		cum += v * v
		if cum >= threshold {
			return s.Frequencies[i]
		}
	}
	return s.Frequencies[n-1]
}

// Bandwidth returns the 3 dB width around the spectral peak in Hz. The
// crossing points are located by linear interpolation between bins.
func Bandwidth(s spectrum.Spectrum) float64 {
	return bandwidth(s)
}

func bandwidth(s spectrum.Spectrum) float64 {
	n := len(s.Values)
	if n < 2 {
		return 0
	}

	peakBin := 0
	peakVal := s.Values[0]
	for i, v := range s.Values {
		if v > peakVal {
			peakVal = v
			peakBin = i
		}
	}
	if peakVal == 0 {
		return 0
	}

	threshold := peakVal / math.Sqrt2

	lowerFreq := s.Frequencies[0]
	for i := peakBin; i >= 1; i-- {
		if s.Values[i-1] <= threshold && s.Values[i] > threshold {
			lowerFreq = interpFreq(s, i-1, i, threshold)
			break
		}
	}

	upperFreq := s.Frequencies[n-1]
	for i := peakBin; i < n-1; i++ {
		if s.Values[i+1] <= threshold && s.Values[i] > threshold {
			upperFreq = interpFreq(s, i, i+1, threshold)
			break
		}
	}

	bw := upperFreq - lowerFreq
	if bw < 0 {
		return 0
	}
	return bw
}

// interpFreq linearly interpolates the frequency where the amplitude
// crosses the threshold between two adjacent bins.
func interpFreq(s spectrum.Spectrum, binLow, binHigh int, threshold float64) float64 {
	fLow := s.Frequencies[binLow]
	fHigh := s.Frequencies[binHigh]

	denom := s.Values[binHigh] - s.Values[binLow]
	if denom == 0 {
		return (fLow + fHigh) / 2
	}
	t := (threshold - s.Values[binLow]) / denom
	return fLow + t*(fHigh-fLow)
}
