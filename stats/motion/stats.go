// Package motion computes descriptive statistics of a raw motion record.
package motion

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Stats holds descriptive statistics of a uniformly sampled record.
type Stats struct {
	Count      int
	Duration   float64 // seconds, Count / sampleRate; 0 when the rate is unknown
	Max        float64
	Min        float64
	Mean       float64
	Variance   float64 // population variance
	StdDev     float64
	RMS        float64
	Median     float64
	PeakToPeak float64
	Skewness   float64
	Kurtosis   float64 // excess kurtosis
}

// Calculate computes all statistics in a single pass using Welford's
// online algorithm for numerical stability on the higher-order moments.
// The median requires a sorted copy and is the only non-streaming part.
// A zero standard deviation forces skewness and kurtosis to 0.
func Calculate(signal []float64, sampleRate float64) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{}
	}

	// Welford accumulators.
	var (
		mean float64
		m2   float64
		m3   float64
		m4   float64
	)

	var (
		sumSq  float64
		maxVal = signal[0]
		minVal = signal[0]
	)

	for i, x := range signal {
		ni := float64(i + 1)
		delta := x - mean
		deltaN := delta / ni
		deltaN2 := deltaN * deltaN
		term1 := delta * deltaN * float64(i)

		// M4 must be updated before M3, and M3 before M2.
		m4 += term1*deltaN2*(ni*ni-3*ni+3) + 6*deltaN2*m2 - 4*deltaN*m3
		m3 += term1*deltaN*(float64(i)-1) - 3*deltaN*m2
		m2 += term1
		mean += deltaN

		sumSq += x * x

		if x > maxVal {
			maxVal = x
		}
		if x < minVal {
			minVal = x
		}
	}

	nf := float64(n)
	variance := m2 / nf

	var skewness, kurtosis float64
	if variance > 0 {
		skewness = (m3 / nf) / (variance * math.Sqrt(variance))
		kurtosis = (m4/nf)/(variance*variance) - 3
	}

	var duration float64
	if sampleRate > 0 {
		duration = nf / sampleRate
	}

	return Stats{
		Count:      n,
		Duration:   duration,
		Max:        maxVal,
		Min:        minVal,
		Mean:       mean,
		Variance:   variance,
		StdDev:     math.Sqrt(variance),
		RMS:        math.Sqrt(sumSq / nf),
		Median:     Median(signal),
		PeakToPeak: maxVal - minVal,
		Skewness:   skewness,
		Kurtosis:   kurtosis,
	}
}

// Mean returns the arithmetic mean of the signal.
func Mean(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	// Kahan summation for numerical stability.
	var sum, c float64
	for _, x := range signal {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(signal))
}

// RMS returns the root-mean-square of the signal.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sumSq float64
	for _, x := range signal {
		sumSq += x * x
	}

	return math.Sqrt(sumSq / float64(len(signal)))
}

// Median returns the middle sample of the sorted signal, or the average of
// the two middle samples for even lengths.
func Median(signal []float64) float64 {
	n := len(signal)
	if n == 0 {
		return 0
	}

	sorted := append([]float64(nil), signal...)
	sort.Float64s(sorted)

	if n%2 == 1 {
		return sorted[n/2]
	}

	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// PeakToPeak returns max - min of the signal.
func PeakToPeak(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	maxVal := signal[0]
	minVal := signal[0]
	for _, x := range signal[1:] {
		if x > maxVal {
			maxVal = x
		}
		if x < minVal {
			minVal = x
		}
	}

	return maxVal - minVal
}

// Percentile returns the empirical p-quantile of the signal, p in [0, 1].
// Out-of-range p or an empty signal yields 0.
func Percentile(signal []float64, p float64) float64 {
	if len(signal) == 0 || p < 0 || p > 1 {
		return 0
	}

	sorted := append([]float64(nil), signal...)
	sort.Float64s(sorted)

	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

// Moments returns the mean, population variance, skewness, and excess
// kurtosis of the signal using Welford's online algorithm.
func Moments(signal []float64) (mean, variance, skewness, kurtosis float64) {
	n := len(signal)
	if n == 0 {
		return 0, 0, 0, 0
	}

	var m2, m3, m4 float64

	for i, x := range signal {
		ni := float64(i + 1)
		delta := x - mean
		deltaN := delta / ni
		deltaN2 := deltaN * deltaN
		term1 := delta * deltaN * float64(i)

		m4 += term1*deltaN2*(ni*ni-3*ni+3) + 6*deltaN2*m2 - 4*deltaN*m3
		m3 += term1*deltaN*(float64(i)-1) - 3*deltaN*m2
		m2 += term1
		mean += deltaN
	}

	nf := float64(n)

	variance = m2 / nf
	if variance > 0 {
		skewness = (m3 / nf) / (variance * math.Sqrt(variance))
		kurtosis = (m4/nf)/(variance*variance) - 3
	}

	return mean, variance, skewness, kurtosis
}
