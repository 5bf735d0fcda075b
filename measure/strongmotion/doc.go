// Package strongmotion runs the full analysis chain on one ground
// acceleration record: unit normalization, baseline-corrected velocity and
// displacement histories, Fourier amplitude spectrum with dominant
// frequency, descriptive statistics, and the standard intensity measures
// (PGA/PGV/PGD, Arias intensity, 5-75% significant duration, CAV).
//
// The SDOF response spectrum sweep is deliberately not part of the default
// chain; it is orders of magnitude more expensive than everything else and
// lives in the response package with its own offload support.
package strongmotion
