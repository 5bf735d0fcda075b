// Package response computes elastic SDOF response spectra from ground
// acceleration records.
//
// For every pair of natural period and damping ratio, a single-degree-of-
// freedom oscillator is stepped through the full record with the
// Newmark-β scheme (β=1/4, γ=1/2, the unconditionally stable constant-
// average-acceleration variant). The peak absolute acceleration, velocity,
// and displacement of each oscillator form the Sa, Sv, and Sd spectra.
//
// The sweep is the most expensive computation in this module (hundreds of
// periods times several dampings times the record length), so [Runner]
// offers an offloaded, cancellable variant with a synchronous retry
// fallback for interactive callers.
package response
