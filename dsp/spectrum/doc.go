// Package spectrum derives one-sided Fourier amplitude and power spectra
// from uniformly sampled records and locates their dominant frequency.
//
// The pipeline is window -> zero-pad -> radix-2 FFT -> magnitude, with the
// single-sided amplitude normalization convention: DC and Nyquist bins
// divide by the transform length N, interior bins scale by 2/N.
package spectrum
