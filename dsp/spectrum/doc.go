// Package spectrum provides the spectrum-domain helpers used to measure
// node responses: a Goertzel single-bin analyser and magnitude, power and
// phase extraction from complex FFT bins.
//
// The package does not implement an FFT itself; measure/response feeds it
// bins from algo-fft.
package spectrum
