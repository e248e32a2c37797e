// Package iir implements the two-pole recursive filter kernel and its
// coefficient designs.
//
// A [Filter] runs one Direct Form II section per frame:
//
//	w  = scale*x - A1*d1 - A2*d2
//	y  = B0*w + B1*d1 + B2*d2
//	d2 = d1
//	d1 = w
//
// Its coefficients come from a [Design]: a pure function of the resolved
// frequency and bandwidth parameters. Before each frame the kernel compares
// the parameter values at that frame with those the current coefficients
// were computed for and recomputes only when they differ, so constant
// parameters cost one design evaluation for the filter's lifetime while
// audio-rate modulation is tracked sample by sample.
//
// Designs provided: Butterworth low-pass, high-pass, band-pass and
// band-reject, and three resonators (ResonR, ResonZ and the all-pole
// Reson). Frequencies and bandwidths must be positive; the designs do not
// clamp and non-positive values produce NaN or Inf coefficients.
package iir
