// Package biquad holds the second-order section coefficient type shared by
// the recursive filters, plus its frequency-response and pole/zero
// analysis.
//
// The transfer function is
//
//	H(z) = (B0 + B1*z^-1 + B2*z^-2) / (1 + A1*z^-1 + A2*z^-2)
//
// Processing lives in dsp/filter/iir, which runs these coefficients in
// Direct Form II with per-frame coefficient updates.
package biquad
