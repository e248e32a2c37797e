// Package decay estimates how fast the output of a node dies away.
//
// The estimate is taken from the Schroeder backward integral of the squared
// impulse response. A straight line is fitted to the integral in dB over a
// fixed evaluation range and extrapolated to -60 dB:
//
//   - EDT: 0 to -10 dB
//   - T20: -5 to -25 dB
//   - T30: -5 to -35 dB
//
// RT60 reports T30 when the response decays far enough and T20 otherwise.
// For a comb filter the result should match the decay time it was built
// with; for a resonator it is 6.91/(pi*bandwidth) seconds.
//
//	an := decay.NewAnalyzer(48000)
//	res, err := an.MeasureNode(src, comb, 2)
//	fmt.Printf("RT60 = %.2f s\n", res.RT60)
package decay
