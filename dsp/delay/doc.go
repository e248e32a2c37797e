// Package delay provides a circular delay line and the delay and comb
// filter nodes built on it.
//
// Per frame, a [Delay] node reads the line at writePos - delay*sampleRate
// (clamped to the line length and wrapped), then writes the input plus the
// output scaled by a feedback gain and advances the write cursor. A delay
// of zero frames reads the cell about to be overwritten, which holds the
// sample written one full line length ago.
//
// A [Comb] derives its feedback gain from a decay time instead of taking it
// directly: gain = 0.001^(delay/decayTime), so a recirculating impulse
// falls by 60 dB after decayTime seconds.
package delay
