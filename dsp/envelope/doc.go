// Package envelope implements a multi-segment envelope generator.
//
// An [Envelope] steps through len(times) timed segments between
// len(times)+1 levels. Each segment is a linear ramp (a constant per-frame
// increment) or an exponential curve (a constant per-frame ratio). When a
// segment has run for times[s]*sampleRate frames the value snaps to its
// end level and the next segment starts.
//
// With a release segment configured the final segment is withheld: the
// envelope holds the end of the second-to-last segment until [Envelope.Release]
// is called. Release may be called at any time; earlier segments are
// abandoned and the final segment ramps from the current value.
//
// Exponential segments cannot start or end at zero. Zero endpoints are
// replaced by ±[NearZero], keeping the sign of the other endpoint. The
// exponential presets instead shift every level up by [ExpCurveOffset] and
// subtract it again through the output offset.
//
// A configuration that violates len(levels) == len(times)+1 ==
// len(curves)+1 with at least one segment does not fail; the envelope
// emits silence for its whole lifetime.
package envelope
