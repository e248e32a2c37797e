package testutil

import (
	"math"

	"github.com/cwbudde/algo-ugen/dsp/ugen"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Drain pulls n blocks from node and returns them concatenated.
func Drain(node ugen.Node, blocks int) []float64 {
	out := make([]float64, 0, blocks*node.FrameCount())
	for b := 0; b < blocks; b++ {
		out = append(out, node.Process()...)
	}
	return out
}

// Feed streams data through src block by block, pulling out after each
// write, and returns everything out produced. The tail of the last block is
// zero-padded.
func Feed(src *ugen.Source, out ugen.Node, data []float64) []float64 {
	n := src.FrameCount()
	res := make([]float64, 0, len(data)+n)
	for start := 0; start < len(data); start += n {
		src.Fill(0)
		end := start + n
		if end > len(data) {
			end = len(data)
		}
		src.SetData(data[start:end])
		res = append(res, out.Process()...)
	}
	return res
}

// RMS returns the root-mean-square level of data.
func RMS(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range data {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(data)))
}
