package ugen

import "github.com/cwbudde/algo-ugen/dsp/core"

// Source is a node whose block is written by the caller. Process leaves the
// data untouched, which makes Source the bridge for host buffers and the
// result type of the elementwise operators.
type Source struct {
	Base
}

// NewSource returns a zeroed source node.
func NewSource(opts ...core.ProcessorOption) *Source {
	return &Source{Base: NewBase(core.ApplyProcessorOptions(opts...))}
}

// Process returns the current data unchanged.
func (s *Source) Process() []float64 { return s.buf }

// SetData copies data into the block and returns the number of frames
// written. Frames beyond len(data) keep their previous value.
func (s *Source) SetData(data []float64) int {
	return core.CopyInto(s.buf, data)
}

// Fill sets every frame to v.
func (s *Source) Fill(v float64) {
	core.Fill(s.buf, v)
}

// SetSample sets frame i to v.
func (s *Source) SetSample(i int, v float64) {
	s.buf[i] = v
}

// View exposes another node's block without pulling it. Wire a View into
// every consumer but one when a producer fans out, so the producer is
// computed exactly once per block.
type View struct {
	node Node
}

// NewView wraps n. It returns nil if n is nil.
func NewView(n Node) *View {
	if n == nil {
		return nil
	}
	return &View{node: n}
}

// Process returns the wrapped node's current block.
func (v *View) Process() []float64 { return v.node.Samples() }

// Samples returns the wrapped node's current block.
func (v *View) Samples() []float64 { return v.node.Samples() }

// Sample returns frame i of the wrapped node.
func (v *View) Sample(i int) float64 { return v.node.Sample(i) }

// SampleRate returns the wrapped node's sampling rate.
func (v *View) SampleRate() float64 { return v.node.SampleRate() }

// FrameCount returns the wrapped node's block length.
func (v *View) FrameCount() int { return v.node.FrameCount() }
