package delay

import (
	"fmt"

	"github.com/cwbudde/algo-ugen/dsp/core"
	"github.com/cwbudde/algo-ugen/dsp/interp"
)

// Line is a circular delay line.
type Line struct {
	buffer   []float64
	writePos int
}

// NewLine returns a delay line of fixed size.
func NewLine(size int) (*Line, error) {
	if size <= 0 {
		return nil, fmt.Errorf("delay: line size must be > 0: %d", size)
	}
	return &Line{buffer: make([]float64, size)}, nil
}

// Len returns internal buffer size.
func (d *Line) Len() int {
	return len(d.buffer)
}

// WritePos returns the index the next Write stores to.
func (d *Line) WritePos() int {
	return d.writePos
}

// Write stores one sample and advances the write cursor.
func (d *Line) Write(sample float64) {
	d.buffer[d.writePos] = sample
	d.writePos++
	if d.writePos >= len(d.buffer) {
		d.writePos = 0
	}
}

// Tap reads the sample written frames ago. frames is clamped to
// [0, Len()]; fractional delays are resolved with mode.
func (d *Line) Tap(frames float64, mode interp.Mode) float64 {
	return interp.Ring(d.buffer, d.readPos(frames), mode)
}

func (d *Line) readPos(frames float64) float64 {
	size := float64(len(d.buffer))
	if !(frames > 0) {
		frames = 0
	} else if frames > size {
		frames = size
	}
	pos := float64(d.writePos) - frames
	if pos < 0 {
		pos += size
	}
	return pos
}

// Snapshot returns a copy of the buffer in storage order.
func (d *Line) Snapshot() []float64 {
	out := make([]float64, len(d.buffer))
	copy(out, d.buffer)
	return out
}

// Reset clears line state.
func (d *Line) Reset() {
	core.Zero(d.buffer)
	d.writePos = 0
}
