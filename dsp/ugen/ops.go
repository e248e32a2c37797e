package ugen

import "github.com/cwbudde/algo-vecmath"

// The operators below size their result after a; b must provide at least
// as many frames.

func snapshotOf(a Node) *Source {
	out := &Source{Base: NewBase(ConfigOf(a))}
	return out
}

// Add returns a + b frame by frame.
func Add(a, b Node) *Source {
	out := snapshotOf(a)
	copy(out.buf, a.Samples())
	vecmath.AddBlockInPlace(out.buf, b.Samples()[:len(out.buf)])
	return out
}

// AddScalar returns a + v.
func AddScalar(a Node, v float64) *Source {
	out := snapshotOf(a)
	for i, x := range a.Samples()[:len(out.buf)] {
		out.buf[i] = x + v
	}
	return out
}

// Sub returns a - b frame by frame.
func Sub(a, b Node) *Source {
	out := snapshotOf(a)
	vecmath.ScaleBlock(out.buf, b.Samples()[:len(out.buf)], -1)
	vecmath.AddBlockInPlace(out.buf, a.Samples())
	return out
}

// SubScalar returns a - v.
func SubScalar(a Node, v float64) *Source {
	out := snapshotOf(a)
	for i, x := range a.Samples()[:len(out.buf)] {
		out.buf[i] = x - v
	}
	return out
}

// Mul returns a * b frame by frame.
func Mul(a, b Node) *Source {
	out := snapshotOf(a)
	vecmath.MulBlock(out.buf, a.Samples(), b.Samples()[:len(out.buf)])
	return out
}

// Scale returns a * v.
func Scale(a Node, v float64) *Source {
	out := snapshotOf(a)
	vecmath.ScaleBlock(out.buf, a.Samples(), v)
	return out
}

// Div returns a / b frame by frame. Division by zero follows IEEE 754.
func Div(a, b Node) *Source {
	out := snapshotOf(a)
	bs := b.Samples()[:len(out.buf)]
	for i, x := range a.Samples() {
		out.buf[i] = x / bs[i]
	}
	return out
}

// DivScalar returns a / v.
func DivScalar(a Node, v float64) *Source {
	out := snapshotOf(a)
	for i, x := range a.Samples() {
		out.buf[i] = x / v
	}
	return out
}
