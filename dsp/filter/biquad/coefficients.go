package biquad

import "math"

// Coefficients holds the transfer function coefficients of a single
// second-order section. The leading denominator term is normalized to 1
// and not stored.
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// Stable reports whether both poles lie strictly inside the unit circle
// (Jury criterion for a monic second-order denominator).
func (c *Coefficients) Stable() bool {
	return math.Abs(c.A2) < 1 && math.Abs(c.A1) < 1+c.A2
}

// Finite reports whether every coefficient is a finite number.
func (c *Coefficients) Finite() bool {
	for _, v := range [...]float64{c.B0, c.B1, c.B2, c.A1, c.A2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
