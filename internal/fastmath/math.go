//go:build !fastmath

package fastmath

import "math"

// Exact reports whether the standard library implementation is in use.
const Exact = true

// Exp returns e^x.
func Exp(x float64) float64 {
	return math.Exp(x)
}

// Pow returns x^y.
func Pow(x, y float64) float64 {
	return math.Pow(x, y)
}
