//go:build fastmath

package fastmath

import (
	"math"

	"github.com/meko-christian/algo-approx"
)

// Exact reports whether the standard library implementation is in use.
const Exact = false

// Exp returns an approximation of e^x.
func Exp(x float64) float64 {
	return approx.FastExp(x)
}

// Pow returns an approximation of x^y for x > 0. Other bases and the
// special cases fall back to math.Pow.
func Pow(x, y float64) float64 {
	switch {
	case y == 0:
		return 1
	case x <= 0, math.IsInf(y, 0), math.IsNaN(x), math.IsNaN(y), math.IsInf(x, 0):
		return math.Pow(x, y)
	}
	return approx.FastExp(y * approx.FastLog(x))
}
