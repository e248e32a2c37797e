package fastmath

import (
	"math"
	"testing"
)

func TestPowMatchesStdlib(t *testing.T) {
	tol := 1e-12
	if !Exact {
		tol = 1e-2
	}
	for _, tc := range []struct{ x, y float64 }{
		{0.001, 0.1},
		{0.001, 2.5},
		{2, 0.5},
		{0.5, 1.0 / 4410},
		{10, -1},
	} {
		got := Pow(tc.x, tc.y)
		want := math.Pow(tc.x, tc.y)
		if math.Abs(got-want) > tol*math.Abs(want) {
			t.Errorf("Pow(%v, %v) = %v, want %v", tc.x, tc.y, got, want)
		}
	}
}

func TestPowSpecialCases(t *testing.T) {
	if got := Pow(0.3, 0); got != 1 {
		t.Fatalf("Pow(0.3, 0) = %v, want 1", got)
	}
	if got := Pow(0.001, math.Inf(1)); got != 0 {
		t.Fatalf("Pow(0.001, +Inf) = %v, want 0", got)
	}
}

func TestExp(t *testing.T) {
	tol := 1e-12
	if !Exact {
		tol = 1e-2
	}
	for _, x := range []float64{-5, -1, 0, 0.5, 3} {
		got := Exp(x)
		want := math.Exp(x)
		if math.Abs(got-want) > tol*want {
			t.Errorf("Exp(%v) = %v, want %v", x, got, want)
		}
	}
}
