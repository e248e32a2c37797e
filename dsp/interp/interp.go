package interp

import "fmt"

// Mode selects how a fractional position is read.
type Mode uint8

const (
	// None truncates the position.
	None Mode = iota
	// Linear blends the two neighbouring samples.
	Linear
	// Hermite fits a cubic through four neighbouring samples.
	Hermite
)

func (m Mode) String() string {
	switch m {
	case None:
		return "none"
	case Linear:
		return "linear"
	case Hermite:
		return "hermite"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// ParseMode maps a mode name to its Mode.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "none", "off", "":
		return None, nil
	case "linear":
		return Linear, nil
	case "hermite", "cubic":
		return Hermite, nil
	default:
		return None, fmt.Errorf("interp: unknown mode %q", name)
	}
}

// Linear2 interpolates from x0 to x1 at t in [0,1].
func Linear2(t, x0, x1 float64) float64 {
	return x0 + t*(x1-x0)
}

// Hermite4 computes cubic 4-point interpolation.
// It interpolates from x0 to x1 using neighbor points xm1 and x2.
func Hermite4(t, xm1, x0, x1, x2 float64) float64 {
	c0 := x0
	c1 := 0.5 * (x1 - xm1)
	c2 := xm1 - 2.5*x0 + 2*x1 - 0.5*x2
	c3 := 0.5*(x2-xm1) + 1.5*(x0-x1)
	return ((c3*t+c2)*t+c1)*t + c0
}

// Ring reads buf at position pos, which must lie in [0, len(buf)).
// Neighbours wrap around the end of the buffer.
func Ring(buf []float64, pos float64, mode Mode) float64 {
	n := len(buf)
	i := int(pos)
	if i >= n {
		i = n - 1
	}
	if mode == None {
		return buf[i]
	}

	t := pos - float64(i)
	next := i + 1
	if next == n {
		next = 0
	}
	if mode == Linear {
		return Linear2(t, buf[i], buf[next])
	}

	prev := i - 1
	if prev < 0 {
		prev = n - 1
	}
	next2 := next + 1
	if next2 == n {
		next2 = 0
	}
	return Hermite4(t, buf[prev], buf[i], buf[next], buf[next2])
}
