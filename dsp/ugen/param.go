package ugen

// ParamKind tells how a Param resolves.
type ParamKind uint8

const (
	// Constant parameters resolve to a fixed scalar.
	Constant ParamKind = iota
	// Modulated parameters resolve to another node's samples.
	Modulated
)

func (k ParamKind) String() string {
	switch k {
	case Constant:
		return "constant"
	case Modulated:
		return "modulated"
	default:
		return "unknown"
	}
}

// Param is a node parameter that is either a constant or a live reference
// to another node's output. The reference is non-owning and read-only.
type Param struct {
	kind  ParamKind
	value float64
	node  Node
}

// Const returns a constant parameter.
func Const(v float64) Param {
	return Param{kind: Constant, value: v}
}

// Mod returns a parameter that follows n. A nil node yields Const(0).
func Mod(n Node) Param {
	if n == nil {
		return Const(0)
	}
	return Param{kind: Modulated, node: n}
}

// Set switches the parameter to a constant, dropping any modulator.
func (p *Param) Set(v float64) {
	*p = Const(v)
}

// SetNode switches the parameter to follow n, dropping the constant.
func (p *Param) SetNode(n Node) {
	*p = Mod(n)
}

// Kind returns the resolution mode.
func (p Param) Kind() ParamKind { return p.kind }

// IsModulated reports whether the parameter follows a node.
func (p Param) IsModulated() bool { return p.kind == Modulated }

// Node returns the modulating node, or nil for constants.
func (p Param) Node() Node { return p.node }

// At resolves the parameter at frame i.
func (p Param) At(i int) float64 {
	if p.kind == Modulated {
		return p.node.Sample(i)
	}
	return p.value
}

// Control resolves the parameter once per block, using frame 0 of a
// modulator.
func (p Param) Control() float64 {
	return p.At(0)
}
