// Package ugen defines the signal-node execution model.
//
// A [Node] owns a fixed-size block of frames and recomputes it each time it
// is pulled with Process. Nodes that consume other nodes pull their audio
// inputs first and then run their own per-frame recursion; topology is just
// the references wired at construction time, there is no graph registry.
//
// Process is unconditional: every call advances the node by one block. A
// producer feeding several pulling consumers must therefore be wrapped in a
// [View] for all but one of them, so it is computed once per block.
//
// A [Param] is either a constant or a non-owning reference to another node,
// resolved per frame with At or once per block with Control. Referenced
// nodes are never pulled by the parameter; the caller processes modulators
// before the nodes they modulate.
//
// Elementwise arithmetic ([Add], [Sub], [Mul], [Div] and their scalar
// forms) combines the current buffer contents into a new [Source]. The
// result is a snapshot, not a live node: it does not follow its operands on
// later blocks.
package ugen
