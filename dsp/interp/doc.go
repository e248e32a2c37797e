// Package interp provides the fractional-read primitives used by the delay
// line.
//
// Available methods, from cheapest to highest quality:
//
//   - [None]:    truncate to the lower sample
//   - [Linear]:  2-point linear interpolation ([Linear2])
//   - [Hermite]: 4-point cubic Hermite ([Hermite4])
//
// [Ring] reads a circular buffer at a fractional position with any of them.
package interp
