// Package fastmath selects the exponential and power functions used in
// coefficient updates.
//
// The default build uses the standard library. Building with the fastmath
// tag switches to the algo-approx approximations, which trade a small
// amount of accuracy for speed:
//
//	Exp:  <0.1% relative error for x in [-10, 10]
//	Pow:  computed as Exp(y*Log(x)), same order of error for x > 0
//
// Both builds agree on special cases that matter to callers: Pow(x, 0) is 1
// and Pow(x, +Inf) is 0 for 0 < x < 1.
package fastmath
