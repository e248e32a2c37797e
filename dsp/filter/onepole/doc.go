// Package onepole provides one-pole smoothing filters and the nodes built
// on them: a rectifying RMS estimator and a Balance node that matches the
// level of one signal to another.
//
// Every smoother runs y = a*x - b*y[n-1]. The coefficients are recomputed
// whenever the cutoff resolved for a frame differs from the one they were
// last computed for.
package onepole
