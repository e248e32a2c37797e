// Package core holds the processing configuration shared by every node
// (sample rate and block size, both fixed at construction) together with
// small numeric and slice helpers used across the dsp packages.
package core
