// Package censor defines the combined censoring indicator used for paired
// measurements where either variable may be an upper or lower limit.
//
// Each pair (x, y) carries one Code drawn from a fixed nine-value set:
//
//	 0  both detected
//	 1  y is a lower limit      -1  y is an upper limit
//	 2  x is a lower limit      -2  x is an upper limit
//	 3  both are lower limits   -3  both are upper limits
//	 4  x lower, y upper        -4  x upper, y lower
//
// The integer convention is the interchange format with other ASURV-style
// tooling. Convert at the boundary and keep Code values internally:
//
//	codes, err := censor.FromInts([]int{0, 1, -2, 0})
//	raw := censor.Ints(codes)
//
// Per-variable flags can be merged into a combined code:
//
//	c := censor.Combine(censor.Lower, censor.Upper) // MixedLowerXUpperY
//	xl, yl := censor.Split(c)
package censor
