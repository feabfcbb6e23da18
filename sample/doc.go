// Package sample holds paired, possibly censored observations.
//
// A Set carries N pairs (x_i, y_i) and one combined censoring code per pair
// (see package censor). It is the input to the estimators in package kendall.
//
// # Creating a Set
//
//	x := []float64{1.2, 2.5, 3.1, 4.8}
//	y := []float64{0.4, 0.9, 1.7, 1.5}
//	codes := []censor.Code{censor.Detected, censor.LowerLimitY, censor.Detected, censor.UpperLimitX}
//	set, err := sample.New(x, y, codes)
//
// From the integer convention:
//
//	set, err := sample.NewFromInts(x, y, []int{0, 1, 0, -2})
//
// From separate per-variable limit flags:
//
//	set, err := sample.NewFromLimits(x, y, xLimits, yLimits)
//
// # Inspection
//
//	n := set.Len()
//	frac := set.CensoredFraction()
//	summary := set.Summary()
package sample
