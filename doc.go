// Package asurv computes a generalized Kendall's tau for paired data with
// one-sided censoring.
//
// Astronomical surveys often report a measurement only as an upper or lower
// limit. This module answers whether two such measurements are correlated,
// following the bivariate method of the ASURV package (Isobe, Feigelson and
// Nelson 1986) based on Brown, Hollander and Korwar (1974).
//
// # Features
//
//   - Typed nine-value censoring codes with conversion to the integer convention
//   - Paired observation sets with validation and summaries
//   - Concordance scoring under censoring-direction rules
//   - Generalized Kendall's tau with variance, z-score and two-sided p-value
//   - Parallel, exact accumulation of the O(N^2) pairwise sums
//
// # Quick Start
//
//	codes, _ := censor.FromInts([]int{0, 1, 0, -2, 0})
//	res, err := kendall.BHK(x, y, codes)
//	if err != nil {
//	    // kendall.ErrInsufficientSampleSize, ErrDegenerateCorrelation, ErrLengthMismatch
//	}
//	fmt.Println(res.Tau, res.Z, res.Prob)
//
// # Packages
//
//   - censor: censoring codes and per-variable limits
//   - sample: paired observation sets
//   - kendall: concordance scorer and correlation estimator
//
// # References
//
//   - Isobe, T., Feigelson, E. D., & Nelson, P. I. (1986). ApJ 306, 490
//   - Brown, B. W. M., Hollander, M., & Korwar, R. M. (1974). Reliability and Biometry, 327
package asurv
