// Package kendall computes a generalized Kendall's tau for paired data in
// which either variable may be censored from one side.
//
// The estimator follows Brown, Hollander and Korwar (1974) as implemented in
// the ASURV astronomical survival-analysis package (Isobe, Feigelson and
// Nelson 1986). Each pair carries a combined censoring code (package censor).
// A pair of observations is scored as concordant or discordant only when the
// censoring directions cannot contradict the observed ordering.
//
// # Basic Usage
//
//	res, err := kendall.BHK(x, y, codes)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("tau=%.4f z=%.4f p=%.4g\n", res.Tau, res.Z, res.Prob)
//
// With the integer code convention:
//
//	res, err := kendall.BHKInts([]int{0, 1, -2, 0}, x, y)
//
// # Configuration
//
// The pairwise accumulation is O(N^2) and runs in parallel over reference
// indices. Results are exact integer sums, so the worker count never changes
// the output:
//
//	config := kendall.DefaultConfig()
//	config.Workers = 4
//	config.Logger = slog.Default()
//	res, err := kendall.New(config).Compute(x, y, codes)
//
// # Concordance Scores
//
// The per-index scorer is exported for diagnostics:
//
//	scores := kendall.Coeff(i, x, codes, kendall.XRole)
//
// # References
//
//   - Brown, B. W. M., Hollander, M., & Korwar, R. M. (1974). Nonparametric tests of
//     independence for censored data, with applications to heart transplant studies.
//   - Isobe, T., Feigelson, E. D., & Nelson, P. I. (1986). Statistical methods for
//     astronomical data with upper limits. II. Correlation and regression. ApJ 306, 490.
package kendall
