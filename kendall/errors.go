package kendall

import (
	"errors"

	"github.com/marijana777/asurv/sample"
)

var (
	// ErrInsufficientSampleSize is returned for fewer than three pairs.
	ErrInsufficientSampleSize = errors.New("at least 3 observations are required")

	// ErrDegenerateCorrelation is returned when no pair is comparable in
	// one of the variables, or the variance estimate is not positive.
	ErrDegenerateCorrelation = errors.New("correlation is undefined for this sample")

	// ErrLengthMismatch is returned when x, y and the codes differ in length.
	ErrLengthMismatch = sample.ErrLengthMismatch
)

// MinObservations is the smallest sample the estimator accepts.
const MinObservations = 3
