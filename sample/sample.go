package sample

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/marijana777/asurv/censor"
)

var (
	// ErrLengthMismatch is returned when x, y and the codes differ in length.
	ErrLengthMismatch = errors.New("x, y and censoring codes must have the same length")

	// ErrNonFinite is returned when a measurement is NaN or infinite.
	ErrNonFinite = errors.New("measurement is not finite")
)

// Set is an ordered collection of paired measurements with their combined
// censoring codes.
type Set struct {
	Name  string
	X     []float64
	Y     []float64
	Codes []censor.Code
}

// New creates a validated Set. The slices are not copied.
func New(x, y []float64, codes []censor.Code) (*Set, error) {
	s := &Set{X: x, Y: y, Codes: codes}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewFromInts creates a Set from codes in the integer convention.
func NewFromInts(x, y []float64, ind []int) (*Set, error) {
	if len(ind) != len(x) || len(ind) != len(y) {
		return nil, fmt.Errorf("%w: len(x)=%d len(y)=%d len(ind)=%d",
			ErrLengthMismatch, len(x), len(y), len(ind))
	}
	codes, err := censor.FromInts(ind)
	if err != nil {
		return nil, err
	}
	return New(x, y, codes)
}

// NewFromLimits creates a Set from separate per-variable limit flags.
func NewFromLimits(x, y []float64, xl, yl []censor.Limit) (*Set, error) {
	if len(xl) != len(x) || len(yl) != len(y) {
		return nil, fmt.Errorf("%w: len(x)=%d len(xl)=%d len(y)=%d len(yl)=%d",
			ErrLengthMismatch, len(x), len(xl), len(y), len(yl))
	}
	codes, err := censor.CombineAll(xl, yl)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLengthMismatch, err)
	}
	return New(x, y, codes)
}

// Validate checks lengths, codes and values.
func (s *Set) Validate() error {
	if len(s.X) != len(s.Y) || len(s.X) != len(s.Codes) {
		return fmt.Errorf("%w: len(x)=%d len(y)=%d len(codes)=%d",
			ErrLengthMismatch, len(s.X), len(s.Y), len(s.Codes))
	}
	for i, c := range s.Codes {
		if !c.Valid() {
			return fmt.Errorf("index %d: %w: %d", i, censor.ErrInvalidCode, int8(c))
		}
	}
	for i := range s.X {
		if !isFinite(s.X[i]) {
			return fmt.Errorf("x[%d]=%v: %w", i, s.X[i], ErrNonFinite)
		}
		if !isFinite(s.Y[i]) {
			return fmt.Errorf("y[%d]=%v: %w", i, s.Y[i], ErrNonFinite)
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Len returns the number of pairs.
func (s *Set) Len() int {
	return len(s.X)
}

// Detected returns the number of pairs where both values are detections.
func (s *Set) Detected() int {
	n := 0
	for _, c := range s.Codes {
		if c == censor.Detected {
			n++
		}
	}
	return n
}

// CensoredFraction returns the share of pairs with at least one limit.
func (s *Set) CensoredFraction() float64 {
	if len(s.Codes) == 0 {
		return 0
	}
	return float64(len(s.Codes)-s.Detected()) / float64(len(s.Codes))
}

// Slice returns the pairs from start to end (exclusive) as a new Set.
func (s *Set) Slice(start, end int) *Set {
	if start < 0 {
		start = 0
	}
	if end > len(s.X) {
		end = len(s.X)
	}
	if start >= end {
		return &Set{Name: s.Name, X: []float64{}, Y: []float64{}, Codes: []censor.Code{}}
	}

	out := &Set{
		Name:  s.Name,
		X:     make([]float64, end-start),
		Y:     make([]float64, end-start),
		Codes: make([]censor.Code, end-start),
	}
	copy(out.X, s.X[start:end])
	copy(out.Y, s.Y[start:end])
	copy(out.Codes, s.Codes[start:end])
	return out
}

// Copy creates a deep copy of the set.
func (s *Set) Copy() *Set {
	return s.Slice(0, len(s.X))
}

// Summary describes the composition of a Set.
type Summary struct {
	N        int
	Detected int
	Counts   map[censor.Code]int // pairs per censoring code
	XMin     float64
	XMax     float64
	YMin     float64
	YMax     float64
}

// Summary counts pairs per code and reports the value ranges.
// Ranges are NaN for an empty set.
func (s *Set) Summary() *Summary {
	sum := &Summary{
		N:        s.Len(),
		Detected: s.Detected(),
		Counts:   make(map[censor.Code]int),
		XMin:     math.NaN(),
		XMax:     math.NaN(),
		YMin:     math.NaN(),
		YMax:     math.NaN(),
	}
	for _, c := range s.Codes {
		sum.Counts[c]++
	}
	if len(s.X) > 0 && len(s.Y) > 0 {
		sum.XMin, sum.XMax = floats.Min(s.X), floats.Max(s.X)
		sum.YMin, sum.YMax = floats.Min(s.Y), floats.Max(s.Y)
	}
	return sum
}
