package censor

import (
	"errors"
	"fmt"
)

// ErrInvalidCode is returned when an integer is not one of the nine
// recognised censoring codes.
var ErrInvalidCode = errors.New("invalid censoring code")

// Code is the combined censoring indicator of one (x, y) pair.
type Code int8

// Positive codes mark lower limits, negative codes upper limits.
const (
	Detected          Code = 0
	LowerLimitY       Code = 1
	UpperLimitY       Code = -1
	LowerLimitX       Code = 2
	UpperLimitX       Code = -2
	LowerLimitBoth    Code = 3
	UpperLimitBoth    Code = -3
	MixedLowerXUpperY Code = 4
	MixedUpperXLowerY Code = -4
)

// All lists every valid code in ascending numeric order.
var All = []Code{
	MixedUpperXLowerY,
	UpperLimitBoth,
	UpperLimitX,
	UpperLimitY,
	Detected,
	LowerLimitY,
	LowerLimitX,
	LowerLimitBoth,
	MixedLowerXUpperY,
}

// Valid reports whether c belongs to the nine-value set.
func (c Code) Valid() bool {
	return c >= -4 && c <= 4
}

// Int returns the numeric form of c.
func (c Code) Int() int {
	return int(c)
}

// IsCensored reports whether at least one variable of the pair is a limit.
func (c Code) IsCensored() bool {
	return c != Detected
}

func (c Code) String() string {
	switch c {
	case Detected:
		return "detected"
	case LowerLimitY:
		return "y-lower"
	case UpperLimitY:
		return "y-upper"
	case LowerLimitX:
		return "x-lower"
	case UpperLimitX:
		return "x-upper"
	case LowerLimitBoth:
		return "both-lower"
	case UpperLimitBoth:
		return "both-upper"
	case MixedLowerXUpperY:
		return "x-lower/y-upper"
	case MixedUpperXLowerY:
		return "x-upper/y-lower"
	}
	return fmt.Sprintf("Code(%d)", int8(c))
}

// FromInt converts an integer in the ASURV convention to a Code.
func FromInt(v int) (Code, error) {
	if v < -4 || v > 4 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidCode, v)
	}
	return Code(v), nil
}

// FromInts converts a slice of integers. The first out-of-range value
// aborts the conversion and is reported with its index.
func FromInts(values []int) ([]Code, error) {
	codes := make([]Code, len(values))
	for i, v := range values {
		c, err := FromInt(v)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		codes[i] = c
	}
	return codes, nil
}

// Ints converts codes back to their numeric form.
func Ints(codes []Code) []int {
	out := make([]int, len(codes))
	for i, c := range codes {
		out[i] = int(c)
	}
	return out
}

// Limit is the censoring state of a single variable.
type Limit int8

const (
	None  Limit = 0  // detected value
	Lower Limit = 1  // value is a lower limit (true value is at least this)
	Upper Limit = -1 // value is an upper limit (true value is at most this)
)

func (l Limit) String() string {
	switch l {
	case None:
		return "none"
	case Lower:
		return "lower"
	case Upper:
		return "upper"
	}
	return fmt.Sprintf("Limit(%d)", int8(l))
}

// Combine merges the per-variable limits of x and y into one Code.
// Limits other than None, Lower and Upper are treated as None.
func Combine(x, y Limit) Code {
	switch {
	case x == Lower && y == Lower:
		return LowerLimitBoth
	case x == Upper && y == Upper:
		return UpperLimitBoth
	case x == Lower && y == Upper:
		return MixedLowerXUpperY
	case x == Upper && y == Lower:
		return MixedUpperXLowerY
	case x == Lower:
		return LowerLimitX
	case x == Upper:
		return UpperLimitX
	case y == Lower:
		return LowerLimitY
	case y == Upper:
		return UpperLimitY
	}
	return Detected
}

// Split is the inverse of Combine. Invalid codes split to (None, None).
func Split(c Code) (x, y Limit) {
	switch c {
	case LowerLimitY:
		return None, Lower
	case UpperLimitY:
		return None, Upper
	case LowerLimitX:
		return Lower, None
	case UpperLimitX:
		return Upper, None
	case LowerLimitBoth:
		return Lower, Lower
	case UpperLimitBoth:
		return Upper, Upper
	case MixedLowerXUpperY:
		return Lower, Upper
	case MixedUpperXLowerY:
		return Upper, Lower
	}
	return None, None
}

// CombineAll merges two equal-length slices of per-variable limits.
func CombineAll(x, y []Limit) ([]Code, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("limit slices differ in length: %d != %d", len(x), len(y))
	}
	codes := make([]Code, len(x))
	for i := range x {
		codes[i] = Combine(x[i], y[i])
	}
	return codes, nil
}
