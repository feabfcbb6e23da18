package kendall

import "github.com/marijana777/asurv/censor"

// Role selects which censoring codes suppress a comparison for one variable.
//
// For reference index i and another index j, i < j counts as +1 unless the
// code of i is in Self or the code of j is in Other. i > j counts as -1
// unless the code of i is in Other or the code of j is in Self.
type Role struct {
	Self  [3]censor.Code
	Other [3]censor.Code
}

var (
	// XRole scores the x variable.
	XRole = Role{
		Self:  [3]censor.Code{censor.LowerLimitX, censor.LowerLimitBoth, censor.MixedLowerXUpperY},
		Other: [3]censor.Code{censor.UpperLimitX, censor.UpperLimitBoth, censor.MixedUpperXLowerY},
	}

	// YRole scores the y variable. Code 4 is an upper limit in y, so the
	// mixed codes swap sides relative to XRole.
	YRole = Role{
		Self:  [3]censor.Code{censor.LowerLimitY, censor.LowerLimitBoth, censor.MixedUpperXLowerY},
		Other: [3]censor.Code{censor.UpperLimitY, censor.UpperLimitBoth, censor.MixedLowerXUpperY},
	}
)

// Mirror returns the role with Self and Other exchanged.
func (r Role) Mirror() Role {
	return Role{Self: r.Other, Other: r.Self}
}

// Coeff returns the concordance scores of x[i] against every element of x.
// Each score is +1, -1 or 0; the score at i itself is always 0.
// codes must have the same length as x.
func Coeff(i int, x []float64, codes []censor.Code, role Role) []int8 {
	dst := make([]int8, len(x))
	CoeffInto(dst, i, x, codes, role)
	return dst
}

// CoeffInto is Coeff writing into dst, which must hold len(x) scores.
func CoeffInto(dst []int8, i int, x []float64, codes []censor.Code, role Role) {
	score(dst, i, x, codes, role.Self, role.Other)
}

// CoeffInts is Coeff on the integer code convention, with the selector
// codes passed positionally: (a, b, c) play Self and (d, e, g) play Other.
// Codes are compared as given and are not validated.
func CoeffInts(i int, x []float64, ip []int, a, b, c, d, e, g int) []int {
	s := make([]int8, len(x))
	score(s, i, x, ip, [3]int{a, b, c}, [3]int{d, e, g})

	out := make([]int, len(s))
	for j, v := range s {
		out[j] = int(v)
	}
	return out
}

func score[C comparable](dst []int8, i int, x []float64, ip []C, self, other [3]C) {
	xi, ci := x[i], ip[i]
	iSelf, iOther := in(ci, self), in(ci, other)

	for j, xj := range x {
		var v int8
		switch {
		case xi < xj:
			if !iSelf && !in(ip[j], other) {
				v = 1
			}
		case xi > xj:
			if !iOther && !in(ip[j], self) {
				v = -1
			}
		}
		dst[j] = v
	}
}

func in[C comparable](c C, set [3]C) bool {
	return c == set[0] || c == set[1] || c == set[2]
}
