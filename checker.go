package probability

import (
	"fmt"
	"math"
)

// Checker is a policy that decides which values a [LogFloat] may hold.
// Checkers are used through their zero value, so implementations should be
// empty structs.
//
// CheckInitialValue is applied to the raw value passed to [New].
// CheckRange is applied to the stored log-value after every operation
// that produces a new value.
type Checker[F Float] interface {
	CheckInitialValue(v F) error
	CheckRange(lv F) error
}

// Unchecked is a checker that imposes no restriction beyond the ones
// shared by every [LogFloat]: raw values must be non-negative and finite.
type Unchecked[F Float] struct{}

// CheckInitialValue accepts every value.
func (Unchecked[F]) CheckInitialValue(F) error {
	return nil
}

// CheckRange accepts every log-value.
func (Unchecked[F]) CheckRange(F) error {
	return nil
}

// Tolerance defines how many units in the last place a probability may
// drift above 1 before [ProbabilityChecker] reports a violation.
// Implementations should be empty structs, for example:
//
//	type FourULP struct{}
//
//	func (FourULP) ULP() uint { return 4 }
type Tolerance interface {
	ULP() uint
}

// Exact is a tolerance of 0 units in the last place.
// A log-value may exceed 0 by at most one machine epsilon.
type Exact struct{}

// ULP returns 0.
func (Exact) ULP() uint {
	return 0
}

// ProbabilityChecker is a checker that requires values to be probabilities.
// Raw values must not exceed 1, and log-values must not exceed
// epsilon * 2^ulp, where epsilon is the machine epsilon of F and
// ulp is provided by T.
type ProbabilityChecker[F Float, T Tolerance] struct{}

// CheckInitialValue returns an error if v > 1.
func (ProbabilityChecker[F, T]) CheckInitialValue(v F) error {
	if v > 1 {
		return fmt.Errorf("%v is greater than 1: %w", v, ErrDomain)
	}
	return nil
}

// CheckRange returns an error if lv is greater than [ProbabilityChecker.Limit].
func (c ProbabilityChecker[F, T]) CheckRange(lv F) error {
	limit, err := c.Limit()
	if err != nil {
		return err
	}
	if lv > limit {
		return fmt.Errorf("log-value %v exceeds limit %v: %w", lv, limit, ErrRange)
	}
	return nil
}

// Limit returns the largest log-value accepted by the checker.
//
// Limit returns an error if the tolerance is larger than the number of
// digits in the mantissa of F (24 for float32, 53 for float64).
func (ProbabilityChecker[F, T]) Limit() (F, error) {
	var t T
	ulp, prec := t.ULP(), digits[F]()
	if ulp > uint(prec) {
		return 0, fmt.Errorf("%v ulp with %v mantissa digits: %w", ulp, prec, ErrTolerance)
	}
	return F(math.Ldexp(1, int(ulp)+1-prec)), nil
}

// digits returns the number of digits in the mantissa of F,
// including the implicit leading bit.
func digits[F Float]() int {
	var one, tiny F = 1, 0x1p-30
	if F(one+tiny) == one {
		return 24
	}
	return 53
}

// bitSize returns the size of F as expected by the strconv package.
func bitSize[F Float]() int {
	if digits[F]() == 24 {
		return 32
	}
	return 64
}
