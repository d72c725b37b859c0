package probability

import (
	"cmp"
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Float is the set of floating-point types that can back a [LogFloat].
type Float = constraints.Float

// LogFloat type is a representation of a non-negative real number v
// stored as its natural logarithm ln(v).
// The zero value is the numeric value of 1, since ln(1) = 0.
// It is accepted by [Unchecked] and [ProbabilityChecker]; a caller-defined
// checker that rejects 1 does not accept the zero value.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// F defines the precision of the stored log-value.
// C defines the [Checker] consulted on construction and after every
// arithmetic operation.
//
// The stored log-value is always either finite or negative infinity,
// which represents v = 0.
// Negative values, NaN, and infinity are not representable.
type LogFloat[F Float, C Checker[F]] struct {
	lv F // natural logarithm of the value
}

// Aliases for frequently used instantiations.
type (
	// LogFloat32 is an unconstrained log-space float32.
	LogFloat32 = LogFloat[float32, Unchecked[float32]]
	// LogFloat64 is an unconstrained log-space float64.
	LogFloat64 = LogFloat[float64, Unchecked[float64]]

	// Prob is a log-space probability that may drift above 1 by
	// the tolerance T.
	Prob[F Float, T Tolerance] = LogFloat[F, ProbabilityChecker[F, T]]
	// Prob32 is a log-space float32 probability.
	Prob32 = Prob[float32, Exact]
	// Prob64 is a log-space float64 probability.
	Prob64 = Prob[float64, Exact]
)

var (
	// ErrDomain is returned when a raw value cannot be represented:
	// it is negative, NaN, infinite, or rejected by the checker.
	ErrDomain = errors.New("value out of domain")
	// ErrRange is returned when the result of an operation
	// exceeds the limit of the checker or is infinite.
	ErrRange = errors.New("value out of range")
	// ErrUndefined is returned when an operation has no defined result,
	// such as 0 / 0 or subtraction of a larger value from a smaller one.
	ErrUndefined = errors.New("undefined operation")
	// ErrTolerance is returned when a [Tolerance] is wider than
	// the mantissa of the underlying float type.
	ErrTolerance = errors.New("tolerance out of range")

	errNilOperand = fmt.Errorf("nil operand: %w", ErrUndefined)
)

// New returns a log-float equal to v.
//
// New returns an error if:
//   - v is negative, NaN, or positive infinity;
//   - v is rejected by [Checker.CheckInitialValue] of C.
func New[F Float, C Checker[F]](v F) (LogFloat[F, C], error) {
	switch {
	case v != v:
		return LogFloat[F, C]{}, fmt.Errorf("%v is not a number: %w", v, ErrDomain)
	case v < 0:
		return LogFloat[F, C]{}, fmt.Errorf("%v is negative: %w", v, ErrDomain)
	case math.IsInf(float64(v), 1):
		return LogFloat[F, C]{}, fmt.Errorf("%v is infinite: %w", v, ErrDomain)
	}
	var c C
	if err := c.CheckInitialValue(v); err != nil {
		return LogFloat[F, C]{}, err
	}
	return LogFloat[F, C]{lv: logOf(v)}, nil
}

// NewFromLog returns a log-float whose natural logarithm is lv.
// Negative infinity is accepted and represents 0.
//
// NewFromLog returns an error if:
//   - lv is NaN or positive infinity;
//   - lv is rejected by [Checker.CheckRange] of C.
func NewFromLog[F Float, C Checker[F]](lv F) (LogFloat[F, C], error) {
	switch {
	case lv != lv:
		return LogFloat[F, C]{}, fmt.Errorf("log-value is not a number: %w", ErrUndefined)
	case math.IsInf(float64(lv), 1):
		return LogFloat[F, C]{}, fmt.Errorf("log-value is infinite: %w", ErrRange)
	}
	var c C
	if err := c.CheckRange(lv); err != nil {
		return LogFloat[F, C]{}, err
	}
	return LogFloat[F, C]{lv: lv}, nil
}

// Zero returns a log-float with a value of 0.
func Zero[F Float, C Checker[F]]() LogFloat[F, C] {
	return LogFloat[F, C]{lv: F(math.Inf(-1))}
}

// One returns a log-float with a value of 1.
// It is equal to the zero value of [LogFloat].
func One[F Float, C Checker[F]]() LogFloat[F, C] {
	return LogFloat[F, C]{}
}

// NewProb64 is a shorthand for New[float64, ProbabilityChecker[float64, Exact]].
func NewProb64(v float64) (Prob64, error) {
	return New[float64, ProbabilityChecker[float64, Exact]](v)
}

// MustProb64 is like [NewProb64] but panics if v is not a probability.
func MustProb64(v float64) Prob64 {
	return MustNew[float64, ProbabilityChecker[float64, Exact]](v)
}

// NewLogFloat64 is a shorthand for New[float64, Unchecked[float64]].
func NewLogFloat64(v float64) (LogFloat64, error) {
	return New[float64, Unchecked[float64]](v)
}

// MustLogFloat64 is like [NewLogFloat64] but panics if v is negative,
// NaN, or infinite.
func MustLogFloat64(v float64) LogFloat64 {
	return MustNew[float64, Unchecked[float64]](v)
}

// logOf returns the natural logarithm of v.
// Subnormal arguments are scaled into the normal range first,
// since math.Log loses accuracy on them on some platforms.
func logOf[F Float](v F) F {
	x := float64(v)
	if x > 0 && x < 0x1p-1022 {
		return F(math.Log(x*0x1p52) - 52*math.Ln2)
	}
	return F(math.Log(x))
}

// Log returns the natural logarithm of d.
// The result is negative infinity if d is 0.
func (d LogFloat[F, C]) Log() F {
	return d.lv
}

// Float returns the value of d as an ordinary float, computing exp(d.Log()).
// Values smaller than the smallest positive float are returned as 0.
// Also see method [LogFloat.Log].
func (d LogFloat[F, C]) Float() F {
	return F(math.Exp(float64(d.lv)))
}

// IsZero returns true if d == 0.
func (d LogFloat[F, C]) IsZero() bool {
	return math.IsInf(float64(d.lv), -1)
}

// IsOne returns true if d == 1.
func (d LogFloat[F, C]) IsOne() bool {
	return d.lv == 0
}

// Add returns the sum of d and e.
// The sum is computed without leaving log space:
//
//	ln(x + y) = max + ln(1 + exp(min - max))
//
// where max and min are the larger and the smaller of the two log-values.
//
// Add returns an error if:
//   - e cannot be promoted, see [LogFloat.Promote];
//   - the sum is rejected by [Checker.CheckRange] of C.
func (d LogFloat[F, C]) Add(e Operand[F]) (LogFloat[F, C], error) {
	f, err := d.Promote(e)
	if err != nil {
		return LogFloat[F, C]{}, fmt.Errorf("computing [%v + %v]: %w", d, e, err)
	}
	g, err := d.add(f)
	if err != nil {
		return LogFloat[F, C]{}, fmt.Errorf("computing [%v + %v]: %w", d, f, err)
	}
	return g, nil
}

func (d LogFloat[F, C]) add(e LogFloat[F, C]) (LogFloat[F, C], error) {
	// Special case: adding 0
	if e.IsZero() {
		return d, nil
	}

	// Special case: adding to 0
	if d.IsZero() {
		return e, nil
	}

	// General case
	hi, lo := d.lv, e.lv
	if hi < lo {
		hi, lo = lo, hi
	}
	return NewFromLog[F, C](hi + F(math.Log1p(math.Exp(float64(lo-hi)))))
}

// Sub returns the difference of d and e.
// The difference is computed without leaving log space:
//
//	ln(x - y) = ln(x) + ln(1 - exp(ln(y) - ln(x)))
//
// The difference of two equal values is exactly 0.
//
// Sub returns an error if:
//   - e cannot be promoted, see [LogFloat.Promote];
//   - e is greater than d, including the case when d is 0;
//   - the difference is rejected by [Checker.CheckRange] of C.
func (d LogFloat[F, C]) Sub(e Operand[F]) (LogFloat[F, C], error) {
	f, err := d.Promote(e)
	if err != nil {
		return LogFloat[F, C]{}, fmt.Errorf("computing [%v - %v]: %w", d, e, err)
	}
	g, err := d.sub(f)
	if err != nil {
		return LogFloat[F, C]{}, fmt.Errorf("computing [%v - %v]: %w", d, f, err)
	}
	return g, nil
}

func (d LogFloat[F, C]) sub(e LogFloat[F, C]) (LogFloat[F, C], error) {
	// Special case: subtracting 0
	if e.IsZero() {
		return d, nil
	}

	// Special case: subtracting from 0
	if d.IsZero() {
		return LogFloat[F, C]{}, fmt.Errorf("negative difference: %w", ErrUndefined)
	}

	// Special case: equal values
	if d.lv == e.lv {
		return Zero[F, C](), nil
	}

	// General case
	if d.lv < e.lv {
		return LogFloat[F, C]{}, fmt.Errorf("negative difference: %w", ErrUndefined)
	}
	return NewFromLog[F, C](d.lv + F(log1mexp(float64(e.lv-d.lv))))
}

// log1mexp returns ln(1 - exp(x)) for x <= 0.
// Near 0, exp(x) rounds to 1 and the difference would be lost,
// so that range is computed through math.Expm1 instead.
func log1mexp(x float64) float64 {
	if x > -math.Ln2 {
		return logOf(-math.Expm1(x))
	}
	return math.Log1p(-math.Exp(x))
}

// Mul returns the product of d and e, computed as the sum of their log-values.
//
// Mul returns an error if:
//   - e cannot be promoted, see [LogFloat.Promote];
//   - the product is rejected by [Checker.CheckRange] of C.
func (d LogFloat[F, C]) Mul(e Operand[F]) (LogFloat[F, C], error) {
	f, err := d.Promote(e)
	if err != nil {
		return LogFloat[F, C]{}, fmt.Errorf("computing [%v * %v]: %w", d, e, err)
	}
	g, err := NewFromLog[F, C](d.lv + f.lv)
	if err != nil {
		return LogFloat[F, C]{}, fmt.Errorf("computing [%v * %v]: %w", d, f, err)
	}
	return g, nil
}

// Quo returns the quotient of d and e, computed as the difference of their
// log-values.
//
// Quo returns an error if:
//   - e cannot be promoted, see [LogFloat.Promote];
//   - both d and e are 0;
//   - e is 0 and d is not;
//   - the quotient is rejected by [Checker.CheckRange] of C.
func (d LogFloat[F, C]) Quo(e Operand[F]) (LogFloat[F, C], error) {
	f, err := d.Promote(e)
	if err != nil {
		return LogFloat[F, C]{}, fmt.Errorf("computing [%v / %v]: %w", d, e, err)
	}
	g, err := d.quo(f)
	if err != nil {
		return LogFloat[F, C]{}, fmt.Errorf("computing [%v / %v]: %w", d, f, err)
	}
	return g, nil
}

func (d LogFloat[F, C]) quo(e LogFloat[F, C]) (LogFloat[F, C], error) {
	// Special case: zero divisor
	if e.IsZero() {
		if d.IsZero() {
			return LogFloat[F, C]{}, fmt.Errorf("zero divided by zero: %w", ErrUndefined)
		}
		return LogFloat[F, C]{}, fmt.Errorf("division by zero: %w", ErrRange)
	}

	// General case
	return NewFromLog[F, C](d.lv - e.lv)
}

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
//
// The comparison is an exact comparison of log-values; no tolerance
// is applied and no checker is consulted.
// An operand with a negative or NaN raw value is less than every log-float.
func (d LogFloat[F, C]) Cmp(e Operand[F]) int {
	return cmp.Compare(d.lv, logOfOperand[F, C](e))
}

// Equal returns true if d == e.
// Also see method [LogFloat.Cmp].
func (d LogFloat[F, C]) Equal(e Operand[F]) bool {
	return d.Cmp(e) == 0
}

// Less returns true if d < e.
func (d LogFloat[F, C]) Less(e Operand[F]) bool {
	return d.Cmp(e) < 0
}

// LessOrEqual returns true if d <= e.
func (d LogFloat[F, C]) LessOrEqual(e Operand[F]) bool {
	return d.Cmp(e) <= 0
}

// Greater returns true if d > e.
func (d LogFloat[F, C]) Greater(e Operand[F]) bool {
	return d.Cmp(e) > 0
}

// GreaterOrEqual returns true if d >= e.
func (d LogFloat[F, C]) GreaterOrEqual(e Operand[F]) bool {
	return d.Cmp(e) >= 0
}

// Max returns maximum of d and e.
func (d LogFloat[F, C]) Max(e LogFloat[F, C]) LogFloat[F, C] {
	if d.lv >= e.lv {
		return d
	}
	return e
}

// Min returns minimum of d and e.
func (d LogFloat[F, C]) Min(e LogFloat[F, C]) LogFloat[F, C] {
	if d.lv <= e.lv {
		return d
	}
	return e
}
