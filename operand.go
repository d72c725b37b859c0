package probability

import (
	"fmt"
	"math"
)

// Operand is a value that can take part in log-float arithmetic and
// comparisons. Float returns the raw, non-logarithmic value.
//
// Every [LogFloat] is an operand, as is every value returned by [Raw].
// Callers may implement Operand on their own types to make them
// interoperable with log-floats.
type Operand[F Float] interface {
	Float() F
}

// Logarithm is an operand that also knows its natural logarithm.
// Logarithms are promoted without leaving log space, so no precision is
// lost to exponentiation.
//
// Every [LogFloat] with the same precision is a logarithm, regardless of
// its checker.
type Logarithm[F Float] interface {
	Operand[F]
	Log() F
}

// Scalar is an operand wrapping an ordinary float.
type Scalar[F Float] struct {
	v F
}

// Raw returns an operand with the value v.
// It allows ordinary floats to be used on either side of log-float operations:
//
//	s, err := p.Add(probability.Raw(0.25))
func Raw[F Float](v F) Scalar[F] {
	return Scalar[F]{v: v}
}

// Float returns the wrapped value.
func (s Scalar[F]) Float() F {
	return s.v
}

// Promote converts x to a log-float of the same type as d.
// This is the only conversion used by the arithmetic methods,
// so that an operand is treated the same regardless of its position:
//
//	q, err := p.Promote(probability.Raw(0.6)) // q = 0.6
//	r, err := q.Sub(p)                        // r = 0.6 - p
//
// The conversion depends on the kind of x:
//   - a log-float of the same type is returned unchanged;
//   - a [Logarithm] is converted as if by [NewFromLog];
//   - any other [Operand] is converted as if by [New].
//
// A nil operand, including a nil *LogFloat of the same type, is reported as
// [ErrUndefined]. Other pointer operands must not be nil.
func (d LogFloat[F, C]) Promote(x Operand[F]) (LogFloat[F, C], error) {
	switch x := x.(type) {
	case nil:
		return LogFloat[F, C]{}, errNilOperand
	case LogFloat[F, C]:
		return x, nil
	case *LogFloat[F, C]:
		if x == nil {
			return LogFloat[F, C]{}, errNilOperand
		}
		return *x, nil
	case Logarithm[F]:
		return NewFromLog[F, C](x.Log())
	default:
		return New[F, C](x.Float())
	}
}

// logOfOperand returns the natural logarithm of x without consulting any
// checker. The result is NaN if x is nil or its raw value is negative or NaN.
func logOfOperand[F Float, C Checker[F]](x Operand[F]) F {
	switch x := x.(type) {
	case nil:
		return F(math.NaN())
	case *LogFloat[F, C]:
		if x == nil {
			return F(math.NaN())
		}
		return x.lv
	case Logarithm[F]:
		return x.Log()
	default:
		return logOf(x.Float())
	}
}

// Convert returns a log-float of precision F2 and checker C2 holding the
// same log-value as x.
// It is used to move values between precisions or checkers, for example
// from a [LogFloat64] into a [Prob64].
//
// Convert returns an error if the log-value is rejected by
// [Checker.CheckRange] of C2.
func Convert[F2 Float, C2 Checker[F2], F1 Float](x Logarithm[F1]) (LogFloat[F2, C2], error) {
	if x == nil {
		return LogFloat[F2, C2]{}, errNilOperand
	}
	d, err := NewFromLog[F2, C2](F2(x.Log()))
	if err != nil {
		return LogFloat[F2, C2]{}, fmt.Errorf("converting %v: %w", x, err)
	}
	return d, nil
}
