/*
Package probability implements non-negative floating-point numbers stored
in log space.
It is specifically designed for algorithms that multiply long chains of
probabilities, such as hidden Markov model recurrences, where ordinary floats
underflow to zero.

# Representation

[LogFloat] is a struct with a single field: the natural logarithm of the
value it represents.
For example, 0.5 is stored as -0.6931471805599453, and 0 is stored as
negative infinity.

Because the logarithm of a tiny value is a moderate negative number,
a product of thousands of small probabilities remains representable:

	| Value      | Stored log-value |
	| ---------- | ---------------- |
	| 1          | 0                |
	| 0.5        | -0.693...        |
	| 1e-300     | -690.77...       |
	| e^-100000  | -100000          |
	| 0          | -Inf             |

The zero value of [LogFloat] stores a log-value of 0 and therefore
represents 1, the multiplicative identity.
Use [Zero] to obtain a log-float representing 0.

# Checkers

Each [LogFloat] is parameterized by a [Checker], which decides what values
are valid.
The checker is part of the type and cannot change at run time.
Two checkers are provided:

  - [Unchecked] accepts every non-negative finite value.
  - [ProbabilityChecker] accepts only values in [0, 1].
    Since rounding errors accumulate over repeated operations, the checker
    tolerates a log-value slightly above 0.
    The tolerance is machine epsilon multiplied by 2^ulp,
    where ulp is defined by a [Tolerance].

The following aliases cover the common cases: [LogFloat32], [LogFloat64],
[Prob], [Prob32], and [Prob64].

# Operations

Arithmetic is performed entirely in log space:

  - [LogFloat.Mul] and [LogFloat.Quo] add and subtract log-values.
    They are exact up to the rounding of a single floating-point addition.
  - [LogFloat.Add] and [LogFloat.Sub] use the log-sum-exp identity with
    [math.Log1p] to stay accurate when the operands differ greatly in
    magnitude or are nearly equal.

Comparisons ([LogFloat.Cmp], [LogFloat.Equal], [LogFloat.Less], and others)
compare log-values exactly.
No tolerance is applied to equality; tolerance only applies to range checks.

# Operands

Arithmetic and comparison methods accept any [Operand]:

  - a [LogFloat] of the same precision and any checker;
  - an ordinary float wrapped with [Raw];
  - any type implementing [Operand] or [Logarithm].

Every operand is converted by [LogFloat.Promote] before the operation.
The same conversion applies when an ordinary float appears on the left,
so that x - p can be written as:

	d, err := p.Promote(probability.Raw(x))
	if err != nil {
		...
	}
	d, err = d.Sub(p)

Values of a different precision or with a checker that must be re-checked
are moved with [Convert].

# Errors

All methods are panic-free and pure.
Errors wrap one of the following sentinels and can be tested with
[errors.Is]:

  - [ErrDomain]: the input to [New] is negative, NaN, infinite, or rejected
    by the checker, for example a probability greater than 1.
  - [ErrRange]: the result of an operation exceeds the limit of the checker,
    or is infinite, as happens when dividing by 0.
  - [ErrUndefined]: the operation has no defined result, such as 0 / 0 or
    subtracting a larger value from a smaller one.
  - [ErrTolerance]: the [Tolerance] is wider than the mantissa of the
    underlying float type.

Values are never clamped or saturated.
Callers that treat these conditions as programming errors can use
[LogFloat.MustAdd] and the other Must methods, which panic instead.

# Encodings

Log-floats implement [fmt.Stringer], [fmt.Formatter],
[encoding.TextMarshaler], [encoding.TextUnmarshaler], the
[yaml.Marshaler] and [yaml.Unmarshaler] interfaces of gopkg.in/yaml.v3,
and the [sql.Scanner] and [driver.Valuer] interfaces.
Values too small to be represented as ordinary floats are encoded in the
form "exp(lv)", see [LogFloat.String] and [Parse].

[yaml.Marshaler]: https://pkg.go.dev/gopkg.in/yaml.v3#Marshaler
[yaml.Unmarshaler]: https://pkg.go.dev/gopkg.in/yaml.v3#Unmarshaler
[sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
[driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
*/
package probability
