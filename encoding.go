package probability

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var errInvalidLogFloat = errors.New("invalid log-float")

// Parse converts a string to a log-float.
// The input string must be in one of the following formats:
//
//	0.25
//	1e-5
//	exp(-1000)
//	exp(-Inf)
//
// The first two are raw values and are converted as if by [New].
// The last two are log-values and are converted as if by [NewFromLog].
// The log-value format allows values too small to be represented
// by an ordinary float to be parsed without loss.
//
// Parse returns an error if the string is not in one of the formats above,
// or if the value is rejected by [New] or [NewFromLog].
func Parse[F Float, C Checker[F]](s string) (LogFloat[F, C], error) {
	if t, ok := strings.CutPrefix(s, "exp("); ok {
		t, ok = strings.CutSuffix(t, ")")
		if !ok {
			return LogFloat[F, C]{}, fmt.Errorf("no closing parenthesis in %q: %w", s, errInvalidLogFloat)
		}
		lv, err := strconv.ParseFloat(t, bitSize[F]())
		if err != nil {
			return LogFloat[F, C]{}, fmt.Errorf("parsing log-value %q: %w", t, errInvalidLogFloat)
		}
		return NewFromLog[F, C](F(lv))
	}
	v, err := strconv.ParseFloat(s, bitSize[F]())
	if err != nil {
		return LogFloat[F, C]{}, fmt.Errorf("parsing value %q: %w", s, errInvalidLogFloat)
	}
	return New[F, C](F(v))
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of a log-float.
// If the value survives a conversion to an ordinary float and back without
// loss, and the float is accepted by the checker, the string is the shortest
// decimal representation of that float.
// Otherwise, the string holds the log-value in the form "exp(lv)".
// In both cases the string can be converted back with [Parse].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d LogFloat[F, C]) String() string {
	var c C
	if v := d.Float(); logOf(v) == d.lv && c.CheckInitialValue(v) == nil {
		return strconv.FormatFloat(float64(v), 'g', -1, bitSize[F]())
	}
	return "exp(" + strconv.FormatFloat(float64(d.lv), 'g', -1, bitSize[F]()) + ")"
}

// Format implements the [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%e, %E, %f, %F, %g, %G: the value as an ordinary float
//	%s, %v:                 the same as [LogFloat.String]
//	%q:                     the same as [LogFloat.String], quoted
//
// Width, precision, and flags are handled as for ordinary floats and strings.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (d LogFloat[F, C]) Format(state fmt.State, verb rune) {
	switch verb {
	case 'e', 'E', 'f', 'F', 'g', 'G':
		if bitSize[F]() == 32 {
			fmt.Fprintf(state, fmt.FormatString(state, verb), float32(d.Float()))
		} else {
			fmt.Fprintf(state, fmt.FormatString(state, verb), float64(d.Float()))
		}
	case 's', 'v', 'q':
		fmt.Fprintf(state, fmt.FormatString(state, verb), d.String())
	default:
		fmt.Fprintf(state, "%%!%c(probability.LogFloat=%s)", verb, d.String())
	}
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *LogFloat[F, C]) UnmarshalText(text []byte) error {
	var err error
	*d, err = Parse[F, C](string(text))
	return err
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// Also see method [LogFloat.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d LogFloat[F, C]) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalYAML implements the [yaml.Unmarshaler] interface.
// The node must be a scalar in one of the formats accepted by [Parse].
//
// [yaml.Unmarshaler]: https://pkg.go.dev/gopkg.in/yaml.v3#Unmarshaler
func (d *LogFloat[F, C]) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %v: cannot unmarshal non-scalar node into %T: %w", value.Line, *d, errInvalidLogFloat)
	}
	return d.UnmarshalText([]byte(value.Value))
}

// MarshalYAML implements the [yaml.Marshaler] interface.
// Also see method [LogFloat.String].
//
// [yaml.Marshaler]: https://pkg.go.dev/gopkg.in/yaml.v3#Marshaler
func (d LogFloat[F, C]) MarshalYAML() (any, error) {
	return d.String(), nil
}

// Scan implements the [sql.Scanner] interface.
// Strings and byte slices are converted as if by [Parse].
// Floats and integers are converted as if by [New].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (d *LogFloat[F, C]) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*d, err = Parse[F, C](value)
	case []byte:
		*d, err = Parse[F, C](string(value))
	case float64:
		*d, err = New[F, C](F(value))
	case int64:
		*d, err = New[F, C](F(value))
	default:
		err = fmt.Errorf("failed to convert from %T to %T: %w", value, *d, errInvalidLogFloat)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// The value is stored as text, so that values too small for an ordinary
// float are not lost.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (d LogFloat[F, C]) Value() (driver.Value, error) {
	return d.String(), nil
}
