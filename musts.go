package probability

import "fmt"

// MustNew is like [New] but panics if the log-float cannot be constructed.
// It simplifies safe initialization of global variables holding log-floats.
func MustNew[F Float, C Checker[F]](v F) LogFloat[F, C] {
	d, err := New[F, C](v)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v) failed: %v", v, err))
	}
	return d
}

// MustNewFromLog is like [NewFromLog] but panics if the log-float cannot be
// constructed.
func MustNewFromLog[F Float, C Checker[F]](lv F) LogFloat[F, C] {
	d, err := NewFromLog[F, C](lv)
	if err != nil {
		panic(fmt.Sprintf("MustNewFromLog(%v) failed: %v", lv, err))
	}
	return d
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
func MustParse[F Float, C Checker[F]](s string) LogFloat[F, C] {
	d, err := Parse[F, C](s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}

// MustAdd is like [LogFloat.Add] but panics if computing error.
func (d LogFloat[F, C]) MustAdd(e Operand[F]) LogFloat[F, C] {
	f, err := d.Add(e)
	if err != nil {
		panic(fmt.Sprintf("%v.MustAdd(%v) failed: %v", d, e, err))
	}
	return f
}

// MustSub is like [LogFloat.Sub] but panics if computing error.
func (d LogFloat[F, C]) MustSub(e Operand[F]) LogFloat[F, C] {
	f, err := d.Sub(e)
	if err != nil {
		panic(fmt.Sprintf("%v.MustSub(%v) failed: %v", d, e, err))
	}
	return f
}

// MustMul is like [LogFloat.Mul] but panics if computing error.
func (d LogFloat[F, C]) MustMul(e Operand[F]) LogFloat[F, C] {
	f, err := d.Mul(e)
	if err != nil {
		panic(fmt.Sprintf("%v.MustMul(%v) failed: %v", d, e, err))
	}
	return f
}

// MustQuo is like [LogFloat.Quo] but panics if computing error.
func (d LogFloat[F, C]) MustQuo(e Operand[F]) LogFloat[F, C] {
	f, err := d.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("%v.MustQuo(%v) failed: %v", d, e, err))
	}
	return f
}

// MustPromote is like [LogFloat.Promote] but panics if the operand
// cannot be converted.
func (d LogFloat[F, C]) MustPromote(x Operand[F]) LogFloat[F, C] {
	f, err := d.Promote(x)
	if err != nil {
		panic(fmt.Sprintf("%v.MustPromote(%v) failed: %v", d, x, err))
	}
	return f
}
