// Package arith implements the six calculator primitives. Every primitive is a
// pure function of its two operands.
package arith

import "math"

// Func is the common signature of all primitives.
type Func func(a, b float64) (float64, error)

// Add returns a + b.
func Add(a, b float64) (float64, error) { return a + b, nil }

// Sub returns a - b.
func Sub(a, b float64) (float64, error) { return a - b, nil }

// Mul returns a * b.
func Mul(a, b float64) (float64, error) { return a * b, nil }

// Div returns a / b.
func Div(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// Mod returns the floored remainder of a / b. A non-zero result has the sign
// of b, so Mod(-7, 3) is 2 and Mod(7, -3) is -2.
func Mod(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	r := math.Mod(a, b)
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r, nil
}

// Power returns a raised to b.
func Power(a, b float64) (float64, error) {
	if a == 0 && b < 0 {
		return 0, ErrDivisionByZero
	}
	r := math.Pow(a, b)
	if math.IsNaN(r) && !math.IsNaN(a) && !math.IsNaN(b) {
		return 0, ErrDomain
	}
	if math.IsInf(r, 0) && !math.IsInf(a, 0) && !math.IsInf(b, 0) {
		return 0, ErrOverflow
	}
	return r, nil
}

// Check reports whether v is usable as a calculator result. Infinities are
// ErrOverflow and NaN is ErrDomain.
func Check(v float64) error {
	switch {
	case math.IsNaN(v):
		return ErrDomain
	case math.IsInf(v, 0):
		return ErrOverflow
	}
	return nil
}
