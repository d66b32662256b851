package arith

// Error is a numeric failure raised by a primitive. Values are compared by
// identity, so errors.Is works against the exported sentinels.
type Error struct {
	kind string
	msg  string
}

func (e *Error) Error() string { return e.msg }

// Kind returns a machine-readable name for the failure, e.g. "division_by_zero".
func (e *Error) Kind() string { return e.kind }

var (
	// ErrDivisionByZero is returned by Div and Mod when the divisor is zero,
	// and by Power when zero is raised to a negative exponent.
	ErrDivisionByZero = &Error{kind: "division_by_zero", msg: "division by zero"}

	// ErrDomain is returned when the real-valued result is undefined.
	ErrDomain = &Error{kind: "domain", msg: "math domain error"}

	// ErrOverflow is returned when finite operands produce an infinite result.
	ErrOverflow = &Error{kind: "overflow", msg: "numerical result out of range"}
)
