package expr

import (
	"errors"
	"strconv"
)

// ErrInvalidExpression matches every *InvalidExpressionError with errors.Is.
var ErrInvalidExpression = errors.New("invalid expression")

// InvalidExpressionError reports malformed or disallowed input.
type InvalidExpressionError struct {
	// Expr is the rejected input.
	Expr string
	// Col is the 1-based column of the offending character, or 0 when the
	// failure has no single position.
	Col int
	// Msg describes the problem.
	Msg string
	// Err is the underlying numeric failure, if any.
	Err error
}

func (e *InvalidExpressionError) Error() string {
	s := "invalid expression: " + e.Msg
	if e.Col > 0 {
		s += " at column " + strconv.Itoa(e.Col)
	}
	return s
}

func (e *InvalidExpressionError) Unwrap() error { return e.Err }

func (e *InvalidExpressionError) Is(target error) bool { return target == ErrInvalidExpression }

// Kind returns "invalid_expression".
func (e *InvalidExpressionError) Kind() string { return "invalid_expression" }

func invalid(src string, col int, msg string) *InvalidExpressionError {
	return &InvalidExpressionError{Expr: src, Col: col, Msg: msg}
}
