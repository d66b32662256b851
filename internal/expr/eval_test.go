package expr_test

import (
	"errors"
	"testing"

	"go-chi-calculator/internal/arith"
	"go-chi-calculator/internal/expr"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		src   string
		want  string
		isInt bool
	}{
		{src: "2+3*4", want: "14", isInt: true},
		{src: "(2+3)*4", want: "20", isInt: true},
		{src: "2**3**2", want: "512", isInt: true},
		{src: "4/2", want: "2", isInt: true},
		{src: "000 + 3", want: "3", isInt: true},
		{src: "00.5*2", want: "1", isInt: true},
		{src: "7/2", want: "3.5"},
		{src: "10 % 3", want: "1", isInt: true},
		{src: "-7 % 3", want: "2", isInt: true},
		{src: "7 % -3", want: "-2", isInt: true},
		{src: "-2**2", want: "-4", isInt: true},
		{src: "(-2)**2", want: "4", isInt: true},
		{src: "2**-1", want: "0.5"},
		{src: "0.1+0.2", want: "0.30000000000000004"},
		{src: " 1 - -1 ", want: "2", isInt: true},
		{src: ".5 + 5.", want: "5.5"},
		{src: "1/3*3", want: "1", isInt: true},
		{src: "0.00001", want: "0.00001"},
		{src: "9**0.5", want: "3", isInt: true},
		{src: "2 * (3 + (4 - 1)) / 4", want: "3", isInt: true},
	}

	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			got, err := expr.Evaluate(tc.src)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
			if got.IsInt() != tc.isInt {
				t.Fatalf("expected integer form %t, got %t", tc.isInt, got.IsInt())
			}
		})
	}
}

func TestEvaluateRejectsInvalidInput(t *testing.T) {
	tests := []string{
		"5*/3",
		"abs(5)",
		"5//2",
		"2***3",
		"2 ^ 3",
		"1e5",
		"x + 1",
		"__import__",
		"1,5",
		"2 + 2 +",
		"(1 + 2",
		"1 + 2)",
		"",
		"1.2.3",
		"007",
		"-01 + 1",
		"３",
	}

	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			_, err := expr.Evaluate(src)
			if !errors.Is(err, expr.ErrInvalidExpression) {
				t.Fatalf("expected ErrInvalidExpression, got %v", err)
			}
			if errors.Is(err, arith.ErrDivisionByZero) {
				t.Fatal("did not expect ErrDivisionByZero")
			}
		})
	}
}

func TestEvaluateLetterMessage(t *testing.T) {
	_, err := expr.Evaluate("abs(5)")
	var ie *expr.InvalidExpressionError
	if !errors.As(err, &ie) {
		t.Fatalf("expected *InvalidExpressionError, got %T", err)
	}
	if ie.Col != 1 {
		t.Fatalf("expected column 1, got %d", ie.Col)
	}
	if want := `invalid expression: names are not allowed: 'a' at column 1`; err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
	if ie.Kind() != "invalid_expression" {
		t.Fatalf("unexpected kind %q", ie.Kind())
	}
}

func TestEvaluateDivisionByZero(t *testing.T) {
	for _, src := range []string{"1/0", "5 % 0", "1/(2-2)", "0**-1", "3 + 4 % (1 - 1)"} {
		t.Run(src, func(t *testing.T) {
			_, err := expr.Evaluate(src)
			if !errors.Is(err, arith.ErrDivisionByZero) {
				t.Fatalf("expected ErrDivisionByZero, got %v", err)
			}
			if errors.Is(err, expr.ErrInvalidExpression) {
				t.Fatal("division by zero must not be reported as invalid expression")
			}
		})
	}
}

func TestEvaluateNumericFailures(t *testing.T) {
	tests := []struct {
		src   string
		cause error
	}{
		{src: "(-8)**0.5", cause: arith.ErrDomain},
		{src: "10**400", cause: arith.ErrOverflow},
		{src: "10**300*10**300", cause: arith.ErrOverflow},
	}

	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			_, err := expr.Evaluate(tc.src)
			if !errors.Is(err, expr.ErrInvalidExpression) {
				t.Fatalf("expected ErrInvalidExpression, got %v", err)
			}
			if !errors.Is(err, tc.cause) {
				t.Fatalf("expected cause %v, got %v", tc.cause, err)
			}
		})
	}
}

func TestEvaluateIsIdempotentOnResults(t *testing.T) {
	for _, src := range []string{"2/3", "-7/4", "10**20", "1/1024", "0.1*3", "-5", "2**62", "1/3*-1000000"} {
		t.Run(src, func(t *testing.T) {
			first, err := expr.Evaluate(src)
			if err != nil {
				t.Fatalf("evaluating %q: %v", src, err)
			}
			again, err := expr.Evaluate(first.String())
			if err != nil {
				t.Fatalf("re-evaluating %q: %v", first.String(), err)
			}
			if again != first {
				t.Fatalf("expected %s, got %s", first, again)
			}
		})
	}
}

func TestEvaluateFloatRoundTrip(t *testing.T) {
	got, err := expr.Evaluate("1/7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Float64() != 1.0/7 {
		t.Fatalf("expected %v, got %v", 1.0/7, got.Float64())
	}
}

func FuzzEvaluate(f *testing.F) {
	for _, seed := range []string{
		"2+3*4", "(2+3)*4", "-2**2", "2**-1", "1/0", "7 % -3", "0**-1",
		"5*/3", "((1)", "1.2.3", "007", "00.5", ".5+5.", "10**400", "1/3*-1000000",
	} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, src string) {
		n, err := expr.Evaluate(src)
		if err != nil {
			if !errors.Is(err, expr.ErrInvalidExpression) && !errors.Is(err, arith.ErrDivisionByZero) {
				t.Fatalf("%q: unexpected error class %T: %v", src, err, err)
			}
			return
		}

		again, err := expr.Evaluate(n.String())
		if err != nil {
			t.Fatalf("%q = %s, which does not evaluate: %v", src, n, err)
		}
		if again != n {
			t.Fatalf("%q = %s, but %s evaluates to %s", src, n, n, again)
		}
	})
}
