package arith

import (
	"errors"
	"math"
	"testing"
)

func TestBasicOperations(t *testing.T) {
	tests := []struct {
		name string
		fn   Func
		a, b float64
		want float64
	}{
		{name: "add", fn: Add, a: 2, b: 3, want: 5},
		{name: "sub", fn: Sub, a: 5, b: 2, want: 3},
		{name: "mul", fn: Mul, a: 3, b: 4, want: 12},
		{name: "div", fn: Div, a: 8, b: 2, want: 4},
		{name: "power", fn: Power, a: 2, b: 3, want: 8},
		{name: "mod", fn: Mod, a: 10, b: 3, want: 1},
		{name: "mod negative dividend", fn: Mod, a: -7, b: 3, want: 2},
		{name: "mod negative divisor", fn: Mod, a: 7, b: -3, want: -2},
		{name: "mod fractional", fn: Mod, a: 5.5, b: 2, want: 1.5},
		{name: "power fractional", fn: Power, a: 9, b: 0.5, want: 3},
		{name: "power negative exponent", fn: Power, a: 2, b: -1, want: 0.5},
		{name: "zero to zero", fn: Power, a: 0, b: 0, want: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.fn(tc.a, tc.b)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %g, got %g", tc.want, got)
			}
		})
	}
}

func TestDivisionByZero(t *testing.T) {
	for _, a := range []float64{0, 1, -1, 3.5, math.MaxFloat64} {
		if _, err := Div(a, 0); !errors.Is(err, ErrDivisionByZero) {
			t.Fatalf("Div(%g, 0): expected ErrDivisionByZero, got %v", a, err)
		}
		if _, err := Mod(a, 0); !errors.Is(err, ErrDivisionByZero) {
			t.Fatalf("Mod(%g, 0): expected ErrDivisionByZero, got %v", a, err)
		}
	}

	if _, err := Power(0, -1); !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("Power(0, -1): expected ErrDivisionByZero, got %v", err)
	}
}

func TestDivMultipliesBack(t *testing.T) {
	pairs := [][2]float64{{1, 3}, {10, 7}, {-5.5, 2.25}, {1e10, -3}, {0.1, 0.7}}
	for _, p := range pairs {
		q, err := Div(p[0], p[1])
		if err != nil {
			t.Fatalf("Div(%g, %g): %v", p[0], p[1], err)
		}
		if back := q * p[1]; math.Abs(back-p[0]) > 1e-9*math.Max(1, math.Abs(p[0])) {
			t.Fatalf("Div(%g, %g) * %g = %g", p[0], p[1], p[1], back)
		}
	}
}

func TestPowerZeroExponent(t *testing.T) {
	for _, a := range []float64{1, -1, 2.5, -7, 1e100} {
		got, err := Power(a, 0)
		if err != nil || got != 1 {
			t.Fatalf("Power(%g, 0): expected 1, got %g (%v)", a, got, err)
		}
	}
}

func TestPowerFailures(t *testing.T) {
	if _, err := Power(-8, 0.5); !errors.Is(err, ErrDomain) {
		t.Fatalf("expected ErrDomain, got %v", err)
	}
	if _, err := Power(10, 400); !errors.Is(err, ErrOverflow) {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}
}

func TestCheck(t *testing.T) {
	if err := Check(1.5); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if err := Check(math.Inf(-1)); !errors.Is(err, ErrOverflow) {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}
	if err := Check(math.NaN()); !errors.Is(err, ErrDomain) {
		t.Fatalf("expected ErrDomain, got %v", err)
	}
}

func TestErrorKind(t *testing.T) {
	if got := ErrDivisionByZero.Kind(); got != "division_by_zero" {
		t.Fatalf("expected kind %q, got %q", "division_by_zero", got)
	}
	if got := ErrDivisionByZero.Error(); got != "division by zero" {
		t.Fatalf("expected message %q, got %q", "division by zero", got)
	}
}

func TestOperatorLookup(t *testing.T) {
	op, ok := BySymbol("**")
	if !ok || op.Name != "power" {
		t.Fatalf("expected power operator, got %+v (%t)", op, ok)
	}

	op, ok = ByName("modulo")
	if !ok || op.Symbol != "%" {
		t.Fatalf("expected modulo operator, got %+v (%t)", op, ok)
	}

	if _, ok := BySymbol("^"); ok {
		t.Fatal("did not expect ^ to be an operator")
	}

	if got := Symbols(); got != "+ - * / ** %" {
		t.Fatalf("unexpected symbol list %q", got)
	}
}
