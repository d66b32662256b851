package expr

import (
	"fmt"
	"math"
	"strconv"
)

// Number is a normalized calculator result. Integral values that fit an int64
// are held in integer form; everything else keeps its float64 value.
type Number struct {
	f     float64
	i     int64
	isInt bool
}

// Normalize converts f to a Number, dropping a zero fractional part.
func Normalize(f float64) Number {
	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		return Number{f: f, i: int64(f), isInt: true}
	}
	return Number{f: f}
}

// IsInt reports whether n is held in integer form.
func (n Number) IsInt() bool { return n.isInt }

// Float64 returns n as a float64.
func (n Number) Float64() float64 {
	if n.isInt {
		return float64(n.i)
	}
	return n.f
}

// String formats n in plain decimal notation. The text never uses an
// exponent, so it evaluates back to the same value.
func (n Number) String() string {
	if n.isInt {
		return strconv.FormatInt(n.i, 10)
	}
	return strconv.FormatFloat(n.f, 'f', -1, 64)
}

// MarshalJSON encodes n as a JSON number.
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.isInt && (math.IsNaN(n.f) || math.IsInf(n.f, 0)) {
		return nil, fmt.Errorf("expr: cannot encode %v as JSON", n.f)
	}
	return []byte(n.String()), nil
}
