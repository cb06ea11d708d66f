package arith

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Float64 is the double precision Field.
// Its undefined sentinel is NaN.
type Float64 struct{}

func (Float64) Mode() Mode { return Float }

func (Float64) Zero() float64 { return 0 }

func (Float64) One() float64 { return 1 }

func (Float64) FromInt(x int64) float64 { return float64(x) }

func (Float64) Frac(a, b int64) float64 { return float64(a) / float64(b) }

func (Float64) FromFloat64(x float64) float64 { return x }

// Parse accepts float literals as well as fractions "p/q".
func (Float64) Parse(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "nan") || s == "" {
		return math.NaN(), nil
	}
	if strings.ContainsRune(s, '/') {
		r, ok := new(big.Rat).SetString(s)
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrParse, s)
		}
		x, _ := r.Float64()
		return x, nil
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrParse, s)
	}
	return x, nil
}

func (Float64) Add(a, b float64) float64 { return a + b }

func (Float64) Sub(a, b float64) float64 { return a - b }

func (Float64) Mul(a, b float64) float64 { return a * b }

func (Float64) Quo(a, b float64) float64 { return a / b }

func (Float64) Neg(a float64) float64 { return -a }

func (Float64) Abs(a float64) float64 { return math.Abs(a) }

func (Float64) Cmp(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (f Float64) Sign(a float64) int { return f.Cmp(a, 0) }

func (Float64) IsZero(a float64) bool { return a == 0 }

func (Float64) Equal(a, b float64) bool { return a == b }

func (Float64) Sqrt(a float64) (float64, error) {
	if a < 0 {
		return math.NaN(), fmt.Errorf("cannot Sqrt(%v): %w", a, ErrDomain)
	}
	return math.Sqrt(a), nil
}

func (Float64) Pow(a, b float64) (float64, error) {
	if (a < 0 && b != math.Trunc(b)) || (a == 0 && b < 0) {
		return math.NaN(), fmt.Errorf("cannot Pow(%v, %v): %w", a, b, ErrDomain)
	}
	return math.Pow(a, b), nil
}

func (Float64) Gamma(a float64) (float64, error) {
	if a <= 0 && a == math.Trunc(a) {
		return math.NaN(), fmt.Errorf("cannot Gamma(%v): pole: %w", a, ErrDomain)
	}
	return math.Gamma(a), nil
}

func (Float64) Undefined() float64 { return math.NaN() }

func (Float64) IsUndefined(a float64) bool { return math.IsNaN(a) }

func (Float64) Float64(a float64) float64 { return a }

func (Float64) String(a float64) string {
	return strconv.FormatFloat(a, 'g', -1, 64)
}
