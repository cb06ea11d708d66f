package arith

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/tuneinsight/orthorc/utils/bignum"
)

// Rational is the exact Field over *big.Rat.
// Its undefined sentinel is nil.
type Rational struct{}

func (Rational) Mode() Mode { return Exact }

func (Rational) Zero() *big.Rat { return new(big.Rat) }

func (Rational) One() *big.Rat { return bignum.NewRat(1) }

func (Rational) FromInt(x int64) *big.Rat { return bignum.NewRat(x) }

func (Rational) Frac(a, b int64) *big.Rat { return big.NewRat(a, b) }

// FromFloat64 returns the exact binary value of x, nil if x is not finite.
func (Rational) FromFloat64(x float64) *big.Rat {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil
	}
	return bignum.NewRat(x)
}

// Parse accepts fractions ("2/3") and decimal literals ("0.4", "1e-3"),
// both read exactly. "nan" and the empty string map to the undefined sentinel.
func (Rational) Parse(s string) (*big.Rat, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "nan") || s == "" {
		return nil, nil
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrParse, s)
	}
	return r, nil
}

func (Rational) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }

func (Rational) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }

func (Rational) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }

func (Rational) Quo(a, b *big.Rat) *big.Rat { return new(big.Rat).Quo(a, b) }

func (Rational) Neg(a *big.Rat) *big.Rat { return new(big.Rat).Neg(a) }

func (Rational) Abs(a *big.Rat) *big.Rat { return new(big.Rat).Abs(a) }

func (Rational) Cmp(a, b *big.Rat) int { return a.Cmp(b) }

func (Rational) Sign(a *big.Rat) int { return a.Sign() }

func (Rational) IsZero(a *big.Rat) bool { return a.Sign() == 0 }

func (Rational) Equal(a, b *big.Rat) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Cmp(b) == 0
}

// Sqrt is exact: it succeeds only if a is the square of a rational.
func (Rational) Sqrt(a *big.Rat) (*big.Rat, error) {
	if a.Sign() < 0 {
		return nil, fmt.Errorf("cannot Sqrt(%s): %w", a.RatString(), ErrDomain)
	}
	r, ok := bignum.SqrtRat(a)
	if !ok {
		return nil, fmt.Errorf("cannot Sqrt(%s): %w", a.RatString(), ErrInexact)
	}
	return r, nil
}

// Pow is exact for integer exponents, and for half-integer exponents of
// squares of rationals.
func (r Rational) Pow(a, b *big.Rat) (*big.Rat, error) {

	q := new(big.Rat).Mul(b, big.NewRat(2, 1))

	if !q.IsInt() || !q.Num().IsInt64() {
		return nil, fmt.Errorf("cannot Pow(%s, %s): %w", a.RatString(), b.RatString(), ErrInexact)
	}

	e := q.Num().Int64()

	base := a
	if e&1 != 0 {
		var err error
		if base, err = r.Sqrt(a); err != nil {
			return nil, fmt.Errorf("cannot Pow(%s, %s): %w", a.RatString(), b.RatString(), err)
		}
	} else {
		e /= 2
	}

	if e < 0 {
		if base.Sign() == 0 {
			return nil, fmt.Errorf("cannot Pow(%s, %s): %w", a.RatString(), b.RatString(), ErrDomain)
		}
		base = new(big.Rat).Inv(base)
		e = -e
	}

	E := big.NewInt(e)
	num := new(big.Int).Exp(base.Num(), E, nil)
	den := new(big.Int).Exp(base.Denom(), E, nil)

	return new(big.Rat).SetFrac(num, den), nil
}

// Gamma is exact on the positive integers, Gamma(n) = (n-1)!.
// Every other non-pole argument has an irrational image and returns ErrInexact.
func (Rational) Gamma(a *big.Rat) (*big.Rat, error) {
	if !a.IsInt() {
		return nil, fmt.Errorf("cannot Gamma(%s): %w", a.RatString(), ErrInexact)
	}
	if a.Sign() <= 0 {
		return nil, fmt.Errorf("cannot Gamma(%s): pole: %w", a.RatString(), ErrDomain)
	}
	if !a.Num().IsInt64() {
		return nil, fmt.Errorf("cannot Gamma(%s): argument too large: %w", a.RatString(), ErrInexact)
	}
	return bignum.NewRat(bignum.Factorial(a.Num().Int64() - 1)), nil
}

func (Rational) Undefined() *big.Rat { return nil }

func (Rational) IsUndefined(a *big.Rat) bool { return a == nil }

func (Rational) Float64(a *big.Rat) float64 {
	if a == nil {
		return math.NaN()
	}
	f, _ := a.Float64()
	return f
}

func (Rational) String(a *big.Rat) string {
	if a == nil {
		return "nan"
	}
	return a.RatString()
}
