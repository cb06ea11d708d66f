package arith

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/tuneinsight/orthorc/utils/bignum"
)

// DefaultPrec is the precision, in bits, of a BigFloat with Prec == 0.
const DefaultPrec = uint(256)

// BigFloat is the arbitrary precision Field over *big.Float.
// Its undefined sentinel is nil.
type BigFloat struct {
	// Prec is the mantissa precision in bits, DefaultPrec if zero.
	Prec uint
}

// NewBigFloat returns a BigFloat field with prec bits of precision.
func NewBigFloat(prec uint) BigFloat {
	return BigFloat{Prec: prec}
}

func (f BigFloat) prec() uint {
	if f.Prec == 0 {
		return DefaultPrec
	}
	return f.Prec
}

func (f BigFloat) new() *big.Float {
	return new(big.Float).SetPrec(f.prec())
}

func (BigFloat) Mode() Mode { return Multiprecision }

func (f BigFloat) Zero() *big.Float { return f.new() }

func (f BigFloat) One() *big.Float { return f.new().SetInt64(1) }

func (f BigFloat) FromInt(x int64) *big.Float { return f.new().SetInt64(x) }

func (f BigFloat) Frac(a, b int64) *big.Float {
	return f.new().Quo(f.FromInt(a), f.FromInt(b))
}

// FromFloat64 returns x, nil if x is not finite.
func (f BigFloat) FromFloat64(x float64) *big.Float {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil
	}
	return bignum.NewFloat(x, f.prec())
}

// Parse reads fractions exactly before rounding them to the precision of
// the field. "nan" and the empty string map to the undefined sentinel.
func (f BigFloat) Parse(s string) (*big.Float, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "nan") || s == "" {
		return nil, nil
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrParse, s)
	}
	return bignum.NewFloat(r, f.prec()), nil
}

func (f BigFloat) Add(a, b *big.Float) *big.Float { return f.new().Add(a, b) }

func (f BigFloat) Sub(a, b *big.Float) *big.Float { return f.new().Sub(a, b) }

func (f BigFloat) Mul(a, b *big.Float) *big.Float { return f.new().Mul(a, b) }

func (f BigFloat) Quo(a, b *big.Float) *big.Float { return f.new().Quo(a, b) }

func (f BigFloat) Neg(a *big.Float) *big.Float { return f.new().Neg(a) }

func (f BigFloat) Abs(a *big.Float) *big.Float { return f.new().Abs(a) }

func (BigFloat) Cmp(a, b *big.Float) int { return a.Cmp(b) }

func (BigFloat) Sign(a *big.Float) int { return a.Sign() }

func (BigFloat) IsZero(a *big.Float) bool { return a.Sign() == 0 }

func (BigFloat) Equal(a, b *big.Float) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Cmp(b) == 0
}

func (f BigFloat) Sqrt(a *big.Float) (*big.Float, error) {
	if a.Sign() < 0 {
		return nil, fmt.Errorf("cannot Sqrt(%s): %w", a.Text('g', 10), ErrDomain)
	}
	return f.new().Sqrt(a), nil
}

func (f BigFloat) Pow(a, b *big.Float) (*big.Float, error) {

	if b.IsInt() {

		e, acc := b.Int64()
		if acc != big.Exact {
			return nil, fmt.Errorf("cannot Pow(%s, %s): exponent overflow: %w", a.Text('g', 10), b.Text('g', 10), ErrDomain)
		}

		base := f.new().Set(a)
		if e < 0 {
			if a.Sign() == 0 {
				return nil, fmt.Errorf("cannot Pow(%s, %s): %w", a.Text('g', 10), b.Text('g', 10), ErrDomain)
			}
			base.Quo(f.One(), base)
			e = -e
		}

		p := f.One()
		for ; e > 0; e >>= 1 {
			if e&1 == 1 {
				p.Mul(p, base)
			}
			base.Mul(base, base)
		}

		return p, nil
	}

	switch a.Sign() {
	case -1:
		return nil, fmt.Errorf("cannot Pow(%s, %s): %w", a.Text('g', 10), b.Text('g', 10), ErrDomain)
	case 0:
		if b.Sign() < 0 {
			return nil, fmt.Errorf("cannot Pow(%s, %s): %w", a.Text('g', 10), b.Text('g', 10), ErrDomain)
		}
		return f.Zero(), nil
	}

	return bignum.Pow(bignum.NewFloat(a, f.prec()), bignum.NewFloat(b, f.prec())), nil
}

func (f BigFloat) Gamma(a *big.Float) (*big.Float, error) {
	if bignum.IsGammaPole(a) {
		return nil, fmt.Errorf("cannot Gamma(%s): pole: %w", a.Text('g', 10), ErrDomain)
	}
	return bignum.Gamma(bignum.NewFloat(a, f.prec())), nil
}

func (BigFloat) Undefined() *big.Float { return nil }

func (BigFloat) IsUndefined(a *big.Float) bool { return a == nil }

func (BigFloat) Float64(a *big.Float) float64 {
	if a == nil {
		return math.NaN()
	}
	x, _ := a.Float64()
	return x
}

func (f BigFloat) String(a *big.Float) string {
	if a == nil {
		return "nan"
	}
	// log10(2) ~ 0.30103
	return a.Text('g', int(float64(f.prec())*0.30103))
}
