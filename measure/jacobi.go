// Package measure provides the moments of classical weight functions, as input
// data for the algorithms of the recurrence package.
package measure

import (
	"errors"
	"fmt"

	"github.com/tuneinsight/orthorc/arith"
)

var (
	// ErrInvalidWeight is returned for weight parameters that do not define a
	// finite measure.
	ErrInvalidWeight = errors.New("measure: invalid weight parameters")

	// ErrInvalidCount is returned for a negative number of moments.
	ErrInvalidCount = errors.New("measure: invalid number of moments")
)

// JacobiMass returns int_{-1}^{1} (1-x)^a (1+x)^b dx = 2^(a+b+1) Gamma(a+1) Gamma(b+1) / Gamma(a+b+2).
// a and b must be greater than -1.
func JacobiMass[T any](f arith.Field[T], a, b T) (mass T, err error) {

	one := f.One()

	if f.Cmp(a, f.Neg(one)) <= 0 || f.Cmp(b, f.Neg(one)) <= 0 {
		return f.Undefined(), fmt.Errorf("cannot JacobiMass: a=%s, b=%s must be > -1: %w", f.String(a), f.String(b), ErrInvalidWeight)
	}

	a1, b1 := f.Add(a, one), f.Add(b, one)

	var ga, gb, gab T

	if ga, err = f.Gamma(a1); err != nil {
		return f.Undefined(), fmt.Errorf("cannot JacobiMass: %w", err)
	}

	if gb, err = f.Gamma(b1); err != nil {
		return f.Undefined(), fmt.Errorf("cannot JacobiMass: %w", err)
	}

	if gab, err = f.Gamma(f.Add(a1, b1)); err != nil {
		return f.Undefined(), fmt.Errorf("cannot JacobiMass: %w", err)
	}

	var pow T
	if pow, err = f.Pow(f.FromInt(2), f.Sub(f.Add(a1, b1), one)); err != nil {
		return f.Undefined(), fmt.Errorf("cannot JacobiMass: %w", err)
	}

	return f.Quo(f.Mul(pow, f.Mul(ga, gb)), gab), nil
}

// JacobiMoments returns the first m moments of the Jacobi weight
// (1-x)^a (1+x)^b on [-1, 1]. Integrating the derivative of
// (1-x)^(a+1) (1+x)^(b+1) x^k over [-1, 1] gives
//
//	(a+b+k+2) mu_{k+1} = (b-a) mu_k + k mu_{k-1}.
func JacobiMoments[T any](f arith.Field[T], a, b T, m int) (mu []T, err error) {

	if m < 0 {
		return nil, fmt.Errorf("cannot JacobiMoments: m=%d: %w", m, ErrInvalidCount)
	}

	mu = make([]T, m)

	if m == 0 {
		return
	}

	if mu[0], err = JacobiMass(f, a, b); err != nil {
		return nil, fmt.Errorf("cannot JacobiMoments: %w", err)
	}

	bma := f.Sub(b, a)
	apb2 := f.Add(f.Add(a, b), f.FromInt(2))

	for k := 0; k+1 < m; k++ {
		s := f.Mul(bma, mu[k])
		if k > 0 {
			s = f.Add(s, f.Mul(f.FromInt(int64(k)), mu[k-1]))
		}
		mu[k+1] = f.Quo(s, f.Add(apb2, f.FromInt(int64(k))))
	}

	return
}

// LegendreMoments returns the first m moments of the constant weight on
// [-1, 1]: 2/(k+1) for even k, 0 for odd k.
func LegendreMoments[T any](f arith.Field[T], m int) (mu []T) {
	mu = make([]T, m)
	for k := range mu {
		if k&1 == 0 {
			mu[k] = f.Frac(2, int64(k+1))
		} else {
			mu[k] = f.Zero()
		}
	}
	return
}
