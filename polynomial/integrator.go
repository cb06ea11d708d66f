package polynomial

import (
	"errors"
	"fmt"

	"github.com/tuneinsight/orthorc/arith"
)

// ErrDegreeTooHigh is returned by an Integrator that lacks the data to
// integrate a polynomial of the given degree.
var ErrDegreeTooHigh = errors.New("polynomial: degree exceeds the available moments")

// Integrator returns the integral of p against a fixed measure.
// Integrators used by the Stieltjes procedure are expected to be exact.
type Integrator[T any] func(p Polynomial[T]) (T, error)

// MomentIntegrator returns the Integrator of the measure whose k-th moment is
// moments[k]: int p = sum_k p_k * moments[k].
// It returns ErrDegreeTooHigh for polynomials of degree >= len(moments) and
// arith.ErrUndefined if one of the moments it needs is undefined.
func MomentIntegrator[T any](f arith.Field[T], moments []T) Integrator[T] {

	m := make([]T, len(moments))
	copy(m, moments)

	return func(p Polynomial[T]) (T, error) {

		deg := p.Degree(f)

		if deg >= len(m) {
			return f.Undefined(), fmt.Errorf("cannot integrate polynomial of degree %d with %d moments: %w", deg, len(m), ErrDegreeTooHigh)
		}

		sum := f.Zero()
		for k := 0; k <= deg; k++ {
			if f.IsUndefined(m[k]) {
				return f.Undefined(), fmt.Errorf("cannot integrate polynomial of degree %d: moment %d: %w", deg, k, arith.ErrUndefined)
			}
			sum = f.Add(sum, f.Mul(p.Coeffs[k], m[k]))
		}

		return sum, nil
	}
}

// IntervalIntegrator returns the Integrator of the Lebesgue measure on [a, b]:
// int_a^b x^k dx = (b^(k+1) - a^(k+1)) / (k+1).
// It is exact over exact fields and returns arith.ErrUndefined if a or b is
// undefined.
func IntervalIntegrator[T any](f arith.Field[T], a, b T) Integrator[T] {

	return func(p Polynomial[T]) (T, error) {

		if f.IsUndefined(a) || f.IsUndefined(b) {
			return f.Undefined(), fmt.Errorf("cannot integrate over [%s, %s]: %w", f.String(a), f.String(b), arith.ErrUndefined)
		}

		sum := f.Zero()
		powA, powB := a, b

		for k := 0; k <= p.Degree(f); k++ {
			term := f.Quo(f.Sub(powB, powA), f.FromInt(int64(k+1)))
			sum = f.Add(sum, f.Mul(p.Coeffs[k], term))
			powA, powB = f.Mul(powA, a), f.Mul(powB, b)
		}

		return sum, nil
	}
}
