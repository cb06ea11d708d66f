package recurrence

import (
	"fmt"

	"github.com/tuneinsight/orthorc/arith"
	"github.com/tuneinsight/orthorc/polynomial"
)

// Stieltjes computes the first n recurrence coefficients with the Stieltjes
// procedure: the monic orthogonal polynomials pi_k are built explicitly,
//
//	pi_0 = 1,  pi_1 = (x - alpha_0) pi_0,
//	pi_k = (x - alpha_{k-1}) pi_{k-1} - beta_{k-1} pi_{k-2},
//
// and, with mu_k = int pi_k^2,
//
//	alpha_k = int x pi_k^2 / mu_k,  beta_k = mu_k / mu_{k-1}.
//
// beta_0 is left undefined (f.Undefined()).
//
// The integrator must be exact: the degree of pi_k^2 grows with k and rounding
// errors in its coefficients are amplified at every step, so the procedure
// is meant for exact fields and small n. It is the reference the other
// algorithms are checked against.
//
// n == 0 returns empty coefficients without calling integrate. Errors of the
// integrator are returned wrapped with the step at which they occurred.
func Stieltjes[T any](f arith.Field[T], integrate polynomial.Integrator[T], n int) (c Coefficients[T], err error) {

	if n < 0 {
		return c, fmt.Errorf("cannot Stieltjes: n=%d: %w", n, ErrInvalidCount)
	}

	c = NewCoefficients[T](n)

	if n == 0 {
		return
	}

	pi, piPrev := polynomial.Constant(f.One()), polynomial.Polynomial[T]{}

	var mu, muPrev T

	for k := 0; k < n; k++ {

		if k > 0 {
			next := pi.MulX(f).Sub(f, pi.Scale(f, c.Alpha[k-1]))
			if k > 1 {
				next = next.Sub(f, piPrev.Scale(f, c.Beta[k-1]))
			}
			pi, piPrev = next, pi
		}

		pi2 := pi.Mul(f, pi)

		if mu, err = integrate(pi2); err != nil {
			return Coefficients[T]{}, fmt.Errorf("cannot Stieltjes: step %d: %w", k, err)
		}

		if f.Sign(mu) <= 0 {
			return Coefficients[T]{}, fmt.Errorf("cannot Stieltjes: step %d: int pi_k^2 = %s: %w", k, f.String(mu), ErrIllConditioned)
		}

		var xmu T
		if xmu, err = integrate(pi2.MulX(f)); err != nil {
			return Coefficients[T]{}, fmt.Errorf("cannot Stieltjes: step %d: %w", k, err)
		}

		c.Alpha[k] = f.Quo(xmu, mu)

		if k == 0 {
			c.Beta[k] = f.Undefined()
		} else {
			c.Beta[k] = f.Quo(mu, muPrev)
		}

		muPrev = mu
	}

	return
}
