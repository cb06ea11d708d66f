package recurrence

import (
	"fmt"

	"github.com/tuneinsight/orthorc/arith"
)

// Chebyshev computes the first n recurrence coefficients from the first 2n
// moments mu_k = int x^k dmu(x) with the Chebyshev algorithm. It is
// ChebyshevModified with the monomials as reference system (a = b = 0).
//
// Raw moments make for an ill-conditioned problem, see the package documentation.
func Chebyshev[T any](f arith.Field[T], moments []T) (c Coefficients[T], err error) {

	if len(moments)&1 != 0 {
		return c, fmt.Errorf("cannot Chebyshev: len(moments)=%d is odd: %w", len(moments), ErrMomentsParity)
	}

	zeros := arith.Zeros(f, len(moments))

	return ChebyshevModified(f, moments, zeros, zeros)
}

// ChebyshevModified computes the first n recurrence coefficients from the first
// 2n modified moments nu_l = int q_l dmu, where the q_l are the monic
// polynomials of a reference system with known recurrence coefficients a, b:
//
//	q_{l+1}(x) = (x - a_l) q_l(x) - b_l q_{l-1}(x).
//
// a and b must have at least 2n-1 entries, b_0 is never read.
//
// The mixed moments sigma_{k,l} = int p_k q_l dmu, l = k..2n-1-k, satisfy
//
//	sigma_{0,l} = nu_l,
//	sigma_{k,l} = sigma_{k-1,l+1} - (alpha_{k-1} - a_l) sigma_{k-1,l} + b_l sigma_{k-1,l-1} - beta_{k-1} sigma_{k-2,l},
//
// (the last term only for k > 1) and give
//
//	alpha_0 = a_0 + nu_1/nu_0,  beta_0 = nu_0,
//	alpha_k = a_k + sigma_{k,k+1}/sigma_{k,k} - sigma_{k-1,k}/sigma_{k-1,k-1},
//	beta_k  = sigma_{k,k}/sigma_{k-1,k-1}.
//
// Only the last two rows of sigma are kept. sigma_{k,k} = int p_k^2 dmu must be
// positive: a zero or negative diagonal entry returns ErrIllConditioned.
func ChebyshevModified[T any](f arith.Field[T], nu, a, b []T) (c Coefficients[T], err error) {

	m := len(nu)

	if m&1 != 0 {
		return c, fmt.Errorf("cannot ChebyshevModified: len(nu)=%d is odd: %w", m, ErrMomentsParity)
	}

	n := m >> 1

	if n == 0 {
		return NewCoefficients[T](0), nil
	}

	if len(a) < m-1 || len(b) < m-1 {
		return c, fmt.Errorf("cannot ChebyshevModified: len(a)=%d, len(b)=%d but 2n-1=%d are required: %w", len(a), len(b), m-1, ErrReferenceLength)
	}

	if err = checkDefined(f, "nu", nu, 0, m); err != nil {
		return c, fmt.Errorf("cannot ChebyshevModified: %w", err)
	}

	if err = checkDefined(f, "a", a, 0, m-1); err != nil {
		return c, fmt.Errorf("cannot ChebyshevModified: %w", err)
	}

	// b_0 is never read and may be undefined, as returned by Stieltjes.
	if err = checkDefined(f, "b", b, 1, m-1); err != nil {
		return c, fmt.Errorf("cannot ChebyshevModified: %w", err)
	}

	if f.Sign(nu[0]) <= 0 {
		return c, fmt.Errorf("cannot ChebyshevModified: nu_0 = %s: %w", f.String(nu[0]), ErrIllConditioned)
	}

	c = NewCoefficients[T](n)

	// rows k-2, k-1 and k of sigma, indexed by l
	sigmaPrev2 := make([]T, m)
	sigmaPrev := make([]T, m)
	sigma := make([]T, m)

	copy(sigma, nu)

	c.Alpha[0] = f.Add(a[0], f.Quo(nu[1], nu[0]))
	c.Beta[0] = nu[0]

	for k := 1; k < n; k++ {

		sigmaPrev2, sigmaPrev, sigma = sigmaPrev, sigma, sigmaPrev2

		for l := k; l < m-k; l++ {

			s := f.Sub(sigmaPrev[l+1], f.Mul(f.Sub(c.Alpha[k-1], a[l]), sigmaPrev[l]))
			s = f.Add(s, f.Mul(b[l], sigmaPrev[l-1]))

			if k > 1 {
				s = f.Sub(s, f.Mul(c.Beta[k-1], sigmaPrev2[l]))
			}

			sigma[l] = s
		}

		if f.Sign(sigma[k]) <= 0 {
			return Coefficients[T]{}, fmt.Errorf("cannot ChebyshevModified: sigma[%d][%d] = %s: %w", k, k, f.String(sigma[k]), ErrIllConditioned)
		}

		c.Alpha[k] = f.Add(a[k], f.Sub(f.Quo(sigma[k+1], sigma[k]), f.Quo(sigmaPrev[k], sigmaPrev[k-1])))
		c.Beta[k] = f.Quo(sigma[k], sigmaPrev[k-1])
	}

	return
}
