package recurrence

import (
	"fmt"

	"github.com/tuneinsight/orthorc/arith"
)

// GolubWelsch computes the recurrence coefficients from the moments
//
//	mu_k = int x^k dmu(x),  k = 0..2n,
//
// by factorizing the (n+1)x(n+1) Hankel matrix M[i][j] = mu_{i+j} = R^T R, see
// section 4 of Golub and Welsch. With Rd the diagonal of R and
// q_k = R[k][k+1]/Rd_k:
//
//	alpha_0 = q_0,     alpha_k = q_k - q_{k-1},
//	beta_0  = Rd_0^2,  beta_k  = (Rd_k/Rd_{k-1})^2.
//
// The factor is computed without square roots as M = L D L^T, so that
// R = D^(1/2) L^T, q_k = L[k+1][k] and Rd_k^2 = D_k; over arith.Rational the
// result is therefore exact.
//
// The method is numerically unstable: in double precision the Hankel matrix
// stops being numerically positive definite after a few coefficients, which is
// reported as ErrIllConditioned. Prefer Chebyshev or ChebyshevModified.
func GolubWelsch[T any](f arith.Field[T], moments []T) (c Coefficients[T], err error) {

	if len(moments)&1 != 1 {
		return c, fmt.Errorf("cannot GolubWelsch: len(moments)=%d is not of the form 2n+1: %w", len(moments), ErrMomentsParity)
	}

	if err = checkDefined(f, "moments", moments, 0, len(moments)); err != nil {
		return c, fmt.Errorf("cannot GolubWelsch: %w", err)
	}

	n := (len(moments) - 1) >> 1

	L, d, err := ldlHankel(f, moments, n+1)
	if err != nil {
		return c, fmt.Errorf("cannot GolubWelsch: %w", err)
	}

	c = NewCoefficients[T](n)

	for k := 0; k < n; k++ {

		// q_k = L[k+1][k]
		c.Alpha[k] = L[k+1][k]
		if k > 0 {
			c.Alpha[k] = f.Sub(c.Alpha[k], L[k][k-1])
		}

		if k == 0 {
			c.Beta[k] = d[0]
		} else {
			c.Beta[k] = f.Quo(d[k], d[k-1])
		}
	}

	return c, nil
}

// ldlHankel returns the unit lower triangular L and the diagonal d of the
// factorization H = L diag(d) L^T of the NxN Hankel matrix H[i][j] = moments[i+j].
// A pivot d_j <= 0 means that H is not positive definite and returns ErrIllConditioned.
func ldlHankel[T any](f arith.Field[T], moments []T, N int) (L [][]T, d []T, err error) {

	L = make([][]T, N)
	for i := range L {
		L[i] = make([]T, i+1)
	}

	d = make([]T, N)

	// ld[k] = L[j][k] * d[k] for the current column j
	ld := make([]T, N)

	for j := 0; j < N; j++ {

		dj := moments[2*j]
		for k := 0; k < j; k++ {
			ld[k] = f.Mul(L[j][k], d[k])
			dj = f.Sub(dj, f.Mul(L[j][k], ld[k]))
		}

		if f.Sign(dj) <= 0 {
			return nil, nil, fmt.Errorf("Hankel matrix is not positive definite, pivot %d is %s: %w", j, f.String(dj), ErrIllConditioned)
		}

		d[j] = dj
		L[j][j] = f.One()

		for i := j + 1; i < N; i++ {
			lij := moments[i+j]
			for k := 0; k < j; k++ {
				lij = f.Sub(lij, f.Mul(L[i][k], ld[k]))
			}
			L[i][j] = f.Quo(lij, dj)
		}
	}

	return
}
