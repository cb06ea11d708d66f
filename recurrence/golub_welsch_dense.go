package recurrence

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/tuneinsight/orthorc/arith"
)

// GolubWelschDense is the double precision variant of GolubWelsch that takes
// the Cholesky factor R of the Hankel moment matrix from LAPACK (through
// gonum). Its breakdown point is the one of the classical implementations:
// a failed factorization returns ErrIllConditioned.
func GolubWelschDense(moments []float64) (c Coefficients[float64], err error) {

	if len(moments)&1 != 1 {
		return c, fmt.Errorf("cannot GolubWelschDense: len(moments)=%d is not of the form 2n+1: %w", len(moments), ErrMomentsParity)
	}

	if err = checkDefined[float64](arith.Float64{}, "moments", moments, 0, len(moments)); err != nil {
		return c, fmt.Errorf("cannot GolubWelschDense: %w", err)
	}

	n := (len(moments) - 1) >> 1
	N := n + 1

	data := make([]float64, N*N)
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			data[i*N+j] = moments[i+j]
		}
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(mat.NewSymDense(N, data)); !ok {
		return c, fmt.Errorf("cannot GolubWelschDense: Hankel matrix is not positive definite: %w", ErrIllConditioned)
	}

	var R mat.TriDense
	chol.UTo(&R)

	c = NewCoefficients[float64](n)

	var qPrev float64
	for k := 0; k < n; k++ {

		q := R.At(k, k+1) / R.At(k, k)

		c.Alpha[k] = q - qPrev
		qPrev = q

		if k == 0 {
			c.Beta[k] = R.At(0, 0) * R.At(0, 0)
		} else {
			r := R.At(k, k) / R.At(k-1, k-1)
			c.Beta[k] = r * r
		}
	}

	return c, nil
}
