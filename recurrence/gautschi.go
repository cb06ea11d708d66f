package recurrence

import (
	"fmt"

	"github.com/tuneinsight/orthorc/arith"
)

// GautschiTest3 implements test #3 of Gautschi (1983): the recurrence
// coefficients are recomputed from the Hankel determinants of the moments
//
//	D_0 = 1, D_1 = mu_0, D_k = det(H_k),  H_k[i][j] = mu_{i+j}, 0 <= i, j < k,
//	Dp_0 = 0, Dp_1 = mu_1, Dp_k = det(H_k with its last column set to mu_k..mu_{2k-1}),
//
// as alpha*_k = Dp_{k+1}/D_{k+1} - Dp_k/D_k, beta*_0 = D_1 and
// beta*_k = D_{k+1} D_{k-1} / D_k^2, and the elementwise absolute errors
// |alpha_k - alpha*_k| and |beta_k - beta*_k| are returned.
//
// The check never fails on a mismatch, the caller thresholds the errors. An
// error entry is the undefined sentinel if the reference value is undefined (a
// vanishing determinant) or if the candidate value is. Only malformed input
// returns an error: ErrLengthMismatch if len(alpha) != len(beta) and
// ErrMomentsLength if fewer than 2n moments are given.
func GautschiTest3[T any](f arith.Field[T], moments, alpha, beta []T) (errAlpha, errBeta []T, err error) {

	n := len(alpha)

	if len(beta) != n {
		return nil, nil, fmt.Errorf("cannot GautschiTest3: len(alpha)=%d != len(beta)=%d: %w", n, len(beta), ErrLengthMismatch)
	}

	if len(moments) < 2*n {
		return nil, nil, fmt.Errorf("cannot GautschiTest3: %d moments given but %d are required: %w", len(moments), 2*n, ErrMomentsLength)
	}

	if err = checkDefined(f, "moments", moments, 0, 2*n); err != nil {
		return nil, nil, fmt.Errorf("cannot GautschiTest3: %w", err)
	}

	errAlpha, errBeta = make([]T, n), make([]T, n)

	if n == 0 {
		return
	}

	D, Dp := hankelDeterminants(f, moments, n)

	for k := 0; k < n; k++ {

		errAlpha[k] = f.Undefined()
		errBeta[k] = f.Undefined()

		if f.IsZero(D[k+1]) || f.IsZero(D[k]) {
			continue
		}

		if !f.IsUndefined(alpha[k]) {
			ref := f.Sub(f.Quo(Dp[k+1], D[k+1]), f.Quo(Dp[k], D[k]))
			errAlpha[k] = f.Abs(f.Sub(alpha[k], ref))
		}

		if !f.IsUndefined(beta[k]) {
			var ref T
			if k == 0 {
				ref = D[1]
			} else {
				ref = f.Quo(f.Mul(D[k+1], D[k-1]), f.Mul(D[k], D[k]))
			}
			errBeta[k] = f.Abs(f.Sub(beta[k], ref))
		}
	}

	return
}

// hankelDeterminants returns D_k and Dp_k for k = 0..n.
func hankelDeterminants[T any](f arith.Field[T], moments []T, n int) (D, Dp []T) {

	D, Dp = make([]T, n+1), make([]T, n+1)

	D[0], Dp[0] = f.One(), f.Zero()
	D[1], Dp[1] = moments[0], moments[1]

	for k := 2; k <= n; k++ {

		A := make([][]T, k)
		for i := range A {
			A[i] = make([]T, k)
			copy(A[i], moments[i:i+k])
		}

		D[k] = determinant(f, A)

		for i := range A {
			A[i] = make([]T, k)
			copy(A[i], moments[i:i+k])
			A[i][k-1] = moments[k+i]
		}

		Dp[k] = determinant(f, A)
	}

	return
}

// determinant returns det(A) by Gaussian elimination with partial pivoting.
// A is overwritten.
func determinant[T any](f arith.Field[T], A [][]T) (det T) {

	n := len(A)

	det = f.One()

	for j := 0; j < n; j++ {

		p := j
		for i := j + 1; i < n; i++ {
			if f.Cmp(f.Abs(A[i][j]), f.Abs(A[p][j])) > 0 {
				p = i
			}
		}

		if f.IsZero(A[p][j]) {
			return f.Zero()
		}

		if p != j {
			A[p], A[j] = A[j], A[p]
			det = f.Neg(det)
		}

		det = f.Mul(det, A[j][j])

		for i := j + 1; i < n; i++ {
			if f.IsZero(A[i][j]) {
				continue
			}
			r := f.Quo(A[i][j], A[j][j])
			for l := j + 1; l < n; l++ {
				A[i][l] = f.Sub(A[i][l], f.Mul(r, A[j][l]))
			}
		}
	}

	return
}
