package recurrence

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/tuneinsight/orthorc/arith"
)

// GautschiTest3Dense is the double precision variant of GautschiTest3 with the
// Hankel determinants evaluated by gonum's LU based mat.Det. Entries whose
// reference value is undefined are NaN.
func GautschiTest3Dense(moments, alpha, beta []float64) (errAlpha, errBeta []float64, err error) {

	n := len(alpha)

	if len(beta) != n {
		return nil, nil, fmt.Errorf("cannot GautschiTest3Dense: len(alpha)=%d != len(beta)=%d: %w", n, len(beta), ErrLengthMismatch)
	}

	if len(moments) < 2*n {
		return nil, nil, fmt.Errorf("cannot GautschiTest3Dense: %d moments given but %d are required: %w", len(moments), 2*n, ErrMomentsLength)
	}

	if err = checkDefined[float64](arith.Float64{}, "moments", moments, 0, 2*n); err != nil {
		return nil, nil, fmt.Errorf("cannot GautschiTest3Dense: %w", err)
	}

	errAlpha, errBeta = make([]float64, n), make([]float64, n)

	if n == 0 {
		return
	}

	D, Dp := make([]float64, n+1), make([]float64, n+1)
	D[0], Dp[0] = 1, 0
	D[1], Dp[1] = moments[0], moments[1]

	for k := 2; k <= n; k++ {
		A := mat.NewDense(k, k, nil)
		for i := 0; i < k; i++ {
			for j := 0; j < k; j++ {
				A.Set(i, j, moments[i+j])
			}
		}
		D[k] = mat.Det(A)

		for i := 0; i < k; i++ {
			A.Set(i, k-1, moments[k+i])
		}
		Dp[k] = mat.Det(A)
	}

	for k := 0; k < n; k++ {

		if D[k+1] == 0 || D[k] == 0 {
			errAlpha[k], errBeta[k] = math.NaN(), math.NaN()
			continue
		}

		errAlpha[k] = math.Abs(alpha[k] - (Dp[k+1]/D[k+1] - Dp[k]/D[k]))

		if k == 0 {
			errBeta[k] = math.Abs(beta[k] - D[1])
		} else {
			errBeta[k] = math.Abs(beta[k] - D[k+1]*D[k-1]/(D[k]*D[k]))
		}
	}

	return
}
