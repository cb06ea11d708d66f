package recurrence

import (
	"fmt"

	"github.com/tuneinsight/orthorc/arith"
	"github.com/tuneinsight/orthorc/utils"
)

// Moments returns the first m moments mu_j = int x^j dmu of the measure whose
// recurrence coefficients are c, beta_0 being its total mass. It is the
// inverse of GolubWelsch and Chebyshev.
//
// The moments up to mu_{m-1} depend on alpha_0..alpha_{m/2-1} and
// beta_0..beta_{(m-1)/2}; ErrInsufficientCoefficients is returned if c is
// shorter.
func Moments[T any](f arith.Field[T], c Coefficients[T], m int) (mu []T, err error) {

	if m < 0 {
		return nil, fmt.Errorf("cannot Moments: m=%d: %w", m, ErrInvalidCount)
	}

	zeros := arith.Zeros(f, m)

	return ModifiedMoments(f, c, Coefficients[T]{Alpha: zeros, Beta: zeros}, m)
}

// ModifiedMoments returns the first m modified moments nu_j = int q_j dmu of the
// measure whose recurrence coefficients are c, where the q_j are the monic
// polynomials of the reference recurrence ref (ref.Beta[0] is not read).
// It is the inverse of ChebyshevModified. ref must hold at least m-1
// coefficients.
//
// Writing q_j = sum_i v_{j,i} p_i in the orthogonal basis of the measure,
// nu_j = beta_0 v_{j,0}, and the coordinates follow from
// x p_i = p_{i+1} + alpha_i p_i + beta_i p_{i-1}:
//
//	v_{j+1,i} = v_{j,i-1} + (alpha_i - a_j) v_{j,i} + beta_{i+1} v_{j,i+1} - b_j v_{j-1,i}.
//
// Coordinates that cannot reach i = 0 within the remaining steps are dropped.
func ModifiedMoments[T any](f arith.Field[T], c, ref Coefficients[T], m int) (nu []T, err error) {

	if err = c.Validate(); err != nil {
		return nil, fmt.Errorf("cannot ModifiedMoments: %w", err)
	}

	if m < 0 {
		return nil, fmt.Errorf("cannot ModifiedMoments: m=%d: %w", m, ErrInvalidCount)
	}

	if m == 0 {
		return []T{}, nil
	}

	if len(c.Alpha) < m>>1 || len(c.Beta) < (m-1)>>1+1 {
		return nil, fmt.Errorf("cannot ModifiedMoments: %d moments require %d alpha and %d beta but only %d are given: %w",
			m, m>>1, (m-1)>>1+1, c.Len(), ErrInsufficientCoefficients)
	}

	if len(ref.Alpha) < m-1 || len(ref.Beta) < m-1 {
		return nil, fmt.Errorf("cannot ModifiedMoments: %d moments require %d reference coefficients: %w", m, m-1, ErrReferenceLength)
	}

	for _, check := range []struct {
		name   string
		v      []T
		lo, hi int
	}{
		{"alpha", c.Alpha, 0, m >> 1},
		{"beta", c.Beta, 0, (m-1)>>1 + 1},
		{"ref.alpha", ref.Alpha, 0, m - 1},
		{"ref.beta", ref.Beta, 1, m - 1},
	} {
		if err = checkDefined(f, check.name, check.v, check.lo, check.hi); err != nil {
			return nil, fmt.Errorf("cannot ModifiedMoments: %w", err)
		}
	}

	nu = make([]T, m)

	// v = v_j, vPrev = v_{j-1}
	v, vPrev := []T{f.One()}, []T{}

	nu[0] = c.Beta[0]

	for j := 0; j < m-1; j++ {

		w := make([]T, utils.Min(j+1, m-2-j)+1)

		for i := range w {

			s := f.Zero()

			if i >= 1 && i-1 < len(v) {
				s = f.Add(s, v[i-1])
			}

			if i < len(v) {
				s = f.Add(s, f.Mul(f.Sub(c.Alpha[i], ref.Alpha[j]), v[i]))
			}

			if i+1 < len(v) {
				s = f.Add(s, f.Mul(c.Beta[i+1], v[i+1]))
			}

			if j > 0 && i < len(vPrev) {
				s = f.Sub(s, f.Mul(ref.Beta[j], vPrev[i]))
			}

			w[i] = s
		}

		nu[j+1] = f.Mul(c.Beta[0], w[0])

		v, vPrev = w, v
	}

	return
}
