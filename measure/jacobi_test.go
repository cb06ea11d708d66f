package measure_test

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/orthorc/arith"
	"github.com/tuneinsight/orthorc/measure"
	"github.com/tuneinsight/orthorc/recurrence"
)

func TestJacobi(t *testing.T) {

	t.Run("Exact/Legendre", func(t *testing.T) {
		var f arith.Field[*big.Rat] = arith.Rational{}
		mu, err := measure.JacobiMoments(f, f.Zero(), f.Zero(), 9)
		require.NoError(t, err)
		require.Equal(t,
			[]string{"2", "0", "2/3", "0", "2/5", "0", "2/7", "0", "2/9"},
			arith.Strings(f, mu))
		require.Equal(t, arith.Strings(f, measure.LegendreMoments(f, 9)), arith.Strings(f, mu))
	})

	t.Run("Exact/Linear", func(t *testing.T) {
		// int (1-x) x^k dx on [-1, 1]
		var f arith.Field[*big.Rat] = arith.Rational{}
		mu, err := measure.JacobiMoments(f, f.One(), f.Zero(), 4)
		require.NoError(t, err)
		require.Equal(t, []string{"2", "-2/3", "2/3", "-2/5"}, arith.Strings(f, mu))
	})

	t.Run("Float64/Chebyshev", func(t *testing.T) {
		// (1-x^2)^(-1/2): mu_{2k} = pi (2k)! / (4^k k!^2)
		var f arith.Field[float64] = arith.Float64{}
		mu, err := measure.JacobiMoments(f, -0.5, -0.5, 5)
		require.NoError(t, err)
		require.InDeltaSlice(t, []float64{math.Pi, 0, math.Pi / 2, 0, 3 * math.Pi / 8}, mu, 1e-14)
	})

	t.Run("BigFloat/Chebyshev", func(t *testing.T) {
		// The Chebyshev weight of the first kind has beta_0 = pi,
		// beta_1 = 1/2 and beta_k = 1/4 for k > 1.
		var f arith.Field[*big.Float] = arith.NewBigFloat(256)
		n := 6
		half := f.Frac(-1, 2)
		mu, err := measure.JacobiMoments(f, half, half, 2*n)
		require.NoError(t, err)

		c, err := recurrence.Chebyshev(f, mu)
		require.NoError(t, err)

		pi := f.Float64(c.Beta[0])
		require.InDelta(t, math.Pi, pi, 1e-15)

		tol := f.Frac(1, 1<<60)
		for k := 0; k < n; k++ {
			require.True(t, f.Cmp(f.Abs(c.Alpha[k]), tol) < 0, "alpha_%d = %s", k, f.String(c.Alpha[k]))
			if k == 0 {
				continue
			}
			want := f.Frac(1, 4)
			if k == 1 {
				want = f.Frac(1, 2)
			}
			require.True(t, f.Cmp(f.Abs(f.Sub(c.Beta[k], want)), tol) < 0, "beta_%d = %s", k, f.String(c.Beta[k]))
		}
	})

	t.Run("Exact/Inexact", func(t *testing.T) {
		var f arith.Field[*big.Rat] = arith.Rational{}
		_, err := measure.JacobiMass(f, f.Frac(-1, 2), f.Zero())
		require.True(t, errors.Is(err, arith.ErrInexact))
	})

	t.Run("InvalidWeight", func(t *testing.T) {
		var f arith.Field[float64] = arith.Float64{}
		_, err := measure.JacobiMass(f, -1, 0)
		require.True(t, errors.Is(err, measure.ErrInvalidWeight))
		_, err = measure.JacobiMoments(f, 0, -2, 3)
		require.True(t, errors.Is(err, measure.ErrInvalidWeight))
		_, err = measure.JacobiMoments(f, 0, 0, -1)
		require.True(t, errors.Is(err, measure.ErrInvalidCount))
	})

	t.Run("Empty", func(t *testing.T) {
		var f arith.Field[float64] = arith.Float64{}
		mu, err := measure.JacobiMoments(f, 0, 0, 0)
		require.NoError(t, err)
		require.Len(t, mu, 0)
	})
}
