package bignum

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloat(t *testing.T) {
	testFunc1("Sin", 1.4142135623730951, math.Sin, Sin, 1e-15, t)
	testFunc1("Cos", 1.4142135623730951, math.Cos, Cos, 1e-15, t)
	testFunc1("Log", 1.4142135623730951, math.Log, Log, 1e-15, t)
	testFunc1("Exp", 1.4142135623730951, math.Exp, Exp, 1e-15, t)
	testFunc2("Pow", 2, 1.4142135623730951, math.Pow, Pow, 1e-15, t)
	testFunc1("Gamma", 1.4142135623730951, math.Gamma, Gamma, 1e-15, t)
	testFunc1("Gamma/Reflection", -1.4142135623730951, math.Gamma, Gamma, 1e-14, t)
	testFunc1("Gamma/HalfInteger", 4.5, math.Gamma, Gamma, 1e-13, t)
	testFunc1("Gamma/Integer", 9, math.Gamma, Gamma, 0, t)
}

func TestGamma(t *testing.T) {

	t.Run("Factorial", func(t *testing.T) {
		require.Equal(t, "1", Factorial(0).String())
		require.Equal(t, "3628800", Factorial(10).String())
		require.Panics(t, func() { Factorial(-1) })
	})

	t.Run("Pole", func(t *testing.T) {
		require.True(t, IsGammaPole(NewFloat(0, 64)))
		require.True(t, IsGammaPole(NewFloat(-3, 64)))
		require.False(t, IsGammaPole(NewFloat(-2.5, 64)))
		require.Panics(t, func() { Gamma(NewFloat(-2, 64)) })
	})

	t.Run("Precision", func(t *testing.T) {
		// Gamma(1/3) = 2.6789385347077476336556929409746776441286893779573011009...
		want, _ := new(big.Float).SetPrec(256).SetString("2.6789385347077476336556929409746776441286893779573011009")
		have := Gamma(NewFloat(NewRat("1/3"), 256))
		diff := new(big.Float).Sub(want, have)
		diff.Abs(diff)
		require.True(t, diff.Cmp(NewFloat(1e-50, 256)) < 0, diff.Text('g', 10))
	})
}

func TestRat(t *testing.T) {

	t.Run("NewRat", func(t *testing.T) {
		require.Equal(t, "2/3", NewRat("2/3").RatString())
		require.Equal(t, "1/4", NewRat(0.25).RatString())
		require.Equal(t, "-7", NewRat(-7).RatString())
		require.Equal(t, "0", NewRat(nil).RatString())
		require.Panics(t, func() { NewRat("x") })
		require.Panics(t, func() { NewRat(math.Inf(1)) })
	})

	t.Run("SqrtRat", func(t *testing.T) {
		y, ok := SqrtRat(NewRat("49/64"))
		require.True(t, ok)
		require.Equal(t, "7/8", y.RatString())

		_, ok = SqrtRat(NewRat("2/9"))
		require.False(t, ok)

		_, ok = SqrtRat(NewRat(-4))
		require.False(t, ok)

		y, ok = SqrtRat(NewRat(0))
		require.True(t, ok)
		require.Equal(t, "0", y.RatString())
	})
}

func testFunc1(name string, x float64, f func(x float64) (y float64), g func(x *big.Float) (y *big.Float), delta float64, t *testing.T) {
	t.Run(name, func(t *testing.T) {
		y, _ := g(NewFloat(x, 53)).Float64()
		require.InDelta(t, f(x), y, delta)
	})
}

func testFunc2(name string, x, e float64, f func(x, e float64) (y float64), g func(x, e *big.Float) (y *big.Float), delta float64, t *testing.T) {
	t.Run(name, func(t *testing.T) {
		y, _ := g(NewFloat(x, 53), NewFloat(e, 53)).Float64()
		require.InDelta(t, f(x, e), y, delta)
	})
}
