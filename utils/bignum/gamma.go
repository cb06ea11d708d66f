package bignum

import (
	"fmt"
	"math"
	"math/big"
)

// Factorial returns n! for n >= 0.
func Factorial(n int64) (f *big.Int) {
	if n < 0 {
		panic(fmt.Errorf("cannot Factorial: n=%d < 0", n))
	}
	if n < 2 {
		return big.NewInt(1)
	}
	return new(big.Int).MulRange(1, n)
}

// IsGammaPole returns true if x is a non-positive integer.
func IsGammaPole(x *big.Float) bool {
	return x.IsInt() && x.Sign() <= 0
}

// Gamma returns the gamma function evaluated at x with x.Prec() bits of precision.
// Positive integers and non-negative half-integers are evaluated in closed form,
// other arguments with the approximation of Spouge (1994) after reflecting
// x < 1/2 with Gamma(x)Gamma(1-x) = pi/sin(pi x).
// Panics if x is a pole (see IsGammaPole).
func Gamma(x *big.Float) (y *big.Float) {

	prec := x.Prec()
	if prec == 0 {
		prec = 53
	}

	if IsGammaPole(x) {
		panic(fmt.Errorf("cannot Gamma: %v is a pole", x))
	}

	// Gamma(n) = (n-1)!
	if x.IsInt() {
		n, _ := x.Int64()
		return new(big.Float).SetPrec(prec).SetInt(Factorial(n - 1))
	}

	// Gamma(n+1/2) = (2n)! / (4^n * n!) * sqrt(pi)
	twox := new(big.Float).Mul(x, NewFloat(2, prec))
	if twox.IsInt() && x.Sign() > 0 {
		n2, _ := twox.Int64()
		n := (n2 - 1) >> 1
		num := new(big.Float).SetPrec(prec).SetInt(Factorial(2 * n))
		den := new(big.Int).Lsh(Factorial(n), uint(2*n))
		y = num.Quo(num, new(big.Float).SetPrec(prec).SetInt(den))
		sqrtPi := new(big.Float).SetPrec(prec).Sqrt(Pi(prec))
		return y.Mul(y, sqrtPi)
	}

	if x.Cmp(NewFloat(0.5, prec)) < 0 {
		return gammaReflection(x, prec)
	}

	return spouge(x, prec)
}

// gammaReflection evaluates Gamma(x) = pi / (sin(pi x) Gamma(1-x)).
func gammaReflection(x *big.Float, prec uint) (y *big.Float) {

	wp := prec + 64

	xw := NewFloat(x, wp)

	// sin(pi x) = (-1)^r sin(pi (x - r)) with r = round(x)
	r := new(big.Float).SetPrec(wp).Add(xw, NewFloat(0.5, wp))
	rInt, _ := r.Int(nil)
	if r.Sign() < 0 && !r.IsInt() {
		rInt.Sub(rInt, big.NewInt(1))
	}

	frac := new(big.Float).SetPrec(wp).Sub(xw, new(big.Float).SetPrec(wp).SetInt(rInt))
	frac.Mul(frac, Pi(wp))

	sin := Sin(frac)
	if rInt.Bit(0) == 1 {
		sin.Neg(sin)
	}

	oneMinusX := new(big.Float).SetPrec(wp).Sub(NewFloat(1, wp), xw)

	den := spouge(oneMinusX, wp)
	den.Mul(den, sin)

	y = Pi(wp)
	y.Quo(y, den)

	return y.SetPrec(prec)
}

// spouge evaluates Gamma(x) for x >= 1/2 with
// Gamma(z+1) = (z+a)^(z+1/2) e^-(z+a) [c0 + sum_{k=1}^{a-1} c_k/(z+k)],
// c0 = sqrt(2pi), c_k = (-1)^(k-1)/(k-1)! (a-k)^(k-1/2) e^(a-k).
// The relative error is bounded by a^-1/2 (2pi)^-(a+1/2).
func spouge(x *big.Float, prec uint) (y *big.Float) {

	a := int64(math.Ceil(float64(prec)/math.Log2(2*math.Pi))) + 1

	// The c_k alternate in sign and grow like (2pi)^a.
	wp := 2*prec + 64

	z := new(big.Float).SetPrec(wp).Sub(NewFloat(x, wp), NewFloat(1, wp))

	twoPi := Pi(wp)
	twoPi.Mul(twoPi, NewFloat(2, wp))

	sum := new(big.Float).SetPrec(wp).Sqrt(twoPi)

	tmp := new(big.Float).SetPrec(wp)
	ck := new(big.Float).SetPrec(wp)

	for k := int64(1); k < a; k++ {

		// (a-k)^(k-1/2) = (a-k)^(k-1) * sqrt(a-k)
		base := big.NewInt(a - k)
		ck.SetInt(new(big.Int).Exp(base, big.NewInt(k-1), nil))
		tmp.SetInt(base)
		tmp.Sqrt(tmp)
		ck.Mul(ck, tmp)

		ck.Mul(ck, Exp(NewFloat(a-k, wp)))
		ck.Quo(ck, new(big.Float).SetPrec(wp).SetInt(Factorial(k-1)))

		if k&1 == 0 {
			ck.Neg(ck)
		}

		tmp.Add(z, NewFloat(k, wp))
		ck.Quo(ck, tmp)

		sum.Add(sum, ck)
	}

	// (z+a)^(z+1/2) e^-(z+a) = exp((z+1/2) log(z+a) - (z+a))
	za := new(big.Float).SetPrec(wp).Add(z, NewFloat(a, wp))
	zh := new(big.Float).SetPrec(wp).Add(z, NewFloat(0.5, wp))

	e := Log(za)
	e.Mul(e, zh)
	e.Sub(e, za)

	y = Exp(e)
	y.Mul(y, sum)

	return y.SetPrec(prec)
}
