package bignum

import (
	"fmt"
	"math/big"
)

// NewRat allocates a new *big.Rat.
// Accepted types are: string, int, int64, uint64, float64, *big.Int or *big.Rat.
// Strings can be fractions ("2/3"), decimals or scientific literals.
func NewRat(x interface{}) (y *big.Rat) {

	y = new(big.Rat)

	if x == nil {
		return
	}

	switch x := x.(type) {
	case string:
		if _, ok := y.SetString(x); !ok {
			panic(fmt.Errorf("cannot NewRat: invalid literal %q", x))
		}
	case int:
		y.SetInt64(int64(x))
	case int64:
		y.SetInt64(x)
	case uint64:
		y.SetUint64(x)
	case float64:
		if y.SetFloat64(x) == nil {
			panic(fmt.Errorf("cannot NewRat: %v is not finite", x))
		}
	case *big.Int:
		y.SetInt(x)
	case *big.Rat:
		y.Set(x)
	default:
		panic(fmt.Sprintf("cannot NewRat: accepted types are string, int, int64, uint64, float64, *big.Int, *big.Rat, but is %T", x))
	}

	return
}

// SqrtRat returns the exact square root of x and true if x is the square of a
// rational, and nil and false otherwise.
func SqrtRat(x *big.Rat) (y *big.Rat, ok bool) {

	if x.Sign() < 0 {
		return nil, false
	}

	num, numOk := sqrtInt(x.Num())
	den, denOk := sqrtInt(x.Denom())

	if !numOk || !denOk {
		return nil, false
	}

	return new(big.Rat).SetFrac(num, den), true
}

// sqrtInt returns the square root of x if x is a perfect square.
func sqrtInt(x *big.Int) (*big.Int, bool) {
	r := new(big.Int).Sqrt(x)
	return r, new(big.Int).Mul(r, r).Cmp(x) == 0
}
