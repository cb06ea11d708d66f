// Package arith implements the numeric backends shared by every recurrence
// algorithm of this module.
//
// A Field[T] bundles the arithmetic primitives (frac, sqrt, gamma, the
// undefined sentinel, ...) of one numeric mode. Algorithms are generic in T and
// receive exactly one Field[T], so a single computation can never mix modes:
//
//   - Float64: IEEE double precision, the undefined sentinel is NaN.
//   - Rational: exact arithmetic over *big.Rat, the undefined sentinel is nil.
//   - BigFloat: arbitrary precision *big.Float, the undefined sentinel is nil.
//
// Values returned by a Field are always freshly allocated and the operands are
// never modified.
package arith

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDomain is returned when a primitive is evaluated outside of its
	// domain, e.g. the square root of a negative number or a pole of gamma.
	ErrDomain = errors.New("arith: argument outside of domain")

	// ErrInexact is returned by exact backends when the result of a primitive
	// is not representable exactly, e.g. sqrt(2) over the rationals.
	ErrInexact = errors.New("arith: result is not exactly representable")

	// ErrParse is returned when a string cannot be parsed into a field element.
	ErrParse = errors.New("arith: cannot parse value")

	// ErrUndefined is returned when an input that must hold a value holds the
	// undefined sentinel instead.
	ErrUndefined = errors.New("arith: undefined value")
)

// Mode identifies a numeric backend.
type Mode int

const (
	// Float is IEEE-754 double precision arithmetic.
	Float = Mode(iota)
	// Exact is exact rational arithmetic.
	Exact
	// Multiprecision is arbitrary precision floating point arithmetic.
	Multiprecision
)

func (m Mode) String() string {
	switch m {
	case Float:
		return "float"
	case Exact:
		return "exact"
	case Multiprecision:
		return "multiprecision"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode returns the Mode named by s.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "float", "float64", "double":
		return Float, nil
	case "exact", "rational", "symbolic":
		return Exact, nil
	case "multiprecision", "bigfloat", "mp":
		return Multiprecision, nil
	default:
		return 0, fmt.Errorf("cannot ParseMode: unknown mode %q", s)
	}
}

// Field is the set of primitives an algorithm needs to operate on values of
// type T. Implementations must not mutate their operands.
type Field[T any] interface {
	// Mode returns the numeric mode of the field.
	Mode() Mode

	Zero() T
	One() T

	// FromInt returns x as an element of the field.
	FromInt(x int64) T

	// Frac returns a/b, exactly in exact fields.
	Frac(a, b int64) T

	// FromFloat64 returns x as an element of the field. Exact fields convert
	// the binary value of x without rounding.
	FromFloat64(x float64) T

	// Parse reads a decimal, scientific or fractional ("2/3") literal.
	Parse(s string) (T, error)

	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T

	// Quo returns a/b. The caller must ensure b is non-zero: exact fields
	// panic on division by zero.
	Quo(a, b T) T

	Neg(a T) T
	Abs(a T) T

	// Cmp compares a and b and returns -1, 0 or +1.
	Cmp(a, b T) int

	// Sign returns -1, 0 or +1 depending on the sign of a.
	Sign(a T) int

	IsZero(a T) bool
	Equal(a, b T) bool

	// Sqrt returns the square root of a, ErrDomain if a is negative and
	// ErrInexact if the field cannot represent the result.
	Sqrt(a T) (T, error)

	// Pow returns a^b, ErrDomain if a^b is not a real number and ErrInexact
	// if the field cannot represent the result.
	Pow(a, b T) (T, error)

	// Gamma returns the gamma function evaluated at a, ErrDomain at the poles
	// and ErrInexact if the field cannot represent the result.
	Gamma(a T) (T, error)

	// Undefined returns the sentinel marking a structurally undefined value.
	Undefined() T

	// IsUndefined reports whether a is the undefined sentinel.
	IsUndefined(a T) bool

	// Float64 returns the nearest float64 to a, NaN for the undefined sentinel.
	Float64(a T) float64

	String(a T) string
}

// Zeros returns a slice of n zeros of the field.
func Zeros[T any](f Field[T], n int) (v []T) {
	v = make([]T, n)
	for i := range v {
		v[i] = f.Zero()
	}
	return
}

// FromInts maps x into the field.
func FromInts[T any](f Field[T], x ...int64) (v []T) {
	v = make([]T, len(x))
	for i := range x {
		v[i] = f.FromInt(x[i])
	}
	return
}

// FromFloat64s maps x into the field.
func FromFloat64s[T any](f Field[T], x ...float64) (v []T) {
	v = make([]T, len(x))
	for i := range x {
		v[i] = f.FromFloat64(x[i])
	}
	return
}

// ParseAll parses every literal of s.
func ParseAll[T any](f Field[T], s ...string) (v []T, err error) {
	v = make([]T, len(s))
	for i := range s {
		if v[i], err = f.Parse(s[i]); err != nil {
			return nil, fmt.Errorf("cannot ParseAll: index %d: %w", i, err)
		}
	}
	return
}

// FirstUndefined returns the index of the first undefined entry of v, -1 if
// every entry is defined.
func FirstUndefined[T any](f Field[T], v []T) int {
	for i := range v {
		if f.IsUndefined(v[i]) {
			return i
		}
	}
	return -1
}

// ToFloat64s returns the float64 approximations of v.
func ToFloat64s[T any](f Field[T], v []T) (y []float64) {
	y = make([]float64, len(v))
	for i := range v {
		y[i] = f.Float64(v[i])
	}
	return
}

// Strings returns the string representations of v.
func Strings[T any](f Field[T], v []T) (s []string) {
	s = make([]string, len(v))
	for i := range v {
		s[i] = f.String(v[i])
	}
	return
}
