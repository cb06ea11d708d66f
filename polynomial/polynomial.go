// Package polynomial implements univariate polynomials in the monomial basis
// with coefficients in an arith.Field, and the integration oracles consumed by
// the Stieltjes procedure.
package polynomial

import (
	"strconv"
	"strings"

	"github.com/tuneinsight/orthorc/arith"
)

// Polynomial is sum_i Coeffs[i] * x^i.
// Polynomials are values: every operation returns a new Polynomial and leaves
// its operands untouched.
type Polynomial[T any] struct {
	Coeffs []T
}

// New creates a new polynomial from its coefficients, constant term first.
func New[T any](coeffs ...T) Polynomial[T] {
	c := make([]T, len(coeffs))
	copy(c, coeffs)
	return Polynomial[T]{Coeffs: c}
}

// Constant returns the constant polynomial c.
func Constant[T any](c T) Polynomial[T] {
	return Polynomial[T]{Coeffs: []T{c}}
}

// X returns the monomial x.
func X[T any](f arith.Field[T]) Polynomial[T] {
	return Polynomial[T]{Coeffs: []T{f.Zero(), f.One()}}
}

// Degree returns the degree of p, -1 for the zero polynomial.
func (p Polynomial[T]) Degree(f arith.Field[T]) int {
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		if !f.IsZero(p.Coeffs[i]) {
			return i
		}
	}
	return -1
}

// Trim returns p without its vanishing leading coefficients.
func (p Polynomial[T]) Trim(f arith.Field[T]) Polynomial[T] {
	return Polynomial[T]{Coeffs: p.Coeffs[:p.Degree(f)+1]}
}

// Add returns p + q.
func (p Polynomial[T]) Add(f arith.Field[T], q Polynomial[T]) Polynomial[T] {
	return p.combine(f, q, f.Add)
}

// Sub returns p - q.
func (p Polynomial[T]) Sub(f arith.Field[T], q Polynomial[T]) Polynomial[T] {
	return p.combine(f, q, f.Sub)
}

func (p Polynomial[T]) combine(f arith.Field[T], q Polynomial[T], op func(a, b T) T) Polynomial[T] {

	n := len(p.Coeffs)
	if len(q.Coeffs) > n {
		n = len(q.Coeffs)
	}

	coeffs := make([]T, n)

	for i := range coeffs {
		a, b := f.Zero(), f.Zero()
		if i < len(p.Coeffs) {
			a = p.Coeffs[i]
		}
		if i < len(q.Coeffs) {
			b = q.Coeffs[i]
		}
		coeffs[i] = op(a, b)
	}

	return Polynomial[T]{Coeffs: coeffs}.Trim(f)
}

// Mul returns p * q.
func (p Polynomial[T]) Mul(f arith.Field[T], q Polynomial[T]) Polynomial[T] {

	p, q = p.Trim(f), q.Trim(f)

	if len(p.Coeffs) == 0 || len(q.Coeffs) == 0 {
		return Polynomial[T]{}
	}

	coeffs := arith.Zeros(f, len(p.Coeffs)+len(q.Coeffs)-1)

	for i := range p.Coeffs {
		for j := range q.Coeffs {
			coeffs[i+j] = f.Add(coeffs[i+j], f.Mul(p.Coeffs[i], q.Coeffs[j]))
		}
	}

	return Polynomial[T]{Coeffs: coeffs}
}

// Scale returns c * p.
func (p Polynomial[T]) Scale(f arith.Field[T], c T) Polynomial[T] {
	coeffs := make([]T, len(p.Coeffs))
	for i := range coeffs {
		coeffs[i] = f.Mul(c, p.Coeffs[i])
	}
	return Polynomial[T]{Coeffs: coeffs}.Trim(f)
}

// MulX returns x * p.
func (p Polynomial[T]) MulX(f arith.Field[T]) Polynomial[T] {
	p = p.Trim(f)
	if len(p.Coeffs) == 0 {
		return p
	}
	coeffs := make([]T, len(p.Coeffs)+1)
	coeffs[0] = f.Zero()
	copy(coeffs[1:], p.Coeffs)
	return Polynomial[T]{Coeffs: coeffs}
}

// Equal returns true if p and q have the same coefficients.
func (p Polynomial[T]) Equal(f arith.Field[T], q Polynomial[T]) bool {
	p, q = p.Trim(f), q.Trim(f)
	if len(p.Coeffs) != len(q.Coeffs) {
		return false
	}
	for i := range p.Coeffs {
		if !f.Equal(p.Coeffs[i], q.Coeffs[i]) {
			return false
		}
	}
	return true
}

// String returns p as "c0 + c1*x + c2*x^2 + ...".
func (p Polynomial[T]) String(f arith.Field[T]) string {

	p = p.Trim(f)

	if len(p.Coeffs) == 0 {
		return "0"
	}

	var sb strings.Builder
	for i, c := range p.Coeffs {
		if f.IsZero(c) {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(" + ")
		}
		sb.WriteString(f.String(c))
		switch i {
		case 0:
		case 1:
			sb.WriteString("*x")
		default:
			sb.WriteString("*x^")
			sb.WriteString(strconv.Itoa(i))
		}
	}

	return sb.String()
}
