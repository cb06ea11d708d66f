package recurrence

import (
	"fmt"

	"github.com/tuneinsight/orthorc/arith"
)

// Triple stores the coefficients of one step of the recurrence
//
//	P_{k+1}(x) = (A x - B) P_k(x) - C P_{k-1}(x).
type Triple[T any] struct {
	A, B, C T
}

// Scaled is a three-term recurrence in the (a, b, c) form consumed by
// recurrence evaluators, together with the constant polynomial P0.
//
// Triples[0].C multiplies P_{-1} = 0 and is never read by an evaluator: it is
// the undefined sentinel of the field so that an accidental use is detectable.
type Scaled[T any] struct {
	P0      T
	Triples []Triple[T]
}

// Monic returns the recurrence of the monic polynomials:
// A_k = 1, B_k = alpha_k, C_k = beta_k, P0 = 1.
func (c Coefficients[T]) Monic(f arith.Field[T]) (s Scaled[T]) {

	s.P0 = f.One()
	s.Triples = make([]Triple[T], c.Len())

	for k := range s.Triples {
		s.Triples[k] = Triple[T]{A: f.One(), B: c.Alpha[k], C: c.Beta[k]}
	}

	if len(s.Triples) > 0 {
		s.Triples[0].C = f.Undefined()
	}

	return
}

// Normal returns the recurrence of the orthonormal polynomials
// P_k = p_k / sqrt(beta_0 beta_1 ... beta_k):
//
//	A_k = 1/sqrt(beta_{k+1}),  B_k = alpha_k/sqrt(beta_{k+1}),  C_k = sqrt(beta_k/beta_{k+1}),
//
// with P0 = 1/sqrt(beta_0). Since step k needs beta_{k+1}, n coefficients
// give n-1 triples. Square roots are taken in f: exact fields return
// arith.ErrInexact unless every beta_k is the square of a rational.
func (c Coefficients[T]) Normal(f arith.Field[T]) (s Scaled[T], err error) {

	if err = c.Validate(); err != nil {
		return s, fmt.Errorf("cannot Normal: %w", err)
	}

	if c.Len() == 0 {
		return s, fmt.Errorf("cannot Normal: beta_0 is required: %w", ErrInsufficientCoefficients)
	}

	sqrtBeta := make([]T, c.Len())
	for k := range sqrtBeta {

		if f.IsUndefined(c.Beta[k]) || f.Sign(c.Beta[k]) <= 0 {
			return s, fmt.Errorf("cannot Normal: beta_%d = %s: %w", k, f.String(c.Beta[k]), ErrIllConditioned)
		}

		if sqrtBeta[k], err = f.Sqrt(c.Beta[k]); err != nil {
			return s, fmt.Errorf("cannot Normal: %w", err)
		}
	}

	s.P0 = f.Quo(f.One(), sqrtBeta[0])
	s.Triples = make([]Triple[T], c.Len()-1)

	for k := range s.Triples {

		t := Triple[T]{
			A: f.Quo(f.One(), sqrtBeta[k+1]),
			B: f.Quo(c.Alpha[k], sqrtBeta[k+1]),
		}

		if k == 0 {
			t.C = f.Undefined()
		} else {
			t.C = f.Quo(sqrtBeta[k], sqrtBeta[k+1])
		}

		s.Triples[k] = t
	}

	return
}
