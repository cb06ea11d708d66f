package recurrence

import (
	"fmt"
	"strings"

	"github.com/tuneinsight/orthorc/arith"
)

// Coefficients stores the recurrence coefficients alpha_k, beta_k, k = 0..n-1,
// of a monic orthogonal family. Alpha and Beta always have the same length.
type Coefficients[T any] struct {
	Alpha []T
	Beta  []T
}

// NewCoefficients allocates Coefficients of length n.
func NewCoefficients[T any](n int) Coefficients[T] {
	return Coefficients[T]{
		Alpha: make([]T, n),
		Beta:  make([]T, n),
	}
}

// Len returns the number of coefficient pairs.
func (c Coefficients[T]) Len() int {
	return len(c.Alpha)
}

// Validate returns ErrLengthMismatch if Alpha and Beta have different lengths.
func (c Coefficients[T]) Validate() error {
	if len(c.Alpha) != len(c.Beta) {
		return fmt.Errorf("cannot Validate: len(alpha)=%d != len(beta)=%d: %w", len(c.Alpha), len(c.Beta), ErrLengthMismatch)
	}
	return nil
}

// Truncate returns the first n coefficient pairs.
func (c Coefficients[T]) Truncate(n int) Coefficients[T] {
	return Coefficients[T]{
		Alpha: c.Alpha[:n:n],
		Beta:  c.Beta[:n:n],
	}
}

// Equal returns true if c and other hold the same values; undefined sentinels
// are equal to each other.
func (c Coefficients[T]) Equal(f arith.Field[T], other Coefficients[T]) bool {

	if c.Len() != other.Len() || len(c.Beta) != len(other.Beta) {
		return false
	}

	for i := range c.Alpha {
		if !equal(f, c.Alpha[i], other.Alpha[i]) {
			return false
		}
	}

	for i := range c.Beta {
		if !equal(f, c.Beta[i], other.Beta[i]) {
			return false
		}
	}

	return true
}

func equal[T any](f arith.Field[T], a, b T) bool {
	if f.IsUndefined(a) || f.IsUndefined(b) {
		return f.IsUndefined(a) && f.IsUndefined(b)
	}
	return f.Equal(a, b)
}

// Float64 returns the double precision approximation of c.
func (c Coefficients[T]) Float64(f arith.Field[T]) Coefficients[float64] {
	return Coefficients[float64]{
		Alpha: arith.ToFloat64s(f, c.Alpha),
		Beta:  arith.ToFloat64s(f, c.Beta),
	}
}

// String returns a human readable representation of c.
func (c Coefficients[T]) String(f arith.Field[T]) string {
	return fmt.Sprintf("alpha=[%s] beta=[%s]",
		strings.Join(arith.Strings(f, c.Alpha), ", "),
		strings.Join(arith.Strings(f, c.Beta), ", "))
}
