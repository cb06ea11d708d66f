package recurrence

import (
	"errors"
	"fmt"

	"github.com/tuneinsight/orthorc/arith"
)

var (
	// ErrMomentsParity is returned when a moment sequence does not have the
	// parity required by the algorithm: 2n+1 for GolubWelsch, 2n for the
	// Chebyshev algorithms.
	ErrMomentsParity = errors.New("recurrence: invalid number of moments")

	// ErrMomentsLength is returned when fewer moments than required are given.
	ErrMomentsLength = errors.New("recurrence: not enough moments")

	// ErrReferenceLength is returned when the reference recurrence of the
	// modified Chebyshev algorithm is shorter than the modified moments.
	ErrReferenceLength = errors.New("recurrence: reference recurrence too short")

	// ErrLengthMismatch is returned when alpha and beta do not have the same length.
	ErrLengthMismatch = errors.New("recurrence: alpha and beta lengths differ")

	// ErrInvalidCount is returned for a negative number of coefficients.
	ErrInvalidCount = errors.New("recurrence: invalid number of coefficients")

	// ErrInsufficientCoefficients is returned when a recurrence is too short to
	// generate the requested number of moments.
	ErrInsufficientCoefficients = errors.New("recurrence: not enough recurrence coefficients")

	// ErrIllConditioned is returned when the input is not the data of a positive
	// measure, either because it is not realizable or because rounding errors
	// destroyed its positive definiteness.
	ErrIllConditioned = errors.New("recurrence: ill-conditioned moment data")

	// ErrUndefinedMoment is returned when a moment or a coefficient read by an
	// algorithm is the undefined sentinel of the field.
	ErrUndefinedMoment = fmt.Errorf("recurrence: undefined input: %w", arith.ErrUndefined)
)

// checkDefined returns ErrUndefinedMoment if an entry of v[lo:hi] is undefined.
func checkDefined[T any](f arith.Field[T], name string, v []T, lo, hi int) error {
	if lo >= hi {
		return nil
	}
	if i := arith.FirstUndefined(f, v[lo:hi]); i >= 0 {
		return fmt.Errorf("%s[%d] is undefined: %w", name, lo+i, ErrUndefinedMoment)
	}
	return nil
}
