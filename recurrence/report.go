package recurrence

import (
	"fmt"

	"github.com/montanaflynn/stats"
	"github.com/tuneinsight/orthorc/arith"
)

// Report summarizes the error vectors returned by GautschiTest3.
type Report struct {
	MaxAlpha, MeanAlpha float64
	MaxBeta, MeanBeta   float64

	// Undefined counts the entries that could not be checked.
	Undefined int
}

// Summarize returns the Report of the error vectors errAlpha and errBeta.
// Undefined entries are counted and left out of the statistics.
func Summarize[T any](f arith.Field[T], errAlpha, errBeta []T) (r Report) {

	var undefined int

	r.MaxAlpha, r.MeanAlpha, undefined = summarize(f, errAlpha)
	r.Undefined += undefined

	r.MaxBeta, r.MeanBeta, undefined = summarize(f, errBeta)
	r.Undefined += undefined

	return
}

func summarize[T any](f arith.Field[T], v []T) (max, mean float64, undefined int) {

	data := make(stats.Float64Data, 0, len(v))

	for i := range v {
		if f.IsUndefined(v[i]) {
			undefined++
			continue
		}
		data = append(data, f.Float64(v[i]))
	}

	if data.Len() == 0 {
		return
	}

	// Errors only occur on empty input.
	max, _ = stats.Max(data)
	mean, _ = stats.Mean(data)

	return
}

// Passed returns true if every entry was checked and no error exceeds tol.
func (r Report) Passed(tol float64) bool {
	return r.Undefined == 0 && r.MaxAlpha <= tol && r.MaxBeta <= tol
}

func (r Report) String() string {
	return fmt.Sprintf("max|alpha-alpha*|=%.3e mean=%.3e max|beta-beta*|=%.3e mean=%.3e undefined=%d",
		r.MaxAlpha, r.MeanAlpha, r.MaxBeta, r.MeanBeta, r.Undefined)
}
