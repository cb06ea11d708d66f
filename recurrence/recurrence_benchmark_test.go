package recurrence

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/tuneinsight/orthorc/arith"
	"github.com/tuneinsight/orthorc/measure"
	"github.com/tuneinsight/orthorc/polynomial"
)

func BenchmarkRecurrence(b *testing.B) {

	var fr arith.Field[*big.Rat] = arith.Rational{}
	var ff arith.Field[float64] = arith.Float64{}

	for _, n := range []int{8, 16, 32} {

		momentsRat := measure.LegendreMoments(fr, 2*n+1)
		momentsFloat := measure.LegendreMoments(ff, 2*n+1)

		b.Run(fmt.Sprintf("GolubWelsch/Exact/n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := GolubWelsch(fr, momentsRat); err != nil {
					b.Fatal(err)
				}
			}
		})

		b.Run(fmt.Sprintf("Chebyshev/Exact/n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := Chebyshev(fr, momentsRat[:2*n]); err != nil {
					b.Fatal(err)
				}
			}
		})

		b.Run(fmt.Sprintf("ChebyshevModified/Float64/n=%d", n), func(b *testing.B) {
			ref := legendre(ff, 2*n)
			nu := make([]float64, 2*n)
			nu[0] = 2
			for i := 0; i < b.N; i++ {
				if _, err := ChebyshevModified(ff, nu, ref.Alpha, ref.Beta); err != nil {
					b.Fatal(err)
				}
			}
		})

		b.Run(fmt.Sprintf("Stieltjes/Exact/n=%d", n), func(b *testing.B) {
			integrate := polynomial.IntervalIntegrator(fr, fr.FromInt(-1), fr.One())
			for i := 0; i < b.N; i++ {
				if _, err := Stieltjes(fr, integrate, n); err != nil {
					b.Fatal(err)
				}
			}
		})

		b.Run(fmt.Sprintf("GautschiTest3/Float64/n=%d", n), func(b *testing.B) {
			c := legendre(ff, n)
			for i := 0; i < b.N; i++ {
				if _, _, err := GautschiTest3(ff, momentsFloat, c.Alpha, c.Beta); err != nil {
					b.Fatal(err)
				}
			}
		})

		b.Run(fmt.Sprintf("GautschiTest3Dense/n=%d", n), func(b *testing.B) {
			c := legendre(ff, n)
			for i := 0; i < b.N; i++ {
				if _, _, err := GautschiTest3Dense(momentsFloat, c.Alpha, c.Beta); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
