// Package sampling implements the sampling of random numbers from a PRNG,
// used to draw random measures and recurrence coefficients.
package sampling

import (
	"encoding/binary"
	"math/big"
)

// Sampler draws numbers from the stream of a PRNG.
type Sampler struct {
	prng PRNG
	buff [8]byte
}

// NewSampler returns a Sampler reading from prng.
func NewSampler(prng PRNG) *Sampler {
	return &Sampler{prng: prng}
}

// Uint64 returns a random value between 0 and 0xFFFFFFFFFFFFFFFF.
func (s *Sampler) Uint64() uint64 {
	if _, err := s.prng.Read(s.buff[:]); err != nil {
		// Sanity check, this error should not happen.
		panic(err)
	}
	return binary.LittleEndian.Uint64(s.buff[:])
}

// Float64 returns a random float between min and max.
func (s *Sampler) Float64(min, max float64) float64 {
	f := float64(s.Uint64()>>11) / (1 << 53)
	return min + f*(max-min)
}

// Int64 returns a random integer in [min, max].
func (s *Sampler) Int64(min, max int64) int64 {
	if max < min {
		panic("cannot Int64: max < min")
	}
	return min + int64(s.Uint64()%uint64(max-min+1))
}

// Rat returns a random fraction p/den with p uniform such that the
// fraction lies in [min, max].
func (s *Sampler) Rat(min, max, den int64) *big.Rat {
	if den <= 0 {
		panic("cannot Rat: den <= 0")
	}
	return big.NewRat(s.Int64(min*den, max*den), den)
}
