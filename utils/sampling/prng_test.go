package sampling_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/orthorc/utils/sampling"
)

func Test_PRNG(t *testing.T) {

	key := []byte{0x49, 0x0a, 0x42, 0x3d, 0x97, 0x9d, 0xc1, 0x07, 0xa1, 0xd7, 0xe9, 0x7b, 0x3b, 0xce, 0xa1, 0xdb,
		0x42, 0xf3, 0xa6, 0xd5, 0x75, 0xd2, 0x0c, 0x92, 0xb7, 0x35, 0xce, 0x0c, 0xee, 0x09, 0x7c, 0x98}

	t.Run("PRNG", func(t *testing.T) {

		Ha, _ := sampling.NewKeyedPRNG(key)
		Hb, _ := sampling.NewKeyedPRNG(key)

		sum0 := make([]byte, 512)
		sum1 := make([]byte, 512)

		for i := 0; i < 128; i++ {
			Hb.Read(sum1)
		}

		Hb.Reset()

		Ha.Read(sum0)
		Hb.Read(sum1)

		require.Equal(t, sum0, sum1)
		require.Equal(t, key, Ha.Key())
	})

	t.Run("Sampler", func(t *testing.T) {

		prng, err := sampling.NewKeyedPRNG(key)
		require.NoError(t, err)

		s := sampling.NewSampler(prng)

		for i := 0; i < 256; i++ {
			x := s.Float64(-2, 3)
			require.GreaterOrEqual(t, x, -2.0)
			require.Less(t, x, 3.0)

			k := s.Int64(-3, 4)
			require.GreaterOrEqual(t, k, int64(-3))
			require.LessOrEqual(t, k, int64(4))

			r := s.Rat(1, 2, 7)
			require.Equal(t, int64(7)%r.Denom().Int64(), int64(0))
			f, _ := r.Float64()
			require.GreaterOrEqual(t, f, 1.0)
			require.LessOrEqual(t, f, 2.0)
		}
	})

	t.Run("Determinism", func(t *testing.T) {
		pa, _ := sampling.NewKeyedPRNG(key)
		pb, _ := sampling.NewKeyedPRNG(key)
		sa, sb := sampling.NewSampler(pa), sampling.NewSampler(pb)
		for i := 0; i < 16; i++ {
			require.Equal(t, sa.Float64(0, 1), sb.Float64(0, 1))
		}
	})
}
