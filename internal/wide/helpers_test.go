package wide

import (
	"math/big"
	"math/rand"

	"github.com/agbru/widearith/internal/limb"
)

// edgeLimbs overwrites the limbs of xs selected by mask with values that
// stress carry and borrow chains.
func edgeLimbs(xs []uint64, mask uint16) []uint64 {
	out := make([]uint64, len(xs))
	copy(out, xs)
	for i := range out {
		if mask&(1<<(uint(i)%16)) == 0 {
			continue
		}
		switch (mask >> 8) % 4 {
		case 0:
			out[i] = limb.Max
		case 1:
			out[i] = 0
		case 2:
			out[i] = 1 << 63
		default:
			out[i] = limb.Max - 1
		}
	}
	return out
}

// randomLimbs returns n pseudo-random limbs from a fixed seed.
func randomLimbs(r *rand.Rand, n int) []uint64 {
	xs := make([]uint64, n)
	for i := range xs {
		xs[i] = r.Uint64()
	}
	return xs
}

// pow2 returns 2^n.
func pow2(n int) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(n))
}

// edgeValues returns the operands every width is checked against.
func edgeValues(n int) [][]uint64 {
	zero := make([]uint64, n)
	one := make([]uint64, n)
	one[0] = 1
	maxv := make([]uint64, n)
	maxMinus1 := make([]uint64, n)
	lowMax := make([]uint64, n)
	topBit := make([]uint64, n)
	alt := make([]uint64, n)
	for i := range maxv {
		maxv[i] = limb.Max
		maxMinus1[i] = limb.Max
		alt[i] = 0xAAAAAAAAAAAAAAAA
	}
	maxMinus1[0]--
	lowMax[0] = limb.Max
	topBit[n-1] = 1 << 63
	return [][]uint64{zero, one, maxv, maxMinus1, lowMax, topBit, alt}
}
