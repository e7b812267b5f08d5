package verify

import (
	"math/rand/v2"

	"github.com/agbru/widearith/internal/limb"
	"github.com/agbru/widearith/internal/simd"
)

// Source produces the operands of one case. The operands depend only on
// the run seed, the suite and the case index, so any reported case can be
// replayed regardless of the worker count.
type Source struct {
	pcg   *rand.PCG
	rng   *rand.Rand
	seed  uint64
	index int
	calls int
	edges map[int][][]uint64
}

func newSource(seed int64, suite int) *Source {
	s := &Source{
		pcg:   rand.NewPCG(0, 0),
		seed:  uint64(seed)*0x9E3779B97F4A7C15 + uint64(suite),
		edges: make(map[int][][]uint64),
	}
	s.rng = rand.New(s.pcg)
	return s
}

// reset positions the source at case i.
func (s *Source) reset(i int) {
	s.index = i
	s.calls = 0
	s.pcg.Seed(s.seed, uint64(i))
}

// Index returns the current case number.
func (s *Source) Index() int { return s.index }

// Operand returns n limbs. The first cases of a suite enumerate every pair
// of edge operands for the first two calls; later cases are random, with
// runs of saturated or empty limbs mixed in to exercise carry chains.
func (s *Source) Operand(n int) []uint64 {
	call := s.calls
	s.calls++

	edges := s.edgeOperands(n)
	e := len(edges)
	if call < 2 && s.index < e*e {
		k := s.index
		if call == 1 {
			k /= e
		}
		out := make([]uint64, n)
		copy(out, edges[k%e])
		return out
	}

	out := make([]uint64, n)
	for i := range out {
		out[i] = s.rng.Uint64()
	}
	if s.rng.IntN(4) == 0 {
		fill := [...]uint64{limb.Max, 0, 1 << 63, limb.Max - 1}[s.rng.IntN(4)]
		lo := s.rng.IntN(n)
		hi := lo + 1 + s.rng.IntN(n-lo)
		for i := lo; i < hi; i++ {
			out[i] = fill
		}
	}
	return out
}

// Shift returns a shift count in [0, 64); the first 64 cases cover every
// count once.
func (s *Source) Shift() uint {
	if s.index < limb.Bits {
		return uint(s.index)
	}
	return uint(s.rng.IntN(limb.Bits))
}

// Vec returns a vector whose lanes are random or edge values.
func (s *Source) Vec() simd.Vec8 {
	var v simd.Vec8
	for i := range v {
		switch s.rng.IntN(8) {
		case 0:
			v[i] = 0
		case 1:
			v[i] = limb.Max
		case 2:
			v[i] = 1 << 63
		default:
			v[i] = s.rng.Uint64()
		}
	}
	return v
}

// Counts returns per-lane shift counts in [0, 80], so some lanes exceed 63.
func (s *Source) Counts() simd.Vec8 {
	var v simd.Vec8
	for i := range v {
		v[i] = s.rng.Uint64N(81)
	}
	return v
}

// Uint64 returns a random 64-bit value.
func (s *Source) Uint64() uint64 { return s.rng.Uint64() }

func (s *Source) edgeOperands(n int) [][]uint64 {
	if e, ok := s.edges[n]; ok {
		return e
	}
	e := EdgeOperands(n)
	s.edges[n] = e
	return e
}

// EdgeOperands returns the fixed operands every width is checked against:
// zero, one, max, max-1, a single saturated low limb, the top bit alone,
// and two alternating bit patterns.
func EdgeOperands(n int) [][]uint64 {
	zero := make([]uint64, n)
	one := make([]uint64, n)
	one[0] = 1
	maxv := make([]uint64, n)
	maxMinus1 := make([]uint64, n)
	lowMax := make([]uint64, n)
	topBit := make([]uint64, n)
	altA := make([]uint64, n)
	alt5 := make([]uint64, n)
	for i := range maxv {
		maxv[i] = limb.Max
		maxMinus1[i] = limb.Max
		altA[i] = 0xAAAAAAAAAAAAAAAA
		alt5[i] = 0x5555555555555555
	}
	maxMinus1[0]--
	lowMax[0] = limb.Max
	topBit[n-1] = 1 << 63
	return [][]uint64{zero, one, maxv, maxMinus1, lowMax, topBit, altA, alt5}
}
