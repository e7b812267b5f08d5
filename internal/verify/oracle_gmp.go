//go:build gmp

package verify

import (
	"github.com/ncw/gmp"
)

func init() {
	defaultOracle = GMPOracle{}
}

// GMPOracle implements Oracle with libgmp through cgo.
type GMPOracle struct{}

func (GMPOracle) Name() string { return "gmp" }

func (GMPOracle) Add(a, b []uint64) ([]uint64, uint64) {
	s := new(gmp.Int).Add(limbsToGMP(a), limbsToGMP(b))
	carry := new(gmp.Int).Rsh(s, uint(64*len(a)))
	return gmpToLimbs(s, len(a)), uint64(carry.Sign())
}

func (GMPOracle) Sub(a, b []uint64) ([]uint64, uint64) {
	x, y := limbsToGMP(a), limbsToGMP(b)
	d := new(gmp.Int)
	if x.Cmp(y) >= 0 {
		return gmpToLimbs(d.Sub(x, y), len(a)), 0
	}
	mod := new(gmp.Int).Lsh(gmp.NewInt(1), uint(64*len(a)))
	d.Sub(d.Add(x, mod), y)
	return gmpToLimbs(d, len(a)), 1
}

func (GMPOracle) Mul(a, b []uint64) []uint64 {
	p := new(gmp.Int).Mul(limbsToGMP(a), limbsToGMP(b))
	return gmpToLimbs(p, len(a)+len(b))
}

func (GMPOracle) Lsh(a []uint64, n uint) []uint64 {
	return gmpToLimbs(new(gmp.Int).Lsh(limbsToGMP(a), n), len(a))
}

func (GMPOracle) Rsh(a []uint64, n uint) []uint64 {
	return gmpToLimbs(new(gmp.Int).Rsh(limbsToGMP(a), n), len(a))
}

func (GMPOracle) Cmp(a, b []uint64) int { return limbsToGMP(a).Cmp(limbsToGMP(b)) }

func (GMPOracle) BitLen(a []uint64) int { return limbsToGMP(a).BitLen() }

func limbsToGMP(x []uint64) *gmp.Int {
	return new(gmp.Int).SetBytes(limbsToBE(x))
}

func gmpToLimbs(v *gmp.Int, n int) []uint64 {
	return beToLimbs(v.Bytes(), n)
}
