package verify

import (
	"math/big"
)

// Oracle is an independent big-integer implementation used as ground
// truth. Limb slices are little-endian. Results of Add, Sub, Lsh and Rsh
// have len(a) limbs; Mul returns len(a)+len(b) limbs.
type Oracle interface {
	Name() string
	Add(a, b []uint64) ([]uint64, uint64)
	Sub(a, b []uint64) ([]uint64, uint64)
	Mul(a, b []uint64) []uint64
	Lsh(a []uint64, n uint) []uint64
	Rsh(a []uint64, n uint) []uint64
	Cmp(a, b []uint64) int
	BitLen(a []uint64) int
}

// defaultOracle is replaced by the GMP oracle in builds tagged gmp.
var defaultOracle Oracle = BigOracle{}

// DefaultOracle returns the oracle selected at build time.
func DefaultOracle() Oracle { return defaultOracle }

// BigOracle implements Oracle with math/big.
type BigOracle struct{}

func (BigOracle) Name() string { return "math/big" }

func (BigOracle) Add(a, b []uint64) ([]uint64, uint64) {
	s := new(big.Int).Add(limbsToBig(a), limbsToBig(b))
	return bigToLimbs(s, len(a)), uint64(s.Bit(64 * len(a)))
}

func (BigOracle) Sub(a, b []uint64) ([]uint64, uint64) {
	d := new(big.Int).Sub(limbsToBig(a), limbsToBig(b))
	var borrow uint64
	if d.Sign() < 0 {
		borrow = 1
		d.Add(d, new(big.Int).Lsh(big.NewInt(1), uint(64*len(a))))
	}
	return bigToLimbs(d, len(a)), borrow
}

func (BigOracle) Mul(a, b []uint64) []uint64 {
	p := new(big.Int).Mul(limbsToBig(a), limbsToBig(b))
	return bigToLimbs(p, len(a)+len(b))
}

func (BigOracle) Lsh(a []uint64, n uint) []uint64 {
	return bigToLimbs(new(big.Int).Lsh(limbsToBig(a), n), len(a))
}

func (BigOracle) Rsh(a []uint64, n uint) []uint64 {
	return bigToLimbs(new(big.Int).Rsh(limbsToBig(a), n), len(a))
}

func (BigOracle) Cmp(a, b []uint64) int { return limbsToBig(a).Cmp(limbsToBig(b)) }

func (BigOracle) BitLen(a []uint64) int { return limbsToBig(a).BitLen() }

// limbsToBE renders little-endian limbs as big-endian bytes.
func limbsToBE(x []uint64) []byte {
	buf := make([]byte, 8*len(x))
	for i, w := range x {
		off := len(buf) - 8*(i+1)
		for j := 0; j < 8; j++ {
			buf[off+7-j] = byte(w >> (8 * j))
		}
	}
	return buf
}

// beToLimbs keeps the low n limbs of a big-endian magnitude.
func beToLimbs(buf []byte, n int) []uint64 {
	z := make([]uint64, n)
	for i := 0; i < len(buf) && i < 8*n; i++ {
		z[i/8] |= uint64(buf[len(buf)-1-i]) << (8 * (i % 8))
	}
	return z
}

func limbsToBig(x []uint64) *big.Int {
	return new(big.Int).SetBytes(limbsToBE(x))
}

func bigToLimbs(v *big.Int, n int) []uint64 {
	return beToLimbs(v.Bytes(), n)
}

// formatLimbs renders limbs as 0x-prefixed hex for mismatch reports.
func formatLimbs(x []uint64) string {
	return "0x" + limbsToBig(x).Text(16)
}
