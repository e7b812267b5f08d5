package wide

import (
	"math/big"

	"github.com/agbru/widearith/internal/limb"
)

// U256 is a 256-bit unsigned integer stored as 4 little-endian limbs.
type U256 [4]uint64

// MaxU256 is the largest U256 value.
var MaxU256 = U256{limb.Max, limb.Max, limb.Max, limb.Max}

// U256From64 returns v as a U256.
func U256From64(v uint64) U256 { return U256{0: v} }

// U256FromBigInt converts v to a U256. Values outside [0, 2^256) keep
// their low 256 bits and report accurate == false; negative values yield zero.
func U256FromBigInt(v *big.Int) (out U256, accurate bool) {
	accurate = fromBig(out[:], v)
	return out, accurate
}

// ParseU256 parses a decimal or 0x-prefixed hexadecimal string.
func ParseU256(s string) (U256, error) {
	var out U256
	err := parseInto(out[:], s, "u256")
	return out, err
}

// U256FromBytesBE decodes a big-endian byte array.
func U256FromBytesBE(b [32]byte) U256 {
	var out U256
	getBE(out[:], b[:])
	return out
}

// U256FromBytesLE decodes a little-endian byte array.
func U256FromBytesLE(b [32]byte) U256 {
	var out U256
	getLE(out[:], b[:])
	return out
}

// Add returns a + b and the carry out of the top limb.
func (a U256) Add(b U256) (U256, uint64) {
	var z U256
	c := addVV(z[:], a[:], b[:])
	return z, c
}

// Sub returns a - b and the borrow out of the top limb.
func (a U256) Sub(b U256) (U256, uint64) {
	var z U256
	c := subVV(z[:], a[:], b[:])
	return z, c
}

// MulScalar returns the exact 5-limb product a * s.
func (a U256) MulScalar(s uint64) [5]uint64 {
	var z [5]uint64
	z[4] = mulVW(z[:4], a[:], s)
	return z
}

// MulWide returns the exact schoolbook product a * b.
func (a U256) MulWide(b U256) U512 {
	var z U512
	mulSchool(z[:], a[:], b[:])
	return z
}

// Square returns a * a, computing each cross product once.
func (a U256) Square() U512 {
	var z U512
	sqrVV(z[:], a[:])
	return z
}

// Lsh returns a << n for 0 <= n < 64. Bits shifted out of the top are dropped.
func (a U256) Lsh(n uint) U256 {
	checkShift(n)
	var z U256
	shlVU(z[:], a[:], n)
	return z
}

// Rsh returns a >> n for 0 <= n < 64.
func (a U256) Rsh(n uint) U256 {
	checkShift(n)
	var z U256
	shrVU(z[:], a[:], n)
	return z
}

// Cmp returns -1, 0 or +1 depending on whether a is less than, equal to or
// greater than b.
func (a U256) Cmp(b U256) int { return cmpVV(a[:], b[:]) }

// Equal reports whether a == b.
func (a U256) Equal(b U256) bool { return cmpVV(a[:], b[:]) == 0 }

// LessThan reports whether a < b.
func (a U256) LessThan(b U256) bool { return cmpVV(a[:], b[:]) < 0 }

// GreaterThan reports whether a > b.
func (a U256) GreaterThan(b U256) bool { return cmpVV(a[:], b[:]) > 0 }

// LeadingZeros returns the number of leading zero bits; 256 for zero.
func (a U256) LeadingZeros() uint32 { return nlz(a[:]) }

// IsZero reports whether a == 0.
func (a U256) IsZero() bool { return isZeroV(a[:]) }

// IsEven reports whether the least significant bit is clear.
func (a U256) IsEven() bool { return a[0]&1 == 0 }

// BytesBE returns a as a big-endian byte array.
func (a U256) BytesBE() [32]byte {
	var b [32]byte
	putBE(b[:], a[:])
	return b
}

// BytesLE returns a as a little-endian byte array.
func (a U256) BytesLE() [32]byte {
	var b [32]byte
	putLE(b[:], a[:])
	return b
}

// BigInt returns a as a new big.Int.
func (a U256) BigInt() *big.Int { return toBig(a[:]) }

// String returns a in 0x-prefixed hexadecimal.
func (a U256) String() string { return formatHex(a[:]) }
