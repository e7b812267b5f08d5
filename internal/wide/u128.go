package wide

import (
	"math/big"

	"github.com/agbru/widearith/internal/limb"
)

// U128 is a 128-bit unsigned integer stored as 2 little-endian limbs.
type U128 [2]uint64

// MaxU128 is the largest U128 value.
var MaxU128 = U128{limb.Max, limb.Max}

// U128From64 returns v as a U128.
func U128From64(v uint64) U128 { return U128{0: v} }

// U128FromBigInt converts v to a U128. Values outside [0, 2^128) keep
// their low 128 bits and report accurate == false; negative values yield zero.
func U128FromBigInt(v *big.Int) (out U128, accurate bool) {
	accurate = fromBig(out[:], v)
	return out, accurate
}

// ParseU128 parses a decimal or 0x-prefixed hexadecimal string.
func ParseU128(s string) (U128, error) {
	var out U128
	err := parseInto(out[:], s, "u128")
	return out, err
}

// U128FromBytesBE decodes a big-endian byte array.
func U128FromBytesBE(b [16]byte) U128 {
	var out U128
	getBE(out[:], b[:])
	return out
}

// U128FromBytesLE decodes a little-endian byte array.
func U128FromBytesLE(b [16]byte) U128 {
	var out U128
	getLE(out[:], b[:])
	return out
}

// Add returns a + b and the carry out of the top limb.
func (a U128) Add(b U128) (U128, uint64) {
	var z U128
	c := addVV(z[:], a[:], b[:])
	return z, c
}

// Sub returns a - b and the borrow out of the top limb.
func (a U128) Sub(b U128) (U128, uint64) {
	var z U128
	c := subVV(z[:], a[:], b[:])
	return z, c
}

// MulScalar returns the exact 3-limb product a * s.
func (a U128) MulScalar(s uint64) [3]uint64 {
	var z [3]uint64
	z[2] = mulVW(z[:2], a[:], s)
	return z
}

// MulWide returns the exact schoolbook product a * b.
func (a U128) MulWide(b U128) U256 {
	var z U256
	mulSchool(z[:], a[:], b[:])
	return z
}

// Square returns a * a, computing each cross product once.
func (a U128) Square() U256 {
	var z U256
	sqrVV(z[:], a[:])
	return z
}

// Lsh returns a << n for 0 <= n < 64. Bits shifted out of the top are dropped.
func (a U128) Lsh(n uint) U128 {
	checkShift(n)
	var z U128
	shlVU(z[:], a[:], n)
	return z
}

// Rsh returns a >> n for 0 <= n < 64.
func (a U128) Rsh(n uint) U128 {
	checkShift(n)
	var z U128
	shrVU(z[:], a[:], n)
	return z
}

// Cmp returns -1, 0 or +1 depending on whether a is less than, equal to or
// greater than b.
func (a U128) Cmp(b U128) int { return cmpVV(a[:], b[:]) }

// Equal reports whether a == b.
func (a U128) Equal(b U128) bool { return cmpVV(a[:], b[:]) == 0 }

// LessThan reports whether a < b.
func (a U128) LessThan(b U128) bool { return cmpVV(a[:], b[:]) < 0 }

// GreaterThan reports whether a > b.
func (a U128) GreaterThan(b U128) bool { return cmpVV(a[:], b[:]) > 0 }

// LeadingZeros returns the number of leading zero bits; 128 for zero.
func (a U128) LeadingZeros() uint32 { return nlz(a[:]) }

// IsZero reports whether a == 0.
func (a U128) IsZero() bool { return isZeroV(a[:]) }

// IsEven reports whether the least significant bit is clear.
func (a U128) IsEven() bool { return a[0]&1 == 0 }

// BytesBE returns a as a big-endian byte array.
func (a U128) BytesBE() [16]byte {
	var b [16]byte
	putBE(b[:], a[:])
	return b
}

// BytesLE returns a as a little-endian byte array.
func (a U128) BytesLE() [16]byte {
	var b [16]byte
	putLE(b[:], a[:])
	return b
}

// BigInt returns a as a new big.Int.
func (a U128) BigInt() *big.Int { return toBig(a[:]) }

// String returns a in 0x-prefixed hexadecimal.
func (a U128) String() string { return formatHex(a[:]) }
