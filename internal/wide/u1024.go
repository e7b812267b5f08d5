package wide

import (
	"math/big"

	"github.com/agbru/widearith/internal/limb"
)

// U1024 is a 1024-bit unsigned integer stored as 16 little-endian limbs.
type U1024 [16]uint64

// MaxU1024 is the largest U1024 value.
var MaxU1024 = U1024{limb.Max, limb.Max, limb.Max, limb.Max, limb.Max, limb.Max, limb.Max, limb.Max, limb.Max, limb.Max, limb.Max, limb.Max, limb.Max, limb.Max, limb.Max, limb.Max}

// U1024From64 returns v as a U1024.
func U1024From64(v uint64) U1024 { return U1024{0: v} }

// U1024FromBigInt converts v to a U1024. Values outside [0, 2^1024) keep
// their low 1024 bits and report accurate == false; negative values yield zero.
func U1024FromBigInt(v *big.Int) (out U1024, accurate bool) {
	accurate = fromBig(out[:], v)
	return out, accurate
}

// ParseU1024 parses a decimal or 0x-prefixed hexadecimal string.
func ParseU1024(s string) (U1024, error) {
	var out U1024
	err := parseInto(out[:], s, "u1024")
	return out, err
}

// U1024FromBytesBE decodes a big-endian byte array.
func U1024FromBytesBE(b [128]byte) U1024 {
	var out U1024
	getBE(out[:], b[:])
	return out
}

// U1024FromBytesLE decodes a little-endian byte array.
func U1024FromBytesLE(b [128]byte) U1024 {
	var out U1024
	getLE(out[:], b[:])
	return out
}

// Add returns a + b and the carry out of the top limb.
func (a U1024) Add(b U1024) (U1024, uint64) {
	var z U1024
	c := addVV(z[:], a[:], b[:])
	return z, c
}

// Sub returns a - b and the borrow out of the top limb.
func (a U1024) Sub(b U1024) (U1024, uint64) {
	var z U1024
	c := subVV(z[:], a[:], b[:])
	return z, c
}

// MulScalar returns the exact 17-limb product a * s.
func (a U1024) MulScalar(s uint64) [17]uint64 {
	var z [17]uint64
	z[16] = mulVW(z[:16], a[:], s)
	return z
}

// MulWide returns the exact schoolbook product a * b.
func (a U1024) MulWide(b U1024) U2048 {
	var z U2048
	mulSchool(z[:], a[:], b[:])
	return z
}

// Square returns a * a, computing each cross product once.
func (a U1024) Square() U2048 {
	var z U2048
	sqrVV(z[:], a[:])
	return z
}

// Lsh returns a << n for 0 <= n < 64. Bits shifted out of the top are dropped.
func (a U1024) Lsh(n uint) U1024 {
	checkShift(n)
	var z U1024
	shlVU(z[:], a[:], n)
	return z
}

// Rsh returns a >> n for 0 <= n < 64.
func (a U1024) Rsh(n uint) U1024 {
	checkShift(n)
	var z U1024
	shrVU(z[:], a[:], n)
	return z
}

// Cmp returns -1, 0 or +1 depending on whether a is less than, equal to or
// greater than b.
func (a U1024) Cmp(b U1024) int { return cmpVV(a[:], b[:]) }

// Equal reports whether a == b.
func (a U1024) Equal(b U1024) bool { return cmpVV(a[:], b[:]) == 0 }

// LessThan reports whether a < b.
func (a U1024) LessThan(b U1024) bool { return cmpVV(a[:], b[:]) < 0 }

// GreaterThan reports whether a > b.
func (a U1024) GreaterThan(b U1024) bool { return cmpVV(a[:], b[:]) > 0 }

// LeadingZeros returns the number of leading zero bits; 1024 for zero.
func (a U1024) LeadingZeros() uint32 { return nlz(a[:]) }

// IsZero reports whether a == 0.
func (a U1024) IsZero() bool { return isZeroV(a[:]) }

// IsEven reports whether the least significant bit is clear.
func (a U1024) IsEven() bool { return a[0]&1 == 0 }

// BytesBE returns a as a big-endian byte array.
func (a U1024) BytesBE() [128]byte {
	var b [128]byte
	putBE(b[:], a[:])
	return b
}

// BytesLE returns a as a little-endian byte array.
func (a U1024) BytesLE() [128]byte {
	var b [128]byte
	putLE(b[:], a[:])
	return b
}

// BigInt returns a as a new big.Int.
func (a U1024) BigInt() *big.Int { return toBig(a[:]) }

// String returns a in 0x-prefixed hexadecimal.
func (a U1024) String() string { return formatHex(a[:]) }
