package wide

import (
	"math/big"

	"github.com/agbru/widearith/internal/limb"
)

// U512 is a 512-bit unsigned integer stored as 8 little-endian limbs.
type U512 [8]uint64

// MaxU512 is the largest U512 value.
var MaxU512 = U512{limb.Max, limb.Max, limb.Max, limb.Max, limb.Max, limb.Max, limb.Max, limb.Max}

// U512From64 returns v as a U512.
func U512From64(v uint64) U512 { return U512{0: v} }

// U512FromBigInt converts v to a U512. Values outside [0, 2^512) keep
// their low 512 bits and report accurate == false; negative values yield zero.
func U512FromBigInt(v *big.Int) (out U512, accurate bool) {
	accurate = fromBig(out[:], v)
	return out, accurate
}

// ParseU512 parses a decimal or 0x-prefixed hexadecimal string.
func ParseU512(s string) (U512, error) {
	var out U512
	err := parseInto(out[:], s, "u512")
	return out, err
}

// U512FromBytesBE decodes a big-endian byte array.
func U512FromBytesBE(b [64]byte) U512 {
	var out U512
	getBE(out[:], b[:])
	return out
}

// U512FromBytesLE decodes a little-endian byte array.
func U512FromBytesLE(b [64]byte) U512 {
	var out U512
	getLE(out[:], b[:])
	return out
}

// Add returns a + b and the carry out of the top limb.
func (a U512) Add(b U512) (U512, uint64) {
	var z U512
	c := addVV(z[:], a[:], b[:])
	return z, c
}

// Sub returns a - b and the borrow out of the top limb.
func (a U512) Sub(b U512) (U512, uint64) {
	var z U512
	c := subVV(z[:], a[:], b[:])
	return z, c
}

// MulScalar returns the exact 9-limb product a * s.
func (a U512) MulScalar(s uint64) [9]uint64 {
	var z [9]uint64
	z[8] = mulVW(z[:8], a[:], s)
	return z
}

// MulWide returns the exact schoolbook product a * b.
func (a U512) MulWide(b U512) U1024 {
	var z U1024
	mulSchool(z[:], a[:], b[:])
	return z
}

// Square returns a * a, computing each cross product once.
func (a U512) Square() U1024 {
	var z U1024
	sqrVV(z[:], a[:])
	return z
}

// Lsh returns a << n for 0 <= n < 64. Bits shifted out of the top are dropped.
func (a U512) Lsh(n uint) U512 {
	checkShift(n)
	var z U512
	shlVU(z[:], a[:], n)
	return z
}

// Rsh returns a >> n for 0 <= n < 64.
func (a U512) Rsh(n uint) U512 {
	checkShift(n)
	var z U512
	shrVU(z[:], a[:], n)
	return z
}

// Cmp returns -1, 0 or +1 depending on whether a is less than, equal to or
// greater than b.
func (a U512) Cmp(b U512) int { return cmpVV(a[:], b[:]) }

// Equal reports whether a == b.
func (a U512) Equal(b U512) bool { return cmpVV(a[:], b[:]) == 0 }

// LessThan reports whether a < b.
func (a U512) LessThan(b U512) bool { return cmpVV(a[:], b[:]) < 0 }

// GreaterThan reports whether a > b.
func (a U512) GreaterThan(b U512) bool { return cmpVV(a[:], b[:]) > 0 }

// LeadingZeros returns the number of leading zero bits; 512 for zero.
func (a U512) LeadingZeros() uint32 { return nlz(a[:]) }

// IsZero reports whether a == 0.
func (a U512) IsZero() bool { return isZeroV(a[:]) }

// IsEven reports whether the least significant bit is clear.
func (a U512) IsEven() bool { return a[0]&1 == 0 }

// BytesBE returns a as a big-endian byte array.
func (a U512) BytesBE() [64]byte {
	var b [64]byte
	putBE(b[:], a[:])
	return b
}

// BytesLE returns a as a little-endian byte array.
func (a U512) BytesLE() [64]byte {
	var b [64]byte
	putLE(b[:], a[:])
	return b
}

// BigInt returns a as a new big.Int.
func (a U512) BigInt() *big.Int { return toBig(a[:]) }

// String returns a in 0x-prefixed hexadecimal.
func (a U512) String() string { return formatHex(a[:]) }
