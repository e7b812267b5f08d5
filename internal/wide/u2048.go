package wide

import "math/big"

// U2048 is the 32-limb product of two U1024 values. It only carries the
// accessors needed to inspect a product; arithmetic on it is left to callers.
type U2048 [32]uint64

// Equal reports whether a == b.
func (a U2048) Equal(b U2048) bool { return cmpVV(a[:], b[:]) == 0 }

// IsZero reports whether a == 0.
func (a U2048) IsZero() bool { return isZeroV(a[:]) }

// BytesBE returns a as a big-endian byte array.
func (a U2048) BytesBE() [256]byte {
	var b [256]byte
	putBE(b[:], a[:])
	return b
}

// BigInt returns a as a new big.Int.
func (a U2048) BigInt() *big.Int { return toBig(a[:]) }

// String returns a in 0x-prefixed hexadecimal.
func (a U2048) String() string { return formatHex(a[:]) }
