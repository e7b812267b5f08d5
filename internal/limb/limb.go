package limb

import "math/bits"

// Limb is one 64-bit digit of a multi-word integer.
type Limb = uint64

// Bits is the width of a Limb in bits.
const Bits = 64

// Max is the largest value a single Limb can hold.
const Max Limb = ^Limb(0)

// AddWithCarry returns a + b + carryIn modulo 2^64 and the outgoing carry.
// carryIn must be 0 or 1; carryOut is always 0 or 1.
func AddWithCarry(a, b, carryIn Limb) (sum, carryOut Limb) {
	return bits.Add64(a, b, carryIn)
}

// SubWithBorrow returns a - b - borrowIn modulo 2^64 and the outgoing borrow.
// borrowOut is 1 iff a < b + borrowIn.
func SubWithBorrow(a, b, borrowIn Limb) (diff, borrowOut Limb) {
	return bits.Sub64(a, b, borrowIn)
}

// MulWide returns the exact 128-bit product of a and b split into halves.
func MulWide(a, b Limb) (lo, hi Limb) {
	hi, lo = bits.Mul64(a, b)
	return lo, hi
}

// Square returns the 128-bit square of a.
func Square(a Limb) (lo, hi Limb) {
	hi, lo = bits.Mul64(a, a)
	return lo, hi
}

// MulAdd returns a*b + c as a 128-bit value. The sum never overflows:
// (2^64-1)^2 + (2^64-1) < 2^128.
func MulAdd(a, b, c Limb) (lo, hi Limb) {
	hi, lo = bits.Mul64(a, b)
	var cc Limb
	lo, cc = bits.Add64(lo, c, 0)
	hi += cc
	return lo, hi
}

// MulAddAdd returns a*b + c + d as a 128-bit value. It cannot overflow:
// (2^64-1)^2 + 2(2^64-1) = 2^128 - 1.
func MulAddAdd(a, b, c, d Limb) (lo, hi Limb) {
	hi, lo = bits.Mul64(a, b)
	var cc Limb
	lo, cc = bits.Add64(lo, c, 0)
	hi += cc
	lo, cc = bits.Add64(lo, d, 0)
	hi += cc
	return lo, hi
}

// Double returns a + a and the bit shifted out of the top.
func Double(a Limb) (v, carry Limb) {
	return a << 1, a >> (Bits - 1)
}

// LeadingZeros returns the number of leading zero bits in a; 64 for a == 0.
func LeadingZeros(a Limb) int {
	return bits.LeadingZeros64(a)
}
