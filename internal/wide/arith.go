// This file provides the slice kernels shared by every fixed width. They
// follow the shape of the math/big vector primitives: z is written, x and y
// are read, and the carry or borrow out of the top limb is returned.

package wide

import "github.com/agbru/widearith/internal/limb"

// addVV sets z = x + y over len(z) limbs and returns the carry.
// x and y must be at least len(z) long.
func addVV(z, x, y []uint64) (c uint64) {
	for i := range z {
		z[i], c = limb.AddWithCarry(x[i], y[i], c)
	}
	return c
}

// subVV sets z = x - y over len(z) limbs and returns the borrow.
func subVV(z, x, y []uint64) (c uint64) {
	for i := range z {
		z[i], c = limb.SubWithBorrow(x[i], y[i], c)
	}
	return c
}

// addTo adds x into z starting at limb 0 and carries upward through the
// rest of z. It returns the carry out of the top of z.
func addTo(z, x []uint64) (c uint64) {
	i := 0
	for ; i < len(x); i++ {
		z[i], c = limb.AddWithCarry(z[i], x[i], c)
	}
	for ; c != 0 && i < len(z); i++ {
		z[i], c = limb.AddWithCarry(z[i], 0, c)
	}
	return c
}

// subFrom subtracts x from z starting at limb 0 and borrows upward through
// the rest of z. It returns the borrow out of the top of z.
func subFrom(z, x []uint64) (b uint64) {
	i := 0
	for ; i < len(x); i++ {
		z[i], b = limb.SubWithBorrow(z[i], x[i], b)
	}
	for ; b != 0 && i < len(z); i++ {
		z[i], b = limb.SubWithBorrow(z[i], 0, b)
	}
	return b
}

// mulVW sets z = x * y over len(x) limbs and returns the high limb.
func mulVW(z, x []uint64, y uint64) (c uint64) {
	for i := range x {
		z[i], c = limb.MulAdd(x[i], y, c)
	}
	return c
}

// addMulVVW sets z += x * y over len(x) limbs and returns the carry limb.
func addMulVVW(z, x []uint64, y uint64) (c uint64) {
	for i := range x {
		z[i], c = limb.MulAddAdd(x[i], y, z[i], c)
	}
	return c
}

// mulSchool sets z = x * y with the schoolbook method. len(z) must be
// len(x)+len(y) and z must not alias x or y.
//
// Each row accumulates x[i]*y[j] into z[i+j] and z[i+j+1]; the carry limb
// of a row lands in z[i+len(y)], which is still zero when the row starts,
// so no carry is ever lost.
func mulSchool(z, x, y []uint64) {
	clear(z)
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		z[i+len(y)] = addMulVVW(z[i:i+len(y)], y, xi)
	}
}

// sqrVV sets z = x * x. len(z) must be 2*len(x) and z must not alias x.
//
// Off-diagonal products x[i]*x[j] for i < j are accumulated once, the whole
// partial sum is doubled with the bit shifted out of each limb carried into
// the next, and the diagonal squares are added last.
func sqrVV(z, x []uint64) {
	n := len(x)
	clear(z)
	for i := 0; i < n-1; i++ {
		if x[i] == 0 {
			continue
		}
		z[i+n] = addMulVVW(z[2*i+1:i+n], x[i+1:], x[i])
	}

	var top uint64
	for i := range z {
		var c uint64
		z[i], c = limb.Double(z[i])
		z[i] |= top
		top = c
	}

	var c uint64
	for i := 0; i < n; i++ {
		lo, hi := limb.Square(x[i])
		z[2*i], c = limb.AddWithCarry(z[2*i], lo, c)
		z[2*i+1], c = limb.AddWithCarry(z[2*i+1], hi, c)
	}
}

// shlVU sets z = x << s for 0 <= s < 64 and returns the bits shifted out of
// the top limb, right-aligned.
func shlVU(z, x []uint64, s uint) (c uint64) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	n := len(x)
	c = x[n-1] >> (limb.Bits - s)
	for i := n - 1; i > 0; i-- {
		z[i] = x[i]<<s | x[i-1]>>(limb.Bits-s)
	}
	z[0] = x[0] << s
	return c
}

// shrVU sets z = x >> s for 0 <= s < 64 and returns the bits shifted out of
// the bottom limb, left-aligned.
func shrVU(z, x []uint64, s uint) (c uint64) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	n := len(x)
	c = x[0] << (limb.Bits - s)
	for i := 0; i < n-1; i++ {
		z[i] = x[i]>>s | x[i+1]<<(limb.Bits-s)
	}
	z[n-1] = x[n-1] >> s
	return c
}

// cmpVV compares x and y most significant limb first and returns -1, 0 or
// +1. It stops at the first differing limb.
func cmpVV(x, y []uint64) int {
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// nlz returns the number of leading zero bits of x, len(x)*64 for zero.
// The scan stops at the first nonzero limb from the top.
func nlz(x []uint64) uint32 {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != 0 {
			return uint32((len(x)-1-i)*limb.Bits + limb.LeadingZeros(x[i]))
		}
	}
	return uint32(len(x) * limb.Bits)
}

// isZeroV reports whether every limb of x is zero by OR-reducing them.
func isZeroV(x []uint64) bool {
	var acc uint64
	for _, v := range x {
		acc |= v
	}
	return acc == 0
}
