// This file implements Karatsuba multiplication for the 128- and 256-bit
// widths. Each level splits both operands into halves (lo, hi) and uses
//
//	z0  = lo_a * lo_b
//	z2  = hi_a * hi_b
//	mid = (lo_a + hi_a) * (lo_b + hi_b)
//	z1  = mid - z0 - z2
//	a*b = z2*B^2 + z1*B + z0
//
// so three half-size products replace four. The half sums can overflow by
// one bit; that bit is folded back into mid explicitly before z1 is formed.

package wide

import "github.com/agbru/widearith/internal/limb"

// MulKaratsuba returns a * b computed with one level of Karatsuba over
// single-limb halves. The result is identical to MulWide.
func (a U128) MulKaratsuba(b U128) U256 {
	return karatsuba128(a, b)
}

// MulKaratsuba returns a * b computed with Karatsuba over 128-bit halves,
// each of which is itself multiplied with Karatsuba. The result is identical
// to MulWide.
func (a U256) MulKaratsuba(b U256) U512 {
	return karatsuba256(a, b)
}

func karatsuba128(a, b U128) U256 {
	var r U256
	r[0], r[1] = limb.MulWide(a[0], b[0]) // z0
	r[2], r[3] = limb.MulWide(a[1], b[1]) // z2

	sa, ca := limb.AddWithCarry(a[0], a[1], 0)
	sb, cb := limb.AddWithCarry(b[0], b[1], 0)

	// mid = (ca*B + sa)(cb*B + sb)
	//     = sa*sb + (ca*sb + cb*sa)*B + ca*cb*B^2, B = 2^64.
	// It is below 2^130, so three limbs hold it.
	var mid [3]uint64
	mid[0], mid[1] = limb.MulWide(sa, sb)
	var c uint64
	mid[1], c = limb.AddWithCarry(mid[1], sb&-ca, 0)
	mid[2] += c
	mid[1], c = limb.AddWithCarry(mid[1], sa&-cb, 0)
	mid[2] += c
	mid[2] += ca & cb

	// z1 = mid - z0 - z2 is a[0]*b[1] + a[1]*b[0], never negative.
	subFrom(mid[:], r[0:2])
	subFrom(mid[:], r[2:4])

	// The product fits in 256 bits, so the final carry is always zero.
	addTo(r[1:], mid[:])
	return r
}

func karatsuba256(a, b U256) U512 {
	aLo, aHi := U128{a[0], a[1]}, U128{a[2], a[3]}
	bLo, bHi := U128{b[0], b[1]}, U128{b[2], b[3]}

	z0 := karatsuba128(aLo, bLo)
	z2 := karatsuba128(aHi, bHi)

	sa, ca := aLo.Add(aHi)
	sb, cb := bLo.Add(bHi)

	// Same fold as karatsuba128 with B = 2^128; mid is below 2^258.
	var mid [5]uint64
	m := karatsuba128(sa, sb)
	copy(mid[:4], m[:])
	fold := [2]uint64{sb[0] & -ca, sb[1] & -ca}
	addTo(mid[2:], fold[:])
	fold = [2]uint64{sa[0] & -cb, sa[1] & -cb}
	addTo(mid[2:], fold[:])
	mid[4] += ca & cb

	subFrom(mid[:], z0[:])
	subFrom(mid[:], z2[:])

	var r U512
	copy(r[:4], z0[:])
	copy(r[4:], z2[:])
	addTo(r[2:], mid[:])
	return r
}
