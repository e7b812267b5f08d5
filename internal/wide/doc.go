// Package wide implements fixed-width unsigned integers of 128, 256, 512 and
// 1024 bits.
//
// Values are arrays of 64-bit limbs with index 0 least significant. They are
// plain values: every operation takes its operands by value and returns a
// new result, so they can be shared between goroutines freely.
//
// Overflow is never an error. Add and Sub return the carry or borrow out of
// the top limb, MulScalar returns N+1 limbs and MulWide, MulKaratsuba and
// Square return 2N limbs. Reducing a result is the caller's job.
//
// Cmp, Equal, LessThan, GreaterThan and LeadingZeros exit early on the first
// differing or nonzero limb, so their running time depends on the operands.
// They must not be used on secret values where that matters.
package wide
