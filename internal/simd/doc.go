// Package simd provides an 8-lane vector of independent 64-bit values and
// two interchangeable kernels operating on it: a portable scalar kernel and
// an AVX-512 kernel written in Go assembly for amd64.
//
// Lanes never carry into each other. Add and Sub wrap per lane, and shifts
// with a count of 64 or more clear the lane. Both kernels obey these rules,
// so callers can switch between them freely and the test suite checks them
// against each other on hosts that have AVX-512F.
//
// Selection:
//
//	k := simd.Best()            // AVX-512 when available, scalar otherwise
//	k, err := simd.NewAVX512()  // ErrUnsupported on hosts without AVX-512F
//	k := simd.Scalar()
//
// Building with the purego tag, or for any architecture other than amd64,
// compiles the scalar kernel only.
package simd
