package simd

import (
	"errors"
	"fmt"
)

// Lanes is the number of 64-bit lanes in a Vec8.
const Lanes = 8

// Vec8 holds eight independent 64-bit lanes. Arithmetic on a Vec8 never
// carries between lanes; that is the difference from a wide integer of the
// same size.
type Vec8 [Lanes]uint64

// Mask has one bit per lane; bit i corresponds to lane i.
type Mask uint8

// AllLanes has every lane bit set.
const AllLanes Mask = 0xFF

// Kernel is the 8-lane operation set. Each implementation must produce
// identical results for identical inputs.
//
// Shift counts of 64 or more produce 0 in the affected lane. Permute takes
// the low three bits of each index lane. Blend takes lane i from b when bit
// i of m is set and from a otherwise.
type Kernel interface {
	// Name identifies the implementation, e.g. "scalar" or "avx512".
	Name() string

	Xor(a, b Vec8) Vec8
	And(a, b Vec8) Vec8
	Or(a, b Vec8) Vec8

	// Add and Sub wrap each lane modulo 2^64 independently.
	Add(a, b Vec8) Vec8
	Sub(a, b Vec8) Vec8

	ShlImm(a Vec8, n uint) Vec8
	ShrImm(a Vec8, n uint) Vec8
	ShlVar(a, n Vec8) Vec8
	ShrVar(a, n Vec8) Vec8

	// Equal reports whether all eight lanes match.
	Equal(a, b Vec8) bool
	// LessMask and GreaterMask compare lanes as unsigned values.
	LessMask(a, b Vec8) Mask
	GreaterMask(a, b Vec8) Mask

	Min(a, b Vec8) Vec8
	Max(a, b Vec8) Vec8
	Blend(a, b Vec8, m Mask) Vec8
	Permute(a, idx Vec8) Vec8

	Splat(v uint64) Vec8
	Zero() Vec8
}

// ErrUnsupported is returned by NewAVX512 when the CPU or the build cannot
// run the AVX-512 kernel.
var ErrUnsupported = errors.New("simd: AVX-512F kernel not supported on this host")

// Scalar returns the portable kernel. It is always available.
func Scalar() Kernel { return scalarKernel{} }

// NewAVX512 returns the AVX-512 kernel after checking that the CPU supports
// AVX-512F.
//
// The check happens here and only here. The returned kernel's methods
// execute AVX-512 instructions unconditionally; obtaining a Kernel any other
// way on a host without AVX-512F faults with an illegal instruction.
func NewAVX512() (Kernel, error) {
	if !hasAVX512Kernel || !HasAVX512() {
		return nil, ErrUnsupported
	}
	return avx512Kernel{}, nil
}

// Best returns the AVX-512 kernel when the host supports it and scalar mode
// is not forced, and the scalar kernel otherwise.
func Best() Kernel {
	if GetSIMDLevel() == SIMDAVX512 {
		if k, err := NewAVX512(); err == nil {
			return k
		}
	}
	return Scalar()
}

// Select returns the kernel named by a configuration value: "auto" (Best),
// "scalar" or "avx512".
func Select(name string) (Kernel, error) {
	switch name {
	case "", "auto":
		return Best(), nil
	case "scalar":
		return Scalar(), nil
	case "avx512":
		return NewAVX512()
	}
	return nil, fmt.Errorf("simd: unknown kernel %q", name)
}
