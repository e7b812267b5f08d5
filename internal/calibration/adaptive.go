// This file picks calibration defaults from the host without benchmarking.

package calibration

import (
	"github.com/agbru/widearith/internal/simd"
	"github.com/agbru/widearith/internal/wide"
)

const (
	// DefaultIterations is the number of products timed per candidate in a
	// full calibration.
	DefaultIterations = 200_000
	// QuickIterations is used for the startup calibration.
	QuickIterations = 20_000
)

// IterationBudget returns how many operations to time per candidate.
// Hosts with 32-bit words run a quarter of the budget: every limb product
// there goes through a software 64x64 multiply.
func IterationBudget(quick bool) int {
	n := DefaultIterations
	if quick {
		n = QuickIterations
	}
	if 32<<(^uint(0)>>63) == 32 {
		n /= 4
	}
	return n
}

// EstimateMulStrategy guesses the faster multiplier for a width. Two-limb
// operands never recover Karatsuba's extra additions. At four limbs the
// schoolbook product wins when the CPU has MULX and ADX to keep two carry
// chains in flight.
func EstimateMulStrategy(width int) wide.MulStrategy {
	switch width {
	case 256:
		if simd.HasBMI2() && simd.HasADX() {
			return wide.MulSchoolbook
		}
		return wide.MulKaratsuba
	default:
		return wide.MulSchoolbook
	}
}

// ApplyEstimates installs EstimateMulStrategy for every width that has a
// Karatsuba multiplier. It is the fallback when no profile is cached.
func ApplyEstimates() {
	for _, w := range wide.KaratsubaWidths {
		_ = wide.SetMulStrategy(w, EstimateMulStrategy(w))
	}
}

// CandidateKernels returns the vector kernels usable on this host, scalar
// first.
func CandidateKernels() []simd.Kernel {
	kernels := []simd.Kernel{simd.Scalar()}
	if k, err := simd.NewAVX512(); err == nil {
		kernels = append(kernels, k)
	}
	return kernels
}
