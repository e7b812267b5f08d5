package wide

import (
	"fmt"
	"sync/atomic"

	apperrors "github.com/agbru/widearith/internal/errors"
)

// MulStrategy selects the algorithm used by Mul on widths that support more
// than one.
type MulStrategy int32

const (
	// MulSchoolbook uses the O(N²) multiply-accumulate product.
	MulSchoolbook MulStrategy = iota
	// MulKaratsuba uses three half-size products per level.
	MulKaratsuba
)

// String returns the strategy name used in profiles and flags.
func (s MulStrategy) String() string {
	switch s {
	case MulSchoolbook:
		return "schoolbook"
	case MulKaratsuba:
		return "karatsuba"
	default:
		return fmt.Sprintf("MulStrategy(%d)", int32(s))
	}
}

// ParseMulStrategy is the inverse of MulStrategy.String.
func ParseMulStrategy(s string) (MulStrategy, error) {
	switch s {
	case "schoolbook":
		return MulSchoolbook, nil
	case "karatsuba":
		return MulKaratsuba, nil
	}
	return 0, apperrors.ValidationError{Field: "strategy", Message: fmt.Sprintf("unknown multiplication strategy %q", s)}
}

// Strategies in effect for Mul. Written at startup or by calibration, read
// on every call.
var (
	strategy128 atomic.Int32
	strategy256 atomic.Int32
)

// KaratsubaWidths lists the bit widths that have a Karatsuba multiplier.
var KaratsubaWidths = []int{128, 256}

// SetMulStrategy sets the algorithm Mul uses for the given bit width.
func SetMulStrategy(width int, s MulStrategy) error {
	if s != MulSchoolbook && s != MulKaratsuba {
		return apperrors.ValidationError{Field: "strategy", Message: fmt.Sprintf("invalid strategy %d", int32(s))}
	}
	switch width {
	case 128:
		strategy128.Store(int32(s))
	case 256:
		strategy256.Store(int32(s))
	default:
		return apperrors.ValidationError{Field: "width", Message: fmt.Sprintf("no Karatsuba multiplier for %d-bit operands", width)}
	}
	return nil
}

// GetMulStrategy returns the algorithm Mul uses for the given bit width.
// Widths without a Karatsuba multiplier always report MulSchoolbook.
func GetMulStrategy(width int) MulStrategy {
	switch width {
	case 128:
		return MulStrategy(strategy128.Load())
	case 256:
		return MulStrategy(strategy256.Load())
	}
	return MulSchoolbook
}

// Mul returns a * b using the configured strategy for 128-bit operands.
func (a U128) Mul(b U128) U256 {
	if MulStrategy(strategy128.Load()) == MulKaratsuba {
		return karatsuba128(a, b)
	}
	return a.MulWide(b)
}

// Mul returns a * b using the configured strategy for 256-bit operands.
func (a U256) Mul(b U256) U512 {
	if MulStrategy(strategy256.Load()) == MulKaratsuba {
		return karatsuba256(a, b)
	}
	return a.MulWide(b)
}
