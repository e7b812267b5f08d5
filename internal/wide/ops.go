package wide

import (
	"fmt"

	apperrors "github.com/agbru/widearith/internal/errors"
)

// Ops exposes one width's operations over limb slices so callers can pick
// the width at run time. Every slice argument must hold exactly Limbs
// limbs; results are freshly allocated.
type Ops struct {
	Width int
	Limbs int

	Add       func(a, b []uint64) ([]uint64, uint64)
	Sub       func(a, b []uint64) ([]uint64, uint64)
	MulScalar func(a []uint64, s uint64) []uint64
	MulWide   func(a, b []uint64) []uint64
	// MulKaratsuba is nil above 256 bits.
	MulKaratsuba func(a, b []uint64) []uint64
	// Mul follows the configured MulStrategy; it is MulWide above 256 bits.
	Mul    func(a, b []uint64) []uint64
	Square func(a []uint64) []uint64
	Lsh    func(a []uint64, n uint) []uint64
	Rsh    func(a []uint64, n uint) []uint64

	Cmp          func(a, b []uint64) int
	Equal        func(a, b []uint64) bool
	LessThan     func(a, b []uint64) bool
	GreaterThan  func(a, b []uint64) bool
	LeadingZeros func(a []uint64) uint32
	IsZero       func(a []uint64) bool
	IsEven       func(a []uint64) bool

	Parse func(s string) ([]uint64, error)
}

// Widths lists the supported operand widths in bits.
var Widths = []int{128, 256, 512, 1024}

var opsTable = map[int]*Ops{
	128:  ops128(),
	256:  ops256(),
	512:  ops512(),
	1024: ops1024(),
}

// OpsFor returns the operation table for a width in bits.
func OpsFor(width int) (*Ops, error) {
	if o, ok := opsTable[width]; ok {
		return o, nil
	}
	return nil, apperrors.ValidationError{
		Field:   "width",
		Message: fmt.Sprintf("unsupported width %d (valid: 128, 256, 512, 1024)", width),
	}
}

func ops128() *Ops {
	return &Ops{
		Width: 128,
		Limbs: 2,
		Add: func(a, b []uint64) ([]uint64, uint64) {
			r, c := U128(a).Add(U128(b))
			return r[:], c
		},
		Sub: func(a, b []uint64) ([]uint64, uint64) {
			r, c := U128(a).Sub(U128(b))
			return r[:], c
		},
		MulScalar: func(a []uint64, s uint64) []uint64 {
			r := U128(a).MulScalar(s)
			return r[:]
		},
		MulWide: func(a, b []uint64) []uint64 {
			r := U128(a).MulWide(U128(b))
			return r[:]
		},
		MulKaratsuba: func(a, b []uint64) []uint64 {
			r := U128(a).MulKaratsuba(U128(b))
			return r[:]
		},
		Mul: func(a, b []uint64) []uint64 {
			r := U128(a).Mul(U128(b))
			return r[:]
		},
		Square: func(a []uint64) []uint64 {
			r := U128(a).Square()
			return r[:]
		},
		Lsh: func(a []uint64, n uint) []uint64 {
			r := U128(a).Lsh(n)
			return r[:]
		},
		Rsh: func(a []uint64, n uint) []uint64 {
			r := U128(a).Rsh(n)
			return r[:]
		},
		Cmp:          func(a, b []uint64) int { return U128(a).Cmp(U128(b)) },
		Equal:        func(a, b []uint64) bool { return U128(a).Equal(U128(b)) },
		LessThan:     func(a, b []uint64) bool { return U128(a).LessThan(U128(b)) },
		GreaterThan:  func(a, b []uint64) bool { return U128(a).GreaterThan(U128(b)) },
		LeadingZeros: func(a []uint64) uint32 { return U128(a).LeadingZeros() },
		IsZero:       func(a []uint64) bool { return U128(a).IsZero() },
		IsEven:       func(a []uint64) bool { return U128(a).IsEven() },
		Parse: func(s string) ([]uint64, error) {
			v, err := ParseU128(s)
			return v[:], err
		},
	}
}

func ops256() *Ops {
	return &Ops{
		Width: 256,
		Limbs: 4,
		Add: func(a, b []uint64) ([]uint64, uint64) {
			r, c := U256(a).Add(U256(b))
			return r[:], c
		},
		Sub: func(a, b []uint64) ([]uint64, uint64) {
			r, c := U256(a).Sub(U256(b))
			return r[:], c
		},
		MulScalar: func(a []uint64, s uint64) []uint64 {
			r := U256(a).MulScalar(s)
			return r[:]
		},
		MulWide: func(a, b []uint64) []uint64 {
			r := U256(a).MulWide(U256(b))
			return r[:]
		},
		MulKaratsuba: func(a, b []uint64) []uint64 {
			r := U256(a).MulKaratsuba(U256(b))
			return r[:]
		},
		Mul: func(a, b []uint64) []uint64 {
			r := U256(a).Mul(U256(b))
			return r[:]
		},
		Square: func(a []uint64) []uint64 {
			r := U256(a).Square()
			return r[:]
		},
		Lsh: func(a []uint64, n uint) []uint64 {
			r := U256(a).Lsh(n)
			return r[:]
		},
		Rsh: func(a []uint64, n uint) []uint64 {
			r := U256(a).Rsh(n)
			return r[:]
		},
		Cmp:          func(a, b []uint64) int { return U256(a).Cmp(U256(b)) },
		Equal:        func(a, b []uint64) bool { return U256(a).Equal(U256(b)) },
		LessThan:     func(a, b []uint64) bool { return U256(a).LessThan(U256(b)) },
		GreaterThan:  func(a, b []uint64) bool { return U256(a).GreaterThan(U256(b)) },
		LeadingZeros: func(a []uint64) uint32 { return U256(a).LeadingZeros() },
		IsZero:       func(a []uint64) bool { return U256(a).IsZero() },
		IsEven:       func(a []uint64) bool { return U256(a).IsEven() },
		Parse: func(s string) ([]uint64, error) {
			v, err := ParseU256(s)
			return v[:], err
		},
	}
}

func ops512() *Ops {
	return &Ops{
		Width: 512,
		Limbs: 8,
		Add: func(a, b []uint64) ([]uint64, uint64) {
			r, c := U512(a).Add(U512(b))
			return r[:], c
		},
		Sub: func(a, b []uint64) ([]uint64, uint64) {
			r, c := U512(a).Sub(U512(b))
			return r[:], c
		},
		MulScalar: func(a []uint64, s uint64) []uint64 {
			r := U512(a).MulScalar(s)
			return r[:]
		},
		MulWide: func(a, b []uint64) []uint64 {
			r := U512(a).MulWide(U512(b))
			return r[:]
		},
		Mul: func(a, b []uint64) []uint64 {
			r := U512(a).MulWide(U512(b))
			return r[:]
		},
		Square: func(a []uint64) []uint64 {
			r := U512(a).Square()
			return r[:]
		},
		Lsh: func(a []uint64, n uint) []uint64 {
			r := U512(a).Lsh(n)
			return r[:]
		},
		Rsh: func(a []uint64, n uint) []uint64 {
			r := U512(a).Rsh(n)
			return r[:]
		},
		Cmp:          func(a, b []uint64) int { return U512(a).Cmp(U512(b)) },
		Equal:        func(a, b []uint64) bool { return U512(a).Equal(U512(b)) },
		LessThan:     func(a, b []uint64) bool { return U512(a).LessThan(U512(b)) },
		GreaterThan:  func(a, b []uint64) bool { return U512(a).GreaterThan(U512(b)) },
		LeadingZeros: func(a []uint64) uint32 { return U512(a).LeadingZeros() },
		IsZero:       func(a []uint64) bool { return U512(a).IsZero() },
		IsEven:       func(a []uint64) bool { return U512(a).IsEven() },
		Parse: func(s string) ([]uint64, error) {
			v, err := ParseU512(s)
			return v[:], err
		},
	}
}

func ops1024() *Ops {
	return &Ops{
		Width: 1024,
		Limbs: 16,
		Add: func(a, b []uint64) ([]uint64, uint64) {
			r, c := U1024(a).Add(U1024(b))
			return r[:], c
		},
		Sub: func(a, b []uint64) ([]uint64, uint64) {
			r, c := U1024(a).Sub(U1024(b))
			return r[:], c
		},
		MulScalar: func(a []uint64, s uint64) []uint64 {
			r := U1024(a).MulScalar(s)
			return r[:]
		},
		MulWide: func(a, b []uint64) []uint64 {
			r := U1024(a).MulWide(U1024(b))
			return r[:]
		},
		Mul: func(a, b []uint64) []uint64 {
			r := U1024(a).MulWide(U1024(b))
			return r[:]
		},
		Square: func(a []uint64) []uint64 {
			r := U1024(a).Square()
			return r[:]
		},
		Lsh: func(a []uint64, n uint) []uint64 {
			r := U1024(a).Lsh(n)
			return r[:]
		},
		Rsh: func(a []uint64, n uint) []uint64 {
			r := U1024(a).Rsh(n)
			return r[:]
		},
		Cmp:          func(a, b []uint64) int { return U1024(a).Cmp(U1024(b)) },
		Equal:        func(a, b []uint64) bool { return U1024(a).Equal(U1024(b)) },
		LessThan:     func(a, b []uint64) bool { return U1024(a).LessThan(U1024(b)) },
		GreaterThan:  func(a, b []uint64) bool { return U1024(a).GreaterThan(U1024(b)) },
		LeadingZeros: func(a []uint64) uint32 { return U1024(a).LeadingZeros() },
		IsZero:       func(a []uint64) bool { return U1024(a).IsZero() },
		IsEven:       func(a []uint64) bool { return U1024(a).IsEven() },
		Parse: func(s string) ([]uint64, error) {
			v, err := ParseU1024(s)
			return v[:], err
		},
	}
}
