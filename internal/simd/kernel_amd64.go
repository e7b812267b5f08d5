//go:build amd64 && !purego

package simd

const hasAVX512Kernel = true

// Assembly routines in kernel_amd64.s. Each loads its operands into Z
// registers, applies one instruction and stores the result.

//go:noescape
func xorAVX512(z, x, y *Vec8)

//go:noescape
func andAVX512(z, x, y *Vec8)

//go:noescape
func orAVX512(z, x, y *Vec8)

//go:noescape
func addAVX512(z, x, y *Vec8)

//go:noescape
func subAVX512(z, x, y *Vec8)

//go:noescape
func shlAVX512(z, x *Vec8, s uint64)

//go:noescape
func shrAVX512(z, x *Vec8, s uint64)

//go:noescape
func shlVarAVX512(z, x, s *Vec8)

//go:noescape
func shrVarAVX512(z, x, s *Vec8)

//go:noescape
func cmpEqAVX512(x, y *Vec8) uint8

//go:noescape
func cmpLtAVX512(x, y *Vec8) uint8

//go:noescape
func cmpGtAVX512(x, y *Vec8) uint8

//go:noescape
func minAVX512(z, x, y *Vec8)

//go:noescape
func maxAVX512(z, x, y *Vec8)

//go:noescape
func blendAVX512(z, a, b *Vec8, m uint8)

//go:noescape
func permAVX512(z, x, idx *Vec8)

//go:noescape
func splatAVX512(z *Vec8, v uint64)

//go:noescape
func zeroAVX512(z *Vec8)

// avx512Kernel executes AVX-512F instructions without checking for them.
// Only NewAVX512 constructs it.
type avx512Kernel struct{}

func (avx512Kernel) Name() string { return "avx512" }

func (avx512Kernel) Xor(a, b Vec8) (z Vec8) {
	xorAVX512(&z, &a, &b)
	return z
}

func (avx512Kernel) And(a, b Vec8) (z Vec8) {
	andAVX512(&z, &a, &b)
	return z
}

func (avx512Kernel) Or(a, b Vec8) (z Vec8) {
	orAVX512(&z, &a, &b)
	return z
}

func (avx512Kernel) Add(a, b Vec8) (z Vec8) {
	addAVX512(&z, &a, &b)
	return z
}

func (avx512Kernel) Sub(a, b Vec8) (z Vec8) {
	subAVX512(&z, &a, &b)
	return z
}

func (avx512Kernel) ShlImm(a Vec8, n uint) (z Vec8) {
	shlAVX512(&z, &a, uint64(n))
	return z
}

func (avx512Kernel) ShrImm(a Vec8, n uint) (z Vec8) {
	shrAVX512(&z, &a, uint64(n))
	return z
}

func (avx512Kernel) ShlVar(a, n Vec8) (z Vec8) {
	shlVarAVX512(&z, &a, &n)
	return z
}

func (avx512Kernel) ShrVar(a, n Vec8) (z Vec8) {
	shrVarAVX512(&z, &a, &n)
	return z
}

func (avx512Kernel) Equal(a, b Vec8) bool {
	return cmpEqAVX512(&a, &b) == uint8(AllLanes)
}

func (avx512Kernel) LessMask(a, b Vec8) Mask {
	return Mask(cmpLtAVX512(&a, &b))
}

func (avx512Kernel) GreaterMask(a, b Vec8) Mask {
	return Mask(cmpGtAVX512(&a, &b))
}

func (avx512Kernel) Min(a, b Vec8) (z Vec8) {
	minAVX512(&z, &a, &b)
	return z
}

func (avx512Kernel) Max(a, b Vec8) (z Vec8) {
	maxAVX512(&z, &a, &b)
	return z
}

func (avx512Kernel) Blend(a, b Vec8, m Mask) (z Vec8) {
	blendAVX512(&z, &a, &b, uint8(m))
	return z
}

func (avx512Kernel) Permute(a, idx Vec8) (z Vec8) {
	permAVX512(&z, &a, &idx)
	return z
}

func (avx512Kernel) Splat(v uint64) (z Vec8) {
	splatAVX512(&z, v)
	return z
}

func (avx512Kernel) Zero() (z Vec8) {
	zeroAVX512(&z)
	return z
}
