//go:build !amd64 || purego

package simd

const hasAVX512Kernel = false

// avx512Kernel is never constructed on this platform; NewAVX512 returns
// ErrUnsupported before reaching it.
type avx512Kernel struct{ scalarKernel }
