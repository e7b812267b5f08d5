// This file detects the vector extensions available to the process. The
// query runs once; the result is read-only afterwards.

package simd

import (
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// SIMDLevel is the widest vector extension the kernels may use.
type SIMDLevel int

const (
	// SIMDNone means only the scalar kernel is used.
	SIMDNone SIMDLevel = iota
	// SIMDAVX2 means 256-bit vectors are available. No kernel uses them
	// yet; the level is reported for diagnostics.
	SIMDAVX2
	// SIMDAVX512 means the 512-bit kernel is available.
	SIMDAVX512
)

// String returns a human-readable name for the level.
func (l SIMDLevel) String() string {
	switch l {
	case SIMDNone:
		return "None"
	case SIMDAVX2:
		return "AVX2"
	case SIMDAVX512:
		return "AVX-512"
	default:
		return "Unknown"
	}
}

// CPUFeatures is a snapshot of the extensions relevant to this module.
type CPUFeatures struct {
	AVX2      bool
	AVX512    bool // AVX-512 Foundation, including OS support for the Z registers
	BMI2      bool
	ADX       bool
	SIMDLevel SIMDLevel
}

// String lists the detected features, e.g. "AVX2+AVX-512+BMI2".
func (f CPUFeatures) String() string {
	var parts []string
	if f.AVX2 {
		parts = append(parts, "AVX2")
	}
	if f.AVX512 {
		parts = append(parts, "AVX-512")
	}
	if f.BMI2 {
		parts = append(parts, "BMI2")
	}
	if f.ADX {
		parts = append(parts, "ADX")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}

var (
	featuresOnce sync.Once
	features     CPUFeatures

	// forceScalar pins GetSIMDLevel and Best to the scalar kernel.
	forceScalar atomic.Bool
)

func detect() {
	features = CPUFeatures{
		AVX2:   cpu.X86.HasAVX2,
		AVX512: cpu.X86.HasAVX512F,
		BMI2:   cpu.X86.HasBMI2,
		ADX:    cpu.X86.HasADX,
	}
	switch {
	case features.AVX512 && hasAVX512Kernel:
		features.SIMDLevel = SIMDAVX512
	case features.AVX2:
		features.SIMDLevel = SIMDAVX2
	default:
		features.SIMDLevel = SIMDNone
	}
}

// GetCPUFeatures returns the detected CPU features.
func GetCPUFeatures() CPUFeatures {
	featuresOnce.Do(detect)
	return features
}

// GetSIMDLevel returns the level the kernels will use, taking SetForceScalar
// into account.
func GetSIMDLevel() SIMDLevel {
	if forceScalar.Load() {
		return SIMDNone
	}
	return GetCPUFeatures().SIMDLevel
}

// HasAVX2 reports whether AVX2 is available.
func HasAVX2() bool { return GetCPUFeatures().AVX2 }

// HasAVX512 reports whether AVX-512F is available and usable by the OS.
func HasAVX512() bool { return GetCPUFeatures().AVX512 }

// HasBMI2 reports whether BMI2 (MULX) is available.
func HasBMI2() bool { return GetCPUFeatures().BMI2 }

// HasADX reports whether ADX (ADCX/ADOX) is available.
func HasADX() bool { return GetCPUFeatures().ADX }

// SetForceScalar makes Best return the scalar kernel even on capable
// hardware. NewAVX512 is unaffected.
func SetForceScalar(v bool) { forceScalar.Store(v) }
