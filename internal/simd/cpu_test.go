package simd

import (
	"testing"
)

// ─────────────────────────────────────────────────────────────────────────────
// CPU Feature Tests
// ─────────────────────────────────────────────────────────────────────────────

func TestFeatureAccessorsAgree(t *testing.T) {
	t.Parallel()
	f := GetCPUFeatures()
	checks := []struct {
		name string
		got  bool
		want bool
	}{
		{"AVX2", HasAVX2(), f.AVX2},
		{"AVX512", HasAVX512(), f.AVX512},
		{"BMI2", HasBMI2(), f.BMI2},
		{"ADX", HasADX(), f.ADX},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("Has%s() = %v, but GetCPUFeatures().%s = %v", c.name, c.got, c.name, c.want)
		}
	}
	t.Logf("CPU features: %s (level %s)", f, f.SIMDLevel)
}

func TestSIMDLevelConsistent(t *testing.T) {
	t.Parallel()
	f := GetCPUFeatures()
	if f.SIMDLevel == SIMDAVX512 && !f.AVX512 {
		t.Error("SIMDLevel is AVX-512 but AVX512 feature is false")
	}
	if f.SIMDLevel == SIMDAVX2 && !f.AVX2 {
		t.Error("SIMDLevel is AVX2 but AVX2 feature is false")
	}
	if !hasAVX512Kernel && f.SIMDLevel == SIMDAVX512 {
		t.Error("SIMDLevel is AVX-512 in a build without the assembly kernel")
	}
}

func TestSIMDLevelString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		level SIMDLevel
		want  string
	}{
		{SIMDNone, "None"},
		{SIMDAVX2, "AVX2"},
		{SIMDAVX512, "AVX-512"},
		{SIMDLevel(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("SIMDLevel(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestCPUFeaturesString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		f    CPUFeatures
		want string
	}{
		{CPUFeatures{}, "none"},
		{CPUFeatures{AVX2: true}, "AVX2"},
		{CPUFeatures{AVX2: true, AVX512: true, BMI2: true}, "AVX2+AVX-512+BMI2"},
		{CPUFeatures{BMI2: true, ADX: true}, "BMI2+ADX"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.f, got, tt.want)
		}
	}
}
