package calibration

import (
	"testing"

	"github.com/agbru/widearith/internal/simd"
	"github.com/agbru/widearith/internal/wide"
)

func TestIterationBudget(t *testing.T) {
	t.Parallel()
	full, quick := IterationBudget(false), IterationBudget(true)
	if quick <= 0 || full <= 0 {
		t.Fatalf("budgets must be positive: full=%d quick=%d", full, quick)
	}
	if quick >= full {
		t.Errorf("quick budget %d should be below full budget %d", quick, full)
	}
	if 32<<(^uint(0)>>63) == 64 && full != DefaultIterations {
		t.Errorf("full budget on 64-bit = %d, want %d", full, DefaultIterations)
	}
}

func TestEstimateMulStrategy(t *testing.T) {
	t.Parallel()
	if got := EstimateMulStrategy(128); got != wide.MulSchoolbook {
		t.Errorf("EstimateMulStrategy(128) = %v, want schoolbook", got)
	}
	want := wide.MulKaratsuba
	if simd.HasBMI2() && simd.HasADX() {
		want = wide.MulSchoolbook
	}
	if got := EstimateMulStrategy(256); got != want {
		t.Errorf("EstimateMulStrategy(256) = %v, want %v", got, want)
	}
	if got := EstimateMulStrategy(1024); got != wide.MulSchoolbook {
		t.Errorf("EstimateMulStrategy(1024) = %v, want schoolbook", got)
	}
}

func TestApplyEstimates(t *testing.T) {
	defer restoreStrategies()()
	ApplyEstimates()
	for _, w := range wide.KaratsubaWidths {
		if got, want := wide.GetMulStrategy(w), EstimateMulStrategy(w); got != want {
			t.Errorf("width %d: strategy %v, want %v", w, got, want)
		}
	}
}

func TestCandidateKernels(t *testing.T) {
	t.Parallel()
	kernels := CandidateKernels()
	if len(kernels) == 0 || kernels[0].Name() != "scalar" {
		t.Fatalf("first candidate must be scalar, got %v", kernels)
	}
	if simd.HasAVX512() {
		if _, err := simd.NewAVX512(); err == nil && len(kernels) != 2 {
			t.Errorf("expected the AVX-512 kernel among %d candidates", len(kernels))
		}
	} else if len(kernels) != 1 {
		t.Errorf("expected only the scalar kernel, got %d", len(kernels))
	}
}
