package simd

import (
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func seq(start uint64) (v Vec8) {
	for i := range v {
		v[i] = start + uint64(i)
	}
	return v
}

// kernelsUnderTest returns the scalar kernel plus AVX-512 when the host has it.
func kernelsUnderTest(t *testing.T) []Kernel {
	t.Helper()
	ks := []Kernel{Scalar()}
	if k, err := NewAVX512(); err == nil {
		ks = append(ks, k)
	}
	return ks
}

func TestKernelLaneSemantics(t *testing.T) {
	t.Parallel()
	const m = ^uint64(0)
	a := Vec8{m, 0, 1, 2, 0x8000000000000000, 5, 7, 42}
	b := Vec8{1, 1, m, 2, 0x8000000000000000, 9, 3, 42}

	for _, k := range kernelsUnderTest(t) {
		t.Run(k.Name(), func(t *testing.T) {
			t.Parallel()
			if got, want := k.Add(a, b), (Vec8{0, 1, 0, 4, 0, 14, 10, 84}); got != want {
				t.Errorf("Add = %v, want %v (no carry across lanes)", got, want)
			}
			if got, want := k.Sub(b, a), (Vec8{2, 1, m - 1, 0, 0, 4, m - 3, 0}); got != want {
				t.Errorf("Sub = %v, want %v", got, want)
			}
			if got, want := k.Xor(a, a), k.Zero(); got != want {
				t.Errorf("Xor(a, a) = %v, want zero", got)
			}
			if got := k.And(a, k.Splat(m)); got != a {
				t.Errorf("And(a, ones) = %v, want %v", got, a)
			}
			if got := k.Or(a, k.Zero()); got != a {
				t.Errorf("Or(a, 0) = %v, want %v", got, a)
			}
			if got, want := k.LessMask(a, b), Mask(0b00100110); got != want {
				t.Errorf("LessMask = %08b, want %08b", got, want)
			}
			if got, want := k.GreaterMask(a, b), Mask(0b01000001); got != want {
				t.Errorf("GreaterMask = %08b, want %08b", got, want)
			}
			if got, want := k.Min(a, b), (Vec8{1, 0, 1, 2, 0x8000000000000000, 5, 3, 42}); got != want {
				t.Errorf("Min = %v, want %v", got, want)
			}
			if got, want := k.Max(a, b), (Vec8{m, 1, m, 2, 0x8000000000000000, 9, 7, 42}); got != want {
				t.Errorf("Max = %v, want %v", got, want)
			}
			if !k.Equal(a, a) || k.Equal(a, b) {
				t.Error("Equal does not require all lanes to match")
			}
		})
	}
}

func TestKernelShifts(t *testing.T) {
	t.Parallel()
	ones := Scalar().Splat(^uint64(0))
	counts := Vec8{0, 1, 32, 63, 64, 65, 1 << 40, ^uint64(0)}

	for _, k := range kernelsUnderTest(t) {
		t.Run(k.Name(), func(t *testing.T) {
			t.Parallel()
			wantL := Vec8{^uint64(0), ^uint64(1), 0xFFFFFFFF00000000, 1 << 63, 0, 0, 0, 0}
			if got := k.ShlVar(ones, counts); got != wantL {
				t.Errorf("ShlVar = %x, want %x", got, wantL)
			}
			wantR := Vec8{^uint64(0), ^uint64(0) >> 1, ^uint64(0) >> 32, 1, 0, 0, 0, 0}
			if got := k.ShrVar(ones, counts); got != wantR {
				t.Errorf("ShrVar = %x, want %x", got, wantR)
			}
			for _, n := range []uint{0, 1, 63, 64, 100} {
				if got, want := k.ShlImm(ones, n), Scalar().Splat(^uint64(0)<<n); got != want {
					t.Errorf("ShlImm(%d) = %x, want %x", n, got, want)
				}
				if got, want := k.ShrImm(ones, n), Scalar().Splat(^uint64(0)>>n); got != want {
					t.Errorf("ShrImm(%d) = %x, want %x", n, got, want)
				}
			}
		})
	}
}

func TestKernelBlendPermute(t *testing.T) {
	t.Parallel()
	a, b := seq(0), seq(100)

	for _, k := range kernelsUnderTest(t) {
		t.Run(k.Name(), func(t *testing.T) {
			t.Parallel()
			if got := k.Blend(a, b, 0); got != a {
				t.Errorf("Blend mask 0 = %v, want a", got)
			}
			if got := k.Blend(a, b, AllLanes); got != b {
				t.Errorf("Blend all lanes = %v, want b", got)
			}
			if got, want := k.Blend(a, b, 0b10100101), (Vec8{100, 1, 102, 3, 4, 105, 6, 107}); got != want {
				t.Errorf("Blend = %v, want %v", got, want)
			}

			reverse := Vec8{7, 6, 5, 4, 3, 2, 1, 0}
			if got, want := k.Permute(b, reverse), (Vec8{107, 106, 105, 104, 103, 102, 101, 100}); got != want {
				t.Errorf("Permute reverse = %v, want %v", got, want)
			}
			// Only the low three bits of each index count.
			wrapped := Vec8{8, 9, 15, 1 << 60, ^uint64(0), 16 + 2, 3, 4}
			if got, want := k.Permute(b, wrapped), (Vec8{100, 101, 107, 100, 107, 102, 103, 104}); got != want {
				t.Errorf("Permute wrapped = %v, want %v", got, want)
			}
		})
	}
}

func TestNewAVX512(t *testing.T) {
	t.Parallel()
	k, err := NewAVX512()
	if !HasAVX512() || !hasAVX512Kernel {
		if !errors.Is(err, ErrUnsupported) {
			t.Fatalf("NewAVX512() error = %v, want ErrUnsupported", err)
		}
		if k != nil {
			t.Fatal("NewAVX512() returned a kernel on an unsupported host")
		}
		return
	}
	if err != nil {
		t.Fatalf("NewAVX512() error = %v on a capable host", err)
	}
	if k.Name() != "avx512" {
		t.Errorf("Name() = %q, want avx512", k.Name())
	}
}

func TestSelect(t *testing.T) {
	t.Parallel()
	if k, err := Select("scalar"); err != nil || k.Name() != "scalar" {
		t.Errorf("Select(scalar) = %v, %v", k, err)
	}
	if k, err := Select("auto"); err != nil || k == nil {
		t.Errorf("Select(auto) = %v, %v", k, err)
	}
	if _, err := Select("avx2"); err == nil {
		t.Error("Select(avx2) should fail")
	}
}

// TestForceScalar mutates package state and must not run in parallel.
func TestForceScalar(t *testing.T) {
	SetForceScalar(true)
	defer SetForceScalar(false)

	if GetSIMDLevel() != SIMDNone {
		t.Errorf("GetSIMDLevel() = %v with scalar forced", GetSIMDLevel())
	}
	if k := Best(); k.Name() != "scalar" {
		t.Errorf("Best() = %s with scalar forced", k.Name())
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Cross-kernel equivalence
// ─────────────────────────────────────────────────────────────────────────────

func genVec8() gopter.Gen {
	return gen.SliceOfN(Lanes, gen.UInt64()).Map(func(s []uint64) Vec8 {
		var v Vec8
		copy(v[:], s)
		return v
	})
}

// genCounts favours the interesting region around 64.
func genCounts() gopter.Gen {
	return gen.SliceOfN(Lanes, gen.UInt64Range(0, 80)).Map(func(s []uint64) Vec8 {
		var v Vec8
		copy(v[:], s)
		return v
	})
}

func TestVectorMatchesScalar(t *testing.T) {
	t.Parallel()
	hw, err := NewAVX512()
	if err != nil {
		t.Skip("AVX-512F not available on this host")
	}
	sc := Scalar()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("binary lane ops agree", prop.ForAll(
		func(a, b Vec8) bool {
			return hw.Xor(a, b) == sc.Xor(a, b) &&
				hw.And(a, b) == sc.And(a, b) &&
				hw.Or(a, b) == sc.Or(a, b) &&
				hw.Add(a, b) == sc.Add(a, b) &&
				hw.Sub(a, b) == sc.Sub(a, b) &&
				hw.Min(a, b) == sc.Min(a, b) &&
				hw.Max(a, b) == sc.Max(a, b)
		},
		genVec8(), genVec8(),
	))

	properties.Property("compares agree", prop.ForAll(
		func(a, b Vec8) bool {
			return hw.LessMask(a, b) == sc.LessMask(a, b) &&
				hw.GreaterMask(a, b) == sc.GreaterMask(a, b) &&
				hw.Equal(a, b) == sc.Equal(a, b) &&
				hw.Equal(a, a)
		},
		genVec8(), genVec8(),
	))

	properties.Property("shifts agree", prop.ForAll(
		func(a, n Vec8, imm uint) bool {
			return hw.ShlVar(a, n) == sc.ShlVar(a, n) &&
				hw.ShrVar(a, n) == sc.ShrVar(a, n) &&
				hw.ShlImm(a, imm) == sc.ShlImm(a, imm) &&
				hw.ShrImm(a, imm) == sc.ShrImm(a, imm)
		},
		genVec8(), genCounts(), gen.UIntRange(0, 80),
	))

	properties.Property("blend and permute agree", prop.ForAll(
		func(a, b, idx Vec8, m uint8) bool {
			return hw.Blend(a, b, Mask(m)) == sc.Blend(a, b, Mask(m)) &&
				hw.Permute(a, idx) == sc.Permute(a, idx)
		},
		genVec8(), genVec8(), genVec8(), gen.UInt8(),
	))

	properties.Property("splat agrees", prop.ForAll(
		func(v uint64) bool {
			return hw.Splat(v) == sc.Splat(v) && hw.Zero() == sc.Zero()
		},
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

func BenchmarkKernelAdd(b *testing.B) {
	x, y := seq(1), seq(1<<40)
	for _, k := range []Kernel{Scalar(), Best()} {
		b.Run(k.Name(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				x = k.Add(x, y)
			}
		})
	}
}
