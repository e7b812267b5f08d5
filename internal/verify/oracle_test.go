package verify

import (
	"math/big"
	"math/rand"
	"slices"
	"testing"
)

func randomOperand(r *rand.Rand, n int) []uint64 {
	x := make([]uint64, n)
	for i := range x {
		x[i] = r.Uint64()
	}
	return x
}

func TestLimbBigRoundTrip(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewSource(1))
	for _, n := range []int{2, 4, 8, 16} {
		for i := 0; i < 50; i++ {
			x := randomOperand(r, n)
			if got := bigToLimbs(limbsToBig(x), n); !slices.Equal(got, x) {
				t.Fatalf("round trip of %x gave %x", x, got)
			}
			if got := beToLimbs(limbsToBE(x), n); !slices.Equal(got, x) {
				t.Fatalf("byte round trip of %x gave %x", x, got)
			}
		}
	}
}

func TestBigOracle(t *testing.T) {
	t.Parallel()
	o := BigOracle{}
	max2 := []uint64{^uint64(0), ^uint64(0)}
	one := []uint64{1, 0}
	zero := []uint64{0, 0}

	sum, carry := o.Add(max2, one)
	if !slices.Equal(sum, zero) || carry != 1 {
		t.Errorf("max+1 = %x carry %d, want 0 carry 1", sum, carry)
	}
	diff, borrow := o.Sub(zero, one)
	if !slices.Equal(diff, max2) || borrow != 1 {
		t.Errorf("0-1 = %x borrow %d, want max borrow 1", diff, borrow)
	}

	// (2^128-1)^2 = 2^256 - 2^129 + 1
	want := new(big.Int).Lsh(big.NewInt(1), 256)
	want.Sub(want, new(big.Int).Lsh(big.NewInt(1), 129))
	want.Add(want, big.NewInt(1))
	if got := o.Mul(max2, max2); limbsToBig(got).Cmp(want) != 0 || len(got) != 4 {
		t.Errorf("max*max = %x", got)
	}

	if got := o.Lsh(one, 64); !slices.Equal(got, []uint64{0, 1}) {
		t.Errorf("1<<64 = %x", got)
	}
	if got := o.Lsh(max2, 1); !slices.Equal(got, []uint64{^uint64(0) - 1, ^uint64(0)}) {
		t.Errorf("max<<1 = %x, want truncated", got)
	}
	if got := o.Rsh(max2, 127); !slices.Equal(got, one) {
		t.Errorf("max>>127 = %x", got)
	}
	if o.Cmp(one, max2) != -1 || o.Cmp(max2, max2) != 0 {
		t.Error("Cmp ordering wrong")
	}
	if o.BitLen(zero) != 0 || o.BitLen(max2) != 128 {
		t.Error("BitLen wrong")
	}
}

func TestFormatLimbs(t *testing.T) {
	t.Parallel()
	if got := formatLimbs([]uint64{0x1, 0xab}); got != "0xab0000000000000001" {
		t.Errorf("formatLimbs = %q", got)
	}
}
