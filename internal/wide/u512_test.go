package wide

import (
	"math/big"
	"testing"

	"github.com/agbru/widearith/internal/limb"
)

func TestU512_ConcreteScenario(t *testing.T) {
	t.Parallel()
	a := U512From64(1)
	b := U512From64(limb.Max)

	sum, carry := a.Add(b)
	if want := (U512{0, 1}); sum != want || carry != 0 {
		t.Errorf("Add = (%v, %d), want (%v, 0)", sum, carry, want)
	}

	if got, want := a.MulScalar(3), ([9]uint64{3}); got != want {
		t.Errorf("MulScalar(3) = %v, want %v", got, want)
	}

	if got, want := a.Lsh(1), U512From64(2); got != want {
		t.Errorf("Lsh(1) = %v, want %v", got, want)
	}
}

func TestU512_AddSubRoundTrip(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		a, b      U512
		wantCarry uint64
	}{
		{"max plus one", MaxU512, U512From64(1), 1},
		{"max plus max", MaxU512, MaxU512, 1},
		{"no carry", U512{5, 6, 7}, U512{1, 2, 3}, 0},
		{"zero", U512{}, U512{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			sum, carry := tt.a.Add(tt.b)
			if carry != tt.wantCarry {
				t.Fatalf("carry = %d, want %d", carry, tt.wantCarry)
			}
			diff, borrow := sum.Sub(tt.b)
			if diff != tt.a {
				t.Errorf("(a+b)-b = %v, want %v", diff, tt.a)
			}
			if borrow != carry {
				t.Errorf("borrow = %d, want the add carry %d", borrow, carry)
			}
		})
	}
}

func TestU512_MaxPlusOneIsZero(t *testing.T) {
	t.Parallel()
	sum, carry := MaxU512.Add(U512From64(1))
	if !sum.IsZero() || carry != 1 {
		t.Fatalf("max+1 = (%v, %d), want (0, 1)", sum, carry)
	}
}

func TestU512_MulScalarKeepsTopCarry(t *testing.T) {
	t.Parallel()
	got := MaxU512.MulScalar(limb.Max)
	want := new(big.Int).Mul(MaxU512.BigInt(), new(big.Int).SetUint64(limb.Max))
	if toBig(got[:]).Cmp(want) != 0 {
		t.Fatalf("max*max64 = %#x, want %s", got, want.Text(16))
	}
	if got[8] != limb.Max-1 {
		t.Errorf("top limb = %#x, want %#x", got[8], limb.Max-1)
	}
}

func TestU512_Predicates(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		a        U512
		zero     bool
		even     bool
		lzcount  uint32
		asString string
	}{
		{"zero", U512{}, true, true, 512, "0x0"},
		{"one", U512From64(1), false, false, 511, "0x1"},
		{"two limbs", U512{0, 0x10}, false, true, 512 - 64 - 5, "0x100000000000000000"},
		{"max", MaxU512, false, false, 0, "0x" + repeatF(128)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.a.IsZero(); got != tt.zero {
				t.Errorf("IsZero = %v, want %v", got, tt.zero)
			}
			if got := tt.a.IsEven(); got != tt.even {
				t.Errorf("IsEven = %v, want %v", got, tt.even)
			}
			if got := tt.a.LeadingZeros(); got != tt.lzcount {
				t.Errorf("LeadingZeros = %d, want %d", got, tt.lzcount)
			}
			if got := tt.a.String(); got != tt.asString {
				t.Errorf("String = %q, want %q", got, tt.asString)
			}
		})
	}
}

func repeatF(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'f'
	}
	return string(b)
}

func TestU512_Compare(t *testing.T) {
	t.Parallel()
	small := U512{limb.Max, limb.Max}
	large := U512{0, 0, 1}
	if !small.LessThan(large) || small.GreaterThan(large) || small.Equal(large) {
		t.Errorf("compare(%v, %v) should be less-than only", small, large)
	}
	if !large.GreaterThan(small) {
		t.Errorf("%v should be greater than %v", large, small)
	}
	if !large.Equal(large) || large.Cmp(large) != 0 {
		t.Errorf("%v should equal itself", large)
	}
}

func TestU512_ShiftBounds(t *testing.T) {
	t.Parallel()
	a := U512{0x8000000000000001, 0x1}
	if got := a.Lsh(0); got != a {
		t.Errorf("Lsh(0) = %v, want identity", got)
	}
	if got := a.Rsh(0); got != a {
		t.Errorf("Rsh(0) = %v, want identity", got)
	}
	if got, want := a.Lsh(1), (U512{0x2, 0x3}); got != want {
		t.Errorf("Lsh(1) = %v, want %v", got, want)
	}
	if got, want := a.Rsh(1), (U512{0xC000000000000000, 0}); got != want {
		t.Errorf("Rsh(1) = %v, want %v", got, want)
	}

	defer func() {
		if recover() == nil {
			t.Error("Lsh(64) should panic")
		}
	}()
	a.Lsh(64)
}

func TestU512_MulWideAndSquare(t *testing.T) {
	t.Parallel()
	p := MaxU512.MulWide(MaxU512)
	want := new(big.Int).Mul(MaxU512.BigInt(), MaxU512.BigInt())
	if p.BigInt().Cmp(want) != 0 {
		t.Fatalf("max*max = %v, want %s", p, want.Text(16))
	}
	if sq := MaxU512.Square(); sq != p {
		t.Fatalf("Square(max) = %v, want %v", sq, p)
	}
}

func TestU1024_SquareMatchesMulWide(t *testing.T) {
	t.Parallel()
	var a U1024
	for i := range a {
		a[i] = uint64(i+1) * 0x9E3779B97F4A7C15
	}
	if sq, mw := a.Square(), a.MulWide(a); !sq.Equal(mw) {
		t.Fatalf("Square = %v, MulWide = %v", sq, mw)
	}
}
