package wide

import (
	"errors"
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	apperrors "github.com/agbru/widearith/internal/errors"
)

func TestOpsMatchBig(t *testing.T) {
	t.Parallel()
	for _, width := range Widths {
		ops, err := OpsFor(width)
		if err != nil {
			t.Fatalf("OpsFor(%d) error = %v", width, err)
		}
		if ops.Width != width || ops.Limbs*64 != width {
			t.Fatalf("OpsFor(%d) = width %d, %d limbs", width, ops.Width, ops.Limbs)
		}
		t.Run(fmt.Sprintf("u%d", width), func(t *testing.T) {
			t.Parallel()
			r := rand.New(rand.NewSource(int64(width)))
			mod := pow2(width)
			cases := edgeValues(ops.Limbs)
			for range 20 {
				cases = append(cases, randomLimbs(r, ops.Limbs))
			}
			for i, a := range cases {
				b := cases[(i*7+3)%len(cases)]
				ba, bb := toBig(a), toBig(b)

				sum, carry := ops.Add(a, b)
				wantSum := new(big.Int).Add(ba, bb)
				wantCarry := uint64(0)
				if wantSum.Cmp(mod) >= 0 {
					wantCarry = 1
				}
				if toBig(sum).Cmp(new(big.Int).Mod(wantSum, mod)) != 0 || carry != wantCarry {
					t.Errorf("Add(%x, %x) = %x carry %d", a, b, sum, carry)
				}
				prod := ops.MulWide(a, b)
				if toBig(prod).Cmp(new(big.Int).Mul(ba, bb)) != 0 {
					t.Errorf("MulWide(%x, %x) = %x", a, b, prod)
				}
				if p := ops.Mul(a, b); toBig(p).Cmp(toBig(prod)) != 0 {
					t.Errorf("Mul(%x, %x) = %x, want %x", a, b, p, prod)
				}
				if ops.MulKaratsuba != nil {
					if p := ops.MulKaratsuba(a, b); toBig(p).Cmp(toBig(prod)) != 0 {
						t.Errorf("MulKaratsuba(%x, %x) = %x, want %x", a, b, p, prod)
					}
				}
				if sq := ops.Square(a); toBig(sq).Cmp(new(big.Int).Mul(ba, ba)) != 0 {
					t.Errorf("Square(%x) = %x", a, sq)
				}
				if got := ops.Cmp(a, b); got != ba.Cmp(bb) {
					t.Errorf("Cmp(%x, %x) = %d, want %d", a, b, got, ba.Cmp(bb))
				}
				if got := ops.LeadingZeros(a); int(got) != width-ba.BitLen() {
					t.Errorf("LeadingZeros(%x) = %d, want %d", a, got, width-ba.BitLen())
				}
			}
		})
	}
}

func TestOpsParse(t *testing.T) {
	t.Parallel()
	ops, err := OpsFor(128)
	if err != nil {
		t.Fatal(err)
	}
	v, err := ops.Parse("0x1_0000000000000002")
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	if len(v) != 2 || v[0] != 2 || v[1] != 1 {
		t.Errorf("Parse = %x, want [2 1]", v)
	}
	if _, err := ops.Parse("0x1" + repeatZero(32)); err == nil {
		t.Error("Parse accepted a 129-bit value")
	}
	if ops512, _ := OpsFor(512); ops512.MulKaratsuba != nil {
		t.Error("512-bit ops expose MulKaratsuba")
	}
}

func TestOpsForUnsupportedWidth(t *testing.T) {
	t.Parallel()
	_, err := OpsFor(384)
	var verr apperrors.ValidationError
	if !errors.As(err, &verr) || verr.Field != "width" {
		t.Fatalf("OpsFor(384) error = %v, want width ValidationError", err)
	}
}
