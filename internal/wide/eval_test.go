package wide

import (
	"errors"
	"testing"

	apperrors "github.com/agbru/widearith/internal/errors"
)

func TestOpsEval(t *testing.T) {
	t.Parallel()
	maxHex := "0xffffffffffffffffffffffffffffffff"

	tests := []struct {
		name      string
		width     int
		op, a, b  string
		shift     uint
		wantHex   string
		wantCarry uint64
		hasCarry  bool
	}{
		{"add carry out", 128, "add", maxHex, "1", 0, "0x0", 1, true},
		{"sub borrow", 128, "sub", "0", "1", 0, maxHex, 1, true},
		{"add decimal", 256, "add", "40", "2", 0, "0x2a", 0, true},
		{"mul full product", 128, "mul", maxHex, maxHex, 0,
			"0xfffffffffffffffffffffffffffffffe00000000000000000000000000000001", 0, false},
		{"kmul", 256, "kmul", "0x10000000000000000", "0x10000000000000000", 0, "0x100000000000000000000000000000000", 0, false},
		{"sqr", 512, "sqr", "3", "", 0, "0x9", 0, false},
		{"mulscalar", 128, "mulscalar", maxHex, "2", 0, "0x1fffffffffffffffffffffffffffffffe", 0, false},
		{"shl across limbs", 128, "shl", "0x8000000000000000", "", 1, "0x10000000000000000", 0, false},
		{"shr", 1024, "shr", "0x100", "", 4, "0x10", 0, false},
		{"cmp less", 128, "cmp", "1", "2", 0, "-1", 0, false},
		{"clz one", 256, "clz", "1", "", 0, "255", 0, false},
		{"clz zero", 128, "clz", "0", "", 0, "128", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ops, err := OpsFor(tt.width)
			if err != nil {
				t.Fatal(err)
			}
			res, err := ops.Eval(tt.op, tt.a, tt.b, tt.shift)
			if err != nil {
				t.Fatalf("Eval: %v", err)
			}
			if got := res.Hex(); got != tt.wantHex {
				t.Errorf("Hex() = %s, want %s", got, tt.wantHex)
			}
			if res.HasCarry != tt.hasCarry || res.Carry != tt.wantCarry {
				t.Errorf("carry = %d (has %v), want %d (has %v)", res.Carry, res.HasCarry, tt.wantCarry, tt.hasCarry)
			}
		})
	}
}

func TestOpsEvalErrors(t *testing.T) {
	t.Parallel()
	ops512, _ := OpsFor(512)
	ops128, _ := OpsFor(128)

	tests := []struct {
		name     string
		ops      *Ops
		op, a, b string
		shift    uint
	}{
		{"kmul above 256", ops512, "kmul", "1", "1", 0},
		{"shift too large", ops128, "shl", "1", "", 64},
		{"bad operand", ops128, "add", "0xzz", "1", 0},
		{"operand too wide", ops128, "add", "0x1" + repeatZero(32), "1", 0},
		{"mulscalar too wide", ops128, "mulscalar", "1", "0x10000000000000000", 0},
		{"unknown op", ops128, "div", "1", "1", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := tt.ops.Eval(tt.op, tt.a, tt.b, tt.shift)
			var ve apperrors.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestResultDecimalAndBitLen(t *testing.T) {
	t.Parallel()
	ops, _ := OpsFor(128)
	res, err := ops.Eval("mul", "1000000007", "1000000009", 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Decimal(); got != "1000000016000000063" {
		t.Errorf("Decimal() = %s", got)
	}
	if got := res.BitLen(); got != 60 {
		t.Errorf("BitLen() = %d, want 60", got)
	}
}
