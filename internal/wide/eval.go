package wide

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "github.com/agbru/widearith/internal/errors"
	"github.com/agbru/widearith/internal/limb"
)

// Result is the outcome of a named operation. Value holds the limbs of a
// numeric result; it is sized by the operation (2N limbs for products,
// N+1 for mulscalar). Carry is set for add and sub. Number holds the
// result of cmp and clz, which have no Value.
type Result struct {
	Op       string
	Width    int
	Value    []uint64
	Carry    uint64
	HasCarry bool
	Number   int
}

// Hex renders Value as 0x-prefixed hexadecimal, or Number in decimal when
// there is no Value.
func (r Result) Hex() string {
	if r.Value == nil {
		return strconv.Itoa(r.Number)
	}
	return formatHex(r.Value)
}

// Decimal renders Value (or Number) in base 10.
func (r Result) Decimal() string {
	if r.Value == nil {
		return strconv.Itoa(r.Number)
	}
	return toBig(r.Value).String()
}

// BitLen returns the bit length of Value.
func (r Result) BitLen() int {
	if r.Value == nil {
		return 0
	}
	return len(r.Value)*limb.Bits - int(nlz(r.Value))
}

// Eval parses the operands and applies op. b is ignored by unary
// operations; for mulscalar it must fit in 64 bits. shift applies to shl
// and shr and must be below 64.
func (o *Ops) Eval(op, a, b string, shift uint) (Result, error) {
	op = strings.ToLower(op)
	res := Result{Op: op, Width: o.Width}

	x, err := o.Parse(a)
	if err != nil {
		return res, fmt.Errorf("operand a: %w", err)
	}

	switch op {
	case "sqr":
		res.Value = o.Square(x)
		return res, nil
	case "clz":
		res.Number = int(o.LeadingZeros(x))
		return res, nil
	case "shl", "shr":
		if shift >= limb.Bits {
			return res, apperrors.ValidationError{Field: "shift", Message: fmt.Sprintf("shift %d out of range [0, 64)", shift)}
		}
		if op == "shl" {
			res.Value = o.Lsh(x, shift)
		} else {
			res.Value = o.Rsh(x, shift)
		}
		return res, nil
	case "mulscalar":
		s, err := strconv.ParseUint(strings.ReplaceAll(strings.TrimSpace(b), "_", ""), 0, 64)
		if err != nil {
			return res, apperrors.ValidationError{Field: "b", Message: fmt.Sprintf("mulscalar needs a 64-bit operand: %v", err)}
		}
		res.Value = o.MulScalar(x, s)
		return res, nil
	}

	y, err := o.Parse(b)
	if err != nil {
		return res, fmt.Errorf("operand b: %w", err)
	}

	switch op {
	case "add":
		res.Value, res.Carry = o.Add(x, y)
		res.HasCarry = true
	case "sub":
		res.Value, res.Carry = o.Sub(x, y)
		res.HasCarry = true
	case "mul":
		res.Value = o.Mul(x, y)
	case "kmul":
		if o.MulKaratsuba == nil {
			return res, apperrors.ValidationError{Field: "op", Message: fmt.Sprintf("kmul is not defined for %d bits", o.Width)}
		}
		res.Value = o.MulKaratsuba(x, y)
	case "cmp":
		res.Number = o.Cmp(x, y)
	default:
		return res, apperrors.ValidationError{Field: "op", Message: fmt.Sprintf("unknown operation %q", op)}
	}
	return res, nil
}
