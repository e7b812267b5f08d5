package verify

import (
	"fmt"
	"slices"

	apperrors "github.com/agbru/widearith/internal/errors"
	"github.com/agbru/widearith/internal/simd"
	"github.com/agbru/widearith/internal/wide"
)

// Suite is a named family of checks. Check verifies one case drawn from
// src and returns an apperrors.MismatchError on disagreement.
type Suite struct {
	Name  string
	Width int
	Check func(src *Source) error
}

func mismatch(op string, width int, src *Source, operands ...[]uint64) error {
	input := fmt.Sprintf("case %d:", src.Index())
	for i, x := range operands {
		input += fmt.Sprintf(" %c=%s", 'a'+i, formatLimbs(x))
	}
	return apperrors.MismatchError{Operation: op, Width: width, Input: input}
}

// MulSuite checks MulWide against the oracle, Karatsuba against schoolbook
// where it exists, Square against MulWide(a, a), and MulScalar.
func MulSuite(ops *wide.Ops, oracle Oracle) Suite {
	n, w := ops.Limbs, ops.Width
	return Suite{
		Name:  fmt.Sprintf("mul/%d", w),
		Width: w,
		Check: func(src *Source) error {
			a, b := src.Operand(n), src.Operand(n)
			p := ops.MulWide(a, b)
			if !slices.Equal(p, oracle.Mul(a, b)) {
				return mismatch("mul", w, src, a, b)
			}
			if ops.MulKaratsuba != nil && !slices.Equal(ops.MulKaratsuba(a, b), p) {
				return mismatch("kmul", w, src, a, b)
			}
			if !slices.Equal(ops.Mul(a, b), p) {
				return mismatch("mulauto", w, src, a, b)
			}
			if !slices.Equal(ops.Square(a), ops.MulWide(a, a)) {
				return mismatch("sqr", w, src, a)
			}
			s := []uint64{b[0]}
			if !slices.Equal(ops.MulScalar(a, s[0]), oracle.Mul(a, s)) {
				return mismatch("mulscalar", w, src, a, s)
			}
			return nil
		},
	}
}

// CarrySuite checks Add and Sub against the oracle and the identity
// (a + b) - b = a with matching carry and borrow.
func CarrySuite(ops *wide.Ops, oracle Oracle) Suite {
	n, w := ops.Limbs, ops.Width
	return Suite{
		Name:  fmt.Sprintf("carry/%d", w),
		Width: w,
		Check: func(src *Source) error {
			a, b := src.Operand(n), src.Operand(n)
			sum, carry := ops.Add(a, b)
			wantSum, wantCarry := oracle.Add(a, b)
			if carry != wantCarry || !slices.Equal(sum, wantSum) {
				return mismatch("add", w, src, a, b)
			}
			diff, borrow := ops.Sub(a, b)
			wantDiff, wantBorrow := oracle.Sub(a, b)
			if borrow != wantBorrow || !slices.Equal(diff, wantDiff) {
				return mismatch("sub", w, src, a, b)
			}
			back, borrowBack := ops.Sub(sum, b)
			if borrowBack != carry || !slices.Equal(back, a) {
				return mismatch("add/sub round trip", w, src, a, b)
			}
			return nil
		},
	}
}

// ShiftSuite checks Lsh and Rsh against the oracle and that a right shift
// undoes a left shift up to the bits shifted out.
func ShiftSuite(ops *wide.Ops, oracle Oracle) Suite {
	n, w := ops.Limbs, ops.Width
	return Suite{
		Name:  fmt.Sprintf("shift/%d", w),
		Width: w,
		Check: func(src *Source) error {
			a := src.Operand(n)
			k := src.Shift()
			l := ops.Lsh(a, k)
			if !slices.Equal(l, oracle.Lsh(a, k)) {
				return mismatch(fmt.Sprintf("shl %d", k), w, src, a)
			}
			if !slices.Equal(ops.Rsh(a, k), oracle.Rsh(a, k)) {
				return mismatch(fmt.Sprintf("shr %d", k), w, src, a)
			}
			// Clearing the top k bits of a must equal (a << k) >> k.
			masked := slices.Clone(a)
			if k > 0 {
				masked[n-1] &= ^uint64(0) >> k
			}
			if !slices.Equal(ops.Rsh(l, k), masked) {
				return mismatch(fmt.Sprintf("shift round trip %d", k), w, src, a)
			}
			return nil
		},
	}
}

// CompareSuite checks that exactly one of LessThan, Equal and GreaterThan
// holds, that Cmp agrees with them and with the oracle, and the
// LeadingZeros, IsZero and IsEven predicates.
func CompareSuite(ops *wide.Ops, oracle Oracle) Suite {
	n, w := ops.Limbs, ops.Width
	return Suite{
		Name:  fmt.Sprintf("compare/%d", w),
		Width: w,
		Check: func(src *Source) error {
			a, b := src.Operand(n), src.Operand(n)
			if src.Index()%5 == 4 {
				b = slices.Clone(a)
			}
			lt, eq, gt := ops.LessThan(a, b), ops.Equal(a, b), ops.GreaterThan(a, b)
			count := 0
			for _, v := range []bool{lt, eq, gt} {
				if v {
					count++
				}
			}
			c := ops.Cmp(a, b)
			if count != 1 || c != oracle.Cmp(a, b) || (c < 0) != lt || (c == 0) != eq || (c > 0) != gt {
				return mismatch("cmp", w, src, a, b)
			}
			bitLen := oracle.BitLen(a)
			if int(ops.LeadingZeros(a)) != w-bitLen {
				return mismatch("clz", w, src, a)
			}
			if ops.IsZero(a) != (bitLen == 0) || ops.IsEven(a) != (a[0]&1 == 0) {
				return mismatch("predicates", w, src, a)
			}
			return nil
		},
	}
}

// VectorSuite checks every operation of hw against the scalar kernel.
func VectorSuite(hw simd.Kernel) Suite {
	sc := simd.Scalar()
	name := "vector/" + hw.Name()
	return Suite{
		Name:  name,
		Width: simd.Lanes * 64,
		Check: func(src *Source) error {
			a, b := src.Vec(), src.Vec()
			counts, idx := src.Counts(), src.Vec()
			imm := uint(src.Uint64() % 80)
			m := simd.Mask(src.Uint64())

			fail := func(op string) error {
				return mismatch(op, simd.Lanes*64, src, a[:], b[:])
			}
			switch {
			case hw.Xor(a, b) != sc.Xor(a, b):
				return fail("xor")
			case hw.And(a, b) != sc.And(a, b):
				return fail("and")
			case hw.Or(a, b) != sc.Or(a, b):
				return fail("or")
			case hw.Add(a, b) != sc.Add(a, b):
				return fail("add")
			case hw.Sub(a, b) != sc.Sub(a, b):
				return fail("sub")
			case hw.ShlImm(a, imm) != sc.ShlImm(a, imm):
				return fail(fmt.Sprintf("shl_imm %d", imm))
			case hw.ShrImm(a, imm) != sc.ShrImm(a, imm):
				return fail(fmt.Sprintf("shr_imm %d", imm))
			case hw.ShlVar(a, counts) != sc.ShlVar(a, counts):
				return fail("shl_var")
			case hw.ShrVar(a, counts) != sc.ShrVar(a, counts):
				return fail("shr_var")
			case hw.Equal(a, b) != sc.Equal(a, b) || !hw.Equal(a, a):
				return fail("eq")
			case hw.LessMask(a, b) != sc.LessMask(a, b):
				return fail("lt")
			case hw.GreaterMask(a, b) != sc.GreaterMask(a, b):
				return fail("gt")
			case hw.Min(a, b) != sc.Min(a, b):
				return fail("min")
			case hw.Max(a, b) != sc.Max(a, b):
				return fail("max")
			case hw.Blend(a, b, m) != sc.Blend(a, b, m):
				return fail(fmt.Sprintf("blend %08b", m))
			case hw.Permute(a, idx) != sc.Permute(a, idx):
				return fail("permute")
			case hw.Splat(a[0]) != sc.Splat(a[0]) || hw.Zero() != sc.Zero():
				return fail("splat")
			}
			return nil
		},
	}
}

// ArithmeticSuites returns the mul, carry, shift and compare suites for
// each width.
func ArithmeticSuites(widths []int, oracle Oracle) ([]Suite, error) {
	var suites []Suite
	for _, w := range widths {
		ops, err := wide.OpsFor(w)
		if err != nil {
			return nil, err
		}
		suites = append(suites,
			MulSuite(ops, oracle),
			CarrySuite(ops, oracle),
			ShiftSuite(ops, oracle),
			CompareSuite(ops, oracle),
		)
	}
	return suites, nil
}
