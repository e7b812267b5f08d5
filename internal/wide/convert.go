// This file holds the width-independent conversions between limb slices and
// bytes, strings and math/big values.

package wide

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	apperrors "github.com/agbru/widearith/internal/errors"
	"github.com/agbru/widearith/internal/limb"
)

// putBE writes x into b most significant byte first. len(b) must be 8*len(x).
func putBE(b []byte, x []uint64) {
	n := len(x)
	for i, v := range x {
		binary.BigEndian.PutUint64(b[(n-1-i)*8:], v)
	}
}

// putLE writes x into b least significant byte first.
func putLE(b []byte, x []uint64) {
	for i, v := range x {
		binary.LittleEndian.PutUint64(b[i*8:], v)
	}
}

// getBE fills z from the big-endian bytes b. len(b) must be 8*len(z).
func getBE(z []uint64, b []byte) {
	n := len(z)
	for i := range z {
		z[i] = binary.BigEndian.Uint64(b[(n-1-i)*8:])
	}
}

// getLE fills z from the little-endian bytes b.
func getLE(z []uint64, b []byte) {
	for i := range z {
		z[i] = binary.LittleEndian.Uint64(b[i*8:])
	}
}

// toBig converts x to a new big.Int. Going through bytes keeps this correct
// on 32-bit platforms where big.Word is narrower than a limb.
func toBig(x []uint64) *big.Int {
	b := make([]byte, 8*len(x))
	putBE(b, x)
	return new(big.Int).SetBytes(b)
}

// fromBig loads the low 64*len(z) bits of v into z and reports whether the
// conversion was exact. Negative values load zero and report false.
func fromBig(z []uint64, v *big.Int) bool {
	clear(z)
	if v.Sign() < 0 {
		return false
	}
	width := 8 * len(z)
	b := v.Bytes()
	accurate := len(b) <= width
	if !accurate {
		b = b[len(b)-width:]
	}
	buf := make([]byte, width)
	copy(buf[width-len(b):], b)
	getBE(z, buf)
	return accurate
}

// parseInto parses s as a decimal or 0x-prefixed hexadecimal number into z.
// Malformed input and values that do not fit are reported as
// ValidationErrors naming the target type.
func parseInto(z []uint64, s, typeName string) error {
	s = strings.ReplaceAll(strings.TrimSpace(s), "_", "")
	if s == "" {
		return apperrors.ValidationError{Field: typeName, Message: "empty value"}
	}
	if strings.HasPrefix(s, "-") {
		return apperrors.ValidationError{Field: typeName, Message: fmt.Sprintf("negative value %q", s)}
	}
	digits, base := s, 10
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		digits, base = s[2:], 16
	}
	// SetString tolerates a sign; operands are unsigned digits only.
	if digits == "" || digits[0] == '+' || digits[0] == '-' {
		return apperrors.ValidationError{Field: typeName, Message: fmt.Sprintf("invalid number %q", s)}
	}
	v, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return apperrors.ValidationError{Field: typeName, Message: fmt.Sprintf("invalid number %q", s)}
	}
	if !fromBig(z, v) {
		return apperrors.ValidationError{
			Field:   typeName,
			Message: fmt.Sprintf("value needs %d bits, %s holds %d", v.BitLen(), typeName, len(z)*limb.Bits),
		}
	}
	return nil
}

// formatHex renders x as 0x-prefixed hexadecimal without leading zeros.
func formatHex(x []uint64) string {
	top := len(x) - 1
	for top > 0 && x[top] == 0 {
		top--
	}
	var sb strings.Builder
	sb.Grow(2 + 16*(top+1))
	sb.WriteString("0x")
	sb.WriteString(strconv.FormatUint(x[top], 16))
	for i := top - 1; i >= 0; i-- {
		s := strconv.FormatUint(x[i], 16)
		sb.WriteString(strings.Repeat("0", 16-len(s)))
		sb.WriteString(s)
	}
	return sb.String()
}

// checkShift panics when n is not a valid in-limb shift count.
func checkShift(n uint) {
	if n >= limb.Bits {
		panic(fmt.Sprintf("wide: shift count %d out of range [0, 64)", n))
	}
}
