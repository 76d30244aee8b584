package types

import (
	"fmt"
	"math/bits"

	"golang.org/x/exp/constraints"
	"lukechampine.com/uint128"
)

// Unsigned is the set of native integer types a supply figure can be expressed in.
// Arithmetic on supply figures is carried out in 128 bits and saturates when
// narrowed back to the native type, see Widen and Narrow.
type Unsigned interface {
	constraints.Unsigned
}

// Widen converts a native supply figure to 128 bits. It never loses precision.
func Widen[N Unsigned](n N) uint128.Uint128 {
	return uint128.From64(uint64(n))
}

// Narrow converts a 128-bit supply figure to the native type N,
// saturating at the largest value of N.
func Narrow[N Unsigned](v uint128.Uint128) N {
	limit := ^N(0)
	if v.Hi != 0 || v.Lo > uint64(limit) {
		return limit
	}
	return N(v.Lo)
}

// SaturatingSub returns a - b, or zero if b is larger than a.
func SaturatingSub(a, b uint128.Uint128) uint128.Uint128 {
	if a.Cmp(b) <= 0 {
		return uint128.Zero
	}
	return a.Sub(b)
}

// SaturatingAdd returns a + b, or uint128.Max if the sum overflows.
func SaturatingAdd(a, b uint128.Uint128) uint128.Uint128 {
	lo, carry := bits.Add64(a.Lo, b.Lo, 0)
	hi, carry := bits.Add64(a.Hi, b.Hi, carry)
	if carry != 0 {
		return uint128.Max
	}
	return uint128.Uint128{Lo: lo, Hi: hi}
}

// SaturatingMul64 returns a * m, or uint128.Max if the product overflows.
func SaturatingMul64(a uint128.Uint128, m uint64) uint128.Uint128 {
	carry, lo := bits.Mul64(a.Lo, m)
	overflow, hi := bits.Mul64(a.Hi, m)
	if overflow != 0 {
		return uint128.Max
	}
	hi, c := bits.Add64(hi, carry, 0)
	if c != 0 {
		return uint128.Max
	}
	return uint128.Uint128{Lo: lo, Hi: hi}
}

// ParseAmount parses a decimal supply figure. Underscores between digits are allowed
// to keep large literals readable, e.g. 7_777_777_777.
func ParseAmount(s string) (uint128.Uint128, error) {
	digits := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isDigit(c):
			digits = append(digits, c)
		case c == '_' && i > 0 && i < len(s)-1 && isDigit(s[i-1]) && isDigit(s[i+1]):
		default:
			return uint128.Zero, fmt.Errorf("invalid amount %q", s)
		}
	}
	if len(digits) == 0 {
		return uint128.Zero, fmt.Errorf("invalid amount %q", s)
	}
	v, err := uint128.FromString(string(digits))
	if err != nil {
		return uint128.Zero, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return v, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
