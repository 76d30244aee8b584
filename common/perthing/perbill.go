package perthing

import (
	"fmt"

	"lukechampine.com/uint128"
)

// BillionAccuracy is the denominator of Perbill.
const BillionAccuracy = 1_000_000_000

// Perbill is a fraction with denominator 10^9, in the range [0, 1].
// The zero value is zero.
type Perbill struct {
	parts uint32
}

// PerbillFromParts returns parts/10^9. Parts above 10^9 are clamped to one.
func PerbillFromParts(parts uint32) Perbill {
	return Perbill{parts: min(parts, BillionAccuracy)}
}

// PerbillFromRational returns the closest Perbill not above p/q.
// p is clamped to q and q == 0 yields zero.
func PerbillFromRational(p, q uint64) Perbill {
	return Perbill{parts: uint32(fromRational(p, q, BillionAccuracy))}
}

// PerbillOne returns the fraction 1.
func PerbillOne() Perbill {
	return Perbill{parts: BillionAccuracy}
}

// Parts returns the numerator over 10^9.
func (p Perbill) Parts() uint32 {
	return p.parts
}

// IsZero returns true if the fraction is zero.
func (p Perbill) IsZero() bool {
	return p.parts == 0
}

// IsOne returns true if the fraction is one.
func (p Perbill) IsOne() bool {
	return p.parts == BillionAccuracy
}

// MulFloor returns floor(p * x).
func (p Perbill) MulFloor(x uint128.Uint128) uint128.Uint128 {
	return mulRounded(x, uint64(p.parts), BillionAccuracy, Down)
}

// MulCeil returns ceil(p * x).
func (p Perbill) MulCeil(x uint128.Uint128) uint128.Uint128 {
	return mulRounded(x, uint64(p.parts), BillionAccuracy, Up)
}

// Mul returns the product of two fractions, rounded down.
func (p Perbill) Mul(other Perbill) Perbill {
	return Perbill{parts: uint32(uint64(p.parts) * uint64(other.parts) / BillionAccuracy)}
}

// SaturatingPow returns p raised to exp, rounded down after every multiplication.
// Zero and one are fixed points, including for exp == 0.
// For fractions below one the result reaches zero once the exponent is large enough.
func (p Perbill) SaturatingPow(exp uint) Perbill {
	return Perbill{parts: uint32(pow(uint64(p.parts), BillionAccuracy, exp))}
}

func (p Perbill) String() string {
	return fmt.Sprintf("%d.%09d", p.parts/BillionAccuracy, p.parts%BillionAccuracy)
}
