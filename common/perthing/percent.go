package perthing

import (
	"fmt"

	"lukechampine.com/uint128"
)

// HundredAccuracy is the denominator of Percent.
const HundredAccuracy = 100

// Percent is a fraction with denominator 100, in the range [0, 1].
type Percent struct {
	parts uint8
}

// PercentFromParts returns parts/100. Parts above 100 are clamped to one.
func PercentFromParts(parts uint8) Percent {
	return Percent{parts: min(parts, HundredAccuracy)}
}

// PercentFromRational returns the closest Percent not above p/q.
func PercentFromRational(p, q uint64) Percent {
	return Percent{parts: uint8(fromRational(p, q, HundredAccuracy))}
}

// Parts returns the numerator over 100.
func (p Percent) Parts() uint8 {
	return p.parts
}

func (p Percent) IsZero() bool {
	return p.parts == 0
}

func (p Percent) IsOne() bool {
	return p.parts == HundredAccuracy
}

// MulFloor returns floor(p * x).
func (p Percent) MulFloor(x uint128.Uint128) uint128.Uint128 {
	return mulRounded(x, uint64(p.parts), HundredAccuracy, Down)
}

// MulCeil returns ceil(p * x).
func (p Percent) MulCeil(x uint128.Uint128) uint128.Uint128 {
	return mulRounded(x, uint64(p.parts), HundredAccuracy, Up)
}

// SaturatingPow returns p raised to exp, see Perbill.SaturatingPow.
func (p Percent) SaturatingPow(exp uint) Percent {
	return Percent{parts: uint8(pow(uint64(p.parts), HundredAccuracy, exp))}
}

func (p Percent) String() string {
	return fmt.Sprintf("%d%%", p.parts)
}
