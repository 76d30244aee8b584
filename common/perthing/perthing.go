// Package perthing implements exact fixed-point fractions over a fixed
// denominator (billion and hundred). All multiplications take an explicit
// rounding direction and saturate instead of wrapping.
package perthing

import (
	"lukechampine.com/uint128"

	"github.com/socialnetwork/go-inflation/common/types"
)

// Rounding selects the direction in which a product is rounded.
type Rounding uint8

const (
	// Down rounds towards zero.
	Down Rounding = iota
	// Up rounds away from zero.
	Up
)

// fromRational returns the parts out of accuracy closest to p/q from below.
// Both terms are first reduced so that q fits into accuracy, which keeps
// p*accuracy within 64 bits.
func fromRational(p, q, accuracy uint64) uint64 {
	if q == 0 {
		return 0
	}
	p = min(p, q)
	factor := q / accuracy
	if q%accuracy != 0 {
		factor++
	}
	factor = max(factor, 1)
	qr := q / factor
	pr := p / factor
	return pr * accuracy / qr
}

// mulRounded returns x * parts / accuracy with the requested rounding.
// The whole multiples of accuracy are multiplied exactly, only the remainder
// is rounded, so the result never exceeds x for parts <= accuracy.
func mulRounded(x uint128.Uint128, parts, accuracy uint64, rounding Rounding) uint128.Uint128 {
	quo, rem := x.QuoRem64(accuracy)
	// rem < accuracy and parts <= accuracy, so the product fits for both
	// accuracies used here.
	scaled := rem * parts
	part := scaled / accuracy
	if rounding == Up && scaled%accuracy != 0 {
		part++
	}
	return types.SaturatingAdd(types.SaturatingMul64(quo, parts), uint128.From64(part))
}

// pow raises parts/accuracy to exp by multiplying one by the fraction exp times,
// rounding down after every step. Zero and one are returned unchanged.
// The loop stops as soon as the accumulator reaches zero, which for any
// fraction below one happens within a bounded number of steps.
func pow(parts, accuracy uint64, exp uint) uint64 {
	if parts == 0 || parts == accuracy {
		return parts
	}
	acc := accuracy
	for ; exp > 0 && acc != 0; exp-- {
		acc = acc * parts / accuracy
	}
	return acc
}
