// Package inflation computes the amount minted in every era.
//
// Issuance follows three phases. Until CatchUpEra the maximum payout is
// 0.0233278% of the total issuance, decayed by 0.005% per era, and stakers
// receive at most 70% of it. In CatchUpEra a single mint tops the total
// issuance up to TargetIssuance. After CatchUpEra nothing is minted.
package inflation

import (
	"lukechampine.com/uint128"

	"github.com/socialnetwork/go-inflation/common/perthing"
	"github.com/socialnetwork/go-inflation/common/types"
)

const (
	// CatchUpEra is the only era in which the catch-up mint happens.
	// No era after it mints.
	CatchUpEra types.EraIndex = 360_000
	// TargetIssuance is the total issuance reached by the catch-up mint.
	TargetIssuance uint64 = 7_777_777_777
)

var (
	inflationRate = perthing.PerbillFromRational(233_278, 1_000_000_000)
	decayBase     = perthing.PerbillFromRational(999_950_000, 1_000_000_000)
	stakerShare   = perthing.PercentFromRational(7, 10)

	targetIssuance = uint128.From64(TargetIssuance)
)

// InflationRate is the fraction of the supply minted in era 0.
func InflationRate() perthing.Perbill { return inflationRate }

// DecayBase is the per-era decay factor of the inflation rate.
func DecayBase() perthing.Perbill { return decayBase }

// StakerShare is the largest share of the maximum payout credited to stakers.
func StakerShare() perthing.Percent { return stakerShare }

// Decay returns DecayBase raised to era.
// It takes one multiplication per era and is recomputed on every call.
func Decay(era types.EraIndex) perthing.Perbill {
	return decayBase.SaturatingPow(uint(era))
}

// ComputeTotalPayout returns the payout to stakers and the maximum payout for an era,
// given the stake-weighted total of tokens and the total issuance.
//
// All arithmetic is carried out in 128 bits and the results saturate at the
// largest value of N. The catch-up target is saturated to N before the
// issuance is subtracted from it. The function never fails and is safe for
// concurrent use.
func ComputeTotalPayout[N types.Unsigned](era types.EraIndex, totalTokens, totalIssuance N) (N, N) {
	target := types.Widen(types.Narrow[N](targetIssuance))
	staker, maximum := computeTotalPayout(era, types.Widen(totalTokens), types.Widen(totalIssuance), target)
	return types.Narrow[N](staker), types.Narrow[N](maximum)
}

// ComputeTotalPayout128 is ComputeTotalPayout for 128-bit amounts.
func ComputeTotalPayout128(era types.EraIndex, totalTokens, totalIssuance uint128.Uint128) (uint128.Uint128, uint128.Uint128) {
	return computeTotalPayout(era, totalTokens, totalIssuance, targetIssuance)
}

// Payout is ComputeTotalPayout128 returning a Payout record.
func Payout(era types.EraIndex, totalTokens, totalIssuance uint128.Uint128) types.Payout {
	staker, maximum := ComputeTotalPayout128(era, totalTokens, totalIssuance)
	return types.Payout{Era: era, Staker: staker, Maximum: maximum}
}

func computeTotalPayout(
	era types.EraIndex,
	totalTokens, totalIssuance, target uint128.Uint128,
) (uint128.Uint128, uint128.Uint128) {
	switch PhaseAt(era) {
	case Decaying:
		return decayingPayout(decayBase.SaturatingPow(uint(era)), totalTokens, totalIssuance)
	case CatchUp:
		return catchUpPayout(totalIssuance, target)
	default:
		return uint128.Zero, uint128.Zero
	}
}

func decayingPayout(decay perthing.Perbill, totalTokens, totalIssuance uint128.Uint128) (uint128.Uint128, uint128.Uint128) {
	staker := inflationRate.MulCeil(decay.MulCeil(totalTokens))
	maximum := inflationRate.MulCeil(decay.MulCeil(totalIssuance))
	stakerMaximum := stakerShare.MulFloor(maximum)
	// strictly greater: a payout equal to the cap is returned as computed
	if staker.Cmp(stakerMaximum) > 0 {
		return stakerMaximum, maximum
	}
	return staker, maximum
}

func catchUpPayout(totalIssuance, target uint128.Uint128) (uint128.Uint128, uint128.Uint128) {
	maximum := types.SaturatingSub(target, totalIssuance)
	return stakerShare.MulFloor(maximum), maximum
}
