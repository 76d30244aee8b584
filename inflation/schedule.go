package inflation

import (
	"lukechampine.com/uint128"

	"github.com/socialnetwork/go-inflation/common/perthing"
	"github.com/socialnetwork/go-inflation/common/types"
)

// Schedule walks the issuance schedule era by era.
//
// Decay(era+1) is Decay(era) multiplied by DecayBase and rounded down, so a
// schedule carries the decay factor forward instead of raising DecayBase to
// the era on every call. Results are identical to ComputeTotalPayout128.
// Schedule is not safe for concurrent use.
type Schedule struct {
	era   types.EraIndex
	decay perthing.Perbill
}

// NewSchedule returns a schedule positioned at start.
func NewSchedule(start types.EraIndex) *Schedule {
	s := &Schedule{era: start}
	if PhaseAt(start) == Decaying {
		s.decay = Decay(start)
	}
	return s
}

// Era returns the era that the next call to Next computes.
func (s *Schedule) Era() types.EraIndex {
	return s.era
}

// Decay returns the decay factor of the current era. It is zero once the
// decaying phase is over.
func (s *Schedule) Decay() perthing.Perbill {
	return s.decay
}

// Next computes the payout of the current era and advances to the next one.
// The schedule stays at types.LastEra once it gets there.
func (s *Schedule) Next(totalTokens, totalIssuance uint128.Uint128) types.Payout {
	payout := types.Payout{Era: s.era}
	if PhaseAt(s.era) == Decaying {
		payout.Staker, payout.Maximum = decayingPayout(s.decay, totalTokens, totalIssuance)
		s.decay = s.decay.Mul(decayBase)
	} else {
		payout.Staker, payout.Maximum = computeTotalPayout(s.era, totalTokens, totalIssuance, targetIssuance)
		s.decay = perthing.Perbill{}
	}
	if s.era != types.LastEra {
		s.era++
	}
	return payout
}
