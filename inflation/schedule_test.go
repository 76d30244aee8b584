package inflation

import (
	"testing"

	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"

	"github.com/socialnetwork/go-inflation/common/types"
)

func TestScheduleMatchesComputeTotalPayout(t *testing.T) {
	t.Parallel()
	tokens := uint128.From64(totalTokens)
	issuance := uint128.From64(1_000_000_000)

	schedule := NewSchedule(0)
	for schedule.Era() <= CatchUpEra+2 {
		era := schedule.Era()
		payout := schedule.Next(tokens, issuance)
		require.Equal(t, era, payout.Era)
		// the power is linear in the era, so only compare a sample against the direct computation
		if era%4999 == 0 || era+3 >= CatchUpEra || era <= 20 || era == 227_934 || era == 227_935 {
			staker, maximum := ComputeTotalPayout128(era, tokens, issuance)
			require.Equal(t, staker, payout.Staker, "era %d", era)
			require.Equal(t, maximum, payout.Maximum, "era %d", era)
		}
	}
}

func TestScheduleStartsAnywhere(t *testing.T) {
	t.Parallel()
	tokens := uint128.From64(totalTokens)
	for _, start := range []types.EraIndex{0, 3, 10_000, CatchUpEra - 1, CatchUpEra, CatchUpEra + 1} {
		schedule := NewSchedule(start)
		require.Equal(t, start, schedule.Era())
		require.Equal(t, Decay(start), schedule.Decay())
		for i := 0; i < 3; i++ {
			era := schedule.Era()
			require.Equal(t, Payout(era, tokens, tokens), schedule.Next(tokens, tokens))
		}
	}
}

func TestScheduleStopsAtLastEra(t *testing.T) {
	t.Parallel()
	schedule := NewSchedule(types.LastEra)
	for i := 0; i < 2; i++ {
		payout := schedule.Next(uint128.Max, uint128.Zero)
		require.Equal(t, types.LastEra, payout.Era)
		require.True(t, payout.Maximum.IsZero())
	}
}
