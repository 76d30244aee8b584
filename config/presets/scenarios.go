package presets

import (
	"lukechampine.com/uint128"

	"github.com/socialnetwork/go-inflation/config"
	"github.com/socialnetwork/go-inflation/inflation"
)

const genesisSupply = 77_777_777

func init() {
	register("genesis", genesis())
	register("billion", billion())
	register("overshoot", overshoot())
	register("compound", compound())
}

// genesis projects the first 100 eras of the genesis supply.
func genesis() config.Config {
	conf := config.DefaultConfig()
	conf.Projection.TotalTokens = uint128.From64(genesisSupply)
	conf.Projection.TotalIssuance = uint128.From64(genesisSupply)
	conf.Projection.From = 0
	conf.Projection.To = 100
	return conf
}

// billion has issuance far above the staked tokens, so the staker cap never applies.
func billion() config.Config {
	conf := genesis()
	conf.Projection.TotalIssuance = uint128.From64(1_000_000_000)
	return conf
}

// overshoot starts above the target, the catch-up era mints nothing.
func overshoot() config.Config {
	conf := genesis()
	conf.Projection.TotalIssuance = uint128.From64(10_000_000_000)
	conf.Projection.From = inflation.CatchUpEra - 10
	conf.Projection.To = inflation.CatchUpEra + 10
	return conf
}

// compound replays the whole schedule, adding every payout to the issuance.
func compound() config.Config {
	conf := genesis()
	conf.Projection.Compound = true
	conf.Projection.To = inflation.CatchUpEra + 1
	return conf
}
