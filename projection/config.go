package projection

import (
	"lukechampine.com/uint128"

	"github.com/socialnetwork/go-inflation/common/types"
)

// Config describes the supply and the range of eras to project.
type Config struct {
	// TotalTokens is the stake-weighted total of tokens used for every era.
	TotalTokens uint128.Uint128 `mapstructure:"total-tokens"`
	// TotalIssuance is the total issuance before the first projected era.
	TotalIssuance uint128.Uint128 `mapstructure:"total-issuance"`
	// From is the first projected era.
	From types.EraIndex `mapstructure:"from"`
	// To is the era after the last projected one.
	To types.EraIndex `mapstructure:"to"`
	// Compound adds the maximum payout of every era to the issuance used
	// for the next era, as the accounting layer does. Otherwise every era
	// is computed with TotalIssuance.
	Compound bool `mapstructure:"compound"`
}

// DefaultConfig returns the genesis supply projected over the first 100 eras.
func DefaultConfig() Config {
	return Config{
		TotalTokens:   uint128.From64(77_777_777),
		TotalIssuance: uint128.From64(77_777_777),
		From:          0,
		To:            100,
	}
}
