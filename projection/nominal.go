package projection

import (
	"math/big"

	"github.com/ALTree/bigfloat"
	"lukechampine.com/uint128"

	"github.com/socialnetwork/go-inflation/common/perthing"
	"github.com/socialnetwork/go-inflation/common/types"
	"github.com/socialnetwork/go-inflation/inflation"
)

const nominalPrecision = 256

func newFloat() *big.Float {
	return new(big.Float).SetPrec(nominalPrecision)
}

func perbillFloat(p perthing.Perbill) *big.Float {
	f := newFloat().SetUint64(uint64(p.Parts()))
	return f.Quo(f, newFloat().SetUint64(perthing.BillionAccuracy))
}

func amountFloat(v uint128.Uint128) *big.Float {
	return newFloat().SetInt(v.Big())
}

// nominalDecay returns DecayBase^era without rounding.
func nominalDecay(era types.EraIndex) *big.Float {
	if era == 0 {
		return newFloat().SetUint64(1)
	}
	return bigfloat.Pow(perbillFloat(inflation.DecayBase()), newFloat().SetUint64(uint64(era)))
}

// Nominal returns the maximum payout of the era without any rounding:
// issuance * InflationRate * DecayBase^era in the decaying phase, and the
// exact catch-up or zero amount afterwards.
func Nominal(era types.EraIndex, issuance uint128.Uint128) *big.Float {
	switch inflation.PhaseAt(era) {
	case inflation.Decaying:
		return nominalDecaying(nominalDecay(era), amountFloat(issuance))
	case inflation.CatchUp:
		return amountFloat(types.SaturatingSub(uint128.From64(inflation.TargetIssuance), issuance))
	default:
		return newFloat()
	}
}

func nominalDecaying(decay, issuance *big.Float) *big.Float {
	v := newFloat().Mul(issuance, perbillFloat(inflation.InflationRate()))
	return v.Mul(v, decay)
}
