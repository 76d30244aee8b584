package projection

import (
	"math/big"

	"github.com/prometheus/client_golang/prometheus"
	"lukechampine.com/uint128"

	"github.com/socialnetwork/go-inflation/common/types"
	"github.com/socialnetwork/go-inflation/inflation"
	"github.com/socialnetwork/go-inflation/metrics"
)

const subsystem = "projection"

var (
	erasProjected = metrics.NewCounter(
		"eras_total",
		subsystem,
		"Number of projected eras",
		[]string{"phase"},
	)
	minted = metrics.NewCounter(
		"minted_total",
		subsystem,
		"Amount minted by projected eras",
		[]string{"kind"},
	)
	mintedStaker   = minted.WithLabelValues("staker")
	mintedTreasury = minted.WithLabelValues("treasury")

	payoutSize = metrics.NewHistogramWithBuckets(
		"payout_maximum",
		subsystem,
		"Distribution of the maximum payout of projected eras",
		[]string{"phase"},
		prometheus.ExponentialBuckets(1, 10, 12),
	)

	issuanceGauge = metrics.NewGauge(
		"issuance",
		subsystem,
		"Total issuance after the last projected era",
		[]string{},
	).WithLabelValues()
)

// amounts are reported as float64 and lose precision above 2^53.
func toFloat64(v uint128.Uint128) float64 {
	f, _ := new(big.Float).SetInt(v.Big()).Float64()
	return f
}

func recordPayout(phase inflation.Phase, payout types.Payout) {
	erasProjected.WithLabelValues(phase.String()).Inc()
	payoutSize.WithLabelValues(phase.String()).Observe(toFloat64(payout.Maximum))
	mintedStaker.Add(toFloat64(payout.Staker))
	mintedTreasury.Add(toFloat64(payout.Treasury()))
}

func recordIssuance(issuance uint128.Uint128) {
	issuanceGauge.Set(toFloat64(issuance))
}
