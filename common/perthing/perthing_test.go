package perthing

import (
	"testing"

	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"

	"github.com/socialnetwork/go-inflation/common/types"
)

func TestPerbillFromRational(t *testing.T) {
	for _, tc := range []struct {
		desc  string
		p, q  uint64
		parts uint32
	}{
		{desc: "inflation rate", p: 233_278, q: 1_000_000_000, parts: 233_278},
		{desc: "decay", p: 999_950_000, q: 1_000_000_000, parts: 999_950_000},
		{desc: "half", p: 1, q: 2, parts: 500_000_000},
		{desc: "third rounds down", p: 1, q: 3, parts: 333_333_333},
		{desc: "improper clamps to one", p: 5, q: 2, parts: BillionAccuracy},
		{desc: "zero denominator", p: 5, q: 0, parts: 0},
		{desc: "large terms are reduced", p: 1 << 62, q: 1 << 63, parts: 499_999_999},
		{desc: "max terms", p: ^uint64(0), q: ^uint64(0), parts: BillionAccuracy},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			require.Equal(t, tc.parts, PerbillFromRational(tc.p, tc.q).Parts())
		})
	}
}

func TestPercentFromRational(t *testing.T) {
	require.Equal(t, uint8(70), PercentFromRational(7, 10).Parts())
	require.Equal(t, uint8(33), PercentFromRational(1, 3).Parts())
	require.Equal(t, uint8(100), PercentFromRational(3, 2).Parts())
	require.True(t, PercentFromRational(1, 0).IsZero())
	require.True(t, PercentFromParts(200).IsOne())
	require.Equal(t, "70%", PercentFromRational(7, 10).String())
}

func TestPerbillFromParts(t *testing.T) {
	require.True(t, PerbillFromParts(0).IsZero())
	require.True(t, PerbillFromParts(BillionAccuracy).IsOne())
	require.True(t, PerbillFromParts(^uint32(0)).IsOne())
	require.Equal(t, PerbillOne(), PerbillFromParts(BillionAccuracy+1))
	require.Equal(t, "0.000233278", PerbillFromParts(233_278).String())
	require.Equal(t, "1.000000000", PerbillOne().String())
}

func TestMulRounding(t *testing.T) {
	rate := PerbillFromParts(233_278)
	for _, tc := range []struct {
		desc        string
		x           uint64
		floor, ceil uint64
	}{
		{desc: "zero", x: 0, floor: 0, ceil: 0},
		{desc: "below one unit", x: 1, floor: 0, ceil: 1},
		{desc: "exact", x: 1_000_000_000, floor: 233_278, ceil: 233_278},
		{desc: "remainder", x: 77_777_777, floor: 18_143, ceil: 18_144},
		{desc: "multiple of accuracy plus remainder", x: 10_000_000_001, floor: 2_332_780, ceil: 2_332_781},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			require.Equal(t, uint128.From64(tc.floor), rate.MulFloor(uint128.From64(tc.x)))
			require.Equal(t, uint128.From64(tc.ceil), rate.MulCeil(uint128.From64(tc.x)))
		})
	}
}

func TestPercentMulFloor(t *testing.T) {
	share := PercentFromRational(7, 10)
	require.Equal(t, uint128.From64(12_700), share.MulFloor(uint128.From64(18_144)))
	require.Equal(t, uint128.From64(5_444_444_443), share.MulFloor(uint128.From64(7_777_777_777)))
	require.Equal(t, uint128.From64(5_444_444_444), share.MulCeil(uint128.From64(7_777_777_777)))
	require.Equal(t, uint128.From64(178), share.MulFloor(uint128.From64(255)))
}

func TestMulNeverExceedsInput(t *testing.T) {
	for _, x := range []uint128.Uint128{uint128.Max, uint128.New(^uint64(0), 0), uint128.New(0, 1)} {
		require.Equal(t, x, PerbillOne().MulCeil(x))
		require.Equal(t, x, PerbillOne().MulFloor(x))
		require.Equal(t, x, PercentFromParts(100).MulCeil(x))
		require.True(t, PerbillFromParts(999_999_999).MulCeil(x).Cmp(x) <= 0)
		require.True(t, PerbillFromParts(0).MulCeil(x).IsZero())
	}
	require.Equal(t, ^uint32(0), types.Narrow[uint32](PerbillOne().MulCeil(types.Widen(^uint32(0)))))
}

func TestPerbillMul(t *testing.T) {
	decay := PerbillFromParts(999_950_000)
	require.Equal(t, uint32(999_900_002), decay.Mul(decay).Parts())
	require.Equal(t, decay, decay.Mul(PerbillOne()))
	require.True(t, decay.Mul(Perbill{}).IsZero())
}

func TestSaturatingPow(t *testing.T) {
	decay := PerbillFromParts(999_950_000)
	for _, tc := range []struct {
		desc  string
		base  Perbill
		exp   uint
		parts uint32
	}{
		{desc: "exponent zero", base: decay, exp: 0, parts: BillionAccuracy},
		{desc: "exponent one", base: decay, exp: 1, parts: 999_950_000},
		{desc: "exponent two", base: decay, exp: 2, parts: 999_900_002},
		{desc: "zero stays zero", base: Perbill{}, exp: 0, parts: 0},
		{desc: "one stays one", base: PerbillOne(), exp: 1 << 40, parts: BillionAccuracy},
		{desc: "decays to zero", base: decay, exp: 227_935, parts: 0},
		{desc: "last non-zero", base: decay, exp: 227_934, parts: 1},
		{desc: "huge exponent", base: decay, exp: 1 << 62, parts: 0},
		{desc: "half", base: PerbillFromRational(1, 2), exp: 3, parts: 125_000_000},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			require.Equal(t, tc.parts, tc.base.SaturatingPow(tc.exp).Parts())
		})
	}
}

func TestSaturatingPowMatchesRepeatedMul(t *testing.T) {
	decay := PerbillFromParts(999_950_000)
	acc := PerbillOne()
	for exp := uint(0); exp < 2000; exp++ {
		require.Equal(t, acc, decay.SaturatingPow(exp), "exp %d", exp)
		acc = acc.Mul(decay)
	}
}

func TestPercentSaturatingPow(t *testing.T) {
	share := PercentFromRational(7, 10)
	require.Equal(t, uint8(49), share.SaturatingPow(2).Parts())
	require.Equal(t, uint8(34), share.SaturatingPow(3).Parts())
	require.True(t, share.SaturatingPow(100).IsZero())
	require.True(t, PercentFromParts(100).SaturatingPow(5).IsOne())
}
