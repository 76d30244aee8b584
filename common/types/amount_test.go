package types

import (
	"math"
	"math/big"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
)

func TestNarrow(t *testing.T) {
	require.Equal(t, uint32(math.MaxUint32), Narrow[uint32](uint128.From64(math.MaxUint32+1)))
	require.Equal(t, uint32(7), Narrow[uint32](uint128.From64(7)))
	require.Equal(t, uint64(math.MaxUint64), Narrow[uint64](uint128.Max))
	require.Equal(t, uint64(math.MaxUint64), Narrow[uint64](uint128.New(0, 1)))
	require.Equal(t, uint8(255), Narrow[uint8](uint128.From64(256)))
	require.Equal(t, uint16(0), Narrow[uint16](uint128.Zero))

	type balance uint64
	require.Equal(t, balance(math.MaxUint64), Narrow[balance](uint128.Max))
}

func TestWidenNarrowRoundTrip(t *testing.T) {
	f := fuzz.NewWithSeed(1001)
	for i := 0; i < 1000; i++ {
		var v uint64
		f.Fuzz(&v)
		require.Equal(t, v, Narrow[uint64](Widen(v)))
	}
}

func TestSaturatingSub(t *testing.T) {
	for _, tc := range []struct {
		desc     string
		a, b     uint128.Uint128
		expected uint128.Uint128
	}{
		{desc: "regular", a: uint128.From64(10), b: uint128.From64(3), expected: uint128.From64(7)},
		{desc: "equal", a: uint128.From64(10), b: uint128.From64(10), expected: uint128.Zero},
		{desc: "negative", a: uint128.From64(3), b: uint128.From64(10), expected: uint128.Zero},
		{desc: "borrow", a: uint128.New(0, 1), b: uint128.From64(1), expected: uint128.From64(math.MaxUint64)},
		{desc: "max", a: uint128.Zero, b: uint128.Max, expected: uint128.Zero},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			require.Equal(t, tc.expected, SaturatingSub(tc.a, tc.b))
		})
	}
}

func TestSaturatingAdd(t *testing.T) {
	require.Equal(t, uint128.New(0, 1), SaturatingAdd(uint128.From64(math.MaxUint64), uint128.From64(1)))
	require.Equal(t, uint128.Max, SaturatingAdd(uint128.Max, uint128.From64(1)))
	require.Equal(t, uint128.Max, SaturatingAdd(uint128.Max, uint128.Max))
	require.Equal(t, uint128.From64(5), SaturatingAdd(uint128.From64(2), uint128.From64(3)))
}

func TestSaturatingMul64(t *testing.T) {
	require.Equal(t, uint128.Zero, SaturatingMul64(uint128.Max, 0))
	require.Equal(t, uint128.Max, SaturatingMul64(uint128.Max, 1))
	require.Equal(t, uint128.Max, SaturatingMul64(uint128.Max, 2))
	require.Equal(t, uint128.Max, SaturatingMul64(uint128.New(0, math.MaxUint64), 2))
	require.Equal(t, uint128.New(math.MaxUint64-1, 1), SaturatingMul64(uint128.From64(math.MaxUint64), 2))
	require.Equal(t, uint128.Max, SaturatingMul64(uint128.New(math.MaxUint64, math.MaxUint64>>1), 3))
}

func TestSaturatingArithmeticAgreesWithWideArithmetic(t *testing.T) {
	f := fuzz.NewWithSeed(42)
	for i := 0; i < 1000; i++ {
		var a, b uint128.Uint128
		var m uint64
		f.Fuzz(&a)
		f.Fuzz(&b)
		f.Fuzz(&m)

		sum := new(big.Int).Add(a.Big(), b.Big())
		if sum.Cmp(uint128.Max.Big()) > 0 {
			require.Equal(t, uint128.Max, SaturatingAdd(a, b))
		} else {
			require.Equal(t, uint128.FromBig(sum), SaturatingAdd(a, b))
		}

		prod := new(big.Int).Mul(a.Big(), new(big.Int).SetUint64(m))
		if prod.Cmp(uint128.Max.Big()) > 0 {
			require.Equal(t, uint128.Max, SaturatingMul64(a, m))
		} else {
			require.Equal(t, uint128.FromBig(prod), SaturatingMul64(a, m))
		}

		if a.Cmp(b) > 0 {
			require.Equal(t, uint128.FromBig(new(big.Int).Sub(a.Big(), b.Big())), SaturatingSub(a, b))
		} else {
			require.True(t, SaturatingSub(a, b).IsZero())
		}
	}
}

func TestParseAmount(t *testing.T) {
	for _, tc := range []struct {
		input    string
		expected uint128.Uint128
		err      bool
	}{
		{input: "0", expected: uint128.Zero},
		{input: "77777777", expected: uint128.From64(77_777_777)},
		{input: "7_777_777_777", expected: uint128.From64(7_777_777_777)},
		{input: "340282366920938463463374607431768211455", expected: uint128.Max},
		{input: "340282366920938463463374607431768211456", err: true},
		{input: "", err: true},
		{input: "_1", err: true},
		{input: "1_", err: true},
		{input: "1__2", err: true},
		{input: "7_777__777", err: true},
		{input: "_", err: true},
		{input: "1_2", expected: uint128.From64(12)},
		{input: "-1", err: true},
		{input: "1.5", err: true},
	} {
		t.Run(tc.input, func(t *testing.T) {
			v, err := ParseAmount(tc.input)
			if tc.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, v)
		})
	}
}
