// Package types defines the types shared by the payout calculator and its consumers.
package types

import (
	"math"
	"strconv"

	"github.com/spacemeshos/go-scale"
	"go.uber.org/zap"
)

// EraIndex is the index of an accounting era. The first era is 0.
type EraIndex uint32

// LastEra is the largest representable era.
const LastEra = EraIndex(math.MaxUint32)

// Uint32 returns the era as uint32.
func (e EraIndex) Uint32() uint32 {
	return uint32(e)
}

// Add returns the era that is n eras after e, saturating at LastEra.
func (e EraIndex) Add(n uint32) EraIndex {
	if uint64(e)+uint64(n) > uint64(LastEra) {
		return LastEra
	}
	return e + EraIndex(n)
}

// Before returns true if e is strictly before other.
func (e EraIndex) Before(other EraIndex) bool {
	return e < other
}

// Difference returns the number of eras between e and an earlier era.
// It panics if other is after e.
func (e EraIndex) Difference(other EraIndex) uint32 {
	if other > e {
		panic("other era is after this era")
	}
	return uint32(e - other)
}

func (e EraIndex) String() string {
	return strconv.FormatUint(uint64(e), 10)
}

// Field returns a log field for the era.
func (e EraIndex) Field() zap.Field {
	return zap.Uint32("era", uint32(e))
}

// EncodeScale implements scale codec interface.
func (e EraIndex) EncodeScale(enc *scale.Encoder) (int, error) {
	return scale.EncodeCompact32(enc, uint32(e))
}

// DecodeScale implements scale codec interface.
func (e *EraIndex) DecodeScale(dec *scale.Decoder) (int, error) {
	value, n, err := scale.DecodeCompact32(dec)
	if err != nil {
		return n, err
	}
	*e = EraIndex(value)
	return n, nil
}
