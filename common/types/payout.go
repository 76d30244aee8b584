package types

import (
	"encoding/json"

	"github.com/spacemeshos/go-scale"
	"go.uber.org/zap/zapcore"
	"lukechampine.com/uint128"
)

// Payout is the amount minted in a single era.
type Payout struct {
	Era EraIndex
	// Staker is credited to the staking pool.
	Staker uint128.Uint128
	// Maximum is the full amount minted in the era. Maximum - Staker goes to the treasury.
	Maximum uint128.Uint128
}

// Treasury returns the part of the maximum payout that is not paid to stakers.
func (p Payout) Treasury() uint128.Uint128 {
	return SaturatingSub(p.Maximum, p.Staker)
}

// MarshalLogObject implements logging encoder for Payout.
func (p Payout) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddUint32("era", p.Era.Uint32())
	encoder.AddString("staker", p.Staker.String())
	encoder.AddString("maximum", p.Maximum.String())
	encoder.AddString("treasury", p.Treasury().String())
	return nil
}

type payoutJSON struct {
	Era      uint32      `json:"era"`
	Staker   json.Number `json:"staker"`
	Maximum  json.Number `json:"maximum"`
	Treasury json.Number `json:"treasury"`
}

// MarshalJSON encodes amounts as JSON numbers without losing precision.
func (p Payout) MarshalJSON() ([]byte, error) {
	return json.Marshal(payoutJSON{
		Era:      p.Era.Uint32(),
		Staker:   json.Number(p.Staker.String()),
		Maximum:  json.Number(p.Maximum.String()),
		Treasury: json.Number(p.Treasury().String()),
	})
}

// UnmarshalJSON decodes a payout encoded with MarshalJSON. Treasury is derived and ignored.
func (p *Payout) UnmarshalJSON(data []byte) error {
	var raw payoutJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	staker, err := ParseAmount(raw.Staker.String())
	if err != nil {
		return err
	}
	maximum, err := ParseAmount(raw.Maximum.String())
	if err != nil {
		return err
	}
	*p = Payout{Era: EraIndex(raw.Era), Staker: staker, Maximum: maximum}
	return nil
}

// EncodeScale implements scale codec interface.
func (p *Payout) EncodeScale(enc *scale.Encoder) (int, error) {
	var total int
	{
		n, err := p.Era.EncodeScale(enc)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := encodeUint128(enc, p.Staker)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := encodeUint128(enc, p.Maximum)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// DecodeScale implements scale codec interface.
func (p *Payout) DecodeScale(dec *scale.Decoder) (int, error) {
	var total int
	{
		n, err := p.Era.DecodeScale(dec)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		value, n, err := decodeUint128(dec)
		if err != nil {
			return total, err
		}
		p.Staker = value
		total += n
	}
	{
		value, n, err := decodeUint128(dec)
		if err != nil {
			return total, err
		}
		p.Maximum = value
		total += n
	}
	return total, nil
}

// amounts are encoded as 16 little-endian bytes, like u128 in SCALE.
func encodeUint128(enc *scale.Encoder, v uint128.Uint128) (int, error) {
	var buf [16]byte
	v.PutBytes(buf[:])
	return scale.EncodeByteArray(enc, buf[:])
}

func decodeUint128(dec *scale.Decoder) (uint128.Uint128, int, error) {
	var buf [16]byte
	n, err := scale.DecodeByteArray(dec, buf[:])
	if err != nil {
		return uint128.Zero, n, err
	}
	return uint128.FromBytes(buf[:]), n, nil
}
