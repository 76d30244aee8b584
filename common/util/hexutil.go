// Package util contains helpers for the textual form of encoded records.
package util

/*
Encoding Rules

All hex data must have prefix "0x" and be of even length. An empty byte slice
encodes as "0x".
*/

import (
	"encoding/hex"
	"errors"
	"strings"
)

// Errors.
var (
	ErrSyntax        = errors.New("invalid hex string")
	ErrMissingPrefix = errors.New("hex string without 0x prefix")
	ErrOddLength     = errors.New("hex string of odd length")
)

// Encode encodes b as a hex string with 0x prefix.
func Encode(b []byte) string {
	enc := make([]byte, len(b)*2+2)
	copy(enc, "0x")
	hex.Encode(enc[2:], b)
	return string(enc)
}

// Decode decodes a hex string with 0x prefix.
func Decode(input string) ([]byte, error) {
	raw, ok := strings.CutPrefix(input, "0x")
	if !ok {
		if raw, ok = strings.CutPrefix(input, "0X"); !ok {
			return nil, ErrMissingPrefix
		}
	}
	if len(raw)%2 == 1 {
		return nil, ErrOddLength
	}
	b, err := hex.DecodeString(raw)
	if err != nil {
		return nil, ErrSyntax
	}
	return b, nil
}
