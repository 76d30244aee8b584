package config

import (
	"fmt"
	"math"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"lukechampine.com/uint128"

	"github.com/socialnetwork/go-inflation/common/types"
)

var amountType = reflect.TypeOf(uint128.Uint128{})

// AmountDecodeFunc decodes 128-bit amounts from strings such as "7_777_777_777"
// and from non-negative integers.
func AmountDecodeFunc() mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data any) (any, error) {
		if to != amountType {
			return data, nil
		}
		v := reflect.ValueOf(data)
		switch from.Kind() {
		case reflect.String:
			return types.ParseAmount(v.String())
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if v.Int() < 0 {
				return nil, fmt.Errorf("negative amount %d", v.Int())
			}
			return uint128.From64(uint64(v.Int())), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return uint128.From64(v.Uint()), nil
		case reflect.Float32, reflect.Float64:
			f := v.Float()
			if f < 0 || f != math.Trunc(f) || f >= math.MaxUint64 {
				return nil, fmt.Errorf("amount %v is not a 64-bit integer, quote it", f)
			}
			return uint128.From64(uint64(f)), nil
		}
		return data, nil
	}
}
