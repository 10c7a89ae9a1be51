package config

import (
	"fmt"
	"math"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
)

// decodeHook is viper's default hook chain with integer range checking in
// front of it.
func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		intRangeHook(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

// intRangeHook rejects numbers that do not fit the target integer type.
// The weakly typed decoder would otherwise truncate them (258 into a uint8
// becomes 2).
func intRangeHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		target := reflect.New(to).Elem()
		v := reflect.ValueOf(data)

		var (
			n        int64
			negative bool
			u        uint64
		)
		switch from.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			n = v.Int()
			negative = n < 0
			u = uint64(n)
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			u = v.Uint()
			n = int64(u)
			if u > math.MaxInt64 {
				n = math.MaxInt64
			}
		case reflect.Float32, reflect.Float64:
			f := v.Float()
			if f != math.Trunc(f) || f < math.MinInt64 || f > math.MaxInt64 {
				if isInteger(to.Kind()) {
					return nil, fmt.Errorf("value %v is not a valid %s", data, to)
				}
				return data, nil
			}
			n = int64(f)
			negative = n < 0
			u = uint64(n)
		default:
			return data, nil
		}

		switch to.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if target.OverflowInt(n) || (!negative && u > math.MaxInt64) {
				return nil, fmt.Errorf("value %v out of range for %s", data, to)
			}
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if negative || target.OverflowUint(u) {
				return nil, fmt.Errorf("value %v out of range for %s", data, to)
			}
		}
		return data, nil
	}
}

func isInteger(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}
