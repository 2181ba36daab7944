package leaf

import (
	"math"
	"math/big"
	"reflect"
	"strings"
)

// DecimalPrecision is the mantissa precision of decimals produced by BigFloat
const DecimalPrecision uint = 256

// BigInt converts value to a new *big.Int, decimals are truncated toward zero
func BigInt(value interface{}) (*big.Int, error) {
	value = indirect(value)
	switch actual := value.(type) {
	case *big.Int:
		return new(big.Int).Set(actual), nil
	case *big.Float:
		if actual.IsInf() {
			return nil, outOfRange(actual, "big.Int")
		}
		ret, _ := actual.Int(nil)
		return ret, nil
	case *big.Rat:
		return new(big.Int).Quo(actual.Num(), actual.Denom()), nil
	case string:
		return parseBigInt(actual)
	case nil:
		return nil, unsupported(value, "big.Int")
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return big.NewInt(rValue.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return new(big.Int).SetUint64(rValue.Uint()), nil
	case reflect.Float32, reflect.Float64:
		f := rValue.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, outOfRange(f, "big.Int")
		}
		ret, _ := big.NewFloat(f).Int(nil)
		return ret, nil
	case reflect.Bool:
		if rValue.Bool() {
			return big.NewInt(1), nil
		}
		return big.NewInt(0), nil
	case reflect.String:
		return parseBigInt(rValue.String())
	}
	return nil, unsupported(value, "big.Int")
}

// BigFloat converts value to a new *big.Float with DecimalPrecision
func BigFloat(value interface{}) (*big.Float, error) {
	value = indirect(value)
	ret := new(big.Float).SetPrec(DecimalPrecision)
	switch actual := value.(type) {
	case *big.Float:
		return ret.Set(actual), nil
	case *big.Int:
		return ret.SetInt(actual), nil
	case *big.Rat:
		return ret.SetRat(actual), nil
	case string:
		return parseBigFloat(ret, actual)
	case nil:
		return nil, unsupported(value, "big.Float")
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ret.SetInt64(rValue.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return ret.SetUint64(rValue.Uint()), nil
	case reflect.Float32, reflect.Float64:
		f := rValue.Float()
		if math.IsNaN(f) {
			return nil, unsupported(value, "big.Float")
		}
		return ret.SetFloat64(f), nil
	case reflect.Bool:
		if rValue.Bool() {
			return ret.SetInt64(1), nil
		}
		return ret.SetInt64(0), nil
	case reflect.String:
		return parseBigFloat(ret, rValue.String())
	}
	return nil, unsupported(value, "big.Float")
}

func parseBigInt(text string) (*big.Int, error) {
	text = strings.TrimSpace(text)
	if isDecimal(text) {
		f, ok := new(big.Float).SetPrec(DecimalPrecision).SetString(text)
		if !ok || f.IsInf() {
			return nil, unsupported(text, "big.Int")
		}
		ret, _ := f.Int(nil)
		return ret, nil
	}
	base := 10
	if hasRadixPrefix(text) {
		base = 0
	}
	ret, ok := new(big.Int).SetString(text, base)
	if !ok {
		return nil, unsupported(text, "big.Int")
	}
	return ret, nil
}

func parseBigFloat(ret *big.Float, text string) (*big.Float, error) {
	text = strings.TrimSpace(text)
	if _, ok := ret.SetString(text); !ok {
		return nil, unsupported(text, "big.Float")
	}
	return ret, nil
}
