package leaf

import (
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"
)

// Int64 converts value to int64, decimal values are truncated toward zero
func Int64(value interface{}) (int64, error) {
	value = indirect(value)
	switch actual := value.(type) {
	case int:
		return int64(actual), nil
	case int64:
		return actual, nil
	case string:
		return parseInt(actual)
	case Char:
		return int64(actual), nil
	case *big.Int:
		if !actual.IsInt64() {
			return 0, outOfRange(actual, "int64")
		}
		return actual.Int64(), nil
	case *big.Float:
		ret, accuracy := actual.Int64()
		if actual.IsInf() || (accuracy != big.Exact && (ret == math.MaxInt64 || ret == math.MinInt64)) {
			return 0, outOfRange(actual, "int64")
		}
		return ret, nil
	case *big.Rat:
		return Int64(new(big.Float).SetRat(actual))
	}
	if value == nil {
		return 0, unsupported(value, "int64")
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rValue.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		v := rValue.Uint()
		if v > math.MaxInt64 {
			return 0, outOfRange(v, "int64")
		}
		return int64(v), nil
	case reflect.Float32, reflect.Float64:
		return floatToInt(rValue.Float())
	case reflect.Bool:
		if rValue.Bool() {
			return 1, nil
		}
		return 0, nil
	case reflect.String:
		return parseInt(rValue.String())
	}
	return 0, unsupported(value, "int64")
}

// Int converts value to a signed integer that fits bitSize bits
func Int(value interface{}, bitSize int) (int64, error) {
	ret, err := Int64(value)
	if err != nil {
		return 0, err
	}
	if bitSize > 0 && bitSize < 64 {
		lower := int64(-1) << (bitSize - 1)
		upper := int64(1)<<(bitSize-1) - 1
		if ret < lower || ret > upper {
			return 0, outOfRange(ret, "int"+strconv.Itoa(bitSize))
		}
	}
	return ret, nil
}

// Uint64 converts value to uint64, negative values fail
func Uint64(value interface{}) (uint64, error) {
	value = indirect(value)
	switch actual := value.(type) {
	case uint:
		return uint64(actual), nil
	case uint64:
		return actual, nil
	case string:
		return parseUint(actual)
	case *big.Int:
		if !actual.IsUint64() {
			return 0, outOfRange(actual, "uint64")
		}
		return actual.Uint64(), nil
	case *big.Float:
		if actual.Sign() < 0 || actual.IsInf() {
			return 0, outOfRange(actual, "uint64")
		}
		ret, accuracy := actual.Uint64()
		if accuracy != big.Exact && ret == math.MaxUint64 {
			return 0, outOfRange(actual, "uint64")
		}
		return ret, nil
	case *big.Rat:
		return Uint64(new(big.Float).SetRat(actual))
	}
	if value == nil {
		return 0, unsupported(value, "uint64")
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rValue.Uint(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := rValue.Int()
		if v < 0 {
			return 0, outOfRange(v, "uint64")
		}
		return uint64(v), nil
	case reflect.Float32, reflect.Float64:
		return floatToUint(rValue.Float())
	case reflect.Bool:
		if rValue.Bool() {
			return 1, nil
		}
		return 0, nil
	case reflect.String:
		return parseUint(rValue.String())
	}
	return 0, unsupported(value, "uint64")
}

// Uint converts value to an unsigned integer that fits bitSize bits
func Uint(value interface{}, bitSize int) (uint64, error) {
	ret, err := Uint64(value)
	if err != nil {
		return 0, err
	}
	if bitSize > 0 && bitSize < 64 && ret > uint64(1)<<bitSize-1 {
		return 0, outOfRange(ret, "uint"+strconv.Itoa(bitSize))
	}
	return ret, nil
}

// Float64 converts value to float64
func Float64(value interface{}) (float64, error) {
	value = indirect(value)
	switch actual := value.(type) {
	case float64:
		return actual, nil
	case float32:
		return float64(actual), nil
	case int:
		return float64(actual), nil
	case string:
		text := strings.TrimSpace(actual)
		if text == "" {
			return 0, unsupported(actual, "float64")
		}
		return strconv.ParseFloat(text, 64)
	case *big.Int:
		ret, _ := new(big.Float).SetInt(actual).Float64()
		return ret, nil
	case *big.Float:
		ret, _ := actual.Float64()
		return ret, nil
	case *big.Rat:
		ret, _ := actual.Float64()
		return ret, nil
	}
	if value == nil {
		return 0, unsupported(value, "float64")
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Float32, reflect.Float64:
		return rValue.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rValue.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rValue.Uint()), nil
	case reflect.Bool:
		if rValue.Bool() {
			return 1, nil
		}
		return 0, nil
	case reflect.String:
		return Float64(rValue.String())
	}
	return 0, unsupported(value, "float64")
}

// Float converts value to a float that fits bitSize bits
func Float(value interface{}, bitSize int) (float64, error) {
	ret, err := Float64(value)
	if err != nil {
		return 0, err
	}
	if bitSize == 32 && !math.IsInf(ret, 0) && !math.IsNaN(ret) && math.Abs(ret) > math.MaxFloat32 {
		return 0, outOfRange(ret, "float32")
	}
	return ret, nil
}

// Complex128 converts value to complex128, real numbers get a zero imaginary part
func Complex128(value interface{}) (complex128, error) {
	value = indirect(value)
	if value == nil {
		return 0, unsupported(value, "complex128")
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Complex64, reflect.Complex128:
		return rValue.Complex(), nil
	case reflect.String:
		text := strings.TrimSpace(rValue.String())
		if text == "" {
			return 0, unsupported(value, "complex128")
		}
		return strconv.ParseComplex(text, 128)
	}
	f, err := Float64(value)
	if err != nil {
		return 0, unsupported(value, "complex128")
	}
	return complex(f, 0), nil
}

func parseInt(text string) (int64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, unsupported(text, "int64")
	}
	if isDecimal(text) {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return 0, err
		}
		return floatToInt(f)
	}
	base := 10
	if hasRadixPrefix(text) {
		base = 0
	}
	return strconv.ParseInt(text, base, 64)
}

func parseUint(text string) (uint64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, unsupported(text, "uint64")
	}
	if strings.HasPrefix(text, "-") {
		return 0, outOfRange(text, "uint64")
	}
	if isDecimal(text) {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return 0, err
		}
		return floatToUint(f)
	}
	base := 10
	if hasRadixPrefix(text) {
		base = 0
	}
	return strconv.ParseUint(strings.TrimPrefix(text, "+"), base, 64)
}

func floatToInt(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, outOfRange(f, "int64")
	}
	return int64(f), nil
}

func floatToUint(f float64) (uint64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f >= math.MaxUint64 {
		return 0, outOfRange(f, "uint64")
	}
	return uint64(f), nil
}
