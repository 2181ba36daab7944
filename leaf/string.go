package leaf

import (
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"time"
)

// String converts a scalar value to its textual form
func String(value interface{}) (string, error) {
	switch actual := value.(type) {
	case string:
		return actual, nil
	case []byte:
		return string(actual), nil
	case []rune:
		return string(actual), nil
	case Char:
		return string(rune(actual)), nil
	case time.Time:
		return actual.Format(time.RFC3339), nil
	}
	value = indirect(value)
	switch actual := value.(type) {
	case nil:
		return "", unsupported(value, "string")
	case string:
		return actual, nil
	case Char:
		return string(rune(actual)), nil
	case time.Time:
		return actual.Format(time.RFC3339), nil
	case *big.Int:
		return actual.String(), nil
	case *big.Float:
		return actual.Text('f', -1), nil
	case *big.Rat:
		return actual.RatString(), nil
	case fmt.Stringer:
		return actual.String(), nil
	case error:
		return actual.Error(), nil
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.String:
		return rValue.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(rValue.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rValue.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rValue.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(rValue.Float(), 'f', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(rValue.Float(), 'f', -1, 64), nil
	case reflect.Complex64:
		return strconv.FormatComplex(rValue.Complex(), 'f', -1, 64), nil
	case reflect.Complex128:
		return strconv.FormatComplex(rValue.Complex(), 'f', -1, 128), nil
	case reflect.Slice:
		if rValue.Type().Elem().Kind() == reflect.Uint8 {
			return string(rValue.Bytes()), nil
		}
	}
	return "", unsupported(value, "string")
}
