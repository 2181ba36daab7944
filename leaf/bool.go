package leaf

import (
	"reflect"
	"strconv"
	"strings"
)

// Bool converts value to bool, numbers are true when non zero
func Bool(value interface{}) (bool, error) {
	value = indirect(value)
	switch actual := value.(type) {
	case bool:
		return actual, nil
	case string:
		return parseBool(actual)
	}
	if value == nil {
		return false, unsupported(value, "bool")
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Bool:
		return rValue.Bool(), nil
	case reflect.String:
		return parseBool(rValue.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		f, err := Float64(value)
		if err != nil {
			return false, err
		}
		return f != 0, nil
	}
	if f, err := Float64(value); err == nil { //big numbers
		return f != 0, nil
	}
	return false, unsupported(value, "bool")
}

func parseBool(text string) (bool, error) {
	text = strings.TrimSpace(text)
	switch strings.ToLower(text) {
	case "yes", "y", "on":
		return true, nil
	case "no", "n", "off":
		return false, nil
	}
	ret, err := strconv.ParseBool(text)
	if err == nil {
		return ret, nil
	}
	if f, fErr := strconv.ParseFloat(text, 64); fErr == nil {
		return f != 0, nil
	}
	return false, err
}
