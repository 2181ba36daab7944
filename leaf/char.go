package leaf

import (
	"reflect"
	"unicode"
	"unicode/utf8"
)

// Rune converts value to Char: the first rune of a string or a numeric code point
func Rune(value interface{}) (Char, error) {
	value = indirect(value)
	switch actual := value.(type) {
	case Char:
		return actual, nil
	case string:
		if actual == "" {
			return 0, unsupported(value, "char")
		}
		r, _ := utf8.DecodeRuneInString(actual)
		return Char(r), nil
	case bool, nil:
		return 0, unsupported(value, "char")
	}
	if reflect.ValueOf(value).Kind() == reflect.String {
		return Rune(reflect.ValueOf(value).String())
	}
	code, err := Int64(value)
	if err != nil {
		return 0, unsupported(value, "char")
	}
	if code < 0 || code > unicode.MaxRune {
		return 0, outOfRange(code, "char")
	}
	return Char(code), nil
}
