package leaf

import (
	"errors"
	"fmt"
	"math/big"
	"reflect"
	"strings"
)

var (
	//ErrUnsupported is returned when a source shape cannot be converted
	ErrUnsupported = errors.New("unsupported source")
	//ErrRange is returned when a value does not fit the target type
	ErrRange = errors.New("value out of range")
)

// Char represents a single character; rune and int32 are the same type in Go,
// so characters need their own type to be told apart from numbers
type Char rune

func unsupported(value interface{}, target string) error {
	return fmt.Errorf("cannot convert %T to %v: %w", value, target, ErrUnsupported)
}

func outOfRange(value interface{}, target string) error {
	return fmt.Errorf("%v overflows %v: %w", value, target, ErrRange)
}

// indirect dereferences pointers, big number pointers are kept as is
func indirect(value interface{}) interface{} {
	switch actual := value.(type) {
	case nil:
		return nil
	case *big.Int:
		if actual == nil {
			return nil
		}
		return actual
	case *big.Float:
		if actual == nil {
			return nil
		}
		return actual
	case *big.Rat:
		if actual == nil {
			return nil
		}
		return actual
	}
	rValue := reflect.ValueOf(value)
	if rValue.Kind() != reflect.Ptr {
		return value
	}
	for rValue.Kind() == reflect.Ptr {
		if rValue.IsNil() {
			return nil
		}
		rValue = rValue.Elem()
	}
	return rValue.Interface()
}

func hasRadixPrefix(text string) bool {
	text = strings.TrimLeft(text, "+-")
	if len(text) < 2 || text[0] != '0' {
		return false
	}
	switch text[1] {
	case 'x', 'X', 'b', 'B', 'o', 'O':
		return true
	}
	return false
}

func isDecimal(text string) bool {
	if hasRadixPrefix(text) {
		return false
	}
	return strings.ContainsAny(text, ".eE")
}
