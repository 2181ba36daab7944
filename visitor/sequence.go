package visitor

import (
	"fmt"
	"reflect"
)

// SequenceOf returns an index visitor for any slice or array value
func SequenceOf(value interface{}) (Visitor[int, any], error) {
	switch actual := value.(type) {
	case []interface{}:
		return typedSequence[interface{}](actual), nil
	case []string:
		return typedSequence[string](actual), nil
	case []int:
		return typedSequence[int](actual), nil
	case []int64:
		return typedSequence[int64](actual), nil
	case []float64:
		return typedSequence[float64](actual), nil
	case []bool:
		return typedSequence[bool](actual), nil
	case []map[string]interface{}:
		return typedSequence[map[string]interface{}](actual), nil
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, fmt.Errorf("expected slice or array, got %T", value)
	}
	return func(f func(index int, element any) (bool, error)) error {
		for i := 0; i < rValue.Len(); i++ {
			continueVisit, err := f(i, rValue.Index(i).Interface())
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}, nil
}

// Len returns the number of elements of a slice or array value, -1 for other values
func Len(value interface{}) int {
	switch actual := value.(type) {
	case []interface{}:
		return len(actual)
	case []string:
		return len(actual)
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Slice, reflect.Array:
		return rValue.Len()
	}
	return -1
}

func typedSequence[E any](slice []E) Visitor[int, any] {
	return func(f func(index int, element any) (bool, error)) error {
		for i, e := range slice {
			continueVisit, err := f(i, e)
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}
}
