package morph

import (
	"fmt"
	"reflect"

	"github.com/viant/morph/visitor"
)

// ArrayConverter converts sequences element by element through the registry
type ArrayConverter struct {
	registry *Registry
}

// Convert converts source into []elem
func (c *ArrayConverter) Convert(elem reflect.Type, source interface{}) (interface{}, error) {
	return c.Morph(reflect.SliceOf(elem), source)
}

// Morph converts source into t slice or array type. A scalar source is promoted to a one element
// sequence, nil returns the zero value of t. The result has the source length, a fixed array of
// a different length fails. The first failing element aborts the conversion.
func (c *ArrayConverter) Morph(t reflect.Type, source interface{}) (interface{}, error) {
	if t.Kind() != reflect.Slice && t.Kind() != reflect.Array {
		return nil, newError(ConversionFailed, source, t, fmt.Errorf("expected slice or array type"))
	}
	if source == nil {
		return reflect.Zero(t).Interface(), nil
	}
	rValue, ok := indirect(source)
	if !ok {
		return reflect.Zero(t).Interface(), nil
	}
	sequence := rValue.Interface()
	switch rValue.Kind() {
	case reflect.Slice:
		if rValue.IsNil() {
			return reflect.Zero(t).Interface(), nil
		}
	case reflect.Array:
	default:
		if !isScalar(source) {
			return nil, newError(UnsupportedSourceShape, source, t, nil)
		}
		sequence = []interface{}{source}
	}
	length := visitor.Len(sequence)
	var ret reflect.Value
	if t.Kind() == reflect.Array {
		if t.Len() != length {
			return nil, newError(ConversionFailed, source, t, fmt.Errorf("expected %v elements, but had %v", t.Len(), length))
		}
		ret = reflect.New(t).Elem()
	} else {
		ret = reflect.MakeSlice(t, length, length)
	}
	visit, err := visitor.SequenceOf(sequence)
	if err != nil {
		return nil, newError(UnsupportedSourceShape, source, t, err)
	}
	elem := t.Elem()
	err = visit(func(index int, item interface{}) (bool, error) {
		converted, err := c.registry.Morph(elem, item)
		if err != nil {
			return false, elementError(err, source, t, index)
		}
		if converted != nil {
			ret.Index(index).Set(reflect.ValueOf(converted))
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return ret.Interface(), nil
}
