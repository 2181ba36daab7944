package morph

import (
	"fmt"
	"reflect"
)

type identity struct {
	target reflect.Type
}

// Morph returns value when it is an instance of the target type
func (i *identity) Morph(value interface{}) (interface{}, error) {
	if value == nil {
		if IsNullable(i.target) {
			return zeroOf(i.target), nil
		}
		return nil, newError(ConversionFailed, value, i.target, fmt.Errorf("nil is not a valid %v", i.target))
	}
	if reflect.TypeOf(value).AssignableTo(i.target) {
		return value, nil
	}
	return nil, newError(ConversionFailed, value, i.target, nil)
}

// MorphsTo returns target type
func (i *identity) MorphsTo() reflect.Type {
	return i.target
}

// Identity returns a converter passing through values assignable to t
func Identity(t reflect.Type) TypedMorpher {
	return &identity{target: t}
}
