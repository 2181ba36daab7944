package morph

import (
	"reflect"

	"github.com/viant/morph/leaf"
)

// defaultValues is the default value policy for primitive targets
var defaultValues = map[reflect.Type]interface{}{
	boolType:                      false,
	charType:                      leaf.Char(0),
	reflect.TypeOf(int(0)):        0,
	reflect.TypeOf(int8(0)):       int8(0),
	reflect.TypeOf(int16(0)):      int16(0),
	reflect.TypeOf(int32(0)):      int32(0),
	reflect.TypeOf(int64(0)):      int64(0),
	reflect.TypeOf(uint(0)):       uint(0),
	reflect.TypeOf(uint8(0)):      uint8(0),
	reflect.TypeOf(uint16(0)):     uint16(0),
	reflect.TypeOf(uint32(0)):     uint32(0),
	reflect.TypeOf(uint64(0)):     uint64(0),
	reflect.TypeOf(uintptr(0)):    uintptr(0),
	reflect.TypeOf(float32(0)):    float32(0),
	reflect.TypeOf(float64(0)):    0.0,
	reflect.TypeOf(complex64(0)):  complex64(0),
	reflect.TypeOf(complex128(0)): complex128(0),
	stringType:                    "",
}

// Default returns the default value of t: the registered override, the policy value for
// primitive types or nil
func (r *Registry) Default(t reflect.Type) interface{} {
	if value, ok := r.defaults.Load(t); ok {
		return value
	}
	if value, ok := defaultValues[t]; ok {
		return value
	}
	if IsPrimitive(t) {
		return reflect.Zero(t).Interface()
	}
	return nil
}

// SetDefault overrides the default value of t, the value is morphed into t first.
// Once set, failed conversions into t return the default; nil removes the override.
func (r *Registry) SetDefault(t reflect.Type, value interface{}) error {
	if value == nil {
		r.defaults.Delete(t)
		return nil
	}
	converted, err := r.morph(t, value)
	if err != nil {
		return err
	}
	r.defaults.Store(t, converted)
	return nil
}

// degrade returns the default value when failures of t are recovered locally
func (r *Registry) degrade(t reflect.Type) (interface{}, bool) {
	if value, ok := r.defaults.Load(t); ok {
		return value, true
	}
	if IsPrimitive(t) {
		return r.Default(t), true
	}
	return nil, false
}
