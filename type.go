package morph

import (
	"encoding"
	"math/big"
	"reflect"
	"time"

	"github.com/viant/morph/leaf"
)

var (
	boolType            = reflect.TypeOf(false)
	stringType          = reflect.TypeOf("")
	bytesType           = reflect.TypeOf([]byte{})
	charType            = reflect.TypeOf(leaf.Char(0))
	timeType            = reflect.TypeOf(time.Time{})
	timePtrType         = reflect.PtrTo(timeType)
	bigIntType          = reflect.TypeOf(&big.Int{})
	bigFloatType        = reflect.TypeOf(&big.Float{})
	interfaceType       = reflect.TypeOf((*interface{})(nil)).Elem()
	typeType            = reflect.TypeOf((*reflect.Type)(nil)).Elem()
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

var scalarStructs = map[reflect.Type]bool{
	timeType:                    true,
	reflect.TypeOf(big.Int{}):   true,
	reflect.TypeOf(big.Float{}): true,
	reflect.TypeOf(big.Rat{}):   true,
}

// basicTypes maps scalar kinds to their predeclared type, named scalar types
// are converted with the converter of their basic type
var basicTypes = map[reflect.Kind]reflect.Type{
	reflect.Bool:       boolType,
	reflect.Int:        reflect.TypeOf(int(0)),
	reflect.Int8:       reflect.TypeOf(int8(0)),
	reflect.Int16:      reflect.TypeOf(int16(0)),
	reflect.Int32:      reflect.TypeOf(int32(0)),
	reflect.Int64:      reflect.TypeOf(int64(0)),
	reflect.Uint:       reflect.TypeOf(uint(0)),
	reflect.Uint8:      reflect.TypeOf(uint8(0)),
	reflect.Uint16:     reflect.TypeOf(uint16(0)),
	reflect.Uint32:     reflect.TypeOf(uint32(0)),
	reflect.Uint64:     reflect.TypeOf(uint64(0)),
	reflect.Uintptr:    reflect.TypeOf(uintptr(0)),
	reflect.Float32:    reflect.TypeOf(float32(0)),
	reflect.Float64:    reflect.TypeOf(float64(0)),
	reflect.Complex64:  reflect.TypeOf(complex64(0)),
	reflect.Complex128: reflect.TypeOf(complex128(0)),
	reflect.String:     stringType,
}

// IsPrimitive returns true for non nullable scalar types: bool, numbers, strings and leaf.Char,
// including named types of those kinds
func IsPrimitive(t reflect.Type) bool {
	if t == nil {
		return false
	}
	_, ok := basicTypes[t.Kind()]
	return ok
}

// IsNullable returns true if nil is a valid value of t
func IsNullable(t reflect.Type) bool {
	if t == nil {
		return true
	}
	switch t.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	}
	return false
}

// Dimensions returns slice or array nesting depth of t
func Dimensions(t reflect.Type) int {
	ret := 0
	for t != nil && (t.Kind() == reflect.Slice || t.Kind() == reflect.Array) {
		ret++
		t = t.Elem()
	}
	return ret
}

// zeroOf returns the typed zero value of t, nil for interfaces
func zeroOf(t reflect.Type) interface{} {
	if t == nil || t.Kind() == reflect.Interface {
		return nil
	}
	return reflect.Zero(t).Interface()
}

// isNil returns true for nil and typed nil pointers, maps, slices, funcs and channels
func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rValue.IsNil()
	}
	return false
}

func typeOf(value interface{}) reflect.Type {
	return reflect.TypeOf(value)
}

// isScalar returns true for values promoted to a one element array
func isScalar(value interface{}) bool {
	rValue := reflect.ValueOf(value)
	for rValue.Kind() == reflect.Ptr {
		if rValue.IsNil() {
			return false
		}
		rValue = rValue.Elem()
	}
	if !rValue.IsValid() {
		return false
	}
	if scalarStructs[rValue.Type()] {
		return true
	}
	return IsPrimitive(rValue.Type())
}

// indirect dereferences pointers, a nil pointer returns false
func indirect(value interface{}) (reflect.Value, bool) {
	rValue := reflect.ValueOf(value)
	for rValue.Kind() == reflect.Ptr {
		if rValue.IsNil() {
			return rValue, false
		}
		rValue = rValue.Elem()
	}
	return rValue, rValue.IsValid()
}
