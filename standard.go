package morph

import (
	"math/bits"
	"reflect"
	"strconv"

	"github.com/viant/morph/leaf"
)

func signed[T ~int | ~int8 | ~int16 | ~int32 | ~int64](bitSize int) MorpherFunc {
	return func(value interface{}) (interface{}, error) {
		ret, err := leaf.Int(value, bitSize)
		if err != nil {
			return nil, err
		}
		return T(ret), nil
	}
}

func unsigned[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr](bitSize int) MorpherFunc {
	return func(value interface{}) (interface{}, error) {
		ret, err := leaf.Uint(value, bitSize)
		if err != nil {
			return nil, err
		}
		return T(ret), nil
	}
}

func floating[T ~float32 | ~float64](bitSize int) MorpherFunc {
	return func(value interface{}) (interface{}, error) {
		ret, err := leaf.Float(value, bitSize)
		if err != nil {
			return nil, err
		}
		return T(ret), nil
	}
}

func imaginary[T ~complex64 | ~complex128]() MorpherFunc {
	return func(value interface{}) (interface{}, error) {
		ret, err := leaf.Complex128(value)
		if err != nil {
			return nil, err
		}
		return T(ret), nil
	}
}

// registerStandard registers leaf converters of the predeclared scalar types, leaf.Char,
// time.Time, big numbers, []byte and reflect.Type
func (r *Registry) registerStandard() {
	r.RegisterFunc(boolType, func(value interface{}) (interface{}, error) {
		return leaf.Bool(value)
	})
	r.Register(reflect.TypeOf(int(0)), signed[int](strconv.IntSize))
	r.Register(reflect.TypeOf(int8(0)), signed[int8](8))
	r.Register(reflect.TypeOf(int16(0)), signed[int16](16))
	r.Register(reflect.TypeOf(int32(0)), signed[int32](32))
	r.Register(reflect.TypeOf(int64(0)), signed[int64](64))
	r.Register(reflect.TypeOf(uint(0)), unsigned[uint](strconv.IntSize))
	r.Register(reflect.TypeOf(uint8(0)), unsigned[uint8](8))
	r.Register(reflect.TypeOf(uint16(0)), unsigned[uint16](16))
	r.Register(reflect.TypeOf(uint32(0)), unsigned[uint32](32))
	r.Register(reflect.TypeOf(uint64(0)), unsigned[uint64](64))
	r.Register(reflect.TypeOf(uintptr(0)), unsigned[uintptr](bits.UintSize))
	r.Register(reflect.TypeOf(float32(0)), floating[float32](32))
	r.Register(reflect.TypeOf(float64(0)), floating[float64](64))
	r.Register(reflect.TypeOf(complex64(0)), imaginary[complex64]())
	r.Register(reflect.TypeOf(complex128(0)), imaginary[complex128]())
	r.RegisterFunc(stringType, func(value interface{}) (interface{}, error) {
		return leaf.String(value)
	})
	r.RegisterFunc(charType, func(value interface{}) (interface{}, error) {
		return leaf.Rune(value)
	})
	layouts := r.options.TimeLayouts
	r.RegisterFunc(timeType, func(value interface{}) (interface{}, error) {
		return leaf.Time(value, layouts...)
	})
	r.RegisterFunc(bigIntType, func(value interface{}) (interface{}, error) {
		return leaf.BigInt(value)
	})
	r.RegisterFunc(bigFloatType, func(value interface{}) (interface{}, error) {
		return leaf.BigFloat(value)
	})
	r.RegisterFunc(bytesType, func(value interface{}) (interface{}, error) {
		switch actual := value.(type) {
		case string:
			return []byte(actual), nil
		case *string:
			if actual != nil {
				return []byte(*actual), nil
			}
		}
		return r.arrays.Morph(bytesType, value)
	})
	r.RegisterFunc(typeType, r.morphType)
}
