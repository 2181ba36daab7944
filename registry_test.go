package morph

import (
	"fmt"
	"math/big"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/morph/leaf"
)

type Status string

type Level int8

type Color int

func (c *Color) UnmarshalText(data []byte) error {
	switch strings.ToLower(string(data)) {
	case "red":
		*c = 1
	case "green":
		*c = 2
	default:
		return fmt.Errorf("unknown color: %s", data)
	}
	return nil
}

func TestRegistry_Morph(t *testing.T) {
	registry := New()
	five := 5
	var testCases = []struct {
		description string
		target      reflect.Type
		value       interface{}
		expect      interface{}
	}{
		{description: "string to int", target: TypeOf[int](), value: "42", expect: 42},
		{description: "float to int8", target: TypeOf[int8](), value: 12.7, expect: int8(12)},
		{description: "int to string", target: TypeOf[string](), value: 42, expect: "42"},
		{description: "string to bool", target: TypeOf[bool](), value: "yes", expect: true},
		{description: "string to uint16", target: TypeOf[uint16](), value: "65535", expect: uint16(65535)},
		{description: "int to float32", target: TypeOf[float32](), value: 3, expect: float32(3)},
		{description: "string to char", target: TypeOf[leaf.Char](), value: "abc", expect: leaf.Char('a')},
		{description: "string to time", target: TypeOf[time.Time](), value: "2023-01-15", expect: time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)},
		{description: "named string", target: TypeOf[Status](), value: 42, expect: Status("42")},
		{description: "named int", target: TypeOf[Level](), value: "7", expect: Level(7)},
		{description: "text unmarshaler", target: TypeOf[Color](), value: "Green", expect: Color(2)},
		{description: "text unmarshaler number", target: TypeOf[Color](), value: 1, expect: Color(1)},
		{description: "boxed int", target: TypeOf[*int](), value: "5", expect: &five},
		{description: "boxed nil", target: TypeOf[*int](), value: nil, expect: (*int)(nil)},
		{description: "interface", target: TypeOf[interface{}](), value: 5, expect: 5},
		{description: "interface nil", target: TypeOf[interface{}](), value: nil, expect: nil},
		{description: "bytes from string", target: TypeOf[[]byte](), value: "abc", expect: []byte("abc")},
		{description: "type expression", target: TypeOf[reflect.Type](), value: "[]int", expect: reflect.TypeOf([]int{})},
		{description: "big int", target: TypeOf[*big.Int](), value: "12345678901234567890", expect: func() *big.Int {
			ret, _ := new(big.Int).SetString("12345678901234567890", 10)
			return ret
		}()},
	}
	for _, testCase := range testCases {
		actual, err := registry.Morph(testCase.target, testCase.value)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
		if actual != nil && testCase.target.Kind() != reflect.Interface {
			assert.Equal(t, testCase.target.String(), reflect.TypeOf(actual).String(), testCase.description)
		}
	}
}

func TestRegistry_Morph_IdentityShortCircuit(t *testing.T) {
	registry := New()
	now := time.Now()
	decimal := big.NewFloat(1.5)
	for _, value := range []interface{}{true, 1, int8(1), uint(3), 1.5, "text", leaf.Char('x'), now, decimal, []byte("x")} {
		target := reflect.TypeOf(value)
		_, ok := registry.Lookup(target)
		assert.True(t, ok, target.String())
		actual, err := registry.Morph(target, value)
		assert.Nil(t, err, target.String())
		assert.Equal(t, value, actual, target.String())
	}
	actual, err := registry.Morph(bigFloatType, decimal)
	assert.Nil(t, err)
	assert.Same(t, decimal, actual)
}

func TestRegistry_Morph_PrimitiveDefault(t *testing.T) {
	registry := New()
	var testCases = []struct {
		description string
		target      reflect.Type
		value       interface{}
		expect      interface{}
	}{
		{description: "nil int", target: TypeOf[int](), value: nil, expect: 0},
		{description: "slice int", target: TypeOf[int](), value: []int{1}, expect: 0},
		{description: "invalid bool", target: TypeOf[bool](), value: "maybe", expect: false},
		{description: "invalid char", target: TypeOf[leaf.Char](), value: true, expect: leaf.Char(0)},
		{description: "map float", target: TypeOf[float64](), value: map[string]int{}, expect: 0.0},
		{description: "overflow", target: TypeOf[int8](), value: 300, expect: int8(0)},
		{description: "named overflow", target: TypeOf[Level](), value: "300", expect: Level(0)},
		{description: "invalid text", target: TypeOf[Color](), value: "blue", expect: Color(0)},
		{description: "nil string", target: TypeOf[string](), value: nil, expect: ""},
		{description: "composite string", target: TypeOf[string](), value: []interface{}{1}, expect: ""},
	}
	for _, testCase := range testCases {
		actual, err := registry.Morph(testCase.target, testCase.value)
		assert.Nil(t, err, testCase.description)
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestRegistry_Morph_TypedNil(t *testing.T) {
	registry := New()
	var testCases = []struct {
		description string
		target      reflect.Type
		value       interface{}
		expect      interface{}
	}{
		{description: "nil pointer into other pointer", target: TypeOf[*string](), value: (*int)(nil), expect: (*string)(nil)},
		{description: "nil pointer into same pointer", target: TypeOf[*int](), value: (*int)(nil), expect: (*int)(nil)},
		{description: "nil pointer into primitive", target: TypeOf[int](), value: (*string)(nil), expect: 0},
		{description: "nil pointer into string", target: TypeOf[string](), value: (*int)(nil), expect: ""},
		{description: "nil bean pointer into bean pointer", target: TypeOf[*Address](), value: (*Person)(nil), expect: (*Address)(nil)},
		{description: "nil bean pointer into bean", target: TypeOf[Address](), value: (*Person)(nil), expect: Address{}},
		{description: "nil map into slice", target: TypeOf[[]int](), value: map[string]int(nil), expect: []int(nil)},
		{description: "nil slice into map", target: TypeOf[map[string]int](), value: []int(nil), expect: map[string]int(nil)},
		{description: "nil slice into interface", target: TypeOf[interface{}](), value: []int(nil), expect: nil},
		{description: "nil pointer into array", target: TypeOf[[2]int](), value: (*[]int)(nil), expect: [2]int{}},
	}
	for _, testCase := range testCases {
		actual, err := registry.Morph(testCase.target, testCase.value)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestRegistry_Morph_Failure(t *testing.T) {
	registry := New()
	var testCases = []struct {
		description string
		target      reflect.Type
		value       interface{}
	}{
		{description: "boxed int", target: TypeOf[*int](), value: "abc"},
		{description: "interface", target: TypeOf[fmt.Stringer](), value: 1},
		{description: "channel", target: TypeOf[chan int](), value: 5},
		{description: "bean from string", target: TypeOf[Address](), value: "abc"},
		{description: "type expression", target: TypeOf[reflect.Type](), value: "unknown"},
		{description: "big int", target: TypeOf[*big.Int](), value: "abc"},
		{description: "nil target", target: nil, value: 1},
	}
	for _, testCase := range testCases {
		_, err := registry.Morph(testCase.target, testCase.value)
		if !assert.NotNil(t, err, testCase.description) {
			continue
		}
		assert.True(t, IsKind(err, ConversionFailed), testCase.description)
		assert.ErrorIs(t, err, ErrConversionFailed, testCase.description)
		assert.False(t, IsKind(err, UnregisteredTargetType), testCase.description)
	}
}

func TestRegistry_Morph_Idempotent(t *testing.T) {
	registry := New()
	var testCases = []struct {
		target reflect.Type
		value  interface{}
	}{
		{TypeOf[int](), "12"},
		{TypeOf[*int](), "12"},
		{TypeOf[[]int](), []string{"1", "2"}},
		{TypeOf[[2]string](), []int{1, 2}},
		{TypeOf[map[string]int](), map[string]string{"a": "1"}},
		{TypeOf[Primitives](), map[string]interface{}{"pint": "7"}},
		{TypeOf[*Primitives](), map[string]interface{}{"pint": "7"}},
		{TypeOf[Status](), 10},
		{TypeOf[interface{}](), nil},
		{TypeOf[[]int](), nil},
	}
	for _, testCase := range testCases {
		once, err := registry.Morph(testCase.target, testCase.value)
		require.Nil(t, err, testCase.target.String())
		twice, err := registry.Morph(testCase.target, once)
		require.Nil(t, err, testCase.target.String())
		assert.Equal(t, once, twice, testCase.target.String())
	}
}

func TestRegistry_RegisterUnregister(t *testing.T) {
	registry := New()
	target := TypeOf[[]int]()
	before, err := registry.Morph(target, []string{"1", "2"})
	require.Nil(t, err)

	registry.RegisterFunc(target, func(value interface{}) (interface{}, error) {
		return []int{42}, nil
	})
	actual, err := registry.Morph(target, []string{"1", "2"})
	require.Nil(t, err)
	assert.Equal(t, []int{42}, actual)

	registry.Unregister(target)
	after, err := registry.Morph(target, []string{"1", "2"})
	require.Nil(t, err)
	assert.Equal(t, before, after)
	registry.Unregister(target)

	intType := TypeOf[int]()
	registry.RegisterMorpher(NewTypedMorpher(intType, func(value interface{}) (interface{}, error) {
		return 7, nil
	}))
	actual, err = registry.Morph(intType, "1")
	require.Nil(t, err)
	assert.Equal(t, 7, actual)

	levelType := TypeOf[Level]()
	registry.RegisterFunc(levelType, func(value interface{}) (interface{}, error) {
		return int8(3), nil
	})
	actual, err = registry.Morph(levelType, "1")
	require.Nil(t, err)
	assert.Equal(t, Level(3), actual)
	registry.RegisterFunc(levelType, func(value interface{}) (interface{}, error) {
		return "3", nil
	})
	actual, err = registry.Morph(levelType, "1")
	require.Nil(t, err)
	assert.Equal(t, Level(0), actual)

	registry.Register(intType, nil)
	_, ok := registry.Lookup(intType)
	assert.False(t, ok)
	actual, err = registry.Morph(intType, "1")
	require.Nil(t, err)
	assert.Equal(t, 0, actual)
}

func TestRegistry_ConcurrentRegister(t *testing.T) {
	registry := New()
	levelType := TypeOf[Level]()
	waitGroup := sync.WaitGroup{}
	for i := 0; i < 8; i++ {
		waitGroup.Add(2)
		go func() {
			defer waitGroup.Done()
			for j := 0; j < 200; j++ {
				registry.RegisterFunc(levelType, func(value interface{}) (interface{}, error) {
					return Level(7), nil
				})
				registry.Unregister(levelType)
			}
		}()
		go func() {
			defer waitGroup.Done()
			for j := 0; j < 200; j++ {
				actual, err := registry.Morph(levelType, int8(3))
				assert.Nil(t, err)
				level, ok := actual.(Level)
				assert.True(t, ok)
				assert.True(t, level == 3 || level == 7, "unexpected level %v", level)
			}
		}()
	}
	waitGroup.Wait()
	_, ok := registry.Lookup(levelType)
	assert.False(t, ok)
}

func TestRegistry_WithoutStandard(t *testing.T) {
	registry := New(WithoutStandard())
	intType := TypeOf[int]()
	actual, err := registry.Morph(intType, 5)
	assert.Nil(t, err)
	assert.Equal(t, 5, actual)
	actual, err = registry.Morph(intType, "5")
	assert.Nil(t, err)
	assert.Equal(t, 0, actual)
	_, err = registry.Morph(TypeOf[*int](), "5")
	assert.True(t, IsKind(err, ConversionFailed))
}

func TestRegistry_Defaults(t *testing.T) {
	intType := TypeOf[int]()
	registry := New(WithDefault(intType, "-1"), WithDefault(TypeOf[bool](), "invalid"))
	assert.Equal(t, -1, registry.Default(intType))
	assert.Equal(t, false, registry.Default(TypeOf[bool]()))
	assert.Equal(t, Level(0), registry.Default(TypeOf[Level]()))
	assert.Nil(t, registry.Default(TypeOf[*int]()))

	actual, err := registry.Morph(intType, "abc")
	assert.Nil(t, err)
	assert.Equal(t, -1, actual)

	assert.NotNil(t, registry.SetDefault(intType, "abc"))
	assert.Nil(t, registry.SetDefault(intType, nil))
	assert.Equal(t, 0, registry.Default(intType))

	stringPtr := TypeOf[*string]()
	require.Nil(t, registry.SetDefault(stringPtr, "n/a"))
	actual, err = registry.Morph(stringPtr, []interface{}{1})
	assert.Nil(t, err)
	assert.Equal(t, "n/a", *actual.(*string))
}

func TestRegistry_WithDefault_Invalid(t *testing.T) {
	intType := TypeOf[int]()
	boolType := TypeOf[bool]()
	registry := New(WithDefault(intType, "abc"), WithDefault(boolType, []int{1}), WithDefault(TypeOf[float64](), "2.5"))
	assert.Equal(t, 0, registry.Default(intType))
	assert.Equal(t, false, registry.Default(boolType))
	assert.Equal(t, 2.5, registry.Default(TypeOf[float64]()))

	actual, err := registry.Morph(intType, "x")
	assert.Nil(t, err)
	assert.Equal(t, 0, actual)

	err = registry.SetDefault(boolType, []int{1})
	assert.True(t, IsKind(err, ConversionFailed))
}

func TestRegistry_MorphInto(t *testing.T) {
	registry := New()
	var count int
	require.Nil(t, registry.MorphInto(&count, "12"))
	assert.Equal(t, 12, count)

	var address *Address
	require.Nil(t, registry.MorphInto(&address, map[string]interface{}{"city": "Paris"}))
	assert.Equal(t, "Paris", address.City)
	require.Nil(t, registry.MorphInto(&address, nil))
	assert.Nil(t, address)

	assert.NotNil(t, registry.MorphInto(count, "1"))
}

func TestAs(t *testing.T) {
	registry := New()
	ints, err := As[[]int](registry, []interface{}{"1", nil, "3"})
	assert.Nil(t, err)
	assert.Equal(t, []int{1, 0, 3}, ints)

	aType, err := As[reflect.Type](registry, "map[string]int")
	assert.Nil(t, err)
	assert.Equal(t, reflect.TypeOf(map[string]int{}), aType)

	ptr, err := As[*int](registry, nil)
	assert.Nil(t, err)
	assert.Nil(t, ptr)

	_, err = As[*int](registry, "x")
	assert.NotNil(t, err)
}

func TestError(t *testing.T) {
	registry := New()
	_, err := registry.Morph(TypeOf[*int](), "abc")
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "cannot convert string to int")

	_, err = registry.Morph(TypeOf[[]*big.Int](), []string{"1", "x"})
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "[]*big.Int[1]")
	assert.ErrorIs(t, err, leaf.ErrUnsupported)
}
