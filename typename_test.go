package morph

import (
	"math/big"
	"reflect"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_ParseType(t *testing.T) {
	registry := New()
	registry.RegisterName("Address", TypeOf[Address]())
	var testCases = []struct {
		description string
		expr        string
		expect      reflect.Type
		hasError    bool
	}{
		{description: "builtin", expr: "int", expect: TypeOf[int]()},
		{description: "pointer", expr: "*int", expect: TypeOf[*int]()},
		{description: "slice", expr: " []string ", expect: TypeOf[[]string]()},
		{description: "array", expr: "[3]int", expect: TypeOf[[3]int]()},
		{description: "map of slices", expr: "map[string][]int", expect: TypeOf[map[string][]int]()},
		{description: "nested map", expr: "map[string]map[int]bool", expect: TypeOf[map[string]map[int]bool]()},
		{description: "array key", expr: "map[[2]int]bool", expect: TypeOf[map[[2]int]bool]()},
		{description: "slice of maps", expr: "[]map[string]int", expect: TypeOf[[]map[string]int]()},
		{description: "time", expr: "time", expect: TypeOf[time.Time]()},
		{description: "decimal", expr: "decimal", expect: TypeOf[*big.Float]()},
		{description: "registered bean", expr: "[]*Address", expect: TypeOf[[]*Address]()},
		{description: "empty", expr: "", hasError: true},
		{description: "unknown", expr: "foo", hasError: true},
		{description: "not comparable key", expr: "map[[]int]string", hasError: true},
		{description: "invalid length", expr: "[x]int", hasError: true},
		{description: "unclosed map", expr: "map[string", hasError: true},
	}
	for _, testCase := range testCases {
		actual, err := registry.ParseType(testCase.expr)
		if testCase.hasError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestRegistry_TypeNames(t *testing.T) {
	registry := New()
	registry.RegisterName("Address", TypeOf[Address]())
	names := registry.TypeNames()
	assert.True(t, sort.StringsAreSorted(names))
	assert.Contains(t, names, "Address")
	assert.Contains(t, names, "bigint")
	addressType, ok := registry.LookupName("Address")
	assert.True(t, ok)
	assert.Equal(t, TypeOf[Address](), addressType)
	_, ok = registry.LookupName("Missing")
	assert.False(t, ok)
}
