package visitor

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestSequenceOf(t *testing.T) {
	var testCases = []struct {
		description string
		value       interface{}
		expect      []interface{}
		hasError    bool
	}{
		{description: "interface slice", value: []interface{}{"a", 1, 3.14, true}, expect: []interface{}{"a", 1, 3.14, true}},
		{description: "typed slice", value: []string{"a", "b"}, expect: []interface{}{"a", "b"}},
		{description: "reflection slice", value: []uint8{1, 2}, expect: []interface{}{uint8(1), uint8(2)}},
		{description: "fixed array", value: [2]int{4, 5}, expect: []interface{}{4, 5}},
		{description: "map", value: map[string]int{}, hasError: true},
	}
	for _, testCase := range testCases {
		visit, err := SequenceOf(testCase.value)
		if testCase.hasError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		var actual []interface{}
		err = visit(func(index int, element interface{}) (bool, error) {
			assert.Equal(t, len(actual), index, testCase.description)
			actual = append(actual, element)
			return true, nil
		})
		assert.Nil(t, err, testCase.description)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
		assert.Equal(t, len(testCase.expect), Len(testCase.value), testCase.description)
	}
}

func TestSequenceOf_Stop(t *testing.T) {
	visit, err := SequenceOf([]int{1, 2, 3})
	assert.Nil(t, err)
	count := 0
	err = visit(func(index int, element interface{}) (bool, error) {
		count++
		return index < 1, nil
	})
	assert.Nil(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, -1, Len(10))
}
