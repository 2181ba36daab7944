// Package morph coerces loosely typed values into a requested Go type.
//
// A Registry maps target types to converters (morphers) and dispatches a
// conversion to the registered converter, or falls back to the array, bean,
// map or identity converters. Arrays and beans are converted recursively
// through the registry. Conversions into primitive types never fail: an
// unconvertible value degrades to the type's default value.
//
//	registry := morph.New()
//	value, err := registry.Morph(reflect.TypeOf(0), "42")
//	ints, err := morph.As[[]int](registry, []interface{}{"1", nil, "3"})
package morph
