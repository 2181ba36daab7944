package morph

import "reflect"

// As converts value into T
func As[T any](registry *Registry, value interface{}) (T, error) {
	var ret T
	converted, err := registry.Morph(reflect.TypeOf((*T)(nil)).Elem(), value)
	if err != nil || converted == nil {
		return ret, err
	}
	return converted.(T), nil
}

// TypeOf returns reflect.Type of T, including interface types
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
