package morph

import (
	"fmt"
	"reflect"

	"github.com/viant/morph/visitor"
)

// MapConverter converts maps and beans into a map type, keys and values go through the registry
type MapConverter struct {
	registry *Registry
}

// Morph converts source into t map type
func (c *MapConverter) Morph(t reflect.Type, source interface{}) (interface{}, error) {
	if t.Kind() != reflect.Map {
		return nil, newError(ConversionFailed, source, t, fmt.Errorf("expected map type"))
	}
	rValue, ok := indirect(source)
	if !ok {
		return zeroOf(t), nil
	}
	ret := reflect.MakeMap(t)
	put := func(key, value interface{}) (bool, error) {
		convertedKey, err := c.registry.Morph(t.Key(), key)
		if err != nil {
			return false, propertyError(err, source, t, fmt.Sprint(key))
		}
		converted, err := c.registry.Morph(t.Elem(), value)
		if err != nil {
			return false, propertyError(err, source, t, fmt.Sprint(key))
		}
		keyValue := reflect.Zero(t.Key())
		if convertedKey != nil {
			keyValue = reflect.ValueOf(convertedKey)
		}
		item := reflect.Zero(t.Elem())
		if converted != nil {
			item = reflect.ValueOf(converted)
		}
		ret.SetMapIndex(keyValue, item)
		return true, nil
	}
	switch rValue.Kind() {
	case reflect.Map:
		if rValue.IsNil() {
			return zeroOf(t), nil
		}
		visit, err := visitor.MapOf(rValue.Interface())
		if err != nil {
			return nil, newError(ConversionFailed, source, t, err)
		}
		if err = visit(put); err != nil {
			return nil, err
		}
	case reflect.Struct:
		beanPtr := reflect.New(rValue.Type())
		beanPtr.Elem().Set(rValue)
		properties, err := c.registry.introspector.Properties(rValue.Type())
		if err != nil {
			return nil, newError(ConversionFailed, source, t, err)
		}
		ptr := beanPtr.UnsafePointer()
		for _, property := range properties {
			if _, err = put(property.Name, property.Get(ptr)); err != nil {
				return nil, err
			}
		}
	default:
		return nil, newError(ConversionFailed, source, t, fmt.Errorf("unsupported map source %T", source))
	}
	return ret.Interface(), nil
}
