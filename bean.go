package morph

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	ftime "github.com/viant/morph/format/time"
	"github.com/viant/morph/introspect"
	"github.com/viant/morph/visitor"
	"github.com/viant/tagly/format/text"
)

type markerProvider interface {
	Marker(t reflect.Type) *introspect.Marker
}

// BeanConverter populates a new bean with properties of a map or another bean
type BeanConverter struct {
	registry *Registry
}

// Morph converts source into t struct or struct pointer type
func (c *BeanConverter) Morph(t reflect.Type, source interface{}) (interface{}, error) {
	return c.Convert(t, source)
}

// Convert instantiates t and sets every writable property present in source, converted
// through the registry. Missing properties keep their default, the first failing property
// in declaration order aborts the conversion. A *T target returns the pointer.
func (c *BeanConverter) Convert(t reflect.Type, source interface{}) (interface{}, error) {
	structType := t
	isPtr := t.Kind() == reflect.Ptr
	if isPtr {
		structType = t.Elem()
	}
	if structType.Kind() != reflect.Struct {
		return nil, newError(NoDefaultConstructor, source, t, fmt.Errorf("%v is not a struct", t))
	}
	if _, ok := indirect(source); !ok {
		if isPtr {
			return zeroOf(t), nil
		}
		return reflect.Zero(structType).Interface(), nil
	}
	properties, err := c.registry.introspector.Properties(structType)
	if err != nil {
		return nil, newError(ConversionFailed, source, t, err)
	}
	lookup, err := c.sourceOf(source)
	if err != nil {
		return nil, newError(ConversionFailed, source, t, err)
	}
	beanPtr, err := c.instantiate(structType)
	if err != nil {
		return nil, newError(NoDefaultConstructor, source, t, err)
	}
	ptr := beanPtr.UnsafePointer()
	var marker *introspect.Marker
	if provider, ok := c.registry.introspector.(markerProvider); ok {
		if marker = provider.Marker(structType); marker != nil {
			marker.Init(ptr)
		}
	}
	for _, property := range properties {
		if !property.CanSet() {
			continue
		}
		value, ok := lookup(property.Name)
		if !ok {
			continue
		}
		converted, err := c.morphProperty(property, value)
		if err != nil {
			return nil, propertyError(err, source, t, property.Name)
		}
		if err = property.Set(ptr, converted); err != nil {
			return nil, propertyError(err, source, t, property.Name)
		}
		if marker != nil {
			marker.Set(ptr, property.Name, true)
		}
	}
	if isPtr {
		return beanPtr.Interface(), nil
	}
	return beanPtr.Elem().Interface(), nil
}

func (c *BeanConverter) morphProperty(property *introspect.Property, value interface{}) (interface{}, error) {
	if property.TimeLayout != "" && (property.Type == timeType || property.Type == timePtrType) {
		if literal, ok := value.(string); ok {
			if ts, err := ftime.Parse(property.TimeLayout, strings.TrimSpace(literal)); err == nil {
				if property.Type == timePtrType {
					return &ts, nil
				}
				return ts, nil
			}
		}
	}
	return c.registry.Morph(property.Type, value)
}

func (c *BeanConverter) instantiate(structType reflect.Type) (reflect.Value, error) {
	value, ok := c.registry.factories.Load(structType)
	if !ok {
		return reflect.New(structType), nil
	}
	bean, err := value.(Factory)()
	if err != nil {
		return reflect.Value{}, err
	}
	ret := reflect.ValueOf(bean)
	if ret.Type() != reflect.PtrTo(structType) || ret.IsNil() {
		return reflect.Value{}, fmt.Errorf("factory returned %T, expected *%v", bean, structType)
	}
	return ret, nil
}

// sourceOf returns property value lookup of a map or bean source
func (c *BeanConverter) sourceOf(source interface{}) (func(name string) (interface{}, bool), error) {
	values := map[string]interface{}{}
	rValue, _ := indirect(source)
	switch rValue.Kind() {
	case reflect.Map:
		visit, err := visitor.EntriesOf(rValue.Interface())
		if err != nil {
			return nil, err
		}
		_ = visit(func(key string, element interface{}) (bool, error) {
			values[key] = element
			return true, nil
		})
	case reflect.Struct:
		var beanPtr reflect.Value
		if rValue.CanAddr() {
			beanPtr = rValue.Addr()
		} else {
			beanPtr = reflect.New(rValue.Type())
			beanPtr.Elem().Set(rValue)
		}
		properties, err := c.registry.introspector.Properties(rValue.Type())
		if err != nil {
			return nil, err
		}
		ptr := beanPtr.UnsafePointer()
		for _, property := range properties {
			if _, ok := values[property.Name]; !ok {
				values[property.Name] = property.Get(ptr)
			}
		}
	default:
		return nil, fmt.Errorf("unsupported bean source %T", source)
	}
	return c.matcher(values), nil
}

// matcher matches property names: exact name, name in the configured case format, then case insensitive
func (c *BeanConverter) matcher(values map[string]interface{}) func(name string) (interface{}, bool) {
	options := c.registry.options
	var folded map[string]interface{}
	if !options.CaseSensitive {
		folded = make(map[string]interface{}, len(values))
		for _, key := range sortedKeys(values) {
			lower := strings.ToLower(key)
			if _, ok := folded[lower]; !ok {
				folded[lower] = values[key]
			}
		}
	}
	return func(name string) (interface{}, bool) {
		if value, ok := values[name]; ok {
			return value, true
		}
		if options.CaseFormat.IsDefined() {
			src := text.DetectCaseFormat(name)
			if !src.IsDefined() {
				src = text.CaseFormatUpperCamel
			}
			if value, ok := values[src.Format(name, options.CaseFormat)]; ok {
				return value, true
			}
		}
		if folded != nil {
			value, ok := folded[strings.ToLower(name)]
			return value, ok
		}
		return nil, false
	}
}

func sortedKeys(values map[string]interface{}) []string {
	ret := make([]string, 0, len(values))
	for key := range values {
		ret = append(ret, key)
	}
	sort.Strings(ret)
	return ret
}
