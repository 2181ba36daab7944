package morph

import (
	"encoding"
	"fmt"
	"reflect"
	"sync"

	"github.com/viant/morph/introspect"
)

// Registry maps target types to converters and dispatches conversions
type Registry struct {
	options      Options
	introspector introspect.Introspector
	morphers     sync.Map //reflect.Type -> Morpher
	defaults     sync.Map //reflect.Type -> interface{}
	factories    sync.Map //reflect.Type -> Factory
	names        sync.Map //string -> reflect.Type
	arrays       *ArrayConverter
	beans        *BeanConverter
	maps         *MapConverter
}

// Register installs or replaces t converter, nil morpher removes it
func (r *Registry) Register(t reflect.Type, morpher Morpher) {
	if morpher == nil {
		r.Unregister(t)
		return
	}
	r.morphers.Store(t, morpher)
}

// RegisterFunc registers converter function
func (r *Registry) RegisterFunc(t reflect.Type, fn func(value interface{}) (interface{}, error)) {
	r.Register(t, MorpherFunc(fn))
}

// RegisterMorpher registers a converter for the type it declares
func (r *Registry) RegisterMorpher(morpher TypedMorpher) {
	r.Register(morpher.MorphsTo(), morpher)
}

// Unregister removes t converter
func (r *Registry) Unregister(t reflect.Type) {
	r.morphers.Delete(t)
}

// Lookup returns converter explicitly registered for t
func (r *Registry) Lookup(t reflect.Type) (Morpher, bool) {
	morpher, ok := r.morphers.Load(t)
	if !ok {
		return nil, false
	}
	return morpher.(Morpher), true
}

// RegisterFactory sets t bean factory
func (r *Registry) RegisterFactory(t reflect.Type, factory Factory) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if factory == nil {
		r.factories.Delete(t)
		return
	}
	r.factories.Store(t, factory)
}

// Arrays returns array converter
func (r *Registry) Arrays() *ArrayConverter {
	return r.arrays
}

// Beans returns bean converter
func (r *Registry) Beans() *BeanConverter {
	return r.beans
}

// Maps returns map converter
func (r *Registry) Maps() *MapConverter {
	return r.maps
}

// Introspector returns bean introspector
func (r *Registry) Introspector() introspect.Introspector {
	return r.introspector
}

// Morph converts value into t. Failed conversions into primitive types return the default value,
// other failures return *Error.
func (r *Registry) Morph(t reflect.Type, value interface{}) (interface{}, error) {
	if t == nil {
		return nil, newError(ConversionFailed, value, t, fmt.Errorf("target type was nil"))
	}
	ret, err := r.morph(t, value)
	if err != nil {
		if defaultValue, ok := r.degrade(t); ok {
			return defaultValue, nil
		}
		return nil, err
	}
	return ret, nil
}

// MorphInto converts value into the type dest points to and assigns it
func (r *Registry) MorphInto(dest interface{}, value interface{}) error {
	destValue := reflect.ValueOf(dest)
	if destValue.Kind() != reflect.Ptr || destValue.IsNil() {
		return newError(ConversionFailed, value, typeOf(dest), fmt.Errorf("destination must be a non nil pointer"))
	}
	target := destValue.Elem()
	ret, err := r.Morph(target.Type(), value)
	if err != nil {
		return err
	}
	if ret == nil {
		target.Set(reflect.Zero(target.Type()))
		return nil
	}
	target.Set(reflect.ValueOf(ret))
	return nil
}

// morph converts value without degrading to the default value
func (r *Registry) morph(t reflect.Type, value interface{}) (interface{}, error) {
	if isNil(value) {
		if IsNullable(t) {
			return zeroOf(t), nil
		}
		value = nil
	} else if reflect.TypeOf(value) == t {
		return value, nil
	}
	ret, err := r.resolve(t).Morph(value)
	if err != nil {
		return nil, asError(err, value, t)
	}
	return r.normalize(t, value, ret)
}

// resolve returns explicit t converter or a fallback
func (r *Registry) resolve(t reflect.Type) Morpher {
	morpher, err := r.explicit(t)
	if err == nil {
		return morpher
	}
	fallback := r.fallback(t)
	if t.Kind() != reflect.Ptr && t.Kind() != reflect.Interface && reflect.PtrTo(t).Implements(textUnmarshalerType) {
		return &textMorpher{target: t, next: fallback}
	}
	return fallback
}

func (r *Registry) explicit(t reflect.Type) (Morpher, error) {
	if morpher, ok := r.Lookup(t); ok {
		return morpher, nil
	}
	return nil, &Error{Kind: UnregisteredTargetType, Target: t, Index: -1}
}

func (r *Registry) fallback(t reflect.Type) Morpher {
	if basic, ok := basicTypes[t.Kind()]; ok && basic != t {
		if morpher, ok := r.Lookup(basic); ok {
			return morpher
		}
	}
	if t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.Uint8 && t != bytesType {
		if morpher, ok := r.Lookup(bytesType); ok {
			return morpher
		}
	}
	switch t.Kind() {
	case reflect.Ptr:
		return r.box(t)
	case reflect.Slice, reflect.Array:
		return MorpherFunc(func(value interface{}) (interface{}, error) {
			return r.arrays.Morph(t, value)
		})
	case reflect.Struct:
		return MorpherFunc(func(value interface{}) (interface{}, error) {
			return r.beans.Morph(t, value)
		})
	case reflect.Map:
		return MorpherFunc(func(value interface{}) (interface{}, error) {
			return r.maps.Morph(t, value)
		})
	}
	return Identity(t)
}

// box converts value into the pointer element type and returns a pointer to the result
func (r *Registry) box(t reflect.Type) Morpher {
	return MorpherFunc(func(value interface{}) (interface{}, error) {
		elem, err := r.morph(t.Elem(), value)
		if err != nil {
			return nil, err
		}
		ret := reflect.New(t.Elem())
		if elem != nil {
			ret.Elem().Set(reflect.ValueOf(elem))
		}
		return ret.Interface(), nil
	})
}

// normalize ensures converter result is of t type
func (r *Registry) normalize(t reflect.Type, value, ret interface{}) (interface{}, error) {
	if ret == nil {
		if IsNullable(t) {
			return zeroOf(t), nil
		}
		return nil, newError(ConversionFailed, value, t, fmt.Errorf("converter returned nil"))
	}
	retType := reflect.TypeOf(ret)
	if retType == t {
		return ret, nil
	}
	if t.Kind() == reflect.Interface && retType.Implements(t) {
		return ret, nil
	}
	if retType.Kind() == t.Kind() && retType.ConvertibleTo(t) {
		return reflect.ValueOf(ret).Convert(t).Interface(), nil
	}
	return nil, newError(ConversionFailed, value, t, fmt.Errorf("converter returned %T", ret))
}

type textMorpher struct {
	target reflect.Type
	next   Morpher
}

// Morph unmarshals text sources, other sources go to the next converter
func (m *textMorpher) Morph(value interface{}) (interface{}, error) {
	var data []byte
	switch actual := value.(type) {
	case string:
		data = []byte(actual)
	case []byte:
		data = actual
	default:
		return m.next.Morph(value)
	}
	ret := reflect.New(m.target)
	if err := ret.Interface().(encoding.TextUnmarshaler).UnmarshalText(data); err != nil {
		return nil, err
	}
	return ret.Elem().Interface(), nil
}

// New creates a registry with the standard converters registered
func New(opts ...Option) *Registry {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	if options.TagName == "" {
		options.TagName = introspect.DefaultTagName
	}
	if options.Introspector == nil {
		options.Introspector = introspect.New(introspect.WithTagName(options.TagName))
	}
	ret := &Registry{options: *options, introspector: options.Introspector}
	ret.arrays = &ArrayConverter{registry: ret}
	ret.beans = &BeanConverter{registry: ret}
	ret.maps = &MapConverter{registry: ret}
	ret.registerNames()
	if !options.NoStandard {
		ret.registerStandard()
	}
	for t, factory := range options.Factories {
		ret.RegisterFactory(t, factory)
	}
	for t, value := range options.Defaults {
		_ = ret.SetDefault(t, value)
	}
	return ret
}
