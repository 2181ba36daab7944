package introspect

import (
	"reflect"
	"strings"
	"unsafe"

	"github.com/viant/xunsafe"
)

const (
	//MarkerTag defines presence marker holder tag
	MarkerTag = "presenceMarker"

	legacyMarkerTag = "presenceIndex"

	legacyTagFragment = "presence=true"
)

// IsMarker returns true if the field tag marks a presence holder
func IsMarker(tag reflect.StructTag) bool {
	if _, ok := tag.Lookup(MarkerTag); ok {
		return true
	}
	if _, ok := tag.Lookup(legacyMarkerTag); ok {
		return true
	}
	return strings.Contains(string(tag), legacyTagFragment)
}

// Marker flags which properties were assigned. The holder is a struct (or pointer to struct)
// of bool fields named after the bean fields.
type Marker struct {
	holder     *xunsafe.Field
	holderType reflect.Type
	isPtr      bool
	flags      map[string]*xunsafe.Field //by property name
}

// Init allocates the holder when it is a nil pointer
func (m *Marker) Init(ptr unsafe.Pointer) {
	if m.isPtr && m.holder.IsNil(ptr) {
		m.holder.SetValue(ptr, reflect.New(m.holderType).Interface())
	}
}

// Set flags a property, it returns false when the property has no flag or the holder is nil
func (m *Marker) Set(ptr unsafe.Pointer, name string, flag bool) bool {
	flagField, ok := m.flags[name]
	if !ok {
		return false
	}
	holderPtr := m.holderPointer(ptr)
	if holderPtr == nil {
		return false
	}
	flagField.SetBool(holderPtr, flag)
	return true
}

// IsSet returns true if the property was flagged, without a flag a property is assumed set
func (m *Marker) IsSet(ptr unsafe.Pointer, name string) bool {
	flagField, ok := m.flags[name]
	if !ok {
		return true
	}
	holderPtr := m.holderPointer(ptr)
	if holderPtr == nil {
		return true
	}
	return flagField.Bool(holderPtr)
}

func (m *Marker) holderPointer(ptr unsafe.Pointer) unsafe.Pointer {
	if !m.isPtr {
		return m.holder.Pointer(ptr)
	}
	if m.holder.IsNil(ptr) {
		return nil
	}
	return m.holder.ValuePointer(ptr)
}

func newMarker(field reflect.StructField, properties Properties) *Marker {
	holderType := field.Type
	isPtr := holderType.Kind() == reflect.Ptr
	if isPtr {
		holderType = holderType.Elem()
	}
	if holderType.Kind() != reflect.Struct {
		return nil
	}
	ret := &Marker{holder: xunsafe.NewField(field), holderType: holderType, isPtr: isPtr, flags: map[string]*xunsafe.Field{}}
	for i := 0; i < holderType.NumField(); i++ {
		flagField := holderType.Field(i)
		if flagField.Type.Kind() != reflect.Bool {
			continue
		}
		for _, property := range properties {
			if property.FieldName == flagField.Name {
				ret.flags[property.Name] = xunsafe.NewField(flagField)
			}
		}
	}
	return ret
}
