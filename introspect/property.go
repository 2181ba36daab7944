package introspect

import (
	"fmt"
	"reflect"
	"strings"
	"unsafe"

	"github.com/viant/xunsafe"
)

// Property describes a single bean property
type Property struct {
	Name       string
	FieldName  string
	Type       reflect.Type
	TimeLayout string
	Position   int
	readOnly   bool
	field      *xunsafe.Field
}

// CanSet returns true if property has a setter
func (p *Property) CanSet() bool {
	return !p.readOnly
}

// Get returns property value of the struct pointed by ptr
func (p *Property) Get(ptr unsafe.Pointer) interface{} {
	return p.field.Value(ptr)
}

// Set assigns value to the struct pointed by ptr, nil sets the zero value
func (p *Property) Set(ptr unsafe.Pointer, value interface{}) error {
	if p.readOnly {
		return fmt.Errorf("property %v is read only", p.Name)
	}
	target := reflect.NewAt(p.Type, p.field.Pointer(ptr)).Elem()
	if value == nil {
		target.Set(reflect.Zero(p.Type))
		return nil
	}
	rValue := reflect.ValueOf(value)
	if !rValue.Type().AssignableTo(p.Type) {
		return fmt.Errorf("cannot assign %T to property %v of type %v", value, p.Name, p.Type)
	}
	target.Set(rValue)
	return nil
}

// Properties represents ordered bean properties
type Properties []*Property

// Lookup returns a property by exact name
func (p Properties) Lookup(name string) *Property {
	for _, candidate := range p {
		if candidate.Name == name {
			return candidate
		}
	}
	return nil
}

// Fold returns properties indexed by lower case name; the first declared property wins
func (p Properties) Fold() map[string]*Property {
	ret := make(map[string]*Property, len(p))
	for _, candidate := range p {
		key := strings.ToLower(candidate.Name)
		if _, ok := ret[key]; !ok {
			ret[key] = candidate
		}
	}
	return ret
}
