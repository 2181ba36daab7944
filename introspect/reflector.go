package introspect

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	ftime "github.com/viant/morph/format/time"
	"github.com/viant/tagly/format"
	"github.com/viant/xunsafe"
)

const (
	//TagName defines morph tag, readonly skips the setter, - ignores the field
	TagName = "morph"
	//DefaultTagName defines the default name tag
	DefaultTagName = "json"
)

type (
	// Introspector describes properties of a bean type
	Introspector interface {
		Properties(t reflect.Type) (Properties, error)
	}

	// Reflector is a reflection based Introspector, results are cached per type
	Reflector struct {
		tagName string
		cache   sync.Map
	}

	// Option represents reflector option
	Option func(r *Reflector)

	entry struct {
		properties Properties
		marker     *Marker
		err        error
	}
)

// WithTagName returns option to set the name tag
func WithTagName(name string) Option {
	return func(r *Reflector) {
		r.tagName = name
	}
}

// Properties returns bean properties of a struct or a pointer to struct type
func (r *Reflector) Properties(t reflect.Type) (Properties, error) {
	anEntry := r.entry(t)
	return anEntry.properties, anEntry.err
}

// Marker returns presence marker of a struct type or nil
func (r *Reflector) Marker(t reflect.Type) *Marker {
	return r.entry(t).marker
}

func (r *Reflector) entry(t reflect.Type) *entry {
	if t == nil {
		return &entry{err: fmt.Errorf("type was nil")}
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if cached, ok := r.cache.Load(t); ok {
		return cached.(*entry)
	}
	anEntry := r.build(t)
	actual, _ := r.cache.LoadOrStore(t, anEntry)
	return actual.(*entry)
}

func (r *Reflector) build(t reflect.Type) *entry {
	if t.Kind() != reflect.Struct {
		return &entry{err: fmt.Errorf("expected struct, but had %v", t)}
	}
	ret := &entry{}
	var holder *reflect.StructField
	r.walk(t, 0, &ret.properties, &holder)
	for i, property := range ret.properties {
		property.Position = i
	}
	if holder != nil {
		ret.marker = newMarker(*holder, ret.properties)
	}
	return ret
}

func (r *Reflector) walk(t reflect.Type, offset uintptr, properties *Properties, holder **reflect.StructField) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		field.Offset += offset
		if IsMarker(field.Tag) {
			if *holder == nil && offset == 0 {
				*holder = &field
			}
			continue
		}
		morphTag := field.Tag.Get(TagName)
		if morphTag == "-" {
			continue
		}
		if field.Anonymous && field.Type.Kind() == reflect.Struct && field.Tag.Get(r.tagName) == "" {
			r.walk(field.Type, field.Offset, properties, holder)
			continue
		}
		if field.PkgPath != "" {
			continue
		}
		tag, _ := format.Parse(field.Tag)
		if tag == nil {
			tag = &format.Tag{}
		}
		if tag.Ignore {
			continue
		}
		name := tag.Name
		tagValue := field.Tag.Get(r.tagName)
		if tagValue == "-" {
			continue
		}
		if name == "" {
			if index := strings.Index(tagValue, ","); index != -1 {
				tagValue = tagValue[:index]
			}
			name = tagValue
		}
		if name == "" {
			name = field.Name
		}
		timeLayout := tag.TimeLayout
		if tag.DateFormat != "" {
			timeLayout = ftime.DateFormatToTimeLayout(tag.DateFormat)
		}
		if timeLayout == "" {
			timeLayout = field.Tag.Get("timeLayout")
		}
		*properties = append(*properties, &Property{
			Name:       name,
			FieldName:  field.Name,
			Type:       field.Type,
			TimeLayout: timeLayout,
			readOnly:   hasOption(morphTag, "readonly"),
			field:      xunsafe.NewField(field),
		})
	}
}

func hasOption(tag, option string) bool {
	for _, candidate := range strings.Split(tag, ",") {
		if strings.EqualFold(strings.TrimSpace(candidate), option) {
			return true
		}
	}
	return false
}

// New creates a reflector
func New(opts ...Option) *Reflector {
	ret := &Reflector{tagName: DefaultTagName}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.tagName == "" {
		ret.tagName = DefaultTagName
	}
	return ret
}
