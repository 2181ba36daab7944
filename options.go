package morph

import (
	"reflect"

	ftime "github.com/viant/morph/format/time"
	"github.com/viant/morph/introspect"
	"github.com/viant/tagly/format/text"
)

// Options represents registry options
type Options struct {
	//TimeLayouts are tried before the built-in layouts when parsing time
	TimeLayouts []string
	//TagName is the struct tag carrying property names
	TagName string
	//CaseSensitive disables case insensitive property matching
	CaseSensitive bool
	//CaseFormat is the case format of source keys, property names are formatted with it when matching
	CaseFormat   text.CaseFormat
	Defaults     map[reflect.Type]interface{}
	Factories    map[reflect.Type]Factory
	Introspector introspect.Introspector
	NoStandard   bool
}

// Option represents registry option
type Option func(o *Options)

// DefaultOptions returns default registry options
func DefaultOptions() *Options {
	return &Options{
		TagName:   introspect.DefaultTagName,
		Defaults:  map[reflect.Type]interface{}{},
		Factories: map[reflect.Type]Factory{},
	}
}

// WithTimeLayouts returns option to add time layouts
func WithTimeLayouts(layouts ...string) Option {
	return func(o *Options) {
		o.TimeLayouts = append(o.TimeLayouts, layouts...)
	}
}

// WithDateFormats returns option to add time layouts expressed as date formats, i.e. yyyy-MM-dd
func WithDateFormats(dateFormats ...string) Option {
	return func(o *Options) {
		for _, dateFormat := range dateFormats {
			o.TimeLayouts = append(o.TimeLayouts, ftime.DateFormatToTimeLayout(dateFormat))
		}
	}
}

// WithTagName returns option to set property name tag
func WithTagName(name string) Option {
	return func(o *Options) {
		o.TagName = name
	}
}

// WithCaseSensitive returns option to control case sensitive property matching
func WithCaseSensitive(flag bool) Option {
	return func(o *Options) {
		o.CaseSensitive = flag
	}
}

// WithCaseFormat returns option to set source key case format
func WithCaseFormat(caseFormat text.CaseFormat) Option {
	return func(o *Options) {
		o.CaseFormat = caseFormat
	}
}

// WithDefault returns option to override t default value, invalid values are ignored
func WithDefault(t reflect.Type, value interface{}) Option {
	return func(o *Options) {
		o.Defaults[t] = value
	}
}

// WithFactory returns option to set bean factory
func WithFactory(t reflect.Type, factory Factory) Option {
	return func(o *Options) {
		if t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		o.Factories[t] = factory
	}
}

// WithIntrospector returns option to set bean introspector
func WithIntrospector(introspector introspect.Introspector) Option {
	return func(o *Options) {
		o.Introspector = introspector
	}
}

// WithoutStandard returns option to skip standard converters registration
func WithoutStandard() Option {
	return func(o *Options) {
		o.NoStandard = true
	}
}
