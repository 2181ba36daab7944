package morph

import (
	"errors"
	"fmt"
	"reflect"
)

// Kind classifies conversion errors
type Kind string

const (
	//ConversionFailed source value is incompatible with the target type
	ConversionFailed = Kind("ConversionFailed")
	//UnsupportedSourceShape array converter received a non sequence, non scalar source
	UnsupportedSourceShape = Kind("UnsupportedSourceShape")
	//NoDefaultConstructor bean converter cannot instantiate the target
	NoDefaultConstructor = Kind("NoDefaultConstructor")
	//UnregisteredTargetType no converter is registered, resolved by fallback and never returned by Morph
	UnregisteredTargetType = Kind("UnregisteredTargetType")
)

var (
	ErrConversionFailed       = errors.New("conversion failed")
	ErrUnsupportedSourceShape = errors.New("unsupported source shape")
	ErrNoDefaultConstructor   = errors.New("no default constructor")
	ErrUnregisteredTargetType = errors.New("unregistered target type")
)

var sentinels = map[Kind]error{
	ConversionFailed:       ErrConversionFailed,
	UnsupportedSourceShape: ErrUnsupportedSourceShape,
	NoDefaultConstructor:   ErrNoDefaultConstructor,
	UnregisteredTargetType: ErrUnregisteredTargetType,
}

// Error represents a conversion error. Property or Index (-1 when not applicable)
// locate the failing bean property or array element, Err holds the underlying cause.
type Error struct {
	Kind     Kind
	Source   reflect.Type
	Target   reflect.Type
	Property string
	Index    int
	Err      error
}

// Error returns error message
func (e *Error) Error() string {
	switch {
	case e.Property != "":
		return fmt.Sprintf("%v.%v: %v", typeName(e.Target), e.Property, e.Err)
	case e.Index >= 0:
		return fmt.Sprintf("%v[%d]: %v", typeName(e.Target), e.Index, e.Err)
	}
	message := fmt.Sprintf("%v: cannot convert %v to %v", e.Kind, typeName(e.Source), typeName(e.Target))
	if e.Err != nil {
		message += ": " + e.Err.Error()
	}
	return message
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel of the error kind
func (e *Error) Is(target error) bool {
	return sentinels[e.Kind] == target
}

// IsKind returns true if err is a conversion error of the supplied kind
func IsKind(err error, kind Kind) bool {
	var conversionError *Error
	if !errors.As(err, &conversionError) {
		return false
	}
	return conversionError.Kind == kind
}

func kindOf(err error) Kind {
	var conversionError *Error
	if errors.As(err, &conversionError) {
		return conversionError.Kind
	}
	return ConversionFailed
}

func newError(kind Kind, value interface{}, target reflect.Type, err error) *Error {
	return &Error{Kind: kind, Source: typeOf(value), Target: target, Index: -1, Err: err}
}

func propertyError(err error, value interface{}, target reflect.Type, property string) *Error {
	return &Error{Kind: kindOf(err), Source: typeOf(value), Target: target, Property: property, Index: -1, Err: err}
}

func elementError(err error, value interface{}, target reflect.Type, index int) *Error {
	return &Error{Kind: kindOf(err), Source: typeOf(value), Target: target, Index: index, Err: err}
}

// asError ensures a converter error is a conversion error
func asError(err error, value interface{}, target reflect.Type) error {
	var conversionError *Error
	if errors.As(err, &conversionError) {
		return err
	}
	return newError(ConversionFailed, value, target, err)
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	return t.String()
}
