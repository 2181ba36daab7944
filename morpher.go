package morph

import "reflect"

type (
	// Morpher converts a value into the type it is registered for
	Morpher interface {
		Morph(value interface{}) (interface{}, error)
	}

	// TypedMorpher is a Morpher that declares its target type
	TypedMorpher interface {
		Morpher
		MorphsTo() reflect.Type
	}

	// MorpherFunc adapts a function to Morpher
	MorpherFunc func(value interface{}) (interface{}, error)

	// Factory creates a new bean instance, it returns a pointer to the bean struct
	Factory func() (interface{}, error)
)

// Morph calls f
func (f MorpherFunc) Morph(value interface{}) (interface{}, error) {
	return f(value)
}

type typedMorpher struct {
	Morpher
	target reflect.Type
}

func (m *typedMorpher) MorphsTo() reflect.Type {
	return m.target
}

// NewTypedMorpher binds a converter function to its target type
func NewTypedMorpher(target reflect.Type, fn func(value interface{}) (interface{}, error)) TypedMorpher {
	return &typedMorpher{Morpher: MorpherFunc(fn), target: target}
}
