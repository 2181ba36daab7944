package morph

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/viant/morph/leaf"
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const bracketBlockToken = iota + 1

var bracketBlockMatcher = parsly.NewToken(bracketBlockToken, "[ .... ]", matcher.NewBlock('[', ']', '\\'))

var builtinNames = map[string]reflect.Type{
	"bool":        boolType,
	"int":         reflect.TypeOf(int(0)),
	"int8":        reflect.TypeOf(int8(0)),
	"int16":       reflect.TypeOf(int16(0)),
	"int32":       reflect.TypeOf(int32(0)),
	"int64":       reflect.TypeOf(int64(0)),
	"uint":        reflect.TypeOf(uint(0)),
	"uint8":       reflect.TypeOf(uint8(0)),
	"uint16":      reflect.TypeOf(uint16(0)),
	"uint32":      reflect.TypeOf(uint32(0)),
	"uint64":      reflect.TypeOf(uint64(0)),
	"uintptr":     reflect.TypeOf(uintptr(0)),
	"float32":     reflect.TypeOf(float32(0)),
	"float64":     reflect.TypeOf(float64(0)),
	"complex64":   reflect.TypeOf(complex64(0)),
	"complex128":  reflect.TypeOf(complex128(0)),
	"string":      stringType,
	"byte":        reflect.TypeOf(byte(0)),
	"rune":        reflect.TypeOf(rune(0)),
	"char":        reflect.TypeOf(leaf.Char(0)),
	"time":        timeType,
	"bigint":      bigIntType,
	"decimal":     bigFloatType,
	"any":         interfaceType,
	"interface{}": interfaceType,
	"type":        typeType,
}

func (r *Registry) registerNames() {
	for name, t := range builtinNames {
		r.RegisterName(name, t)
	}
}

// RegisterName binds a type name used by type expressions
func (r *Registry) RegisterName(name string, t reflect.Type) {
	r.names.Store(name, t)
}

// LookupName returns a named type
func (r *Registry) LookupName(name string) (reflect.Type, bool) {
	t, ok := r.names.Load(name)
	if !ok {
		return nil, false
	}
	return t.(reflect.Type), true
}

// TypeNames returns sorted registered type names
func (r *Registry) TypeNames() []string {
	var ret []string
	r.names.Range(func(key, _ interface{}) bool {
		ret = append(ret, key.(string))
		return true
	})
	sort.Strings(ret)
	return ret
}

// ParseType resolves a type expression: a registered name, *T, []T, [N]T or map[K]V
func (r *Registry) ParseType(expr string) (reflect.Type, error) {
	expr = strings.TrimSpace(expr)
	switch {
	case expr == "":
		return nil, fmt.Errorf("type expression was empty")
	case strings.HasPrefix(expr, "*"):
		elem, err := r.ParseType(expr[1:])
		if err != nil {
			return nil, err
		}
		return reflect.PtrTo(elem), nil
	case strings.HasPrefix(expr, "["):
		return r.parseSequence(expr)
	case strings.HasPrefix(expr, "map["):
		return r.parseMap(expr)
	}
	if t, ok := r.LookupName(expr); ok {
		return t, nil
	}
	return nil, fmt.Errorf("unknown type: %v", expr)
}

func (r *Registry) parseSequence(expr string) (reflect.Type, error) {
	cursor := parsly.NewCursor("", []byte(expr), 0)
	match := cursor.MatchAny(bracketBlockMatcher)
	if match.Code != bracketBlockToken {
		return nil, fmt.Errorf("invalid sequence type: %v", expr)
	}
	size := bracketContent(match.Text(cursor))
	elem, err := r.ParseType(string(cursor.Input[cursor.Pos:]))
	if err != nil {
		return nil, err
	}
	if size == "" {
		return reflect.SliceOf(elem), nil
	}
	length, err := strconv.Atoi(size)
	if err != nil || length < 0 {
		return nil, fmt.Errorf("invalid array length: %v", expr)
	}
	return reflect.ArrayOf(length, elem), nil
}

func (r *Registry) parseMap(expr string) (reflect.Type, error) {
	cursor := parsly.NewCursor("", []byte(expr), len("map"))
	match := cursor.MatchAny(bracketBlockMatcher)
	if match.Code != bracketBlockToken {
		return nil, fmt.Errorf("invalid map type: %v", expr)
	}
	key, err := r.ParseType(bracketContent(match.Text(cursor)))
	if err != nil {
		return nil, err
	}
	if !key.Comparable() {
		return nil, fmt.Errorf("invalid map key type: %v", key)
	}
	elem, err := r.ParseType(string(cursor.Input[cursor.Pos:]))
	if err != nil {
		return nil, err
	}
	return reflect.MapOf(key, elem), nil
}

func bracketContent(block string) string {
	return strings.TrimSpace(block[1 : len(block)-1])
}

// morphType is the reflect.Type converter, it accepts a type or a type expression
func (r *Registry) morphType(value interface{}) (interface{}, error) {
	switch actual := value.(type) {
	case reflect.Type:
		return actual, nil
	case string:
		return r.ParseType(actual)
	}
	return nil, fmt.Errorf("cannot convert %T to type: %w", value, leaf.ErrUnsupported)
}
