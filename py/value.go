package py

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
)

// ErrUnsupported is returned by [From] when a native Go value has no literal
// rendering. It can be tested with errors.Is.
var ErrUnsupported = errors.New("unsupported value type")

// Kind identifies the variant held by a [Value].
type Kind int

const (
	KindInt Kind = iota
	KindUint
	KindFloat
	KindString
	KindList
	KindDict
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindDict:
		return "dict"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is a tagged union over the closed set of variants that render as
// Python literals. Exactly one payload field is meaningful, selected by
// Kind. Values are owned trees, not reference graphs; cyclic structures
// cannot be expressed.
type Value struct {
	Dict  map[string]Value
	List  []Value
	Str   string
	Int   int64
	Uint  uint64
	Float float64
	Kind  Kind
}

// Int creates an integer value.
func Int(i int64) Value { return Value{Kind: KindInt, Int: i} }

// Uint creates an unsigned integer value.
func Uint(u uint64) Value { return Value{Kind: KindUint, Uint: u} }

// Float creates a floating point value.
func Float(f float64) Value { return Value{Kind: KindFloat, Float: f} }

// Str creates a string value.
func Str(s string) Value { return Value{Kind: KindString, Str: s} }

// List creates a list value from the given elements.
func List(elems ...Value) Value {
	return Value{Kind: KindList, List: slices.Clone(elems)}
}

// Dict creates a dict value from the given entries.
func Dict(entries map[string]Value) Value {
	return Value{Kind: KindDict, Dict: maps.Clone(entries)}
}

// From converts a native Go value into a [Value].
//
// Supported inputs are [Value] itself, all integer and unsigned integer
// widths, float32/float64, string, slices and arrays of any supported
// element type, maps with string keys, and non-nil pointers to any of
// these. Anything else returns an error wrapping [ErrUnsupported].
func From(v any) (Value, error) {
	if v == nil {
		return Value{}, fmt.Errorf("%w: nil", ErrUnsupported)
	}

	switch x := v.(type) {
	case Value:
		return x, nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return Uint(uint64(x)), nil
	case uint8:
		return Uint(uint64(x)), nil
	case uint16:
		return Uint(uint64(x)), nil
	case uint32:
		return Uint(uint64(x)), nil
	case uint64:
		return Uint(x), nil
	case uintptr:
		return Uint(uint64(x)), nil
	case float32:
		return Float(float64(x)), nil
	case float64:
		return Float(x), nil
	case string:
		return Str(x), nil
	case []Value:
		return Value{Kind: KindList, List: slices.Clone(x)}, nil
	case map[string]Value:
		return Value{Kind: KindDict, Dict: maps.Clone(x)}, nil
	}

	return fromReflect(reflect.ValueOf(v))
}

// fromReflect handles container and pointer inputs whose concrete element
// types cannot be enumerated in a type switch.
func fromReflect(rv reflect.Value) (Value, error) {
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		list := make([]Value, rv.Len())

		for i := range list {
			elem, err := From(rv.Index(i).Interface())
			if err != nil {
				return Value{}, fmt.Errorf("element %d: %w", i, err)
			}

			list[i] = elem
		}

		return Value{Kind: KindList, List: list}, nil

	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Value{}, fmt.Errorf(
				"%w: map key %s (string keys required)",
				ErrUnsupported, rv.Type().Key(),
			)
		}

		dict := make(map[string]Value, rv.Len())

		iter := rv.MapRange()
		for iter.Next() {
			val, err := From(iter.Value().Interface())
			if err != nil {
				return Value{}, fmt.Errorf("key %q: %w", iter.Key().String(), err)
			}

			dict[iter.Key().String()] = val
		}

		return Value{Kind: KindDict, Dict: dict}, nil

	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Value{}, fmt.Errorf("%w: nil %s", ErrUnsupported, rv.Kind())
		}

		return From(rv.Elem().Interface())

	default:
		return Value{}, fmt.Errorf("%w: %s", ErrUnsupported, rv.Type())
	}
}

// MustFrom is like [From] but panics on unsupported input.
// It is intended for literals known valid at compile time.
func MustFrom(v any) Value {
	val, err := From(v)
	if err != nil {
		panic(err)
	}

	return val
}
