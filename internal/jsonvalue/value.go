// Package jsonvalue models parsed JSON documents as a closed set of value
// types so that comparison code can switch over them exhaustively.
package jsonvalue

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns string representation of Kind
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// IsPrimitive reports whether the kind is a leaf kind (not array or object).
func (k Kind) IsPrimitive() bool {
	return k != KindArray && k != KindObject
}

// Value is one node of a JSON tree. The only implementations are the types
// declared in this package.
type Value interface {
	Kind() Kind
	sealed()
}

type (
	// Null is the JSON null literal.
	Null struct{}
	// Bool is a JSON boolean.
	Bool bool
	// Number is a JSON number. All numbers are held as float64.
	Number float64
	// String is a JSON string.
	String string
	// Array is an ordered JSON array.
	Array []Value
	// Object is a JSON object. Key order is not retained; marshaling always
	// emits keys in lexicographic order.
	Object map[string]Value
)

func (Null) Kind() Kind   { return KindNull }
func (Bool) Kind() Kind   { return KindBool }
func (Number) Kind() Kind { return KindNumber }
func (String) Kind() Kind { return KindString }
func (Array) Kind() Kind  { return KindArray }
func (Object) Kind() Kind { return KindObject }

func (Null) sealed()   {}
func (Bool) sealed()   {}
func (Number) sealed() {}
func (String) sealed() {}
func (Array) sealed()  {}
func (Object) sealed() {}

// KindOf returns the kind of v, treating a nil interface as null.
func KindOf(v Value) Kind {
	if v == nil {
		return KindNull
	}
	return v.Kind()
}

// Parse decodes a single JSON document. Trailing non-whitespace data is an error.
func Parse(text string) (Value, error) {
	var raw interface{}
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, err
	}
	return FromInterface(raw)
}

// FromInterface converts the output of encoding/json decoding into a Value.
func FromInterface(raw interface{}) (Value, error) {
	switch t := raw.(type) {
	case nil:
		return Null{}, nil
	case bool:
		return Bool(t), nil
	case float64:
		return Number(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", t.String(), err)
		}
		return Number(f), nil
	case string:
		return String(t), nil
	case []interface{}:
		arr := make(Array, 0, len(t))
		for i, item := range t {
			v, err := FromInterface(item)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			arr = append(arr, v)
		}
		return arr, nil
	case map[string]interface{}:
		obj := make(Object, len(t))
		for k, item := range t {
			v, err := FromInterface(item)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			obj[k] = v
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("unsupported JSON value of type %T", raw)
	}
}

// ToInterface converts v into the generic form produced by encoding/json.
// Arrays and objects are never nil so they marshal as [] and {}.
func ToInterface(v Value) interface{} {
	switch t := v.(type) {
	case nil, Null:
		return nil
	case Bool:
		return bool(t)
	case Number:
		return float64(t)
	case String:
		return string(t)
	case Array:
		out := make([]interface{}, len(t))
		for i, item := range t {
			out[i] = ToInterface(item)
		}
		return out
	case Object:
		out := make(map[string]interface{}, len(t))
		for k, item := range t {
			out[k] = ToInterface(item)
		}
		return out
	default:
		panic(fmt.Sprintf("jsonvalue: unknown value type %T", v))
	}
}

// Compact returns the single-line JSON encoding of v with sorted object keys.
func Compact(v Value) string {
	return encode(v, "")
}

// Indent returns the pretty-printed JSON encoding of v using two-space
// indentation and sorted object keys.
func Indent(v Value) string {
	return encode(v, "  ")
}

func encode(v Value, indent string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(ToInterface(v)); err != nil {
		// Values built by this package only hold finite numbers.
		panic(fmt.Sprintf("jsonvalue: encode: %v", err))
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
