// Package propkit converts domain objects into tiered JSON safe
// representations described by per entity type property schemas
package propkit

import (
	"bytes"
	"encoding/json"
)

// Kind discriminates the JSON safe value union
type Kind int

const (
	// KindNull is the JSON null
	KindNull Kind = iota

	// KindBool is a JSON boolean
	KindBool

	// KindNumber is a JSON number
	KindNumber

	// KindString is a JSON string
	KindString

	// KindArray is an ordered sequence of values
	KindArray

	// KindObject is an ordered string keyed mapping
	KindObject
)

// Value is a JSON safe tagged union
// the zero value is null
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	arr  []Value
	obj  *Object
}

// Null returns the null value
func Null() Value { return Value{} }

// Bool wraps a boolean
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int wraps an integer
func Int(i int) Value { return Value{kind: KindNumber, n: float64(i)} }

// Int64 wraps a 64 bit integer
func Int64(i int64) Value { return Value{kind: KindNumber, n: float64(i)} }

// Float wraps a float
func Float(f float64) Value { return Value{kind: KindNumber, n: f} }

// String wraps a string
func String(s string) Value { return Value{kind: KindString, s: s} }

// StringPtr wraps a possibly nil string as string or null
func StringPtr(s *string) Value {
	if s == nil {
		return Null()
	}
	return String(*s)
}

// Array wraps an ordered sequence
func Array(vs ...Value) Value { return Value{kind: KindArray, arr: vs} }

// Nested wraps an Object as a value; a nil object becomes null
func Nested(o *Object) Value {
	if o == nil {
		return Null()
	}
	return Value{kind: KindObject, obj: o}
}

// Kind reports the discriminant
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null
func (v Value) IsNull() bool { return v.kind == KindNull }

// BoolVal returns the boolean payload (false for other kinds)
func (v Value) BoolVal() bool { return v.b }

// NumberVal returns the numeric payload (0 for other kinds)
func (v Value) NumberVal() float64 { return v.n }

// StringVal returns the string payload ("" for other kinds)
func (v Value) StringVal() string { return v.s }

// ArrayVal returns the sequence payload (nil for other kinds)
func (v Value) ArrayVal() []Value { return v.arr }

// ObjectVal returns the nested object (nil for other kinds)
func (v Value) ObjectVal() *Object { return v.obj }

// MarshalJSON implements json.Marshaler
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindBool:
		return json.Marshal(v.b)
	case KindNumber:
		return json.Marshal(v.n)
	case KindString:
		return json.Marshal(v.s)
	case KindArray:
		if v.arr == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.arr)
	case KindObject:
		return v.obj.MarshalJSON()
	default:
		return []byte("null"), nil
	}
}

// Object is an ordered string keyed mapping of values
// key order is first insertion order; overwriting keeps the original slot
type Object struct {
	keys []string
	vals map[string]Value
}

// NewObject constructs an empty Object
func NewObject() *Object {
	return &Object{vals: map[string]Value{}}
}

// Set inserts or overwrites a key and returns o for chaining
func (o *Object) Set(key string, v Value) *Object {
	if _, ok := o.vals[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = v
	return o
}

// Get returns the value for key and whether it exists
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.vals[key]
	return v, ok
}

// Has reports whether key exists
func (o *Object) Has(key string) bool {
	_, ok := o.vals[key]
	return ok
}

// Keys returns the keys in insertion order
func (o *Object) Keys() []string { return append([]string(nil), o.keys...) }

// Len reports the number of keys
func (o *Object) Len() int { return len(o.keys) }

// Clone deep copies the object one level down
// nested objects and arrays are immutable by convention once handed out
func (o *Object) Clone() *Object {
	n := NewObject()
	for _, k := range o.keys {
		n.Set(k, o.vals[k])
	}
	return n
}

// MarshalJSON renders the mapping preserving key order
func (o *Object) MarshalJSON() ([]byte, error) {
	if o == nil {
		return []byte("null"), nil
	}
	var b bytes.Buffer
	b.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			b.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		b.Write(kb)
		b.WriteByte(':')
		vb, err := o.vals[k].MarshalJSON()
		if err != nil {
			return nil, err
		}
		b.Write(vb)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}
