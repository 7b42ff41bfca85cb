package codec

import "strconv"

// Kind identifies the type held by a Value.
type Kind int

// Value kinds.
const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

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

// Value is a parsed document node. Only the fields matching Kind are set.
type Value struct {
	Kind   Kind
	Bool   bool
	Number string // raw numeric literal
	Str    string
	Items  []Value
	Fields []Field
}

// Field is one key/value pair of an object, in document order.
type Field struct {
	Key   string
	Value Value
}

// Lookup returns the first field named key.
func (v Value) Lookup(key string) (Value, bool) {
	if v.Kind != KindObject {
		return Value{}, false
	}
	for _, f := range v.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return Value{}, false
}

// Text returns the string held by v.
func (v Value) Text() (string, bool) {
	if v.Kind != KindString {
		return "", false
	}
	return v.Str, true
}

// Int returns the number held by v when its literal is an integer.
func (v Value) Int() (int, bool) {
	if v.Kind != KindNumber {
		return 0, false
	}
	n, err := strconv.Atoi(v.Number)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Float returns the number held by v.
func (v Value) Float() (float64, bool) {
	if v.Kind != KindNumber {
		return 0, false
	}
	f, err := strconv.ParseFloat(v.Number, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Strings returns the string items of an array in order. Items of any other
// kind are skipped, and a non-array yields an empty slice.
func (v Value) Strings() []string {
	out := []string{}
	if v.Kind != KindArray {
		return out
	}
	for _, item := range v.Items {
		if item.Kind == KindString {
			out = append(out, item.Str)
		}
	}
	return out
}
