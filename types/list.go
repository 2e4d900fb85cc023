package types

import "strings"

// arrayData is the shared backing store of an array.
// Copies of an ArrayValue refer to the same elements.
type arrayData struct {
	elements []Value
}

// ArrayValue represents an ordered array (tuple) of dynamic values
type ArrayValue struct {
	data *arrayData
}

// NewArray creates an array over the given elements
func NewArray(elements []Value) ArrayValue {
	if elements == nil {
		elements = []Value{}
	}
	return ArrayValue{data: &arrayData{elements: elements}}
}

// NewEmptyArray creates an empty array
func NewEmptyArray() ArrayValue {
	return NewArray(nil)
}

// String returns the literal representation
func (a ArrayValue) String() string {
	elements := a.Elements()
	parts := make([]string, len(elements))
	for i, elem := range elements {
		if elem == nil {
			parts[i] = "null"
			continue
		}
		parts[i] = elem.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Type returns the type code for arrays
func (a ArrayValue) Type() TypeCode {
	return TYPE_ARRAY
}

// Truthy always returns true
func (a ArrayValue) Truthy() bool {
	return true
}

// Equal compares by reference
func (a ArrayValue) Equal(other Value) bool {
	switch o := other.(type) {
	case ArrayValue:
		return a.data == o.data
	case BoolValue:
		return o.Val
	default:
		return false
	}
}

// Len returns the number of elements
func (a ArrayValue) Len() int {
	if a.data == nil {
		return 0
	}
	return len(a.data.elements)
}

// Get returns the element at a 0-based index
func (a ArrayValue) Get(i int) (Value, bool) {
	if i < 0 || i >= a.Len() {
		return nil, false
	}
	return a.data.elements[i], true
}

// Set replaces the element at a 0-based index in place
func (a ArrayValue) Set(i int, v Value) bool {
	if i < 0 || i >= a.Len() {
		return false
	}
	a.data.elements[i] = v
	return true
}

// Elements returns the backing elements
func (a ArrayValue) Elements() []Value {
	if a.data == nil {
		return nil
	}
	return a.data.elements
}

// Concat returns a new array holding a's elements followed by rest
func (a ArrayValue) Concat(rest ...Value) ArrayValue {
	out := make([]Value, 0, a.Len()+len(rest))
	out = append(out, a.Elements()...)
	out = append(out, rest...)
	return NewArray(out)
}
