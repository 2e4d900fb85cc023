package types

import (
	"fmt"
	"math"
	"strconv"
)

// ErrorCode classifies a runtime error
type ErrorCode int

// Runtime error codes
const (
	E_NONE       ErrorCode = 0
	E_TYPE       ErrorCode = 1 // operand kinds don't support the operation
	E_UNCALLABLE ErrorCode = 2 // invoking null or a non-function
	E_ARGS       ErrorCode = 3 // fewer arguments than the callee's arity
	E_RANGE      ErrorCode = 4 // index out of range
	E_FIELD      ErrorCode = 5 // missing record field
	E_TICKS      ErrorCode = 6 // statement budget exhausted
	E_MAXDEPTH   ErrorCode = 7 // call depth exceeded
	E_JUMP       ErrorCode = 8 // jump escaped its function
	E_NATIVE     ErrorCode = 9 // native function failed fatally
)

// String returns the string name for an error code
func (e ErrorCode) String() string {
	switch e {
	case E_NONE:
		return "E_NONE"
	case E_TYPE:
		return "E_TYPE"
	case E_UNCALLABLE:
		return "E_UNCALLABLE"
	case E_ARGS:
		return "E_ARGS"
	case E_RANGE:
		return "E_RANGE"
	case E_FIELD:
		return "E_FIELD"
	case E_TICKS:
		return "E_TICKS"
	case E_MAXDEPTH:
		return "E_MAXDEPTH"
	case E_JUMP:
		return "E_JUMP"
	case E_NATIVE:
		return "E_NATIVE"
	default:
		return "E_UNKNOWN"
	}
}

// Message returns a human-readable message for an error code
func (e ErrorCode) Message() string {
	switch e {
	case E_NONE:
		return "No error"
	case E_TYPE:
		return "Type mismatch"
	case E_UNCALLABLE:
		return "Uncallable object"
	case E_ARGS:
		return "Too few arguments"
	case E_RANGE:
		return "Index out of range"
	case E_FIELD:
		return "Field not found"
	case E_TICKS:
		return "Statement budget exhausted"
	case E_MAXDEPTH:
		return "Too many nested calls"
	case E_JUMP:
		return "Jump target not reachable"
	case E_NATIVE:
		return "Native function failed"
	default:
		return "Unknown error"
	}
}

// ErrorFromString converts a string like "E_ARGS" to an ErrorCode
func ErrorFromString(s string) (ErrorCode, bool) {
	for code := E_NONE; code <= E_NATIVE; code++ {
		if code.String() == s {
			return code, true
		}
	}
	return E_NONE, false
}

// Value is the interface all dynamic values implement
type Value interface {
	Type() TypeCode
	String() string   // literal representation
	Equal(Value) bool // the language's == operator
	Truthy() bool     // only null and false are falsy
}

// NewValue wraps a raw host value into a dynamic value.
// A Value is returned unchanged, so values never nest.
func NewValue(v interface{}) Value {
	switch x := v.(type) {
	case nil:
		return Null
	case Value:
		return x
	case bool:
		return NewBool(x)
	case float64:
		return NewNum(x)
	case float32:
		return NewNum(float64(x))
	case int:
		return NewNum(float64(x))
	case int32:
		return NewNum(float64(x))
	case int64:
		return NewNum(float64(x))
	case uint8:
		return NewNum(float64(x))
	case string:
		return NewStr(x)
	case []Value:
		return NewArray(x)
	case []string:
		elems := make([]Value, len(x))
		for i, s := range x {
			elems[i] = NewStr(s)
		}
		return NewArray(elems)
	case map[string]Value:
		return NewRecordFromMap(x)
	case Callable:
		return NewFunc(x)
	default:
		return NewStr(fmt.Sprint(x))
	}
}

// ToText returns the text form used by print and string concatenation.
// Strings are returned raw, everything else in literal form.
func ToText(v Value) string {
	if v == nil {
		return "null"
	}
	if s, ok := v.(StrValue); ok {
		return s.val
	}
	return v.String()
}

// formatNumber renders integral values without a fraction
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
