package types

import (
	"strings"
	"unicode/utf8"
)

// StrValue represents a string
type StrValue struct {
	val string
}

// NewStr creates a new string value
func NewStr(s string) StrValue {
	return StrValue{val: s}
}

// String returns the quoted literal representation
func (s StrValue) String() string {
	var result strings.Builder
	result.WriteByte('"')
	for _, r := range s.val {
		switch r {
		case '"':
			result.WriteString("\\\"")
		case '\\':
			result.WriteString("\\\\")
		case '\n':
			result.WriteString("\\n")
		case '\t':
			result.WriteString("\\t")
		default:
			result.WriteRune(r)
		}
	}
	result.WriteByte('"')
	return result.String()
}

// Type returns the type code for strings
func (s StrValue) Type() TypeCode {
	return TYPE_STR
}

// Truthy always returns true: the empty string is not falsy
func (s StrValue) Truthy() bool {
	return true
}

// Equal compares string contents (case-sensitive)
func (s StrValue) Equal(other Value) bool {
	switch o := other.(type) {
	case StrValue:
		return s.val == o.val
	case BoolValue:
		return o.Val
	default:
		return false
	}
}

// Value returns the internal string value
func (s StrValue) Value() string {
	return s.val
}

// Len returns the length in characters
func (s StrValue) Len() int {
	return utf8.RuneCountInString(s.val)
}

// CharAt returns the character at a 0-based index as a one-character string
func (s StrValue) CharAt(i int) (StrValue, bool) {
	if i < 0 {
		return StrValue{}, false
	}
	n := 0
	for _, r := range s.val {
		if n == i {
			return NewStr(string(r)), true
		}
		n++
	}
	return StrValue{}, false
}
