package types

// NullValue is the null payload
type NullValue struct{}

// Null is the shared null value
var Null = NullValue{}

// Type returns the type code for null
func (n NullValue) Type() TypeCode {
	return TYPE_NULL
}

// String returns the literal representation
func (n NullValue) String() string {
	return "null"
}

// Equal reports whether other is also null (or false)
func (n NullValue) Equal(other Value) bool {
	if other == nil {
		return true
	}
	if b, ok := other.(BoolValue); ok {
		return !b.Val
	}
	return other.Type() == TYPE_NULL
}

// Truthy always returns false
func (n NullValue) Truthy() bool {
	return false
}

// IsNull reports whether v is nil or the null value
func IsNull(v Value) bool {
	return v == nil || v.Type() == TYPE_NULL
}
