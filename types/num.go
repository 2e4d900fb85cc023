package types

import "math"

// NumValue represents a number. All numbers are float64.
type NumValue struct {
	Val float64
}

// Type returns the type code for numbers
func (n NumValue) Type() TypeCode {
	return TYPE_NUM
}

// String returns the literal representation
func (n NumValue) String() string {
	return formatNumber(n.Val)
}

// Equal checks numeric equality; a boolean on the other side compares by truthiness
func (n NumValue) Equal(other Value) bool {
	switch o := other.(type) {
	case NumValue:
		return n.Val == o.Val
	case BoolValue:
		return o.Val
	default:
		return false
	}
}

// Truthy always returns true: zero is not falsy
func (n NumValue) Truthy() bool {
	return true
}

// NewNum creates a new NumValue
func NewNum(val float64) NumValue {
	return NumValue{Val: val}
}

// Int returns the value truncated to an int64
func (n NumValue) Int() int64 {
	if math.IsNaN(n.Val) || math.IsInf(n.Val, 0) {
		return 0
	}
	return int64(n.Val)
}
