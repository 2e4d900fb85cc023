package types

import (
	"sort"
	"strings"
)

// recordData is the shared backing store of a record
type recordData struct {
	keys   []string
	fields map[string]Value
}

// RecordValue is a string-keyed, insertion-ordered map of dynamic values.
// Copies refer to the same fields.
type RecordValue struct {
	data *recordData
}

// NewRecord creates an empty record
func NewRecord() RecordValue {
	return RecordValue{data: &recordData{fields: make(map[string]Value)}}
}

// NewRecordFromMap creates a record from a Go map; keys are taken in sorted order
func NewRecordFromMap(m map[string]Value) RecordValue {
	r := NewRecord()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		r.Set(k, m[k])
	}
	return r
}

// String returns the literal representation
func (r RecordValue) String() string {
	if r.Len() == 0 {
		return "{}"
	}
	parts := make([]string, 0, r.Len())
	for _, k := range r.Keys() {
		v := r.data.fields[k]
		val := "null"
		if v != nil {
			val = v.String()
		}
		parts = append(parts, k+": "+val)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Type returns the type code for records
func (r RecordValue) Type() TypeCode {
	return TYPE_RECORD
}

// Truthy always returns true
func (r RecordValue) Truthy() bool {
	return true
}

// Equal compares by reference
func (r RecordValue) Equal(other Value) bool {
	switch o := other.(type) {
	case RecordValue:
		return r.data == o.data
	case BoolValue:
		return o.Val
	default:
		return false
	}
}

// Len returns the number of fields
func (r RecordValue) Len() int {
	if r.data == nil {
		return 0
	}
	return len(r.data.keys)
}

// Get looks up a field
func (r RecordValue) Get(key string) (Value, bool) {
	if r.data == nil {
		return nil, false
	}
	v, ok := r.data.fields[key]
	return v, ok
}

// Set assigns a field in place, appending the key if it is new
func (r RecordValue) Set(key string, v Value) {
	if _, ok := r.data.fields[key]; !ok {
		r.data.keys = append(r.data.keys, key)
	}
	r.data.fields[key] = v
}

// Keys returns the field names in insertion order
func (r RecordValue) Keys() []string {
	if r.data == nil {
		return nil
	}
	return r.data.keys
}
