package types

import (
	"math"
	"testing"
)

func TestErrorCodes(t *testing.T) {
	tests := []struct {
		code  ErrorCode
		value int
		name  string
	}{
		{E_NONE, 0, "E_NONE"},
		{E_TYPE, 1, "E_TYPE"},
		{E_UNCALLABLE, 2, "E_UNCALLABLE"},
		{E_ARGS, 3, "E_ARGS"},
		{E_RANGE, 4, "E_RANGE"},
		{E_FIELD, 5, "E_FIELD"},
		{E_TICKS, 6, "E_TICKS"},
		{E_MAXDEPTH, 7, "E_MAXDEPTH"},
		{E_JUMP, 8, "E_JUMP"},
		{E_NATIVE, 9, "E_NATIVE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if int(tt.code) != tt.value {
				t.Errorf("%s: expected value %d, got %d", tt.name, tt.value, int(tt.code))
			}
			if tt.code.String() != tt.name {
				t.Errorf("%s: String() returned %q, expected %q", tt.name, tt.code.String(), tt.name)
			}
			back, ok := ErrorFromString(tt.name)
			if !ok || back != tt.code {
				t.Errorf("ErrorFromString(%q) = %v, %v", tt.name, back, ok)
			}
		})
	}

	if _, ok := ErrorFromString("E_BOGUS"); ok {
		t.Error("ErrorFromString should reject unknown names")
	}
}

func TestTruthiness(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want bool
	}{
		{"null", Null, false},
		{"false", NewBool(false), false},
		{"true", NewBool(true), true},
		{"zero", NewNum(0), true},
		{"empty string", NewStr(""), true},
		{"empty array", NewEmptyArray(), true},
		{"empty record", NewRecord(), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Truthy(); got != tt.want {
				t.Errorf("Truthy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewValue(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want TypeCode
	}{
		{"nil", nil, TYPE_NULL},
		{"bool", true, TYPE_BOOL},
		{"int", 3, TYPE_NUM},
		{"float", 2.5, TYPE_NUM},
		{"string", "x", TYPE_STR},
		{"values", []Value{NewNum(1)}, TYPE_ARRAY},
		{"strings", []string{"a", "b"}, TYPE_ARRAY},
		{"map", map[string]Value{"a": NewNum(1)}, TYPE_RECORD},
		{"value", NewStr("s"), TYPE_STR},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewValue(tt.in).Type(); got != tt.want {
				t.Errorf("NewValue(%v).Type() = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestValueStrings(t *testing.T) {
	rec := NewRecord()
	rec.Set("a", NewNum(1))
	rec.Set("b", NewStr("x"))

	tests := []struct {
		name string
		v    Value
		text string
		lit  string
	}{
		{"int", NewNum(42), "42", "42"},
		{"negative", NewNum(-3), "-3", "-3"},
		{"fraction", NewNum(2.5), "2.5", "2.5"},
		{"nan", NewNum(math.NaN()), "NaN", "NaN"},
		{"inf", NewNum(math.Inf(1)), "Infinity", "Infinity"},
		{"string", NewStr("a\"b"), "a\"b", `"a\"b"`},
		{"true", NewBool(true), "true", "true"},
		{"null", Null, "null", "null"},
		{"array", NewArray([]Value{NewNum(1), NewStr("a")}), `[1, "a"]`, `[1, "a"]`},
		{"record", rec, `{a: 1, b: "x"}`, `{a: 1, b: "x"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToText(tt.v); got != tt.text {
				t.Errorf("ToText() = %q, want %q", got, tt.text)
			}
			if got := tt.v.String(); got != tt.lit {
				t.Errorf("String() = %q, want %q", got, tt.lit)
			}
		})
	}
}

func TestSharedContainers(t *testing.T) {
	a := NewArray([]Value{NewNum(1), NewNum(2)})
	b := a
	b.Set(0, NewNum(9))
	if v, _ := a.Get(0); !v.Equal(NewNum(9)) {
		t.Errorf("array copies should share elements, got %v", v)
	}
	if !a.Equal(b) {
		t.Error("copies of one array should be equal")
	}
	if a.Equal(NewArray([]Value{NewNum(9), NewNum(2)})) {
		t.Error("distinct arrays should not be equal")
	}

	r := NewRecord()
	r2 := r
	r2.Set("k", NewNum(1))
	if _, ok := r.Get("k"); !ok {
		t.Error("record copies should share fields")
	}
}

func TestRuntimeErrorFormat(t *testing.T) {
	err := NewRuntimeError(E_RANGE, "Index [%d] is OUT OF RANGE.", 5)
	if got := err.Error(); got != "[ Runtime Error ] : Index [5] is OUT OF RANGE." {
		t.Errorf("Error() = %q", got)
	}
	err.Line = 3
	if got := err.Error(); got != "[ Runtime Error ] at line [3] : Index [5] is OUT OF RANGE." {
		t.Errorf("Error() = %q", got)
	}
}
