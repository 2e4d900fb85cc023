package types

import "testing"

func TestTypeCodes(t *testing.T) {
	tests := []struct {
		code TypeCode
		name string
	}{
		{TYPE_NULL, "NULL"},
		{TYPE_BOOL, "BOOL"},
		{TYPE_NUM, "NUMBER"},
		{TYPE_STR, "STRING"},
		{TYPE_ARRAY, "ARRAY"},
		{TYPE_RECORD, "RECORD"},
		{TYPE_FUNC, "FUNCTION"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.code.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			back, ok := TypeFromString(tt.name)
			if !ok || back != tt.code {
				t.Errorf("TypeFromString(%q) = %v, %v", tt.name, back, ok)
			}
		})
	}
}
