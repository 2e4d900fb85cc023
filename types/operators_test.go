package types

import "testing"

func num(f float64) Value { return NewNum(f) }
func str(s string) Value  { return NewStr(s) }

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name string
		op   func(a, b Value) Result
		a, b Value
		want Value
	}{
		{"add", Add, num(1), num(2), num(3)},
		{"add strings", Add, str("a"), str("b"), str("ab")},
		{"add str num", Add, str("n="), num(4), str("n=4")},
		{"add num str", Add, num(4), str("!"), str("4!")},
		{"add str null", Add, str("x"), Null, str("xnull")},
		{"sub", Sub, num(5), num(7), num(-2)},
		{"mul", Mul, num(3), num(4), num(12)},
		{"div", Div, num(7), num(2), num(3.5)},
		{"mod", Mod, num(-7), num(3), num(-1)},
		{"and nums", BitAnd, num(6), num(3), num(2)},
		{"or nums", BitOr, num(6), num(3), num(7)},
		{"xor nums", BitXor, num(6), num(3), num(5)},
		{"and bools", BitAnd, NewBool(true), NewBool(false), NewBool(false)},
		{"or bools", BitOr, NewBool(true), NewBool(false), NewBool(true)},
		{"xor bools", BitXor, NewBool(true), NewBool(true), NewBool(false)},
		{"shl", Shl, num(1), num(4), num(16)},
		{"shr", Shr, num(-16), num(2), num(-4)},
		{"bitwise truncates", BitOr, num(2.9), num(0), num(2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.op(tt.a, tt.b)
			if !r.IsNormal() {
				t.Fatalf("unexpected error: %s", r.Message)
			}
			if r.Val.Type() != tt.want.Type() || ToText(r.Val) != ToText(tt.want) {
				t.Errorf("got %s, want %s", r.Val, tt.want)
			}
		})
	}
}

func TestOperatorTypeErrors(t *testing.T) {
	tests := []struct {
		name string
		op   func(a, b Value) Result
		a, b Value
	}{
		{"sub strings", Sub, str("a"), str("b")},
		{"mul null", Mul, Null, num(1)},
		{"add arrays", Add, NewEmptyArray(), NewEmptyArray()},
		{"shift bools", Shl, NewBool(true), num(1)},
		{"less mixed", Less, num(1), str("a")},
		{"greater null", Greater, Null, Null},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.op(tt.a, tt.b)
			if !r.IsError() || r.Error != E_TYPE {
				t.Errorf("expected E_TYPE, got %v %v", r.Flow, r.Error)
			}
		})
	}
}

func TestComparison(t *testing.T) {
	tests := []struct {
		name string
		op   func(a, b Value) Result
		a, b Value
		want bool
	}{
		{"lt", Less, num(1), num(2), true},
		{"le equal", LessEq, num(2), num(2), true},
		{"gt", Greater, num(1), num(2), false},
		{"ge", GreaterEq, num(3), num(2), true},
		{"string lt", Less, str("abc"), str("abd"), true},
		{"string gt", Greater, str("b"), str("a"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.op(tt.a, tt.b)
			if !r.IsNormal() {
				t.Fatalf("unexpected error: %s", r.Message)
			}
			if r.Val.Truthy() != tt.want {
				t.Errorf("got %v, want %v", r.Val, tt.want)
			}
		})
	}
}

func TestEquality(t *testing.T) {
	arr := NewEmptyArray()
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"numbers", num(1), num(1), true},
		{"different numbers", num(1), num(2), false},
		{"strings", str("a"), str("a"), true},
		{"string vs number", str("1"), num(1), false},
		{"null null", Null, Null, true},
		{"null false", Null, NewBool(false), true},
		{"true vs number", NewBool(true), num(0), true},
		{"number vs false", num(1), NewBool(false), false},
		{"same array", arr, arr, true},
		{"other array", arr, NewEmptyArray(), false},
		{"null vs number", Null, num(0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := Equal(tt.b, tt.a); got != tt.want {
				t.Errorf("Equal(%s, %s) = %v, want %v (symmetry)", tt.b, tt.a, got, tt.want)
			}
			if got := NotEqual(tt.a, tt.b); got == tt.want {
				t.Errorf("NotEqual(%s, %s) = %v, want %v", tt.a, tt.b, got, !tt.want)
			}
		})
	}
}

func TestUnary(t *testing.T) {
	if r := Negate(num(3)); !r.Val.Equal(num(-3)) {
		t.Errorf("Negate(3) = %v", r.Val)
	}
	if r := BitNot(num(0)); !r.Val.Equal(num(-1)) {
		t.Errorf("BitNot(0) = %v", r.Val)
	}
	if r := Not(Null); !r.Val.Truthy() {
		t.Error("!null should be true")
	}
	if r := Not(num(0)); r.Val.Truthy() {
		t.Error("!0 should be false")
	}
	if r := Inc(num(1)); !r.Val.Equal(num(2)) {
		t.Errorf("Inc(1) = %v", r.Val)
	}
	if r := Dec(str("a")); !r.IsError() {
		t.Error("Dec on a string should fail")
	}
	if r := Negate(Null); !r.IsError() {
		t.Error("Negate on null should fail")
	}
}
