package types

import "testing"

type testCallable struct {
	name  string
	arity int
}

func (c *testCallable) Name() string { return c.name }
func (c *testCallable) Arity() int   { return c.arity }

func TestIndex(t *testing.T) {
	arr := NewArray([]Value{NewNum(10), NewNum(20), NewNum(30)})
	tests := []struct {
		name      string
		container Value
		index     Value
		want      Value
		err       ErrorCode
	}{
		{"first", arr, NewNum(0), NewNum(10), E_NONE},
		{"truncated", arr, NewNum(1.7), NewNum(20), E_NONE},
		{"past end", arr, NewNum(3), nil, E_RANGE},
		{"negative", arr, NewNum(-1), nil, E_RANGE},
		{"string char", NewStr("héllo"), NewNum(1), NewStr("é"), E_NONE},
		{"string past end", NewStr("ab"), NewNum(2), nil, E_RANGE},
		{"string index", arr, NewStr("0"), nil, E_TYPE},
		{"null container", Null, NewNum(0), nil, E_TYPE},
		{"number container", NewNum(5), NewNum(0), nil, E_TYPE},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Index(tt.container, tt.index)
			if tt.err != E_NONE {
				if !r.IsError() || r.Error != tt.err {
					t.Fatalf("expected %v, got %v %v", tt.err, r.Flow, r.Error)
				}
				return
			}
			if !r.IsNormal() {
				t.Fatalf("unexpected error: %s", r.Message)
			}
			if !r.Val.Equal(tt.want) {
				t.Errorf("got %s, want %s", r.Val, tt.want)
			}
		})
	}
}

func TestSetIndex(t *testing.T) {
	arr := NewArray([]Value{NewNum(1), NewNum(2)})
	if r := SetIndex(arr, NewNum(1), NewStr("x")); !r.IsNormal() {
		t.Fatalf("SetIndex failed: %s", r.Message)
	}
	if v, _ := arr.Get(1); !v.Equal(NewStr("x")) {
		t.Errorf("element not replaced, got %s", v)
	}
	if r := SetIndex(arr, NewNum(2), Null); r.Error != E_RANGE {
		t.Errorf("expected E_RANGE, got %v", r.Error)
	}
	if r := SetIndex(NewStr("ab"), NewNum(0), NewStr("c")); r.Error != E_TYPE {
		t.Errorf("expected E_TYPE for string, got %v", r.Error)
	}
}

func TestFields(t *testing.T) {
	rec := NewRecord()
	rec.Set("a", NewNum(1))

	if r := Field(rec, "a"); !r.IsNormal() || !r.Val.Equal(NewNum(1)) {
		t.Errorf("Field(a) = %v", r)
	}
	if r := Field(rec, "b"); r.Error != E_FIELD {
		t.Errorf("missing field: expected E_FIELD, got %v", r.Error)
	}
	if r := Field(NewNum(1), "a"); r.Error != E_TYPE {
		t.Errorf("non-record: expected E_TYPE, got %v", r.Error)
	}
	if r := Field(Null, "a"); r.Error != E_TYPE {
		t.Errorf("null: expected E_TYPE, got %v", r.Error)
	}

	SetField(rec, "b", NewStr("new"))
	keys := rec.Keys()
	if len(keys) != 2 || keys[1] != "b" {
		t.Errorf("SetField should append a new key, got %v", keys)
	}
}

func TestCheckCall(t *testing.T) {
	fn := NewFunc(&testCallable{name: "f", arity: 2})

	if _, err := CheckCall(fn, 2); err != nil {
		t.Errorf("exact arity failed: %v", err)
	}
	if _, err := CheckCall(fn, 3); err != nil {
		t.Errorf("extra arguments should be allowed: %v", err)
	}
	if _, err := CheckCall(fn, 1); err == nil || err.Code != E_ARGS {
		t.Errorf("too few arguments: expected E_ARGS, got %v", err)
	}
	if _, err := CheckCall(Null, 0); err == nil || err.Code != E_UNCALLABLE {
		t.Errorf("null callee: expected E_UNCALLABLE, got %v", err)
	}
	if _, err := CheckCall(NewNum(1), 0); err == nil || err.Code != E_UNCALLABLE {
		t.Errorf("number callee: expected E_UNCALLABLE, got %v", err)
	}
}
