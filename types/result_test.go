package types

import "testing"

func TestResultConstructors(t *testing.T) {
	t.Run("Ok", func(t *testing.T) {
		r := Ok(NewNum(42))
		if !r.IsNormal() {
			t.Error("Ok() should create normal result")
		}
		if !r.Val.Equal(NewNum(42)) {
			t.Errorf("Expected value 42, got %v", r.Val)
		}
	})

	t.Run("Err", func(t *testing.T) {
		r := Err(E_TYPE, "bad")
		if !r.IsError() {
			t.Error("Err() should create error result")
		}
		if r.Error != E_TYPE || r.Message != "bad" {
			t.Errorf("Expected E_TYPE/bad, got %v/%q", r.Error, r.Message)
		}
	})

	t.Run("Return", func(t *testing.T) {
		r := Return(NewNum(42))
		if !r.IsReturn() {
			t.Error("Return() should create return result")
		}
		if !r.Val.Equal(NewNum(42)) {
			t.Errorf("Expected value 42, got %v", r.Val)
		}
	})

	t.Run("Jumps", func(t *testing.T) {
		target := new(int)
		for _, r := range []Result{Break(target), Continue(target), Goto(target)} {
			if !r.IsJump() {
				t.Errorf("%v should be a jump", r.Flow)
			}
			if r.Target != target {
				t.Errorf("%v lost its target", r.Flow)
			}
		}
	})
}

func TestResultRuntimeError(t *testing.T) {
	if Ok(Null).RuntimeError() != nil {
		t.Error("normal result should not convert to an error")
	}
	r := Errf(E_ARGS, "want %d", 2)
	r.Line = 7
	err := r.RuntimeError()
	if err == nil {
		t.Fatal("exception result should convert to an error")
	}
	if err.Code != E_ARGS || err.Msg != "want 2" || err.Line != 7 {
		t.Errorf("unexpected error %+v", err)
	}
}

func TestControlFlowString(t *testing.T) {
	tests := map[ControlFlow]string{
		FlowNormal:    "normal",
		FlowReturn:    "return",
		FlowBreak:     "break",
		FlowContinue:  "continue",
		FlowGoto:      "goto",
		FlowException: "exception",
	}
	for flow, want := range tests {
		if got := flow.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", flow, got, want)
		}
	}
}
