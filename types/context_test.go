package types

import "testing"

func TestConsumeTick(t *testing.T) {
	ctx := NewTaskContext()
	for i := 0; i < 100; i++ {
		if !ctx.ConsumeTick() {
			t.Fatal("unlimited context ran out of ticks")
		}
	}

	ctx.TicksRemaining = 2
	if !ctx.ConsumeTick() || !ctx.ConsumeTick() {
		t.Fatal("expected two ticks")
	}
	if ctx.ConsumeTick() {
		t.Error("third tick should fail")
	}
}

func TestCallDepth(t *testing.T) {
	ctx := NewTaskContext()
	ctx.MaxDepth = 2
	if !ctx.EnterCall() || !ctx.EnterCall() {
		t.Fatal("expected two nested calls")
	}
	if ctx.EnterCall() {
		t.Error("third nested call should exceed the limit")
	}
	ctx.LeaveCall()
	if ctx.Depth != 1 {
		t.Errorf("Depth = %d, want 1", ctx.Depth)
	}
	if !ctx.EnterCall() {
		t.Error("call after leaving should succeed")
	}
}
