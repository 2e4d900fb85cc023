package parser

import "testing"

func TestScopeDefineLookup(t *testing.T) {
	sm := NewScopeManager(nil)
	outer, err := sm.Define("x", Position{})
	if err != nil {
		t.Fatalf("Define: %v", err)
	}
	if _, err := sm.Define("x", Position{}); err == nil {
		t.Error("redeclaring x in the same scope succeeded")
	}

	sm.Enter(ScopeBlock)
	inner, err := sm.Define("x", Position{})
	if err != nil {
		t.Fatalf("shadowing Define: %v", err)
	}
	if inner == outer {
		t.Fatal("shadowing declaration reused the outer slot")
	}
	if got, _ := sm.Lookup("x"); got != inner {
		t.Errorf("Lookup in block = %v, want %v", got, inner)
	}
	sm.Exit()

	if got, _ := sm.Lookup("x"); got != outer {
		t.Errorf("Lookup after exit = %v, want %v", got, outer)
	}
}

func TestScopeExitHidesNames(t *testing.T) {
	sm := NewScopeManager(nil)
	sm.Enter(ScopeBlock)
	if _, err := sm.Define("y", Position{}); err != nil {
		t.Fatal(err)
	}
	sm.Exit()
	if _, ok := sm.Lookup("y"); ok {
		t.Error("y is still visible after its scope exited")
	}
}

func TestScopeLinkedGlobals(t *testing.T) {
	first := NewScopeManager(nil)
	g, _ := first.Define("g", Position{})

	second := NewScopeManager(first.Exports())
	if got, ok := second.Lookup("g"); !ok || got != g {
		t.Fatalf("linked lookup = %v, %v; want %v", got, ok, g)
	}
	// a new unit may redeclare a linked name in its own global scope
	if _, err := second.Define("g", Position{}); err != nil {
		t.Errorf("redeclaring a linked name: %v", err)
	}
}

func TestScopeReservedLabels(t *testing.T) {
	sm := NewScopeManager(nil)
	if _, ok := sm.Reserved(LabelBreak); ok {
		t.Fatal("break label found outside any loop")
	}

	sm.Enter(ScopeFunction)
	ret, _ := sm.DefineLabel("return", LabelReturn, Position{})
	sm.Enter(ScopeLoop)
	brk, _ := sm.DefineLabel("break", LabelBreak, Position{})
	sm.Enter(ScopeFunction)

	if _, ok := sm.Reserved(LabelBreak); ok {
		t.Error("break label crossed a function boundary")
	}
	sm.Exit()
	if got, _ := sm.Reserved(LabelBreak); got != brk {
		t.Errorf("Reserved(break) = %v, want %v", got, brk)
	}
	if got, _ := sm.Reserved(LabelReturn); got != ret {
		t.Errorf("Reserved(return) = %v, want %v", got, ret)
	}
}

func TestScopeLookupLabelStopsAtFunction(t *testing.T) {
	sm := NewScopeManager(nil)
	if _, err := sm.DefineLabel("top", LabelUser, Position{}); err != nil {
		t.Fatal(err)
	}
	sm.Enter(ScopeBlock)
	if _, ok := sm.LookupLabel("top"); !ok {
		t.Error("user label not visible from a nested block")
	}
	sm.Enter(ScopeFunction)
	if _, ok := sm.LookupLabel("top"); ok {
		t.Error("user label visible inside a function body")
	}
}

func TestScopeUserLabelsUniqueInDescendants(t *testing.T) {
	sm := NewScopeManager(nil)
	if _, err := sm.DefineLabel("top", LabelUser, Position{}); err != nil {
		t.Fatal(err)
	}
	sm.Enter(ScopeBlock)
	sm.Enter(ScopeLoop)
	if _, err := sm.DefineLabel("top", LabelUser, Position{}); err == nil {
		t.Error("nested block redeclared an enclosing label")
	}
	if _, err := sm.DefineLabel("break", LabelBreak, Position{}); err != nil {
		t.Errorf("reserved label rejected: %v", err)
	}

	sm.Enter(ScopeFunction)
	sm.Enter(ScopeBlock)
	if _, err := sm.DefineLabel("top", LabelUser, Position{}); err != nil {
		t.Errorf("function body label rejected: %v", err)
	}
}

func TestScopeUnwind(t *testing.T) {
	sm := NewScopeManager(nil)
	sm.Enter(ScopeBlock)
	depth := sm.Depth()
	sm.Enter(ScopeFunction)
	sm.Enter(ScopeLoop)
	sm.Unwind(depth)
	if sm.Depth() != depth {
		t.Errorf("Depth after Unwind = %d, want %d", sm.Depth(), depth)
	}
	if sm.Current().Kind != ScopeBlock {
		t.Errorf("current scope kind = %s, want block", sm.Current().Kind)
	}
}

func TestScopeExitGlobalPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("exiting the global scope did not panic")
		}
	}()
	NewScopeManager(nil).Exit()
}
