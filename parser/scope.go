package parser

import (
	"fmt"

	"nyalang/types"
)

// ScopeKind identifies what opened a scope
type ScopeKind int

const (
	ScopeLinked   ScopeKind = iota // names imported from other units
	ScopeGlobal                    // top level of one compile
	ScopeBlock                     // { ... }
	ScopeFunction                  // parameters and the return label
	ScopeLoop                      // for/while: break and continue labels
	ScopeRecord                    // record literal: the this slot
)

var scopeKindNames = [...]string{
	ScopeLinked:   "linked",
	ScopeGlobal:   "global",
	ScopeBlock:    "block",
	ScopeFunction: "function",
	ScopeLoop:     "loop",
	ScopeRecord:   "record",
}

func (k ScopeKind) String() string { return scopeKindNames[k] }

// Slot is the compile-time identity of one declared variable.
// Distinct declarations never share a slot.
type Slot struct {
	ID    int
	Name  string
	Pos   Position
	Const bool
	Value types.Value // folded value of a literal constant, nil otherwise
}

func (s *Slot) String() string { return fmt.Sprintf("%s#%d", s.Name, s.ID) }

// LabelKind distinguishes reserved labels from user labels
type LabelKind int

const (
	LabelUser LabelKind = iota
	LabelBreak
	LabelContinue
	LabelReturn
)

var labelKindNames = [...]string{
	LabelUser:     "label",
	LabelBreak:    "break",
	LabelContinue: "continue",
	LabelReturn:   "return",
}

func (k LabelKind) String() string { return labelKindNames[k] }

// Label is the identity of one control point
type Label struct {
	ID   int
	Name string
	Kind LabelKind
	Pos  Position
}

func (l *Label) String() string { return fmt.Sprintf("%s#%d", l.Name, l.ID) }

// Globals maps exported names to their slots for cross-unit linking
type Globals map[string]*Slot

// Scope is one lexical environment
type Scope struct {
	Kind   ScopeKind
	Parent *Scope
	vars   map[string]*Slot
	labels map[string]*Label
	slots  []*Slot // declaration order
}

func newScope(kind ScopeKind, parent *Scope) *Scope {
	return &Scope{
		Kind:   kind,
		Parent: parent,
		vars:   make(map[string]*Slot),
		labels: make(map[string]*Label),
	}
}

// Slots returns the slots declared directly in this scope, in order
func (s *Scope) Slots() []*Slot {
	return s.slots
}

// localLabel returns a label declared directly in this scope
func (s *Scope) localLabel(name string) (*Label, bool) {
	l, ok := s.labels[name]
	return l, ok
}

// ScopeManager is the scope stack of one compile
type ScopeManager struct {
	linked  *Scope
	global  *Scope
	current *Scope
	depth   int
	nextID  int
}

// NewScopeManager creates a manager with a linked scope holding the given
// imported names and an empty global scope on top of it
func NewScopeManager(linked Globals) *ScopeManager {
	ls := newScope(ScopeLinked, nil)
	for name, slot := range linked {
		ls.vars[name] = slot
	}
	gs := newScope(ScopeGlobal, ls)
	return &ScopeManager{linked: ls, global: gs, current: gs}
}

// Current returns the innermost scope
func (sm *ScopeManager) Current() *Scope {
	return sm.current
}

// Define declares a variable in the current scope
func (sm *ScopeManager) Define(name string, pos Position) (*Slot, error) {
	if _, exists := sm.current.vars[name]; exists {
		return nil, fmt.Errorf("Variable [%s] is already declared in this scope.", name)
	}
	sm.nextID++
	slot := &Slot{ID: sm.nextID, Name: name, Pos: pos}
	sm.current.vars[name] = slot
	sm.current.slots = append(sm.current.slots, slot)
	return slot, nil
}

// DefineLabel declares a label in the current scope. A user label may not
// reuse a user label name of an enclosing scope within the same function.
func (sm *ScopeManager) DefineLabel(name string, kind LabelKind, pos Position) (*Label, error) {
	if _, exists := sm.current.labels[name]; exists {
		return nil, fmt.Errorf("Label [%s] is already declared in this scope.", name)
	}
	if kind == LabelUser && sm.current.Kind != ScopeFunction {
		for s := sm.current.Parent; s != nil; s = s.Parent {
			if l, ok := s.labels[name]; ok && l.Kind == LabelUser {
				return nil, fmt.Errorf("Label [%s] is already declared in an enclosing scope.", name)
			}
			if s.Kind == ScopeFunction {
				break
			}
		}
	}
	sm.nextID++
	label := &Label{ID: sm.nextID, Name: name, Kind: kind, Pos: pos}
	sm.current.labels[name] = label
	return label, nil
}

// Lookup finds a variable in the current scope or its ancestors
func (sm *ScopeManager) Lookup(name string) (*Slot, bool) {
	for s := sm.current; s != nil; s = s.Parent {
		if slot, ok := s.vars[name]; ok {
			return slot, true
		}
	}
	return nil, false
}

// LookupLabel finds a user label. The search does not leave the
// enclosing function body.
func (sm *ScopeManager) LookupLabel(name string) (*Label, bool) {
	for s := sm.current; s != nil; s = s.Parent {
		if l, ok := s.labels[name]; ok && l.Kind == LabelUser {
			return l, true
		}
		if s.Kind == ScopeFunction {
			break
		}
	}
	return nil, false
}

// Reserved finds the nearest break, continue or return label.
// break and continue never cross a function boundary.
func (sm *ScopeManager) Reserved(kind LabelKind) (*Label, bool) {
	name := kind.String()
	for s := sm.current; s != nil; s = s.Parent {
		if l, ok := s.labels[name]; ok && l.Kind == kind {
			return l, true
		}
		if s.Kind == ScopeFunction && kind != LabelReturn {
			break
		}
	}
	return nil, false
}

// Enter pushes a new scope
func (sm *ScopeManager) Enter(kind ScopeKind) *Scope {
	sm.current = newScope(kind, sm.current)
	sm.depth++
	return sm.current
}

// Exit pops the current scope. Popping the global or linked scope is a bug
// in the parser, not a user error.
func (sm *ScopeManager) Exit() {
	if sm.current == sm.global || sm.current == sm.linked {
		panic(fmt.Sprintf("scope: cannot exit the %s scope", sm.current.Kind))
	}
	sm.current = sm.current.Parent
	sm.depth--
}

// Depth returns the number of scopes above the global scope
func (sm *ScopeManager) Depth() int {
	return sm.depth
}

// Unwind pops scopes until the stack is back at depth
func (sm *ScopeManager) Unwind(depth int) {
	for sm.depth > depth {
		sm.Exit()
	}
}

// Global returns the global scope
func (sm *ScopeManager) Global() *Scope {
	return sm.global
}

// Exports returns the names declared in the global scope
func (sm *ScopeManager) Exports() Globals {
	out := make(Globals, len(sm.global.vars))
	for name, slot := range sm.global.vars {
		out[name] = slot
	}
	return out
}
