package eval

import (
	"nyalang/parser"
	"nyalang/types"
)

// Cell is the storage of one variable. Closures capture cells, not
// values, so every closure over a slot sees the same state.
type Cell struct {
	Value types.Value
}

// Environment maps slots to cells with lexical nesting.
// A new environment is created for each block, call frame and record
// literal that declares variables.
type Environment struct {
	cells  map[*parser.Slot]*Cell
	parent *Environment
}

// NewEnvironment creates a root environment
func NewEnvironment() *Environment {
	return &Environment{cells: make(map[*parser.Slot]*Cell)}
}

// NewNestedEnvironment creates an environment inside parent
func NewNestedEnvironment(parent *Environment) *Environment {
	return &Environment{
		cells:  make(map[*parser.Slot]*Cell),
		parent: parent,
	}
}

// Declare creates a fresh cell for slot in this environment
func (e *Environment) Declare(slot *parser.Slot, v types.Value) *Cell {
	if v == nil {
		v = types.Null
	}
	c := &Cell{Value: v}
	e.cells[slot] = c
	return c
}

// Lookup finds the cell of slot in this environment or its ancestors
func (e *Environment) Lookup(slot *parser.Slot) (*Cell, bool) {
	for env := e; env != nil; env = env.parent {
		if c, ok := env.cells[slot]; ok {
			return c, true
		}
	}
	return nil, false
}

// Get returns the value of slot
func (e *Environment) Get(slot *parser.Slot) (types.Value, bool) {
	c, ok := e.Lookup(slot)
	if !ok {
		return nil, false
	}
	return c.Value, true
}

// Set assigns the value of an existing slot
func (e *Environment) Set(slot *parser.Slot, v types.Value) bool {
	c, ok := e.Lookup(slot)
	if !ok {
		return false
	}
	c.Value = v
	return true
}

// Parent returns the enclosing environment, nil at the root
func (e *Environment) Parent() *Environment {
	return e.parent
}
