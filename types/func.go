package types

import "fmt"

// Callable is implemented by anything the language can invoke.
// Arity is the number of declared parameters; callers must pass at least that many.
type Callable interface {
	Name() string
	Arity() int
}

// FuncValue wraps a callable
type FuncValue struct {
	fn Callable
}

// NewFunc creates a new function value
func NewFunc(fn Callable) FuncValue {
	return FuncValue{fn: fn}
}

// Type returns the type code for functions
func (f FuncValue) Type() TypeCode {
	return TYPE_FUNC
}

// String returns a descriptive representation
func (f FuncValue) String() string {
	if f.fn == nil {
		return "<function>"
	}
	return fmt.Sprintf("<function %s/%d>", f.fn.Name(), f.fn.Arity())
}

// Equal compares by identity
func (f FuncValue) Equal(other Value) bool {
	switch o := other.(type) {
	case FuncValue:
		return f.fn == o.fn
	case BoolValue:
		return o.Val
	default:
		return false
	}
}

// Truthy always returns true
func (f FuncValue) Truthy() bool {
	return true
}

// Callable returns the wrapped callable
func (f FuncValue) Callable() Callable {
	return f.fn
}

// NativeFunc is the signature of a host function reachable through $Name calls.
// It receives the running task context and the evaluated arguments.
type NativeFunc func(ctx *TaskContext, args []Value) Result
