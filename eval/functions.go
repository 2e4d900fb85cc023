package eval

import (
	"nyalang/parser"
	"nyalang/trace"
	"nyalang/types"
)

// Closure is a function value: the compiled function and the environment
// it was created in. Calls see the captured cells, not copies.
type Closure struct {
	Lit *parser.FuncLit
	Env *Environment
}

// Name returns the declared name, or "lambda" for anonymous functions
func (c *Closure) Name() string {
	if c.Lit.Self != nil || c.Lit.Name == "" {
		return "lambda"
	}
	return c.Lit.Name
}

// Arity returns the number of declared parameters
func (c *Closure) Arity() int {
	return len(c.Lit.Params)
}

// evalFuncLit creates a closure over the current environment
func (e *Evaluator) evalFuncLit(n *parser.FuncLit) types.Result {
	return types.Ok(types.NewFunc(&Closure{Lit: n, Env: e.env}))
}

// evalCall evaluates callee(args). The callee and the arguments are
// evaluated before the call is checked.
func (e *Evaluator) evalCall(n *parser.CallExpr, ctx *types.TaskContext) types.Result {
	callee := e.Eval(n.Callee, ctx)
	if !callee.IsNormal() {
		return callee
	}
	args, r := e.evalArgs(n.Args, ctx)
	if !r.IsNormal() {
		return r
	}

	fn, rerr := types.CheckCall(callee.Val, len(args))
	if rerr != nil {
		return types.FromError(rerr)
	}
	return e.Call(fn, args, ctx)
}

// Call invokes a callable with already evaluated arguments
func (e *Evaluator) Call(fn types.Callable, args []types.Value, ctx *types.TaskContext) types.Result {
	c, ok := fn.(*Closure)
	if !ok {
		return types.Errf(types.E_UNCALLABLE, "Can not INVOKE uncallable object type [%T].", fn)
	}
	if len(args) < c.Arity() {
		return types.Errf(types.E_ARGS, "Argument given is LESS THAN demanded for function [%s]: want %d, got %d.",
			c.Name(), c.Arity(), len(args))
	}
	return e.callClosure(c, args, ctx)
}

// callClosure runs a closure body in a new frame holding the parameters
// and, for lambdas, the self binding. Extra arguments are ignored.
func (e *Evaluator) callClosure(c *Closure, args []types.Value, ctx *types.TaskContext) types.Result {
	name := c.Name()
	if !ctx.EnterCall() {
		return types.Errf(types.E_MAXDEPTH, "Too many nested calls when invoking [%s].", name)
	}
	defer ctx.LeaveCall()

	frame := NewNestedEnvironment(c.Env)
	if c.Lit.Self != nil {
		frame.Declare(c.Lit.Self, types.NewFunc(c))
	}
	for i, param := range c.Lit.Params {
		frame.Declare(param, args[i])
	}

	trace.Call(name, args, ctx.Depth)

	savedEnv, savedFn := e.env, ctx.Function
	e.env, ctx.Function = frame, name
	r := e.execBlock(c.Lit.Body, ctx)
	e.env, ctx.Function = savedEnv, savedFn

	switch {
	case r.IsError():
		trace.Exception(name, r.RuntimeError())
		return r
	case r.IsReturn():
		v := r.Val
		if v == nil {
			v = types.Null
		}
		trace.Return(name, v)
		return types.Ok(v)
	case r.IsJump():
		r = jumpEscaped(r, name)
		trace.Exception(name, r.RuntimeError())
		return r
	}
	trace.Return(name, types.Null)
	return types.Ok(types.Null)
}

// evalNativeCall evaluates $Name(args) through the function resolved at
// compile time
func (e *Evaluator) evalNativeCall(n *parser.NativeCallExpr, ctx *types.TaskContext) types.Result {
	args, r := e.evalArgs(n.Args, ctx)
	if !r.IsNormal() {
		return r
	}
	if n.Fn == nil {
		return types.Errf(types.E_NATIVE, "Invalid static method [%s].", n.Name)
	}

	trace.Native(n.Name, args)
	result := n.Fn(ctx, args)
	if result.IsNormal() && result.Val == nil {
		result.Val = types.Null
	}
	return result
}

// evalArrayLit builds a new array
func (e *Evaluator) evalArrayLit(n *parser.ArrayLit, ctx *types.TaskContext) types.Result {
	elems, r := e.evalArgs(n.Elements, ctx)
	if !r.IsNormal() {
		return r
	}
	return types.Ok(types.NewArray(elems))
}

// evalRecordLit builds a new record. Field initializers run in a frame
// whose this cell is bound to the record once every field is built.
func (e *Evaluator) evalRecordLit(n *parser.RecordLit, ctx *types.TaskContext) types.Result {
	frame := NewNestedEnvironment(e.env)
	this := frame.Declare(n.This, types.Null)

	saved := e.env
	e.env = frame
	defer func() { e.env = saved }()

	rec := types.NewRecord()
	for i, key := range n.Keys {
		r := e.Eval(n.Values[i], ctx)
		if !r.IsNormal() {
			return r
		}
		rec.Set(key, r.Val)
	}
	this.Value = rec
	return types.Ok(rec)
}
