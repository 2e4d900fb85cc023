package eval

import (
	"io"
	"os"

	"nyalang/parser"
	"nyalang/types"
)

// Evaluator walks the program graph and evaluates expressions/statements.
// It keeps a persistent root environment, so programs run one after
// another share the cells of the globals they link.
// An Evaluator is not safe for concurrent use.
type Evaluator struct {
	root *Environment
	env  *Environment
	out  io.Writer

	// MaxTicks is the statement budget of each run; negative is unlimited
	MaxTicks int64
	// MaxDepth is the call depth limit; zero or negative is unlimited
	MaxDepth int
}

// NewEvaluator creates a new evaluator printing to os.Stdout
func NewEvaluator() *Evaluator {
	return NewEvaluatorWithOutput(os.Stdout)
}

// NewEvaluatorWithOutput creates a new evaluator printing to w
func NewEvaluatorWithOutput(w io.Writer) *Evaluator {
	defaults := types.NewTaskContext()
	root := NewEnvironment()
	return &Evaluator{
		root:     root,
		env:      root,
		out:      w,
		MaxTicks: defaults.TicksRemaining,
		MaxDepth: defaults.MaxDepth,
	}
}

// SetOutput redirects print statements
func (e *Evaluator) SetOutput(w io.Writer) {
	e.out = w
}

// Output returns the writer print statements go to
func (e *Evaluator) Output() io.Writer {
	return e.out
}

// Root returns the persistent root environment
func (e *Evaluator) Root() *Environment {
	return e.root
}

// NewContext creates a task context carrying the evaluator's limits
func (e *Evaluator) NewContext() *types.TaskContext {
	ctx := types.NewTaskContext()
	ctx.TicksRemaining = e.MaxTicks
	ctx.MaxDepth = e.MaxDepth
	return ctx
}

// Run executes a compiled program in a fresh task context and returns
// the value of its last top-level expression statement
func (e *Evaluator) Run(prog *parser.Program) (types.Value, error) {
	r := e.Exec(prog, e.NewContext())
	if r.IsError() {
		return nil, r.RuntimeError()
	}
	return r.Val, nil
}

// Exec executes a compiled program under ctx. The program's globals get
// fresh cells in the root environment. Exec may be called while another
// program is running; the current environment is restored afterwards.
func (e *Evaluator) Exec(prog *parser.Program, ctx *types.TaskContext) types.Result {
	saved := e.env
	e.env = e.root
	defer func() { e.env = saved }()

	for _, slot := range prog.Body.Slots {
		e.root.Declare(slot, types.Null)
	}

	var last types.Value = types.Null
	r := e.runList(prog.Body, ctx, &last)
	switch {
	case r.IsError():
		return r
	case r.IsJump():
		return jumpEscaped(r, ctx.Function)
	case r.IsReturn():
		return types.Ok(r.Val)
	}
	return types.Ok(last)
}

// Eval evaluates an expression node and returns a Result.
// All evaluation methods follow this pattern:
// - Accept *TaskContext for limits and diagnostics
// - Return Result (not raw Value) to unify error handling and control flow
func (e *Evaluator) Eval(expr parser.Expr, ctx *types.TaskContext) types.Result {
	switch n := expr.(type) {
	case *parser.Literal:
		return e.evalLiteral(n)
	case *parser.VarRef:
		return e.evalVarRef(n)
	case *parser.UnaryExpr:
		return e.evalUnary(n, ctx)
	case *parser.IncDecExpr:
		return e.evalIncDec(n, ctx)
	case *parser.BinaryExpr:
		return e.evalBinary(n, ctx)
	case *parser.LogicalExpr:
		return e.evalLogical(n, ctx)
	case *parser.TernaryExpr:
		return e.evalTernary(n, ctx)
	case *parser.AssignExpr:
		return e.evalAssign(n, ctx)
	case *parser.IndexExpr:
		return e.evalIndex(n, ctx)
	case *parser.FieldExpr:
		return e.evalField(n, ctx)
	case *parser.DynFieldExpr:
		return e.evalDynField(n, ctx)
	case *parser.CallExpr:
		return e.evalCall(n, ctx)
	case *parser.NativeCallExpr:
		return e.evalNativeCall(n, ctx)
	case *parser.ArrayLit:
		return e.evalArrayLit(n, ctx)
	case *parser.RecordLit:
		return e.evalRecordLit(n, ctx)
	case *parser.FuncLit:
		return e.evalFuncLit(n)
	default:
		// Unknown node type - this should never happen if parser is correct
		return types.Errf(types.E_TYPE, "Unknown expression node %T.", expr)
	}
}

// evalLiteral evaluates a literal expression.
// Literals are already Values, just wrap in Result.
func (e *Evaluator) evalLiteral(n *parser.Literal) types.Result {
	if n.Value == nil {
		return types.Ok(types.Null)
	}
	return types.Ok(n.Value)
}

// evalVarRef reads the cell of a resolved variable
func (e *Evaluator) evalVarRef(n *parser.VarRef) types.Result {
	cell, r := e.cell(n)
	if cell == nil {
		return r
	}
	return types.Ok(cell.Value)
}

// cell finds the storage of a variable reference. A slot with no cell
// belongs to a unit this evaluator never ran.
func (e *Evaluator) cell(n *parser.VarRef) (*Cell, types.Result) {
	c, ok := e.env.Lookup(n.Slot)
	if !ok {
		return nil, types.Errf(types.E_TYPE, "Variable [%s] is not bound in this environment.", n.Slot.Name)
	}
	return c, types.Result{}
}

// evalUnary evaluates - ! ~
func (e *Evaluator) evalUnary(n *parser.UnaryExpr, ctx *types.TaskContext) types.Result {
	operand := e.Eval(n.Operand, ctx)
	if !operand.IsNormal() {
		return operand // Propagate error/control flow
	}

	op, ok := parser.UnaryOps[n.Operator]
	if !ok {
		return types.Errf(types.E_TYPE, "Unknown unary operator [%s].", parser.Symbol(n.Operator))
	}
	return op(operand.Val)
}

// evalBinary evaluates arithmetic, bitwise and comparison operators.
// Both operands are evaluated, left first.
func (e *Evaluator) evalBinary(n *parser.BinaryExpr, ctx *types.TaskContext) types.Result {
	left := e.Eval(n.Left, ctx)
	if !left.IsNormal() {
		return left
	}
	right := e.Eval(n.Right, ctx)
	if !right.IsNormal() {
		return right
	}
	return binaryOp(n.Operator, left.Val, right.Val)
}

// evalLogical evaluates && and || with short-circuit semantics, and ^^.
// The result is always a boolean.
func (e *Evaluator) evalLogical(n *parser.LogicalExpr, ctx *types.TaskContext) types.Result {
	left := e.Eval(n.Left, ctx)
	if !left.IsNormal() {
		return left
	}
	l := left.Val.Truthy()

	switch n.Operator {
	case parser.TOKEN_AND:
		if !l {
			return types.Ok(types.NewBool(false))
		}
	case parser.TOKEN_OR:
		if l {
			return types.Ok(types.NewBool(true))
		}
	}

	right := e.Eval(n.Right, ctx)
	if !right.IsNormal() {
		return right
	}
	r := right.Val.Truthy()
	if n.Operator == parser.TOKEN_XOR {
		return types.Ok(types.NewBool(l != r))
	}
	return types.Ok(types.NewBool(r))
}

// evalTernary evaluates cond ? then : else
func (e *Evaluator) evalTernary(n *parser.TernaryExpr, ctx *types.TaskContext) types.Result {
	cond := e.Eval(n.Condition, ctx)
	if !cond.IsNormal() {
		return cond
	}
	if cond.Val.Truthy() {
		return e.Eval(n.ThenExpr, ctx)
	}
	return e.Eval(n.ElseExpr, ctx)
}

// evalArgs evaluates argument expressions left to right
func (e *Evaluator) evalArgs(exprs []parser.Expr, ctx *types.TaskContext) ([]types.Value, types.Result) {
	args := make([]types.Value, len(exprs))
	for i, expr := range exprs {
		r := e.Eval(expr, ctx)
		if !r.IsNormal() {
			return nil, r
		}
		args[i] = r.Val
	}
	return args, types.Result{}
}

// jumpEscaped turns a jump that left its function into a runtime error
func jumpEscaped(r types.Result, function string) types.Result {
	name := "?"
	if l, ok := r.Target.(*parser.Label); ok {
		name = l.Name
	}
	return types.Errf(types.E_JUMP, "Jump to [%s] escaped [%s].", name, function)
}
