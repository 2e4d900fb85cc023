package eval

import (
	"fmt"

	"nyalang/parser"
	"nyalang/types"
)

// EvalStmt evaluates a single statement
func (e *Evaluator) EvalStmt(stmt parser.Stmt, ctx *types.TaskContext) types.Result {
	// Tick counting
	if !ctx.ConsumeTick() {
		return types.Errf(types.E_TICKS, "Statement budget exhausted in [%s].", ctx.Function)
	}
	ctx.Line = stmt.Position().Line

	r := e.evalStmt(stmt, ctx)
	if r.IsError() && r.Line == 0 {
		r.Line = stmt.Position().Line
	}
	return r
}

func (e *Evaluator) evalStmt(stmt parser.Stmt, ctx *types.TaskContext) types.Result {
	switch s := stmt.(type) {
	case *parser.Block:
		return e.execBlock(s, ctx)
	case *parser.ExprStmt:
		return e.Eval(s.Expr, ctx)
	case *parser.VarDecl:
		return e.evalVarDecl(s, ctx)
	case *parser.FuncDecl:
		return e.evalFuncDecl(s)
	case *parser.If:
		return e.evalIf(s, ctx)
	case *parser.Loop:
		return e.evalLoop(s, ctx)
	case *parser.LabelStmt:
		return types.Ok(types.Null)
	case *parser.GotoStmt:
		return types.Goto(s.Label)
	case *parser.BreakStmt:
		return types.Break(s.Label)
	case *parser.ContinueStmt:
		return types.Continue(s.Label)
	case *parser.ReturnStmt:
		return e.evalReturn(s, ctx)
	case *parser.PrintStmt:
		return e.evalPrint(s, ctx)
	default:
		return types.Errf(types.E_TYPE, "Unknown statement node %T.", stmt)
	}
}

// execBlock runs a block in a new environment holding its own variables.
// A block without variables runs in the current environment.
func (e *Evaluator) execBlock(b *parser.Block, ctx *types.TaskContext) types.Result {
	if len(b.Slots) == 0 {
		return e.runList(b, ctx, nil)
	}
	saved := e.env
	e.env = NewNestedEnvironment(saved)
	defer func() { e.env = saved }()
	for _, slot := range b.Slots {
		e.env.Declare(slot, types.Null)
	}
	return e.runList(b, ctx, nil)
}

// runList executes the statements of b in order. A goto or continue
// aimed at a label placed in b resumes right after that label; any other
// jump leaves the block. When last is set it receives the value of each
// expression statement.
func (e *Evaluator) runList(b *parser.Block, ctx *types.TaskContext, last *types.Value) types.Result {
	pc := 0
	for pc < len(b.Stmts) {
		stmt := b.Stmts[pc]
		r := e.EvalStmt(stmt, ctx)
		if r.Flow == types.FlowGoto || r.Flow == types.FlowContinue {
			if label, ok := r.Target.(*parser.Label); ok {
				if idx, ok := b.Labels[label]; ok {
					pc = idx + 1
					continue
				}
			}
		}
		if !r.IsNormal() {
			return r
		}
		if last != nil {
			if _, ok := stmt.(*parser.ExprStmt); ok {
				*last = r.Val
			}
		}
		pc++
	}
	return types.Ok(types.Null)
}

// evalVarDecl initializes a variable declared in the current block
func (e *Evaluator) evalVarDecl(s *parser.VarDecl, ctx *types.TaskContext) types.Result {
	var v types.Value = types.Null
	if s.Init != nil {
		r := e.Eval(s.Init, ctx)
		if !r.IsNormal() {
			return r
		}
		v = r.Val
	}
	if !e.env.Set(s.Slot, v) {
		e.env.Declare(s.Slot, v)
	}
	return types.Ok(types.Null)
}

// evalFuncDecl binds a named function to its slot
func (e *Evaluator) evalFuncDecl(s *parser.FuncDecl) types.Result {
	fn := types.NewFunc(&Closure{Lit: s.Func, Env: e.env})
	if !e.env.Set(s.Slot, fn) {
		e.env.Declare(s.Slot, fn)
	}
	return types.Ok(types.Null)
}

// evalIf evaluates a two-way conditional
func (e *Evaluator) evalIf(s *parser.If, ctx *types.TaskContext) types.Result {
	cond := e.Eval(s.Condition, ctx)
	if !cond.IsNormal() {
		return cond
	}
	if cond.Val.Truthy() {
		return e.EvalStmt(s.Then, ctx)
	}
	if s.Else != nil {
		return e.EvalStmt(s.Else, ctx)
	}
	return types.Ok(types.Null)
}

// evalLoop runs the loop body until a break aimed at this loop arrives
func (e *Evaluator) evalLoop(s *parser.Loop, ctx *types.TaskContext) types.Result {
	for {
		r := e.EvalStmt(s.Body, ctx)
		if r.Flow == types.FlowBreak && r.Target == s.Break {
			return types.Ok(types.Null)
		}
		if !r.IsNormal() {
			return r
		}
	}
}

// evalReturn leaves the enclosing function with a value
func (e *Evaluator) evalReturn(s *parser.ReturnStmt, ctx *types.TaskContext) types.Result {
	var v types.Value = types.Null
	if s.Value != nil {
		r := e.Eval(s.Value, ctx)
		if !r.IsNormal() {
			return r
		}
		v = r.Val
	}
	r := types.Return(v)
	r.Target = s.Label
	return r
}

// evalPrint writes the text form of a value and a newline
func (e *Evaluator) evalPrint(s *parser.PrintStmt, ctx *types.TaskContext) types.Result {
	r := e.Eval(s.Value, ctx)
	if !r.IsNormal() {
		return r
	}
	if e.out != nil {
		fmt.Fprintln(e.out, types.ToText(r.Val))
	}
	return types.Ok(types.Null)
}
