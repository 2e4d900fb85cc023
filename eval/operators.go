package eval

import (
	"nyalang/parser"
	"nyalang/types"
)

// compoundOps maps each compound assignment to its binary operator
var compoundOps = map[parser.TokenType]parser.TokenType{
	parser.TOKEN_PLUS_ASSIGN:    parser.TOKEN_PLUS,
	parser.TOKEN_MINUS_ASSIGN:   parser.TOKEN_MINUS,
	parser.TOKEN_STAR_ASSIGN:    parser.TOKEN_STAR,
	parser.TOKEN_SLASH_ASSIGN:   parser.TOKEN_SLASH,
	parser.TOKEN_PERCENT_ASSIGN: parser.TOKEN_PERCENT,
}

// binaryOp applies a binary operator to two values
func binaryOp(op parser.TokenType, a, b types.Value) types.Result {
	fn, ok := parser.BinaryOps[op]
	if !ok {
		return types.Errf(types.E_TYPE, "Unknown binary operator [%s].", parser.Symbol(op))
	}
	return fn(a, b)
}

// update computes the value an assignment or ++/-- stores, given the
// current value (nil for plain =) and the right-hand side
func update(op parser.TokenType, old, rhs types.Value) types.Result {
	switch op {
	case parser.TOKEN_ASSIGN:
		return types.Ok(rhs)
	case parser.TOKEN_INCR:
		return types.Inc(old)
	case parser.TOKEN_DECR:
		return types.Dec(old)
	}
	if bin, ok := compoundOps[op]; ok {
		return binaryOp(bin, old, rhs)
	}
	return types.Errf(types.E_TYPE, "Unknown assignment operator [%s].", parser.Symbol(op))
}

// evalAssign evaluates = and the compound assignments. The target's
// container and index are evaluated before the right-hand side.
func (e *Evaluator) evalAssign(n *parser.AssignExpr, ctx *types.TaskContext) types.Result {
	return e.store(n.Target, n.Operator, n.Value, ctx)
}

// evalIncDec evaluates prefix ++ and --; the value is the updated value
func (e *Evaluator) evalIncDec(n *parser.IncDecExpr, ctx *types.TaskContext) types.Result {
	return e.store(n.Target, n.Operator, nil, ctx)
}

// store writes to an assignment target. valueExpr is nil for ++/--.
func (e *Evaluator) store(target parser.Expr, op parser.TokenType, valueExpr parser.Expr, ctx *types.TaskContext) types.Result {
	rhs := func() types.Result {
		if valueExpr == nil {
			return types.Ok(types.Null)
		}
		return e.Eval(valueExpr, ctx)
	}

	switch t := target.(type) {
	case *parser.VarRef:
		cell, r := e.cell(t)
		if cell == nil {
			return r
		}
		value := rhs()
		if !value.IsNormal() {
			return value
		}
		next := update(op, cell.Value, value.Val)
		if !next.IsNormal() {
			return next
		}
		cell.Value = next.Val
		return next

	case *parser.IndexExpr:
		container := e.Eval(t.Expr, ctx)
		if !container.IsNormal() {
			return container
		}
		index := e.Eval(t.Index, ctx)
		if !index.IsNormal() {
			return index
		}
		value := rhs()
		if !value.IsNormal() {
			return value
		}
		var old types.Value
		if op != parser.TOKEN_ASSIGN {
			cur := types.Index(container.Val, index.Val)
			if !cur.IsNormal() {
				return cur
			}
			old = cur.Val
		}
		next := update(op, old, value.Val)
		if !next.IsNormal() {
			return next
		}
		return types.SetIndex(container.Val, index.Val, next.Val)

	case *parser.FieldExpr:
		rec := e.Eval(t.Expr, ctx)
		if !rec.IsNormal() {
			return rec
		}
		value := rhs()
		if !value.IsNormal() {
			return value
		}
		return types.SetField(rec.Val, t.Name, value.Val)

	case *parser.DynFieldExpr:
		rec := e.Eval(t.Expr, ctx)
		if !rec.IsNormal() {
			return rec
		}
		key, r := e.fieldKey(t.Key, ctx)
		if !r.IsNormal() {
			return r
		}
		value := rhs()
		if !value.IsNormal() {
			return value
		}
		return types.SetField(rec.Val, key, value.Val)

	default:
		return types.Errf(types.E_TYPE, "Invalid assignment target.")
	}
}
