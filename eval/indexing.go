package eval

import (
	"nyalang/parser"
	"nyalang/types"
)

// evalIndex evaluates expr[index]
func (e *Evaluator) evalIndex(n *parser.IndexExpr, ctx *types.TaskContext) types.Result {
	container := e.Eval(n.Expr, ctx)
	if !container.IsNormal() {
		return container
	}
	index := e.Eval(n.Index, ctx)
	if !index.IsNormal() {
		return index
	}
	return types.Index(container.Val, index.Val)
}

// evalField evaluates expr.name
func (e *Evaluator) evalField(n *parser.FieldExpr, ctx *types.TaskContext) types.Result {
	rec := e.Eval(n.Expr, ctx)
	if !rec.IsNormal() {
		return rec
	}
	return types.Field(rec.Val, n.Name)
}

// evalDynField evaluates expr.@key, where key must evaluate to a string
func (e *Evaluator) evalDynField(n *parser.DynFieldExpr, ctx *types.TaskContext) types.Result {
	rec := e.Eval(n.Expr, ctx)
	if !rec.IsNormal() {
		return rec
	}
	key, r := e.fieldKey(n.Key, ctx)
	if !r.IsNormal() {
		return r
	}
	return types.Field(rec.Val, key)
}

// fieldKey evaluates the key of a reflective field access
func (e *Evaluator) fieldKey(expr parser.Expr, ctx *types.TaskContext) (string, types.Result) {
	r := e.Eval(expr, ctx)
	if !r.IsNormal() {
		return "", r
	}
	s, ok := r.Val.(types.StrValue)
	if !ok {
		return "", types.Errf(types.E_TYPE, "Field name of type [%s] is not a string.", r.Val.Type())
	}
	return s.Value(), types.Ok(s)
}
