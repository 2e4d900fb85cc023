package parser

import "nyalang/types"

// BinaryOps maps each binary operator token to its value-model operation.
// Logical operators short-circuit and are not listed.
var BinaryOps = map[TokenType]func(a, b types.Value) types.Result{
	TOKEN_PLUS:    types.Add,
	TOKEN_MINUS:   types.Sub,
	TOKEN_STAR:    types.Mul,
	TOKEN_SLASH:   types.Div,
	TOKEN_PERCENT: types.Mod,
	TOKEN_BITAND:  types.BitAnd,
	TOKEN_BITOR:   types.BitOr,
	TOKEN_BITXOR:  types.BitXor,
	TOKEN_LSHIFT:  types.Shl,
	TOKEN_RSHIFT:  types.Shr,
	TOKEN_LT:      types.Less,
	TOKEN_LE:      types.LessEq,
	TOKEN_GT:      types.Greater,
	TOKEN_GE:      types.GreaterEq,
	TOKEN_EQ: func(a, b types.Value) types.Result {
		return types.Ok(types.NewBool(types.Equal(a, b)))
	},
	TOKEN_NE: func(a, b types.Value) types.Result {
		return types.Ok(types.NewBool(types.NotEqual(a, b)))
	},
}

// UnaryOps maps each prefix operator token to its value-model operation
var UnaryOps = map[TokenType]func(v types.Value) types.Result{
	TOKEN_MINUS:  types.Negate,
	TOKEN_NOT:    types.Not,
	TOKEN_BITNOT: types.BitNot,
}

// foldConstant computes an initializer built only from literals, folded
// constants and operators. An operation that fails is left for run time,
// where it raises its error at the right line.
func foldConstant(expr Expr) (types.Value, bool) {
	switch e := expr.(type) {
	case *Literal:
		return e.Value, e.Value != nil
	case *UnaryExpr:
		v, ok := foldConstant(e.Operand)
		if !ok {
			return nil, false
		}
		op, ok := UnaryOps[e.Operator]
		if !ok {
			return nil, false
		}
		return folded(op(v))
	case *BinaryExpr:
		a, ok := foldConstant(e.Left)
		if !ok {
			return nil, false
		}
		b, ok := foldConstant(e.Right)
		if !ok {
			return nil, false
		}
		op, ok := BinaryOps[e.Operator]
		if !ok {
			return nil, false
		}
		return folded(op(a, b))
	}
	return nil, false
}

func folded(r types.Result) (types.Value, bool) {
	if !r.IsNormal() {
		return nil, false
	}
	return r.Val, true
}
