package parser

import "nyalang/types"

// expression parses: assignment ( ? expression : expression )?
func (p *Parser) expression() (Expr, error) {
	expr, err := p.assignment()
	if err != nil {
		return nil, err
	}
	if !p.match(TOKEN_QUESTION) {
		return expr, nil
	}
	question := p.previous()
	then, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(TOKEN_COLON, "Expect ':' in condition expression."); err != nil {
		return nil, err
	}
	els, err := p.expression()
	if err != nil {
		return nil, err
	}
	return &TernaryExpr{Pos: question.Position, Condition: expr, ThenExpr: then, ElseExpr: els}, nil
}

// assignTargetNames names each assignment operator in diagnostics
var assignTargetNames = map[TokenType]string{
	TOKEN_ASSIGN:         "assignment",
	TOKEN_PLUS_ASSIGN:    "add_assign",
	TOKEN_MINUS_ASSIGN:   "subtract_assign",
	TOKEN_STAR_ASSIGN:    "multiply_assign",
	TOKEN_SLASH_ASSIGN:   "divide_assign",
	TOKEN_PERCENT_ASSIGN: "modulo_assign",
}

// assignment parses: logic_xor ( ( = | += | -= | *= | /= | %= ) assignment )?
// Assignment is right-associative.
func (p *Parser) assignment() (Expr, error) {
	expr, err := p.logicXor()
	if err != nil {
		return nil, err
	}
	if !p.match(TOKEN_ASSIGN, TOKEN_PLUS_ASSIGN, TOKEN_MINUS_ASSIGN,
		TOKEN_STAR_ASSIGN, TOKEN_SLASH_ASSIGN, TOKEN_PERCENT_ASSIGN) {
		return expr, nil
	}
	op := p.previous()
	value, err := p.assignment()
	if err != nil {
		return nil, err
	}
	if err := p.checkTarget(expr, op, op.Type == TOKEN_ASSIGN); err != nil {
		return nil, err
	}
	return &AssignExpr{Pos: op.Position, Operator: op.Type, Target: expr, Value: value}, nil
}

// checkTarget validates the left side of an assignment or ++/--.
// Field targets are only allowed with allowField.
func (p *Parser) checkTarget(target Expr, op Token, allowField bool) error {
	switch t := target.(type) {
	case *VarRef:
		if t.Slot.Const {
			return p.errorAt(op, "Cannot assign to constant [%s].", t.Slot.Name)
		}
		return nil
	case *Literal:
		if t.Const != nil {
			return p.errorAt(op, "Cannot assign to constant [%s].", t.Const.Name)
		}
	case *IndexExpr:
		return nil
	case *FieldExpr, *DynFieldExpr:
		if allowField {
			return nil
		}
	}
	switch op.Type {
	case TOKEN_INCR:
		return p.errorAt(op, "Invalid increment target.")
	case TOKEN_DECR:
		return p.errorAt(op, "Invalid decrement target.")
	case TOKEN_ASSIGN:
		return p.errorAt(op, "Invalid assignment target.")
	default:
		return p.errorAt(op, "Invalid %s target.", assignTargetNames[op.Type])
	}
}

// binaryLevel parses one left-associative precedence level
func (p *Parser) binaryLevel(next func() (Expr, error), build func(pos Position, left Expr, op TokenType, right Expr) Expr, ops ...TokenType) (Expr, error) {
	expr, err := next()
	if err != nil {
		return nil, err
	}
	for p.match(ops...) {
		op := p.previous()
		right, err := next()
		if err != nil {
			return nil, err
		}
		expr = build(op.Position, expr, op.Type, right)
	}
	return expr, nil
}

func newBinary(pos Position, left Expr, op TokenType, right Expr) Expr {
	return &BinaryExpr{Pos: pos, Left: left, Operator: op, Right: right}
}

func newLogical(pos Position, left Expr, op TokenType, right Expr) Expr {
	return &LogicalExpr{Pos: pos, Left: left, Operator: op, Right: right}
}

// logicXor parses: logic_or ( ( ^^ | xor ) logic_or )*
func (p *Parser) logicXor() (Expr, error) {
	return p.binaryLevel(p.logicOr, newLogical, TOKEN_XOR)
}

// logicOr parses: logic_and ( ( || | or ) logic_and )*
func (p *Parser) logicOr() (Expr, error) {
	return p.binaryLevel(p.logicAnd, newLogical, TOKEN_OR)
}

// logicAnd parses: equality ( ( && | and ) equality )*
func (p *Parser) logicAnd() (Expr, error) {
	return p.binaryLevel(p.equality, newLogical, TOKEN_AND)
}

// equality parses: comparison ( ( == | != ) comparison )*
func (p *Parser) equality() (Expr, error) {
	return p.binaryLevel(p.comparison, newBinary, TOKEN_EQ, TOKEN_NE)
}

// comparison parses: bitwise ( ( < | <= | > | >= ) bitwise )*
func (p *Parser) comparison() (Expr, error) {
	return p.binaryLevel(p.bitwise, newBinary, TOKEN_LT, TOKEN_LE, TOKEN_GT, TOKEN_GE)
}

// bitwise parses: shift ( ( & | | | ^ ) shift )*
func (p *Parser) bitwise() (Expr, error) {
	return p.binaryLevel(p.shift, newBinary, TOKEN_BITAND, TOKEN_BITOR, TOKEN_BITXOR)
}

// shift parses: term ( ( << | >> ) term )*
func (p *Parser) shift() (Expr, error) {
	return p.binaryLevel(p.term, newBinary, TOKEN_LSHIFT, TOKEN_RSHIFT)
}

// term parses: factor ( ( + | - ) factor )*
func (p *Parser) term() (Expr, error) {
	return p.binaryLevel(p.factor, newBinary, TOKEN_PLUS, TOKEN_MINUS)
}

// factor parses: unary ( ( * | / | % ) unary )*
func (p *Parser) factor() (Expr, error) {
	return p.binaryLevel(p.unary, newBinary, TOKEN_STAR, TOKEN_SLASH, TOKEN_PERCENT)
}

// unary parses: ( ! | not | - | ~ | ++ | -- ) unary | postfix
func (p *Parser) unary() (Expr, error) {
	if !p.match(TOKEN_NOT, TOKEN_MINUS, TOKEN_BITNOT, TOKEN_INCR, TOKEN_DECR) {
		return p.postfix()
	}
	op := p.previous()
	operand, err := p.unary()
	if err != nil {
		return nil, err
	}

	switch op.Type {
	case TOKEN_INCR, TOKEN_DECR:
		if err := p.checkTarget(operand, op, false); err != nil {
			return nil, err
		}
		return &IncDecExpr{Pos: op.Position, Operator: op.Type, Target: operand}, nil
	case TOKEN_MINUS:
		// fold negative number literals
		if lit, ok := operand.(*Literal); ok {
			if n, ok := lit.Value.(types.NumValue); ok {
				return &Literal{Pos: op.Position, Value: types.NewNum(-n.Val)}, nil
			}
		}
	}
	return &UnaryExpr{Pos: op.Position, Operator: op.Type, Operand: operand}, nil
}
