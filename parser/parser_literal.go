package parser

import (
	"strconv"

	"nyalang/types"
)

// postfix parses a native call or a literal followed by any chain of
// calls, index operations and field accesses
func (p *Parser) postfix() (Expr, error) {
	var expr Expr
	var err error
	if p.match(TOKEN_DOLLAR) {
		expr, err = p.nativeCall()
	} else {
		expr, err = p.literal()
	}
	if err != nil {
		return nil, err
	}

	for {
		switch {
		case p.match(TOKEN_LPAREN):
			expr, err = p.finishCall(expr)
		case p.match(TOKEN_LBRACKET):
			expr, err = p.finishIndex(expr)
		case p.match(TOKEN_DOT):
			expr, err = p.finishField(expr)
		default:
			return expr, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// arguments parses "args? )" after an opening parenthesis
func (p *Parser) arguments() ([]Expr, error) {
	var args []Expr
	if !p.check(TOKEN_RPAREN) {
		for {
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(TOKEN_COMMA) {
				break
			}
		}
	}
	if _, err := p.consume(TOKEN_RPAREN, "Expect ')' after arguments."); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *Parser) finishCall(callee Expr) (Expr, error) {
	lparen := p.previous()
	args, err := p.arguments()
	if err != nil {
		return nil, err
	}
	return &CallExpr{Pos: lparen.Position, Callee: callee, Args: args}, nil
}

// finishIndex parses "expr ( , expr )* ]"; a[1, 2] is a[1][2]
func (p *Parser) finishIndex(target Expr) (Expr, error) {
	if p.check(TOKEN_RBRACKET) {
		return nil, p.errorAt(p.advance(), "Too few arguments for array index.")
	}
	expr := target
	for {
		pos := p.peek().Position
		index, err := p.expression()
		if err != nil {
			return nil, err
		}
		expr = &IndexExpr{Pos: pos, Expr: expr, Index: index}
		if !p.match(TOKEN_COMMA) {
			break
		}
	}
	if _, err := p.consume(TOKEN_RBRACKET, "Expect ']' for array index."); err != nil {
		return nil, err
	}
	return expr, nil
}

// finishField parses ".name" or the reflective ".@primary"
func (p *Parser) finishField(target Expr) (Expr, error) {
	dot := p.previous()
	switch {
	case p.match(TOKEN_IDENTIFIER):
		return &FieldExpr{Pos: dot.Position, Expr: target, Name: p.previous().Value}, nil
	case p.match(TOKEN_AT):
		key, err := p.primary()
		if err != nil {
			return nil, err
		}
		return &DynFieldExpr{Pos: dot.Position, Expr: target, Key: key}, nil
	default:
		return nil, p.errorAt(p.peek(), "Expect field name.")
	}
}

// nativeCall parses "Name ( args )" after the $ sigil. The name is
// resolved against the native registry at compile time.
func (p *Parser) nativeCall() (Expr, error) {
	name, err := p.consume(TOKEN_IDENTIFIER, "Expect static method name.")
	if err != nil {
		return nil, err
	}
	var fn types.NativeFunc
	if p.opts.Natives != nil {
		fn, _ = p.opts.Natives.Lookup(name.Value)
	}
	if fn == nil {
		return nil, p.errorAt(name, "Invalid static method.")
	}
	if _, err := p.consume(TOKEN_LPAREN, "Expect '(' after static method name."); err != nil {
		return nil, err
	}
	args, err := p.arguments()
	if err != nil {
		return nil, err
	}
	return &NativeCallExpr{Pos: name.Position, Name: name.Value, Fn: fn, Args: args}, nil
}

// literal parses an array literal, a record literal, a lambda or a primary
func (p *Parser) literal() (Expr, error) {
	switch {
	case p.match(TOKEN_LBRACKET):
		return p.arrayLiteral()
	case p.match(TOKEN_LBRACE):
		return p.recordLiteral()
	case p.match(TOKEN_FUN):
		return p.lambda()
	default:
		return p.primary()
	}
}

// arrayLiteral parses "args? ]" after [
func (p *Parser) arrayLiteral() (Expr, error) {
	lbracket := p.previous()
	var elements []Expr
	if !p.check(TOKEN_RBRACKET) {
		for {
			elem, err := p.expression()
			if err != nil {
				return nil, err
			}
			elements = append(elements, elem)
			if !p.match(TOKEN_COMMA) {
				break
			}
		}
	}
	if _, err := p.consume(TOKEN_RBRACKET, "Expect ']' after tuple definition."); err != nil {
		return nil, err
	}
	return &ArrayLit{Pos: lbracket.Position, Elements: elements}, nil
}

// recordLiteral parses "( name : expression ),* }" after {. The fields
// are parsed in a record scope that binds this.
func (p *Parser) recordLiteral() (Expr, error) {
	lbrace := p.previous()
	p.scopes.Enter(ScopeRecord)
	defer p.scopes.Exit()

	this, err := p.scopes.Define("this", lbrace.Position)
	if err != nil {
		return nil, p.errorAt(lbrace, "%s", err.Error())
	}
	rec := &RecordLit{Pos: lbrace.Position, This: this}
	seen := make(map[string]bool)

	if !p.check(TOKEN_RBRACE) {
		for {
			var key string
			switch {
			case p.match(TOKEN_IDENTIFIER):
				key = p.previous().Value
			case p.match(TOKEN_STRING):
				key = p.previous().Literal
			default:
				return nil, p.errorAt(p.peek(), "Field name must be declared.")
			}
			keyTok := p.previous()
			if seen[key] {
				return nil, p.errorAt(keyTok, "Duplicate field name [%s] in record.", key)
			}
			seen[key] = true
			if _, err := p.consume(TOKEN_COLON, "Expect ':' after field name."); err != nil {
				return nil, err
			}
			value, err := p.expression()
			if err != nil {
				return nil, err
			}
			rec.Keys = append(rec.Keys, key)
			rec.Values = append(rec.Values, value)
			if !p.match(TOKEN_COMMA) {
				break
			}
		}
	}
	if _, err := p.consume(TOKEN_RBRACE, "Expect '}' after container definition."); err != nil {
		return nil, err
	}
	return rec, nil
}

// lambda parses "_? ( params ) ( block | => expression )" after fun.
// The optional name must be _; without it the function calls itself
// through self. The self name is visible only inside the lambda.
func (p *Parser) lambda() (Expr, error) {
	keyword := p.previous()
	selfName := "self"
	if p.check(TOKEN_IDENTIFIER) {
		name := p.advance()
		if name.Value != "_" {
			return nil, p.errorAt(name, "Lambda function should not be named, or should be named as anonymous '_'; "+
				"to recur, use 'self()' when nameless or '_()' when anonymous.")
		}
		selfName = name.Value
	}

	p.scopes.Enter(ScopeFunction)
	defer p.scopes.Exit()

	self, err := p.scopes.Define(selfName, keyword.Position)
	if err != nil {
		return nil, p.errorAt(keyword, "%s", err.Error())
	}
	fn := &FuncLit{Pos: keyword.Position, Name: selfName, Self: self}
	if err := p.functionBody(fn, true); err != nil {
		return nil, err
	}
	return fn, nil
}

// primary parses literals, identifiers, this and parenthesized expressions
func (p *Parser) primary() (Expr, error) {
	tok := p.peek()
	switch {
	case p.match(TOKEN_FALSE):
		return &Literal{Pos: tok.Position, Value: types.NewBool(false)}, nil
	case p.match(TOKEN_TRUE):
		return &Literal{Pos: tok.Position, Value: types.NewBool(true)}, nil
	case p.match(TOKEN_NULL):
		return &Literal{Pos: tok.Position, Value: types.Null}, nil
	case p.match(TOKEN_NUMBER):
		f, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			return nil, p.errorAt(tok, "Invalid number literal.")
		}
		return &Literal{Pos: tok.Position, Value: types.NewNum(f)}, nil
	case p.match(TOKEN_STRING):
		return &Literal{Pos: tok.Position, Value: types.NewStr(tok.Literal)}, nil
	case p.match(TOKEN_IDENTIFIER):
		slot, ok := p.scopes.Lookup(tok.Value)
		if !ok {
			return nil, p.errorAt(tok, "Cannot use variable [%s] before declaration.", tok.Value)
		}
		if slot.Const && slot.Value != nil {
			return &Literal{Pos: tok.Position, Value: slot.Value, Const: slot}, nil
		}
		return &VarRef{Pos: tok.Position, Slot: slot}, nil
	case p.match(TOKEN_THIS):
		slot, ok := p.scopes.Lookup("this")
		if !ok {
			return nil, p.errorAt(tok, "Unexpected keyword 'this'.")
		}
		return &VarRef{Pos: tok.Position, Slot: slot}, nil
	case p.match(TOKEN_LPAREN):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(TOKEN_RPAREN, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return expr, nil
	case p.check(TOKEN_CLASS, TOKEN_BASE):
		return nil, p.reservedKeyword(tok)
	default:
		return nil, p.errorAt(tok, "Expect expression.")
	}
}
