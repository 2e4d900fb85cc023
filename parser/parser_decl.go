package parser

// parseDeclaration dispatches on the leading keyword
func (p *Parser) parseDeclaration() (Stmt, error) {
	switch {
	case p.match(TOKEN_VAR):
		return p.varDeclaration()
	case p.match(TOKEN_LET):
		return p.constDeclaration()
	case p.check(TOKEN_FUN) && p.peekNext().Type == TOKEN_IDENTIFIER && p.peekNext().Value != "_":
		p.advance()
		return p.funDeclaration()
	case p.match(TOKEN_LABEL):
		return p.labelDeclaration()
	case p.check(TOKEN_CLASS, TOKEN_BASE):
		return nil, p.reservedKeyword(p.peek())
	default:
		return p.statement()
	}
}

// varDeclaration parses: var IDENT ( = expression )? ;
// The slot exists before the initializer is parsed.
func (p *Parser) varDeclaration() (Stmt, error) {
	keyword := p.previous()
	name, err := p.consume(TOKEN_IDENTIFIER, "Expect variable name.")
	if err != nil {
		return nil, err
	}
	slot, err := p.scopes.Define(name.Value, name.Position)
	if err != nil {
		return nil, p.errorAt(name, "%s", err.Error())
	}

	var init Expr
	if p.match(TOKEN_ASSIGN) {
		init, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(TOKEN_SEMICOLON, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}
	return &VarDecl{Pos: keyword.Position, Slot: slot, Init: init}, nil
}

// constDeclaration parses: ( let | const ) IDENT = expression ;
// An initializer made of literals and operators is folded into the slot.
func (p *Parser) constDeclaration() (Stmt, error) {
	keyword := p.previous()
	name, err := p.consume(TOKEN_IDENTIFIER, "Expect constant value name.")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(TOKEN_ASSIGN, "Constant value must have initialize expression."); err != nil {
		return nil, err
	}
	init, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(TOKEN_SEMICOLON, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}

	slot, err := p.scopes.Define(name.Value, name.Position)
	if err != nil {
		return nil, p.errorAt(name, "%s", err.Error())
	}
	slot.Const = true
	if v, ok := foldConstant(init); ok {
		slot.Value = v
	}
	return &VarDecl{Pos: keyword.Position, Slot: slot, Init: init}, nil
}

// funDeclaration parses: fun IDENT ( params ) block
// The name is declared before the body so the function can call itself.
func (p *Parser) funDeclaration() (Stmt, error) {
	keyword := p.previous()
	name, err := p.consume(TOKEN_IDENTIFIER, "Expect function name.")
	if err != nil {
		return nil, err
	}
	slot, err := p.scopes.Define(name.Value, name.Position)
	if err != nil {
		return nil, p.errorAt(name, "%s", err.Error())
	}

	p.scopes.Enter(ScopeFunction)
	defer p.scopes.Exit()

	fn := &FuncLit{Pos: keyword.Position, Name: name.Value}
	if err := p.functionBody(fn, false); err != nil {
		return nil, err
	}
	return &FuncDecl{Pos: keyword.Position, Slot: slot, Func: fn}, nil
}

// functionBody parses "( params ) block", or with allowArrow also
// "( params ) => expression", into fn. The caller has entered the
// function scope.
func (p *Parser) functionBody(fn *FuncLit, allowArrow bool) error {
	ret, err := p.scopes.DefineLabel(LabelReturn.String(), LabelReturn, fn.Pos)
	if err != nil {
		return newParseError(p.previous(), "%s", err.Error())
	}
	fn.Return = ret

	if _, err := p.consume(TOKEN_LPAREN, "Expect '(' after function name."); err != nil {
		return err
	}
	if !p.check(TOKEN_RPAREN) {
		for {
			param, err := p.consume(TOKEN_IDENTIFIER, "Expect parameter name.")
			if err != nil {
				return err
			}
			slot, err := p.scopes.Define(param.Value, param.Position)
			if err != nil {
				return p.errorAt(param, "%s", err.Error())
			}
			fn.Params = append(fn.Params, slot)
			if !p.match(TOKEN_COMMA) {
				break
			}
		}
	}
	if _, err := p.consume(TOKEN_RPAREN, "Expect ')' after parameters."); err != nil {
		return err
	}

	if allowArrow && p.match(TOKEN_FATARROW) {
		arrow := p.previous()
		value, err := p.expression()
		if err != nil {
			return err
		}
		fn.Body = &Block{
			Pos:   arrow.Position,
			Stmts: []Stmt{&ReturnStmt{Pos: arrow.Position, Label: ret, Value: value}},
		}
		return nil
	}

	if _, err := p.consume(TOKEN_LBRACE, "Expect '{' before function body."); err != nil {
		return err
	}
	body, err := p.block()
	if err != nil {
		return err
	}
	fn.Body = body
	return nil
}

// labelDeclaration parses: label IDENT ;
// The label was declared, or rejected, by the pre-scan of the enclosing
// statement list.
func (p *Parser) labelDeclaration() (Stmt, error) {
	keyword := p.previous()
	name, err := p.consume(TOKEN_IDENTIFIER, "Expect label name.")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(TOKEN_SEMICOLON, "Expect ';' after label declaration."); err != nil {
		return nil, err
	}

	if p.rejected[name.Position] {
		return nil, nil
	}
	label, ok := p.scopes.Current().localLabel(name.Value)
	if !ok {
		label, err = p.scopes.DefineLabel(name.Value, LabelUser, name.Position)
		if err != nil {
			return nil, p.errorAt(name, "%s", err.Error())
		}
	}
	if p.placed[label] {
		return nil, p.errorAt(name, "Label [%s] is already declared in this scope.", name.Value)
	}
	p.placed[label] = true
	return &LabelStmt{Pos: keyword.Position, Label: label}, nil
}

func (p *Parser) reservedKeyword(tok Token) *ParseError {
	return p.errorAt(tok, "Keyword '%s' is reserved but not supported.", tok.Value)
}
