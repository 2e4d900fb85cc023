package parser

import "nyalang/types"

// statement parses a single statement
func (p *Parser) statement() (Stmt, error) {
	switch {
	case p.match(TOKEN_LBRACE):
		return p.block()
	case p.match(TOKEN_IF):
		return p.ifStatement()
	case p.match(TOKEN_SWITCH):
		return p.switchStatement()
	case p.match(TOKEN_FOR):
		return p.forStatement()
	case p.match(TOKEN_WHILE):
		return p.whileStatement()
	case p.match(TOKEN_BREAK):
		return p.breakStatement()
	case p.match(TOKEN_CONTINUE):
		return p.continueStatement()
	case p.match(TOKEN_GOTO):
		return p.gotoStatement()
	case p.match(TOKEN_RETURN):
		return p.returnStatement()
	case p.match(TOKEN_PRINT):
		return p.printStatement()
	case p.match(TOKEN_SEMICOLON):
		// Empty statement
		return &Block{Pos: p.previous().Position}, nil
	default:
		return p.expressionStatement()
	}
}

// expressionStatement parses: expression ;
func (p *Parser) expressionStatement() (Stmt, error) {
	pos := p.peek().Position
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(TOKEN_SEMICOLON, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return &ExprStmt{Pos: pos, Expr: expr}, nil
}

// block parses the rest of "{ declaration* }" in a new scope
func (p *Parser) block() (*Block, error) {
	lbrace := p.previous()
	scope := p.scopes.Enter(ScopeBlock)
	defer p.scopes.Exit()

	if err := p.declareLabels(); err != nil {
		return nil, err
	}
	b := &Block{Pos: lbrace.Position}
	for !p.check(TOKEN_RBRACE) && !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			b.place(stmt)
		}
	}
	if _, err := p.consume(TOKEN_RBRACE, "Expect '}' after block."); err != nil {
		return nil, err
	}
	b.Slots = scope.Slots()
	return b, nil
}

// ifStatement parses: if ( expression ) statement ( else statement )?
// else binds to the nearest if.
func (p *Parser) ifStatement() (Stmt, error) {
	keyword := p.previous()
	if _, err := p.consume(TOKEN_LPAREN, "Expect '(' after 'if'."); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(TOKEN_RPAREN, "Expect ')' after if condition."); err != nil {
		return nil, err
	}
	then, err := p.statement()
	if err != nil {
		return nil, err
	}
	var els Stmt
	if p.match(TOKEN_ELSE) {
		els, err = p.statement()
		if err != nil {
			return nil, err
		}
	}
	return &If{Pos: keyword.Position, Condition: cond, Then: then, Else: els}, nil
}

// switchStatement parses
//
//	switch ( expression ) { ( case expression : statement )+ ( default : statement )? }
//
// into a block that stores the subject in a hidden slot followed by a
// chain of ifs testing it with == in source order.
func (p *Parser) switchStatement() (Stmt, error) {
	keyword := p.previous()
	if _, err := p.consume(TOKEN_LPAREN, "Expect '(' after switch."); err != nil {
		return nil, err
	}
	subject, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(TOKEN_RPAREN, "Expect ')' after switch test value."); err != nil {
		return nil, err
	}
	if _, err := p.consume(TOKEN_LBRACE, "Expect '{' before any 'case' expression."); err != nil {
		return nil, err
	}

	scope := p.scopes.Enter(ScopeBlock)
	defer p.scopes.Exit()
	// the name cannot be written in source, so user code never sees it
	hidden, err := p.scopes.Define(" switch", keyword.Position)
	if err != nil {
		return nil, p.errorAt(keyword, "%s", err.Error())
	}

	type clause struct {
		pos  Position
		test Expr
		body Stmt
	}
	var cases []clause
	var fallback Stmt

	if !p.check(TOKEN_CASE) {
		return nil, p.errorAt(p.peek(), "Switch statement should have at least one case.")
	}
	for p.match(TOKEN_CASE) {
		pos := p.previous().Position
		test, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(TOKEN_COLON, "Expect ':' after the expression of a case."); err != nil {
			return nil, err
		}
		body, err := p.statement()
		if err != nil {
			return nil, err
		}
		cases = append(cases, clause{pos: pos, test: test, body: body})
	}
	if p.match(TOKEN_DEFAULT) {
		if _, err := p.consume(TOKEN_COLON, "Expect ':' after the default expression."); err != nil {
			return nil, err
		}
		fallback, err = p.statement()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(TOKEN_RBRACE, "Expect '}' after switch-case statement."); err != nil {
		return nil, err
	}

	// build the chain from the last case backwards
	chain := fallback
	for i := len(cases) - 1; i >= 0; i-- {
		c := cases[i]
		test := &BinaryExpr{
			Pos:      c.pos,
			Left:     &VarRef{Pos: c.pos, Slot: hidden},
			Operator: TOKEN_EQ,
			Right:    c.test,
		}
		chain = &If{Pos: c.pos, Condition: test, Then: c.body, Else: chain}
	}

	return &Block{
		Pos:   keyword.Position,
		Slots: scope.Slots(),
		Stmts: []Stmt{
			&VarDecl{Pos: keyword.Position, Slot: hidden, Init: subject},
			chain,
		},
	}, nil
}

// forStatement parses: for ( init? ; cond? ; incr? ) statement
func (p *Parser) forStatement() (Stmt, error) {
	keyword := p.previous()
	if _, err := p.consume(TOKEN_LPAREN, "Expect '(' after 'for'."); err != nil {
		return nil, err
	}

	scope := p.scopes.Enter(ScopeLoop)
	defer p.scopes.Exit()
	loop, err := p.newLoop(keyword)
	if err != nil {
		return nil, err
	}

	var init Stmt
	switch {
	case p.match(TOKEN_SEMICOLON):
	case p.match(TOKEN_VAR):
		init, err = p.varDeclaration()
	default:
		init, err = p.expressionStatement()
	}
	if err != nil {
		return nil, err
	}

	var cond Expr
	if !p.check(TOKEN_SEMICOLON) {
		cond, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(TOKEN_SEMICOLON, "Expect ';' after loop condition."); err != nil {
		return nil, err
	}

	var incr Expr
	if !p.check(TOKEN_RPAREN) {
		incr, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(TOKEN_RPAREN, "Expect ')' after for clauses."); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	var after Stmt
	if incr != nil {
		after = &ExprStmt{Pos: incr.Position(), Expr: incr}
	}
	p.finishLoop(loop, cond, body, after)

	outer := &Block{Pos: keyword.Position}
	if init != nil {
		outer.place(init)
	}
	outer.place(loop)
	outer.Slots = scope.Slots()
	return outer, nil
}

// whileStatement parses: while ( expression ) statement
func (p *Parser) whileStatement() (Stmt, error) {
	keyword := p.previous()
	if _, err := p.consume(TOKEN_LPAREN, "Expect '(' after 'while'."); err != nil {
		return nil, err
	}

	p.scopes.Enter(ScopeLoop)
	defer p.scopes.Exit()
	loop, err := p.newLoop(keyword)
	if err != nil {
		return nil, err
	}

	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(TOKEN_RPAREN, "Expect ')' after condition."); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	p.finishLoop(loop, cond, body, nil)
	return loop, nil
}

// newLoop declares fresh break and continue labels in the current loop scope
func (p *Parser) newLoop(keyword Token) (*Loop, error) {
	brk, err := p.scopes.DefineLabel(LabelBreak.String(), LabelBreak, keyword.Position)
	if err != nil {
		return nil, p.errorAt(keyword, "%s", err.Error())
	}
	cont, err := p.scopes.DefineLabel(LabelContinue.String(), LabelContinue, keyword.Position)
	if err != nil {
		return nil, p.errorAt(keyword, "%s", err.Error())
	}
	return &Loop{Pos: keyword.Position, Break: brk, Continue: cont}, nil
}

// finishLoop builds the loop body
//
//	if (cond) { body; label continue; after } else break;
//
// so a false condition breaks out and continue still runs the increment
func (p *Parser) finishLoop(loop *Loop, cond Expr, body Stmt, after Stmt) {
	if cond == nil {
		cond = &Literal{Pos: loop.Pos, Value: types.NewBool(true)}
	}
	iteration := &Block{Pos: body.Position()}
	iteration.place(body)
	iteration.place(&LabelStmt{Pos: body.Position(), Label: loop.Continue})
	if after != nil {
		iteration.place(after)
	}
	loop.Body = &If{
		Pos:       cond.Position(),
		Condition: cond,
		Then:      iteration,
		Else:      &BreakStmt{Pos: loop.Pos, Label: loop.Break},
	}
}

// breakStatement parses: break ;
func (p *Parser) breakStatement() (Stmt, error) {
	keyword := p.previous()
	if _, err := p.consume(TOKEN_SEMICOLON, "Expect ';' after 'break'."); err != nil {
		return nil, err
	}
	label, ok := p.scopes.Reserved(LabelBreak)
	if !ok {
		return nil, p.errorAt(keyword, "No loops to break.")
	}
	return &BreakStmt{Pos: keyword.Position, Label: label}, nil
}

// continueStatement parses: continue ;
func (p *Parser) continueStatement() (Stmt, error) {
	keyword := p.previous()
	if _, err := p.consume(TOKEN_SEMICOLON, "Expect ';' after 'continue'."); err != nil {
		return nil, err
	}
	label, ok := p.scopes.Reserved(LabelContinue)
	if !ok {
		return nil, p.errorAt(keyword, "No loops to continue.")
	}
	return &ContinueStmt{Pos: keyword.Position, Label: label}, nil
}

// gotoStatement parses: goto IDENT ;
func (p *Parser) gotoStatement() (Stmt, error) {
	keyword := p.previous()
	name, err := p.consume(TOKEN_IDENTIFIER, "Expect goto label.")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(TOKEN_SEMICOLON, "Expect ';' after goto label."); err != nil {
		return nil, err
	}
	label, ok := p.scopes.LookupLabel(name.Value)
	if !ok {
		return nil, p.errorAt(name, "Undefined label [%s].", name.Value)
	}
	return &GotoStmt{Pos: keyword.Position, Label: label}, nil
}

// returnStatement parses: return expression? ;
func (p *Parser) returnStatement() (Stmt, error) {
	keyword := p.previous()
	var value Expr
	if !p.check(TOKEN_SEMICOLON) {
		var err error
		value, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(TOKEN_SEMICOLON, "Expect ';' after return value."); err != nil {
		return nil, err
	}
	label, ok := p.scopes.Reserved(LabelReturn)
	if !ok {
		return nil, p.errorAt(keyword, "Unable to return to null label.")
	}
	return &ReturnStmt{Pos: keyword.Position, Label: label, Value: value}, nil
}

// printStatement parses: print expression ;
func (p *Parser) printStatement() (Stmt, error) {
	keyword := p.previous()
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(TOKEN_SEMICOLON, "Expect ';' after value."); err != nil {
		return nil, err
	}
	return &PrintStmt{Pos: keyword.Position, Value: value}, nil
}
