package parser

import (
	"errors"
	"fmt"
)

// Parser is a single-pass recursive-descent compiler. It resolves every
// identifier through its ScopeManager while it builds the program graph.
type Parser struct {
	tokens   []Token
	current  int
	scopes   *ScopeManager
	opts     Options
	errors   []*ParseError
	placed   map[*Label]bool
	rejected map[Position]bool // label names the pre-scan could not declare
}

// NewParser creates a parser over a token slice ending with TOKEN_EOF
func NewParser(tokens []Token, opts Options) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != TOKEN_EOF {
		var pos Position
		if len(tokens) > 0 {
			pos = tokens[len(tokens)-1].Position
		}
		tokens = append(tokens, Token{Type: TOKEN_EOF, Position: pos})
	}
	return &Parser{
		tokens:   tokens,
		scopes:   NewScopeManager(opts.Linked),
		opts:     opts,
		placed:   make(map[*Label]bool),
		rejected: make(map[Position]bool),
	}
}

// Scopes exposes the scope stack, mainly for tests
func (p *Parser) Scopes() *ScopeManager {
	return p.scopes
}

// Errors returns the parse errors recovered so far
func (p *Parser) Errors() []*ParseError {
	return p.errors
}

// ParseProgram parses declarations until EOF
func (p *Parser) ParseProgram() (*Block, error) {
	body := &Block{Pos: p.peek().Position}
	if err := p.declareLabels(); err != nil {
		return nil, err
	}
	for !p.isAtEnd() {
		if p.check(TOKEN_RBRACE) {
			if err := p.reportError(p.errorAt(p.advance(), "Unexpected '}' outside of a block.")); err != nil {
				return nil, err
			}
			continue
		}
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			body.place(stmt)
		}
	}
	body.Slots = p.scopes.Global().Slots()
	return body, nil
}

// declaration parses one declaration and recovers from a parse error by
// unwinding the scope stack, reporting, and skipping to the next statement.
// In strict mode the error is returned instead.
func (p *Parser) declaration() (Stmt, error) {
	depth := p.scopes.Depth()
	stmt, err := p.parseDeclaration()
	if err == nil {
		return stmt, nil
	}
	var perr *ParseError
	if p.opts.Strict || !errors.As(err, &perr) {
		return nil, err
	}
	p.scopes.Unwind(depth)
	if err := p.reportError(perr); err != nil {
		return nil, err
	}
	p.synchronize()
	return nil, nil
}

// reportError records and reports a parse error, or returns it in strict mode
func (p *Parser) reportError(perr *ParseError) error {
	if p.opts.Strict {
		return perr
	}
	p.errors = append(p.errors, perr)
	if p.opts.Diagnostics != nil {
		fmt.Fprintln(p.opts.Diagnostics, perr.Error())
	}
	return nil
}

// declareLabels pre-scans the statement list starting at the current token
// and declares its user labels in the current scope. Only labels at brace
// depth 0 belong to this list; nested blocks declare their own. A label that
// cannot be declared is reported here and skipped when its statement is parsed.
func (p *Parser) declareLabels() error {
	depth := 0
	for i := p.current; i < len(p.tokens); i++ {
		switch p.tokens[i].Type {
		case TOKEN_EOF:
			return nil
		case TOKEN_LBRACE:
			depth++
		case TOKEN_RBRACE:
			if depth == 0 {
				return nil
			}
			depth--
		case TOKEN_LABEL:
			if depth == 0 && i+1 < len(p.tokens) && p.tokens[i+1].Type == TOKEN_IDENTIFIER {
				name := p.tokens[i+1]
				if _, err := p.scopes.DefineLabel(name.Value, LabelUser, name.Position); err != nil {
					p.rejected[name.Position] = true
					if err := p.reportError(p.errorAt(name, "%s", err.Error())); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

// synchronize discards tokens until a statement boundary: just after a
// semicolon, or before a token that starts a new declaration. A closing
// brace is left for the enclosing block.
func (p *Parser) synchronize() {
	if p.check(TOKEN_RBRACE) {
		return
	}
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Type == TOKEN_SEMICOLON {
			return
		}
		switch p.peek().Type {
		case TOKEN_CLASS, TOKEN_FUN, TOKEN_VAR, TOKEN_FOR, TOKEN_IF,
			TOKEN_WHILE, TOKEN_PRINT, TOKEN_RETURN, TOKEN_RBRACE:
			return
		}
		p.advance()
	}
}

// ============================================================================
// TOKEN HELPERS
// ============================================================================

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) peekNext() Token {
	if p.current+1 >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.current+1]
}

func (p *Parser) previous() Token {
	if p.current == 0 {
		return p.tokens[0]
	}
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == TOKEN_EOF
}

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

// check reports whether the current token has one of the given types
func (p *Parser) check(types ...TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	t := p.peek().Type
	for _, want := range types {
		if t == want {
			return true
		}
	}
	return false
}

// match consumes the current token if it has one of the given types
func (p *Parser) match(types ...TokenType) bool {
	if p.check(types...) {
		p.advance()
		return true
	}
	return false
}

// consume requires the current token to have type t
func (p *Parser) consume(t TokenType, message string) (Token, error) {
	if p.check(t) {
		return p.advance(), nil
	}
	return Token{}, p.errorAt(p.peek(), message)
}

// errorAt builds a parse error. A lexer error token reports its own message.
func (p *Parser) errorAt(tok Token, format string, args ...interface{}) *ParseError {
	if tok.Type == TOKEN_ILLEGAL && tok.Literal != "" {
		return newParseError(tok, "%s", tok.Literal)
	}
	return newParseError(tok, format, args...)
}
