package parser

import (
	"fmt"
	"unicode/utf8"
)

// Lexer tokenizes NyaLang source code
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	line         int
	column       int
}

// NewLexer creates a new Lexer instance
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 0,
	}
	l.readChar()
	return l
}

// Tokenize scans the whole input. The result always ends with TOKEN_EOF.
func Tokenize(input string) []Token {
	l := NewLexer(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TOKEN_EOF {
			return tokens
		}
	}
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = len(l.input)
		l.readPosition = len(l.input) + 1
		return
	}
	r, size := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += size
	l.column++
}

// peekChar returns the next character without advancing
func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

// skipWhitespaceAndComments skips blanks, // line comments and /* */ block comments
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r':
			l.readChar()
		case l.ch == '/' && l.peekChar() == '/':
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
		case l.ch == '/' && l.peekChar() == '*':
			l.readChar()
			l.readChar()
			for l.ch != 0 && !(l.ch == '*' && l.peekChar() == '/') {
				l.readChar()
			}
			if l.ch != 0 {
				l.readChar()
				l.readChar()
			}
		default:
			return
		}
	}
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	l.skipWhitespaceAndComments()

	pos := Position{
		Line:   l.line,
		Column: l.column,
		Offset: l.position,
	}

	if l.ch == 0 && l.position >= len(l.input) {
		return Token{Type: TOKEN_EOF, Position: pos}
	}

	switch {
	case l.ch == '"':
		return l.readString()
	case isDigit(l.ch):
		return l.readNumber()
	case l.ch == 'λ':
		l.readChar()
		return Token{Type: TOKEN_FUN, Value: "λ", Position: pos}
	case isLetter(l.ch):
		return l.readIdentifier()
	}

	start := l.position
	tokType := l.readOperator()
	tok := Token{Type: tokType, Value: l.input[start:l.position], Position: pos}
	if tokType == TOKEN_ILLEGAL {
		tok.Literal = fmt.Sprintf("Unexpected character [%s].", tok.Value)
	}
	return tok
}

// readOperator consumes a punctuation or operator token.
// Two-character operators are matched greedily.
func (l *Lexer) readOperator() TokenType {
	ch := l.ch
	l.readChar()
	switch ch {
	case '(':
		return TOKEN_LPAREN
	case ')':
		return TOKEN_RPAREN
	case '{':
		return TOKEN_LBRACE
	case '}':
		return TOKEN_RBRACE
	case '[':
		return TOKEN_LBRACKET
	case ']':
		return TOKEN_RBRACKET
	case ',':
		return TOKEN_COMMA
	case '.':
		return TOKEN_DOT
	case ';':
		return TOKEN_SEMICOLON
	case ':':
		return TOKEN_COLON
	case '?':
		return TOKEN_QUESTION
	case '@':
		return TOKEN_AT
	case '$':
		return TOKEN_DOLLAR
	case '#':
		return TOKEN_HASH
	case '~':
		return TOKEN_BITNOT
	case '+':
		if l.match('=') {
			return TOKEN_PLUS_ASSIGN
		}
		if l.match('+') {
			return TOKEN_INCR
		}
		return TOKEN_PLUS
	case '-':
		if l.match('=') {
			return TOKEN_MINUS_ASSIGN
		}
		if l.match('-') {
			return TOKEN_DECR
		}
		if l.match('>') {
			return TOKEN_ARROW
		}
		return TOKEN_MINUS
	case '*':
		if l.match('=') {
			return TOKEN_STAR_ASSIGN
		}
		return TOKEN_STAR
	case '/':
		if l.match('=') {
			return TOKEN_SLASH_ASSIGN
		}
		return TOKEN_SLASH
	case '%':
		if l.match('=') {
			return TOKEN_PERCENT_ASSIGN
		}
		return TOKEN_PERCENT
	case '&':
		if l.match('&') {
			return TOKEN_AND
		}
		return TOKEN_BITAND
	case '|':
		if l.match('|') {
			return TOKEN_OR
		}
		return TOKEN_BITOR
	case '^':
		if l.match('^') {
			return TOKEN_XOR
		}
		return TOKEN_BITXOR
	case '!':
		if l.match('=') {
			return TOKEN_NE
		}
		return TOKEN_NOT
	case '=':
		if l.match('=') {
			return TOKEN_EQ
		}
		if l.match('>') {
			return TOKEN_FATARROW
		}
		return TOKEN_ASSIGN
	case '<':
		if l.match('=') {
			return TOKEN_LE
		}
		if l.match('<') {
			return TOKEN_LSHIFT
		}
		return TOKEN_LT
	case '>':
		if l.match('=') {
			return TOKEN_GE
		}
		if l.match('>') {
			return TOKEN_RSHIFT
		}
		return TOKEN_GT
	default:
		return TOKEN_ILLEGAL
	}
}

// match consumes the current char if it equals expected
func (l *Lexer) match(expected rune) bool {
	if l.ch != expected {
		return false
	}
	l.readChar()
	return true
}

// isLetter returns true for letters, underscore and any non-ASCII character
func isLetter(ch rune) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_' || ch >= 0xa1
}

// isDigit returns true if the character is a digit
func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}
