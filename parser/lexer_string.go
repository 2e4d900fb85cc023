package parser

import "strings"

// readString reads a string literal with escape sequences
func (l *Lexer) readString() Token {
	tok := Token{
		Type: TOKEN_STRING,
		Position: Position{
			Line:   l.line,
			Column: l.column,
			Offset: l.position,
		},
	}

	start := l.position
	l.readChar() // skip opening "

	var result strings.Builder
	for l.ch != '"' && l.ch != 0 {
		if l.ch == '\\' {
			l.readChar() // skip backslash
			switch l.ch {
			case 'n':
				result.WriteByte('\n')
			case 't':
				result.WriteByte('\t')
			case '"':
				result.WriteByte('"')
			case '\\':
				result.WriteByte('\\')
			case 0:
				continue
			default:
				// Unknown escape - keep the backslash
				result.WriteByte('\\')
				result.WriteRune(l.ch)
			}
			l.readChar()
		} else {
			result.WriteRune(l.ch)
			l.readChar()
		}
	}

	if l.ch != '"' {
		tok.Type = TOKEN_ILLEGAL
		tok.Value = l.input[start:l.position]
		tok.Literal = "Unterminated string."
		return tok
	}
	l.readChar() // skip closing "

	tok.Value = l.input[start:l.position] // Store the full quoted string
	tok.Literal = result.String()         // Store the decoded value
	return tok
}

// readNumber reads digits with an optional fractional part
func (l *Lexer) readNumber() Token {
	tok := Token{
		Type: TOKEN_NUMBER,
		Position: Position{
			Line:   l.line,
			Column: l.column,
			Offset: l.position,
		},
	}
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	tok.Value = l.input[start:l.position]
	return tok
}

// readIdentifier reads an identifier or keyword
func (l *Lexer) readIdentifier() Token {
	tok := Token{
		Position: Position{
			Line:   l.line,
			Column: l.column,
			Offset: l.position,
		},
	}
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	tok.Value = l.input[start:l.position]
	tok.Type = LookupKeyword(tok.Value)
	return tok
}
