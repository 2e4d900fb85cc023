package parser

import (
	"fmt"
	"strings"
)

// ParseError is a compile-time diagnostic attached to the offending token
type ParseError struct {
	Token   Token
	Message string
}

// newParseError creates a parse error at tok
func newParseError(tok Token, format string, args ...interface{}) *ParseError {
	return &ParseError{Token: tok, Message: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
// A misplaced ++ or -- gets an extra note suggesting the prefix form.
func (e *ParseError) Error() string {
	var sb strings.Builder
	if e.Token.Type == TOKEN_EOF {
		fmt.Fprintf(&sb, "[ ParserError ] at line [%d] in [end] : %s", e.Token.Position.Line, e.Message)
	} else {
		fmt.Fprintf(&sb, "[ ParserError ] at line [%d] in [%s] : %s", e.Token.Position.Line, e.Token.Value, e.Message)
	}
	switch e.Token.Type {
	case TOKEN_INCR:
		sb.WriteString("\n   [ Note ] NyaLang doesn't support expressions like ' i++ ', do you mean ' ++i '?")
	case TOKEN_DECR:
		sb.WriteString("\n   [ Note ] NyaLang doesn't support expressions like ' i-- ', do you mean ' --i '?")
	}
	return sb.String()
}

// Line returns the source line of the error
func (e *ParseError) Line() int {
	return e.Token.Position.Line
}
