package parser

// TokenType represents different types of lexical tokens
type TokenType int

const (
	// Special tokens
	TOKEN_EOF TokenType = iota
	TOKEN_ILLEGAL

	// Literals
	TOKEN_NUMBER     // 42, 3.14
	TOKEN_STRING     // "hello"
	TOKEN_IDENTIFIER // name

	// Keywords
	TOKEN_VAR
	TOKEN_LET // let, const
	TOKEN_FUN // fun, function, λ
	TOKEN_RETURN
	TOKEN_TRUE
	TOKEN_FALSE
	TOKEN_NULL
	TOKEN_IF
	TOKEN_ELSE
	TOKEN_SWITCH
	TOKEN_CASE
	TOKEN_DEFAULT
	TOKEN_FOR
	TOKEN_WHILE
	TOKEN_BREAK
	TOKEN_CONTINUE
	TOKEN_LABEL
	TOKEN_GOTO
	TOKEN_PRINT
	TOKEN_THIS
	TOKEN_CLASS // reserved
	TOKEN_BASE  // reserved

	// Operators
	TOKEN_PLUS    // +
	TOKEN_MINUS   // -
	TOKEN_STAR    // *
	TOKEN_SLASH   // /
	TOKEN_PERCENT // %

	TOKEN_PLUS_ASSIGN    // +=
	TOKEN_MINUS_ASSIGN   // -=
	TOKEN_STAR_ASSIGN    // *=
	TOKEN_SLASH_ASSIGN   // /=
	TOKEN_PERCENT_ASSIGN // %=
	TOKEN_INCR           // ++
	TOKEN_DECR           // --

	TOKEN_EQ // ==
	TOKEN_NE // !=
	TOKEN_LT // <
	TOKEN_GT // >
	TOKEN_LE // <=
	TOKEN_GE // >=

	TOKEN_AND // && and
	TOKEN_OR  // || or
	TOKEN_XOR // ^^ xor
	TOKEN_NOT // ! not

	TOKEN_BITAND // &
	TOKEN_BITOR  // |
	TOKEN_BITXOR // ^
	TOKEN_BITNOT // ~
	TOKEN_LSHIFT // <<
	TOKEN_RSHIFT // >>

	TOKEN_ASSIGN   // =
	TOKEN_QUESTION // ?
	TOKEN_ARROW    // ->
	TOKEN_FATARROW // =>

	// Delimiters
	TOKEN_LPAREN    // (
	TOKEN_RPAREN    // )
	TOKEN_LBRACE    // {
	TOKEN_RBRACE    // }
	TOKEN_LBRACKET  // [
	TOKEN_RBRACKET  // ]
	TOKEN_COMMA     // ,
	TOKEN_SEMICOLON // ;
	TOKEN_DOT       // .
	TOKEN_COLON     // :
	TOKEN_AT        // @
	TOKEN_DOLLAR    // $
	TOKEN_HASH      // #
)

// Position represents a position in the source code
type Position struct {
	Line   int
	Column int
	Offset int
}

// Token represents a lexical token
type Token struct {
	Type     TokenType
	Value    string
	Literal  string // Decoded string value (for TOKEN_STRING), error text for TOKEN_ILLEGAL
	Position Position
}

var tokenNames = map[TokenType]string{
	TOKEN_EOF:            "EOF",
	TOKEN_ILLEGAL:        "ILLEGAL",
	TOKEN_NUMBER:         "NUMBER",
	TOKEN_STRING:         "STRING",
	TOKEN_IDENTIFIER:     "IDENTIFIER",
	TOKEN_VAR:            "VAR",
	TOKEN_LET:            "LET",
	TOKEN_FUN:            "FUN",
	TOKEN_RETURN:         "RETURN",
	TOKEN_TRUE:           "TRUE",
	TOKEN_FALSE:          "FALSE",
	TOKEN_NULL:           "NULL",
	TOKEN_IF:             "IF",
	TOKEN_ELSE:           "ELSE",
	TOKEN_SWITCH:         "SWITCH",
	TOKEN_CASE:           "CASE",
	TOKEN_DEFAULT:        "DEFAULT",
	TOKEN_FOR:            "FOR",
	TOKEN_WHILE:          "WHILE",
	TOKEN_BREAK:          "BREAK",
	TOKEN_CONTINUE:       "CONTINUE",
	TOKEN_LABEL:          "LABEL",
	TOKEN_GOTO:           "GOTO",
	TOKEN_PRINT:          "PRINT",
	TOKEN_THIS:           "THIS",
	TOKEN_CLASS:          "CLASS",
	TOKEN_BASE:           "BASE",
	TOKEN_PLUS:           "PLUS",
	TOKEN_MINUS:          "MINUS",
	TOKEN_STAR:           "STAR",
	TOKEN_SLASH:          "SLASH",
	TOKEN_PERCENT:        "PERCENT",
	TOKEN_PLUS_ASSIGN:    "PLUS_ASSIGN",
	TOKEN_MINUS_ASSIGN:   "MINUS_ASSIGN",
	TOKEN_STAR_ASSIGN:    "STAR_ASSIGN",
	TOKEN_SLASH_ASSIGN:   "SLASH_ASSIGN",
	TOKEN_PERCENT_ASSIGN: "PERCENT_ASSIGN",
	TOKEN_INCR:           "INCR",
	TOKEN_DECR:           "DECR",
	TOKEN_EQ:             "EQ",
	TOKEN_NE:             "NE",
	TOKEN_LT:             "LT",
	TOKEN_GT:             "GT",
	TOKEN_LE:             "LE",
	TOKEN_GE:             "GE",
	TOKEN_AND:            "AND",
	TOKEN_OR:             "OR",
	TOKEN_XOR:            "XOR",
	TOKEN_NOT:            "NOT",
	TOKEN_BITAND:         "BITAND",
	TOKEN_BITOR:          "BITOR",
	TOKEN_BITXOR:         "BITXOR",
	TOKEN_BITNOT:         "BITNOT",
	TOKEN_LSHIFT:         "LSHIFT",
	TOKEN_RSHIFT:         "RSHIFT",
	TOKEN_ASSIGN:         "ASSIGN",
	TOKEN_QUESTION:       "QUESTION",
	TOKEN_ARROW:          "ARROW",
	TOKEN_FATARROW:       "FATARROW",
	TOKEN_LPAREN:         "LPAREN",
	TOKEN_RPAREN:         "RPAREN",
	TOKEN_LBRACE:         "LBRACE",
	TOKEN_RBRACE:         "RBRACE",
	TOKEN_LBRACKET:       "LBRACKET",
	TOKEN_RBRACKET:       "RBRACKET",
	TOKEN_COMMA:          "COMMA",
	TOKEN_SEMICOLON:      "SEMICOLON",
	TOKEN_DOT:            "DOT",
	TOKEN_COLON:          "COLON",
	TOKEN_AT:             "AT",
	TOKEN_DOLLAR:         "DOLLAR",
	TOKEN_HASH:           "HASH",
}

// String returns a string representation of the token type
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Keywords maps keyword strings to their token types.
// The word operators share token types with their symbol forms.
var keywords = map[string]TokenType{
	"var":      TOKEN_VAR,
	"let":      TOKEN_LET,
	"const":    TOKEN_LET,
	"fun":      TOKEN_FUN,
	"function": TOKEN_FUN,
	"λ":        TOKEN_FUN,
	"return":   TOKEN_RETURN,
	"true":     TOKEN_TRUE,
	"false":    TOKEN_FALSE,
	"null":     TOKEN_NULL,
	"and":      TOKEN_AND,
	"or":       TOKEN_OR,
	"xor":      TOKEN_XOR,
	"not":      TOKEN_NOT,
	"if":       TOKEN_IF,
	"else":     TOKEN_ELSE,
	"switch":   TOKEN_SWITCH,
	"case":     TOKEN_CASE,
	"default":  TOKEN_DEFAULT,
	"for":      TOKEN_FOR,
	"while":    TOKEN_WHILE,
	"break":    TOKEN_BREAK,
	"continue": TOKEN_CONTINUE,
	"label":    TOKEN_LABEL,
	"goto":     TOKEN_GOTO,
	"print":    TOKEN_PRINT,
	"this":     TOKEN_THIS,
	"class":    TOKEN_CLASS,
	"base":     TOKEN_BASE,
}

// LookupKeyword checks if an identifier is a keyword
func LookupKeyword(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TOKEN_IDENTIFIER
}
