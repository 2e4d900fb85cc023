package parser

import (
	"fmt"
	"io"

	"nyalang/types"
)

// NativeLookup resolves the names used in $Name(...) calls
type NativeLookup interface {
	Lookup(name string) (types.NativeFunc, bool)
}

// Options controls one compile
type Options struct {
	Linked      Globals      // names imported from other units
	Strict      bool         // abort on the first parse error
	Natives     NativeLookup // resolves $name calls
	Diagnostics io.Writer    // recovered parse errors are reported here (nil: discarded)
}

// Program is the output of a compile: the top-level statement list, the
// names it exports to later units and the errors it recovered from
type Program struct {
	Body    *Block
	Globals Globals
	Errors  []*ParseError
}

// HasErrors reports whether the compile recovered from any parse error
func (p *Program) HasErrors() bool {
	return len(p.Errors) > 0
}

// Compile tokenizes and compiles source text
func Compile(src string, opts Options) (*Program, error) {
	return CompileTokens(Tokenize(src), opts)
}

// CompileTokens compiles a token stream. Every call starts from a fresh
// scope stack, so declarations never leak between compiles except through
// opts.Linked.
func CompileTokens(tokens []Token, opts Options) (*Program, error) {
	p := NewParser(tokens, opts)
	body, err := p.ParseProgram()
	if err != nil {
		if opts.Strict {
			return nil, fmt.Errorf("parsing canceled due to strict mode: %w", err)
		}
		return nil, err
	}
	return &Program{
		Body:    body,
		Globals: p.scopes.Exports(),
		Errors:  p.errors,
	}, nil
}

// Link merges the exports of prog over base, returning the table the next
// unit should be compiled against
func Link(base Globals, prog *Program) Globals {
	out := make(Globals, len(base)+len(prog.Globals))
	for name, slot := range base {
		out[name] = slot
	}
	for name, slot := range prog.Globals {
		out[name] = slot
	}
	return out
}
