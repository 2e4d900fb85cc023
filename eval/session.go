package eval

import (
	"io"
	"os"

	"nyalang/builtins"
	"nyalang/parser"
	"nyalang/types"
)

// SessionOptions configures a Session. Zero values give a console session
// with the default limits.
type SessionOptions struct {
	Strict      bool      // abort a compile on its first parse error
	Diagnostics io.Writer // recovered parse errors (nil: os.Stderr)
	Output      io.Writer // print statements and console natives (nil: os.Stdout)
	Input       io.Reader // console natives (nil: os.Stdin)
	Warnings    io.Writer // runtime warnings (nil: os.Stderr)
	Quiet       bool      // hide runtime warnings

	// MaxTicks is the statement budget of each run; zero or negative is unlimited
	MaxTicks int64
	// MaxDepth is the call depth limit; zero keeps the default, negative is unlimited
	MaxDepth int

	// Registry supplies the natives; nil creates the standard library
	Registry *builtins.Registry
}

// Session compiles and runs successive units of source against one
// evaluator. Each unit is linked against the globals exported by the
// units before it, so a REPL, a list of files and $Eval all see the same
// global cells.
type Session struct {
	evaluator   *Evaluator
	registry    *builtins.Registry
	globals     parser.Globals
	strict      bool
	diagnostics io.Writer
}

// NewSession creates a session and registers $Eval on its registry
func NewSession(opts SessionOptions) *Session {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	diag := opts.Diagnostics
	if diag == nil {
		diag = os.Stderr
	}

	reg := opts.Registry
	if reg == nil {
		reg = builtins.NewRegistry()
	}
	reg.SetOutput(out)
	if opts.Input != nil {
		reg.SetInput(opts.Input)
	}
	if opts.Warnings != nil {
		reg.SetWarnings(opts.Warnings)
	}
	reg.SetQuiet(opts.Quiet)

	ev := NewEvaluatorWithOutput(out)
	ev.MaxTicks = -1
	if opts.MaxTicks > 0 {
		ev.MaxTicks = opts.MaxTicks
	}
	if opts.MaxDepth != 0 {
		ev.MaxDepth = opts.MaxDepth
	}

	s := &Session{
		evaluator:   ev,
		registry:    reg,
		globals:     parser.Globals{},
		strict:      opts.Strict,
		diagnostics: diag,
	}
	s.RegisterEvalBuiltin()
	return s
}

// Evaluator returns the session's evaluator
func (s *Session) Evaluator() *Evaluator {
	return s.evaluator
}

// Registry returns the session's native registry
func (s *Session) Registry() *builtins.Registry {
	return s.registry
}

// Strict reports whether units compile in strict mode
func (s *Session) Strict() bool {
	return s.strict
}

// Globals returns the names exported so far
func (s *Session) Globals() parser.Globals {
	return s.globals
}

// options returns the compile options for the next unit
func (s *Session) options(strict bool) parser.Options {
	return parser.Options{
		Linked:      s.globals,
		Strict:      strict,
		Natives:     s.registry,
		Diagnostics: s.diagnostics,
	}
}

// Compile compiles src against the current globals without linking it
func (s *Session) Compile(src string) (*parser.Program, error) {
	return parser.Compile(src, s.options(s.strict))
}

// Run compiles src, links its exports into the session and executes it.
// In non-strict mode a unit with recovered parse errors still runs.
// Returns the value of the last top-level expression statement.
func (s *Session) Run(src string) (types.Value, error) {
	prog, err := s.Compile(src)
	if err != nil {
		return nil, err
	}
	return s.RunProgram(prog)
}

// RunProgram links an already compiled unit and executes it
func (s *Session) RunProgram(prog *parser.Program) (types.Value, error) {
	s.globals = parser.Link(s.globals, prog)
	return s.evaluator.Run(prog)
}

// RegisterEvalBuiltin registers the $Eval native.
// $Eval(src) compiles src strictly against the session globals and runs it
// in the calling task. Its own declarations are not exported. A compile
// failure or runtime error becomes a warning and the result is null;
// exhausted limits still abort the caller.
func (s *Session) RegisterEvalBuiltin() {
	s.registry.Register("Eval", func(ctx *types.TaskContext, args []types.Value) types.Result {
		if len(args) < 1 {
			return types.Errf(types.E_ARGS, "In static method [$Eval]: expected 1 argument(s), got 0.")
		}

		src, ok := args[0].(types.StrValue)
		if !ok {
			s.registry.Warn(ctx, "In static method [$Eval]: the argument should be string, but given '%s'.", args[0].Type())
			return types.Ok(types.Null)
		}

		opts := s.options(true)
		opts.Diagnostics = nil
		prog, err := parser.Compile(src.Value(), opts)
		if err != nil {
			s.registry.Warn(ctx, "In static method [$Eval]: %q is not a parsable string.", src.Value())
			return types.Ok(types.Null)
		}

		line := ctx.Line
		r := s.evaluator.Exec(prog, ctx)
		ctx.Line = line
		if r.IsError() && (r.Error == types.E_TICKS || r.Error == types.E_MAXDEPTH) {
			return r
		}
		if r.IsError() {
			s.registry.Warn(ctx, "In static method [$Eval]: %v", r.RuntimeError())
			return types.Ok(types.Null)
		}
		return types.Ok(r.Val)
	})
}
