package builtins

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"sort"
	"sync"
	"time"

	"nyalang/types"
)

// Hooks are the host callbacks behind the redirect natives.
// A nil hook is reported as unregistered when a script calls it.
type Hooks struct {
	PushLine       func(line string)
	PushFormatLine func(format string, args []string)
	WaitInput      func() int
	ClearView      func()
}

// Registry holds all registered native functions, keyed by the name used
// after '$' in scripts. It also owns the console streams those natives use.
type Registry struct {
	funcs map[string]types.NativeFunc

	mu    sync.Mutex // guards the writers below
	out   io.Writer
	in    *bufio.Reader
	warn  io.Writer
	quiet bool

	warnings int
	rng      *rand.Rand
	hooks    Hooks
}

// NewRegistry creates a registry holding the standard runtime library,
// wired to the process console
func NewRegistry() *Registry {
	r := &Registry{
		funcs: make(map[string]types.NativeFunc),
		out:   os.Stdout,
		in:    bufio.NewReader(os.Stdin),
		warn:  os.Stderr,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	// Core
	r.Register("Concat", r.builtinConcat)
	r.Register("Len", r.builtinLen)
	r.Register("ToString", builtinToString)
	r.Register("Warning", r.builtinWarning)
	r.Register("Hash", builtinHash)

	// Console
	r.Register("DebugLog", r.builtinDebugLog)
	r.Register("DebugLogLine", r.builtinDebugLogLine)
	r.Register("DebugRead", r.builtinDebugRead)
	r.Register("DebugReadLine", r.builtinDebugReadLine)
	r.Register("DebugReadKey", r.builtinDebugReadKey)
	r.Register("DebugClear", r.builtinDebugClear)

	// Files
	r.Register("FileReadAllText", r.builtinFileReadAllText)
	r.Register("FileReadAllLines", r.builtinFileReadAllLines)
	r.Register("FileWriteAllText", r.builtinFileWriteAllText)
	r.Register("FileWriteAllLines", r.builtinFileWriteAllLines)

	// Random and time
	r.Register("Random", r.builtinRandom)
	r.Register("RandomInt", r.builtinRandomInt)
	r.Register("RandomRange", r.builtinRandomRange)
	r.Register("Ticks", builtinTicks)

	// Redirect hooks
	r.Register("PushLine", r.builtinPushLine)
	r.Register("PushFormatLine", r.builtinPushFormatLine)
	r.Register("WaitInput", r.builtinWaitInput)
	r.Register("ClearView", r.builtinClearView)

	// Note: $Eval is registered by the eval package's Session via
	// RegisterEvalBuiltin, since it needs the compiler and the evaluator.

	return r
}

// Register adds a native function, replacing any previous one of that name
func (r *Registry) Register(name string, fn types.NativeFunc) {
	r.funcs[name] = fn
}

// Lookup retrieves a native function by name.
// Returns (function, true) if found, (nil, false) if not found.
func (r *Registry) Lookup(name string) (types.NativeFunc, bool) {
	fn, ok := r.funcs[name]
	return fn, ok
}

// Has checks if a native function is registered
func (r *Registry) Has(name string) bool {
	_, ok := r.funcs[name]
	return ok
}

// Names returns the registered names in sorted order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetOutput sets where console natives write
func (r *Registry) SetOutput(w io.Writer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.out = w
}

// Output returns the console output writer
func (r *Registry) Output() io.Writer {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.out
}

// SetInput sets where console natives read from
func (r *Registry) SetInput(rd io.Reader) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if br, ok := rd.(*bufio.Reader); ok {
		r.in = br
		return
	}
	r.in = bufio.NewReader(rd)
}

// SetWarnings sets where runtime warnings are written
func (r *Registry) SetWarnings(w io.Writer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.warn = w
}

// SetQuiet suppresses printing of warnings; they are still counted
func (r *Registry) SetQuiet(quiet bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.quiet = quiet
}

// SetSeed makes the random natives deterministic
func (r *Registry) SetSeed(seed int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rng = rand.New(rand.NewSource(seed))
}

// SetHooks installs the host redirect callbacks
func (r *Registry) SetHooks(h Hooks) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hooks = h
}

// Warn reports a non-fatal runtime problem at the statement ctx is running.
// The script keeps running. A nil ctx or unknown line omits the location.
func (r *Registry) Warn(ctx *types.TaskContext, format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.warnings++
	if r.quiet || r.warn == nil {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if ctx != nil && ctx.Line > 0 {
		fmt.Fprintf(r.warn, "[ Runtime Warning ] at line [%d] : %s\n", ctx.Line, msg)
		return
	}
	fmt.Fprintf(r.warn, "[ Runtime Warning ]: %s\n", msg)
}

// Warnings returns how many warnings have been raised
func (r *Registry) Warnings() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.warnings
}

// write sends s to the console output
func (r *Registry) write(s string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.out != nil {
		io.WriteString(r.out, s)
	}
}

// reader returns the console input
func (r *Registry) reader() *bufio.Reader {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.in
}

// checkArgs returns an E_ARGS result when fewer than n arguments were given
func checkArgs(name string, args []types.Value, n int) (types.Result, bool) {
	if len(args) < n {
		return types.Errf(types.E_ARGS, "In static method [$%s]: expected %d argument(s), got %d.", name, n, len(args)), false
	}
	return types.Result{}, true
}

// describe renders a value for warning messages
func describe(v types.Value) string {
	if v == nil {
		return "null"
	}
	return types.ToText(v)
}
