package trace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"nyalang/types"
)

// Tracer provides execution tracing for debugging
type Tracer struct {
	enabled bool
	filters []string
	writer  io.Writer
	mu      sync.Mutex
}

// Global tracer instance
var globalTracer *Tracer

// New creates a tracer. A nil writer means os.Stderr.
func New(enabled bool, filters []string, writer io.Writer) *Tracer {
	if writer == nil {
		writer = os.Stderr
	}
	return &Tracer{
		enabled: enabled,
		filters: filters,
		writer:  writer,
	}
}

// Init initializes the global tracer
func Init(enabled bool, filters []string, writer io.Writer) {
	globalTracer = New(enabled, filters, writer)
}

// IsEnabled returns whether tracing is enabled
func IsEnabled() bool {
	if globalTracer == nil {
		return false
	}
	return globalTracer.enabled
}

// matchesFilter checks if a function name matches any of the filter patterns
func (t *Tracer) matchesFilter(name string) bool {
	if len(t.filters) == 0 {
		return true // No filters = trace everything
	}

	for _, pattern := range t.filters {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}

func formatArgs(args []types.Value) string {
	argStrs := make([]string, len(args))
	for i, arg := range args {
		argStrs[i] = arg.String()
	}
	return strings.Join(argStrs, ", ")
}

// Call logs a function call
func (t *Tracer) Call(name string, args []types.Value, depth int) {
	if !t.enabled || !t.matchesFilter(name) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.writer, "[TRACE] CALL %s args=[%s] depth=%d\n", name, formatArgs(args), depth)
}

// Native logs a $Name native call
func (t *Tracer) Native(name string, args []types.Value) {
	if !t.enabled || !t.matchesFilter("$"+name) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.writer, "[TRACE] NATIVE $%s args=[%s]\n", name, formatArgs(args))
}

// Return logs a function return value
func (t *Tracer) Return(name string, result types.Value) {
	if !t.enabled || !t.matchesFilter(name) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	resultStr := "null"
	if result != nil {
		resultStr = result.String()
	}

	fmt.Fprintf(t.writer, "[TRACE] RETURN %s => %s\n", name, resultStr)
}

// Exception logs a runtime error leaving a function
func (t *Tracer) Exception(name string, err *types.RuntimeError) {
	if !t.enabled || !t.matchesFilter(name) || err == nil {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	msg := err.Msg
	if msg == "" {
		msg = err.Code.Message()
	}
	fmt.Fprintf(t.writer, "[TRACE] EXCEPTION %s %s %s\n", name, err.Code, msg)
}

// Global convenience functions

// Call logs a function call using the global tracer
func Call(name string, args []types.Value, depth int) {
	if globalTracer != nil {
		globalTracer.Call(name, args, depth)
	}
}

// Native logs a native call using the global tracer
func Native(name string, args []types.Value) {
	if globalTracer != nil {
		globalTracer.Native(name, args)
	}
}

// Return logs a function return using the global tracer
func Return(name string, result types.Value) {
	if globalTracer != nil {
		globalTracer.Return(name, result)
	}
}

// Exception logs an exception using the global tracer
func Exception(name string, err *types.RuntimeError) {
	if globalTracer != nil {
		globalTracer.Exception(name, err)
	}
}
