package types

// TaskContext holds the execution state of one running script.
// It is passed through all evaluator methods and to native functions to track:
// - the statement budget (infinite loop protection, disabled when negative)
// - call depth (runaway recursion protection)
// - the current source line and function, for diagnostics
type TaskContext struct {
	TicksRemaining int64 // < 0 means unlimited
	MaxDepth       int   // <= 0 means unlimited
	Depth          int   // current call depth
	Line           int   // line of the statement being executed
	Function       string
}

// NewTaskContext creates a new task context with default values
func NewTaskContext() *TaskContext {
	return &TaskContext{
		TicksRemaining: -1,
		MaxDepth:       2000,
		Function:       "<main>",
	}
}

// ConsumeTick decrements the tick count and returns true if ticks remain
func (ctx *TaskContext) ConsumeTick() bool {
	if ctx.TicksRemaining < 0 {
		return true
	}
	if ctx.TicksRemaining == 0 {
		return false
	}
	ctx.TicksRemaining--
	return true
}

// EnterCall increments the call depth and reports whether the limit allows it
func (ctx *TaskContext) EnterCall() bool {
	if ctx.MaxDepth > 0 && ctx.Depth >= ctx.MaxDepth {
		return false
	}
	ctx.Depth++
	return true
}

// LeaveCall decrements the call depth
func (ctx *TaskContext) LeaveCall() {
	if ctx.Depth > 0 {
		ctx.Depth--
	}
}
