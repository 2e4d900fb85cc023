package types

// ControlFlow represents the control flow state of evaluation
type ControlFlow int

const (
	FlowNormal    ControlFlow = iota // Normal execution
	FlowReturn                       // Return statement
	FlowBreak                        // Break out of a loop
	FlowContinue                     // Continue a loop
	FlowGoto                         // Jump to a user label
	FlowException                    // Runtime error being raised
)

// String returns the name of the flow state
func (f ControlFlow) String() string {
	switch f {
	case FlowNormal:
		return "normal"
	case FlowReturn:
		return "return"
	case FlowBreak:
		return "break"
	case FlowContinue:
		return "continue"
	case FlowGoto:
		return "goto"
	case FlowException:
		return "exception"
	default:
		return "unknown"
	}
}

// Result represents the outcome of evaluating an expression or statement.
// This unifies normal values, jumps (return/break/continue/goto) and errors.
type Result struct {
	Val     Value       // The value (if Flow == FlowNormal or FlowReturn)
	Flow    ControlFlow // Control flow state
	Error   ErrorCode   // Only set when Flow == FlowException
	Message string      // Error detail when Flow == FlowException
	Line    int         // Source line of the error, 0 until the evaluator fills it in
	// Target is the jump destination for break/continue/goto.
	// Its concrete type is *parser.Label; kept opaque to avoid an import cycle.
	Target interface{}
}

// Ok creates a Result for normal execution with a value
func Ok(v Value) Result {
	return Result{Val: v, Flow: FlowNormal}
}

// Return creates a Result for a return statement
func Return(v Value) Result {
	return Result{Val: v, Flow: FlowReturn}
}

// Err creates a Result for a runtime error
func Err(e ErrorCode, msg string) Result {
	return Result{Flow: FlowException, Error: e, Message: msg}
}

// Errf creates a Result for a runtime error with a formatted message
func Errf(e ErrorCode, format string, args ...interface{}) Result {
	return FromError(NewRuntimeError(e, format, args...))
}

// FromError converts a RuntimeError into an exception Result
func FromError(err *RuntimeError) Result {
	return Result{Flow: FlowException, Error: err.Code, Message: err.Msg, Line: err.Line}
}

// Break creates a Result for a break statement aimed at a loop's break label
func Break(target interface{}) Result {
	return Result{Flow: FlowBreak, Target: target}
}

// Continue creates a Result for a continue statement aimed at a loop's continue label
func Continue(target interface{}) Result {
	return Result{Flow: FlowContinue, Target: target}
}

// Goto creates a Result for a jump to a user label
func Goto(target interface{}) Result {
	return Result{Flow: FlowGoto, Target: target}
}

// IsNormal returns true if this is normal execution
func (r Result) IsNormal() bool {
	return r.Flow == FlowNormal
}

// IsError returns true if this is an exception
func (r Result) IsError() bool {
	return r.Flow == FlowException
}

// IsReturn returns true if this is a return statement
func (r Result) IsReturn() bool {
	return r.Flow == FlowReturn
}

// IsJump returns true for break, continue and goto
func (r Result) IsJump() bool {
	return r.Flow == FlowBreak || r.Flow == FlowContinue || r.Flow == FlowGoto
}

// RuntimeError converts an exception Result into an error value.
// Returns nil for any other flow.
func (r Result) RuntimeError() *RuntimeError {
	if r.Flow != FlowException {
		return nil
	}
	return &RuntimeError{Code: r.Error, Msg: r.Message, Line: r.Line}
}
