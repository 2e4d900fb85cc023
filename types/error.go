package types

import "fmt"

// RuntimeError is a fatal execution-time failure
type RuntimeError struct {
	Code ErrorCode
	Msg  string
	Line int // source line of the failing statement, 0 if unknown
}

// NewRuntimeError creates a runtime error with a formatted message
func NewRuntimeError(code ErrorCode, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// Error implements the error interface
func (e *RuntimeError) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Code.Message()
	}
	if e.Line > 0 {
		return fmt.Sprintf("[ Runtime Error ] at line [%d] : %s", e.Line, msg)
	}
	return fmt.Sprintf("[ Runtime Error ] : %s", msg)
}

// typeName names the payload kind of v for error messages
func typeName(v Value) string {
	if v == nil {
		return TYPE_NULL.String()
	}
	return v.Type().String()
}
