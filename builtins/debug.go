package builtins

import (
	"io"
	"strings"

	"nyalang/types"
)

// clearScreen is the ANSI sequence that clears the terminal and homes the cursor
const clearScreen = "\x1b[2J\x1b[H"

// builtinDebugLog writes the text form of a value without a newline
// $DebugLog(v) -> null
func (r *Registry) builtinDebugLog(ctx *types.TaskContext, args []types.Value) types.Result {
	if res, ok := checkArgs("DebugLog", args, 1); !ok {
		return res
	}
	r.write(types.ToText(args[0]))
	return types.Ok(types.Null)
}

// builtinDebugLogLine writes the text form of a value and a newline.
// With no argument it writes an empty line.
// $DebugLogLine([v]) -> null
func (r *Registry) builtinDebugLogLine(ctx *types.TaskContext, args []types.Value) types.Result {
	if len(args) == 0 {
		r.write("\n")
		return types.Ok(types.Null)
	}
	r.write(types.ToText(args[0]) + "\n")
	return types.Ok(types.Null)
}

// builtinDebugRead reads one character; "" at end of input
// $DebugRead() -> string
func (r *Registry) builtinDebugRead(ctx *types.TaskContext, args []types.Value) types.Result {
	ch, _, err := r.reader().ReadRune()
	if err != nil {
		return types.Ok(types.NewStr(""))
	}
	return types.Ok(types.NewStr(string(ch)))
}

// builtinDebugReadLine reads one line without its terminator; "" at end of input
// $DebugReadLine() -> string
func (r *Registry) builtinDebugReadLine(ctx *types.TaskContext, args []types.Value) types.Result {
	line, err := r.reader().ReadString('\n')
	if err != nil && err != io.EOF {
		r.Warn(ctx, "In static method [$DebugReadLine]: %v", err)
		return types.Ok(types.NewStr(""))
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return types.Ok(types.NewStr(line))
}

// builtinDebugReadKey reads one character and returns its code; -1 at end of input
// $DebugReadKey() -> number
func (r *Registry) builtinDebugReadKey(ctx *types.TaskContext, args []types.Value) types.Result {
	ch, _, err := r.reader().ReadRune()
	if err != nil {
		return types.Ok(types.NewNum(-1))
	}
	return types.Ok(types.NewNum(float64(ch)))
}

// builtinDebugClear clears the console
// $DebugClear() -> null
func (r *Registry) builtinDebugClear(ctx *types.TaskContext, args []types.Value) types.Result {
	r.write(clearScreen)
	return types.Ok(types.Null)
}
