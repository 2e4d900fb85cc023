package builtins

import (
	"nyalang/types"
)

// hookMissing warns about a redirect native whose host callback is not set
func (r *Registry) hookMissing(ctx *types.TaskContext, name string) {
	r.Warn(ctx, "Redirect hook [%s] is not registered.", name)
}

func (r *Registry) currentHooks() Hooks {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hooks
}

// builtinPushLine hands one line of text to the host
// $PushLine(v) -> null
func (r *Registry) builtinPushLine(ctx *types.TaskContext, args []types.Value) types.Result {
	if res, ok := checkArgs("PushLine", args, 1); !ok {
		return res
	}
	h := r.currentHooks()
	if h.PushLine == nil {
		r.hookMissing(ctx, "PushLine")
		return types.Ok(types.Null)
	}
	h.PushLine(types.ToText(args[0]))
	return types.Ok(types.Null)
}

// builtinPushFormatLine hands a format string and its arguments to the host.
// The arguments may be passed as one array or as trailing values.
// $PushFormatLine(format, args...) -> null
func (r *Registry) builtinPushFormatLine(ctx *types.TaskContext, args []types.Value) types.Result {
	if res, ok := checkArgs("PushFormatLine", args, 1); !ok {
		return res
	}
	h := r.currentHooks()
	if h.PushFormatLine == nil {
		r.hookMissing(ctx, "PushFormatLine")
		return types.Ok(types.Null)
	}

	rest := args[1:]
	if len(rest) == 1 {
		if arr, ok := rest[0].(types.ArrayValue); ok {
			rest = arr.Elements()
		}
	}
	texts := make([]string, len(rest))
	for i, v := range rest {
		texts[i] = types.ToText(v)
	}
	h.PushFormatLine(types.ToText(args[0]), texts)
	return types.Ok(types.Null)
}

// builtinWaitInput blocks on the host for a key code; -1 when no host is registered
// $WaitInput() -> number
func (r *Registry) builtinWaitInput(ctx *types.TaskContext, args []types.Value) types.Result {
	h := r.currentHooks()
	if h.WaitInput == nil {
		r.hookMissing(ctx, "WaitInput")
		return types.Ok(types.NewNum(-1))
	}
	return types.Ok(types.NewNum(float64(h.WaitInput())))
}

// builtinClearView asks the host to clear its view
// $ClearView() -> null
func (r *Registry) builtinClearView(ctx *types.TaskContext, args []types.Value) types.Result {
	h := r.currentHooks()
	if h.ClearView == nil {
		r.hookMissing(ctx, "ClearView")
		return types.Ok(types.Null)
	}
	h.ClearView()
	return types.Ok(types.Null)
}
