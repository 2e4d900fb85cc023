package builtins

import (
	"nyalang/types"
)

// builtinConcat joins two arrays, or appends a single element to an array
// $Concat(arr, other) -> array
func (r *Registry) builtinConcat(ctx *types.TaskContext, args []types.Value) types.Result {
	if res, ok := checkArgs("Concat", args, 2); !ok {
		return res
	}

	left, ok := args[0].(types.ArrayValue)
	if !ok {
		r.Warn(ctx, "In static method [$Concat]: the first argument should be array or tuple, but what have given is '%s'.", describe(args[0]))
		return types.Ok(types.Null)
	}

	if right, ok := args[1].(types.ArrayValue); ok {
		return types.Ok(left.Concat(right.Elements()...))
	}
	return types.Ok(left.Concat(args[1]))
}

// builtinLen returns the length of an array, string or record
// $Len(v) -> number
func (r *Registry) builtinLen(ctx *types.TaskContext, args []types.Value) types.Result {
	if res, ok := checkArgs("Len", args, 1); !ok {
		return res
	}

	switch v := args[0].(type) {
	case types.NullValue:
		return types.Err(types.E_NATIVE, "In static method [$Len]: NULL argument error.")
	case types.ArrayValue:
		return types.Ok(types.NewNum(float64(v.Len())))
	case types.StrValue:
		return types.Ok(types.NewNum(float64(v.Len())))
	case types.RecordValue:
		return types.Ok(types.NewNum(float64(v.Len())))
	default:
		r.Warn(ctx, "In static method [$Len]: '%s' is not a enumerable type.", describe(v))
		return types.Ok(types.NewNum(1))
	}
}

// builtinToString returns the text form of a value
// $ToString(v) -> string
func builtinToString(ctx *types.TaskContext, args []types.Value) types.Result {
	if r, ok := checkArgs("ToString", args, 1); !ok {
		return r
	}
	return types.Ok(types.NewStr(types.ToText(args[0])))
}

// builtinWarning raises a runtime warning with the text of its argument
// $Warning(v) -> null
func (r *Registry) builtinWarning(ctx *types.TaskContext, args []types.Value) types.Result {
	if res, ok := checkArgs("Warning", args, 1); !ok {
		return res
	}
	r.Warn(ctx, "%s", types.ToText(args[0]))
	return types.Ok(types.Null)
}
