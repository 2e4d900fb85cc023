package builtins

import (
	"time"

	"nyalang/types"
)

// numArg extracts a number argument truncated toward zero
func (r *Registry) numArg(ctx *types.TaskContext, name, param string, v types.Value) (int64, bool) {
	n, ok := v.(types.NumValue)
	if !ok {
		r.Warn(ctx, "In static method [$%s]: the argument '%s' should be number, but given '%s'.", name, param, v.Type())
		return 0, false
	}
	return n.Int(), true
}

// builtinRandom returns a float in [0, 1)
// $Random() -> number
func (r *Registry) builtinRandom(ctx *types.TaskContext, args []types.Value) types.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	return types.Ok(types.NewNum(r.rng.Float64()))
}

// builtinRandomInt returns an integer in [0, max); -1 on bad arguments
// $RandomInt(max) -> number
func (r *Registry) builtinRandomInt(ctx *types.TaskContext, args []types.Value) types.Result {
	if res, ok := checkArgs("RandomInt", args, 1); !ok {
		return res
	}
	maxV, ok := r.numArg(ctx, "RandomInt", "maxVal", args[0])
	if !ok {
		return types.Ok(types.NewNum(-1))
	}
	if maxV <= 0 {
		r.Warn(ctx, "In static method [$RandomInt]: the argument 'maxVal' should be positive, but given '%d'.", maxV)
		return types.Ok(types.NewNum(-1))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return types.Ok(types.NewNum(float64(r.rng.Int63n(maxV))))
}

// builtinRandomRange returns an integer in [min, max); -1 on bad arguments
// $RandomRange(min, max) -> number
func (r *Registry) builtinRandomRange(ctx *types.TaskContext, args []types.Value) types.Result {
	if res, ok := checkArgs("RandomRange", args, 2); !ok {
		return res
	}
	minV, ok := r.numArg(ctx, "RandomRange", "minVal", args[0])
	if !ok {
		return types.Ok(types.NewNum(-1))
	}
	maxV, ok := r.numArg(ctx, "RandomRange", "maxVal", args[1])
	if !ok {
		return types.Ok(types.NewNum(-1))
	}
	if minV > maxV {
		r.Warn(ctx, "In static method [$RandomRange]: 'minVal' (%d) is greater than 'maxVal' (%d).", minV, maxV)
		return types.Ok(types.NewNum(-1))
	}
	if minV == maxV {
		return types.Ok(types.NewNum(float64(minV)))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return types.Ok(types.NewNum(float64(minV + r.rng.Int63n(maxV-minV))))
}

// builtinTicks returns the current time in 100ns units since the Unix epoch
// $Ticks() -> number
func builtinTicks(ctx *types.TaskContext, args []types.Value) types.Result {
	return types.Ok(types.NewNum(float64(time.Now().UnixNano() / 100)))
}
