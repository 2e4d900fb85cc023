package types

import "math"

// Index reads container[index] for arrays and strings.
// Strings yield one-character strings.
func Index(container, index Value) Result {
	if IsNull(container) {
		return Errf(E_TYPE, "Type of [NULL] is NOT an accessable type.")
	}
	i, res, ok := toIndex(index)
	if !ok {
		return res
	}
	switch c := container.(type) {
	case ArrayValue:
		if v, ok := c.Get(i); ok {
			if v == nil {
				return Ok(Null)
			}
			return Ok(v)
		}
		return rangeErr(i, container)
	case StrValue:
		if ch, ok := c.CharAt(i); ok {
			return Ok(ch)
		}
		return rangeErr(i, container)
	default:
		return Errf(E_TYPE, "Type of [%s] is NOT an accessable type.", typeName(container))
	}
}

// SetIndex writes container[index] = v in place. Only arrays are writable.
func SetIndex(container, index, v Value) Result {
	if IsNull(container) {
		return Errf(E_TYPE, "Type of [NULL] is NOT an accessable type.")
	}
	i, res, ok := toIndex(index)
	if !ok {
		return res
	}
	switch c := container.(type) {
	case ArrayValue:
		if !c.Set(i, v) {
			return rangeErr(i, container)
		}
		return Ok(v)
	case StrValue:
		return Errf(E_TYPE, "Type of [STRING] is immutable and cannot be assigned by index.")
	default:
		return Errf(E_TYPE, "Type of [%s] is NOT an accessable type.", typeName(container))
	}
}

// Field reads rec.name
func Field(rec Value, name string) Result {
	if IsNull(rec) {
		return Errf(E_TYPE, "Type of [NULL] is NOT an accessable type.")
	}
	r, ok := rec.(RecordValue)
	if !ok {
		return Errf(E_TYPE, "Type of [%s] doesn't have fields.", typeName(rec))
	}
	v, ok := r.Get(name)
	if !ok {
		return Errf(E_FIELD, "No field named [%s].", name)
	}
	if v == nil {
		return Ok(Null)
	}
	return Ok(v)
}

// SetField writes rec.name = v, adding the field if it is missing
func SetField(rec Value, name string, v Value) Result {
	if IsNull(rec) {
		return Errf(E_TYPE, "Type of [NULL] is NOT an accessable type.")
	}
	r, ok := rec.(RecordValue)
	if !ok {
		return Errf(E_TYPE, "Type of [%s] doesn't have fields.", typeName(rec))
	}
	r.Set(name, v)
	return Ok(v)
}

// CheckCall validates that callee can be invoked with argc arguments.
// Invoking something that is not a function and passing fewer arguments
// than the arity are reported with different codes.
func CheckCall(callee Value, argc int) (Callable, *RuntimeError) {
	if IsNull(callee) {
		return nil, NewRuntimeError(E_UNCALLABLE, "Can not INVOKE uncallable object [NULL].")
	}
	f, ok := callee.(FuncValue)
	if !ok || f.fn == nil {
		return nil, NewRuntimeError(E_UNCALLABLE, "Can not INVOKE uncallable object type [%s].", typeName(callee))
	}
	if argc < f.fn.Arity() {
		return nil, NewRuntimeError(E_ARGS, "Argument given is LESS THAN demanded for function [%s]: want %d, got %d.",
			f.fn.Name(), f.fn.Arity(), argc)
	}
	return f.fn, nil
}

// toIndex converts a numeric index to an int, truncating any fraction
func toIndex(index Value) (int, Result, bool) {
	n, ok := index.(NumValue)
	if !ok {
		return 0, Errf(E_TYPE, "Index of type [%s] is not a number.", typeName(index)), false
	}
	if math.IsNaN(n.Val) || math.IsInf(n.Val, 0) {
		return 0, Errf(E_RANGE, "Index [%s] is OUT OF RANGE.", n.String()), false
	}
	return int(n.Val), Result{}, true
}

func rangeErr(i int, container Value) Result {
	return Errf(E_RANGE, "Index [%d] is OUT OF RANGE when accessing [%s].", i, typeName(container))
}
