package types

import "math"

// ============================================================================
// ARITHMETIC
// ============================================================================

// Add implements +. Either operand being a string makes it a concatenation
// of both operands' text forms.
func Add(a, b Value) Result {
	if isStr(a) || isStr(b) {
		return Ok(NewStr(ToText(a) + ToText(b)))
	}
	if x, y, ok := numPair(a, b); ok {
		return Ok(NewNum(x + y))
	}
	return binaryTypeErr("+", a, b)
}

// Sub implements -
func Sub(a, b Value) Result {
	if x, y, ok := numPair(a, b); ok {
		return Ok(NewNum(x - y))
	}
	return binaryTypeErr("-", a, b)
}

// Mul implements *
func Mul(a, b Value) Result {
	if x, y, ok := numPair(a, b); ok {
		return Ok(NewNum(x * y))
	}
	return binaryTypeErr("*", a, b)
}

// Div implements /. Division by zero yields an IEEE infinity or NaN.
func Div(a, b Value) Result {
	if x, y, ok := numPair(a, b); ok {
		return Ok(NewNum(x / y))
	}
	return binaryTypeErr("/", a, b)
}

// Mod implements % with the sign of the dividend
func Mod(a, b Value) Result {
	if x, y, ok := numPair(a, b); ok {
		return Ok(NewNum(math.Mod(x, y)))
	}
	return binaryTypeErr("%", a, b)
}

// ============================================================================
// BITWISE
// ============================================================================

// BitAnd implements &. On two booleans it is a non-short-circuit logical and.
func BitAnd(a, b Value) Result {
	if x, y, ok := boolPair(a, b); ok {
		return Ok(NewBool(x && y))
	}
	if x, y, ok := intPair(a, b); ok {
		return Ok(NewNum(float64(x & y)))
	}
	return binaryTypeErr("&", a, b)
}

// BitOr implements |
func BitOr(a, b Value) Result {
	if x, y, ok := boolPair(a, b); ok {
		return Ok(NewBool(x || y))
	}
	if x, y, ok := intPair(a, b); ok {
		return Ok(NewNum(float64(x | y)))
	}
	return binaryTypeErr("|", a, b)
}

// BitXor implements ^
func BitXor(a, b Value) Result {
	if x, y, ok := boolPair(a, b); ok {
		return Ok(NewBool(x != y))
	}
	if x, y, ok := intPair(a, b); ok {
		return Ok(NewNum(float64(x ^ y)))
	}
	return binaryTypeErr("^", a, b)
}

// Shl implements <<. The shift count is masked to 0..63.
func Shl(a, b Value) Result {
	if x, y, ok := intPair(a, b); ok {
		return Ok(NewNum(float64(x << uint(y&63))))
	}
	return binaryTypeErr("<<", a, b)
}

// Shr implements >> (arithmetic shift)
func Shr(a, b Value) Result {
	if x, y, ok := intPair(a, b); ok {
		return Ok(NewNum(float64(x >> uint(y&63))))
	}
	return binaryTypeErr(">>", a, b)
}

// ============================================================================
// COMPARISON
// ============================================================================

// Equal implements ==. A boolean on either side compares truthiness.
func Equal(a, b Value) bool {
	if a == nil {
		a = Null
	}
	if b == nil {
		b = Null
	}
	if _, ok := a.(BoolValue); ok {
		return a.Truthy() == b.Truthy()
	}
	if _, ok := b.(BoolValue); ok {
		return a.Truthy() == b.Truthy()
	}
	return a.Equal(b)
}

// NotEqual implements !=
func NotEqual(a, b Value) bool {
	return !Equal(a, b)
}

// Less implements <
func Less(a, b Value) Result {
	return compare("<", a, b, func(c int) bool { return c < 0 })
}

// LessEq implements <=
func LessEq(a, b Value) Result {
	return compare("<=", a, b, func(c int) bool { return c <= 0 })
}

// Greater implements >
func Greater(a, b Value) Result {
	return compare(">", a, b, func(c int) bool { return c > 0 })
}

// GreaterEq implements >=
func GreaterEq(a, b Value) Result {
	return compare(">=", a, b, func(c int) bool { return c >= 0 })
}

// compare orders two numbers or two strings
func compare(op string, a, b Value, test func(int) bool) Result {
	if x, y, ok := numPair(a, b); ok {
		if math.IsNaN(x) || math.IsNaN(y) {
			return Ok(NewBool(false))
		}
		c := 0
		if x < y {
			c = -1
		} else if x > y {
			c = 1
		}
		return Ok(NewBool(test(c)))
	}
	if x, ok := a.(StrValue); ok {
		if y, ok := b.(StrValue); ok {
			c := 0
			if x.val < y.val {
				c = -1
			} else if x.val > y.val {
				c = 1
			}
			return Ok(NewBool(test(c)))
		}
	}
	return binaryTypeErr(op, a, b)
}

// ============================================================================
// UNARY
// ============================================================================

// Negate implements unary -
func Negate(v Value) Result {
	if n, ok := v.(NumValue); ok {
		return Ok(NewNum(-n.Val))
	}
	return unaryTypeErr("-", v)
}

// BitNot implements ~
func BitNot(v Value) Result {
	if n, ok := v.(NumValue); ok {
		return Ok(NewNum(float64(^n.Int())))
	}
	return unaryTypeErr("~", v)
}

// Not implements ! and not; it never fails
func Not(v Value) Result {
	if v == nil {
		return Ok(NewBool(true))
	}
	return Ok(NewBool(!v.Truthy()))
}

// Inc returns v + 1 for ++
func Inc(v Value) Result {
	if n, ok := v.(NumValue); ok {
		return Ok(NewNum(n.Val + 1))
	}
	return unaryTypeErr("++", v)
}

// Dec returns v - 1 for --
func Dec(v Value) Result {
	if n, ok := v.(NumValue); ok {
		return Ok(NewNum(n.Val - 1))
	}
	return unaryTypeErr("--", v)
}

// ============================================================================
// HELPERS
// ============================================================================

func isStr(v Value) bool {
	_, ok := v.(StrValue)
	return ok
}

func numPair(a, b Value) (float64, float64, bool) {
	x, ok := a.(NumValue)
	if !ok {
		return 0, 0, false
	}
	y, ok := b.(NumValue)
	if !ok {
		return 0, 0, false
	}
	return x.Val, y.Val, true
}

func intPair(a, b Value) (int64, int64, bool) {
	x, ok := a.(NumValue)
	if !ok {
		return 0, 0, false
	}
	y, ok := b.(NumValue)
	if !ok {
		return 0, 0, false
	}
	return x.Int(), y.Int(), true
}

func boolPair(a, b Value) (bool, bool, bool) {
	x, ok := a.(BoolValue)
	if !ok {
		return false, false, false
	}
	y, ok := b.(BoolValue)
	if !ok {
		return false, false, false
	}
	return x.Val, y.Val, true
}

func binaryTypeErr(op string, a, b Value) Result {
	return Errf(E_TYPE, "Operator [%s] cannot be applied to [%s] and [%s].", op, typeName(a), typeName(b))
}

func unaryTypeErr(op string, v Value) Result {
	return Errf(E_TYPE, "Operator [%s] cannot be applied to [%s].", op, typeName(v))
}
