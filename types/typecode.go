package types

// TypeCode identifies the payload kind of a dynamic value
type TypeCode int

const (
	TYPE_NULL   TypeCode = 0
	TYPE_BOOL   TypeCode = 1
	TYPE_NUM    TypeCode = 2
	TYPE_STR    TypeCode = 3
	TYPE_ARRAY  TypeCode = 4
	TYPE_RECORD TypeCode = 5
	TYPE_FUNC   TypeCode = 6
)

// String returns the string representation of the type code
func (t TypeCode) String() string {
	switch t {
	case TYPE_NULL:
		return "NULL"
	case TYPE_BOOL:
		return "BOOL"
	case TYPE_NUM:
		return "NUMBER"
	case TYPE_STR:
		return "STRING"
	case TYPE_ARRAY:
		return "ARRAY"
	case TYPE_RECORD:
		return "RECORD"
	case TYPE_FUNC:
		return "FUNCTION"
	default:
		return "UNKNOWN"
	}
}

// TypeFromString converts a name like "number" or "ARRAY" to a TypeCode
func TypeFromString(s string) (TypeCode, bool) {
	switch s {
	case "null", "NULL":
		return TYPE_NULL, true
	case "bool", "BOOL":
		return TYPE_BOOL, true
	case "num", "number", "NUMBER":
		return TYPE_NUM, true
	case "str", "string", "STRING":
		return TYPE_STR, true
	case "array", "ARRAY":
		return TYPE_ARRAY, true
	case "record", "RECORD":
		return TYPE_RECORD, true
	case "func", "function", "FUNCTION":
		return TYPE_FUNC, true
	default:
		return TYPE_NULL, false
	}
}
