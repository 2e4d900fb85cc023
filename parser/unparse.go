package parser

import (
	"strconv"
	"strings"

	"nyalang/types"
)

// operatorSymbols maps operator tokens back to their source form
var operatorSymbols = map[TokenType]string{
	TOKEN_PLUS:           "+",
	TOKEN_MINUS:          "-",
	TOKEN_STAR:           "*",
	TOKEN_SLASH:          "/",
	TOKEN_PERCENT:        "%",
	TOKEN_PLUS_ASSIGN:    "+=",
	TOKEN_MINUS_ASSIGN:   "-=",
	TOKEN_STAR_ASSIGN:    "*=",
	TOKEN_SLASH_ASSIGN:   "/=",
	TOKEN_PERCENT_ASSIGN: "%=",
	TOKEN_INCR:           "++",
	TOKEN_DECR:           "--",
	TOKEN_EQ:             "==",
	TOKEN_NE:             "!=",
	TOKEN_LT:             "<",
	TOKEN_GT:             ">",
	TOKEN_LE:             "<=",
	TOKEN_GE:             ">=",
	TOKEN_AND:            "&&",
	TOKEN_OR:             "||",
	TOKEN_XOR:            "^^",
	TOKEN_NOT:            "!",
	TOKEN_BITAND:         "&",
	TOKEN_BITOR:          "|",
	TOKEN_BITXOR:         "^",
	TOKEN_BITNOT:         "~",
	TOKEN_LSHIFT:         "<<",
	TOKEN_RSHIFT:         ">>",
	TOKEN_ASSIGN:         "=",
}

// Symbol returns the source form of an operator token
func Symbol(op TokenType) string {
	if s, ok := operatorSymbols[op]; ok {
		return s
	}
	return op.String()
}

// Dump renders a program graph node as an indented tree. Variables are
// shown with their slot ids and jumps with their label ids, so two
// declarations of the same name stay distinguishable.
func Dump(node Node) string {
	var sb strings.Builder
	switch n := node.(type) {
	case Stmt:
		dumpStmt(&sb, n, 0)
	case Expr:
		sb.WriteString(dumpExpr(n))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// dumpStmt writes one statement per line at the given indent
func dumpStmt(sb *strings.Builder, stmt Stmt, indent int) {
	pad := strings.Repeat("  ", indent)

	switch s := stmt.(type) {
	case nil:
		sb.WriteString(pad + "<nil>\n")

	case *Block:
		sb.WriteString(pad + "block")
		if len(s.Slots) > 0 {
			sb.WriteString(" [" + slotList(s.Slots) + "]")
		}
		sb.WriteString(" {\n")
		for _, inner := range s.Stmts {
			dumpStmt(sb, inner, indent+1)
		}
		sb.WriteString(pad + "}\n")

	case *ExprStmt:
		sb.WriteString(pad + dumpExpr(s.Expr) + ";\n")

	case *VarDecl:
		kw := "var"
		if s.Slot.Const {
			kw = "const"
		}
		if s.Init == nil {
			sb.WriteString(pad + kw + " " + s.Slot.String() + ";\n")
		} else {
			sb.WriteString(pad + kw + " " + s.Slot.String() + " = " + dumpExpr(s.Init) + ";\n")
		}

	case *FuncDecl:
		sb.WriteString(pad + "fun " + s.Slot.String() + funcHeader(s.Func) + " {\n")
		for _, inner := range s.Func.Body.Stmts {
			dumpStmt(sb, inner, indent+1)
		}
		sb.WriteString(pad + "}\n")

	case *If:
		sb.WriteString(pad + "if (" + dumpExpr(s.Condition) + ")\n")
		dumpStmt(sb, s.Then, indent+1)
		if s.Else != nil {
			sb.WriteString(pad + "else\n")
			dumpStmt(sb, s.Else, indent+1)
		}

	case *Loop:
		sb.WriteString(pad + "loop " + s.Break.String() + " " + s.Continue.String() + "\n")
		dumpStmt(sb, s.Body, indent+1)

	case *LabelStmt:
		sb.WriteString(pad + "label " + s.Label.String() + ";\n")

	case *GotoStmt:
		sb.WriteString(pad + "goto " + s.Label.String() + ";\n")

	case *BreakStmt:
		sb.WriteString(pad + "break " + s.Label.String() + ";\n")

	case *ContinueStmt:
		sb.WriteString(pad + "continue " + s.Label.String() + ";\n")

	case *ReturnStmt:
		if s.Value == nil {
			sb.WriteString(pad + "return " + s.Label.String() + ";\n")
		} else {
			sb.WriteString(pad + "return " + s.Label.String() + " " + dumpExpr(s.Value) + ";\n")
		}

	case *PrintStmt:
		sb.WriteString(pad + "print " + dumpExpr(s.Value) + ";\n")

	default:
		sb.WriteString(pad + "<unknown statement>\n")
	}
}

// dumpExpr renders an expression on one line. Operators are fully
// parenthesized so the tree shape is visible.
func dumpExpr(expr Expr) string {
	switch e := expr.(type) {
	case nil:
		return "<nil>"
	case *Literal:
		if e.Const != nil {
			return e.Const.String() + "=" + dumpLiteral(e.Value)
		}
		return dumpLiteral(e.Value)
	case *VarRef:
		return e.Slot.String()
	case *UnaryExpr:
		return Symbol(e.Operator) + dumpExpr(e.Operand)
	case *IncDecExpr:
		return Symbol(e.Operator) + dumpExpr(e.Target)
	case *BinaryExpr:
		return "(" + dumpExpr(e.Left) + " " + Symbol(e.Operator) + " " + dumpExpr(e.Right) + ")"
	case *LogicalExpr:
		return "(" + dumpExpr(e.Left) + " " + Symbol(e.Operator) + " " + dumpExpr(e.Right) + ")"
	case *TernaryExpr:
		return "(" + dumpExpr(e.Condition) + " ? " + dumpExpr(e.ThenExpr) + " : " + dumpExpr(e.ElseExpr) + ")"
	case *AssignExpr:
		return "(" + dumpExpr(e.Target) + " " + Symbol(e.Operator) + " " + dumpExpr(e.Value) + ")"
	case *IndexExpr:
		return dumpExpr(e.Expr) + "[" + dumpExpr(e.Index) + "]"
	case *FieldExpr:
		return dumpExpr(e.Expr) + "." + e.Name
	case *DynFieldExpr:
		return dumpExpr(e.Expr) + ".@" + dumpExpr(e.Key)
	case *CallExpr:
		return dumpExpr(e.Callee) + "(" + dumpArgs(e.Args) + ")"
	case *NativeCallExpr:
		return "$" + e.Name + "(" + dumpArgs(e.Args) + ")"
	case *ArrayLit:
		return "[" + dumpArgs(e.Elements) + "]"
	case *RecordLit:
		parts := make([]string, len(e.Keys))
		for i, k := range e.Keys {
			parts[i] = strconv.Quote(k) + ": " + dumpExpr(e.Values[i])
		}
		return "{" + e.This.String() + " | " + strings.Join(parts, ", ") + "}"
	case *FuncLit:
		var sb strings.Builder
		sb.WriteString("fun " + e.Self.String() + funcHeader(e) + " {")
		for _, s := range e.Body.Stmts {
			sb.WriteString(" " + strings.ReplaceAll(strings.TrimSpace(Dump(s)), "\n", " "))
		}
		sb.WriteString(" }")
		return sb.String()
	default:
		return "<unknown expression>"
	}
}

// funcHeader renders "(params) return#n"
func funcHeader(fn *FuncLit) string {
	return "(" + slotList(fn.Params) + ") " + fn.Return.String()
}

func slotList(slots []*Slot) string {
	names := make([]string, len(slots))
	for i, s := range slots {
		names[i] = s.String()
	}
	return strings.Join(names, ", ")
}

func dumpArgs(args []Expr) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = dumpExpr(a)
	}
	return strings.Join(parts, ", ")
}

// dumpLiteral renders a constant in source form
func dumpLiteral(v types.Value) string {
	if v == nil {
		return "null"
	}
	return v.String()
}
