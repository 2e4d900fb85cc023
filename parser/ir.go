package parser

import "nyalang/types"

// Node is the base interface for all program graph nodes
type Node interface {
	Position() Position
}

// Expr represents an expression node
type Expr interface {
	Node
	exprNode()
}

// Stmt represents a statement node
type Stmt interface {
	Node
	stmtNode()
}

// ============================================================================
// EXPRESSIONS
// ============================================================================

// Literal is a constant value. Const is set when the literal was folded
// from a constant declaration.
type Literal struct {
	Pos   Position
	Value types.Value
	Const *Slot
}

func (e *Literal) Position() Position { return e.Pos }
func (e *Literal) exprNode()          {}

// VarRef reads a resolved variable
type VarRef struct {
	Pos  Position
	Slot *Slot
}

func (e *VarRef) Position() Position { return e.Pos }
func (e *VarRef) exprNode()          {}

// UnaryExpr represents - ! ~
type UnaryExpr struct {
	Pos      Position
	Operator TokenType // TOKEN_MINUS, TOKEN_NOT, TOKEN_BITNOT
	Operand  Expr
}

func (e *UnaryExpr) Position() Position { return e.Pos }
func (e *UnaryExpr) exprNode()          {}

// IncDecExpr represents prefix ++ and --; its value is the updated value
type IncDecExpr struct {
	Pos      Position
	Operator TokenType // TOKEN_INCR or TOKEN_DECR
	Target   Expr      // *VarRef or *IndexExpr
}

func (e *IncDecExpr) Position() Position { return e.Pos }
func (e *IncDecExpr) exprNode()          {}

// BinaryExpr represents arithmetic, bitwise and comparison operators
type BinaryExpr struct {
	Pos      Position
	Left     Expr
	Operator TokenType
	Right    Expr
}

func (e *BinaryExpr) Position() Position { return e.Pos }
func (e *BinaryExpr) exprNode()          {}

// LogicalExpr represents && || ^^; the result is always a boolean
type LogicalExpr struct {
	Pos      Position
	Left     Expr
	Operator TokenType // TOKEN_AND, TOKEN_OR, TOKEN_XOR
	Right    Expr
}

func (e *LogicalExpr) Position() Position { return e.Pos }
func (e *LogicalExpr) exprNode()          {}

// TernaryExpr represents cond ? then : else
type TernaryExpr struct {
	Pos       Position
	Condition Expr
	ThenExpr  Expr
	ElseExpr  Expr
}

func (e *TernaryExpr) Position() Position { return e.Pos }
func (e *TernaryExpr) exprNode()          {}

// AssignExpr represents = and the compound assignments
type AssignExpr struct {
	Pos      Position
	Operator TokenType // TOKEN_ASSIGN or a compound TOKEN_*_ASSIGN
	Target   Expr      // *VarRef, *IndexExpr, *FieldExpr or *DynFieldExpr
	Value    Expr
}

func (e *AssignExpr) Position() Position { return e.Pos }
func (e *AssignExpr) exprNode()          {}

// IndexExpr represents indexing: expr[index]
type IndexExpr struct {
	Pos   Position
	Expr  Expr
	Index Expr
}

func (e *IndexExpr) Position() Position { return e.Pos }
func (e *IndexExpr) exprNode()          {}

// FieldExpr represents field access: expr.name
type FieldExpr struct {
	Pos  Position
	Expr Expr
	Name string
}

func (e *FieldExpr) Position() Position { return e.Pos }
func (e *FieldExpr) exprNode()          {}

// DynFieldExpr represents reflective field access: expr.@key
type DynFieldExpr struct {
	Pos  Position
	Expr Expr
	Key  Expr
}

func (e *DynFieldExpr) Position() Position { return e.Pos }
func (e *DynFieldExpr) exprNode()          {}

// CallExpr represents calling a function value
type CallExpr struct {
	Pos    Position
	Callee Expr
	Args   []Expr
}

func (e *CallExpr) Position() Position { return e.Pos }
func (e *CallExpr) exprNode()          {}

// NativeCallExpr represents $Name(args), resolved at compile time
type NativeCallExpr struct {
	Pos  Position
	Name string
	Fn   types.NativeFunc
	Args []Expr
}

func (e *NativeCallExpr) Position() Position { return e.Pos }
func (e *NativeCallExpr) exprNode()          {}

// ArrayLit represents [a, b, c]
type ArrayLit struct {
	Pos      Position
	Elements []Expr
}

func (e *ArrayLit) Position() Position { return e.Pos }
func (e *ArrayLit) exprNode()          {}

// RecordLit represents {name: value, ...}. This is bound to the record
// once all fields are built.
type RecordLit struct {
	Pos    Position
	Keys   []string
	Values []Expr
	This   *Slot
}

func (e *RecordLit) Position() Position { return e.Pos }
func (e *RecordLit) exprNode()          {}

// FuncLit is a function body with its parameters. It serves both named
// declarations and lambdas; Self is only set for lambdas.
type FuncLit struct {
	Pos    Position
	Name   string
	Self   *Slot
	Params []*Slot
	Body   *Block
	Return *Label
}

func (e *FuncLit) Position() Position { return e.Pos }
func (e *FuncLit) exprNode()          {}

// ============================================================================
// STATEMENTS
// ============================================================================

// Block is a statement list with its own variables. Labels maps every
// label placed directly in the list to its statement index.
type Block struct {
	Pos    Position
	Slots  []*Slot
	Stmts  []Stmt
	Labels map[*Label]int
}

func (s *Block) Position() Position { return s.Pos }
func (s *Block) stmtNode()          {}

// place appends a statement and records it as a jump target if it is a label
func (s *Block) place(stmt Stmt) {
	if ls, ok := stmt.(*LabelStmt); ok {
		if s.Labels == nil {
			s.Labels = make(map[*Label]int)
		}
		s.Labels[ls.Label] = len(s.Stmts)
	}
	s.Stmts = append(s.Stmts, stmt)
}

// ExprStmt evaluates an expression
type ExprStmt struct {
	Pos  Position
	Expr Expr
}

func (s *ExprStmt) Position() Position { return s.Pos }
func (s *ExprStmt) stmtNode()          {}

// VarDecl initializes a declared slot; Init is nil for null
type VarDecl struct {
	Pos  Position
	Slot *Slot
	Init Expr
}

func (s *VarDecl) Position() Position { return s.Pos }
func (s *VarDecl) stmtNode()          {}

// FuncDecl binds a named function to its slot
type FuncDecl struct {
	Pos  Position
	Slot *Slot
	Func *FuncLit
}

func (s *FuncDecl) Position() Position { return s.Pos }
func (s *FuncDecl) stmtNode()          {}

// If is a two-way conditional; Else may be nil
type If struct {
	Pos       Position
	Condition Expr
	Then      Stmt
	Else      Stmt
}

func (s *If) Position() Position { return s.Pos }
func (s *If) stmtNode()          {}

// Loop runs Body until a break aimed at Break arrives
type Loop struct {
	Pos      Position
	Body     Stmt
	Break    *Label
	Continue *Label
}

func (s *Loop) Position() Position { return s.Pos }
func (s *Loop) stmtNode()          {}

// LabelStmt marks a jump target
type LabelStmt struct {
	Pos   Position
	Label *Label
}

func (s *LabelStmt) Position() Position { return s.Pos }
func (s *LabelStmt) stmtNode()          {}

// GotoStmt jumps to a user label
type GotoStmt struct {
	Pos   Position
	Label *Label
}

func (s *GotoStmt) Position() Position { return s.Pos }
func (s *GotoStmt) stmtNode()          {}

// BreakStmt leaves the loop owning Label
type BreakStmt struct {
	Pos   Position
	Label *Label
}

func (s *BreakStmt) Position() Position { return s.Pos }
func (s *BreakStmt) stmtNode()          {}

// ContinueStmt jumps to the continue point of the loop owning Label
type ContinueStmt struct {
	Pos   Position
	Label *Label
}

func (s *ContinueStmt) Position() Position { return s.Pos }
func (s *ContinueStmt) stmtNode()          {}

// ReturnStmt leaves the function owning Label; Value is nil for null
type ReturnStmt struct {
	Pos   Position
	Label *Label
	Value Expr
}

func (s *ReturnStmt) Position() Position { return s.Pos }
func (s *ReturnStmt) stmtNode()          {}

// PrintStmt writes the text form of a value and a newline
type PrintStmt struct {
	Pos   Position
	Value Expr
}

func (s *PrintStmt) Position() Position { return s.Pos }
func (s *PrintStmt) stmtNode()          {}
