package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// Nodes are created once by the parser and never modified afterwards.
// There are three classes of nodes besides the Program: statement
// sequences, statements and expressions. The unexported marker methods
// close each set to this package, so type switches over them can be
// exhaustive.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() Pos // position of the first character belonging to the node
	aNode()
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	aExpr()
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	aStmt()
}

// StmtSeq is a right-recursive statement list: either *EmptyStmtSeq or
// *NonEmptyStmtSeq.
type StmtSeq interface {
	Node
	aStmtSeq()
}

type node struct {
	pos Pos
}

func (n *node) Pos() Pos { return n.pos }
func (n *node) aNode()   {}

type expr struct{ node }

func (*expr) aExpr() {}

type stmt struct{ node }

func (*stmt) aStmt() {}

type seq struct{ node }

func (*seq) aStmtSeq() {}

// ----------------------------------------------------------------------------
// Program and statement sequences

// Program is the root of the AST.
type Program struct {
	node
	Stmts StmtSeq
}

// EmptyStmtSeq terminates every statement sequence.
type EmptyStmtSeq struct {
	seq
}

// NonEmptyStmtSeq is First followed by Rest.
type NonEmptyStmtSeq struct {
	seq
	First Stmt
	Rest  StmtSeq
}

// Stmts flattens a statement sequence into a slice, in source order.
func Stmts(s StmtSeq) []Stmt {
	var list []Stmt
	for {
		ne, ok := s.(*NonEmptyStmtSeq)
		if !ok {
			return list
		}
		list = append(list, ne.First)
		s = ne.Rest
	}
}

// ----------------------------------------------------------------------------
// Statements

// VarStmt declares a variable: var Name = Value
type VarStmt struct {
	stmt
	Name  *Name
	Value Expr
}

// AssignStmt assigns to a declared variable: Name = Value
type AssignStmt struct {
	stmt
	Name  *Name
	Value Expr
}

// PrintStmt prints the value of X on its own line.
type PrintStmt struct {
	stmt
	X Expr
}

// IfStmt represents: if (Cond) Then [else Else]
type IfStmt struct {
	stmt
	Cond Expr
	Then *Block
	Else *Block // nil without else
}

// ForStmt iterates over the entries of a dictionary: for (var Var of X) Body
type ForStmt struct {
	stmt
	Var  *Name
	X    Expr
	Body *Block
}

// Block represents { Stmts } and opens a new scope.
type Block struct {
	stmt
	Stmts  StmtSeq
	Rbrace Pos
}

// ----------------------------------------------------------------------------
// Expressions

// Name is a variable reference (or the declared name in VarStmt/ForStmt).
type Name struct {
	expr
	Value string
}

// IntLit is a natural number literal.
type IntLit struct {
	expr
	Value int64
}

// BoolLit is true or false.
type BoolLit struct {
	expr
	Value bool
}

// PairLit builds a pair: X, Y
type PairLit struct {
	expr
	X, Y Expr
}

// Operation is a unary or binary operation.
// Binary: Add, Mul, Eql, AndAnd with both X and Y set.
// Unary: Sub, Not, Fst, Snd with Y == nil.
type Operation struct {
	expr
	Op Token
	X  Expr
	Y  Expr
}

// DictOp selects the dictionary operation of a DictExpr.
type DictOp uint8

const (
	DictCreate DictOp = iota // [Key:Value]
	DictGet                  // Dict[Key]
	DictUpdate               // Dict[Key:Value]
	DictDelete               // Dict[Key:]
)

var dictOpNames = [...]string{
	DictCreate: "create",
	DictGet:    "get",
	DictUpdate: "update",
	DictDelete: "delete",
}

func (op DictOp) String() string {
	if int(op) < len(dictOpNames) {
		return dictOpNames[op]
	}
	return "DictOp(?)"
}

// DictExpr is a dictionary literal or a postfix dictionary operation.
// Dict is nil for DictCreate; Value is nil for DictGet and DictDelete.
type DictExpr struct {
	expr
	Op    DictOp
	Dict  Expr
	Key   Expr
	Value Expr
}
