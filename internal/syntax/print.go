package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes a textual representation of the AST to w, one node per
// line, children indented below their parent. Statement sequences are
// printed flat.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

// FprintWith is like Fprint but appends annot(n) to the line of every
// expression for which it returns a non-empty string. It is used to show
// checked types next to the nodes.
func FprintWith(w io.Writer, node Node, annot func(Expr) string) {
	p := &printer{w: w, annot: annot}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
	annot  func(Expr) string
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

// exprf prints the header line of an expression node.
func (p *printer) exprf(x Expr, format string, args ...interface{}) {
	line := fmt.Sprintf(format, args...)
	if p.annot != nil {
		if s := p.annot(x); s != "" {
			line += " : " + s
		}
	}
	p.printf("%s\n", line)
}

func (p *printer) child(label string, n Node) {
	p.printf("%s:\n", label)
	p.indent++
	p.print(n)
	p.indent--
}

func (p *printer) print(node Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		p.printf("Program %s\n", n.pos)
		p.indent++
		p.print(n.Stmts)
		p.indent--

	case *EmptyStmtSeq:
		// nothing

	case *NonEmptyStmtSeq:
		for _, s := range Stmts(n) {
			p.print(s)
		}

	case *VarStmt:
		p.printf("VarStmt %s\n", n.pos)
		p.indent++
		p.printf("Name: %s\n", n.Name.Value)
		p.child("Value", n.Value)
		p.indent--

	case *AssignStmt:
		p.printf("AssignStmt %s\n", n.pos)
		p.indent++
		p.printf("Name: %s\n", n.Name.Value)
		p.child("Value", n.Value)
		p.indent--

	case *PrintStmt:
		p.printf("PrintStmt %s\n", n.pos)
		p.indent++
		p.print(n.X)
		p.indent--

	case *IfStmt:
		p.printf("IfStmt %s\n", n.pos)
		p.indent++
		p.child("Cond", n.Cond)
		p.child("Then", n.Then)
		if n.Else != nil {
			p.child("Else", n.Else)
		}
		p.indent--

	case *ForStmt:
		p.printf("ForStmt %s\n", n.pos)
		p.indent++
		p.printf("Var: %s\n", n.Var.Value)
		p.child("Dict", n.X)
		p.child("Body", n.Body)
		p.indent--

	case *Block:
		p.printf("Block %s\n", n.pos)
		p.indent++
		p.print(n.Stmts)
		p.indent--

	case *Name:
		p.exprf(n, "Name %s %s", n.Value, n.pos)

	case *IntLit:
		p.exprf(n, "IntLit %d %s", n.Value, n.pos)

	case *BoolLit:
		p.exprf(n, "BoolLit %t %s", n.Value, n.pos)

	case *PairLit:
		p.exprf(n, "PairLit %s", n.pos)
		p.indent++
		p.print(n.X)
		p.print(n.Y)
		p.indent--

	case *Operation:
		if n.Y == nil {
			p.exprf(n, "UnaryExpr %s %s", n.Op, n.pos)
		} else {
			p.exprf(n, "BinaryExpr %s %s", n.Op, n.pos)
		}
		p.indent++
		p.print(n.X)
		p.print(n.Y)
		p.indent--

	case *DictExpr:
		p.exprf(n, "DictExpr %s %s", n.Op, n.pos)
		p.indent++
		if n.Dict != nil {
			p.child("Dict", n.Dict)
		}
		p.child("Key", n.Key)
		if n.Value != nil {
			p.child("Value", n.Value)
		}
		p.indent--

	default:
		p.printf("<unknown node %T>\n", node)
	}
}
