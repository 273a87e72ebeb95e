package syntax

import (
	"fmt"
	"io"
	"strconv"
)

// ParseError reports a token that does not fit the grammar.
type ParseError struct {
	Pos      Pos
	Expected string // empty when no single token was expected
	Found    string
}

func (e *ParseError) Error() string {
	if e.Expected == "" {
		return fmt.Sprintf("%s: unexpected %s", e.Pos, e.Found)
	}
	return fmt.Sprintf("%s: expected %s, found %s", e.Pos, e.Expected, e.Found)
}

// bailout unwinds the parser after the first error.
type bailout struct{}

// Parser is a recursive-descent parser with one token of lookahead.
type Parser struct {
	scanner *Scanner

	// current token, cached from the scanner
	tok Token
	lit string
	pos Pos

	first error
}

// NewParser returns a parser for src. Nothing is read until Parse is called.
func NewParser(filename string, src io.Reader) *Parser {
	return &Parser{scanner: NewScanner(filename, src)}
}

// Parse parses a complete program. It stops at the first lexical or
// syntax error and returns it; the error is a *LexError, a *ParseError or,
// for a broken reader, the read error.
func (p *Parser) Parse() (prog *Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			prog, err = nil, p.first
		}
	}()

	p.next()
	prog = &Program{}
	prog.pos = p.pos
	prog.Stmts = p.stmtSeq()
	p.match(_EOF)
	return prog, nil
}

// ----------------------------------------------------------------------------
// Token navigation

func (p *Parser) next() {
	p.scanner.Next()
	p.tok = p.scanner.Token()
	p.lit = p.scanner.Literal()
	p.pos = p.scanner.Pos()
	if p.tok == _Error {
		p.fail(p.scanner.Err())
	}
}

// got consumes the current token if it is tok.
func (p *Parser) got(tok Token) bool {
	if p.tok == tok {
		p.next()
		return true
	}
	return false
}

// match fails unless the current token is tok. It does not advance.
func (p *Parser) match(tok Token) {
	if p.tok != tok {
		p.fail(&ParseError{Pos: p.pos, Expected: describe(tok, ""), Found: describe(p.tok, p.lit)})
	}
}

// want consumes tok or fails.
func (p *Parser) want(tok Token) {
	p.match(tok)
	p.next()
}

func (p *Parser) unexpected() {
	p.fail(&ParseError{Pos: p.pos, Found: describe(p.tok, p.lit)})
}

func (p *Parser) fail(err error) {
	if p.first == nil {
		p.first = err
	}
	panic(bailout{})
}

// describe renders a token for error messages.
func describe(tok Token, lit string) string {
	switch {
	case tok == _EOF:
		return "EOF"
	case lit != "" && (tok == _Name || tok.IsLiteral()):
		return fmt.Sprintf("%s %s", tok, lit)
	case tok.IsSymbol() || tok.IsKeyword():
		return strconv.Quote(tok.String())
	}
	return tok.String()
}

// ----------------------------------------------------------------------------
// Statements

// stmtSeq parses: Stmt (';' StmtSeq)?
// A separator directly before EOF or '}' is accepted and ends the sequence.
func (p *Parser) stmtSeq() StmtSeq {
	s := &NonEmptyStmtSeq{}
	s.pos = p.pos
	s.First = p.stmt()
	if p.got(_Semi) && p.tok != _EOF && p.tok != _Rbrace {
		s.Rest = p.stmtSeq()
	} else {
		empty := &EmptyStmtSeq{}
		empty.pos = p.pos
		s.Rest = empty
	}
	return s
}

func (p *Parser) stmt() Stmt {
	switch p.tok {
	case _Var:
		return p.varStmt()
	case _Name:
		return p.assignStmt()
	case _Print:
		return p.printStmt()
	case _If:
		return p.ifStmt()
	case _For:
		return p.forStmt()
	}
	p.unexpected()
	return nil
}

// varStmt parses: var Name = Exp
func (p *Parser) varStmt() *VarStmt {
	s := &VarStmt{}
	s.pos = p.pos
	p.want(_Var)
	s.Name = p.name()
	p.want(_Assign)
	s.Value = p.expr()
	return s
}

// assignStmt parses: Name = Exp
func (p *Parser) assignStmt() *AssignStmt {
	s := &AssignStmt{}
	s.pos = p.pos
	s.Name = p.name()
	p.want(_Assign)
	s.Value = p.expr()
	return s
}

// printStmt parses: print Exp
func (p *Parser) printStmt() *PrintStmt {
	s := &PrintStmt{}
	s.pos = p.pos
	p.want(_Print)
	s.X = p.expr()
	return s
}

// ifStmt parses: if ( Exp ) Block [else Block]
func (p *Parser) ifStmt() *IfStmt {
	s := &IfStmt{}
	s.pos = p.pos
	p.want(_If)
	s.Cond = p.parenExpr()
	s.Then = p.block()
	if p.got(_Else) {
		s.Else = p.block()
	}
	return s
}

// forStmt parses: for ( var Name of Exp ) Block
func (p *Parser) forStmt() *ForStmt {
	s := &ForStmt{}
	s.pos = p.pos
	p.want(_For)
	p.want(_Lparen)
	p.want(_Var)
	s.Var = p.name()
	p.want(_Of)
	s.X = p.expr()
	p.want(_Rparen)
	s.Body = p.block()
	return s
}

// block parses: { StmtSeq }
func (p *Parser) block() *Block {
	b := &Block{}
	b.pos = p.pos
	p.want(_Lbrace)
	b.Stmts = p.stmtSeq()
	b.Rbrace = p.pos
	p.want(_Rbrace)
	return b
}

// ----------------------------------------------------------------------------
// Expressions

func (p *Parser) expr() Expr {
	return p.binaryExpr(0)
}

// binaryExpr parses a left-associative binary expression whose operators
// bind tighter than prec (precedence climbing).
func (p *Parser) binaryExpr(prec int) Expr {
	x := p.unaryExpr()

	for {
		oprec := p.tok.Precedence()
		if oprec <= prec {
			return x
		}

		op := p.tok
		p.next()
		y := p.binaryExpr(oprec)

		if op == _Comma {
			pair := &PairLit{X: x, Y: y}
			pair.pos = x.Pos()
			x = pair
			continue
		}
		bin := &Operation{Op: op, X: x, Y: y}
		bin.pos = x.Pos()
		x = bin
	}
}

// unaryExpr parses: (fst | snd | - | !) DictExp | DictExp
func (p *Parser) unaryExpr() Expr {
	switch p.tok {
	case _Fst, _Snd, _Sub, _Not:
		op := &Operation{Op: p.tok}
		op.pos = p.pos
		p.next()
		op.X = p.postfixExpr()
		return op
	}
	return p.postfixExpr()
}

// postfixExpr parses: Atom ( '[' Exp (':' Exp?)? ']' )*
func (p *Parser) postfixExpr() Expr {
	x := p.operand()

	for p.tok == _Lbrack {
		d := &DictExpr{Dict: x}
		d.pos = x.Pos()
		p.next()
		d.Key = p.expr()

		switch {
		case !p.got(_Colon):
			d.Op = DictGet
			p.want(_Rbrack)
		case p.got(_Rbrack):
			d.Op = DictDelete
		default:
			d.Op = DictUpdate
			d.Value = p.expr()
			p.want(_Rbrack)
		}
		x = d
	}
	return x
}

// operand parses: '[' Exp ':' Exp ']' | BOOL | NUM | NAME | '(' Exp ')'
func (p *Parser) operand() Expr {
	switch p.tok {
	case _Lbrack:
		d := &DictExpr{Op: DictCreate}
		d.pos = p.pos
		p.next()
		d.Key = p.expr()
		p.want(_Colon)
		d.Value = p.expr()
		p.want(_Rbrack)
		return d

	case _Bool:
		v, err := p.scanner.BoolValue()
		if err != nil {
			p.fail(err)
		}
		lit := &BoolLit{Value: v}
		lit.pos = p.pos
		p.next()
		return lit

	case _Num:
		v, err := p.scanner.IntValue()
		if err != nil {
			p.fail(err)
		}
		lit := &IntLit{Value: v}
		lit.pos = p.pos
		p.next()
		return lit

	case _Name:
		return p.name()

	case _Lparen:
		return p.parenExpr()
	}
	p.unexpected()
	return nil
}

// parenExpr parses: ( Exp )
func (p *Parser) parenExpr() Expr {
	p.want(_Lparen)
	x := p.expr()
	p.want(_Rparen)
	return x
}

func (p *Parser) name() *Name {
	p.match(_Name)
	n := &Name{Value: p.lit}
	n.pos = p.pos
	p.next()
	return n
}
