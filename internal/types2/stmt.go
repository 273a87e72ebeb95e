package types2

import (
	"github.com/you-not-fish/labo/internal/syntax"
	"github.com/you-not-fish/labo/internal/types"
)

// stmtSeq checks a statement sequence in order.
func (c *Checker) stmtSeq(s syntax.StmtSeq) error {
	for _, st := range syntax.Stmts(s) {
		if err := c.stmt(st); err != nil {
			return err
		}
	}
	return nil
}

// stmt checks a single statement.
func (c *Checker) stmt(s syntax.Stmt) error {
	switch s := s.(type) {
	case *syntax.VarStmt:
		return c.varStmt(s)

	case *syntax.AssignStmt:
		return c.assignStmt(s)

	case *syntax.PrintStmt:
		_, err := c.expr(s.X)
		return err

	case *syntax.IfStmt:
		return c.ifStmt(s)

	case *syntax.ForStmt:
		return c.forStmt(s)

	case *syntax.Block:
		return c.block(s)
	}
	return invalidAST(s)
}

// varStmt fixes the static type of a new variable to the type of its
// initializer.
func (c *Checker) varStmt(s *syntax.VarStmt) error {
	t, err := c.expr(s.Value)
	if err != nil {
		return err
	}
	return c.declare(s.Name, t)
}

// assignStmt checks that the new value has the declared type.
func (c *Checker) assignStmt(s *syntax.AssignStmt) error {
	declared, err := c.lookup(s.Name)
	if err != nil {
		return err
	}
	t, err := c.expr(s.Value)
	if err != nil {
		return err
	}
	return identical(s.Value.Pos(), t, declared)
}

// block checks a block in its own scope.
func (c *Checker) block(b *syntax.Block) error {
	c.openScope()
	defer c.closeScope()
	return c.stmtSeq(b.Stmts)
}

func (c *Checker) ifStmt(s *syntax.IfStmt) error {
	if err := c.operand(s.Cond, types.Typ[types.Bool]); err != nil {
		return err
	}
	if err := c.block(s.Then); err != nil {
		return err
	}
	if s.Else != nil {
		return c.block(s.Else)
	}
	return nil
}

// forStmt binds the loop variable to (int,V) in a loop scope enclosing the
// body block, and checks the body once.
func (c *Checker) forStmt(s *syntax.ForStmt) error {
	t, err := c.expr(s.X)
	if err != nil {
		return err
	}
	d := types.AsDict(t)
	if d == nil {
		return mismatch(s.X.Pos(), t, "dictionary")
	}

	c.openScope()
	defer c.closeScope()
	if err := c.declare(s.Var, d.Entry()); err != nil {
		return err
	}
	return c.block(s.Body)
}
