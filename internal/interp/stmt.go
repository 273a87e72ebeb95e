package interp

import (
	"fmt"

	"github.com/you-not-fish/labo/internal/syntax"
)

func (in *Interpreter) stmtSeq(s syntax.StmtSeq) error {
	for _, st := range syntax.Stmts(s) {
		if err := in.stmt(st); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) stmt(s syntax.Stmt) error {
	switch s := s.(type) {
	case *syntax.VarStmt:
		v, err := in.expr(s.Value)
		if err != nil {
			return err
		}
		if err := in.env.Declare(s.Name.Value, v); err != nil {
			return runtimeError(s.Name.Pos(), err)
		}
		return nil

	case *syntax.AssignStmt:
		v, err := in.expr(s.Value)
		if err != nil {
			return err
		}
		if err := in.env.Update(s.Name.Value, v); err != nil {
			return runtimeError(s.Name.Pos(), err)
		}
		return nil

	case *syntax.PrintStmt:
		v, err := in.expr(s.X)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(in.out, v); err != nil {
			return runtimeError(s.Pos(), err)
		}
		return nil

	case *syntax.IfStmt:
		cond, err := in.boolean(s.Cond)
		if err != nil {
			return err
		}
		if cond {
			return in.block(s.Then)
		}
		if s.Else != nil {
			return in.block(s.Else)
		}
		return nil

	case *syntax.ForStmt:
		return in.forStmt(s)

	case *syntax.Block:
		return in.block(s)
	}
	return runtimeError(s.Pos(), fmt.Errorf("unexpected statement %T", s))
}

func (in *Interpreter) block(b *syntax.Block) error {
	in.env.EnterLevel()
	defer in.env.ExitLevel()
	return in.stmtSeq(b.Stmts)
}

// forStmt runs the body once per entry, in ascending key order. The loop
// variable lives in one scope around all iterations: it is declared for
// the first entry and updated for the following ones.
func (in *Interpreter) forStmt(s *syntax.ForStmt) error {
	x, err := in.expr(s.X)
	if err != nil {
		return err
	}
	d, ok := x.(*Dict)
	if !ok {
		return runtimeError(s.X.Pos(), &NotADictionaryError{Found: x})
	}

	in.env.EnterLevel()
	defer in.env.ExitLevel()

	declared := false
	d.Each(func(k int64, v Value) bool {
		entry := &Pair{X: Int(k), Y: v}
		if declared {
			err = in.env.Update(s.Var.Value, entry)
		} else {
			err = in.env.Declare(s.Var.Value, entry)
			declared = true
		}
		if err != nil {
			err = runtimeError(s.Var.Pos(), err)
			return false
		}
		err = in.block(s.Body)
		return err == nil
	})
	return err
}
