package types2

import (
	"github.com/you-not-fish/labo/internal/syntax"
	"github.com/you-not-fish/labo/internal/types"
)

// expr computes the type of e and records it.
func (c *Checker) expr(e syntax.Expr) (types.Type, error) {
	t, err := c.exprInternal(e)
	if err != nil {
		return nil, err
	}
	c.recordType(e, t)
	return t, nil
}

func (c *Checker) exprInternal(e syntax.Expr) (types.Type, error) {
	switch e := e.(type) {
	case *syntax.IntLit:
		return types.Typ[types.Int], nil

	case *syntax.BoolLit:
		return types.Typ[types.Bool], nil

	case *syntax.Name:
		return c.lookup(e)

	case *syntax.PairLit:
		x, err := c.expr(e.X)
		if err != nil {
			return nil, err
		}
		y, err := c.expr(e.Y)
		if err != nil {
			return nil, err
		}
		return types.NewPair(x, y), nil

	case *syntax.Operation:
		if e.Y == nil {
			return c.unary(e)
		}
		return c.binary(e)

	case *syntax.DictExpr:
		return c.dictExpr(e)
	}
	return nil, invalidAST(e)
}

// operand checks that e has type want.
func (c *Checker) operand(e syntax.Expr, want types.Type) error {
	t, err := c.expr(e)
	if err != nil {
		return err
	}
	return identical(e.Pos(), t, want)
}

func (c *Checker) unary(e *syntax.Operation) (types.Type, error) {
	switch e.Op {
	case syntax.Sub:
		return types.Typ[types.Int], c.operand(e.X, types.Typ[types.Int])

	case syntax.Not:
		return types.Typ[types.Bool], c.operand(e.X, types.Typ[types.Bool])

	case syntax.Fst, syntax.Snd:
		t, err := c.expr(e.X)
		if err != nil {
			return nil, err
		}
		p := types.AsPair(t)
		if p == nil {
			return nil, mismatch(e.X.Pos(), t, "pair")
		}
		if e.Op == syntax.Fst {
			return p.First(), nil
		}
		return p.Second(), nil
	}
	return nil, invalidAST(e)
}

func (c *Checker) binary(e *syntax.Operation) (types.Type, error) {
	switch e.Op {
	case syntax.Add, syntax.Mul:
		return c.operands(e, types.Typ[types.Int])

	case syntax.AndAnd:
		return c.operands(e, types.Typ[types.Bool])

	case syntax.Eql:
		x, err := c.expr(e.X)
		if err != nil {
			return nil, err
		}
		y, err := c.expr(e.Y)
		if err != nil {
			return nil, err
		}
		if err := identical(e.Y.Pos(), y, x); err != nil {
			return nil, err
		}
		return types.Typ[types.Bool], nil
	}
	return nil, invalidAST(e)
}

// operands checks both operands of e against typ, which is also the
// result type.
func (c *Checker) operands(e *syntax.Operation, typ types.Type) (types.Type, error) {
	if err := c.operand(e.X, typ); err != nil {
		return nil, err
	}
	if err := c.operand(e.Y, typ); err != nil {
		return nil, err
	}
	return typ, nil
}

// dictExpr checks a dictionary literal or operation. The key is checked
// before the dictionary operand.
func (c *Checker) dictExpr(e *syntax.DictExpr) (types.Type, error) {
	if err := c.operand(e.Key, types.Typ[types.Int]); err != nil {
		return nil, err
	}

	if e.Op == syntax.DictCreate {
		v, err := c.expr(e.Value)
		if err != nil {
			return nil, err
		}
		return types.NewDict(v), nil
	}

	t, err := c.expr(e.Dict)
	if err != nil {
		return nil, err
	}
	d := types.AsDict(t)
	if d == nil {
		return nil, mismatch(e.Dict.Pos(), t, "dictionary")
	}

	switch e.Op {
	case syntax.DictGet:
		return d.Elem(), nil

	case syntax.DictDelete:
		return d, nil

	case syntax.DictUpdate:
		v, err := c.expr(e.Value)
		if err != nil {
			return nil, err
		}
		if err := identical(e.Value.Pos(), v, d.Elem()); err != nil {
			return nil, err
		}
		return d, nil
	}
	return nil, invalidAST(e)
}
