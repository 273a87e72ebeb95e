package interp

import (
	"fmt"

	"github.com/you-not-fish/labo/internal/syntax"
)

func (in *Interpreter) expr(e syntax.Expr) (Value, error) {
	switch e := e.(type) {
	case *syntax.IntLit:
		return Int(e.Value), nil

	case *syntax.BoolLit:
		return Bool(e.Value), nil

	case *syntax.Name:
		v, err := in.env.Lookup(e.Value)
		if err != nil {
			return nil, runtimeError(e.Pos(), err)
		}
		return v, nil

	case *syntax.PairLit:
		x, err := in.expr(e.X)
		if err != nil {
			return nil, err
		}
		y, err := in.expr(e.Y)
		if err != nil {
			return nil, err
		}
		return &Pair{X: x, Y: y}, nil

	case *syntax.Operation:
		if e.Y == nil {
			return in.unary(e)
		}
		return in.binary(e)

	case *syntax.DictExpr:
		return in.dictExpr(e)
	}
	return nil, runtimeError(e.Pos(), fmt.Errorf("unexpected expression %T", e))
}

// integer evaluates e, which must produce an Int.
func (in *Interpreter) integer(e syntax.Expr) (Int, error) {
	v, err := in.expr(e)
	if err != nil {
		return 0, err
	}
	i, ok := v.(Int)
	if !ok {
		return 0, runtimeError(e.Pos(), &TypeMismatchError{Found: v, Expected: "int"})
	}
	return i, nil
}

// boolean evaluates e, which must produce a Bool.
func (in *Interpreter) boolean(e syntax.Expr) (Bool, error) {
	v, err := in.expr(e)
	if err != nil {
		return false, err
	}
	b, ok := v.(Bool)
	if !ok {
		return false, runtimeError(e.Pos(), &TypeMismatchError{Found: v, Expected: "bool"})
	}
	return b, nil
}

func (in *Interpreter) unary(e *syntax.Operation) (Value, error) {
	switch e.Op {
	case syntax.Sub:
		x, err := in.integer(e.X)
		if err != nil {
			return nil, err
		}
		return -x, nil

	case syntax.Not:
		x, err := in.boolean(e.X)
		if err != nil {
			return nil, err
		}
		return !x, nil

	case syntax.Fst, syntax.Snd:
		x, err := in.expr(e.X)
		if err != nil {
			return nil, err
		}
		p, ok := x.(*Pair)
		if !ok {
			return nil, runtimeError(e.X.Pos(), &NotAPairError{Found: x})
		}
		if e.Op == syntax.Fst {
			return p.X, nil
		}
		return p.Y, nil
	}
	return nil, runtimeError(e.Pos(), fmt.Errorf("unexpected unary operator %s", e.Op))
}

func (in *Interpreter) binary(e *syntax.Operation) (Value, error) {
	switch e.Op {
	case syntax.Add, syntax.Mul:
		x, err := in.integer(e.X)
		if err != nil {
			return nil, err
		}
		y, err := in.integer(e.Y)
		if err != nil {
			return nil, err
		}
		if e.Op == syntax.Add {
			return x + y, nil
		}
		return x * y, nil

	case syntax.AndAnd:
		x, err := in.boolean(e.X)
		if err != nil || !x {
			return x, err
		}
		return in.boolean(e.Y)

	case syntax.Eql:
		x, err := in.expr(e.X)
		if err != nil {
			return nil, err
		}
		y, err := in.expr(e.Y)
		if err != nil {
			return nil, err
		}
		return Bool(Equal(x, y)), nil
	}
	return nil, runtimeError(e.Pos(), fmt.Errorf("unexpected binary operator %s", e.Op))
}

// dictExpr evaluates the dictionary operand, then the key, then the value.
func (in *Interpreter) dictExpr(e *syntax.DictExpr) (Value, error) {
	if e.Op == syntax.DictCreate {
		k, err := in.integer(e.Key)
		if err != nil {
			return nil, err
		}
		v, err := in.expr(e.Value)
		if err != nil {
			return nil, err
		}
		return NewDict().With(int64(k), v), nil
	}

	x, err := in.expr(e.Dict)
	if err != nil {
		return nil, err
	}
	d, ok := x.(*Dict)
	if !ok {
		return nil, runtimeError(e.Dict.Pos(), &NotADictionaryError{Found: x})
	}
	k, err := in.integer(e.Key)
	if err != nil {
		return nil, err
	}
	key := int64(k)

	switch e.Op {
	case syntax.DictGet:
		v, ok := d.Get(key)
		if !ok {
			return nil, runtimeError(e.Key.Pos(), &MissingKeyError{Key: key})
		}
		return v, nil

	case syntax.DictDelete:
		if _, ok := d.Get(key); !ok {
			return nil, runtimeError(e.Key.Pos(), &MissingKeyError{Key: key})
		}
		return d.Without(key), nil

	case syntax.DictUpdate:
		v, err := in.expr(e.Value)
		if err != nil {
			return nil, err
		}
		return d.With(key, v), nil
	}
	return nil, runtimeError(e.Pos(), fmt.Errorf("unexpected dictionary operation %s", e.Op))
}
