package types2

import (
	"github.com/you-not-fish/labo/internal/scope"
	"github.com/you-not-fish/labo/internal/syntax"
	"github.com/you-not-fish/labo/internal/types"
)

// Info holds the results of type checking.
type Info struct {
	// Types maps every checked expression to its type.
	Types map[syntax.Expr]types.Type

	// Defs maps the names declared by var statements and for-each loops
	// to their declared types.
	Defs map[*syntax.Name]types.Type
}

// TypeOf returns the recorded type of e, or nil.
func (info *Info) TypeOf(e syntax.Expr) types.Type {
	if info == nil || info.Types == nil {
		return nil
	}
	return info.Types[e]
}

// Check type-checks a parsed program. Checking stops at the first error,
// which is returned as a *TypeError. If info is not nil, its maps are
// allocated as needed and filled with the types computed before that
// point.
func Check(prog *syntax.Program, info *Info) error {
	if info != nil {
		if info.Types == nil {
			info.Types = make(map[syntax.Expr]types.Type)
		}
		if info.Defs == nil {
			info.Defs = make(map[*syntax.Name]types.Type)
		}
	}

	c := &Checker{
		info: info,
		env:  scope.New[types.Type](),
	}
	return c.stmtSeq(prog.Stmts)
}
