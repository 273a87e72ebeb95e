package types2

import (
	"github.com/you-not-fish/labo/internal/scope"
	"github.com/you-not-fish/labo/internal/syntax"
	"github.com/you-not-fish/labo/internal/types"
)

// Checker is the type checker. A Checker is used for one program only.
type Checker struct {
	info *Info
	env  *scope.Env[types.Type] // declared type of every visible variable
}

// openScope enters a nested scope. Every call is paired with a deferred
// closeScope so the environment is balanced on error paths as well.
func (c *Checker) openScope() {
	c.env.EnterLevel()
}

func (c *Checker) closeScope() {
	c.env.ExitLevel()
}

// lookup returns the declared type of a variable reference.
func (c *Checker) lookup(name *syntax.Name) (types.Type, error) {
	t, err := c.env.Lookup(name.Value)
	if err != nil {
		return nil, envError(name.Pos(), err)
	}
	return t, nil
}

// declare binds name to t in the innermost scope.
func (c *Checker) declare(name *syntax.Name, t types.Type) error {
	if err := c.env.Declare(name.Value, t); err != nil {
		return envError(name.Pos(), err)
	}
	if c.info != nil {
		c.info.Defs[name] = t
	}
	return nil
}

func (c *Checker) recordType(e syntax.Expr, t types.Type) {
	if c.info != nil {
		c.info.Types[e] = t
	}
}
