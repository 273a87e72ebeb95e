// Package types2 implements static type checking for Labo programs.
package types2

import (
	"fmt"

	"github.com/you-not-fish/labo/internal/syntax"
	"github.com/you-not-fish/labo/internal/types"
)

// TypeError represents a type checking error. Err, if set, is the
// underlying cause: a *TypeMismatchError, a *scope.UndeclaredNameError or
// a *scope.AlreadyDeclaredError.
type TypeError struct {
	Pos syntax.Pos
	Msg string
	Err error
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

func (e *TypeError) Unwrap() error {
	return e.Err
}

// TypeMismatchError reports an expression whose type is not the one the
// context requires. Expected is either a type or a type class such as
// "pair".
type TypeMismatchError struct {
	Found    string
	Expected string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("found %s, expected %s", e.Found, e.Expected)
}

// mismatch reports that the expression at pos has type found where
// expected was required.
func mismatch(pos syntax.Pos, found types.Type, expected string) error {
	err := &TypeMismatchError{Found: found.String(), Expected: expected}
	return &TypeError{Pos: pos, Msg: "type mismatch: " + err.Error(), Err: err}
}

// envError wraps an error from the scope environment.
func envError(pos syntax.Pos, err error) error {
	return &TypeError{Pos: pos, Msg: err.Error(), Err: err}
}

// invalidAST reports a node the checker does not know how to handle.
func invalidAST(n syntax.Node) error {
	return &TypeError{Pos: n.Pos(), Msg: fmt.Sprintf("invalid AST: unexpected %T", n)}
}

// identical fails unless found is identical to want.
func identical(pos syntax.Pos, found, want types.Type) error {
	if !types.Identical(found, want) {
		return mismatch(pos, found, want.String())
	}
	return nil
}
