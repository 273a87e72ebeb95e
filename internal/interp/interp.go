package interp

import (
	"io"

	"github.com/you-not-fish/labo/internal/scope"
	"github.com/you-not-fish/labo/internal/syntax"
)

// Interpreter executes programs, writing one line per print statement
// to its output.
type Interpreter struct {
	out io.Writer
	env *scope.Env[Value]
}

// New returns an interpreter that prints to out.
func New(out io.Writer) *Interpreter {
	return &Interpreter{out: out}
}

// Run executes prog in a fresh global scope. Execution stops at the first
// error, which is returned as a *RuntimeError; lines printed before it
// remain written.
//
// Run does not type-check prog. For programs that passed types2.Check
// the only possible errors are missing dictionary keys and output
// failures.
func (in *Interpreter) Run(prog *syntax.Program) error {
	in.env = scope.New[Value]()
	return in.stmtSeq(prog.Stmts)
}
