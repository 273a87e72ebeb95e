// Package pipeline runs Labo source through the scanner, parser, type
// checker and interpreter, and tags every failure with the phase that
// produced it.
package pipeline

import (
	"errors"
	"io"
	"log"
	"time"

	"github.com/you-not-fish/labo/internal/interp"
	"github.com/you-not-fish/labo/internal/syntax"
	"github.com/you-not-fish/labo/internal/types2"
)

// Phase names a stage of the pipeline.
type Phase string

const (
	PhaseLex       Phase = "lex"
	PhaseParse     Phase = "parse"
	PhaseTypecheck Phase = "typecheck"
	PhaseExecute   Phase = "execute"
)

// Error is the single error returned by Run. Its message is the message of
// the underlying error, which starts with file:line:col when the position
// is known.
type Error struct {
	Phase Phase
	Err   error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Config controls a run.
type Config struct {
	// NoTypecheck skips static checking. Ill-typed programs then fail at
	// run time, if at all.
	NoTypecheck bool

	// Trace, if not nil, receives one line per completed phase with its
	// duration.
	Trace *log.Logger

	// Info, if not nil, is filled in by the type checker.
	Info *types2.Info
}

func (conf *Config) trace(phase Phase, start time.Time) {
	if conf.Trace != nil {
		conf.Trace.Printf("%-9s %v", phase, time.Since(start))
	}
}

// Parse reads and parses src. Errors are *Error values in the lex or
// parse phase; a failure to read src counts as lexical.
func Parse(filename string, src io.Reader, conf Config) (*syntax.Program, error) {
	defer conf.trace(PhaseParse, time.Now())

	prog, err := syntax.NewParser(filename, src).Parse()
	if err != nil {
		var pe *syntax.ParseError
		if errors.As(err, &pe) {
			return nil, &Error{Phase: PhaseParse, Err: err}
		}
		return nil, &Error{Phase: PhaseLex, Err: err}
	}
	return prog, nil
}

// Check type-checks prog unless conf.NoTypecheck is set.
func Check(prog *syntax.Program, conf Config) error {
	if conf.NoTypecheck {
		return nil
	}
	defer conf.trace(PhaseTypecheck, time.Now())

	if err := types2.Check(prog, conf.Info); err != nil {
		return &Error{Phase: PhaseTypecheck, Err: err}
	}
	return nil
}

// Execute runs prog, printing to out.
func Execute(prog *syntax.Program, out io.Writer, conf Config) error {
	defer conf.trace(PhaseExecute, time.Now())

	if err := interp.New(out).Run(prog); err != nil {
		return &Error{Phase: PhaseExecute, Err: err}
	}
	return nil
}

// Run parses, checks and executes one program. A program that fails to
// parse or type-check produces no output. src is only read; closing it is
// up to the caller.
func Run(filename string, src io.Reader, out io.Writer, conf Config) error {
	prog, err := Parse(filename, src, conf)
	if err != nil {
		return err
	}
	if err := Check(prog, conf); err != nil {
		return err
	}
	return Execute(prog, out, conf)
}
