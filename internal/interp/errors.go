package interp

import (
	"fmt"

	"github.com/you-not-fish/labo/internal/syntax"
)

// RuntimeError is returned by Run for any failure during execution.
// Err is the cause: one of the error types below, a scope error, or a
// write error from the output.
type RuntimeError struct {
	Pos syntax.Pos
	Err error
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Err)
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}

// NotAPairError reports fst or snd applied to something other than a pair.
type NotAPairError struct {
	Found Value
}

func (e *NotAPairError) Error() string {
	return fmt.Sprintf("not a pair: %s %s", kind(e.Found), e.Found)
}

// NotADictionaryError reports a dictionary operation or for-each loop over
// something other than a dictionary.
type NotADictionaryError struct {
	Found Value
}

func (e *NotADictionaryError) Error() string {
	return fmt.Sprintf("not a dictionary: %s %s", kind(e.Found), e.Found)
}

// MissingKeyError reports a lookup or deletion of an absent key.
type MissingKeyError struct {
	Key int64
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("missing key %d", e.Key)
}

// TypeMismatchError reports an int or bool operand of the wrong kind.
// Type-checked programs never produce it.
type TypeMismatchError struct {
	Found    Value
	Expected string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("found %s %s, expected %s", kind(e.Found), e.Found, e.Expected)
}

func runtimeError(pos syntax.Pos, err error) error {
	return &RuntimeError{Pos: pos, Err: err}
}
