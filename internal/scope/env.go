// Package scope provides Env, a stack of name-to-value frames shared by the
// type checker (binding names to types) and the interpreter (binding names
// to values).
package scope

import "github.com/edwingeng/deque"

// Env is a stack of frames. The innermost frame is at the front of the
// deque; lookups walk from front to back.
//
// The zero Env is not usable; create one with New.
type Env[T any] struct {
	frames deque.Deque // of map[string]T
}

// New returns an environment with one empty frame.
func New[T any]() *Env[T] {
	e := &Env[T]{frames: deque.NewDeque()}
	e.EnterLevel()
	return e
}

// EnterLevel pushes a new empty innermost frame.
func (e *Env[T]) EnterLevel() {
	e.frames.PushFront(make(map[string]T))
}

// ExitLevel discards the innermost frame and every binding in it.
// It panics if only the outermost frame is left.
func (e *Env[T]) ExitLevel() {
	if e.frames.Len() <= 1 {
		panic("scope: ExitLevel on outermost frame")
	}
	e.frames.PopFront()
}

// Depth returns the number of frames, at least 1.
func (e *Env[T]) Depth() int {
	return e.frames.Len()
}

func (e *Env[T]) frame(i int) map[string]T {
	return e.frames.Peek(i).(map[string]T)
}

// Lookup returns the value bound to name in the innermost frame that has
// a binding for it.
func (e *Env[T]) Lookup(name string) (T, error) {
	for i, n := 0, e.frames.Len(); i < n; i++ {
		if v, ok := e.frame(i)[name]; ok {
			return v, nil
		}
	}
	var zero T
	return zero, &UndeclaredNameError{Name: name}
}

// Declare binds name in the innermost frame. Outer bindings of the same
// name are shadowed, not touched.
func (e *Env[T]) Declare(name string, v T) error {
	f := e.frame(0)
	if _, ok := f[name]; ok {
		return &AlreadyDeclaredError{Name: name}
	}
	f[name] = v
	return nil
}

// Update rebinds name in the innermost frame that has a binding for it.
func (e *Env[T]) Update(name string, v T) error {
	for i, n := 0, e.frames.Len(); i < n; i++ {
		f := e.frame(i)
		if _, ok := f[name]; ok {
			f[name] = v
			return nil
		}
	}
	return &UndeclaredNameError{Name: name}
}
