// Package interp executes type-checked Labo programs by walking the AST.
package interp

import "fmt"

// Value is a runtime value: Int, Bool, *Pair or *Dict.
// Values are immutable once built.
type Value interface {
	// String formats the value the way print shows it.
	String() string
	aValue()
}

// Int is a 64-bit integer value. Arithmetic wraps on overflow.
type Int int64

// Bool is a boolean value.
type Bool bool

// Pair is a pair value (X,Y).
type Pair struct {
	X, Y Value
}

func (Int) aValue()   {}
func (Bool) aValue()  {}
func (*Pair) aValue() {}

func (v Int) String() string  { return fmt.Sprint(int64(v)) }
func (v Bool) String() string { return fmt.Sprint(bool(v)) }

func (p *Pair) String() string {
	return fmt.Sprintf("(%s,%s)", p.X, p.Y)
}

// Equal reports whether x and y are structurally equal. Values of
// different kinds are never equal.
func Equal(x, y Value) bool {
	switch x := x.(type) {
	case Int:
		y, ok := y.(Int)
		return ok && x == y
	case Bool:
		y, ok := y.(Bool)
		return ok && x == y
	case *Pair:
		y, ok := y.(*Pair)
		return ok && Equal(x.X, y.X) && Equal(x.Y, y.Y)
	case *Dict:
		y, ok := y.(*Dict)
		return ok && x.equal(y)
	}
	return false
}

// kind names the kind of v for error messages.
func kind(v Value) string {
	switch v.(type) {
	case Int:
		return "int"
	case Bool:
		return "bool"
	case *Pair:
		return "pair"
	case *Dict:
		return "dictionary"
	}
	return fmt.Sprintf("%T", v)
}
