package types

import "fmt"

// Pair represents the type of a pair (X, Y).
type Pair struct {
	typ
	x, y Type
}

// NewPair creates a new pair type.
func NewPair(x, y Type) *Pair {
	return &Pair{x: x, y: y}
}

// First returns the type of the first component.
func (p *Pair) First() Type {
	return p.x
}

// Second returns the type of the second component.
func (p *Pair) Second() Type {
	return p.y
}

// String implements Type.
func (p *Pair) String() string {
	return fmt.Sprintf("(%s,%s)", p.x, p.y)
}

// Dict represents a dictionary type. Keys are always int; every entry has
// the same value type.
type Dict struct {
	typ
	elem Type
}

// NewDict creates a new dictionary type with int keys and elem values.
func NewDict(elem Type) *Dict {
	return &Dict{elem: elem}
}

// Key returns the key type, which is always int.
func (d *Dict) Key() Type {
	return Typ[Int]
}

// Elem returns the value type.
func (d *Dict) Elem() Type {
	return d.elem
}

// Entry returns the type of a for-each loop variable over d: (int,Elem).
func (d *Dict) Entry() *Pair {
	return NewPair(Typ[Int], d.elem)
}

// String implements Type.
func (d *Dict) String() string {
	return fmt.Sprintf("[int:%s]", d.elem)
}
