package types

// BasicKind describes the kind of basic type.
type BasicKind int

const (
	Invalid BasicKind = iota // invalid type

	Bool
	Int
)

// Basic represents a primitive type: int or bool.
type Basic struct {
	typ
	kind BasicKind
	name string
}

// Kind returns the kind of the basic type.
func (b *Basic) Kind() BasicKind {
	return b.kind
}

// Name returns the name of the basic type.
func (b *Basic) Name() string {
	return b.name
}

// String implements Type.
func (b *Basic) String() string {
	return b.name
}

// Typ holds the basic types, indexed by BasicKind.
// Typ[Invalid] is nil.
var Typ = []*Basic{
	Invalid: nil,
	Bool:    {kind: Bool, name: "bool"},
	Int:     {kind: Int, name: "int"},
}
