// Package types implements the static types of the Labo language.
// Types are compared structurally; see Identical.
package types

// Type is the interface implemented by all types.
type Type interface {
	// String returns the source-like representation of the type:
	// int, bool, (T1,T2) or [int:V].
	String() string

	aType()
}

// typ is a base struct for all type implementations.
type typ struct{}

func (typ) aType() {}
